// Package charts renders spending visuals sent as Telegram photos.
package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// CategoryPie renders the per-category spending split. Returns nil bytes when
// there is nothing worth drawing; callers skip the photo in that case.
func (g *Generator) CategoryPie(byCategory map[string]float64, currency string) ([]byte, error) {
	total := 0.0
	for _, amount := range byCategory {
		total += amount
	}
	if total <= 0 {
		return nil, nil
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return byCategory[names[i]] > byCategory[names[j]]
	})

	values := make([]chart.Value, 0, len(names))
	for _, name := range names {
		amount := byCategory[name]
		percentage := amount / total * 100
		// Slivers under 1% clutter the legend more than they inform.
		if percentage <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.0f %s (%.1f%%)", name, amount, currency, percentage),
			Value: amount,
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// SpendingBars renders recent per-category totals as a bar chart, largest
// first, capped at six bars.
func (g *Generator) SpendingBars(byCategory map[string]float64, currency string) ([]byte, error) {
	if len(byCategory) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return byCategory[names[i]] > byCategory[names[j]]
	})
	if len(names) > 6 {
		names = names[:6]
	}

	bars := make([]chart.Value, 0, len(names))
	for _, name := range names {
		bars = append(bars, chart.Value{
			Label: name,
			Value: byCategory[name],
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
				FontSize:    12,
				FontColor:   chart.ColorBlack,
			},
		})
	}

	graph := chart.BarChart{
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f %s", v.(float64), currency)
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render spending chart: %w", err)
	}
	return buffer.Bytes(), nil
}
