package flow

import (
	"math"
	"time"
)

// DeadlineDate computes "now + months". Fractions of a month are counted as
// round(fraction*30) days; whole months keep the day of month, clamped to 28
// so the date exists in every month.
func DeadlineDate(now time.Time, months float64) time.Time {
	if months < 1 {
		days := int(math.Round(months * 30))
		return now.AddDate(0, 0, days)
	}

	whole := int(months)
	fracDays := int(math.Round((months - float64(whole)) * 30))

	year := now.Year() + (int(now.Month())-1+whole)/12
	month := time.Month((int(now.Month())-1+whole)%12 + 1)
	day := now.Day()
	if day > 28 {
		day = 28
	}
	at := time.Date(year, month, day, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	return at.AddDate(0, 0, fracDays)
}
