package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineDateFractionalMonths(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	got := DeadlineDate(now, 0.5)
	assert.Equal(t, now.AddDate(0, 0, 15), got, "half a month is fifteen days")
}

func TestDeadlineDateMixedMonths(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	got := DeadlineDate(now, 1.5)
	want := time.Date(2026, time.April, 25, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, want, got, "one month plus fifteen days")
}

func TestDeadlineDateWholeMonths(t *testing.T) {
	now := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		months float64
		want   time.Time
	}{
		{1, time.Date(2026, time.April, 10, 9, 30, 0, 0, time.UTC)},
		{3, time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)},
		{6, time.Date(2026, time.September, 10, 9, 30, 0, 0, time.UTC)},
		{12, time.Date(2027, time.March, 10, 9, 30, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeadlineDate(now, tc.months), "months=%v", tc.months)
	}
}

func TestDeadlineDateClampsDayOfMonth(t *testing.T) {
	now := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)

	got := DeadlineDate(now, 1)
	assert.Equal(t, time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC), got)
}

func TestDeadlineDateYearRollover(t *testing.T) {
	now := time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC)

	got := DeadlineDate(now, 3)
	assert.Equal(t, time.Date(2027, time.February, 5, 0, 0, 0, 0, time.UTC), got)
}
