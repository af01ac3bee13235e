package dates_test

import (
	"testing"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/dates"
	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	late := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), dates.DayOf(late))

	// A timestamp east of UTC can land on a different UTC calendar day.
	ist := time.FixedZone("IST", 5*3600+1800)
	earlyIST := time.Date(2025, 7, 1, 3, 0, 0, 0, ist)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), dates.DayOf(earlyIST))
}

func TestAfterDay(t *testing.T) {
	morning := time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 30, 20, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// Within the same day wall-clock order is irrelevant.
	assert.False(t, dates.AfterDay(evening, morning))
	assert.False(t, dates.AfterDay(morning, evening))
	assert.True(t, dates.AfterDay(nextDay, evening))
	assert.False(t, dates.AfterDay(evening, nextDay))
}

func TestBeforeDay(t *testing.T) {
	day := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, dates.BeforeDay(day.AddDate(0, 0, -1), day))
	assert.False(t, dates.BeforeDay(day, day))
	assert.False(t, dates.BeforeDay(day.AddDate(0, 0, 1), day))
}

func TestOnOrBeforeDay(t *testing.T) {
	day := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, dates.OnOrBeforeDay(day, day))
	assert.True(t, dates.OnOrBeforeDay(day.AddDate(0, 0, -5), day))
	assert.False(t, dates.OnOrBeforeDay(day.AddDate(0, 0, 1), day))
}

func TestWithinDays(t *testing.T) {
	base := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		other  time.Time
		window int
		want   bool
	}{
		{"same day with zero window", base.Add(6 * time.Hour), 0, true},
		{"next day with zero window", base.AddDate(0, 0, 1), 0, false},
		{"three days apart inside window", base.AddDate(0, 0, 3), 3, true},
		{"three days before inside window", base.AddDate(0, 0, -3), 3, true},
		{"four days apart outside window", base.AddDate(0, 0, 4), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.WithinDays(base, tt.other, tt.window))
		})
	}
}
