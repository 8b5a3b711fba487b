package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/subsadmin/subsadmin_backend/internal/utils/dates"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"plain month", date(2025, time.March, 15), 1, date(2025, time.April, 15)},
		{"clamps jan 31 to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamps jan 31 to feb 29 in leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamps may 31 to jun 30", date(2025, time.May, 31), 1, date(2025, time.June, 30)},
		{"crosses year boundary", date(2025, time.November, 30), 3, date(2026, time.February, 28)},
		{"twelve months", date(2025, time.January, 1), 12, date(2026, time.January, 1)},
		{"zero months", date(2025, time.July, 4), 0, date(2025, time.July, 4)},
		{"negative months clamp too", date(2025, time.March, 31), -1, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonthsKeepsClock(t *testing.T) {
	start := time.Date(2025, time.January, 31, 14, 30, 45, 0, time.UTC)
	got := dates.AddMonths(start, 1)
	assert.Equal(t, time.Date(2025, time.February, 28, 14, 30, 45, 0, time.UTC), got)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, dates.DaysInMonth(2025, time.February))
	assert.Equal(t, 29, dates.DaysInMonth(2024, time.February))
	assert.Equal(t, 30, dates.DaysInMonth(2025, time.April))
	assert.Equal(t, 31, dates.DaysInMonth(2025, time.December))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, time.June, 10, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, date(2025, time.June, 10), dates.StartOfDay(ts))
}
