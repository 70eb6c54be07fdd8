package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYearBounds(t *testing.T) {
	assert.Equal(t, date(2023, 4, 1), FiscalYearStart(date(2024, 3, 31)))
	assert.Equal(t, date(2024, 4, 1), FiscalYearStart(date(2024, 4, 1)))
	assert.Equal(t, date(2025, 4, 1), FiscalYearEnd(date(2024, 12, 25)))
}

func TestPeriodNumber(t *testing.T) {
	tests := []struct {
		name string
		freq Frequency
		end  time.Time
		want int
	}{
		{"first month", FrequencyMonthly, date(2024, 4, 30), 1},
		{"third month", FrequencyMonthly, date(2024, 6, 30), 3},
		{"last month", FrequencyMonthly, date(2025, 3, 31), 12},
		{"semi-monthly first half", FrequencySemiMonthly, date(2024, 4, 15), 1},
		{"semi-monthly second half", FrequencySemiMonthly, date(2024, 4, 30), 2},
		{"semi-monthly next month", FrequencySemiMonthly, date(2024, 5, 15), 3},
		{"weekly first", FrequencyWeekly, date(2024, 4, 7), 1},
		{"weekly second", FrequencyWeekly, date(2024, 4, 8), 2},
		{"weekly capped", FrequencyWeekly, date(2025, 3, 31), 52},
		{"fortnightly second", FrequencyFortnightly, date(2024, 4, 20), 2},
		{"unknown frequency", "DAILY", date(2024, 4, 20), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PeriodNumber(tt.freq, tt.end))
		})
	}
}
