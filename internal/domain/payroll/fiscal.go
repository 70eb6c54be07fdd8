package payroll

import "time"

// FiscalYearStartMonth is the first month of the statutory fiscal year
const FiscalYearStartMonth = time.April

// FiscalYearStart returns April 1 of the fiscal year containing t
func FiscalYearStart(t time.Time) time.Time {
	year := t.Year()
	if t.Month() < FiscalYearStartMonth {
		year--
	}
	return time.Date(year, FiscalYearStartMonth, 1, 0, 0, 0, 0, t.Location())
}

// FiscalYearEnd returns the first instant after the fiscal year containing t
func FiscalYearEnd(t time.Time) time.Time {
	return FiscalYearStart(t).AddDate(1, 0, 0)
}

// PeriodNumber returns the 1-based pay period within the fiscal year in
// which periodEnd falls, capped at the number of periods per year.
func PeriodNumber(f Frequency, periodEnd time.Time) int {
	periods := f.PeriodsPerYear()
	if periods == 0 {
		return 0
	}
	start := FiscalYearStart(periodEnd)
	day := dateOnly(periodEnd)

	var n int
	switch f {
	case FrequencyMonthly:
		n = monthsBetween(start, day) + 1
	case FrequencySemiMonthly:
		n = monthsBetween(start, day)*2 + 1
		if day.Day() > 15 {
			n++
		}
	case FrequencyWeekly:
		n = daysBetween(start, day)/7 + 1
	case FrequencyFortnightly:
		n = daysBetween(start, day)/14 + 1
	}
	return min(max(n, 1), periods)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
