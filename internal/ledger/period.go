package ledger

import "time"

// Period is one of the three fixed dashboard presets.
type Period string

const (
	PeriodToday Period = "today"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a query-string value onto a preset, defaulting to today.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodMonth:
		return PeriodMonth
	case PeriodYear:
		return PeriodYear
	default:
		return PeriodToday
	}
}

// DateRange is an inclusive calendar-day range. Start and End are truncated
// to date granularity; time-of-day never participates in comparisons.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, bounds inclusive.
func (r DateRange) Contains(d time.Time) bool {
	day := truncateToDay(d)
	return !day.Before(truncateToDay(r.Start)) && !day.After(truncateToDay(r.End))
}

// Range resolves a preset against now: today is a single day, month and year
// are the calendar month/year containing now.
func Range(p Period, now time.Time) DateRange {
	day := truncateToDay(now)
	switch p {
	case PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
	case PeriodYear:
		start := time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
		return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		return DateRange{Start: day, End: day}
	}
}

// MonthRange is the calendar month containing now — the payroll default.
func MonthRange(now time.Time) DateRange {
	return Range(PeriodMonth, now)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
