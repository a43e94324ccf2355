package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodToday, ParsePeriod("today"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	// Unknown values fall back to today
	assert.Equal(t, PeriodToday, ParsePeriod(""))
	assert.Equal(t, PeriodToday, ParsePeriod("quarter"))
}

func TestRange_Today(t *testing.T) {
	now := time.Date(2025, 8, 14, 16, 30, 0, 0, time.UTC)
	r := Range(PeriodToday, now)
	assert.Equal(t, day(2025, 8, 14), r.Start)
	assert.Equal(t, day(2025, 8, 14), r.End)
}

func TestRange_Month(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	r := Range(PeriodMonth, now)
	assert.Equal(t, day(2025, 2, 1), r.Start)
	assert.Equal(t, day(2025, 2, 28), r.End)
}

func TestRange_MonthLeapFebruary(t *testing.T) {
	r := Range(PeriodMonth, day(2024, 2, 15))
	assert.Equal(t, day(2024, 2, 29), r.End)
}

func TestRange_Year(t *testing.T) {
	r := Range(PeriodYear, day(2025, 7, 4))
	assert.Equal(t, day(2025, 1, 1), r.Start)
	assert.Equal(t, day(2025, 12, 31), r.End)
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: day(2025, 5, 1), End: day(2025, 5, 31)}
	assert.False(t, r.Contains(day(2025, 4, 30)))
	assert.True(t, r.Contains(day(2025, 5, 1)))
	assert.True(t, r.Contains(day(2025, 5, 31)))
	assert.False(t, r.Contains(day(2025, 6, 1)))
}
