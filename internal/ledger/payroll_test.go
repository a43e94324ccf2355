package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func march2025() DateRange {
	return DateRange{Start: day(2025, 3, 1), End: day(2025, 3, 31)}
}

func TestSummarizeWorker(t *testing.T) {
	attendance := []AttendanceDay{
		{Date: day(2025, 3, 3), Present: true},
		{Date: day(2025, 3, 4), Present: true},
		{Date: day(2025, 3, 5), Present: false}, // marked absent — does not count
		{Date: day(2025, 3, 6), Present: true},
	}
	advances := []Entry{
		{Date: day(2025, 3, 10), Amount: d("100")},
		{Date: day(2025, 3, 15), Amount: d("50")},
	}
	payments := []Entry{
		{Date: day(2025, 3, 28), Amount: d("300")},
	}

	got := SummarizeWorker(d("200"), attendance, advances, payments, march2025())
	assert.Equal(t, 3, got.PresentDays)
	assert.True(t, got.TotalSalary.Equal(d("600")))
	assert.True(t, got.TotalAdvances.Equal(d("150")))
	assert.True(t, got.TotalPayments.Equal(d("300")))
	assert.True(t, got.Remaining.Equal(d("150")))
}

func TestSummarizeWorker_DeficitNotClamped(t *testing.T) {
	attendance := []AttendanceDay{
		{Date: day(2025, 3, 3), Present: true},
		{Date: day(2025, 3, 4), Present: true},
		{Date: day(2025, 3, 6), Present: true},
	}
	advances := []Entry{
		{Date: day(2025, 3, 10), Amount: d("100")},
		{Date: day(2025, 3, 15), Amount: d("50")},
	}
	payments := []Entry{
		{Date: day(2025, 3, 28), Amount: d("700")},
	}

	got := SummarizeWorker(d("200"), attendance, advances, payments, march2025())
	assert.True(t, got.Remaining.Equal(d("-250")))
}

func TestSummarizeWorker_RangeFiltersAllStreams(t *testing.T) {
	// Records outside March must not leak into a March summary.
	attendance := []AttendanceDay{
		{Date: day(2025, 2, 28), Present: true},
		{Date: day(2025, 3, 1), Present: true},
	}
	advances := []Entry{{Date: day(2025, 4, 1), Amount: d("500")}}

	got := SummarizeWorker(d("100"), attendance, advances, nil, march2025())
	assert.Equal(t, 1, got.PresentDays)
	assert.True(t, got.TotalAdvances.IsZero())
	assert.True(t, got.Remaining.Equal(d("100")))
}

func TestSummarizeWorker_NoActivity(t *testing.T) {
	got := SummarizeWorker(d("200"), nil, nil, nil, march2025())
	assert.Equal(t, 0, got.PresentDays)
	assert.True(t, got.TotalSalary.IsZero())
	assert.True(t, got.Remaining.IsZero())
}

func TestToggleAttendance_TwoStateCycle(t *testing.T) {
	// First toggle on an untouched day creates "present".
	present, found := ToggleAttendance(nil)
	assert.True(t, present)
	assert.False(t, found)

	// Second toggle flips to absent.
	rec := AttendanceDay{Date: day(2025, 3, 3), Present: present}
	present, found = ToggleAttendance(&rec)
	assert.False(t, present)
	assert.True(t, found)

	// Third toggle flips back to present — never deletes.
	rec.Present = present
	present, found = ToggleAttendance(&rec)
	assert.True(t, present)
	assert.True(t, found)
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(time.Date(2025, 11, 20, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, day(2025, 11, 1), r.Start)
	assert.Equal(t, day(2025, 11, 30), r.End)
}
