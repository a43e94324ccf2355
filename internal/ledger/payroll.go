package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceDay is one worker-day attendance mark.
type AttendanceDay struct {
	Date    time.Time
	Present bool
}

// WorkerSummary is the derived payroll position of one worker over a range.
// It is recomputed on demand and never stored.
type WorkerSummary struct {
	PresentDays   int
	TotalSalary   decimal.Decimal
	TotalAdvances decimal.Decimal
	TotalPayments decimal.Decimal
	Remaining     decimal.Decimal
}

// SummarizeWorker reconciles a worker's dues over r:
//
//	totalSalary   = presentDays × perDaySalary
//	remaining     = totalSalary − advances − payments
//
// Days with no attendance record simply don't count as present; an explicit
// absent mark counts the same as no record. Negative remaining means the
// worker was advanced/paid more than earned — a deficit, not an error.
// The range is an explicit parameter so historical months can be queried
// with the same function.
func SummarizeWorker(perDaySalary decimal.Decimal, attendance []AttendanceDay, advances, payments []Entry, r DateRange) WorkerSummary {
	presentDays := 0
	for _, a := range attendance {
		if a.Present && r.Contains(a.Date) {
			presentDays++
		}
	}

	totalSalary := perDaySalary.Mul(decimal.NewFromInt(int64(presentDays)))
	totalAdvances := SumInRange(advances, r)
	totalPayments := SumInRange(payments, r)

	return WorkerSummary{
		PresentDays:   presentDays,
		TotalSalary:   totalSalary,
		TotalAdvances: totalAdvances,
		TotalPayments: totalPayments,
		Remaining:     totalSalary.Sub(totalAdvances).Sub(totalPayments),
	}
}

// ToggleAttendance applies the two-state attendance cycle: no record for the
// day becomes present, an existing record flips. It returns the new presence
// value and whether a record already existed (callers update vs. insert on
// that). Records are never deleted — see SummarizeWorker.
func ToggleAttendance(existing *AttendanceDay) (present bool, found bool) {
	if existing == nil {
		return true, false
	}
	return !existing.Present, true
}
