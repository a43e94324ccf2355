// Package ledger is the single source of truth for every derived figure in
// the system: payment balances, period totals, net profit and worker payroll
// dues. All functions are pure — no I/O, no clock access — so the same inputs
// always produce the same outputs. Services, handlers and PDF rendering all
// consume this package; none of them re-implements the math.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw user input into a monetary amount.
// Malformed or empty input coerces to zero instead of erroring — the forms
// are permissive on purpose and a stricter policy can be substituted here
// without touching the derivation math.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LineTotal computes quantity × rate at full precision.
func LineTotal(qty, rate decimal.Decimal) decimal.Decimal {
	return qty.Mul(rate)
}

// Remaining computes the outstanding balance of a transaction.
// The result is not clamped: a negative value means overpayment and is
// reported as-is; presentation decides how to show the sign.
func Remaining(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// Entry is one dated monetary record from any transaction stream.
type Entry struct {
	Date   time.Time
	Amount decimal.Decimal
}

// SumInRange sums the entries whose date falls inside r, bounds inclusive.
// An empty stream sums to zero. Streams are always aggregated independently;
// callers pass one stream per call.
func SumInRange(entries []Entry, r DateRange) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if r.Contains(e.Date) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// Totals holds one aggregated figure per transaction stream.
type Totals struct {
	Sales       decimal.Decimal
	BulkSales   decimal.Decimal
	Purchases   decimal.Decimal
	WorkerCosts decimal.Decimal
}

// TotalsInRange aggregates the four streams over r.
func TotalsInRange(sales, bulkSales, purchases, workerCosts []Entry, r DateRange) Totals {
	return Totals{
		Sales:       SumInRange(sales, r),
		BulkSales:   SumInRange(bulkSales, r),
		Purchases:   SumInRange(purchases, r),
		WorkerCosts: SumInRange(workerCosts, r),
	}
}

// NetProfit is income minus outgo: sales + bulk sales − purchases − worker
// costs. Sign alone distinguishes profit from loss.
func NetProfit(t Totals) decimal.Decimal {
	return t.Sales.Add(t.BulkSales).Sub(t.Purchases).Sub(t.WorkerCosts)
}
