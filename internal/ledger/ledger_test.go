package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

// ── ParseAmount ──────────────────────────────────────────────────────────────

func TestParseAmount_Permissive(t *testing.T) {
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("   ").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("12,50").IsZero())
	assert.True(t, ParseAmount("150.75").Equal(d("150.75")))
	assert.True(t, ParseAmount(" 99 ").Equal(d("99")))
	assert.True(t, ParseAmount("-10").Equal(d("-10")))
}

// ── Remaining ────────────────────────────────────────────────────────────────

func TestRemaining(t *testing.T) {
	assert.True(t, Remaining(d("100"), d("40")).Equal(d("60")))
	// Overpayment goes negative, never clamped
	assert.True(t, Remaining(d("100"), d("130")).Equal(d("-30")))
	assert.True(t, Remaining(decimal.Zero, decimal.Zero).IsZero())
}

func TestRemaining_Idempotent(t *testing.T) {
	total, paid := d("250.55"), d("100.10")
	first := Remaining(total, paid)
	second := Remaining(total, paid)
	assert.True(t, first.Equal(second))
}

func TestLineTotal_FullPrecision(t *testing.T) {
	// 2.5 kg × 33.33 — no float drift
	assert.True(t, LineTotal(d("2.5"), d("33.33")).Equal(d("83.325")))
}

// ── SumInRange ───────────────────────────────────────────────────────────────

func TestSumInRange_Empty(t *testing.T) {
	r := DateRange{Start: day(2025, 1, 1), End: day(2025, 1, 31)}
	assert.True(t, SumInRange(nil, r).IsZero())
	assert.True(t, SumInRange([]Entry{}, r).IsZero())
}

func TestSumInRange_InclusiveBounds(t *testing.T) {
	r := DateRange{Start: day(2025, 3, 10), End: day(2025, 3, 20)}
	entries := []Entry{
		{Date: day(2025, 3, 9), Amount: d("1")},  // one day before start — excluded
		{Date: day(2025, 3, 10), Amount: d("2")}, // on start — included
		{Date: day(2025, 3, 15), Amount: d("4")},
		{Date: day(2025, 3, 20), Amount: d("8")},  // on end — included
		{Date: day(2025, 3, 21), Amount: d("16")}, // one day after end — excluded
	}
	assert.True(t, SumInRange(entries, r).Equal(d("14")))
}

func TestSumInRange_IgnoresTimeOfDay(t *testing.T) {
	r := DateRange{Start: day(2025, 3, 10), End: day(2025, 3, 10)}
	late := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.True(t, SumInRange([]Entry{{Date: late, Amount: d("5")}}, r).Equal(d("5")))
}

func TestTotalsInRange_StreamsIndependent(t *testing.T) {
	r := DateRange{Start: day(2025, 6, 1), End: day(2025, 6, 30)}
	sales := []Entry{{Date: day(2025, 6, 5), Amount: d("100")}}

	got := TotalsInRange(sales, nil, nil, nil, r)
	assert.True(t, got.Sales.Equal(d("100")))
	assert.True(t, got.BulkSales.IsZero())
	assert.True(t, got.Purchases.IsZero())
	assert.True(t, got.WorkerCosts.IsZero())
}

// ── NetProfit ────────────────────────────────────────────────────────────────

func TestNetProfit(t *testing.T) {
	assert.True(t, NetProfit(Totals{Sales: d("100"), BulkSales: d("50"), Purchases: d("30"), WorkerCosts: d("20")}).Equal(d("100")))
	assert.True(t, NetProfit(Totals{}).IsZero())
	// Loss keeps its sign
	assert.True(t, NetProfit(Totals{Sales: d("10"), Purchases: d("50")}).Equal(d("-40")))
}
