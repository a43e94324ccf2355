// Package service contains the business services. Services orchestrate
// repositories and the ledger engine; all derived figures (totals,
// remaining balances, payroll dues) come from internal/ledger — no service
// re-implements that math.
package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string already validated by the DTO layer.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func fmtDate(t time.Time) string {
	return t.Format(dateLayout)
}

// fmtMoney renders a monetary value with exactly 2 fractional digits.
// Full precision is kept internally; formatting happens only here, at the
// response boundary.
func fmtMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
