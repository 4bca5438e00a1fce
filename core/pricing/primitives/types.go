// Package primitives - Centralized pricing math
// Each pricing model is a pure function of its rules and the projected
// scenario volumes. Dispatch lives in the parent pricing package.
package primitives

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// percentOf returns amount * pct / 100. The rate is scaled first so the
// product stays exact for the usual percentages.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct.Div(hundred))
}
