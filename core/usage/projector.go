// Package usage projects scenario volumes forward in time.
package usage

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ProjectValue compounds base at growthPct per month over months. The
// first month is the baseline, so growth applies months-1 times and a
// horizon of one month or less returns base unchanged.
func ProjectValue(base, growthPct decimal.Decimal, months int) decimal.Decimal {
	if months <= 1 {
		return base
	}
	factor := decimal.NewFromInt(1).Add(growthPct.Div(hundred))
	return base.Mul(factor.Pow(decimal.NewFromInt(int64(months - 1))))
}

// Projection holds the projected volumes for one scenario
type Projection struct {
	Tickets decimal.Decimal
	Spend   decimal.Decimal
}

// Project runs ProjectValue for ticket volume and cloud spend
func Project(tickets, ticketGrowthPct, spend, spendGrowthPct decimal.Decimal, months int) Projection {
	return Projection{
		Tickets: ProjectValue(tickets, ticketGrowthPct, months),
		Spend:   ProjectValue(spend, spendGrowthPct, months),
	}
}
