// Package currency normalizes vendor costs into a scenario's reporting
// currency using caller-supplied rates against a common base.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// Rates maps a currency to its rate relative to an implicit base unit
type Rates map[types.Currency]decimal.Decimal

// Warning reports a conversion that was skipped because a rate is missing
type Warning struct {
	From    types.Currency
	To      types.Currency
	Missing []types.Currency
}

func (w *Warning) String() string {
	missing := make([]string, len(w.Missing))
	for i, c := range w.Missing {
		missing[i] = string(c)
	}
	return fmt.Sprintf("no exchange rate for %s; %s amount left unconverted to %s",
		strings.Join(missing, ", "), w.From, w.To)
}

// Convert returns amount / rates[from] * rates[to]. Equal currencies
// convert to themselves without consulting rates. When either rate is
// absent or zero the amount comes back unchanged together with a Warning;
// this is a degradation, not an error, and callers decide how loud to be.
func Convert(amount decimal.Decimal, from, to types.Currency, rates Rates) (decimal.Decimal, *Warning) {
	if from == to {
		return amount, nil
	}

	fromRate, fromOK := lookup(rates, from)
	toRate, toOK := lookup(rates, to)
	if !fromOK || !toOK {
		w := &Warning{From: from, To: to}
		if !fromOK {
			w.Missing = append(w.Missing, from)
		}
		if !toOK {
			w.Missing = append(w.Missing, to)
		}
		return amount, w
	}

	return amount.Div(fromRate).Mul(toRate), nil
}

func lookup(rates Rates, c types.Currency) (decimal.Decimal, bool) {
	r, ok := rates[c]
	if !ok || r.IsZero() {
		return decimal.Zero, false
	}
	return r, true
}
