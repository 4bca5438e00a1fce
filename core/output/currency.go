package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"support-cost/core/types"
)

var symbols = map[types.Currency]string{
	types.CurrencyUSD: "$",
	types.CurrencyEUR: "€",
	types.CurrencyGBP: "£",
}

var printer = message.NewPrinter(language.English)

// Symbol returns the display prefix for a currency: its symbol when
// known, otherwise the code followed by a space.
func Symbol(code types.Currency) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return string(code) + " "
}

// FormatCurrency renders amount rounded to whole units with thousands
// separators, e.g. $12,346 or CHF 1,080.
func FormatCurrency(amount decimal.Decimal, code types.Currency) string {
	whole := amount.Round(0).IntPart()
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}
	return sign + Symbol(code) + printer.Sprintf("%d", whole)
}
