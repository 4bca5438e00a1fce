package currency

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestConvertIdentity(t *testing.T) {
	for _, rates := range []Rates{nil, {}, {"USD": d("1.3")}} {
		got, w := Convert(d("100"), "USD", "USD", rates)
		if w != nil {
			t.Errorf("unexpected warning: %s", w)
		}
		if !got.Equal(d("100")) {
			t.Errorf("expected 100, got %s", got)
		}
	}
}

func TestConvertCrossRate(t *testing.T) {
	rates := Rates{types.CurrencyUSD: d("1"), types.CurrencyEUR: d("1.08"), types.CurrencyGBP: d("0.8")}

	tests := []struct {
		name     string
		amount   string
		from, to types.Currency
		expected string
	}{
		{name: "USD to EUR", amount: "100", from: "USD", to: "EUR", expected: "108"},
		{name: "EUR to USD", amount: "108", from: "EUR", to: "USD", expected: "100"},
		{name: "GBP to EUR", amount: "80", from: "GBP", to: "EUR", expected: "108"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, w := Convert(d(tt.amount), tt.from, tt.to, rates)
			if w != nil {
				t.Fatalf("unexpected warning: %s", w)
			}
			if !got.Round(6).Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestConvertMissingRateLeavesAmount(t *testing.T) {
	rates := Rates{types.CurrencyUSD: d("1"), "JPY": d("0")}

	tests := []struct {
		name     string
		from, to types.Currency
		missing  []types.Currency
	}{
		{name: "missing source", from: "CHF", to: "USD", missing: []types.Currency{"CHF"}},
		{name: "missing target", from: "USD", to: "EUR", missing: []types.Currency{"EUR"}},
		{name: "both missing", from: "CHF", to: "EUR", missing: []types.Currency{"CHF", "EUR"}},
		{name: "zero rate counts as missing", from: "USD", to: "JPY", missing: []types.Currency{"JPY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, w := Convert(d("100"), tt.from, tt.to, rates)
			if !got.Equal(d("100")) {
				t.Errorf("expected unchanged 100, got %s", got)
			}
			if w == nil {
				t.Fatal("expected a warning")
			}
			if len(w.Missing) != len(tt.missing) {
				t.Fatalf("expected missing %v, got %v", tt.missing, w.Missing)
			}
			for i := range tt.missing {
				if w.Missing[i] != tt.missing[i] {
					t.Errorf("expected missing %v, got %v", tt.missing, w.Missing)
				}
			}
			if !strings.Contains(w.String(), string(tt.missing[0])) {
				t.Errorf("warning %q does not name %s", w.String(), tt.missing[0])
			}
		})
	}
}
