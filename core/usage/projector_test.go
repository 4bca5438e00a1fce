package usage

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// TestProjectValueShortHorizon verifies no growth is applied for one month or less
func TestProjectValueShortHorizon(t *testing.T) {
	for _, months := range []int{-3, 0, 1} {
		for _, growth := range []string{"0", "10", "-5", "250"} {
			got := ProjectValue(d("420"), d(growth), months)
			if !got.Equal(d("420")) {
				t.Errorf("months=%d growth=%s: expected 420, got %s", months, growth, got)
			}
		}
	}
}

func TestProjectValueCompounds(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		growth   string
		months   int
		expected string
	}{
		{name: "two periods at 10%", base: "100", growth: "10", months: 3, expected: "121"},
		{name: "one period at 10%", base: "100", growth: "10", months: 2, expected: "110"},
		{name: "zero growth", base: "420", growth: "0", months: 12, expected: "420"},
		{name: "negative growth", base: "1000", growth: "-10", months: 3, expected: "810"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectValue(d(tt.base), d(tt.growth), tt.months)
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestProjectSpendOverYear(t *testing.T) {
	p := Project(d("420"), d("0"), d("75000"), d("3"), 12)

	if !p.Tickets.Equal(d("420")) {
		t.Errorf("expected 420 tickets, got %s", p.Tickets)
	}
	// 75000 * 1.03^11
	if got := p.Spend.Round(2); !got.Equal(d("103817.54")) {
		t.Errorf("expected projected spend 103817.54, got %s", got)
	}
}
