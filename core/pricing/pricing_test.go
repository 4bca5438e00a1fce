// Package pricing - dispatch tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
	"support-cost/core/usage"
	"support-cost/internal/errors"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func input() Input {
	return Input{
		Scenario: &types.Scenario{
			MonthlyTicketsTotal: d("420"),
			CloudSpend:          d("75000"),
			MonthsToProject:     1,
		},
		Projection: usage.Projection{Tickets: d("420"), Spend: d("75000")},
	}
}

// TestCalculateDispatchesByModel proves each model reaches its primitive
func TestCalculateDispatchesByModel(t *testing.T) {
	minFee := d("1000")
	tests := []struct {
		name     string
		vendor   types.Vendor
		expected string
	}{
		{
			name: "percent_spend",
			vendor: types.Vendor{
				ID:    "pct",
				Model: types.ModelPercentSpend,
				Rules: types.PercentSpendRules{Percent: d("2"), MinFee: &minFee},
			},
			expected: "1500",
		},
		{
			name: "tiered",
			vendor: types.Vendor{
				ID:    "tier",
				Model: types.ModelTiered,
				Rules: types.TieredRules{Tiers: []types.Tier{
					{UpTo: d("100"), Fee: d("500")},
					{UpTo: d("500"), Fee: d("1500")},
				}},
			},
			expected: "1500",
		},
		{
			name: "tiered as pointer",
			vendor: types.Vendor{
				ID:    "tier-ptr",
				Model: types.ModelTiered,
				Rules: &types.TieredRules{Tiers: []types.Tier{{UpTo: d("1000"), Fee: d("900")}}},
			},
			expected: "900",
		},
		{
			name:     "tiered without rules",
			vendor:   types.Vendor{ID: "empty", Model: types.ModelTiered},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(&tt.vendor, input())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCalculateUnknownModel(t *testing.T) {
	vendor := types.Vendor{ID: "x", Name: "Mystery", Model: "subscription"}

	_, err := Calculate(&vendor, input())
	if err == nil {
		t.Fatal("expected error for unknown pricing model")
	}
	if !errors.IsType(err, errors.TypePricing) {
		t.Errorf("expected pricing error, got %v", err)
	}
}

func TestCalculateRulesMismatch(t *testing.T) {
	vendor := types.Vendor{
		ID:    "x",
		Model: types.ModelPercentSpend,
		Rules: types.TieredRules{},
	}

	if _, err := Calculate(&vendor, input()); err == nil {
		t.Fatal("expected error when rules do not match the model")
	}
}

func TestCalculateNeverNegative(t *testing.T) {
	base := d("100")
	adj := d("-1000")
	share := d("50")
	in := input()
	in.Scenario.ChannelMix = &types.ChannelMix{Email: &share}
	vendor := types.Vendor{
		ID:    "credit",
		Model: types.ModelRetainerAddons,
		Rules: types.RetainerRules{
			BaseRetainer:       &base,
			ChannelAdjustments: &types.ChannelAdjustments{Email: &adj},
		},
	}

	got, err := Calculate(&vendor, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected cost clamped to 0, got %s", got)
	}
}
