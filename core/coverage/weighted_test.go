package coverage

import (
	"testing"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		required types.CoverageTier
		offered  types.CoverageTier
		expected string
	}{
		{name: "24x7 required, business offered", required: types.Coverage24x7, offered: types.CoverageBusiness, expected: "4.2"},
		{name: "24x7 required, 16x5 offered", required: types.Coverage24x7, offered: types.Coverage16x5, expected: "2.1"},
		{name: "16x5 required, business offered", required: types.Coverage16x5, offered: types.CoverageBusiness, expected: "2"},
		{name: "business required, 24x7 offered", required: types.CoverageBusiness, offered: types.Coverage24x7, expected: "1"},
		{name: "same tier", required: types.Coverage16x5, offered: types.Coverage16x5, expected: "1"},
		{name: "unknown offered weighs as 24x7", required: types.Coverage24x7, offered: "follow-the-sun", expected: "1"},
		{name: "unknown required weighs as 24x7", required: "", offered: types.CoverageBusiness, expected: "4.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Multiplier(tt.required, tt.offered)
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected multiplier %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	amount, m := Adjust(decimal.NewFromInt(1000), types.Coverage24x7, types.CoverageBusiness)
	if !m.Equal(decimal.RequireFromString("4.2")) {
		t.Errorf("expected multiplier 4.2, got %s", m)
	}
	if !amount.Equal(decimal.NewFromInt(4200)) {
		t.Errorf("expected 4200, got %s", amount)
	}
}
