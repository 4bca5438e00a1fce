package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"support-cost/core/types"
	"support-cost/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestLoader() *Loader {
	return NewLoader(WithLogger(zap.NewNop()))
}

const vendorsJSON = `[
  {
    "id": "acme",
    "name": "Acme",
    "currency": "USD",
    "pricing_model": "percent_spend",
    "rules": {"percent": 3, "min_fee": "500"},
    "sla": {"coverage": "24x7", "response_minutes": {"sev1": 15}}
  },
  {
    "id": "globex",
    "name": "Globex",
    "pricing_model": "tiered",
    "rules": {"tiers": [{"up_to": 100, "fee": 1000}, {"up_to": 500, "fee": 3000}]}
  }
]`

func TestLoadVendorsJSON(t *testing.T) {
	vendors, err := newTestLoader().LoadVendors(writeFile(t, "vendors.json", vendorsJSON))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(vendors) != 2 {
		t.Fatalf("expected 2 vendors, got %d", len(vendors))
	}

	rules, ok := vendors[0].Rules.(types.PercentSpendRules)
	if !ok {
		t.Fatalf("expected percent spend rules, got %T", vendors[0].Rules)
	}
	if !rules.Percent.Equal(decimal.NewFromInt(3)) || rules.MinFee == nil || !rules.MinFee.Equal(decimal.NewFromInt(500)) {
		t.Errorf("unexpected rules %+v", rules)
	}
	if vendors[0].SLA == nil || vendors[0].SLA.Coverage != types.Coverage24x7 {
		t.Errorf("unexpected SLA %+v", vendors[0].SLA)
	}

	tiered, ok := vendors[1].Rules.(types.TieredRules)
	if !ok || len(tiered.Tiers) != 2 {
		t.Fatalf("unexpected tiered rules %#v", vendors[1].Rules)
	}
	if vendors[1].Currency != "" {
		t.Errorf("expected empty vendor currency, got %q", vendors[1].Currency)
	}
}

func TestLoadVendorsSingleObject(t *testing.T) {
	path := writeFile(t, "vendor.json", `{"id":"solo","name":"Solo","pricing_model":"retainer_addons","rules":{"base_retainer":5000}}`)

	vendors, err := newTestLoader().LoadVendors(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(vendors) != 1 || vendors[0].ID != "solo" {
		t.Fatalf("unexpected vendors %+v", vendors)
	}
	r := vendors[0].Rules.(types.RetainerRules)
	if r.BaseRetainer == nil || !r.BaseRetainer.Equal(decimal.NewFromInt(5000)) || r.PhoneFee != nil {
		t.Errorf("unexpected retainer rules %+v", r)
	}
}

func TestLoadVendorsYAML(t *testing.T) {
	content := `
- id: initech
  name: Initech
  currency: EUR
  pricing_model: per_incident
  rules:
    prices:
      sev1: 50
      sev2: 20
      sev3: 5
  sla:
    coverage: 16x5
    resolution_hours:
      sev1: 8
`
	vendors, err := newTestLoader().LoadVendors(writeFile(t, "vendors.yaml", content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	rules := vendors[0].Rules.(types.PerIncidentRules)
	if !rules.Prices[types.Sev2].Equal(decimal.NewFromInt(20)) {
		t.Errorf("unexpected prices %v", rules.Prices)
	}
	if vendors[0].SLA.Coverage != types.Coverage16x5 {
		t.Errorf("unexpected coverage %q", vendors[0].SLA.Coverage)
	}
	if !vendors[0].SLA.ResolutionHours[types.Sev1].Equal(decimal.NewFromInt(8)) {
		t.Errorf("unexpected resolution hours %v", vendors[0].SLA.ResolutionHours)
	}
}

func TestLoadVendorsHCL(t *testing.T) {
	content := `
vendor "acme" {
  name          = "Acme"
  currency      = "USD"
  pricing_model = "percent_spend"

  rules {
    percent = 0.03
    min_fee = 500
  }

  sla {
    coverage         = "24x7"
    response_minutes = { sev1 = 15, sev2 = 60 }
  }
}

vendor "hooli" {
  name          = "Hooli"
  pricing_model = "retainer_addons"
  notes         = "phone included"

  rules {
    base_retainer       = 4000
    per_extra_language  = 500
    uplift_24x7_pct     = 20
    channel_adjustments = { chat = 100 }
  }
}

vendor "globex" {
  name          = "Globex"
  pricing_model = "tiered"

  rules {
    tier {
      up_to = 100
      fee   = 1000
    }
    tier {
      up_to = 500
      fee   = 3000
    }
  }
}
`
	vendors, err := newTestLoader().LoadVendors(writeFile(t, "vendors.hcl", content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(vendors) != 3 {
		t.Fatalf("expected 3 vendors, got %d", len(vendors))
	}

	pct := vendors[0].Rules.(types.PercentSpendRules)
	if pct.Percent.String() != "0.03" {
		t.Errorf("expected exact percent 0.03, got %s", pct.Percent)
	}
	if !vendors[0].SLA.ResponseMinutes[types.Sev2].Equal(decimal.NewFromInt(60)) {
		t.Errorf("unexpected response minutes %v", vendors[0].SLA.ResponseMinutes)
	}

	ret := vendors[1].Rules.(types.RetainerRules)
	if ret.PhoneFee != nil || ret.Uplift24x7Pct == nil || !ret.Uplift24x7Pct.Equal(decimal.NewFromInt(20)) {
		t.Errorf("unexpected retainer rules %+v", ret)
	}
	if amt, ok := ret.ChannelAdjustments.Amount(types.ChannelChat); !ok || !amt.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected chat adjustment %v %v", amt, ok)
	}
	if vendors[1].Notes != "phone included" {
		t.Errorf("unexpected notes %q", vendors[1].Notes)
	}

	tiers := vendors[2].Rules.(types.TieredRules).Tiers
	if len(tiers) != 2 || !tiers[1].Fee.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("unexpected tiers %+v", tiers)
	}
}

func TestLoadVendorsErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		errType  errors.Type
		contains string
	}{
		{
			name:     "unknown model",
			file:     "v.json",
			content:  `{"id":"x","name":"X","pricing_model":"barter"}`,
			errType:  errors.TypeInput,
			contains: "unknown pricing model",
		},
		{
			name:     "missing name",
			file:     "v.json",
			content:  `{"id":"x","pricing_model":"tiered"}`,
			errType:  errors.TypeInput,
			contains: "Name is required",
		},
		{
			name:     "bad coverage",
			file:     "v.yaml",
			content:  "id: x\nname: X\npricing_model: tiered\nsla:\n  coverage: weekends\n",
			errType:  errors.TypeInput,
			contains: "Coverage must be one of",
		},
		{
			name:     "negative tier fee",
			file:     "v.json",
			content:  `{"id":"x","name":"X","pricing_model":"tiered","rules":{"tiers":[{"up_to":10,"fee":-1}]}}`,
			errType:  errors.TypeInput,
			contains: "must not be negative",
		},
		{
			name:     "duplicate id",
			file:     "v.json",
			content:  `[{"id":"x","name":"X","pricing_model":"tiered"},{"id":"x","name":"Y","pricing_model":"tiered"}]`,
			errType:  errors.TypeInput,
			contains: "duplicate vendor id",
		},
		{
			name:    "malformed json",
			file:    "v.json",
			content: `{"id":`,
			errType: errors.TypeParsing,
		},
		{
			name:    "malformed hcl",
			file:    "v.hcl",
			content: `vendor "x" {`,
			errType: errors.TypeParsing,
		},
		{
			name:     "unknown hcl model",
			file:     "v.hcl",
			content:  "vendor \"x\" {\n  name = \"X\"\n  pricing_model = \"barter\"\n}\n",
			errType:  errors.TypeInput,
			contains: "unknown pricing model",
		},
		{
			name:    "empty file",
			file:    "v.json",
			content: "  ",
			errType: errors.TypeInput,
		},
		{
			name:    "unsupported extension",
			file:    "v.toml",
			content: "id = 1",
			errType: errors.TypeNotSupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestLoader().LoadVendors(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsType(err, tt.errType) {
				t.Errorf("expected %s, got %v", tt.errType, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestLoadScenariosJSON(t *testing.T) {
	content := `{
  "name": "Growth",
  "monthly_tickets_total": 500,
  "tickets_by_severity": {"sev1": 50, "sev2": 150, "sev3": 300},
  "cloud_spend": 75000,
  "coverage": "24x7",
  "channels": ["email", "chat"],
  "languages_count": 2,
  "spend_growth_pct": 3,
  "months_to_project": 12,
  "fx_rates": {"USD": 1, "EUR": 0.9},
  "channel_mix": {"email": 60, "chat": 40}
}`
	scenarios, err := newTestLoader().LoadScenarios(writeFile(t, "growth.json", content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s := scenarios[0]
	if s.Name != "Growth" || s.Currency != types.CurrencyUSD {
		t.Errorf("unexpected scenario header %q %q", s.Name, s.Currency)
	}
	if !s.CloudSpend.Equal(decimal.NewFromInt(75000)) || s.MonthsToProject != 12 {
		t.Errorf("unexpected volumes %+v", s)
	}
	if share, ok := s.ChannelMix.Share(types.ChannelChat); !ok || !share.Equal(decimal.NewFromInt(40)) {
		t.Errorf("unexpected chat share %v", share)
	}
	if !s.FXRates[types.CurrencyEUR].Equal(decimal.RequireFromString("0.9")) {
		t.Errorf("unexpected fx rates %v", s.FXRates)
	}
}

func TestLoadScenariosDefaults(t *testing.T) {
	content := `[{"monthly_tickets_total": 10}, {"monthly_tickets_total": 20, "currency": "GBP"}]`
	loader := NewLoader(WithLogger(zap.NewNop()), WithDefaultCurrency(types.CurrencyEUR))

	scenarios, err := loader.LoadScenarios(writeFile(t, "batch.yml", content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if scenarios[0].Name != "batch #1" || scenarios[1].Name != "batch #2" {
		t.Errorf("unexpected names %q %q", scenarios[0].Name, scenarios[1].Name)
	}
	if scenarios[0].Currency != types.CurrencyEUR || scenarios[1].Currency != types.CurrencyGBP {
		t.Errorf("unexpected currencies %q %q", scenarios[0].Currency, scenarios[1].Currency)
	}
}

func TestLoadScenariosHCL(t *testing.T) {
	content := `
scenario "steady" {
  monthly_tickets_total = 500
  tickets_by_severity   = { sev1 = 50, sev2 = 150, sev3 = 300 }
  cloud_spend           = 75000
  coverage              = "business"
  channels              = ["email", "phone"]
  languages_count       = 3
  spend_growth_pct      = 1.5
  months_to_project     = 6
  currency              = "EUR"
  fx_rates              = { USD = 1, EUR = 0.92 }
  channel_mix           = { email = 70, phone = 30 }

  required_response_minutes = { sev1 = 30 }
}
`
	scenarios, err := newTestLoader().LoadScenarios(writeFile(t, "s.hcl", content))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	s := scenarios[0]
	if s.Name != "steady" || s.Currency != types.CurrencyEUR || s.LanguagesCount != 3 {
		t.Errorf("unexpected scenario %+v", s)
	}
	if s.SpendGrowthPct.String() != "1.5" {
		t.Errorf("expected growth 1.5, got %s", s.SpendGrowthPct)
	}
	if !s.UsesChannel(types.ChannelPhone) {
		t.Error("expected phone channel")
	}
	if !s.FXRates[types.CurrencyEUR].Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("unexpected fx rates %v", s.FXRates)
	}
	if !s.RequiredResponseMinutes[types.Sev1].Equal(decimal.NewFromInt(30)) {
		t.Errorf("unexpected response requirement %v", s.RequiredResponseMinutes)
	}
}

func TestLoadScenariosValidation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"bad channel", `{"monthly_tickets_total": 1, "channels": ["fax"]}`, "must be one of"},
		{"mix over 100", `{"monthly_tickets_total": 1, "channel_mix": {"chat": 120}}`, "between 0 and 100"},
		{"negative months", `{"monthly_tickets_total": 1, "months_to_project": -1}`, "MonthsToProject"},
		{"bad currency", `{"monthly_tickets_total": 1, "currency": "usd"}`, "Currency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestLoader().LoadScenarios(writeFile(t, "s.json", tt.content))
			if !errors.IsType(err, errors.TypeInput) {
				t.Fatalf("expected input error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.json":    FormatJSON,
		"a.YAML":    FormatYAML,
		"dir/a.yml": FormatYAML,
		"a.hcl":     FormatHCL,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		if err != nil || got != want {
			t.Errorf("DetectFormat(%q) = %q, %v; want %q", path, got, err, want)
		}
	}
}
