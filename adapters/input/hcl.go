package input

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"support-cost/core/types"
	"support-cost/internal/errors"
)

// Numeric attributes decode into strings and are parsed as decimals,
// keeping literals such as 0.03 exact.

type hclVendorFile struct {
	Vendors []hclVendor `hcl:"vendor,block"`
}

type hclVendor struct {
	ID       string    `hcl:"id,label"`
	Name     string    `hcl:"name"`
	Currency string    `hcl:"currency,optional"`
	Model    string    `hcl:"pricing_model"`
	Notes    string    `hcl:"notes,optional"`
	Rules    *hclRules `hcl:"rules,block"`
	SLA      *hclSLA   `hcl:"sla,block"`
}

type hclRules struct {
	Percent            *string           `hcl:"percent,optional"`
	MinFee             *string           `hcl:"min_fee,optional"`
	Tiers              []hclTier         `hcl:"tier,block"`
	Prices             map[string]string `hcl:"prices,optional"`
	BaseRetainer       *string           `hcl:"base_retainer,optional"`
	PerExtraLanguage   *string           `hcl:"per_extra_language,optional"`
	PhoneFee           *string           `hcl:"phone_fee,optional"`
	Uplift24x7Pct      *string           `hcl:"uplift_24x7_pct,optional"`
	ChannelAdjustments map[string]string `hcl:"channel_adjustments,optional"`
}

type hclTier struct {
	UpTo string `hcl:"up_to"`
	Fee  string `hcl:"fee"`
}

type hclSLA struct {
	Coverage        string            `hcl:"coverage,optional"`
	ResponseMinutes map[string]string `hcl:"response_minutes,optional"`
	ResolutionHours map[string]string `hcl:"resolution_hours,optional"`
}

type hclScenarioFile struct {
	Scenarios []hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	Name                    string            `hcl:"name,label"`
	MonthlyTicketsTotal     string            `hcl:"monthly_tickets_total"`
	TicketsBySeverity       map[string]string `hcl:"tickets_by_severity,optional"`
	CloudSpend              *string           `hcl:"cloud_spend,optional"`
	Agents                  int               `hcl:"agents,optional"`
	Coverage                string            `hcl:"coverage,optional"`
	Channels                []string          `hcl:"channels,optional"`
	LanguagesCount          int               `hcl:"languages_count,optional"`
	RequiredResponseMinutes map[string]string `hcl:"required_response_minutes,optional"`
	RequiredResolutionHours map[string]string `hcl:"required_resolution_hours,optional"`
	TicketGrowthPct         *string           `hcl:"ticket_growth_pct,optional"`
	SpendGrowthPct          *string           `hcl:"spend_growth_pct,optional"`
	MonthsToProject         int               `hcl:"months_to_project,optional"`
	Currency                string            `hcl:"currency,optional"`
	FXRates                 map[string]string `hcl:"fx_rates,optional"`
	ChannelMix              map[string]string `hcl:"channel_mix,optional"`
}

func decodeHCLVendors(data []byte, filename string) ([]types.Vendor, error) {
	var file hclVendorFile
	if err := decodeHCL(data, filename, &file); err != nil {
		return nil, err
	}

	vendors := make([]types.Vendor, 0, len(file.Vendors))
	for _, hv := range file.Vendors {
		v, err := hv.toVendor()
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("vendor", hv.ID)
		}
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("vendor %q", hv.ID), err).WithContext("vendor", hv.ID)
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func decodeHCLScenarios(data []byte, filename string) ([]types.Scenario, error) {
	var file hclScenarioFile
	if err := decodeHCL(data, filename, &file); err != nil {
		return nil, err
	}

	scenarios := make([]types.Scenario, 0, len(file.Scenarios))
	for _, hs := range file.Scenarios {
		s, err := hs.toScenario()
		if err != nil {
			return nil, errors.Parsing(fmt.Sprintf("scenario %q", hs.Name), err).WithContext("scenario", hs.Name)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func decodeHCL(data []byte, filename string, target interface{}) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return errors.Parsing("invalid HCL", diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, target); diags.HasErrors() {
		return errors.Parsing("invalid HCL", diags)
	}
	return nil
}

func (hv hclVendor) toVendor() (types.Vendor, error) {
	v := types.Vendor{
		ID:       hv.ID,
		Name:     hv.Name,
		Currency: types.Currency(hv.Currency),
		Model:    types.PricingModel(hv.Model),
		Notes:    hv.Notes,
	}

	rules := hv.Rules
	if rules == nil {
		rules = &hclRules{}
	}
	r, err := rules.toRules(v.Model)
	if err != nil {
		return types.Vendor{}, err
	}
	v.Rules = r

	if hv.SLA != nil {
		sla := &types.SLA{Coverage: types.CoverageTier(hv.SLA.Coverage)}
		if sla.ResponseMinutes, err = severityMap(hv.SLA.ResponseMinutes); err != nil {
			return types.Vendor{}, fmt.Errorf("response_minutes: %w", err)
		}
		if sla.ResolutionHours, err = severityMap(hv.SLA.ResolutionHours); err != nil {
			return types.Vendor{}, fmt.Errorf("resolution_hours: %w", err)
		}
		v.SLA = sla
	}
	return v, nil
}

func (hr *hclRules) toRules(model types.PricingModel) (types.Rules, error) {
	switch model {
	case types.ModelPercentSpend:
		r := types.PercentSpendRules{}
		pct, err := optionalDecimal(hr.Percent)
		if err != nil {
			return nil, fmt.Errorf("percent: %w", err)
		}
		if pct != nil {
			r.Percent = *pct
		}
		if r.MinFee, err = optionalDecimal(hr.MinFee); err != nil {
			return nil, fmt.Errorf("min_fee: %w", err)
		}
		return r, nil

	case types.ModelTiered:
		r := types.TieredRules{Tiers: make([]types.Tier, 0, len(hr.Tiers))}
		for i, t := range hr.Tiers {
			upTo, err := decimal.NewFromString(t.UpTo)
			if err != nil {
				return nil, fmt.Errorf("tier %d up_to: %w", i, err)
			}
			fee, err := decimal.NewFromString(t.Fee)
			if err != nil {
				return nil, fmt.Errorf("tier %d fee: %w", i, err)
			}
			r.Tiers = append(r.Tiers, types.Tier{UpTo: upTo, Fee: fee})
		}
		return r, nil

	case types.ModelPerIncident:
		prices, err := severityMap(hr.Prices)
		if err != nil {
			return nil, fmt.Errorf("prices: %w", err)
		}
		return types.PerIncidentRules{Prices: prices}, nil

	case types.ModelRetainerAddons:
		var r types.RetainerRules
		var err error
		fields := []struct {
			name string
			src  *string
			dst  **decimal.Decimal
		}{
			{"base_retainer", hr.BaseRetainer, &r.BaseRetainer},
			{"per_extra_language", hr.PerExtraLanguage, &r.PerExtraLanguage},
			{"phone_fee", hr.PhoneFee, &r.PhoneFee},
			{"uplift_24x7_pct", hr.Uplift24x7Pct, &r.Uplift24x7Pct},
		}
		for _, f := range fields {
			if *f.dst, err = optionalDecimal(f.src); err != nil {
				return nil, fmt.Errorf("%s: %w", f.name, err)
			}
		}
		if hr.ChannelAdjustments != nil {
			adj := &types.ChannelAdjustments{}
			if err := assignChannels(hr.ChannelAdjustments, &adj.Email, &adj.Chat, &adj.Phone); err != nil {
				return nil, fmt.Errorf("channel_adjustments: %w", err)
			}
			r.ChannelAdjustments = adj
		}
		return r, nil
	}

	return nil, errors.Newf(errors.TypeInput, "unknown pricing model %q", model).
		WithContext("pricing_model", string(model))
}

func (hs hclScenario) toScenario() (types.Scenario, error) {
	s := types.Scenario{
		Name:            hs.Name,
		Agents:          hs.Agents,
		Coverage:        types.CoverageTier(hs.Coverage),
		LanguagesCount:  hs.LanguagesCount,
		MonthsToProject: hs.MonthsToProject,
		Currency:        types.Currency(hs.Currency),
	}
	for _, c := range hs.Channels {
		s.Channels = append(s.Channels, types.Channel(c))
	}

	var err error
	if s.MonthlyTicketsTotal, err = decimal.NewFromString(hs.MonthlyTicketsTotal); err != nil {
		return s, fmt.Errorf("monthly_tickets_total: %w", err)
	}

	scalars := []struct {
		name string
		src  *string
		dst  *decimal.Decimal
	}{
		{"cloud_spend", hs.CloudSpend, &s.CloudSpend},
		{"ticket_growth_pct", hs.TicketGrowthPct, &s.TicketGrowthPct},
		{"spend_growth_pct", hs.SpendGrowthPct, &s.SpendGrowthPct},
	}
	for _, f := range scalars {
		v, err := optionalDecimal(f.src)
		if err != nil {
			return s, fmt.Errorf("%s: %w", f.name, err)
		}
		if v != nil {
			*f.dst = *v
		}
	}

	maps := []struct {
		name string
		src  map[string]string
		dst  *map[types.Severity]decimal.Decimal
	}{
		{"tickets_by_severity", hs.TicketsBySeverity, &s.TicketsBySeverity},
		{"required_response_minutes", hs.RequiredResponseMinutes, &s.RequiredResponseMinutes},
		{"required_resolution_hours", hs.RequiredResolutionHours, &s.RequiredResolutionHours},
	}
	for _, m := range maps {
		if *m.dst, err = severityMap(m.src); err != nil {
			return s, fmt.Errorf("%s: %w", m.name, err)
		}
	}

	if hs.FXRates != nil {
		s.FXRates = make(map[types.Currency]decimal.Decimal, len(hs.FXRates))
		for code, raw := range hs.FXRates {
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return s, fmt.Errorf("fx_rates.%s: %w", code, err)
			}
			s.FXRates[types.Currency(code)] = rate
		}
	}

	if hs.ChannelMix != nil {
		mix := &types.ChannelMix{}
		if err := assignChannels(hs.ChannelMix, &mix.Email, &mix.Chat, &mix.Phone); err != nil {
			return s, fmt.Errorf("channel_mix: %w", err)
		}
		s.ChannelMix = mix
	}
	return s, nil
}

func optionalDecimal(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func severityMap(raw map[string]string) (map[types.Severity]decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[types.Severity]decimal.Decimal, len(raw))
	for k, v := range raw {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[types.Severity(k)] = d
	}
	return out, nil
}

func assignChannels(raw map[string]string, email, chat, phone **decimal.Decimal) error {
	for k, v := range raw {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		switch types.Channel(k) {
		case types.ChannelEmail:
			*email = &d
		case types.ChannelChat:
			*chat = &d
		case types.ChannelPhone:
			*phone = &d
		default:
			return fmt.Errorf("unknown channel %q", k)
		}
	}
	return nil
}
