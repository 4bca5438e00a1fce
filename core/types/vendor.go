package types

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"support-cost/internal/errors"
)

// PricingModel is the vendor's billing method
type PricingModel string

const (
	// ModelPercentSpend charges a percentage of cloud spend
	ModelPercentSpend PricingModel = "percent_spend"

	// ModelTiered charges a flat fee chosen by ticket volume
	ModelTiered PricingModel = "tiered"

	// ModelPerIncident charges a unit price per ticket by severity
	ModelPerIncident PricingModel = "per_incident"

	// ModelRetainerAddons charges a retainer plus optional surcharges
	ModelRetainerAddons PricingModel = "retainer_addons"
)

// PricingModels lists every supported model
var PricingModels = []PricingModel{
	ModelPercentSpend,
	ModelTiered,
	ModelPerIncident,
	ModelRetainerAddons,
}

// Valid reports whether m is a supported model
func (m PricingModel) Valid() bool {
	for _, known := range PricingModels {
		if m == known {
			return true
		}
	}
	return false
}

// Vendor is a pricing catalog entry
type Vendor struct {
	ID       string       `json:"id" validate:"required"`
	Name     string       `json:"name" validate:"required"`
	Currency Currency     `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
	Model    PricingModel `json:"pricing_model" validate:"required,pricing_model"`

	// Rules carries the model-specific pricing parameters. Its concrete
	// type always matches Model for vendors decoded from files.
	Rules Rules `json:"rules"`

	// SLA is nil when the vendor publishes no service levels
	SLA *SLA `json:"sla,omitempty" validate:"omitempty"`

	Notes string `json:"notes,omitempty"`
}

// SLA is a vendor's service-level capability
type SLA struct {
	Coverage        CoverageTier                 `json:"coverage" validate:"omitempty,oneof=business 16x5 24x7"`
	ResponseMinutes map[Severity]decimal.Decimal `json:"response_minutes,omitempty"`
	ResolutionHours map[Severity]decimal.Decimal `json:"resolution_hours,omitempty"`
}

// Rules is the closed set of pricing rule variants. The unexported marker
// keeps other packages from adding variants, so a type switch over the four
// concrete types below is exhaustive.
type Rules interface {
	Model() PricingModel
	isRules()
}

// PercentSpendRules prices support as a share of projected cloud spend
type PercentSpendRules struct {
	Percent decimal.Decimal  `json:"percent"`
	MinFee  *decimal.Decimal `json:"min_fee,omitempty"`
}

// Tier is one step of a volume-tiered price list
type Tier struct {
	// UpTo is the inclusive ticket ceiling for this tier
	UpTo decimal.Decimal `json:"up_to"`

	// Fee is the flat monthly fee charged within the tier
	Fee decimal.Decimal `json:"fee"`
}

// TieredRules prices support by monthly ticket volume
type TieredRules struct {
	Tiers []Tier `json:"tiers" validate:"dive"`
}

// PerIncidentRules prices each ticket by severity
type PerIncidentRules struct {
	Prices map[Severity]decimal.Decimal `json:"prices"`
}

// RetainerRules is a base retainer with independently optional addons
type RetainerRules struct {
	BaseRetainer       *decimal.Decimal    `json:"base_retainer,omitempty"`
	PerExtraLanguage   *decimal.Decimal    `json:"per_extra_language,omitempty"`
	PhoneFee           *decimal.Decimal    `json:"phone_fee,omitempty"`
	Uplift24x7Pct      *decimal.Decimal    `json:"uplift_24x7_pct,omitempty"`
	ChannelAdjustments *ChannelAdjustments `json:"channel_adjustments,omitempty"`
}

// ChannelAdjustments are amounts weighted by the scenario's channel mix
type ChannelAdjustments struct {
	Email *decimal.Decimal `json:"email,omitempty"`
	Chat  *decimal.Decimal `json:"chat,omitempty"`
	Phone *decimal.Decimal `json:"phone,omitempty"`
}

// Amount returns the configured adjustment for a channel
func (a *ChannelAdjustments) Amount(c Channel) (decimal.Decimal, bool) {
	if a == nil {
		return decimal.Zero, false
	}
	var p *decimal.Decimal
	switch c {
	case ChannelEmail:
		p = a.Email
	case ChannelChat:
		p = a.Chat
	case ChannelPhone:
		p = a.Phone
	}
	if p == nil {
		return decimal.Zero, false
	}
	return *p, true
}

func (PercentSpendRules) Model() PricingModel { return ModelPercentSpend }
func (TieredRules) Model() PricingModel       { return ModelTiered }
func (PerIncidentRules) Model() PricingModel  { return ModelPerIncident }
func (RetainerRules) Model() PricingModel     { return ModelRetainerAddons }

func (PercentSpendRules) isRules() {}
func (TieredRules) isRules()       {}
func (PerIncidentRules) isRules()  {}
func (RetainerRules) isRules()     {}

// DecodeRules decodes a raw rules object into the variant for model.
// A missing or null payload yields the zero-valued variant.
func DecodeRules(model PricingModel, raw []byte) (Rules, error) {
	raw = bytes.TrimSpace(raw)
	empty := len(raw) == 0 || bytes.Equal(raw, []byte("null"))

	var target Rules
	var err error
	switch model {
	case ModelPercentSpend:
		var r PercentSpendRules
		if !empty {
			err = json.Unmarshal(raw, &r)
		}
		target = r
	case ModelTiered:
		var r TieredRules
		if !empty {
			err = json.Unmarshal(raw, &r)
		}
		target = r
	case ModelPerIncident:
		var r PerIncidentRules
		if !empty {
			err = json.Unmarshal(raw, &r)
		}
		target = r
	case ModelRetainerAddons:
		var r RetainerRules
		if !empty {
			err = json.Unmarshal(raw, &r)
		}
		target = r
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown pricing model %q", model).
			WithContext("pricing_model", string(model))
	}
	if err != nil {
		return nil, errors.Parsing(fmt.Sprintf("invalid %s rules", model), err)
	}
	return target, nil
}

// UnmarshalJSON decodes a vendor and resolves its rules variant from the
// declared pricing model.
func (v *Vendor) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Currency Currency        `json:"currency"`
		Model    PricingModel    `json:"pricing_model"`
		Rules    json.RawMessage `json:"rules"`
		SLA      *SLA            `json:"sla"`
		Notes    string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rules, err := DecodeRules(raw.Model, raw.Rules)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithContext("vendor", raw.ID)
		}
		return err
	}

	*v = Vendor{
		ID:       raw.ID,
		Name:     raw.Name,
		Currency: raw.Currency,
		Model:    raw.Model,
		Rules:    rules,
		SLA:      raw.SLA,
		Notes:    raw.Notes,
	}
	return nil
}
