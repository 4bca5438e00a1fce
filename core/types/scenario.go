package types

import "github.com/shopspring/decimal"

// Scenario describes a buyer's support situation
type Scenario struct {
	// Name is the display name, used to group multi-scenario output
	Name string `json:"name"`

	// MonthlyTicketsTotal is the current monthly ticket volume
	MonthlyTicketsTotal decimal.Decimal `json:"monthly_tickets_total"`

	// TicketsBySeverity splits the monthly volume by severity
	TicketsBySeverity map[Severity]decimal.Decimal `json:"tickets_by_severity,omitempty"`

	// CloudSpend is the current monthly cloud spend
	CloudSpend decimal.Decimal `json:"cloud_spend"`

	// Agents is the current in-house agent count
	Agents int `json:"agents,omitempty" validate:"gte=0"`

	// Coverage is the required coverage window
	Coverage CoverageTier `json:"coverage" validate:"omitempty,oneof=business 16x5 24x7"`

	// Channels lists the channels the buyer supports
	Channels []Channel `json:"channels,omitempty" validate:"dive,oneof=email chat phone"`

	// LanguagesCount is the number of supported languages
	LanguagesCount int `json:"languages_count" validate:"gte=0"`

	// RequiredResponseMinutes is the response-time ceiling per severity
	RequiredResponseMinutes map[Severity]decimal.Decimal `json:"required_response_minutes,omitempty"`

	// RequiredResolutionHours is the resolution-time ceiling per severity
	RequiredResolutionHours map[Severity]decimal.Decimal `json:"required_resolution_hours,omitempty"`

	// TicketGrowthPct is compound ticket growth per month, in percent
	TicketGrowthPct decimal.Decimal `json:"ticket_growth_pct"`

	// SpendGrowthPct is compound spend growth per month, in percent
	SpendGrowthPct decimal.Decimal `json:"spend_growth_pct"`

	// MonthsToProject is the projection horizon
	MonthsToProject int `json:"months_to_project" validate:"gte=0"`

	// Currency is the reporting currency
	Currency Currency `json:"currency" validate:"omitempty,len=3,uppercase"`

	// FXRates maps currency codes to rates relative to a common base
	FXRates map[Currency]decimal.Decimal `json:"fx_rates,omitempty"`

	// ChannelMix is the optional share of tickets per channel, in percent
	ChannelMix *ChannelMix `json:"channel_mix,omitempty"`
}

// ChannelMix holds per-channel ticket percentages; each share is optional
type ChannelMix struct {
	Email *decimal.Decimal `json:"email,omitempty"`
	Chat  *decimal.Decimal `json:"chat,omitempty"`
	Phone *decimal.Decimal `json:"phone,omitempty"`
}

// Share returns the configured percentage for a channel
func (m *ChannelMix) Share(c Channel) (decimal.Decimal, bool) {
	if m == nil {
		return decimal.Zero, false
	}
	var p *decimal.Decimal
	switch c {
	case ChannelEmail:
		p = m.Email
	case ChannelChat:
		p = m.Chat
	case ChannelPhone:
		p = m.Phone
	}
	if p == nil {
		return decimal.Zero, false
	}
	return *p, true
}

// UsesChannel reports whether the scenario lists channel c
func (s *Scenario) UsesChannel(c Channel) bool {
	for _, ch := range s.Channels {
		if ch == c {
			return true
		}
	}
	return false
}
