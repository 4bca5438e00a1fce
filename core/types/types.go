// Package types contains the core domain types for support vendor cost
// comparison. Vendors and scenarios are immutable inputs; comparison
// results are derived fresh on every run.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Severity is a ticket priority class, sev1 being the most urgent
type Severity string

const (
	Sev1 Severity = "sev1"
	Sev2 Severity = "sev2"
	Sev3 Severity = "sev3"
)

// Severities lists every severity in urgency order. Iteration over
// per-severity maps always goes through this slice so output is stable.
var Severities = []Severity{Sev1, Sev2, Sev3}

// CoverageTier is the breadth of support hours
type CoverageTier string

const (
	// CoverageBusiness is weekday business hours
	CoverageBusiness CoverageTier = "business"

	// Coverage16x5 is sixteen hours a day, five days a week
	Coverage16x5 CoverageTier = "16x5"

	// Coverage24x7 is around the clock
	Coverage24x7 CoverageTier = "24x7"
)

// Valid reports whether the tier is one of the known tiers
func (t CoverageTier) Valid() bool {
	switch t {
	case CoverageBusiness, Coverage16x5, Coverage24x7:
		return true
	}
	return false
}

// Channel is a support contact channel
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelChat  Channel = "chat"
	ChannelPhone Channel = "phone"
)

// Channels lists the channels that carry mix percentages and adjustments
var Channels = []Channel{ChannelEmail, ChannelChat, ChannelPhone}
