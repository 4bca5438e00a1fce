// Package engine provides the comparison engine.
// CLI and report renderers are thin wrappers around it.
package engine

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"support-cost/core/coverage"
	"support-cost/core/currency"
	"support-cost/core/determinism"
	"support-cost/core/pricing"
	"support-cost/core/sla"
	"support-cost/core/types"
	"support-cost/core/usage"
	"support-cost/core/validation"
	"support-cost/internal/errors"
	"support-cost/internal/logging"
)

var monthsPerYear = decimal.NewFromInt(12)

// Engine evaluates vendors against scenarios. It holds no per-run state
// and is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
	config Config
}

// Config configures the engine
type Config struct {
	// StrictCurrency turns a missing exchange rate into a vendor error
	// instead of leaving the amount unconverted
	StrictCurrency bool
}

// Option customizes an Engine
type Option func(*Engine)

// WithLogger sets the logger used for per-vendor diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConfig sets the engine configuration
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// New creates an engine that logs through the global logger by default
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.Logger}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	return e
}

// Compare evaluates every vendor for one scenario with a default engine
func Compare(vendors []types.Vendor, scenario *types.Scenario) types.Comparison {
	return New().Compare(vendors, scenario)
}

// Compare evaluates every vendor for one scenario. Invalid input yields no
// results. A vendor that cannot be priced is left out and reported in the
// validation errors; the remaining vendors are still returned, cheapest
// first.
func (e *Engine) Compare(vendors []types.Vendor, scenario *types.Scenario) types.Comparison {
	cmp := types.Comparison{Results: []types.ComparisonResult{}}
	if scenario != nil {
		cmp.ScenarioName = scenario.Name
		cmp.Currency = scenario.Currency
	}
	log := e.logger.With(logging.Scenario(cmp.ScenarioName))

	if hash, err := determinism.Fingerprint(vendors, scenario); err == nil {
		cmp.Fingerprint = hash.String()
	} else {
		log.Debug("input fingerprint unavailable", zap.Error(err))
	}

	cmp.Validation = validation.Validate(vendors, scenario)
	if !cmp.Validation.Valid {
		log.Warn("scenario rejected", zap.Strings("errors", cmp.Validation.Errors))
		return cmp
	}

	projection := usage.Project(
		scenario.MonthlyTicketsTotal, scenario.TicketGrowthPct,
		scenario.CloudSpend, scenario.SpendGrowthPct,
		scenario.MonthsToProject,
	)
	log.Debug("projected scenario volumes",
		zap.Stringer("tickets", projection.Tickets),
		zap.Stringer("spend", projection.Spend),
		zap.Int("months", scenario.MonthsToProject),
	)

	for i := range vendors {
		vendor := &vendors[i]
		result, err := e.evaluate(vendor, scenario, projection, log.With(logging.Vendor(vendor.ID)))
		if err != nil {
			log.Warn("vendor excluded from comparison", logging.Vendor(vendor.ID), zap.Error(err))
			cmp.Validation.Errors = append(cmp.Validation.Errors, fmt.Sprintf("%s: %v", displayName(vendor), err))
			continue
		}
		cmp.Results = append(cmp.Results, result)
	}

	slices.SortStableFunc(cmp.Results, func(a, b types.ComparisonResult) int {
		return a.MonthlyCost.Cmp(b.MonthlyCost)
	})
	cmp.Validation.Valid = len(cmp.Validation.Errors) == 0

	return cmp
}

// CompareAll runs Compare once per scenario, preserving input order
func (e *Engine) CompareAll(vendors []types.Vendor, scenarios []types.Scenario) []types.Comparison {
	out := make([]types.Comparison, 0, len(scenarios))
	for i := range scenarios {
		out = append(out, e.Compare(vendors, &scenarios[i]))
	}
	return out
}

func (e *Engine) evaluate(vendor *types.Vendor, scenario *types.Scenario, projection usage.Projection, log *zap.Logger) (types.ComparisonResult, error) {
	base, err := pricing.Calculate(vendor, pricing.Input{Scenario: scenario, Projection: projection})
	if err != nil {
		return types.ComparisonResult{}, err
	}

	var offered types.CoverageTier
	if vendor.SLA != nil {
		offered = vendor.SLA.Coverage
	}
	adjusted, multiplier := coverage.Adjust(base, scenario.Coverage, offered)

	source := vendor.Currency
	if source == "" {
		source = scenario.Currency
	}

	var warnings []string
	monthly, warn := currency.Convert(adjusted, source, scenario.Currency, scenario.FXRates)
	if warn != nil {
		if e.config.StrictCurrency {
			return types.ComparisonResult{}, errors.Currency(warn.String()).
				WithContext("from", string(warn.From)).
				WithContext("to", string(warn.To))
		}
		log.Warn("exchange rate missing, cost left unconverted",
			zap.String("from", string(warn.From)),
			zap.String("to", string(warn.To)),
		)
		warnings = append(warnings, warn.String())
	}

	perTicket := decimal.Zero
	if projection.Tickets.IsPositive() {
		perTicket = monthly.Div(projection.Tickets)
	}

	check := sla.Check(vendor.SLA, scenario)

	log.Debug("vendor evaluated",
		zap.String("model", string(vendor.Model)),
		zap.Stringer("base_cost", base),
		zap.Stringer("coverage_multiplier", multiplier),
		zap.Stringer("monthly_cost", monthly),
		zap.Bool("meets_sla", check.Meets),
	)

	return types.ComparisonResult{
		VendorID:      vendor.ID,
		VendorName:    displayName(vendor),
		MonthlyCost:   monthly,
		AnnualCost:    monthly.Mul(monthsPerYear),
		CostPerTicket: perTicket,
		MeetsSLA:      check.Meets,
		Gaps:          check.Gaps,
		Notes:         vendor.Notes,
		Assumptions: types.Assumptions{
			ProjectedTickets:   projection.Tickets,
			ProjectedSpend:     projection.Spend,
			CoverageMultiplier: multiplier,
			BaseCost:           base,
			SourceCurrency:     source,
			Warnings:           warnings,
		},
	}, nil
}

func displayName(v *types.Vendor) string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}
