// Package sla compares vendor service levels against scenario requirements.
package sla

import (
	"fmt"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// NoSLAGap is the single gap reported for vendors without SLA data
const NoSLAGap = "no SLA information provided"

// Result lists every requirement the vendor misses
type Result struct {
	Meets bool     `json:"meets"`
	Gaps  []string `json:"gaps"`
}

var ranks = map[types.CoverageTier]int{
	types.CoverageBusiness: 1,
	types.Coverage16x5:     2,
	types.Coverage24x7:     3,
}

// requiredRank treats an unspecified requirement as the strictest tier
func requiredRank(t types.CoverageTier) int {
	if r, ok := ranks[t]; ok {
		return r
	}
	return 3
}

// offeredRank treats an unspecified offer as the weakest tier
func offeredRank(t types.CoverageTier) int {
	if r, ok := ranks[t]; ok {
		return r
	}
	return 1
}

// Check evaluates offered against the scenario's response, resolution and
// coverage requirements. Gaps are ordered response, resolution, coverage,
// and by severity within each group.
func Check(offered *types.SLA, scenario *types.Scenario) Result {
	if offered == nil {
		return Result{Meets: false, Gaps: []string{NoSLAGap}}
	}

	gaps := []string{}
	gaps = appendTimeGaps(gaps, "response time", " min",
		scenario.RequiredResponseMinutes, offered.ResponseMinutes)
	gaps = appendTimeGaps(gaps, "resolution time", "h",
		scenario.RequiredResolutionHours, offered.ResolutionHours)

	if offeredRank(offered.Coverage) < requiredRank(scenario.Coverage) {
		gaps = append(gaps, fmt.Sprintf("coverage %s does not meet required %s",
			label(offered.Coverage), label(scenario.Coverage)))
	}

	return Result{Meets: len(gaps) == 0, Gaps: gaps}
}

func appendTimeGaps(gaps []string, what, unit string, required, offered map[types.Severity]decimal.Decimal) []string {
	for _, sev := range types.Severities {
		req, ok := required[sev]
		if !ok {
			continue
		}
		off, ok := offered[sev]
		if !ok {
			continue
		}
		if off.GreaterThan(req) {
			gaps = append(gaps, fmt.Sprintf("%s %s %s%s exceeds required %s%s",
				sev, what, off, unit, req, unit))
		}
	}
	return gaps
}

func label(t types.CoverageTier) string {
	if t == "" {
		return "unspecified"
	}
	return string(t)
}
