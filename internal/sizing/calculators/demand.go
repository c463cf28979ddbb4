package calculators

import (
	"github.com/nbr5410/load-planner/internal/sizing"
)

// DemandBracket applies Percent to any installed power up to UpToVA.
type DemandBracket struct {
	UpToVA  float64
	Percent int
}

// DefaultDemandBrackets is the graduated demand schedule for lighting and general-purpose outlets.
var DefaultDemandBrackets = []DemandBracket{
	{UpToVA: 1000, Percent: 87},
	{UpToVA: 2000, Percent: 75},
	{UpToVA: 3000, Percent: 68},
	{UpToVA: 4000, Percent: 62},
	{UpToVA: 5000, Percent: 56},
	{UpToVA: 6000, Percent: 51},
	{UpToVA: 7000, Percent: 47},
	{UpToVA: 8000, Percent: 44},
	{UpToVA: 9000, Percent: 41},
	{UpToVA: 10000, Percent: 38},
}

// DefaultDemandPercentAbove applies above the last bracket.
const DefaultDemandPercentAbove = 35

// Compile-time assertion that DemandSchedule implements the DemandFactor interface.
var _ sizing.DemandFactor = (*DemandSchedule)(nil)

// DemandSchedule selects a demand factor from the total installed power and applies it to that total.
type DemandSchedule struct {
	brackets     []DemandBracket
	percentAbove int
}

type DemandScheduleOption func(*DemandSchedule)

// WithDemandBrackets replaces the schedule. Brackets must be sorted by ascending UpToVA.
func WithDemandBrackets(brackets []DemandBracket, percentAbove int) DemandScheduleOption {
	return func(d *DemandSchedule) {
		if len(brackets) > 0 && percentAbove > 0 {
			d.brackets = brackets
			d.percentAbove = percentAbove
		}
	}
}

func NewDemandSchedule(opts ...DemandScheduleOption) *DemandSchedule {
	res := DemandSchedule{
		brackets:     DefaultDemandBrackets,
		percentAbove: DefaultDemandPercentAbove,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Percent returns the demand factor, in percent, for powerVA.
func (d *DemandSchedule) Percent(powerVA float64) int {
	for _, bracket := range d.brackets {
		if powerVA <= bracket.UpToVA {
			return bracket.Percent
		}
	}
	return d.percentAbove
}

// Apply returns the demanded power for powerVA.
// Factors are integer percentages: 2500 VA at 68% is exactly 1700 VA.
func (d *DemandSchedule) Apply(powerVA float64) float64 {
	return powerVA * float64(d.Percent(powerVA)) / 100
}
