package calculators

import (
	"math"

	"github.com/nbr5410/load-planner/internal/sizing"
)

// CableRating is the largest current a conductor size can carry.
type CableRating struct {
	Size        sizing.Cable
	MaxCurrentA float64
}

// DefaultCableCatalog lists conductor sizes by ascending ampacity.
var DefaultCableCatalog = []CableRating{
	{Size: 1.5, MaxCurrentA: 15},
	{Size: 2.5, MaxCurrentA: 21},
	{Size: 4.0, MaxCurrentA: 28},
	{Size: 6.0, MaxCurrentA: 36},
	{Size: 10.0, MaxCurrentA: 50},
	{Size: 16.0, MaxCurrentA: 68},
}

// DefaultBreakerSeries is the standard commercial breaker series in amperes.
var DefaultBreakerSeries = []int{10, 15, 20, 25, 30, 35, 40, 50, 60, 70}

// breakerStep is used to round breakers above the standard series.
const breakerStep = 5

// Compile-time assertion that Circuit implements the CircuitSizer interface.
var _ sizing.CircuitSizer = (*Circuit)(nil)

// Circuit selects the conductor and breaker of a circuit from its current.
type Circuit struct {
	cables   []CableRating
	breakers []int
}

// CircuitOption is a functional option for configuring a Circuit sizer.
type CircuitOption func(*Circuit)

// WithCableCatalog replaces the cable catalog. Ratings must be sorted by ascending current.
// An empty catalog is ignored and the default is kept.
func WithCableCatalog(catalog []CableRating) CircuitOption {
	return func(c *Circuit) {
		if len(catalog) > 0 {
			c.cables = catalog
		}
	}
}

// WithBreakerSeries replaces the breaker series. Values must be sorted ascending.
// An empty series is ignored and the default is kept.
func WithBreakerSeries(series []int) CircuitOption {
	return func(c *Circuit) {
		if len(series) > 0 {
			c.breakers = series
		}
	}
}

// NewCircuit creates a Circuit sizer with the standard catalog and breaker series.
func NewCircuit(opts ...CircuitOption) *Circuit {
	res := Circuit{
		cables:   DefaultCableCatalog,
		breakers: DefaultBreakerSeries,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Size returns the circuit details for powerVA at voltage.
// The selected cable is never smaller than minimum. A zero power or a non-positive voltage
// yields an unused circuit. Negative power is not rejected here and yields a negative current.
func (c *Circuit) Size(powerVA float64, voltage float64, minimum sizing.Cable) sizing.CircuitDetails {
	if powerVA == 0 || voltage <= 0 {
		return sizing.NoCircuit()
	}

	current := powerVA / voltage
	cable, cableInCatalog := c.cableFor(current)
	breaker, breakerInSeries := c.breakerFor(current)

	label := sizing.CableOverCatalog
	if cableInCatalog {
		if cable < minimum {
			cable = minimum
		}
		label = cable.String()
	}

	return sizing.CircuitDetails{
		PowerVA:     powerVA,
		CurrentA:    current,
		CableMM2:    label,
		BreakerA:    breaker,
		OverCatalog: !cableInCatalog || !breakerInSeries,
	}
}

func (c *Circuit) cableFor(current float64) (sizing.Cable, bool) {
	for _, rating := range c.cables {
		if current <= rating.MaxCurrentA {
			return rating.Size, true
		}
	}
	return 0, false
}

// breakerFor rounds up to the next multiple of breakerStep when the current exceeds the series.
func (c *Circuit) breakerFor(current float64) (int, bool) {
	for _, size := range c.breakers {
		if float64(size) >= current {
			return size, true
		}
	}
	return int(math.Ceil(current/breakerStep)) * breakerStep, false
}
