package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/sizing"
)

const (
	MainCircuitName       = "Main / Distribution board"
	ApplianceCircuitLabel = "TUE"
)

type StandardResultsProcessor struct {
	mainVoltage sizing.Voltage
	now         func() time.Time
}

type ProcessorOption func(*StandardResultsProcessor)

// WithMainVoltage sets the voltage shown next to the main circuit current.
func WithMainVoltage(v sizing.Voltage) ProcessorOption {
	return func(p *StandardResultsProcessor) {
		if v > 0 {
			p.mainVoltage = v
		}
	}
}

// WithClock sets the clock used for the report timestamps.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *StandardResultsProcessor) {
		if now != nil {
			p.now = now
		}
	}
}

func NewStandardResultsProcessor(opts ...ProcessorOption) *StandardResultsProcessor {
	p := &StandardResultsProcessor{
		mainVoltage: sizing.DefaultMainVoltage,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *StandardResultsProcessor) ProcessResults(results *sizing.CalculationResults) (*types.ReportData, error) {
	if results == nil {
		return nil, errors.New("no calculation results to report")
	}

	return &types.ReportData{
		Results:     results,
		MainVoltage: p.mainVoltage,
		Quantities:  p.processQuantities(results),
		Circuits:    p.processCircuits(results),
		Timestamps:  p.generateTimestamps(),
	}, nil
}

func (p *StandardResultsProcessor) processQuantities(results *sizing.CalculationResults) types.QuantitySummary {
	summary := types.QuantitySummary{
		ApplianceCircuits: len(results.Appliances),
		Breakers:          1 + len(results.Appliances),
	}
	for _, room := range results.Rooms {
		summary.LightingPoints += room.Lighting.Quantity
		summary.GeneralOutlets += room.Tugs.Quantity
	}

	summary.Items = []types.QuantityItem{
		{Item: "Lighting points (lamps)", Quantity: summary.LightingPoints},
		{Item: "General-purpose outlets (TUGs)", Quantity: summary.GeneralOutlets},
		{Item: "Specific-use outlets (TUEs)", Quantity: summary.ApplianceCircuits},
		{
			Item:     "Breakers (minimum estimate)",
			Quantity: summary.Breakers,
			Note:     "1 main + 1 per TUE. TUG and lighting circuits are usually grouped.",
		},
	}

	return summary
}

func (p *StandardResultsProcessor) processCircuits(results *sizing.CalculationResults) []types.CircuitRow {
	main := results.Summary.MainCircuit
	rows := make([]types.CircuitRow, 0, len(results.Appliances)+1)
	rows = append(rows, types.CircuitRow{
		Circuit:  MainCircuitName,
		PowerVA:  results.Summary.DemandedPowerVA,
		CurrentA: main.CurrentA,
		Cable:    main.CableMM2,
		BreakerA: main.BreakerA,
	})

	for _, appliance := range results.Appliances {
		rows = append(rows, types.CircuitRow{
			Circuit:  fmt.Sprintf("%s - %s", ApplianceCircuitLabel, appliance.Name),
			PowerVA:  appliance.Circuit.PowerVA,
			CurrentA: appliance.Circuit.CurrentA,
			Cable:    appliance.Circuit.CableMM2,
			BreakerA: appliance.Circuit.BreakerA,
		})
	}

	return rows
}

func (p *StandardResultsProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	return types.ReportTimestamps{
		Generated:     now.Format("2006-01-02"),
		GeneratedTime: now.Format("15:04:05"),
	}
}
