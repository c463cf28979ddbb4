package types

import (
	"github.com/nbr5410/load-planner/internal/sizing"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
	ContentType() string
}

type ResultsProcessor interface {
	ProcessResults(results *sizing.CalculationResults) (*ReportData, error)
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ReportData is everything a renderer needs. Renderers only format these values.
type ReportData struct {
	Results     *sizing.CalculationResults
	MainVoltage sizing.Voltage
	Quantities  QuantitySummary
	Circuits    []CircuitRow
	Timestamps  ReportTimestamps
}

// QuantitySummary counts the material of the installation.
type QuantitySummary struct {
	LightingPoints    int
	GeneralOutlets    int
	ApplianceCircuits int
	// Breakers is a minimum estimate: one main breaker plus one per appliance circuit.
	Breakers int
	Items    []QuantityItem
}

type QuantityItem struct {
	Item     string
	Quantity int
	Note     string
}

// CircuitRow is one line of the circuit breakdown: the main circuit first, then each appliance circuit.
type CircuitRow struct {
	Circuit  string
	PowerVA  float64
	CurrentA float64
	Cable    string
	BreakerA int
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}
