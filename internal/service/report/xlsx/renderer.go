package xlsx

import (
	"fmt"

	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Quantitative Summary"
	CircuitsSheet = "Circuit Breakdown"

	defaultSheet = "Sheet1"
)

var (
	summaryHeader  = []interface{}{"Item", "Quantity", "Note"}
	circuitsHeader = []interface{}{"Circuit", "Power (VA)", "Current (A)", "Cable (phase + neutral)", "Breaker (A)"}
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	decimalStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}

	if err := f.SetSheetName(defaultSheet, SummarySheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := r.writeSummary(f, data.Quantities, headerStyle); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(CircuitsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet %q: %w", CircuitsSheet, err)
	}
	if err := r.writeCircuits(f, data.Circuits, headerStyle, decimalStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeSummary(f *excelize.File, quantities types.QuantitySummary, headerStyle int) error {
	rows := [][]interface{}{summaryHeader}
	for _, item := range quantities.Items {
		rows = append(rows, []interface{}{item.Item, item.Quantity, item.Note})
	}

	if err := writeRows(f, SummarySheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %q header: %w", SummarySheet, err)
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 34); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "C", "C", 60)
}

func (r *Renderer) writeCircuits(f *excelize.File, circuits []types.CircuitRow, headerStyle, decimalStyle int) error {
	rows := [][]interface{}{circuitsHeader}
	for _, circuit := range circuits {
		breaker := interface{}(circuit.BreakerA)
		if circuit.BreakerA == 0 {
			breaker = "N/A"
		}
		rows = append(rows, []interface{}{circuit.Circuit, circuit.PowerVA, circuit.CurrentA, circuit.Cable, breaker})
	}

	if err := writeRows(f, CircuitsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(CircuitsSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %q header: %w", CircuitsSheet, err)
	}
	if len(circuits) > 0 {
		last, err := excelize.CoordinatesToCellName(3, len(circuits)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(CircuitsSheet, "B2", last, decimalStyle); err != nil {
			return fmt.Errorf("failed to style %q values: %w", CircuitsSheet, err)
		}
	}
	if err := f.SetColWidth(CircuitsSheet, "A", "A", 36); err != nil {
		return err
	}
	return f.SetColWidth(CircuitsSheet, "B", "E", 24)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
