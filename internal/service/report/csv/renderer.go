package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/sizing"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{"ELECTRICAL SIZING REPORT"})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addLoadSummary(csvRows, data)
	csvRows = r.addQuantitativeSummary(csvRows, data.Quantities)
	csvRows = r.addCircuitBreakdown(csvRows, data.Circuits)
	csvRows = r.addRoomBreakdown(csvRows, data.Results.Rooms)

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addLoadSummary(csvRows [][]string, data *types.ReportData) [][]string {
	summary := data.Results.Summary

	csvRows = append(csvRows, []string{"LOAD SUMMARY"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Metric", "Value"})

	csvRows = append(csvRows, []string{"Lighting (VA)", formatVA(summary.TotalLightingVA)})
	csvRows = append(csvRows, []string{"General-purpose outlets (VA)", formatVA(summary.TotalTugsVA)})
	csvRows = append(csvRows, []string{"Specific-use outlets (VA)", formatVA(summary.TotalTuesVA)})
	csvRows = append(csvRows, []string{"Total installed power (VA)", formatVA(summary.TotalInstalledVA)})
	csvRows = append(csvRows, []string{"Demanded power (VA)", fmt.Sprintf("%.2f", summary.DemandedPowerVA)})
	csvRows = append(csvRows, []string{
		fmt.Sprintf("Demand current at %d V (A)", int(data.MainVoltage)),
		fmt.Sprintf("%.2f", summary.MainCircuit.CurrentA)})
	csvRows = append(csvRows, []string{"Main breaker (A)", formatBreaker(summary.MainCircuit.BreakerA)})
	csvRows = append(csvRows, []string{"Main cable", summary.MainCircuit.CableMM2})
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addQuantitativeSummary(csvRows [][]string, quantities types.QuantitySummary) [][]string {
	csvRows = append(csvRows, []string{"QUANTITATIVE SUMMARY"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Item", "Quantity", "Note"})

	for _, item := range quantities.Items {
		csvRows = append(csvRows, []string{item.Item, strconv.Itoa(item.Quantity), item.Note})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addCircuitBreakdown(csvRows [][]string, circuits []types.CircuitRow) [][]string {
	csvRows = append(csvRows, []string{"CIRCUIT BREAKDOWN"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Circuit", "Power (VA)", "Current (A)", "Cable (phase + neutral)", "Breaker (A)"})

	for _, circuit := range circuits {
		csvRows = append(csvRows, []string{
			circuit.Circuit,
			fmt.Sprintf("%.2f", circuit.PowerVA),
			fmt.Sprintf("%.2f", circuit.CurrentA),
			circuit.Cable,
			formatBreaker(circuit.BreakerA)})
	}
	csvRows = append(csvRows, []string{""})

	return csvRows
}

func (r *Renderer) addRoomBreakdown(csvRows [][]string, rooms []sizing.RoomResult) [][]string {
	csvRows = append(csvRows, []string{"ROOM BREAKDOWN"})
	csvRows = append(csvRows, []string{""})
	csvRows = append(csvRows, []string{"Room", "Lighting Points", "Lighting (VA)", "Outlets", "Outlets (VA)"})

	if len(rooms) == 0 {
		csvRows = append(csvRows, []string{"No rooms"})
	}
	for _, room := range rooms {
		csvRows = append(csvRows, []string{
			room.Name,
			strconv.Itoa(room.Lighting.Quantity),
			formatVA(room.Lighting.PowerVA),
			strconv.Itoa(room.Tugs.Quantity),
			formatVA(room.Tugs.PowerVA)})
	}

	return csvRows
}

func (r *Renderer) convertRowsToCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return buf.Bytes(), nil
}

func formatVA(va float64) string {
	return strconv.FormatFloat(va, 'f', -1, 64)
}

func formatBreaker(breaker int) string {
	if breaker == 0 {
		return sizing.CableNotApplicable
	}
	return strconv.Itoa(breaker)
}
