package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/sizing"
)

const Disclaimer = "This report is an estimate based on the simplified rules of ABNT NBR 5410. " +
	"It does not replace a project signed by a qualified electrical engineer or technician."

type Renderer struct{}

type templateData struct {
	CSS           template.CSS
	GeneratedDate string
	GeneratedTime string
	MainVoltage   int
	Summary       sizing.Summary
	Rooms         []sizing.RoomResult
	Circuits      []types.CircuitRow
	Quantities    []types.QuantityItem
	Disclaimer    string
}

var funcs = template.FuncMap{
	"va":      formatVA,
	"fixed":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"breaker": formatBreaker,
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	return r.executeTemplate(htmlReportTemplate, templateData{
		CSS:           template.CSS(r.getCSS()),
		GeneratedDate: data.Timestamps.Generated,
		GeneratedTime: data.Timestamps.GeneratedTime,
		MainVoltage:   int(data.MainVoltage),
		Summary:       data.Results.Summary,
		Rooms:         data.Results.Rooms,
		Circuits:      data.Circuits,
		Quantities:    data.Quantities.Items,
		Disclaimer:    Disclaimer,
	})
}

func (r *Renderer) executeTemplate(templateStr string, data interface{}) ([]byte, error) {
	tmpl, err := template.New("report").Funcs(funcs).Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) getCSS() string {
	return `
        body { font-family: Arial, sans-serif; margin: 0; padding: 30px; color: #2c3e50; }
        h1 { border-bottom: 3px solid #2980b9; padding-bottom: 10px; }
        h2 { color: #2980b9; margin-top: 40px; }
        .generated { color: #7f8c8d; font-size: 0.9em; }
        .summary-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 30px 0; }
        .summary-card { background: #2980b9; color: white; padding: 20px; border-radius: 8px; text-align: center; }
        .summary-card .value { font-size: 1.6em; font-weight: bold; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #dfe6e9; padding: 8px 12px; text-align: left; }
        th { background: #ecf0f1; }
        .disclaimer { margin-top: 40px; padding: 15px; background: #fdf2e9; border-left: 4px solid #e67e22; font-size: 0.9em; }
        @media print {
            .summary-grid { grid-template-columns: repeat(2, 1fr); }
        }`
}

func formatVA(va float64) string {
	return strconv.FormatFloat(va, 'f', -1, 64)
}

func formatBreaker(breaker int) string {
	if breaker == 0 {
		return sizing.CableNotApplicable
	}
	return strconv.Itoa(breaker) + " A"
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Electrical Sizing Report</title>
    <style>{{.CSS}}</style>
</head>
<body>
    <h1>Electrical Sizing Report</h1>
    <p class="generated">Generated: {{.GeneratedDate}} at {{.GeneratedTime}}</p>

    <h2>Load Summary</h2>
    <div class="summary-grid">
        <div class="summary-card"><div class="value">{{va .Summary.TotalInstalledVA}} VA</div><div>Total installed power</div></div>
        <div class="summary-card"><div class="value">{{fixed .Summary.DemandedPowerVA}} VA</div><div>Demanded power</div></div>
        <div class="summary-card"><div class="value">{{fixed .Summary.MainCircuit.CurrentA}} A</div><div>Demand current ({{.MainVoltage}} V)</div></div>
        <div class="summary-card"><div class="value">{{breaker .Summary.MainCircuit.BreakerA}}</div><div>Main breaker</div></div>
        <div class="summary-card"><div class="value">{{.Summary.MainCircuit.CableMM2}}</div><div>Main cable</div></div>
    </div>
    <table>
        <tr><th>Category</th><th>Power (VA)</th></tr>
        <tr><td>Lighting</td><td>{{va .Summary.TotalLightingVA}}</td></tr>
        <tr><td>General-purpose outlets (TUGs)</td><td>{{va .Summary.TotalTugsVA}}</td></tr>
        <tr><td>Specific-use outlets (TUEs)</td><td>{{va .Summary.TotalTuesVA}}</td></tr>
    </table>

    <h2>Rooms</h2>
    <table>
        <tr><th>Room</th><th>Lighting Points</th><th>Lighting (VA)</th><th>Outlets</th><th>Outlets (VA)</th></tr>
        {{- range .Rooms}}
        <tr><td>{{.Name}}</td><td>{{.Lighting.Quantity}}</td><td>{{va .Lighting.PowerVA}}</td><td>{{.Tugs.Quantity}}</td><td>{{va .Tugs.PowerVA}}</td></tr>
        {{- else}}
        <tr><td colspan="5">No rooms</td></tr>
        {{- end}}
    </table>

    <h2>Circuits</h2>
    <table>
        <tr><th>Circuit</th><th>Power (VA)</th><th>Current (A)</th><th>Cable (phase + neutral)</th><th>Breaker</th></tr>
        {{- range .Circuits}}
        <tr><td>{{.Circuit}}</td><td>{{fixed .PowerVA}}</td><td>{{fixed .CurrentA}}</td><td>{{.Cable}}</td><td>{{breaker .BreakerA}}</td></tr>
        {{- end}}
    </table>

    <h2>Quantitative Summary</h2>
    <table>
        <tr><th>Item</th><th>Quantity</th><th>Note</th></tr>
        {{- range .Quantities}}
        <tr><td>{{.Item}}</td><td>{{.Quantity}}</td><td>{{.Note}}</td></tr>
        {{- end}}
    </table>

    <div class="disclaimer">{{.Disclaimer}}</div>
</body>
</html>`
