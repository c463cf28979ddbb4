package report_test

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service/report"
	"github.com/nbr5410/load-planner/internal/service/report/html"
	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/service/report/xlsx"
	"github.com/nbr5410/load-planner/internal/sizing"
	"github.com/nbr5410/load-planner/internal/sizing/calculators"
)

var generatedAt = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func apartmentResults() *sizing.CalculationResults {
	rooms, appliances := plan.Default().Submittable()
	results, err := sizing.NewEngine(calculators.Standard()).Run(rooms, appliances)
	Expect(err).To(BeNil())
	return results
}

func processedApartment() *types.ReportData {
	processor := report.NewStandardResultsProcessor(report.WithClock(func() time.Time { return generatedAt }))
	data, err := processor.ProcessResults(apartmentResults())
	Expect(err).To(BeNil())
	return data
}

var _ = Describe("results processor", func() {
	It("counts the material of the installation", func() {
		data := processedApartment()

		Expect(data.Quantities.LightingPoints).To(Equal(14))
		Expect(data.Quantities.GeneralOutlets).To(Equal(18))
		Expect(data.Quantities.ApplianceCircuits).To(Equal(1))
		Expect(data.Quantities.Breakers).To(Equal(2))
		Expect(data.Quantities.Items).To(HaveLen(4))
		Expect(data.Quantities.Items[3].Quantity).To(Equal(2))
	})

	It("lists the main circuit before the appliance circuits", func() {
		data := processedApartment()

		Expect(data.Circuits).To(HaveLen(2))
		Expect(data.Circuits[0]).To(Equal(types.CircuitRow{
			Circuit:  report.MainCircuitName,
			PowerVA:  8498.6,
			CurrentA: data.Results.Summary.MainCircuit.CurrentA,
			Cable:    "10.0 mm²",
			BreakerA: 40,
		}))
		Expect(data.Circuits[1].Circuit).To(Equal("TUE - Electric shower"))
		Expect(data.Circuits[1].Cable).To(Equal("4.0 mm²"))
		Expect(data.Circuits[1].BreakerA).To(Equal(25))
	})

	It("stamps the report with the clock", func() {
		data := processedApartment()

		Expect(data.Timestamps.Generated).To(Equal("2025-03-14"))
		Expect(data.Timestamps.GeneratedTime).To(Equal("09:26:53"))
		Expect(data.MainVoltage).To(Equal(sizing.Voltage220))
	})

	It("counts a single breaker for an empty installation", func() {
		results, err := sizing.NewEngine(calculators.Standard()).Run(nil, nil)
		Expect(err).To(BeNil())

		data, err := report.NewStandardResultsProcessor().ProcessResults(results)
		Expect(err).To(BeNil())
		Expect(data.Quantities.Breakers).To(Equal(1))
		Expect(data.Circuits).To(HaveLen(1))
		Expect(data.Circuits[0].Cable).To(Equal(sizing.CableNotApplicable))
	})

	It("refuses missing results", func() {
		_, err := report.NewStandardResultsProcessor().ProcessResults(nil)
		Expect(err).ToNot(BeNil())
	})
})

var _ = Describe("registry", func() {
	It("serves every default format", func() {
		registry := report.NewDefaultRegistry()

		Expect(registry.Formats()).To(Equal([]types.ReportFormat{
			types.ReportFormatCSV, types.ReportFormatHTML, types.ReportFormatXLSX,
		}))
		for _, format := range registry.Formats() {
			renderer, err := registry.Renderer(format)
			Expect(err).To(BeNil())
			Expect(renderer.SupportedFormat()).To(Equal(format))
			Expect(renderer.ContentType()).ToNot(BeEmpty())
		}
	})

	It("rejects an unknown format", func() {
		_, err := report.NewDefaultRegistry().Renderer("pdf")
		Expect(err).ToNot(BeNil())

		var unsupported *report.ErrUnsupportedFormat
		Expect(errors.As(err, &unsupported)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("pdf"))
	})
})

var _ = Describe("renderers", func() {
	var (
		registry *report.Registry
		data     *types.ReportData
	)

	BeforeEach(func() {
		registry = report.NewDefaultRegistry()
		data = processedApartment()
	})

	render := func(format types.ReportFormat) []byte {
		renderer, err := registry.Renderer(format)
		Expect(err).To(BeNil())
		content, err := renderer.Render(data)
		Expect(err).To(BeNil())
		return content
	}

	Context("csv", func() {
		It("writes the summary and the circuit breakdown", func() {
			reader := stdcsv.NewReader(bytes.NewReader(render(types.ReportFormatCSV)))
			reader.FieldsPerRecord = -1
			rows, err := reader.ReadAll()
			Expect(err).To(BeNil())

			Expect(rows[0]).To(Equal([]string{"ELECTRICAL SIZING REPORT"}))
			Expect(rows[1]).To(Equal([]string{"Generated: 2025-03-14 at 09:26:53"}))
			Expect(rows).To(ContainElement([]string{"Demanded power (VA)", "8498.60"}))
			Expect(rows).To(ContainElement([]string{"Lighting points (lamps)", "14", ""}))
			Expect(rows).To(ContainElement([]string{"General-purpose outlets (TUGs)", "18", ""}))
			Expect(rows).To(ContainElement([]string{"Main / Distribution board", "8498.60", "38.63", "10.0 mm²", "40"}))
			Expect(rows).To(ContainElement([]string{"TUE - Electric shower", "5500.00", "25.00", "4.0 mm²", "25"}))
			Expect(rows).To(ContainElement([]string{"Kitchen", "2", "160", "4", "1900"}))
		})
	})

	Context("xlsx", func() {
		It("writes the quantitative summary and the circuit breakdown sheets", func() {
			f, err := excelize.OpenReader(bytes.NewReader(render(types.ReportFormatXLSX)))
			Expect(err).To(BeNil())
			defer func() { _ = f.Close() }()

			Expect(f.GetSheetList()).To(Equal([]string{xlsx.SummarySheet, xlsx.CircuitsSheet}))

			summary, err := f.GetRows(xlsx.SummarySheet)
			Expect(err).To(BeNil())
			Expect(summary).To(HaveLen(5))
			Expect(summary[0]).To(Equal([]string{"Item", "Quantity", "Note"}))
			Expect(summary[1][0]).To(Equal("Lighting points (lamps)"))
			Expect(summary[1][1]).To(Equal("14"))
			Expect(summary[4][1]).To(Equal("2"))

			circuits, err := f.GetRows(xlsx.CircuitsSheet)
			Expect(err).To(BeNil())
			Expect(circuits).To(HaveLen(3))
			Expect(circuits[1][0]).To(Equal("Main / Distribution board"))
			Expect(circuits[1][3]).To(Equal("10.0 mm²"))
			Expect(circuits[1][4]).To(Equal("40"))
			Expect(circuits[2][0]).To(Equal("TUE - Electric shower"))
			Expect(circuits[2][3]).To(Equal("4.0 mm²"))
		})
	})

	Context("html", func() {
		It("renders a printable document", func() {
			content := string(render(types.ReportFormatHTML))

			Expect(content).To(HavePrefix("<!DOCTYPE html>"))
			Expect(content).To(ContainSubstring("Generated: 2025-03-14 at 09:26:53"))
			Expect(content).To(ContainSubstring("8498.60 VA"))
			Expect(content).To(ContainSubstring("Living/Dining Room"))
			Expect(content).To(ContainSubstring("TUE - Electric shower"))
			Expect(content).To(ContainSubstring("40 A"))
			Expect(content).To(ContainSubstring("ABNT NBR 5410"))
		})

		It("escapes user supplied names", func() {
			data.Results.Rooms[0].Name = "<script>alert(1)</script>"
			content := string(render(types.ReportFormatHTML))

			Expect(content).ToNot(ContainSubstring("<script>"))
			Expect(content).To(ContainSubstring("&lt;script&gt;"))
		})

		It("shows the disclaimer", func() {
			Expect(string(render(types.ReportFormatHTML))).To(ContainSubstring(html.Disclaimer[:40]))
		})
	})
})
