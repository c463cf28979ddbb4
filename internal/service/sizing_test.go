package service_test

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/sizing"
)

var _ = Describe("sizing service", func() {
	var (
		svc *service.SizingService
		ctx context.Context
	)

	BeforeEach(func() {
		svc = service.NewSizingService(service.WithClock(func() time.Time {
			return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		}))
		ctx = context.TODO()
	})

	Context("calculate", func() {
		It("sizes the sample apartment", func() {
			results, err := svc.Calculate(ctx, plan.Default())
			Expect(err).To(BeNil())

			Expect(results.Rooms).To(HaveLen(6))
			Expect(results.Appliances).To(HaveLen(1))
			Expect(results.Summary.DemandedPowerVA).To(Equal(8498.6))
			Expect(results.Summary.MainCircuit.BreakerA).To(Equal(40))
		})

		It("skips rooms that are not fully measured", func() {
			p := plan.Default()
			rooms, err := p.Rooms.Add(plan.NewRoom("Hall"))
			Expect(err).To(BeNil())
			p.Rooms = rooms

			results, err := svc.Calculate(ctx, p)
			Expect(err).To(BeNil())
			Expect(results.Rooms).To(HaveLen(6))
		})

		It("rejects an invalid plan", func() {
			p := plan.New(
				[]sizing.Room{{ID: uuid.New(), Name: "Kitchen", Type: "GARAGE", Area: 10, Perimeter: 13}},
				[]sizing.Appliance{{ID: uuid.New(), Name: "Oven", Power: 2000, Voltage: 110}},
			)

			_, err := svc.Calculate(ctx, p)
			Expect(err).ToNot(BeNil())

			var invalid *service.ErrInvalidPlan
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(invalid.Problems).To(HaveLen(2))
		})

		It("sizes the main circuit at the configured voltage", func() {
			svc127 := service.NewSizingService(service.WithMainVoltage(sizing.Voltage127))
			results, err := svc127.Calculate(ctx, plan.Default())
			Expect(err).To(BeNil())

			Expect(results.Summary.MainCircuit.CurrentA).To(BeNumerically(">", 66))
			Expect(results.Summary.MainCircuit.OverCatalog).To(BeFalse())
		})

		It("stops on a cancelled context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := svc.Calculate(cancelled, plan.Default())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})

	Context("export", func() {
		var results *sizing.CalculationResults

		BeforeEach(func() {
			var err error
			results, err = svc.Calculate(ctx, plan.Default())
			Expect(err).To(BeNil())
		})

		It("exports a spreadsheet", func() {
			exported, err := svc.Export(ctx, results, types.ReportFormatXLSX)
			Expect(err).To(BeNil())

			Expect(exported.FileName).To(Equal("electrical-quantities.xlsx"))
			Expect(exported.ContentType).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))

			f, err := excelize.OpenReader(bytes.NewReader(exported.Content))
			Expect(err).To(BeNil())
			defer func() { _ = f.Close() }()
			Expect(f.GetSheetList()).To(HaveLen(2))
		})

		It("exports a csv file", func() {
			exported, err := svc.Export(ctx, results, types.ReportFormatCSV)
			Expect(err).To(BeNil())

			Expect(exported.FileName).To(Equal("electrical-quantities.csv"))
			Expect(string(exported.Content)).To(ContainSubstring("Generated: 2025-01-02 at 03:04:05"))
		})

		It("exports an html document", func() {
			exported, err := svc.Export(ctx, results, types.ReportFormatHTML)
			Expect(err).To(BeNil())

			Expect(exported.ContentType).To(HavePrefix("text/html"))
			Expect(string(exported.Content)).To(ContainSubstring("Electric shower"))
		})

		It("rejects an unsupported format", func() {
			_, err := svc.Export(ctx, results, "pdf")

			var unsupported *service.ErrUnsupportedFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
		})

		It("rejects missing results", func() {
			_, err := svc.Export(ctx, nil, types.ReportFormatCSV)

			var missing *service.ErrMissingResults
			Expect(errors.As(err, &missing)).To(BeTrue())
		})
	})

	It("lists the export formats", func() {
		Expect(svc.Formats()).To(ConsistOf(types.ReportFormatCSV, types.ReportFormatHTML, types.ReportFormatXLSX))
	})
})
