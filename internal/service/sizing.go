package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nbr5410/load-planner/internal/events"
	"github.com/nbr5410/load-planner/internal/plan"
	"github.com/nbr5410/load-planner/internal/service/report"
	"github.com/nbr5410/load-planner/internal/service/report/types"
	"github.com/nbr5410/load-planner/internal/sizing"
	"github.com/nbr5410/load-planner/internal/sizing/calculators"
	"github.com/nbr5410/load-planner/pkg/metrics"
	"github.com/nbr5410/load-planner/pkg/requestid"
)

// ExportedReport is a rendered report ready to be written to a file or an HTTP response.
type ExportedReport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// EventEmitter publishes service activity. *events.EventProducer implements it.
type EventEmitter interface {
	Write(ctx context.Context, kind string, payload any) error
}

var _ EventEmitter = (*events.EventProducer)(nil)

// SizingService runs plans through the sizing Engine and exports the results.
type SizingService struct {
	engine    *sizing.Engine
	processor types.ResultsProcessor
	registry  *report.Registry
	emitter   EventEmitter

	mainVoltage      sizing.Voltage
	applianceMinimum sizing.Cable
	now              func() time.Time
}

type SizingServiceOption func(*SizingService)

func WithMainVoltage(v sizing.Voltage) SizingServiceOption {
	return func(s *SizingService) {
		s.mainVoltage = v
	}
}

// WithApplianceMinimumCable sets the smallest conductor of a dedicated appliance circuit.
func WithApplianceMinimumCable(c sizing.Cable) SizingServiceOption {
	return func(s *SizingService) {
		s.applianceMinimum = c
	}
}

func WithClock(now func() time.Time) SizingServiceOption {
	return func(s *SizingService) {
		s.now = now
	}
}

func WithRegistry(registry *report.Registry) SizingServiceOption {
	return func(s *SizingService) {
		s.registry = registry
	}
}

// WithEventEmitter publishes an event after every successful calculation and export.
func WithEventEmitter(emitter EventEmitter) SizingServiceOption {
	return func(s *SizingService) {
		s.emitter = emitter
	}
}

// NewSizingService creates a SizingService with the standard calculators and every report format registered.
func NewSizingService(opts ...SizingServiceOption) *SizingService {
	s := &SizingService{
		registry:         report.NewDefaultRegistry(),
		mainVoltage:      sizing.DefaultMainVoltage,
		applianceMinimum: sizing.DedicatedCircuitCable,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = sizing.NewEngine(
		calculators.Standard(calculators.WithMinimumCable(s.applianceMinimum)),
		sizing.WithMainVoltage(s.mainVoltage),
	)
	s.processor = report.NewStandardResultsProcessor(
		report.WithMainVoltage(s.engine.MainVoltage()),
		report.WithClock(s.now),
	)

	return s
}

// Formats lists the report formats Export accepts.
func (s *SizingService) Formats() []types.ReportFormat {
	return s.registry.Formats()
}

// Calculate sizes the submittable part of the plan: rooms still missing area or perimeter are skipped.
func (s *SizingService) Calculate(ctx context.Context, p plan.Plan) (*sizing.CalculationResults, error) {
	logger := zap.S().Named("sizing_service").With("request_id", requestid.FromContext(ctx))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rooms, appliances := p.Submittable()
	results, err := s.engine.Run(rooms, appliances)
	if err != nil {
		metrics.IncreaseCalculationsTotalMetric(metrics.StatusFailure)

		var invalid *sizing.ErrInvalidInput
		if errors.As(err, &invalid) {
			logger.Debugw("rejected plan", "problems", invalid.Problems)
			return nil, NewErrInvalidPlan(invalid.Problems)
		}

		logger.Errorw("failed to calculate plan", "error", err)
		return nil, fmt.Errorf("failed to calculate plan: %w", err)
	}

	metrics.IncreaseCalculationsTotalMetric(metrics.StatusSuccess)
	metrics.ObserveDemandedPower(results.Summary.DemandedPowerVA)

	logger.Debugw("plan calculated",
		"rooms", len(rooms),
		"skipped_rooms", p.Rooms.Len()-len(rooms),
		"appliances", len(appliances),
		"demanded_power_va", results.Summary.DemandedPowerVA)

	s.emit(ctx, events.CalculationMessageKind, events.CalculationEvent{
		Rooms:           len(results.Rooms),
		Appliances:      len(results.Appliances),
		InstalledVA:     results.Summary.TotalInstalledVA,
		DemandedVA:      results.Summary.DemandedPowerVA,
		MainBreakerA:    results.Summary.MainCircuit.BreakerA,
		MainOverCatalog: results.Summary.MainCircuit.OverCatalog,
		RequestID:       requestid.FromContext(ctx),
	})

	return results, nil
}

// Export renders results in the given format.
func (s *SizingService) Export(ctx context.Context, results *sizing.CalculationResults, format types.ReportFormat) (*ExportedReport, error) {
	logger := zap.S().Named("sizing_service").With("request_id", requestid.FromContext(ctx), "format", string(format))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderer, err := s.registry.Renderer(format)
	if err != nil {
		metrics.IncreaseReportsGeneratedTotalMetric(string(format), metrics.StatusFailure)
		return nil, NewErrUnsupportedFormat(format, s.registry.Formats())
	}

	if results == nil {
		metrics.IncreaseReportsGeneratedTotalMetric(string(format), metrics.StatusFailure)
		return nil, NewErrMissingResults()
	}

	data, err := s.processor.ProcessResults(results)
	if err != nil {
		metrics.IncreaseReportsGeneratedTotalMetric(string(format), metrics.StatusFailure)
		return nil, fmt.Errorf("failed to prepare report: %w", err)
	}

	content, err := renderer.Render(data)
	if err != nil {
		metrics.IncreaseReportsGeneratedTotalMetric(string(format), metrics.StatusFailure)
		logger.Errorw("failed to render report", "error", err)
		return nil, fmt.Errorf("failed to render %s report: %w", format, err)
	}

	metrics.IncreaseReportsGeneratedTotalMetric(string(format), metrics.StatusSuccess)
	logger.Debugw("report exported", "bytes", len(content))

	s.emit(ctx, events.ExportMessageKind, events.ExportEvent{
		Format:    string(format),
		Bytes:     len(content),
		RequestID: requestid.FromContext(ctx),
	})

	return &ExportedReport{
		FileName:    ReportFileName(format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func (s *SizingService) emit(ctx context.Context, kind string, payload any) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Write(ctx, kind, payload); err != nil {
		zap.S().Named("sizing_service").Warnw("failed to emit event", "kind", kind, "error", err)
	}
}

// ReportFileName is the download name of a report.
func ReportFileName(format types.ReportFormat) string {
	return fmt.Sprintf("electrical-quantities.%s", format)
}
