package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apiserver "github.com/nbr5410/load-planner/internal/api_server"
	"github.com/nbr5410/load-planner/internal/config"
	"github.com/nbr5410/load-planner/internal/events"
	"github.com/nbr5410/load-planner/internal/service"
	"github.com/nbr5410/load-planner/internal/sizing"
	"github.com/nbr5410/load-planner/pkg/log"
	"github.com/nbr5410/load-planner/pkg/version"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the planner api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel), cfg.Service.LogFormat)
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Named("planner_api").Infow("Starting API service", "version", version.Get().GitVersion)
		defer zap.S().Named("planner_api").Info("API service stopped")

		writer, err := newEventWriter(cfg.Events)
		if err != nil {
			return err
		}
		producer := events.NewEventProducer(writer,
			events.WithSource(cfg.Events.Source),
			events.WithBufferSize(cfg.Events.BufferSize),
		)
		defer func() { _ = producer.Close() }()

		sizingSrv := service.NewSizingService(
			service.WithMainVoltage(sizing.Voltage(cfg.Sizing.MainVoltage)),
			service.WithApplianceMinimumCable(sizing.Cable(cfg.Sizing.ApplianceMinCableMM2)),
			service.WithEventEmitter(producer),
		)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Named("planner_api").Fatalf("creating listener: %s", err)
			}

			server := apiserver.New(cfg, sizingSrv, listener)
			if err := server.Run(ctx); err != nil {
				zap.S().Named("planner_api").Fatalf("Error running server: %s", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Named("planner_api").Fatalf("creating metrics listener: %s", err)
			}

			metricsServer := apiserver.NewMetricServer(listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Named("planner_api").Fatalf("Error running metrics server: %s", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}

func newEventWriter(cfg *config.EventsConfig) (events.Writer, error) {
	switch {
	case len(cfg.KafkaBrokers) > 0:
		zap.S().Named("planner_api").Infow("publishing events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		return events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case cfg.SinkURL != "":
		zap.S().Named("planner_api").Infow("sending events", "sink", cfg.SinkURL)
		return events.NewHTTPWriter(cfg.SinkURL)
	default:
		zap.S().Named("planner_api").Info("no events sink configured, events are logged")
		return &events.LogWriter{}, nil
	}
}
