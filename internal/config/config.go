package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/nbr5410/load-planner/internal/sizing"
)

var singleConfig *Config = nil

type Config struct {
	Service *ServiceConfig
	Sizing  *SizingConfig
	Events  *EventsConfig
}

type ServiceConfig struct {
	Address        string    `envconfig:"PLANNER_ADDRESS" default:":3443"`
	MetricsAddress string    `envconfig:"PLANNER_METRICS_ADDRESS" default:":8080"`
	LogLevel       string    `envconfig:"PLANNER_LOG_LEVEL" default:"info"`
	LogFormat      string    `envconfig:"PLANNER_LOG_FORMAT" default:"console"`
	CorsOrigins    []string  `envconfig:"PLANNER_CORS_ORIGINS" default:"*"`
	LatencyBuckets []float64 `envconfig:"PLANNER_PROMETHEUS_LATENCY_BUCKETS" default:"5,25,100,300,1000"`
}

type SizingConfig struct {
	MainVoltage          int     `envconfig:"PLANNER_MAIN_VOLTAGE" default:"220"`
	ApplianceMinCableMM2 float64 `envconfig:"PLANNER_APPLIANCE_MIN_CABLE_MM2" default:"2.5"`
}

type EventsConfig struct {
	// SinkURL is a CloudEvents HTTP endpoint. Events are logged when neither a sink nor brokers are set.
	SinkURL      string   `envconfig:"PLANNER_EVENTS_SINK_URL" default:""`
	KafkaBrokers []string `envconfig:"PLANNER_EVENTS_KAFKA_BROKERS" default:""`
	KafkaTopic   string   `envconfig:"PLANNER_EVENTS_KAFKA_TOPIC" default:"load-planner.events"`
	Source       string   `envconfig:"PLANNER_EVENTS_SOURCE" default:"load-planner"`
	BufferSize   int      `envconfig:"PLANNER_EVENTS_BUFFER_SIZE" default:"1024"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		if err := sizing.ValidateSettings(sizing.Voltage(cfg.Sizing.MainVoltage), sizing.Cable(cfg.Sizing.ApplianceMinCableMM2)); err != nil {
			return nil, fmt.Errorf("invalid sizing configuration: %w", err)
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}
