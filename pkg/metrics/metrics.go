package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	loadPlanner = "load_planner"

	// Calculation metrics
	calculationsTotal = "calculations_total"
	demandedPowerVA   = "demanded_power_va"

	// Report metrics
	ReportsGeneratedTotal = "reports_generated_total"

	// Labels
	statusLabel = "status"
	formatLabel = "format"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

var calculationsTotalLabels = []string{
	statusLabel,
}

var reportsGeneratedTotalLabels = []string{
	formatLabel,
	statusLabel,
}

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: loadPlanner,
		Name:      calculationsTotal,
		Help:      "number of load calculations",
	},
	calculationsTotalLabels,
)

var reportsGeneratedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: loadPlanner,
		Name:      ReportsGeneratedTotal,
		Help:      "number of exported reports by format",
	},
	reportsGeneratedTotalLabels,
)

var demandedPowerMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: loadPlanner,
		Name:      demandedPowerVA,
		Help:      "demanded power of the calculated installations",
		Buckets:   []float64{2500, 5000, 7500, 10000, 15000, 20000, 30000, 50000},
	},
)

func IncreaseCalculationsTotalMetric(status string) {
	labels := prometheus.Labels{
		statusLabel: status,
	}
	calculationsTotalMetric.With(labels).Inc()
}

func IncreaseReportsGeneratedTotalMetric(format, status string) {
	labels := prometheus.Labels{
		formatLabel: format,
		statusLabel: status,
	}
	reportsGeneratedTotalMetric.With(labels).Inc()
}

func ObserveDemandedPower(va float64) {
	demandedPowerMetric.Observe(va)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(reportsGeneratedTotalMetric)
	prometheus.MustRegister(demandedPowerMetric)
}
