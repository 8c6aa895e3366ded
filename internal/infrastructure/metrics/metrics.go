package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Record build metrics
	RecordsBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_records_built_total",
			Help: "Total number of interface configuration records built",
		},
		[]string{"status"}, // success, failed
	)

	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ifcfg_build_duration_seconds",
			Help:    "Time spent building one configuration record",
			Buckets: prometheus.DefBuckets,
		},
	)

	// File and service metrics
	FilesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ifcfg_files_written_total",
			Help: "Total number of configuration files written because their content changed",
		},
	)

	ServiceRestarts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ifcfg_service_restarts_total",
			Help: "Total number of network service restarts triggered",
		},
	)

	// Polling metrics
	PollingCycleCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ifcfg_polling_cycles_total",
			Help: "Total number of polling cycles executed",
		},
	)

	PollingBackoffLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ifcfg_polling_backoff_level",
			Help: "Current backoff level (0 = no backoff)",
		},
	)

	// Database metrics
	DBConnectionStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ifcfg_db_connection_status",
			Help: "Database connection status (1 = connected, 0 = disconnected)",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ifcfg_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, resolution, network, system
	)

	// Agent info
	AgentInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ifcfg_agent_info",
			Help: "Agent build and runtime information",
		},
		[]string{"version", "os_family", "hostname"},
	)
)

// SetBackoffLevel updates the polling backoff gauge.
func SetBackoffLevel(level float64) {
	PollingBackoffLevel.Set(level)
}

// SetDBConnected updates the database connectivity gauge.
func SetDBConnected(connected bool) {
	if connected {
		DBConnectionStatus.Set(1)
	} else {
		DBConnectionStatus.Set(0)
	}
}

// SetAgentInfo records the static agent information labels.
func SetAgentInfo(version, osFamily, hostname string) {
	AgentInfo.WithLabelValues(version, osFamily, hostname).Set(1)
}
