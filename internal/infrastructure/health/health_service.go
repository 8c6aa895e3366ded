package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ifcfg-agent/internal/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// HealthService tracks agent liveness for the daemon mode HTTP
// endpoint.
type HealthService struct {
	mu             sync.RWMutex
	clock          interfaces.Clock
	logger         *logrus.Logger
	startTime      time.Time
	dbHealthy      bool
	dbError        error
	appliedRecords int64
	failedRecords  int64
	osFamily       string
}

// HealthStatus is the aggregate health state.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status     HealthStatus           `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Components map[string]interface{} `json:"components"`
	Statistics map[string]interface{} `json:"statistics"`
}

// NewHealthService creates a new HealthService.
func NewHealthService(clock interfaces.Clock, logger *logrus.Logger) *HealthService {
	return &HealthService{
		clock:     clock,
		logger:    logger,
		startTime: clock.Now(),
		dbHealthy: false,
	}
}

// UpdateDBHealth records database connectivity.
func (h *HealthService) UpdateDBHealth(healthy bool, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dbHealthy = healthy
	h.dbError = err
}

// IncrementAppliedRecords counts a successfully applied record.
func (h *HealthService) IncrementAppliedRecords() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.appliedRecords++
}

// IncrementFailedRecords counts a failed record.
func (h *HealthService) IncrementFailedRecords() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failedRecords++
}

// SetOSFamily records the detected OS family.
func (h *HealthService) SetOSFamily(family string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.osFamily = family
}

// ServeHTTP handles the health check endpoint.
func (h *HealthService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := h.buildHealthResponse()

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.WithError(err).Error("failed to encode health check response")
	}
}

// buildHealthResponse constructs the endpoint payload.
func (h *HealthService) buildHealthResponse() HealthResponse {
	h.mu.RLock()
	defer h.mu.RUnlock()

	now := h.clock.Now()

	components := map[string]interface{}{
		"database": map[string]interface{}{
			"healthy": h.dbHealthy,
			"error":   h.formatError(h.dbError),
		},
		"os_family": h.osFamily,
	}

	statistics := map[string]interface{}{
		"applied_records": h.appliedRecords,
		"failed_records":  h.failedRecords,
		"uptime":          h.formatUptime(now.Sub(h.startTime)),
	}

	return HealthResponse{
		Status:     h.determineOverallStatus(),
		Timestamp:  now.Format(time.RFC3339),
		Components: components,
		Statistics: statistics,
	}
}

// determineOverallStatus aggregates component health.
func (h *HealthService) determineOverallStatus() HealthStatus {
	if !h.dbHealthy {
		return StatusUnhealthy
	}

	// Half or more records failing means degraded.
	if h.appliedRecords > 0 && h.failedRecords > 0 {
		failureRate := float64(h.failedRecords) / float64(h.appliedRecords+h.failedRecords)
		if failureRate >= 0.5 {
			return StatusDegraded
		}
	}

	return StatusHealthy
}

func (h *HealthService) formatError(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (h *HealthService) formatUptime(duration time.Duration) string {
	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd%dh%dm", days, hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
