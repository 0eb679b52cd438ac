package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheck represents a single health check
type HealthCheck struct {
	Name        string        `json:"name"`
	Status      HealthStatus  `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"duration"`
}

// HealthReport represents the overall health report
type HealthReport struct {
	Status    HealthStatus  `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Service   string        `json:"service"`
	Checks    []HealthCheck `json:"checks"`
}

// HealthChecker interface for health check implementations
type HealthChecker interface {
	Check(ctx context.Context) HealthCheck
}

// HealthCheckFunc adapts a function to the HealthChecker interface
type HealthCheckFunc func(ctx context.Context) HealthCheck

// Check invokes the function
func (f HealthCheckFunc) Check(ctx context.Context) HealthCheck {
	return f(ctx)
}

// HealthManager manages health checks
type HealthManager struct {
	serviceName string
	checkers    map[string]HealthChecker
	mu          sync.RWMutex
	timeout     time.Duration
}

// NewHealthManager creates a new health manager
func NewHealthManager(serviceName string) *HealthManager {
	return &HealthManager{
		serviceName: serviceName,
		checkers:    make(map[string]HealthChecker),
		timeout:     5 * time.Second,
	}
}

// Register adds a named health checker
func (hm *HealthManager) Register(name string, checker HealthChecker) {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.checkers[name] = checker
}

// RegisterDatabase registers a pinger (e.g. *database.DB) as a health check
func (hm *HealthManager) RegisterDatabase(name string, pinger interface{ Health() error }) {
	hm.Register(name, HealthCheckFunc(func(ctx context.Context) HealthCheck {
		start := time.Now()
		check := HealthCheck{
			Name:        name,
			Status:      HealthStatusHealthy,
			LastChecked: start,
		}

		if err := pinger.Health(); err != nil {
			check.Status = HealthStatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(start)
		return check
	}))
}

// Report runs all registered checks and aggregates the result
func (hm *HealthManager) Report(ctx context.Context) HealthReport {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, hm.timeout)
	defer cancel()

	report := HealthReport{
		Status:    HealthStatusHealthy,
		Timestamp: time.Now(),
		Service:   hm.serviceName,
	}

	for _, checker := range hm.checkers {
		check := checker.Check(ctx)
		report.Checks = append(report.Checks, check)
		if check.Status != HealthStatusHealthy {
			report.Status = HealthStatusUnhealthy
		}
	}

	return report
}

// Handler returns an HTTP handler serving the health report
func (hm *HealthManager) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := hm.Report(r.Context())

		status := http.StatusOK
		if report.Status != HealthStatusHealthy {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(report)
	})
}

// NewRouter builds the monitoring side listener serving health and metrics
func NewRouter(healthPath, metricsPath string, hm *HealthManager, mc *MetricsCollector) *mux.Router {
	router := mux.NewRouter()
	router.Handle(healthPath, hm.Handler()).Methods(http.MethodGet)
	router.Handle(metricsPath, mc.Handler()).Methods(http.MethodGet)
	return router
}
