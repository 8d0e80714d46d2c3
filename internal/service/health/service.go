package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status of one dependency or of the whole service.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Checker probes one dependency. A nil return means healthy.
type Checker func(ctx context.Context) error

// CheckResult is the outcome of one dependency probe.
type CheckResult struct {
	Status   Status `json:"status"`
	Message  string `json:"message,omitempty"`
	Duration string `json:"duration"`
}

// LivenessResponse answers /health/live.
type LivenessResponse struct {
	Status    Status    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadinessResponse answers /health/ready.
type ReadinessResponse struct {
	Ready     bool                   `json:"ready"`
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
}

const checkTimeout = 5 * time.Second

type Service struct {
	version   string
	startTime time.Time
	log       *zap.Logger

	mu       sync.RWMutex
	checkers map[string]Checker
}

func NewService(version string, log *zap.Logger) *Service {
	return &Service{
		version:   version,
		startTime: time.Now(),
		log:       log,
		checkers:  make(map[string]Checker),
	}
}

// RegisterChecker adds a named dependency probe to the readiness check.
func (s *Service) RegisterChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Health is the liveness probe: the process is up.
func (s *Service) Health(ctx context.Context) *LivenessResponse {
	return &LivenessResponse{
		Status:    StatusHealthy,
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now(),
	}
}

// Ready probes every registered dependency concurrently.
func (s *Service) Ready(ctx context.Context) *ReadinessResponse {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, c := range s.checkers {
		checkers[name] = c
	}
	s.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
			defer cancel()

			start := time.Now()
			err := checker(checkCtx)

			result := CheckResult{Status: StatusHealthy, Duration: time.Since(start).String()}
			if err != nil {
				result.Status = StatusUnhealthy
				result.Message = err.Error()
				s.log.Warn("Readiness check failed", zap.String("check", name), zap.Error(err))
			}

			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	ready := true
	for _, result := range results {
		if result.Status == StatusUnhealthy {
			ready = false
			break
		}
	}

	status := StatusHealthy
	if !ready {
		status = StatusUnhealthy
	}

	return &ReadinessResponse{
		Ready:     ready,
		Status:    status,
		Timestamp: time.Now(),
		Checks:    results,
	}
}
