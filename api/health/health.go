// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package health runs registered checks and serves their results.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/luxfi/log"
	"github.com/luxfi/metric"
)

var errDuplicateCheck = errors.New("duplicate check")

// Checker reports the health of one component. The returned details are
// included in the report even when the check fails.
type Checker interface {
	HealthCheck(context.Context) (any, error)
}

type CheckerFunc func(context.Context) (any, error)

func (f CheckerFunc) HealthCheck(ctx context.Context) (any, error) {
	return f(ctx)
}

// Result is the outcome of one check.
type Result struct {
	Details   any           `json:"message,omitempty"`
	Error     *string       `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
}

// Report is the body served by the handler.
type Report struct {
	Checks  map[string]Result `json:"checks"`
	Healthy bool              `json:"healthy"`
}

type Health struct {
	log     log.Logger
	metrics *healthMetrics

	lock   sync.RWMutex
	checks map[string]Checker
}

func New(log log.Logger, registry metric.Registry) *Health {
	return &Health{
		log:     log,
		metrics: newMetrics(registry),
		checks:  make(map[string]Checker),
	}
}

func (h *Health) Register(name string, checker Checker) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if _, ok := h.checks[name]; ok {
		return fmt.Errorf("%w: %s", errDuplicateCheck, name)
	}
	h.checks[name] = checker
	return nil
}

// Report runs every check.
func (h *Health) Report(ctx context.Context) Report {
	h.lock.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	checks := make(map[string]Checker, len(h.checks))
	for name, checker := range h.checks {
		checks[name] = checker
	}
	h.lock.RUnlock()

	sort.Strings(names)
	report := Report{
		Checks:  make(map[string]Result, len(names)),
		Healthy: true,
	}
	failing := 0
	for _, name := range names {
		start := time.Now()
		details, err := checks[name].HealthCheck(ctx)
		result := Result{
			Details:   details,
			Timestamp: start,
			Duration:  time.Since(start),
		}
		if err != nil {
			msg := err.Error()
			result.Error = &msg
			report.Healthy = false
			failing++
			h.log.Warn("health check failed",
				log.String("check", name),
				log.Err(err),
			)
		}
		report.Checks[name] = result
	}
	h.metrics.failingChecks.Set(float64(failing))
	return report
}

// Handler serves the report as JSON. Unhealthy nodes answer 503.
func (h *Health) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := h.Report(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if !report.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(report); err != nil {
			h.log.Debug("failed to encode health report",
				log.Err(err),
			)
		}
	})
}
