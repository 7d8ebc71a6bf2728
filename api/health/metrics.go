// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import "github.com/luxfi/metric"

type healthMetrics struct {
	// failingChecks keeps track of the number of check failing
	failingChecks metric.Gauge
}

func newMetrics(registry metric.Registry) *healthMetrics {
	metricsInstance := metric.NewWithRegistry("", registry)

	m := &healthMetrics{
		failingChecks: metricsInstance.NewGauge(
			"health_checks_failing",
			"number of currently failing health checks",
		),
	}
	m.failingChecks.Set(0)
	return m
}
