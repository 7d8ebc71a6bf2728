// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"net/http"

	"github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dto "github.com/prometheus/client_model/go"
)

// Handler serves everything [gatherer] collects in the Prometheus text
// format.
func Handler(gatherer metric.Gatherer) http.Handler {
	return promhttp.HandlerFor(
		prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
			families, err := gatherer.Gather()
			return metric.NativeToDTO(families), err
		}),
		promhttp.HandlerOpts{},
	)
}
