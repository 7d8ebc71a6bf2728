// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"

	"github.com/luxfi/metric"

	"github.com/luxfi/mintvm/txs"
)

const (
	methodLabel = "method"
	reasonLabel = "reason"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	APIInterceptor

	// MarkMinted records a successful mint of [quantity] tokens.
	MarkMinted(quantity uint64)
	// MarkReverted records a contract call that failed and was rolled back.
	MarkReverted(method, reason string)
	// MarkWithdrawn records a withdrawal of [wei].
	MarkWithdrawn(wei float64)
	// MarkTxAccepted updates all metrics relating to the acceptance of a
	// transaction.
	MarkTxAccepted(tx *txs.Tx) error
}

type metrics struct {
	txMetrics *txMetrics

	numMints      metric.Counter
	tokensMinted  metric.Counter
	numWithdraws  metric.Counter
	weiWithdrawn  metric.Counter
	numReversions metric.CounterVec

	APIInterceptor
}

func (m *metrics) MarkMinted(quantity uint64) {
	m.numMints.Inc()
	m.tokensMinted.Add(float64(quantity))
}

func (m *metrics) MarkReverted(method, reason string) {
	m.numReversions.With(metric.Labels{
		methodLabel: method,
		reasonLabel: reason,
	}).Inc()
}

func (m *metrics) MarkWithdrawn(wei float64) {
	m.numWithdraws.Inc()
	m.weiWithdrawn.Add(wei)
}

func (m *metrics) MarkTxAccepted(tx *txs.Tx) error {
	return tx.Unsigned.Visit(m.txMetrics)
}

func New(registry metric.Registry) (Metrics, error) {
	txMetrics, err := newTxMetrics(registry)
	if err != nil {
		return nil, err
	}

	m := &metrics{
		txMetrics: txMetrics,
		numMints: metric.NewCounter(metric.CounterOpts{
			Name: "mints",
			Help: "number of successful mint calls",
		}),
		tokensMinted: metric.NewCounter(metric.CounterOpts{
			Name: "tokens_minted",
			Help: "number of tokens issued",
		}),
		numWithdraws: metric.NewCounter(metric.CounterOpts{
			Name: "withdrawals",
			Help: "number of successful withdrawals",
		}),
		weiWithdrawn: metric.NewCounter(metric.CounterOpts{
			Name: "wei_withdrawn",
			Help: "total amount withdrawn in wei",
		}),
		numReversions: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "reverted_calls",
				Help: "number of contract calls that were rolled back",
			},
			[]string{methodLabel, reasonLabel},
		),
	}

	err = errors.Join(
		registry.Register(metric.AsCollector(m.numMints)),
		registry.Register(metric.AsCollector(m.tokensMinted)),
		registry.Register(metric.AsCollector(m.numWithdraws)),
		registry.Register(metric.AsCollector(m.weiWithdrawn)),
		registry.Register(metric.AsCollector(m.numReversions)),
	)
	if err != nil {
		return nil, err
	}

	m.APIInterceptor, err = NewAPIInterceptor(registry)
	return m, err
}

// NewNoOp returns metrics that are reported nowhere.
func NewNoOp() Metrics {
	m, err := New(metric.NewNoOp().Registry())
	if err != nil {
		panic(err)
	}
	return m
}
