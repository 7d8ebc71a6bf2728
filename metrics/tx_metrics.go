// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/mintvm/txs"
)

const txLabel = "tx"

var (
	_ txs.Visitor = (*txMetrics)(nil)

	txLabels = []string{txLabel}
)

type txMetrics struct {
	numTxs metric.CounterVec
}

func newTxMetrics(registerer metric.Registerer) (*txMetrics, error) {
	m := &txMetrics{
		numTxs: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "txs_accepted",
				Help: "number of transactions accepted",
			},
			txLabels,
		),
	}
	return m, registerer.Register(metric.AsCollector(m.numTxs))
}

func (m *txMetrics) inc(tx string) error {
	m.numTxs.With(metric.Labels{
		txLabel: tx,
	}).Inc()
	return nil
}

func (m *txMetrics) DeployTx(*txs.DeployTx) error {
	return m.inc("deploy")
}

func (m *txMetrics) MintTx(*txs.MintTx) error {
	return m.inc("mint")
}

func (m *txMetrics) MintForAddressTx(*txs.MintForAddressTx) error {
	return m.inc("mint_for_address")
}

func (m *txMetrics) TransferTx(*txs.TransferTx) error {
	return m.inc("transfer")
}

func (m *txMetrics) SetPausedTx(*txs.SetPausedTx) error {
	return m.inc("set_paused")
}

func (m *txMetrics) SetRevealedTx(*txs.SetRevealedTx) error {
	return m.inc("set_revealed")
}

func (m *txMetrics) SetURIPrefixTx(*txs.SetURIPrefixTx) error {
	return m.inc("set_uri_prefix")
}

func (m *txMetrics) SetURISuffixTx(*txs.SetURISuffixTx) error {
	return m.inc("set_uri_suffix")
}

func (m *txMetrics) SetHiddenMetadataURITx(*txs.SetHiddenMetadataURITx) error {
	return m.inc("set_hidden_metadata_uri")
}

func (m *txMetrics) SetCostTx(*txs.SetCostTx) error {
	return m.inc("set_cost")
}

func (m *txMetrics) SetMaxMintAmountPerTxTx(*txs.SetMaxMintAmountPerTxTx) error {
	return m.inc("set_max_mint_amount_per_tx")
}

func (m *txMetrics) WithdrawTx(*txs.WithdrawTx) error {
	return m.inc("withdraw")
}
