// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/bank"
	"github.com/luxfi/mintvm/ledger"
	"github.com/luxfi/mintvm/metrics"
	"github.com/luxfi/mintvm/state"
)

// Backend is everything a controller needs to run a contract.
type Backend struct {
	// Address of the contract. Its balance lives in the bank under this
	// address and its storage under a prefix derived from it.
	Address common.Address
	// DB is the chain database. The bank is shared by every contract on it.
	DB      database.Database
	Log     log.Logger
	Metrics metrics.Metrics

	// NewLedger overrides the ledger implementation. Defaults to ledger.New.
	NewLedger func(database.Database) ledger.Ledger
}

// view is the contract storage as seen by a single call.
type view struct {
	state  *state.State
	ledger ledger.Ledger
	bank   *bank.Bank
}

func (b *Backend) newView(db database.Database) *view {
	newLedger := b.NewLedger
	if newLedger == nil {
		newLedger = ledger.New
	}

	contractDB := prefixdb.New(b.Address.Bytes(), db)
	return &view{
		state:  state.New(contractDB),
		ledger: newLedger(contractDB),
		bank:   bank.New(db),
	}
}
