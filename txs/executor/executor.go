// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"

	"github.com/luxfi/mintvm/config"
	"github.com/luxfi/mintvm/controller"
	"github.com/luxfi/mintvm/txs"
)

var (
	_ txs.Visitor = (*Executor)(nil)

	ErrNonPayable      = errors.New("function is not payable")
	ErrUnknownContract = errors.New("unknown contract")
)

// Executor applies a transaction sent by Sender. The fields after Sender are
// filled in by the visited transaction.
type Executor struct {
	Backend *Backend
	Tx      *txs.Tx
	Sender  common.Address

	Contract  common.Address
	TokenIDs  []uint64
	Withdrawn *uint256.Int
}

func (e *Executor) DeployTx(tx *txs.DeployTx) error {
	if !tx.Value.IsZero() {
		return ErrNonPayable
	}

	cfg, err := config.ForContract(tx.Kind, tx.Args)
	if err != nil {
		return err
	}

	addr := txs.ContractAddress(e.Sender, tx.Nonce)
	_, err = controller.Deploy(e.backend(addr), e.Sender, cfg)
	if err != nil {
		return err
	}
	if err := putContract(e.Backend.DB, addr, tx.Kind); err != nil {
		return err
	}
	e.Contract = addr
	return nil
}

func (e *Executor) MintTx(tx *txs.MintTx) error {
	c, err := e.controller(&tx.BaseTx, true)
	if err != nil {
		return err
	}
	e.TokenIDs, err = c.Mint(e.Sender, tx.Quantity, &tx.Value)
	return err
}

func (e *Executor) MintForAddressTx(tx *txs.MintForAddressTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	e.TokenIDs, err = c.MintForAddress(e.Sender, tx.Quantity, tx.Recipient)
	return err
}

func (e *Executor) TransferTx(tx *txs.TransferTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	if err := c.Transfer(e.Sender, tx.To, tx.TokenID); err != nil {
		return err
	}
	e.TokenIDs = []uint64{tx.TokenID}
	return nil
}

func (e *Executor) SetPausedTx(tx *txs.SetPausedTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetPaused(e.Sender, tx.Paused)
}

func (e *Executor) SetRevealedTx(tx *txs.SetRevealedTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetRevealed(e.Sender, tx.Revealed)
}

func (e *Executor) SetURIPrefixTx(tx *txs.SetURIPrefixTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetURIPrefix(e.Sender, tx.URIPrefix)
}

func (e *Executor) SetURISuffixTx(tx *txs.SetURISuffixTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetURISuffix(e.Sender, tx.URISuffix)
}

func (e *Executor) SetHiddenMetadataURITx(tx *txs.SetHiddenMetadataURITx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetHiddenMetadataURI(e.Sender, tx.HiddenMetadataURI)
}

func (e *Executor) SetCostTx(tx *txs.SetCostTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetCost(e.Sender, &tx.Cost)
}

func (e *Executor) SetMaxMintAmountPerTxTx(tx *txs.SetMaxMintAmountPerTxTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	return c.SetMaxMintAmountPerTx(e.Sender, tx.MaxMintAmountPerTx)
}

func (e *Executor) WithdrawTx(tx *txs.WithdrawTx) error {
	c, err := e.controller(&tx.BaseTx, false)
	if err != nil {
		return err
	}
	e.Withdrawn, err = c.Withdraw(e.Sender)
	return err
}

// controller returns the controller of the called contract after checking
// that it exists and that it accepts the attached value.
func (e *Executor) controller(tx *txs.BaseTx, payable bool) (*controller.Controller, error) {
	if !payable && !tx.Value.IsZero() {
		return nil, ErrNonPayable
	}
	if _, err := ContractKind(e.Backend.DB, tx.Contract); err != nil {
		return nil, fmt.Errorf("%w: %s", err, tx.Contract)
	}
	return controller.New(e.backend(tx.Contract)), nil
}

func (e *Executor) backend(addr common.Address) *controller.Backend {
	return &controller.Backend{
		Address: addr,
		DB:      e.Backend.DB,
		Log:     e.Backend.Log,
		Metrics: e.Backend.Metrics,
	}
}
