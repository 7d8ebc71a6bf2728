// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bank tracks native balances of accounts and contracts.
package bank

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrInvalidBalance      = errors.New("invalid balance encoding")

	balancePrefix = []byte("bank")
)

// Bank is a balance sheet over a key-value store. It holds no state of its
// own so callers can point it at a versiondb to get atomic updates.
type Bank struct {
	db database.Database
}

func New(db database.Database) *Bank {
	return &Bank{db: prefixdb.New(balancePrefix, db)}
}

// Balance returns the balance of [addr]. Unknown accounts hold zero.
func (b *Bank) Balance(addr common.Address) (*uint256.Int, error) {
	value, err := b.db.Get(addr.Bytes())
	if errors.Is(err, database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	if len(value) != 32 {
		return nil, fmt.Errorf("%w: %d bytes for %s", ErrInvalidBalance, len(value), addr)
	}
	return new(uint256.Int).SetBytes(value), nil
}

// Credit adds [amount] to the balance of [addr].
func (b *Bank) Credit(addr common.Address, amount *uint256.Int) error {
	balance, err := b.Balance(addr)
	if err != nil {
		return err
	}
	if _, overflow := balance.AddOverflow(balance, amount); overflow {
		return fmt.Errorf("%w: crediting %s", ErrBalanceOverflow, addr)
	}
	return b.put(addr, balance)
}

// Transfer moves [amount] from [from] to [to].
func (b *Bank) Transfer(from, to common.Address, amount *uint256.Int) error {
	balance, err := b.Balance(from)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return fmt.Errorf("%w: %s holds %s, needs %s", ErrInsufficientBalance, from, balance, amount)
	}
	if amount.IsZero() || from == to {
		return nil
	}

	balance.Sub(balance, amount)
	if err := b.put(from, balance); err != nil {
		return err
	}
	return b.Credit(to, amount)
}

func (b *Bank) put(addr common.Address, balance *uint256.Int) error {
	value := balance.Bytes32()
	return b.db.Put(addr.Bytes(), value[:])
}
