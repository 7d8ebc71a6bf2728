// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger keeps token ownership: who owns each id, how many ids each
// address holds and how many ids were ever issued.
package ledger

import (
	"errors"
	"fmt"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

var (
	ErrUnknownToken  = errors.New("unknown token")
	ErrTokenExists   = errors.New("token already minted")
	ErrNotTokenOwner = errors.New("transfer from incorrect owner")

	ownerPrefix    = []byte("owner")
	balancePrefix  = []byte("balance")
	metadataPrefix = []byte("metadata")

	issuedKey = []byte("issued")
)

// Ledger is the ownership capability the mint controller builds on.
type Ledger interface {
	// OwnerOf returns the holder of [id] or ErrUnknownToken.
	OwnerOf(id uint64) (common.Address, error)
	// BalanceOf returns how many tokens [owner] holds.
	BalanceOf(owner common.Address) (uint64, error)
	// TotalIssued returns how many tokens were ever minted.
	TotalIssued() (uint64, error)

	// Mint creates [id] and assigns it to [to].
	Mint(to common.Address, id uint64) error
	// Transfer moves [id] from its current holder [from] to [to].
	Transfer(from, to common.Address, id uint64) error
}

type ledger struct {
	owners   database.Database
	balances database.Database
	metadata database.Database
}

// New returns a ledger whose writes go to [db].
func New(db database.Database) Ledger {
	return &ledger{
		owners:   prefixdb.New(ownerPrefix, db),
		balances: prefixdb.New(balancePrefix, db),
		metadata: prefixdb.New(metadataPrefix, db),
	}
}

func (l *ledger) OwnerOf(id uint64) (common.Address, error) {
	ownerBytes, err := l.owners.Get(database.PackUInt64(id))
	if errors.Is(err, database.ErrNotFound) {
		return common.Address{}, fmt.Errorf("%w: %d", ErrUnknownToken, id)
	}
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(ownerBytes), nil
}

func (l *ledger) BalanceOf(owner common.Address) (uint64, error) {
	return getUInt64(l.balances, owner.Bytes())
}

func (l *ledger) TotalIssued() (uint64, error) {
	return getUInt64(l.metadata, issuedKey)
}

func (l *ledger) Mint(to common.Address, id uint64) error {
	token := Token{ID: id, Owner: to}
	if err := token.Verify(); err != nil {
		return err
	}

	key := database.PackUInt64(id)
	exists, err := l.owners.Has(key)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %d", ErrTokenExists, id)
	}

	issued, err := l.TotalIssued()
	if err != nil {
		return err
	}
	if err := l.owners.Put(key, to.Bytes()); err != nil {
		return err
	}
	if err := l.addBalance(to, 1); err != nil {
		return err
	}
	return database.PutUInt64(l.metadata, issuedKey, issued+1)
}

func (l *ledger) Transfer(from, to common.Address, id uint64) error {
	token := Token{ID: id, Owner: to}
	if err := token.Verify(); err != nil {
		return err
	}

	owner, err := l.OwnerOf(id)
	if err != nil {
		return err
	}
	if owner != from {
		return fmt.Errorf("%w: token %d is held by %s", ErrNotTokenOwner, id, owner)
	}
	if from == to {
		return nil
	}

	if err := l.owners.Put(database.PackUInt64(id), to.Bytes()); err != nil {
		return err
	}
	if err := l.addBalance(from, -1); err != nil {
		return err
	}
	return l.addBalance(to, 1)
}

func (l *ledger) addBalance(owner common.Address, delta int) error {
	balance, err := l.BalanceOf(owner)
	if err != nil {
		return err
	}
	if delta < 0 {
		balance -= uint64(-delta)
	} else {
		balance += uint64(delta)
	}
	return database.PutUInt64(l.balances, owner.Bytes(), balance)
}

func getUInt64(db database.KeyValueReader, key []byte) (uint64, error) {
	value, err := database.GetUInt64(db, key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	return value, err
}
