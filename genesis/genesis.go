// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package genesis describes the initial state of a local chain.
package genesis

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/crypto"
	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"

	"github.com/luxfi/mintvm/utils/units"
)

const (
	DefaultDevAccounts = 20
	DefaultDevBalance  = "10000"

	maxDevAccounts = 1024
	devKeySeed     = "mintvm dev account"
)

var (
	ErrTooManyDevAccounts = errors.New("too many dev accounts")
	ErrDuplicateAlloc     = errors.New("duplicate allocation")
)

type Allocation struct {
	Address common.Address `serialize:"true"`
	Balance uint256.Int    `serialize:"true"`
}

type Genesis struct {
	Timestamp int64 `serialize:"true"`
	// DevAccounts is the number of deterministic accounts whose keys the
	// node holds. Each starts with DevBalance.
	DevAccounts uint32       `serialize:"true"`
	DevBalance  uint256.Int  `serialize:"true"`
	Allocations []Allocation `serialize:"true"`
}

// Default returns the genesis of a development chain.
func Default() *Genesis {
	return &Genesis{
		DevAccounts: DefaultDevAccounts,
		DevBalance:  *units.MustParseEther(DefaultDevBalance),
	}
}

func Parse(bytes []byte) (*Genesis, error) {
	genesis := &Genesis{}
	if _, err := Codec.Unmarshal(bytes, genesis); err != nil {
		return nil, fmt.Errorf("failed to parse genesis: %w", err)
	}
	return genesis, genesis.Verify()
}

func (g *Genesis) Bytes() ([]byte, error) {
	return Codec.Marshal(CodecVersion, g)
}

// ChainID identifies the chain created from this genesis.
func (g *Genesis) ChainID() (ids.ID, error) {
	bytes, err := g.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	return ids.ID(hash.ComputeHash256Array(bytes)), nil
}

func (g *Genesis) Verify() error {
	if g.DevAccounts > maxDevAccounts {
		return fmt.Errorf("%w: %d > %d", ErrTooManyDevAccounts, g.DevAccounts, maxDevAccounts)
	}
	seen := make(map[common.Address]struct{}, len(g.Allocations))
	for _, alloc := range g.Allocations {
		if _, ok := seen[alloc.Address]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAlloc, alloc.Address)
		}
		seen[alloc.Address] = struct{}{}
	}
	return nil
}

// DevKey returns the private key of dev account [i].
func DevKey(i uint32) (*ecdsa.PrivateKey, error) {
	seed := crypto.Keccak256([]byte(fmt.Sprintf("%s %d", devKeySeed, i)))
	return crypto.ToECDSA(seed)
}

// DevKeys returns the keys of every dev account of [g].
func (g *Genesis) DevKeys() ([]*ecdsa.PrivateKey, error) {
	keys := make([]*ecdsa.PrivateKey, g.DevAccounts)
	for i := range keys {
		key, err := DevKey(uint32(i))
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}
	return keys, nil
}
