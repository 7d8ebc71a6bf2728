// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestRandomMintsNeverExceedSupply(t *testing.T) {
	require := require.New(t)

	const maxSupply = 17
	cfg := revealConfig()
	cfg.MaxSupply = maxSupply
	env := newTestEnv(t, cfg)
	env.unpause(t)

	var (
		rng     = rand.New(rand.NewPCG(1, 2))
		minters = []common.Address{alice, bob}
		minted  uint64
		paid    = new(uint256.Int)
	)
	for range 400 {
		caller := minters[rng.IntN(len(minters))]
		quantity := rng.Uint64N(7)
		payment := new(uint256.Int).Mul(ether("0.01"), uint256.NewInt(rng.Uint64N(7)))

		tokenIDs, err := env.controller.Mint(caller, quantity, payment)
		if err != nil {
			require.Empty(tokenIDs)
			require.True(
				errors.Is(err, ErrInvalidBatchSize) ||
					errors.Is(err, ErrInsufficientPayment) ||
					errors.Is(err, ErrSupplyExceeded),
				err.Error(),
			)
			continue
		}
		require.Len(tokenIDs, int(quantity))
		require.Equal(minted+1, tokenIDs[0])
		minted += quantity
		paid.Add(paid, payment)
		require.LessOrEqual(env.totalSupply(t), uint64(maxSupply))
	}
	require.Equal(minted, env.totalSupply(t))

	aliceWallet, err := env.controller.WalletOfOwner(alice)
	require.NoError(err)
	bobWallet, err := env.controller.WalletOfOwner(bob)
	require.NoError(err)

	all := append(slices.Clone(aliceWallet), bobWallet...)
	slices.Sort(all)
	want := make([]uint64, 0, minted)
	for id := uint64(1); id <= minted; id++ {
		want = append(want, id)
	}
	require.Equal(want, all)

	// payments only move between the minters and the contract
	require.Equal(paid, env.balance(t, contractAddr))
	total := new(uint256.Int).Add(env.balance(t, alice), env.balance(t, bob))
	total.Add(total, paid)
	require.Equal(ether("200"), total)
}

func TestPausedMintKeepsPayment(t *testing.T) {
	require := require.New(t)

	env := newTestEnv(t, revealConfig())
	before := env.balance(t, alice)

	tokenIDs, err := env.controller.Mint(alice, 1, ether("0.01"))
	require.ErrorIs(err, ErrMintingPaused)
	require.Empty(tokenIDs)

	require.Equal(before, env.balance(t, alice))
	require.True(env.balance(t, contractAddr).IsZero())
	require.Zero(env.totalSupply(t))
}
