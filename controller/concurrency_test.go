// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentMints(t *testing.T) {
	require := require.New(t)

	cfg := revealConfig()
	cfg.MaxSupply = 12
	env := newTestEnv(t, cfg)
	env.unpause(t)

	var (
		lock    sync.Mutex
		minted  []uint64
		eg      errgroup.Group
		callers = 8
	)
	for range callers {
		eg.Go(func() error {
			ids, err := env.controller.Mint(alice, 2, ether("0.02"))
			if err != nil {
				return err
			}
			lock.Lock()
			minted = append(minted, ids...)
			lock.Unlock()
			return nil
		})
	}
	err := eg.Wait()
	require.ErrorIs(err, ErrSupplyExceeded)

	slices.Sort(minted)
	require.Equal([]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, minted)
	require.Equal(uint64(12), env.totalSupply(t))
	require.Equal(ether("0.12"), env.balance(t, contractAddr))
}
