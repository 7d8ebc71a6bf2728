// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestGetBeforePut(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	_, err := s.Get()
	require.ErrorIs(err, ErrNotInitialized)

	initialized, err := s.Initialized()
	require.NoError(err)
	require.False(initialized)
}

func TestPutGet(t *testing.T) {
	require := require.New(t)

	s := New(memdb.New())
	want := &Collection{
		Name:               "KMB vs Vladimir",
		Symbol:             "KMB",
		Admin:              common.HexToAddress("0x0100000000000000000000000000000000000001"),
		WithdrawRecipient:  common.HexToAddress("0x633b7218644b83d57d90e7299039ebab19698e9c"),
		Cost:               *uint256.NewInt(10_000_000_000_000_000),
		MaxSupply:          3333,
		MaxMintAmountPerTx: 5,
		URIPrefix:          "ipfs://cid/",
		URISuffix:          ".json",
		HiddenMetadataURI:  "ipfs://hidden.json",
		Paused:             true,
		Revealed:           true,
		Revealable:         true,
		TotalSupply:        12,
	}
	require.NoError(s.Put(want))

	got, err := s.Get()
	require.NoError(err)
	require.Equal(want, got)
	require.Equal(uint64(3321), got.Remaining())

	initialized, err := s.Initialized()
	require.NoError(err)
	require.True(initialized)
}

func TestRemaining(t *testing.T) {
	c := &Collection{MaxSupply: 3, TotalSupply: 3}
	require.Zero(t, c.Remaining())

	c.TotalSupply = 4
	require.Zero(t, c.Remaining())
}
