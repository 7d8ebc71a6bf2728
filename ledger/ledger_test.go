// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"testing"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0xa11ce00000000000000000000000000000000001")
	bob   = common.HexToAddress("0xb0b0000000000000000000000000000000000002")
)

func TestMintAndOwnerOf(t *testing.T) {
	require := require.New(t)

	l := New(memdb.New())

	_, err := l.OwnerOf(1)
	require.ErrorIs(err, ErrUnknownToken)

	require.NoError(l.Mint(alice, 1))
	require.NoError(l.Mint(alice, 2))
	require.NoError(l.Mint(bob, 3))

	owner, err := l.OwnerOf(2)
	require.NoError(err)
	require.Equal(alice, owner)

	balance, err := l.BalanceOf(alice)
	require.NoError(err)
	require.Equal(uint64(2), balance)

	issued, err := l.TotalIssued()
	require.NoError(err)
	require.Equal(uint64(3), issued)

	err = l.Mint(bob, 2)
	require.ErrorIs(err, ErrTokenExists)
}

func TestMintRejectsInvalidTokens(t *testing.T) {
	require := require.New(t)

	l := New(memdb.New())
	require.ErrorIs(l.Mint(alice, 0), ErrInvalidTokenID)
	require.ErrorIs(l.Mint(common.Address{}, 1), ErrZeroAddress)

	issued, err := l.TotalIssued()
	require.NoError(err)
	require.Zero(issued)
}

func TestTransfer(t *testing.T) {
	require := require.New(t)

	l := New(memdb.New())
	require.NoError(l.Mint(alice, 1))

	require.ErrorIs(l.Transfer(bob, alice, 1), ErrNotTokenOwner)
	require.ErrorIs(l.Transfer(alice, bob, 7), ErrUnknownToken)
	require.ErrorIs(l.Transfer(alice, common.Address{}, 1), ErrZeroAddress)

	require.NoError(l.Transfer(alice, bob, 1))

	owner, err := l.OwnerOf(1)
	require.NoError(err)
	require.Equal(bob, owner)

	aliceBalance, err := l.BalanceOf(alice)
	require.NoError(err)
	require.Zero(aliceBalance)

	bobBalance, err := l.BalanceOf(bob)
	require.NoError(err)
	require.Equal(uint64(1), bobBalance)

	// self transfer is a no-op
	require.NoError(l.Transfer(bob, bob, 1))
	bobBalance, err = l.BalanceOf(bob)
	require.NoError(err)
	require.Equal(uint64(1), bobBalance)
}

func TestTokenVerify(t *testing.T) {
	tests := []struct {
		name    string
		token   *Token
		wantErr error
	}{
		{name: "nil", token: nil, wantErr: errNilToken},
		{name: "zero id", token: &Token{Owner: alice}, wantErr: ErrInvalidTokenID},
		{name: "zero owner", token: &Token{ID: 1}, wantErr: ErrZeroAddress},
		{name: "valid", token: &Token{ID: 1, Owner: alice}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, test.token.Verify(), test.wantErr)
		})
	}
}
