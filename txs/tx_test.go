// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

var contract = common.HexToAddress("0xc0c0000000000000000000000000000000000003")

func TestSignParseRoundTrip(t *testing.T) {
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)

	unsigned := &MintTx{
		BaseTx: BaseTx{
			ChainID:  ids.GenerateTestID(),
			Nonce:    3,
			Contract: contract,
			Value:    *uint256.NewInt(50),
		},
		Quantity: 5,
	}
	tx, err := Sign(unsigned, key)
	require.NoError(err)
	require.NotEqual(ids.Empty, tx.ID())

	parsed, err := Parse(tx.Bytes())
	require.NoError(err)
	require.Equal(tx.ID(), parsed.ID())
	require.Equal(unsigned, parsed.Unsigned)

	sender, err := parsed.Sender()
	require.NoError(err)
	require.Equal(PubkeyToAddress(key.PublicKey), sender)
}

func TestTamperedTxChangesSender(t *testing.T) {
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)

	tx, err := Sign(&WithdrawTx{BaseTx: BaseTx{Contract: contract}}, key)
	require.NoError(err)

	tx.Unsigned.Base().Nonce++
	sender, err := tx.Sender()
	if err == nil {
		require.NotEqual(PubkeyToAddress(key.PublicKey), sender)
	}
}

func TestSignRejectsMissingInputs(t *testing.T) {
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)

	_, err = Sign(nil, key)
	require.ErrorIs(err, errNilUnsignedTx)

	_, err = Sign(&WithdrawTx{}, nil)
	require.ErrorIs(err, errMissingPrivKey)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
}

type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) record(name string) error {
	r.visited = append(r.visited, name)
	return nil
}

func (r *recordingVisitor) DeployTx(*DeployTx) error {
	return r.record("deploy")
}

func (r *recordingVisitor) MintTx(*MintTx) error {
	return r.record("mint")
}

func (r *recordingVisitor) MintForAddressTx(*MintForAddressTx) error {
	return r.record("mint_for_address")
}

func (r *recordingVisitor) TransferTx(*TransferTx) error {
	return r.record("transfer")
}

func (r *recordingVisitor) SetPausedTx(*SetPausedTx) error {
	return r.record("set_paused")
}

func (r *recordingVisitor) SetRevealedTx(*SetRevealedTx) error {
	return r.record("set_revealed")
}

func (r *recordingVisitor) SetURIPrefixTx(*SetURIPrefixTx) error {
	return r.record("set_uri_prefix")
}

func (r *recordingVisitor) SetURISuffixTx(*SetURISuffixTx) error {
	return r.record("set_uri_suffix")
}

func (r *recordingVisitor) SetHiddenMetadataURITx(*SetHiddenMetadataURITx) error {
	return r.record("set_hidden_metadata_uri")
}

func (r *recordingVisitor) SetCostTx(*SetCostTx) error {
	return r.record("set_cost")
}

func (r *recordingVisitor) SetMaxMintAmountPerTxTx(*SetMaxMintAmountPerTxTx) error {
	return r.record("set_max_mint_amount_per_tx")
}

func (r *recordingVisitor) WithdrawTx(*WithdrawTx) error {
	return r.record("withdraw")
}

func TestVisitDispatch(t *testing.T) {
	require := require.New(t)

	all := []UnsignedTx{
		&DeployTx{},
		&MintTx{},
		&MintForAddressTx{},
		&TransferTx{},
		&SetPausedTx{},
		&SetRevealedTx{},
		&SetURIPrefixTx{},
		&SetURISuffixTx{},
		&SetHiddenMetadataURITx{},
		&SetCostTx{},
		&SetMaxMintAmountPerTxTx{},
		&WithdrawTx{},
	}
	v := &recordingVisitor{}
	for _, tx := range all {
		require.NoError(tx.Visit(v))
	}
	require.Equal([]string{
		"deploy",
		"mint",
		"mint_for_address",
		"transfer",
		"set_paused",
		"set_revealed",
		"set_uri_prefix",
		"set_uri_suffix",
		"set_hidden_metadata_uri",
		"set_cost",
		"set_max_mint_amount_per_tx",
		"withdraw",
	}, v.visited)
}

func TestContractAddress(t *testing.T) {
	deployer := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	tests := []struct {
		nonce uint64
		want  string
	}{
		{nonce: 0, want: "0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d"},
		{nonce: 1, want: "0x343c43a37d37dff08ae8c4a11544c718abb4fcf8"},
		{nonce: 2, want: "0xf778b86fa74e846c4f0a1fbd1335fe81c00a0c91"},
	}
	for _, test := range tests {
		require.Equal(t, common.HexToAddress(test.want), ContractAddress(deployer, test.nonce))
	}
}
