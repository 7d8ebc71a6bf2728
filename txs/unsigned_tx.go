// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
)

var (
	_ UnsignedTx = (*DeployTx)(nil)
	_ UnsignedTx = (*MintTx)(nil)
	_ UnsignedTx = (*MintForAddressTx)(nil)
	_ UnsignedTx = (*TransferTx)(nil)
	_ UnsignedTx = (*SetPausedTx)(nil)
	_ UnsignedTx = (*SetRevealedTx)(nil)
	_ UnsignedTx = (*SetURIPrefixTx)(nil)
	_ UnsignedTx = (*SetURISuffixTx)(nil)
	_ UnsignedTx = (*SetHiddenMetadataURITx)(nil)
	_ UnsignedTx = (*SetCostTx)(nil)
	_ UnsignedTx = (*SetMaxMintAmountPerTxTx)(nil)
	_ UnsignedTx = (*WithdrawTx)(nil)
)

// UnsignedTx is a contract call before it is signed by its sender.
type UnsignedTx interface {
	Base() *BaseTx

	// Visit calls the method of [v] matching the concrete transaction type.
	Visit(v Visitor) error
}

// DeployTx creates a new contract of the named kind. Contract is ignored.
type DeployTx struct {
	BaseTx `serialize:"true"`

	Kind string   `serialize:"true" json:"kind"`
	Args []string `serialize:"true" json:"args"`
}

func (t *DeployTx) Visit(v Visitor) error {
	return v.DeployTx(t)
}

// MintTx mints Quantity tokens to the sender, paying Value.
type MintTx struct {
	BaseTx `serialize:"true"`

	Quantity uint64 `serialize:"true" json:"quantity"`
}

func (t *MintTx) Visit(v Visitor) error {
	return v.MintTx(t)
}

type MintForAddressTx struct {
	BaseTx `serialize:"true"`

	Quantity  uint64         `serialize:"true" json:"quantity"`
	Recipient common.Address `serialize:"true" json:"recipient"`
}

func (t *MintForAddressTx) Visit(v Visitor) error {
	return v.MintForAddressTx(t)
}

type TransferTx struct {
	BaseTx `serialize:"true"`

	To      common.Address `serialize:"true" json:"to"`
	TokenID uint64         `serialize:"true" json:"tokenID"`
}

func (t *TransferTx) Visit(v Visitor) error {
	return v.TransferTx(t)
}

type SetPausedTx struct {
	BaseTx `serialize:"true"`

	Paused bool `serialize:"true" json:"paused"`
}

func (t *SetPausedTx) Visit(v Visitor) error {
	return v.SetPausedTx(t)
}

type SetRevealedTx struct {
	BaseTx `serialize:"true"`

	Revealed bool `serialize:"true" json:"revealed"`
}

func (t *SetRevealedTx) Visit(v Visitor) error {
	return v.SetRevealedTx(t)
}

type SetURIPrefixTx struct {
	BaseTx `serialize:"true"`

	URIPrefix string `serialize:"true" json:"uriPrefix"`
}

func (t *SetURIPrefixTx) Visit(v Visitor) error {
	return v.SetURIPrefixTx(t)
}

type SetURISuffixTx struct {
	BaseTx `serialize:"true"`

	URISuffix string `serialize:"true" json:"uriSuffix"`
}

func (t *SetURISuffixTx) Visit(v Visitor) error {
	return v.SetURISuffixTx(t)
}

type SetHiddenMetadataURITx struct {
	BaseTx `serialize:"true"`

	HiddenMetadataURI string `serialize:"true" json:"hiddenMetadataUri"`
}

func (t *SetHiddenMetadataURITx) Visit(v Visitor) error {
	return v.SetHiddenMetadataURITx(t)
}

type SetCostTx struct {
	BaseTx `serialize:"true"`

	Cost uint256.Int `serialize:"true" json:"cost"`
}

func (t *SetCostTx) Visit(v Visitor) error {
	return v.SetCostTx(t)
}

type SetMaxMintAmountPerTxTx struct {
	BaseTx `serialize:"true"`

	MaxMintAmountPerTx uint64 `serialize:"true" json:"maxMintAmountPerTx"`
}

func (t *SetMaxMintAmountPerTxTx) Visit(v Visitor) error {
	return v.SetMaxMintAmountPerTxTx(t)
}

// WithdrawTx sends the contract balance to its withdraw recipient.
type WithdrawTx struct {
	BaseTx `serialize:"true"`
}

func (t *WithdrawTx) Visit(v Visitor) error {
	return v.WithdrawTx(t)
}
