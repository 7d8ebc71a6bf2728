// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

// Visitor allows executing a function over each possible transaction type.
type Visitor interface {
	DeployTx(*DeployTx) error
	MintTx(*MintTx) error
	MintForAddressTx(*MintForAddressTx) error
	TransferTx(*TransferTx) error
	SetPausedTx(*SetPausedTx) error
	SetRevealedTx(*SetRevealedTx) error
	SetURIPrefixTx(*SetURIPrefixTx) error
	SetURISuffixTx(*SetURISuffixTx) error
	SetHiddenMetadataURITx(*SetHiddenMetadataURITx) error
	SetCostTx(*SetCostTx) error
	SetMaxMintAmountPerTxTx(*SetMaxMintAmountPerTxTx) error
	WithdrawTx(*WithdrawTx) error
}
