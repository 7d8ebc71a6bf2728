// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
)

// BaseTx is the basis of all transactions.
type BaseTx struct {
	ChainID  ids.ID         `serialize:"true" json:"chainID"`
	Nonce    uint64         `serialize:"true" json:"nonce"`
	Contract common.Address `serialize:"true" json:"contract"`
	Value    uint256.Int    `serialize:"true" json:"value"`
}

func (t *BaseTx) Base() *BaseTx {
	return t
}
