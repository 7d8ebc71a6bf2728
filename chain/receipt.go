// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
)

const codecVersion = 0

var receiptCodec codec.Manager

func init() {
	receiptCodec = codec.NewManager(math.MaxInt32)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&Receipt{}),
		receiptCodec.RegisterCodec(codecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}

// Receipt records the outcome of an included transaction.
type Receipt struct {
	TxID   ids.ID         `serialize:"true"`
	Height uint64         `serialize:"true"`
	Sender common.Address `serialize:"true"`
	Nonce  uint64         `serialize:"true"`
	Status Status         `serialize:"true"`
	// Error is the revert reason of a Reverted transaction.
	Error string `serialize:"true"`

	// Contract is the called contract, or the new one for a deployment.
	Contract  common.Address `serialize:"true"`
	TokenIDs  []uint64       `serialize:"true"`
	Withdrawn uint256.Int    `serialize:"true"`
}
