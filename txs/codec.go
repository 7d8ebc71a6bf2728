// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const CodecVersion = 0

var Codec codec.Manager

func init() {
	Codec = codec.NewManager(math.MaxInt)
	lc := linearcodec.NewDefault()

	// The registration order fixes the type IDs on the wire. Append only.
	err := errors.Join(
		lc.RegisterType(&DeployTx{}),
		lc.RegisterType(&MintTx{}),
		lc.RegisterType(&MintForAddressTx{}),
		lc.RegisterType(&TransferTx{}),
		lc.RegisterType(&SetPausedTx{}),
		lc.RegisterType(&SetRevealedTx{}),
		lc.RegisterType(&SetURIPrefixTx{}),
		lc.RegisterType(&SetURISuffixTx{}),
		lc.RegisterType(&SetHiddenMetadataURITx{}),
		lc.RegisterType(&SetCostTx{}),
		lc.RegisterType(&SetMaxMintAmountPerTxTx{}),
		lc.RegisterType(&WithdrawTx{}),
		Codec.RegisterCodec(CodecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}
