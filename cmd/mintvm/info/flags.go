// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"errors"

	"github.com/luxfi/geth/common"
	"github.com/spf13/pflag"

	"github.com/luxfi/mintvm/cmd/mintvm/deploy"
)

const URIKey = "uri"

var errInvalidContract = errors.New("expected one contract address")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(URIKey, deploy.LocalAPIURI, "API URI of the node")
}

type Config struct {
	URI      string
	Contract common.Address
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	if flags.NArg() != 1 || !common.IsHexAddress(flags.Arg(0)) {
		return nil, errInvalidContract
	}

	return &Config{
		URI:      uri,
		Contract: common.HexToAddress(flags.Arg(0)),
	}, nil
}
