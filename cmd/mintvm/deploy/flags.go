// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"errors"

	"github.com/luxfi/geth/common"
	"github.com/spf13/pflag"

	"github.com/luxfi/mintvm/config"
)

const (
	URIKey  = "uri"
	FromKey = "from"
	KindKey = "kind"

	LocalAPIURI = "http://127.0.0.1:9650"
)

var errInvalidFrom = errors.New("invalid from address")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(URIKey, LocalAPIURI, "API URI of the node")
	flags.String(FromKey, "", "Dev account that deploys the contract. The first dev account is used when empty")
	flags.String(KindKey, config.KMBContractSimple, "Kind of contract to deploy")
}

type Config struct {
	URI  string
	From common.Address
	Kind string
	// Args are the constructor arguments.
	Args []string
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	fromStr, err := flags.GetString(FromKey)
	if err != nil {
		return nil, err
	}

	var from common.Address
	if fromStr != "" {
		if !common.IsHexAddress(fromStr) {
			return nil, errInvalidFrom
		}
		from = common.HexToAddress(fromStr)
	}

	kind, err := flags.GetString(KindKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		URI:  uri,
		From: from,
		Kind: kind,
		Args: flags.Args(),
	}, nil
}
