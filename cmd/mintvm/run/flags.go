// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import "github.com/spf13/pflag"

const (
	URIKey     = "uri"
	UnpauseKey = "unpause"
	MintsKey   = "mints"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(URIKey, "", "API URI of the node. An in-memory node is started when empty")
	flags.Bool(UnpauseKey, true, "Unpause the contract before minting")
	flags.Uint(MintsKey, 2, "Number of single token mints to send")
}

type Config struct {
	URI     string
	Unpause bool
	Mints   uint
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	unpause, err := flags.GetBool(UnpauseKey)
	if err != nil {
		return nil, err
	}

	mints, err := flags.GetUint(MintsKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		URI:     uri,
		Unpause: unpause,
		Mints:   mints,
	}, nil
}
