// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/mintvm/config"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr error
	}{
		{
			name: "defaults",
			want: &Config{
				URI:  LocalAPIURI,
				Kind: config.KMBContractSimple,
				Args: []string{},
			},
		},
		{
			name: "constructor args",
			args: []string{
				"--" + KindKey, config.KMBContract,
				"--" + FromKey, "0x633b7218644b83d57d90e7299039ebab19698e9c",
				"ipfs://prefix/", "ipfs://hidden.json",
			},
			want: &Config{
				URI:  LocalAPIURI,
				From: common.HexToAddress("0x633b7218644b83d57d90e7299039ebab19698e9c"),
				Kind: config.KMBContract,
				Args: []string{"ipfs://prefix/", "ipfs://hidden.json"},
			},
		},
		{
			name:    "bad from",
			args:    []string{"--" + FromKey, "alice"},
			wantErr: errInvalidFrom,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			flags := pflag.NewFlagSet("deploy", pflag.ContinueOnError)
			AddFlags(flags)
			cfg, err := ParseFlags(flags, test.args)
			require.ErrorIs(err, test.wantErr)
			if test.wantErr == nil {
				require.Equal(test.want, cfg)
			}
		})
	}
}
