// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/mintvm/utils/units"
)

func TestDefaultConfig(t *testing.T) {
	require := require.New(t)

	cfg := DefaultConfig()
	require.NoError(cfg.Validate())
	require.Equal("KMB vs Vladimir", cfg.Name)
	require.Equal("KMB", cfg.Symbol)
	require.Equal(".json", cfg.URISuffix)
	require.Equal(uint64(3333), cfg.MaxSupply)
	require.Equal(uint64(5), cfg.MaxMintAmountPerTx)
	require.True(cfg.Paused)
	require.True(cfg.Revealed)
	require.True(cfg.Revealable)

	cost, err := cfg.CostWei()
	require.NoError(err)
	require.Equal(uint256.NewInt(10*units.Milli), cost)

	deployer := common.HexToAddress("0x01")
	require.Equal(common.HexToAddress(DefaultWithdrawRecipient), cfg.Recipient(deployer))
}

func TestSimpleConfig(t *testing.T) {
	require := require.New(t)

	cfg := SimpleConfig()
	require.NoError(cfg.Validate())
	require.False(cfg.Revealable)

	cost, err := cfg.CostWei()
	require.NoError(err)
	require.Equal(uint256.NewInt(20*units.Milli), cost)

	deployer := common.HexToAddress("0x01")
	require.Equal(deployer, cfg.Recipient(deployer))
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "default config valid",
			modify: func(*Config) {},
		},
		{
			name:    "empty name",
			modify:  func(c *Config) { c.Name = "" },
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty symbol",
			modify:  func(c *Config) { c.Symbol = "" },
			wantErr: ErrInvalidSymbol,
		},
		{
			name:    "zero max supply",
			modify:  func(c *Config) { c.MaxSupply = 0 },
			wantErr: ErrInvalidMaxSupply,
		},
		{
			name:    "zero max mint amount",
			modify:  func(c *Config) { c.MaxMintAmountPerTx = 0 },
			wantErr: ErrInvalidMaxMint,
		},
		{
			name:    "unparsable cost",
			modify:  func(c *Config) { c.Cost = "one" },
			wantErr: ErrInvalidCost,
		},
		{
			name:    "bad recipient",
			modify:  func(c *Config) { c.WithdrawRecipient = "0x1234" },
			wantErr: ErrInvalidRecipient,
		},
		{
			name: "hidden uri without reveal",
			modify: func(c *Config) {
				c.Revealable = false
				c.HiddenMetadataURI = "ipfs://hidden"
			},
			wantErr: ErrRevealNotApplicable,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), test.wantErr)
		})
	}
}

func TestForContract(t *testing.T) {
	require := require.New(t)

	cfg, err := ForContract(KMBContract, []string{"ipfs://prefix/", "ipfs://hidden.json"})
	require.NoError(err)
	require.Equal("ipfs://prefix/", cfg.URIPrefix)
	require.Equal("ipfs://hidden.json", cfg.HiddenMetadataURI)
	require.True(cfg.Revealable)

	cfg, err = ForContract(KMBContractSimple, []string{"ipfs://prefix/"})
	require.NoError(err)
	require.Equal("ipfs://prefix/", cfg.URIPrefix)
	require.False(cfg.Revealable)

	cfg, err = ForContract(KMBContractSimple, nil)
	require.NoError(err)
	require.Empty(cfg.URIPrefix)

	_, err = ForContract(KMBContractSimple, []string{"a", "b"})
	require.ErrorIs(err, ErrWrongArgumentCount)

	_, err = ForContract("ERC1155", nil)
	require.ErrorIs(err, ErrUnknownContract)
}

func TestParseConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := ParseConfig(nil)
	require.NoError(err)
	require.Equal(DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte(`{"cost":"0.8","maxMintAmountPerTx":4,"paused":false}`))
	require.NoError(err)
	require.Equal("0.8", cfg.Cost)
	require.Equal(uint64(4), cfg.MaxMintAmountPerTx)
	require.False(cfg.Paused)
	require.Equal(DefaultName, cfg.Name)

	_, err = ParseConfig([]byte(`{"maxSupply":0}`))
	require.ErrorIs(err, ErrInvalidMaxSupply)

	_, err = ParseConfig([]byte(`{`))
	require.Error(err)
}
