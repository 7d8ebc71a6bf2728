// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config defines the deploy-time parameters of a collection.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"

	"github.com/luxfi/mintvm/utils/units"
)

const (
	// KMBContract is the collection kind with a reveal mechanic.
	KMBContract = "KMBContract"
	// KMBContractSimple is the collection kind without a reveal mechanic.
	KMBContractSimple = "KMBContractSimple"

	DefaultName               = "KMB vs Vladimir"
	DefaultSymbol             = "KMB"
	DefaultURISuffix          = ".json"
	DefaultMaxSupply          = 3333
	DefaultMaxMintAmountPerTx = 5
	DefaultCost               = "0.01"
	DefaultSimpleCost         = "0.02"

	// DefaultWithdrawRecipient is the fixed payee of the reveal collection.
	DefaultWithdrawRecipient = "0x633b7218644b83d57d90e7299039ebab19698e9c"
)

var (
	ErrInvalidName         = errors.New("invalid collection name")
	ErrInvalidSymbol       = errors.New("invalid collection symbol")
	ErrInvalidCost         = errors.New("invalid cost")
	ErrInvalidMaxSupply    = errors.New("invalid max supply")
	ErrInvalidMaxMint      = errors.New("invalid max mint amount per tx")
	ErrInvalidRecipient    = errors.New("invalid withdraw recipient")
	ErrUnknownContract     = errors.New("unknown contract kind")
	ErrWrongArgumentCount  = errors.New("wrong number of constructor arguments")
	ErrRevealNotApplicable = errors.New("hidden metadata uri set on a collection without reveal")
)

// Config holds the constructor-time state of a collection.
type Config struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	// Cost is the price of one token in ether, e.g. "0.01".
	Cost               string `json:"cost"`
	MaxSupply          uint64 `json:"maxSupply"`
	MaxMintAmountPerTx uint64 `json:"maxMintAmountPerTx"`

	URIPrefix         string `json:"uriPrefix"`
	URISuffix         string `json:"uriSuffix"`
	HiddenMetadataURI string `json:"hiddenMetadataUri"`

	Paused   bool `json:"paused"`
	Revealed bool `json:"revealed"`
	// Revealable collections serve HiddenMetadataURI until revealed.
	Revealable bool `json:"revealable"`

	// WithdrawRecipient receives withdrawn funds. Empty means the deployer.
	WithdrawRecipient string `json:"withdrawRecipient"`
}

// DefaultConfig returns the reveal collection with its stock parameters.
func DefaultConfig() Config {
	return Config{
		Name:               DefaultName,
		Symbol:             DefaultSymbol,
		Cost:               DefaultCost,
		MaxSupply:          DefaultMaxSupply,
		MaxMintAmountPerTx: DefaultMaxMintAmountPerTx,
		URISuffix:          DefaultURISuffix,
		Paused:             true,
		Revealed:           true,
		Revealable:         true,
		WithdrawRecipient:  DefaultWithdrawRecipient,
	}
}

// SimpleConfig returns the collection without a reveal mechanic. Funds are
// withdrawn to the deployer.
func SimpleConfig() Config {
	return Config{
		Name:               DefaultName,
		Symbol:             DefaultSymbol,
		Cost:               DefaultSimpleCost,
		MaxSupply:          DefaultMaxSupply,
		MaxMintAmountPerTx: DefaultMaxMintAmountPerTx,
		URISuffix:          DefaultURISuffix,
		Paused:             true,
		Revealed:           true,
	}
}

// ForContract builds the config of a contract kind from its constructor
// arguments: (uriPrefix, hiddenMetadataUri) for KMBContract and (uriPrefix)
// for KMBContractSimple. Omitted arguments keep their defaults.
func ForContract(kind string, args []string) (Config, error) {
	var (
		cfg     Config
		maxArgs int
	)
	switch kind {
	case KMBContract:
		cfg, maxArgs = DefaultConfig(), 2
	case KMBContractSimple:
		cfg, maxArgs = SimpleConfig(), 1
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownContract, kind)
	}
	if len(args) > maxArgs {
		return Config{}, fmt.Errorf("%w: %s takes at most %d, got %d",
			ErrWrongArgumentCount, kind, maxArgs, len(args))
	}
	if len(args) > 0 {
		cfg.URIPrefix = args[0]
	}
	if len(args) > 1 {
		cfg.HiddenMetadataURI = args[1]
	}
	return cfg, cfg.Validate()
}

// CostWei returns the per-token price in wei.
func (c *Config) CostWei() (*uint256.Int, error) {
	cost, err := units.ParseEther(c.Cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}
	return cost, nil
}

// Recipient resolves the withdraw recipient, falling back to [deployer].
func (c *Config) Recipient(deployer common.Address) common.Address {
	if c.WithdrawRecipient == "" {
		return deployer
	}
	return common.HexToAddress(c.WithdrawRecipient)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch {
	case c.Name == "":
		return ErrInvalidName
	case c.Symbol == "":
		return ErrInvalidSymbol
	case c.MaxSupply == 0:
		return ErrInvalidMaxSupply
	case c.MaxMintAmountPerTx == 0:
		return ErrInvalidMaxMint
	case !c.Revealable && c.HiddenMetadataURI != "":
		return ErrRevealNotApplicable
	}
	if _, err := c.CostWei(); err != nil {
		return err
	}
	if c.WithdrawRecipient != "" && !common.IsHexAddress(c.WithdrawRecipient) {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, c.WithdrawRecipient)
	}
	return nil
}

// ParseConfig parses configuration from JSON bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}
