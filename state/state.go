// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state persists the collection record of a deployed contract.
package state

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

var (
	ErrNotInitialized = errors.New("collection not initialized")

	collectionPrefix = []byte("collection")
	collectionKey    = []byte("record")
)

// Collection is the mutable configuration and supply counter of a contract.
type Collection struct {
	Name               string         `serialize:"true" json:"name"`
	Symbol             string         `serialize:"true" json:"symbol"`
	Admin              common.Address `serialize:"true" json:"admin"`
	WithdrawRecipient  common.Address `serialize:"true" json:"withdrawRecipient"`
	Cost               uint256.Int    `serialize:"true" json:"cost"`
	MaxSupply          uint64         `serialize:"true" json:"maxSupply"`
	MaxMintAmountPerTx uint64         `serialize:"true" json:"maxMintAmountPerTx"`
	URIPrefix          string         `serialize:"true" json:"uriPrefix"`
	URISuffix          string         `serialize:"true" json:"uriSuffix"`
	HiddenMetadataURI  string         `serialize:"true" json:"hiddenMetadataUri"`
	Paused             bool           `serialize:"true" json:"paused"`
	Revealed           bool           `serialize:"true" json:"revealed"`
	Revealable         bool           `serialize:"true" json:"revealable"`
	TotalSupply        uint64         `serialize:"true" json:"totalSupply"`
}

// Remaining returns how many tokens can still be issued.
func (c *Collection) Remaining() uint64 {
	if c.TotalSupply >= c.MaxSupply {
		return 0
	}
	return c.MaxSupply - c.TotalSupply
}

type State struct {
	db database.Database
}

func New(db database.Database) *State {
	return &State{db: prefixdb.New(collectionPrefix, db)}
}

func (s *State) Get() (*Collection, error) {
	bytes, err := s.db.Get(collectionKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}

	collection := &Collection{}
	if _, err := Codec.Unmarshal(bytes, collection); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}
	return collection, nil
}

func (s *State) Put(collection *Collection) error {
	bytes, err := Codec.Marshal(CodecVersion, collection)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}
	return s.db.Put(collectionKey, bytes)
}

func (s *State) Initialized() (bool, error) {
	return s.db.Has(collectionKey)
}
