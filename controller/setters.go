// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/state"
	"github.com/luxfi/mintvm/utils/units"
)

// SetPaused stops or resumes public minting.
func (c *Controller) SetPaused(caller common.Address, paused bool) error {
	return c.configure(caller, "set_paused", log.Bool("paused", paused), func(collection *state.Collection) error {
		collection.Paused = paused
		return nil
	})
}

// SetRevealed switches tokenURI between the hidden and the real metadata.
func (c *Controller) SetRevealed(caller common.Address, revealed bool) error {
	return c.configure(caller, "set_revealed", log.Bool("revealed", revealed), func(collection *state.Collection) error {
		if !collection.Revealable {
			return ErrRevealDisabled
		}
		collection.Revealed = revealed
		return nil
	})
}

// SetURIPrefix sets the base of revealed token URIs.
func (c *Controller) SetURIPrefix(caller common.Address, prefix string) error {
	return c.configure(caller, "set_uri_prefix", log.String("uriPrefix", prefix), func(collection *state.Collection) error {
		collection.URIPrefix = prefix
		return nil
	})
}

// SetURISuffix sets the extension appended to revealed token URIs.
func (c *Controller) SetURISuffix(caller common.Address, suffix string) error {
	return c.configure(caller, "set_uri_suffix", log.String("uriSuffix", suffix), func(collection *state.Collection) error {
		collection.URISuffix = suffix
		return nil
	})
}

// SetHiddenMetadataURI sets the URI served for every token before reveal.
func (c *Controller) SetHiddenMetadataURI(caller common.Address, uri string) error {
	return c.configure(caller, "set_hidden_metadata_uri", log.String("hiddenMetadataUri", uri), func(collection *state.Collection) error {
		if !collection.Revealable {
			return ErrRevealDisabled
		}
		collection.HiddenMetadataURI = uri
		return nil
	})
}

// SetCost sets the per-token price in wei.
func (c *Controller) SetCost(caller common.Address, cost *uint256.Int) error {
	return c.configure(caller, "set_cost", log.String("cost", units.FormatEther(cost)), func(collection *state.Collection) error {
		collection.Cost = *cost
		return nil
	})
}

// SetMaxMintAmountPerTx sets the largest batch a single mint may request.
func (c *Controller) SetMaxMintAmountPerTx(caller common.Address, amount uint64) error {
	return c.configure(caller, "set_max_mint_amount_per_tx", log.Uint64("maxMintAmountPerTx", amount), func(collection *state.Collection) error {
		if amount == 0 {
			return fmt.Errorf("%w: max mint amount per tx must be at least 1", ErrInvalidBatchSize)
		}
		collection.MaxMintAmountPerTx = amount
		return nil
	})
}

// configure applies an administrator-only change to the collection.
func (c *Controller) configure(caller common.Address, method string, field any, update func(*state.Collection) error) error {
	err := c.execute(method, func(v *view) error {
		collection, err := v.adminCollection(caller)
		if err != nil {
			return err
		}
		if err := update(collection); err != nil {
			return err
		}
		return v.state.Put(collection)
	})
	if err != nil {
		return err
	}

	c.backend.Log.Info("updated collection",
		log.Stringer("contract", c.backend.Address),
		log.String("method", method),
		field,
	)
	return nil
}
