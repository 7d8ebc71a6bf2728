// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package controller implements the mint contract: a supply-capped,
// payment-gated collection whose configuration only its administrator can
// change.
package controller

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/config"
	"github.com/luxfi/mintvm/ledger"
	"github.com/luxfi/mintvm/state"
	"github.com/luxfi/mintvm/utils/units"
)

// Controller runs the calls of one deployed contract. Every mutating call is
// applied atomically: either all of its writes land or none do.
//
// The lock only orders calls made through the same Controller. Callers that
// build a Controller per call, as the chain does, must serialize those calls
// themselves.
type Controller struct {
	backend Backend

	lock sync.RWMutex
}

// Info is a snapshot of the contract.
type Info struct {
	Address    common.Address
	Collection state.Collection
	Balance    uint256.Int
}

// New returns the controller of a contract previously created by Deploy.
func New(backend *Backend) *Controller {
	return &Controller{backend: *backend}
}

// Deploy creates a contract at backend.Address administered by [admin].
func Deploy(backend *Backend, admin common.Address, cfg config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cost, err := cfg.CostWei()
	if err != nil {
		return nil, err
	}

	c := New(backend)
	err = c.execute("deploy", func(v *view) error {
		initialized, err := v.state.Initialized()
		if err != nil {
			return err
		}
		if initialized {
			return fmt.Errorf("%w: %s", ErrAlreadyDeployed, backend.Address)
		}
		return v.state.Put(&state.Collection{
			Name:               cfg.Name,
			Symbol:             cfg.Symbol,
			Admin:              admin,
			WithdrawRecipient:  cfg.Recipient(admin),
			Cost:               *cost,
			MaxSupply:          cfg.MaxSupply,
			MaxMintAmountPerTx: cfg.MaxMintAmountPerTx,
			URIPrefix:          cfg.URIPrefix,
			URISuffix:          cfg.URISuffix,
			HiddenMetadataURI:  cfg.HiddenMetadataURI,
			Paused:             cfg.Paused,
			Revealed:           cfg.Revealed,
			Revealable:         cfg.Revealable,
		})
	})
	if err != nil {
		return nil, err
	}

	backend.Log.Info("deployed contract",
		log.Stringer("address", backend.Address),
		log.Stringer("admin", admin),
		log.String("name", cfg.Name),
		log.Bool("revealable", cfg.Revealable),
	)
	return c, nil
}

// Address is where the contract is deployed.
func (c *Controller) Address() common.Address {
	return c.backend.Address
}

// Mint issues [quantity] tokens to [caller] in exchange for [payment]. The
// whole payment is kept by the contract.
func (c *Controller) Mint(caller common.Address, quantity uint64, payment *uint256.Int) ([]uint64, error) {
	if payment == nil {
		payment = new(uint256.Int)
	}

	var minted []uint64
	err := c.execute("mint", func(v *view) error {
		collection, err := v.collection()
		if err != nil {
			return err
		}
		if collection.Paused {
			return ErrMintingPaused
		}
		if err := checkCompliance(collection, quantity); err != nil {
			return err
		}

		price, overflow := new(uint256.Int).MulOverflow(&collection.Cost, uint256.NewInt(quantity))
		if overflow || payment.Lt(price) {
			return fmt.Errorf("%w: paid %s, need %s for %d", ErrInsufficientPayment, payment, price, quantity)
		}
		if err := v.bank.Transfer(caller, c.backend.Address, payment); err != nil {
			return fmt.Errorf("failed to collect payment: %w", err)
		}

		minted, err = mintLoop(v, collection, caller, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.backend.Metrics.MarkMinted(quantity)
	c.backend.Log.Info("minted tokens",
		log.Stringer("contract", c.backend.Address),
		log.Stringer("to", caller),
		log.Uint64("quantity", quantity),
		log.String("payment", units.FormatEther(payment)),
	)
	return minted, nil
}

// MintForAddress issues [quantity] tokens to [recipient] free of charge. It
// ignores the pause flag but still honours the batch and supply limits.
func (c *Controller) MintForAddress(caller common.Address, quantity uint64, recipient common.Address) ([]uint64, error) {
	var minted []uint64
	err := c.execute("mint_for_address", func(v *view) error {
		collection, err := v.adminCollection(caller)
		if err != nil {
			return err
		}
		if err := checkCompliance(collection, quantity); err != nil {
			return err
		}
		minted, err = mintLoop(v, collection, recipient, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.backend.Metrics.MarkMinted(quantity)
	c.backend.Log.Info("minted tokens for address",
		log.Stringer("contract", c.backend.Address),
		log.Stringer("to", recipient),
		log.Uint64("quantity", quantity),
	)
	return minted, nil
}

func checkCompliance(collection *state.Collection, quantity uint64) error {
	if quantity == 0 || quantity > collection.MaxMintAmountPerTx {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidBatchSize, quantity, collection.MaxMintAmountPerTx)
	}
	if quantity > collection.Remaining() {
		return fmt.Errorf("%w: %d requested, %d left", ErrSupplyExceeded, quantity, collection.Remaining())
	}
	return nil
}

// mintLoop assigns the next [quantity] ids to [to] and advances the supply
// counter.
func mintLoop(v *view, collection *state.Collection, to common.Address, quantity uint64) ([]uint64, error) {
	if to == (common.Address{}) {
		return nil, ErrZeroAddress
	}

	minted := make([]uint64, 0, quantity)
	for i := uint64(1); i <= quantity; i++ {
		id := collection.TotalSupply + i
		if err := v.ledger.Mint(to, id); err != nil {
			return nil, fmt.Errorf("failed to mint token %d: %w", id, err)
		}
		minted = append(minted, id)
	}
	collection.TotalSupply += quantity
	return minted, v.state.Put(collection)
}

// TokenURI returns the metadata location of [id].
func (c *Controller) TokenURI(id uint64) (string, error) {
	var uri string
	err := c.read(func(v *view) error {
		collection, err := v.collection()
		if err != nil {
			return err
		}
		if _, err := v.ownerOf(id); err != nil {
			return err
		}

		if collection.Revealable && !collection.Revealed {
			uri = collection.HiddenMetadataURI
			return nil
		}
		if collection.URIPrefix == "" {
			return nil
		}
		uri = collection.URIPrefix + strconv.FormatUint(id, 10) + collection.URISuffix
		return nil
	})
	return uri, err
}

// WalletOfOwner returns the ids held by [owner] in ascending order.
func (c *Controller) WalletOfOwner(owner common.Address) ([]uint64, error) {
	ids := []uint64{}
	err := c.read(func(v *view) error {
		collection, err := v.collection()
		if err != nil {
			return err
		}
		balance, err := v.ledger.BalanceOf(owner)
		if err != nil {
			return err
		}

		for id := uint64(1); id <= collection.TotalSupply && uint64(len(ids)) < balance; id++ {
			holder, err := v.ownerOf(id)
			if err != nil {
				return err
			}
			if holder == owner {
				ids = append(ids, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// OwnerOf returns the holder of token [id].
func (c *Controller) OwnerOf(id uint64) (common.Address, error) {
	var owner common.Address
	err := c.read(func(v *view) error {
		if _, err := v.collection(); err != nil {
			return err
		}
		var err error
		owner, err = v.ownerOf(id)
		return err
	})
	return owner, err
}

// BalanceOf returns how many tokens [owner] holds.
func (c *Controller) BalanceOf(owner common.Address) (uint64, error) {
	var balance uint64
	err := c.read(func(v *view) error {
		if _, err := v.collection(); err != nil {
			return err
		}
		var err error
		balance, err = v.ledger.BalanceOf(owner)
		return err
	})
	return balance, err
}

// Transfer moves [id] from [caller] to [to].
func (c *Controller) Transfer(caller, to common.Address, id uint64) error {
	err := c.execute("transfer", func(v *view) error {
		if _, err := v.collection(); err != nil {
			return err
		}
		err := v.ledger.Transfer(caller, to, id)
		if errors.Is(err, ledger.ErrUnknownToken) {
			return fmt.Errorf("%w: %d", ErrUnknownToken, id)
		}
		return err
	})
	if err != nil {
		return err
	}

	c.backend.Log.Debug("transferred token",
		log.Stringer("contract", c.backend.Address),
		log.Stringer("from", caller),
		log.Stringer("to", to),
		log.Uint64("tokenID", id),
	)
	return nil
}

// Withdraw sends the whole contract balance to the withdraw recipient and
// returns the amount sent.
func (c *Controller) Withdraw(caller common.Address) (*uint256.Int, error) {
	var (
		amount    *uint256.Int
		recipient common.Address
	)
	err := c.execute("withdraw", func(v *view) error {
		collection, err := v.adminCollection(caller)
		if err != nil {
			return err
		}
		amount, err = v.bank.Balance(c.backend.Address)
		if err != nil {
			return err
		}
		recipient = collection.WithdrawRecipient
		return v.bank.Transfer(c.backend.Address, recipient, amount)
	})
	if err != nil {
		return nil, err
	}

	wei, _ := new(big.Float).SetInt(amount.ToBig()).Float64()
	c.backend.Metrics.MarkWithdrawn(wei)
	c.backend.Log.Info("withdrew contract balance",
		log.Stringer("contract", c.backend.Address),
		log.Stringer("recipient", recipient),
		log.String("amount", units.FormatEther(amount)),
	)
	return amount, nil
}

// Info returns the collection record and contract balance.
func (c *Controller) Info() (*Info, error) {
	info := &Info{Address: c.backend.Address}
	err := c.read(func(v *view) error {
		collection, err := v.collection()
		if err != nil {
			return err
		}
		balance, err := v.bank.Balance(c.backend.Address)
		if err != nil {
			return err
		}
		info.Collection = *collection
		info.Balance = *balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// execute runs [f] against a fresh versiondb and commits only if it succeeds.
func (c *Controller) execute(method string, f func(v *view) error) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	vdb := versiondb.New(c.backend.DB)
	defer vdb.Abort()

	if err := f(c.backend.newView(vdb)); err != nil {
		c.backend.Metrics.MarkReverted(method, Reason(err))
		c.backend.Log.Debug("call reverted",
			log.Stringer("contract", c.backend.Address),
			log.String("method", method),
			log.Err(err),
		)
		return err
	}
	return vdb.Commit()
}

func (c *Controller) read(f func(v *view) error) error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return f(c.backend.newView(c.backend.DB))
}

func (v *view) collection() (*state.Collection, error) {
	collection, err := v.state.Get()
	if errors.Is(err, state.ErrNotInitialized) {
		return nil, ErrNotDeployed
	}
	return collection, err
}

// adminCollection loads the collection if [caller] administers it.
func (v *view) adminCollection(caller common.Address) (*state.Collection, error) {
	collection, err := v.collection()
	if err != nil {
		return nil, err
	}
	if caller != collection.Admin {
		return nil, fmt.Errorf("%w: %s", ErrNotAuthorized, caller)
	}
	return collection, nil
}

func (v *view) ownerOf(id uint64) (common.Address, error) {
	owner, err := v.ledger.OwnerOf(id)
	if errors.Is(err, ledger.ErrUnknownToken) {
		return common.Address{}, fmt.Errorf("%w: %d", ErrUnknownToken, id)
	}
	return owner, err
}
