// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain is a single-node chain that executes mint contract
// transactions one at a time. Every included transaction gets a receipt.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"github.com/luxfi/cache/lru"
	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/database/versiondb"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/bank"
	"github.com/luxfi/mintvm/controller"
	"github.com/luxfi/mintvm/genesis"
	"github.com/luxfi/mintvm/metrics"
	"github.com/luxfi/mintvm/txs"
	"github.com/luxfi/mintvm/txs/executor"
)

const receiptCacheSize = 1024

var (
	ErrWrongChain        = errors.New("wrong chain ID")
	ErrInvalidNonce      = errors.New("invalid nonce")
	ErrInsufficientFunds = errors.New("insufficient funds for value")
	ErrUnknownAccount    = errors.New("unknown account")
	ErrUnknownReceipt    = errors.New("unknown receipt")
	ErrGenesisMismatch   = errors.New("database was created from a different genesis")
	ErrClosed            = errors.New("chain closed")

	noncePrefix   = []byte("nonce")
	receiptPrefix = []byte("receipt")
	metaPrefix    = []byte("meta")

	chainIDKey = []byte("chainID")
	heightKey  = []byte("height")
)

type Chain struct {
	log     log.Logger
	metrics metrics.Metrics

	lock     sync.RWMutex
	db       database.Database
	chainID  ids.ID
	height   uint64
	closed   bool
	keys     map[common.Address]*ecdsa.PrivateKey
	accounts []common.Address
	receipts *lru.Cache[ids.ID, *Receipt]
}

// New opens the chain stored in [db], creating it from [genesisBytes] if the
// database is empty.
func New(
	db database.Database,
	genesisBytes []byte,
	logger log.Logger,
	m metrics.Metrics,
) (*Chain, error) {
	g, err := genesis.Parse(genesisBytes)
	if err != nil {
		return nil, err
	}
	chainID, err := g.ChainID()
	if err != nil {
		return nil, err
	}

	c := &Chain{
		log:      logger,
		metrics:  m,
		db:       db,
		chainID:  chainID,
		keys:     make(map[common.Address]*ecdsa.PrivateKey, g.DevAccounts),
		receipts: lru.NewCache[ids.ID, *Receipt](receiptCacheSize),
	}

	keys, err := g.DevKeys()
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		addr := txs.PubkeyToAddress(key.PublicKey)
		c.keys[addr] = key
		c.accounts = append(c.accounts, addr)
	}

	if err := c.initialize(g); err != nil {
		return nil, err
	}

	logger.Info("chain initialized",
		log.Stringer("chainID", chainID),
		log.Uint64("height", c.height),
		log.Int("devAccounts", len(c.accounts)),
	)
	return c, nil
}

func (c *Chain) initialize(g *genesis.Genesis) error {
	meta := prefixdb.New(metaPrefix, c.db)
	storedID, err := meta.Get(chainIDKey)
	switch {
	case err == nil:
		if !equalID(storedID, c.chainID) {
			return ErrGenesisMismatch
		}
		c.height, err = database.GetUInt64(meta, heightKey)
		return err
	case !errors.Is(err, database.ErrNotFound):
		return err
	}

	vdb := versiondb.New(c.db)
	defer vdb.Abort()

	b := bank.New(vdb)
	for _, addr := range c.accounts {
		if err := b.Credit(addr, &g.DevBalance); err != nil {
			return err
		}
	}
	for _, alloc := range g.Allocations {
		if err := b.Credit(alloc.Address, &alloc.Balance); err != nil {
			return err
		}
	}

	vmeta := prefixdb.New(metaPrefix, vdb)
	if err := vmeta.Put(chainIDKey, c.chainID[:]); err != nil {
		return err
	}
	if err := database.PutUInt64(vmeta, heightKey, 0); err != nil {
		return err
	}
	return vdb.Commit()
}

func equalID(b []byte, id ids.ID) bool {
	return len(b) == len(id) && ids.ID(b) == id
}

func (c *Chain) ChainID() ids.ID {
	return c.chainID
}

// Accounts returns the dev accounts whose keys the chain holds.
func (c *Chain) Accounts() []common.Address {
	return append([]common.Address(nil), c.accounts...)
}

func (c *Chain) Height() uint64 {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.height
}

func (c *Chain) Balance(addr common.Address) (*uint256.Int, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return bank.New(c.db).Balance(addr)
}

// Nonce returns the nonce the next transaction of [addr] must carry.
func (c *Chain) Nonce(addr common.Address) (uint64, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.nonce(c.db, addr)
}

func (*Chain) nonce(db database.Database, addr common.Address) (uint64, error) {
	nonce, err := database.GetUInt64(prefixdb.New(noncePrefix, db), addr.Bytes())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	return nonce, err
}

// Contracts returns the addresses of every deployed contract.
func (c *Chain) Contracts() ([]common.Address, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return executor.Contracts(c.db)
}

// View runs read-only calls against the contract at [addr].
func (c *Chain) View(addr common.Address, f func(*controller.Controller) error) error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if _, err := executor.ContractKind(c.db, addr); err != nil {
		return fmt.Errorf("%w: %s", err, addr)
	}
	return f(controller.New(&controller.Backend{
		Address: addr,
		DB:      c.db,
		Log:     c.log,
		Metrics: c.metrics,
	}))
}

func (c *Chain) Receipt(txID ids.ID) (*Receipt, error) {
	if receipt, ok := c.receipts.Get(txID); ok {
		return receipt, nil
	}

	c.lock.RLock()
	defer c.lock.RUnlock()

	bytes, err := prefixdb.New(receiptPrefix, c.db).Get(txID[:])
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReceipt, txID)
	}
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{}
	if _, err := receiptCodec.Unmarshal(bytes, receipt); err != nil {
		return nil, err
	}
	c.receipts.Put(txID, receipt)
	return receipt, nil
}

// Send signs [unsigned] with the dev key of [from], filling in the chain ID
// and the next nonce, and issues it.
func (c *Chain) Send(from common.Address, unsigned txs.UnsignedTx) (*txs.Tx, *Receipt, error) {
	key, ok := c.keys[from]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAccount, from)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	nonce, err := c.nonce(c.db, from)
	if err != nil {
		return nil, nil, err
	}
	base := unsigned.Base()
	base.ChainID = c.chainID
	base.Nonce = nonce

	tx, err := txs.Sign(unsigned, key)
	if err != nil {
		return nil, nil, err
	}
	receipt, err := c.issue(tx)
	return tx, receipt, err
}

// Issue executes a signed transaction. Transactions that fail validation
// are dropped and return an error. Transactions that pass it are included
// even if the call reverts.
func (c *Chain) Issue(tx *txs.Tx) (*Receipt, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.issue(tx)
}

func (c *Chain) issue(tx *txs.Tx) (*Receipt, error) {
	if c.closed {
		return nil, ErrClosed
	}

	sender, err := tx.Sender()
	if err != nil {
		return nil, err
	}
	if err := c.verify(tx, sender); err != nil {
		c.log.Debug("dropped tx",
			log.Stringer("txID", tx.ID()),
			log.Stringer("sender", sender),
			log.Err(err),
		)
		return nil, err
	}

	vdb := versiondb.New(c.db)
	defer vdb.Abort()

	base := tx.Unsigned.Base()
	receipt := &Receipt{
		TxID:     tx.ID(),
		Height:   c.height + 1,
		Sender:   sender,
		Nonce:    base.Nonce,
		Status:   Accepted,
		Contract: base.Contract,
	}

	execDB := versiondb.New(vdb)
	e := &executor.Executor{
		Backend: &executor.Backend{
			DB:      execDB,
			Log:     c.log,
			Metrics: c.metrics,
		},
		Tx:     tx,
		Sender: sender,
	}
	if err := tx.Unsigned.Visit(e); err != nil {
		execDB.Abort()
		receipt.Status = Reverted
		receipt.Error = err.Error()
	} else {
		if err := execDB.Commit(); err != nil {
			return nil, err
		}
		if _, ok := tx.Unsigned.(*txs.DeployTx); ok {
			receipt.Contract = e.Contract
		}
		receipt.TokenIDs = e.TokenIDs
		if e.Withdrawn != nil {
			receipt.Withdrawn = *e.Withdrawn
		}
	}

	if err := c.include(vdb, receipt); err != nil {
		return nil, err
	}
	c.height = receipt.Height
	c.receipts.Put(receipt.TxID, receipt)

	if receipt.Status == Accepted {
		if err := c.metrics.MarkTxAccepted(tx); err != nil {
			c.log.Warn("failed to mark tx accepted",
				log.Stringer("txID", receipt.TxID),
				log.Err(err),
			)
		}
	}
	c.log.Info("included tx",
		log.Stringer("txID", receipt.TxID),
		log.Uint64("height", receipt.Height),
		log.Stringer("sender", sender),
		log.Stringer("status", receipt.Status),
		log.String("error", receipt.Error),
	)
	return receipt, nil
}

func (c *Chain) verify(tx *txs.Tx, sender common.Address) error {
	base := tx.Unsigned.Base()
	if base.ChainID != c.chainID {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongChain, c.chainID, base.ChainID)
	}

	nonce, err := c.nonce(c.db, sender)
	if err != nil {
		return err
	}
	if base.Nonce != nonce {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidNonce, nonce, base.Nonce)
	}

	balance, err := bank.New(c.db).Balance(sender)
	if err != nil {
		return err
	}
	if balance.Lt(&base.Value) {
		return fmt.Errorf("%w: %s has %s", ErrInsufficientFunds, sender, balance)
	}

	if _, ok := tx.Unsigned.(*txs.DeployTx); ok {
		return nil
	}
	if _, err := executor.ContractKind(c.db, base.Contract); err != nil {
		return fmt.Errorf("%w: %s", err, base.Contract)
	}
	return nil
}

// include bumps the sender nonce, stores the receipt and commits [vdb].
func (c *Chain) include(vdb *versiondb.Database, receipt *Receipt) error {
	if err := database.PutUInt64(prefixdb.New(noncePrefix, vdb), receipt.Sender.Bytes(), receipt.Nonce+1); err != nil {
		return err
	}
	bytes, err := receiptCodec.Marshal(codecVersion, receipt)
	if err != nil {
		return err
	}
	if err := prefixdb.New(receiptPrefix, vdb).Put(receipt.TxID[:], bytes); err != nil {
		return err
	}
	if err := database.PutUInt64(prefixdb.New(metaPrefix, vdb), heightKey, receipt.Height); err != nil {
		return err
	}
	return vdb.Commit()
}

// HealthCheck reports the height and fails once the chain is closed.
func (c *Chain) HealthCheck(context.Context) (any, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	details := map[string]uint64{"height": c.height}
	if c.closed {
		return details, ErrClosed
	}
	return details, nil
}

// Close stops the chain from accepting transactions. The database is left
// open for its owner to close.
func (c *Chain) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.closed = true
}
