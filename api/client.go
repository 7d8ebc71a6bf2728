// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"net/http"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/ids"

	"github.com/luxfi/mintvm/txs"
	"github.com/luxfi/mintvm/utils/json"
	"github.com/luxfi/mintvm/utils/rpc"
)

// Endpoint is the path the service is served on, relative to the node URI.
const Endpoint = "/ext/bc/mint"

// Client for interacting with a mint node.
type Client struct {
	uri    string
	client *http.Client
}

// NewClient returns a client for the node at [uri].
func NewClient(uri string) *Client {
	return &Client{
		uri:    uri + Endpoint,
		client: http.DefaultClient,
	}
}

func (c *Client) call(ctx context.Context, method string, args, reply any) error {
	return rpc.SendJSONRequest(ctx, c.client, c.uri, ServiceName+"."+method, args, reply)
}

func (c *Client) Info(ctx context.Context, contract common.Address) (*InfoReply, error) {
	reply := &InfoReply{}
	err := c.call(ctx, "info", &ContractArgs{Contract: contract.Hex()}, reply)
	return reply, err
}

func (c *Client) TokenURI(ctx context.Context, contract common.Address, tokenID uint64) (string, error) {
	reply := &TokenURIReply{}
	err := c.call(ctx, "tokenURI", &TokenArgs{
		Contract: contract.Hex(),
		TokenID:  json.Uint64(tokenID),
	}, reply)
	return reply.URI, err
}

func (c *Client) OwnerOf(ctx context.Context, contract common.Address, tokenID uint64) (common.Address, error) {
	reply := &AddressReply{}
	err := c.call(ctx, "ownerOf", &TokenArgs{
		Contract: contract.Hex(),
		TokenID:  json.Uint64(tokenID),
	}, reply)
	return reply.Address, err
}

func (c *Client) WalletOfOwner(ctx context.Context, contract, owner common.Address) ([]uint64, error) {
	reply := &TokenIDsReply{}
	err := c.call(ctx, "walletOfOwner", &OwnerArgs{
		Contract: contract.Hex(),
		Owner:    owner.Hex(),
	}, reply)
	ids := make([]uint64, len(reply.TokenIDs))
	for i, id := range reply.TokenIDs {
		ids[i] = uint64(id)
	}
	return ids, err
}

func (c *Client) BalanceOf(ctx context.Context, contract, owner common.Address) (uint64, error) {
	reply := &BalanceOfReply{}
	err := c.call(ctx, "balanceOf", &OwnerArgs{
		Contract: contract.Hex(),
		Owner:    owner.Hex(),
	}, reply)
	return uint64(reply.Balance), err
}

func (c *Client) Accounts(ctx context.Context) ([]common.Address, error) {
	reply := &AccountsReply{}
	err := c.call(ctx, "accounts", &EmptyArgs{}, reply)
	return reply.Accounts, err
}

func (c *Client) Contracts(ctx context.Context) ([]common.Address, error) {
	reply := &ContractsReply{}
	err := c.call(ctx, "contracts", &EmptyArgs{}, reply)
	return reply.Contracts, err
}

func (c *Client) GetBalance(ctx context.Context, addr common.Address) (*GetBalanceReply, error) {
	reply := &GetBalanceReply{}
	err := c.call(ctx, "getBalance", &AddressArgs{Address: addr.Hex()}, reply)
	return reply, err
}

func (c *Client) GetReceipt(ctx context.Context, txID ids.ID) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "getReceipt", &GetReceiptArgs{TxID: txID}, reply)
	return reply, err
}

// IssueTx submits a transaction signed outside of the node.
func (c *Client) IssueTx(ctx context.Context, tx *txs.Tx) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "issueTx", &IssueTxArgs{Tx: hexutil.Encode(tx.Bytes())}, reply)
	return reply, err
}

func (c *Client) Deploy(ctx context.Context, from common.Address, kind string, args ...string) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "deploy", &DeployArgs{
		From: From{From: from.Hex()},
		Kind: kind,
		Args: args,
	}, reply)
	return reply, err
}

// Mint pays [value] ether for [quantity] tokens.
func (c *Client) Mint(ctx context.Context, from, contract common.Address, quantity uint64, value string) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "mint", &MintArgs{
		From:     newFrom(from, contract),
		Quantity: json.Uint64(quantity),
		Value:    value,
	}, reply)
	return reply, err
}

func (c *Client) MintForAddress(ctx context.Context, from, contract common.Address, quantity uint64, recipient common.Address) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "mintForAddress", &MintForAddressArgs{
		From:      newFrom(from, contract),
		Quantity:  json.Uint64(quantity),
		Recipient: recipient.Hex(),
	}, reply)
	return reply, err
}

func (c *Client) Transfer(ctx context.Context, from, contract, to common.Address, tokenID uint64) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "transfer", &TransferArgs{
		From:    newFrom(from, contract),
		To:      to.Hex(),
		TokenID: json.Uint64(tokenID),
	}, reply)
	return reply, err
}

func (c *Client) SetPaused(ctx context.Context, from, contract common.Address, paused bool) (*ReceiptReply, error) {
	return c.setBool(ctx, "setPaused", from, contract, paused)
}

func (c *Client) SetRevealed(ctx context.Context, from, contract common.Address, revealed bool) (*ReceiptReply, error) {
	return c.setBool(ctx, "setRevealed", from, contract, revealed)
}

func (c *Client) SetURIPrefix(ctx context.Context, from, contract common.Address, prefix string) (*ReceiptReply, error) {
	return c.setString(ctx, "setURIPrefix", from, contract, prefix)
}

func (c *Client) SetURISuffix(ctx context.Context, from, contract common.Address, suffix string) (*ReceiptReply, error) {
	return c.setString(ctx, "setURISuffix", from, contract, suffix)
}

func (c *Client) SetHiddenMetadataURI(ctx context.Context, from, contract common.Address, uri string) (*ReceiptReply, error) {
	return c.setString(ctx, "setHiddenMetadataURI", from, contract, uri)
}

// SetCost sets the price per token to [cost] ether.
func (c *Client) SetCost(ctx context.Context, from, contract common.Address, cost string) (*ReceiptReply, error) {
	return c.setString(ctx, "setCost", from, contract, cost)
}

func (c *Client) SetMaxMintAmountPerTx(ctx context.Context, from, contract common.Address, amount uint64) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, "setMaxMintAmountPerTx", &SetUint64Args{
		From:  newFrom(from, contract),
		Value: json.Uint64(amount),
	}, reply)
	return reply, err
}

func (c *Client) Withdraw(ctx context.Context, from, contract common.Address) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	args := newFrom(from, contract)
	err := c.call(ctx, "withdraw", &args, reply)
	return reply, err
}

func (c *Client) setBool(ctx context.Context, method string, from, contract common.Address, value bool) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, method, &SetBoolArgs{
		From:  newFrom(from, contract),
		Value: value,
	}, reply)
	return reply, err
}

func (c *Client) setString(ctx context.Context, method string, from, contract common.Address, value string) (*ReceiptReply, error) {
	reply := &ReceiptReply{}
	err := c.call(ctx, method, &SetStringArgs{
		From:  newFrom(from, contract),
		Value: value,
	}, reply)
	return reply, err
}

func newFrom(from, contract common.Address) From {
	return From{
		From:     from.Hex(),
		Contract: contract.Hex(),
	}
}
