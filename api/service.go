// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes the mint contracts of a chain over JSON-RPC.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/chain"
	"github.com/luxfi/mintvm/controller"
	"github.com/luxfi/mintvm/txs"
	"github.com/luxfi/mintvm/utils/json"
	"github.com/luxfi/mintvm/utils/units"
)

// ServiceName is the name the service is registered under.
const ServiceName = "mint"

var ErrInvalidAddress = errors.New("invalid address")

// Chain is the part of the chain the service needs.
type Chain interface {
	Accounts() []common.Address
	Balance(common.Address) (*uint256.Int, error)
	Nonce(common.Address) (uint64, error)
	Contracts() ([]common.Address, error)
	View(common.Address, func(*controller.Controller) error) error
	Receipt(ids.ID) (*chain.Receipt, error)
	Send(common.Address, txs.UnsignedTx) (*txs.Tx, *chain.Receipt, error)
	Issue(*txs.Tx) (*chain.Receipt, error)
}

type Service struct {
	log   log.Logger
	chain Chain
}

func NewService(log log.Logger, chain Chain) *Service {
	return &Service{
		log:   log,
		chain: chain,
	}
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func formatIDs(ids []uint64) []json.Uint64 {
	out := make([]json.Uint64, len(ids))
	for i, id := range ids {
		out[i] = json.Uint64(id)
	}
	return out
}

// ContractArgs names a deployed contract.
type ContractArgs struct {
	Contract string `json:"contract"`
}

func (s *Service) view(contract string, f func(*controller.Controller) error) error {
	addr, err := parseAddress(contract)
	if err != nil {
		return err
	}
	return s.chain.View(addr, f)
}

type InfoReply struct {
	Contract           common.Address `json:"contract"`
	Name               string         `json:"name"`
	Symbol             string         `json:"symbol"`
	Owner              common.Address `json:"owner"`
	WithdrawRecipient  common.Address `json:"withdrawRecipient"`
	Cost               string         `json:"cost"`
	MaxSupply          json.Uint64    `json:"maxSupply"`
	MaxMintAmountPerTx json.Uint64    `json:"maxMintAmountPerTx"`
	TotalSupply        json.Uint64    `json:"totalSupply"`
	URIPrefix          string         `json:"uriPrefix"`
	URISuffix          string         `json:"uriSuffix"`
	HiddenMetadataURI  string         `json:"hiddenMetadataUri"`
	Paused             bool           `json:"paused"`
	Revealed           bool           `json:"revealed"`
	Revealable         bool           `json:"revealable"`
	Balance            string         `json:"balance"`
}

// Info returns every read accessor of a contract. Amounts are in ether.
func (s *Service) Info(_ *http.Request, args *ContractArgs, reply *InfoReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "info"),
		log.String("contract", args.Contract),
	)

	return s.view(args.Contract, func(c *controller.Controller) error {
		info, err := c.Info()
		if err != nil {
			return err
		}
		collection := info.Collection
		*reply = InfoReply{
			Contract:           info.Address,
			Name:               collection.Name,
			Symbol:             collection.Symbol,
			Owner:              collection.Admin,
			WithdrawRecipient:  collection.WithdrawRecipient,
			Cost:               units.FormatEther(&collection.Cost),
			MaxSupply:          json.Uint64(collection.MaxSupply),
			MaxMintAmountPerTx: json.Uint64(collection.MaxMintAmountPerTx),
			TotalSupply:        json.Uint64(collection.TotalSupply),
			URIPrefix:          collection.URIPrefix,
			URISuffix:          collection.URISuffix,
			HiddenMetadataURI:  collection.HiddenMetadataURI,
			Paused:             collection.Paused,
			Revealed:           collection.Revealed,
			Revealable:         collection.Revealable,
			Balance:            units.FormatEther(&info.Balance),
		}
		return nil
	})
}

type TokenArgs struct {
	Contract string      `json:"contract"`
	TokenID  json.Uint64 `json:"tokenID"`
}

type TokenURIReply struct {
	URI string `json:"uri"`
}

func (s *Service) TokenURI(_ *http.Request, args *TokenArgs, reply *TokenURIReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "tokenURI"),
		log.Uint64("tokenID", uint64(args.TokenID)),
	)

	return s.view(args.Contract, func(c *controller.Controller) error {
		var err error
		reply.URI, err = c.TokenURI(uint64(args.TokenID))
		return err
	})
}

type AddressReply struct {
	Address common.Address `json:"address"`
}

func (s *Service) OwnerOf(_ *http.Request, args *TokenArgs, reply *AddressReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "ownerOf"),
		log.Uint64("tokenID", uint64(args.TokenID)),
	)

	return s.view(args.Contract, func(c *controller.Controller) error {
		var err error
		reply.Address, err = c.OwnerOf(uint64(args.TokenID))
		return err
	})
}

type OwnerArgs struct {
	Contract string `json:"contract"`
	Owner    string `json:"owner"`
}

type TokenIDsReply struct {
	TokenIDs []json.Uint64 `json:"tokenIDs"`
}

func (s *Service) WalletOfOwner(_ *http.Request, args *OwnerArgs, reply *TokenIDsReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "walletOfOwner"),
		log.String("owner", args.Owner),
	)

	owner, err := parseAddress(args.Owner)
	if err != nil {
		return err
	}
	return s.view(args.Contract, func(c *controller.Controller) error {
		ids, err := c.WalletOfOwner(owner)
		reply.TokenIDs = formatIDs(ids)
		return err
	})
}

type BalanceOfReply struct {
	Balance json.Uint64 `json:"balance"`
}

func (s *Service) BalanceOf(_ *http.Request, args *OwnerArgs, reply *BalanceOfReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "balanceOf"),
		log.String("owner", args.Owner),
	)

	owner, err := parseAddress(args.Owner)
	if err != nil {
		return err
	}
	return s.view(args.Contract, func(c *controller.Controller) error {
		balance, err := c.BalanceOf(owner)
		reply.Balance = json.Uint64(balance)
		return err
	})
}

type EmptyArgs struct{}

type AccountsReply struct {
	Accounts []common.Address `json:"accounts"`
}

// Accounts returns the dev accounts the node can sign for.
func (s *Service) Accounts(_ *http.Request, _ *EmptyArgs, reply *AccountsReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "accounts"),
	)

	reply.Accounts = s.chain.Accounts()
	return nil
}

type ContractsReply struct {
	Contracts []common.Address `json:"contracts"`
}

func (s *Service) Contracts(_ *http.Request, _ *EmptyArgs, reply *ContractsReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "contracts"),
	)

	var err error
	reply.Contracts, err = s.chain.Contracts()
	return err
}

type AddressArgs struct {
	Address string `json:"address"`
}

type GetBalanceReply struct {
	// Balance is in ether.
	Balance string      `json:"balance"`
	Wei     string      `json:"wei"`
	Nonce   json.Uint64 `json:"nonce"`
}

// GetBalance returns the native balance and next nonce of an address.
func (s *Service) GetBalance(_ *http.Request, args *AddressArgs, reply *GetBalanceReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getBalance"),
		log.String("address", args.Address),
	)

	addr, err := parseAddress(args.Address)
	if err != nil {
		return err
	}
	balance, err := s.chain.Balance(addr)
	if err != nil {
		return err
	}
	nonce, err := s.chain.Nonce(addr)
	if err != nil {
		return err
	}
	reply.Balance = units.FormatEther(balance)
	reply.Wei = balance.Dec()
	reply.Nonce = json.Uint64(nonce)
	return nil
}

type GetReceiptArgs struct {
	TxID ids.ID `json:"txID"`
}

type ReceiptReply struct {
	TxID      ids.ID         `json:"txID"`
	Height    json.Uint64    `json:"height"`
	Sender    common.Address `json:"sender"`
	Nonce     json.Uint64    `json:"nonce"`
	Status    chain.Status   `json:"status"`
	Error     string         `json:"error,omitempty"`
	Contract  common.Address `json:"contract"`
	TokenIDs  []json.Uint64  `json:"tokenIDs"`
	Withdrawn string         `json:"withdrawn"`
}

func newReceiptReply(receipt *chain.Receipt) ReceiptReply {
	return ReceiptReply{
		TxID:      receipt.TxID,
		Height:    json.Uint64(receipt.Height),
		Sender:    receipt.Sender,
		Nonce:     json.Uint64(receipt.Nonce),
		Status:    receipt.Status,
		Error:     receipt.Error,
		Contract:  receipt.Contract,
		TokenIDs:  formatIDs(receipt.TokenIDs),
		Withdrawn: units.FormatEther(&receipt.Withdrawn),
	}
}

func (s *Service) GetReceipt(_ *http.Request, args *GetReceiptArgs, reply *ReceiptReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "getReceipt"),
		log.Stringer("txID", args.TxID),
	)

	receipt, err := s.chain.Receipt(args.TxID)
	if err != nil {
		return err
	}
	*reply = newReceiptReply(receipt)
	return nil
}

type IssueTxArgs struct {
	// Tx is the hex encoding of a signed transaction.
	Tx string `json:"tx"`
}

// IssueTx submits a transaction signed by the caller.
func (s *Service) IssueTx(_ *http.Request, args *IssueTxArgs, reply *ReceiptReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", "issueTx"),
	)

	bytes, err := hexutil.Decode(args.Tx)
	if err != nil {
		return fmt.Errorf("failed to decode tx: %w", err)
	}
	tx, err := txs.Parse(bytes)
	if err != nil {
		return err
	}
	receipt, err := s.chain.Issue(tx)
	if err != nil {
		return err
	}
	*reply = newReceiptReply(receipt)
	return nil
}
