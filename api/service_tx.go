// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"net/http"

	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/txs"
	"github.com/luxfi/mintvm/utils/json"
	"github.com/luxfi/mintvm/utils/units"
)

// From names the dev account that signs a call and, for contract calls, the
// contract it targets.
type From struct {
	From     string `json:"from"`
	Contract string `json:"contract"`
}

// send signs [unsigned] with the dev key of [from.From] and issues it.
// Reverted calls are reported through the receipt status, not as an error.
func (s *Service) send(method string, from From, unsigned txs.UnsignedTx, reply *ReceiptReply) error {
	s.log.Debug("API called",
		log.String("service", ServiceName),
		log.String("method", method),
		log.String("from", from.From),
		log.String("contract", from.Contract),
	)

	sender, err := parseAddress(from.From)
	if err != nil {
		return err
	}
	if _, ok := unsigned.(*txs.DeployTx); !ok {
		contract, err := parseAddress(from.Contract)
		if err != nil {
			return err
		}
		unsigned.Base().Contract = contract
	}

	_, receipt, err := s.chain.Send(sender, unsigned)
	if err != nil {
		return err
	}
	*reply = newReceiptReply(receipt)
	return nil
}

type DeployArgs struct {
	From
	Kind string   `json:"kind"`
	Args []string `json:"args"`
}

// Deploy creates a contract of [Kind]. The new address is in the receipt.
func (s *Service) Deploy(_ *http.Request, args *DeployArgs, reply *ReceiptReply) error {
	return s.send("deploy", args.From, &txs.DeployTx{
		Kind: args.Kind,
		Args: args.Args,
	}, reply)
}

type MintArgs struct {
	From
	Quantity json.Uint64 `json:"quantity"`
	// Value is the payment in ether.
	Value string `json:"value"`
}

func (s *Service) Mint(_ *http.Request, args *MintArgs, reply *ReceiptReply) error {
	tx := &txs.MintTx{Quantity: uint64(args.Quantity)}
	if args.Value != "" {
		value, err := units.ParseEther(args.Value)
		if err != nil {
			return err
		}
		tx.Value = *value
	}
	return s.send("mint", args.From, tx, reply)
}

type MintForAddressArgs struct {
	From
	Quantity  json.Uint64 `json:"quantity"`
	Recipient string      `json:"recipient"`
}

func (s *Service) MintForAddress(_ *http.Request, args *MintForAddressArgs, reply *ReceiptReply) error {
	recipient, err := parseAddress(args.Recipient)
	if err != nil {
		return err
	}
	return s.send("mintForAddress", args.From, &txs.MintForAddressTx{
		Quantity:  uint64(args.Quantity),
		Recipient: recipient,
	}, reply)
}

type TransferArgs struct {
	From
	To      string      `json:"to"`
	TokenID json.Uint64 `json:"tokenID"`
}

func (s *Service) Transfer(_ *http.Request, args *TransferArgs, reply *ReceiptReply) error {
	to, err := parseAddress(args.To)
	if err != nil {
		return err
	}
	return s.send("transfer", args.From, &txs.TransferTx{
		To:      to,
		TokenID: uint64(args.TokenID),
	}, reply)
}

type SetBoolArgs struct {
	From
	Value bool `json:"value"`
}

func (s *Service) SetPaused(_ *http.Request, args *SetBoolArgs, reply *ReceiptReply) error {
	return s.send("setPaused", args.From, &txs.SetPausedTx{Paused: args.Value}, reply)
}

func (s *Service) SetRevealed(_ *http.Request, args *SetBoolArgs, reply *ReceiptReply) error {
	return s.send("setRevealed", args.From, &txs.SetRevealedTx{Revealed: args.Value}, reply)
}

type SetStringArgs struct {
	From
	Value string `json:"value"`
}

func (s *Service) SetURIPrefix(_ *http.Request, args *SetStringArgs, reply *ReceiptReply) error {
	return s.send("setURIPrefix", args.From, &txs.SetURIPrefixTx{URIPrefix: args.Value}, reply)
}

func (s *Service) SetURISuffix(_ *http.Request, args *SetStringArgs, reply *ReceiptReply) error {
	return s.send("setURISuffix", args.From, &txs.SetURISuffixTx{URISuffix: args.Value}, reply)
}

func (s *Service) SetHiddenMetadataURI(_ *http.Request, args *SetStringArgs, reply *ReceiptReply) error {
	return s.send("setHiddenMetadataURI", args.From, &txs.SetHiddenMetadataURITx{HiddenMetadataURI: args.Value}, reply)
}

// SetCost takes the new price in ether.
func (s *Service) SetCost(_ *http.Request, args *SetStringArgs, reply *ReceiptReply) error {
	cost, err := units.ParseEther(args.Value)
	if err != nil {
		return err
	}
	return s.send("setCost", args.From, &txs.SetCostTx{Cost: *cost}, reply)
}

type SetUint64Args struct {
	From
	Value json.Uint64 `json:"value"`
}

func (s *Service) SetMaxMintAmountPerTx(_ *http.Request, args *SetUint64Args, reply *ReceiptReply) error {
	return s.send("setMaxMintAmountPerTx", args.From, &txs.SetMaxMintAmountPerTxTx{
		MaxMintAmountPerTx: uint64(args.Value),
	}, reply)
}

func (s *Service) Withdraw(_ *http.Request, args *From, reply *ReceiptReply) error {
	return s.send("withdraw", *args, &txs.WithdrawTx{}, reply)
}
