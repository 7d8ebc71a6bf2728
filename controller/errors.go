// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"errors"

	"github.com/luxfi/mintvm/bank"
)

var (
	ErrNotAuthorized       = errors.New("caller is not the owner")
	ErrMintingPaused       = errors.New("the contract is paused")
	ErrInvalidBatchSize    = errors.New("invalid mint amount")
	ErrSupplyExceeded      = errors.New("max supply exceeded")
	ErrInsufficientPayment = errors.New("insufficient funds")
	ErrUnknownToken        = errors.New("URI query for nonexistent token")
	ErrRevealDisabled      = errors.New("collection has no reveal")
	ErrNotDeployed         = errors.New("contract not deployed")
	ErrAlreadyDeployed     = errors.New("contract already deployed")
	ErrZeroAddress         = errors.New("zero address")
)

// reasons label reverted calls in metrics.
var reasons = []struct {
	err   error
	label string
}{
	{ErrNotAuthorized, "not_authorized"},
	{ErrMintingPaused, "paused"},
	{ErrInvalidBatchSize, "invalid_batch_size"},
	{ErrSupplyExceeded, "supply_exceeded"},
	{ErrInsufficientPayment, "insufficient_payment"},
	{ErrUnknownToken, "unknown_token"},
	{ErrRevealDisabled, "reveal_disabled"},
	{ErrNotDeployed, "not_deployed"},
	{ErrZeroAddress, "zero_address"},
	{bank.ErrInsufficientBalance, "insufficient_balance"},
}

// Reason returns a short label for [err].
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}
