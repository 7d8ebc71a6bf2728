// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"

	"github.com/luxfi/geth/common"
)

var (
	ErrInvalidTokenID = errors.New("invalid token id")
	ErrZeroAddress    = errors.New("zero address")
	errNilToken       = errors.New("nil token")
)

// Token is a single issued unit of the collection.
type Token struct {
	ID    uint64         `json:"id"`
	Owner common.Address `json:"owner"`
}

func (t *Token) Verify() error {
	switch {
	case t == nil:
		return errNilToken
	case t.ID == 0:
		return ErrInvalidTokenID
	case t.Owner == (common.Address{}):
		return ErrZeroAddress
	default:
		return nil
	}
}
