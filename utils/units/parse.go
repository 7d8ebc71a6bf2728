// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrTooManyDecimals  = errors.New("too many decimal places")
	errEmptyAmountValue = errors.New("empty amount")
)

// ParseEther converts a decimal ether string such as "0.01" into wei.
func ParseEther(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyAmountValue
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > EtherDecimals {
		return nil, fmt.Errorf("%w: %q", ErrTooManyDecimals, s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	digits := whole + frac + strings.Repeat("0", EtherDecimals-len(frac))
	wei, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
	}
	return wei, nil
}

// MustParseEther is ParseEther for constants known to be well formed.
func MustParseEther(s string) *uint256.Int {
	wei, err := ParseEther(s)
	if err != nil {
		panic(err)
	}
	return wei
}

// FormatEther renders a wei amount as decimal ether, always keeping at least
// one fractional digit ("0.0", "0.04", "12.5").
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		return "0.0"
	}
	unit := uint256.NewInt(Ether)
	whole := new(uint256.Int).Div(wei, unit)
	frac := new(uint256.Int).Mod(wei, unit)

	fracStr := strings.TrimRight(fmt.Sprintf("%018d", frac.Uint64()), "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return whole.Dec() + "." + fracStr
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
