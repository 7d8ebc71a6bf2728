// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"errors"
)

var errUnknownStatus = errors.New("unknown status")

// Status is the outcome of an included transaction.
type Status uint8

const (
	Unknown Status = iota
	// Accepted transactions applied all of their effects.
	Accepted
	// Reverted transactions consumed their nonce but left contract state
	// untouched.
	Reverted
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "Accepted"
	case Reverted:
		return "Reverted"
	default:
		return "Unknown"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	switch str {
	case "Unknown":
		*s = Unknown
	case "Accepted":
		*s = Accepted
	case "Reverted":
		*s = Reverted
	default:
		return errUnknownStatus
	}
	return nil
}
