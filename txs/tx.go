// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/luxfi/crypto"
	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/ids"

	cryptocommon "github.com/luxfi/crypto/common"
)

var (
	ErrNilTx          = errors.New("nil tx")
	ErrInvalidSigner  = errors.New("invalid signature")
	errNilUnsignedTx  = errors.New("nil unsigned tx")
	errMissingPrivKey = errors.New("missing private key")
)

// Tx is a signed transaction.
type Tx struct {
	Unsigned  UnsignedTx                   `serialize:"true" json:"unsignedTx"`
	Signature [crypto.SignatureLength]byte `serialize:"true" json:"signature"`

	id    ids.ID
	bytes []byte
}

// Sign creates a signed transaction from [unsigned] using [key].
func Sign(unsigned UnsignedTx, key *ecdsa.PrivateKey) (*Tx, error) {
	if unsigned == nil {
		return nil, errNilUnsignedTx
	}
	if key == nil {
		return nil, errMissingPrivKey
	}

	tx := &Tx{Unsigned: unsigned}
	digest, err := tx.digest()
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign tx: %w", err)
	}
	copy(tx.Signature[:], sig)
	return tx, tx.initialize()
}

// Parse deserializes a signed transaction.
func Parse(bytes []byte) (*Tx, error) {
	tx := &Tx{}
	if _, err := Codec.Unmarshal(bytes, tx); err != nil {
		return nil, fmt.Errorf("failed to parse tx: %w", err)
	}
	if tx.Unsigned == nil {
		return nil, errNilUnsignedTx
	}
	tx.bytes = bytes
	tx.id = ids.ID(hash.ComputeHash256Array(bytes))
	return tx, nil
}

func (tx *Tx) initialize() error {
	bytes, err := Codec.Marshal(CodecVersion, tx)
	if err != nil {
		return fmt.Errorf("failed to serialize tx: %w", err)
	}
	tx.bytes = bytes
	tx.id = ids.ID(hash.ComputeHash256Array(bytes))
	return nil
}

func (tx *Tx) ID() ids.ID {
	return tx.id
}

func (tx *Tx) Bytes() []byte {
	return tx.bytes
}

// Sender recovers the address that signed the transaction.
func (tx *Tx) Sender() (common.Address, error) {
	if tx == nil {
		return common.Address{}, ErrNilTx
	}
	digest, err := tx.digest()
	if err != nil {
		return common.Address{}, err
	}
	pub, err := crypto.SigToPub(digest, tx.Signature[:])
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSigner, err)
	}
	return PubkeyToAddress(*pub), nil
}

// PubkeyToAddress derives the account address of [pub].
func PubkeyToAddress(pub ecdsa.PublicKey) common.Address {
	return common.Address(crypto.PubkeyToAddress(pub))
}

// ContractAddress is the address a deploy by [deployer] at [nonce] creates.
func ContractAddress(deployer common.Address, nonce uint64) common.Address {
	return common.Address(crypto.CreateAddress(cryptocommon.Address(deployer), nonce))
}

func (tx *Tx) digest() ([]byte, error) {
	unsignedBytes, err := Codec.Marshal(CodecVersion, &tx.Unsigned)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize unsigned tx: %w", err)
	}
	return crypto.Keccak256(unsignedBytes), nil
}
