// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"errors"

	"github.com/luxfi/database"
	"github.com/luxfi/database/prefixdb"
	"github.com/luxfi/geth/common"
)

var contractsPrefix = []byte("contracts")

// ContractKind returns the kind of the contract deployed at [addr].
func ContractKind(db database.Database, addr common.Address) (string, error) {
	kind, err := prefixdb.New(contractsPrefix, db).Get(addr.Bytes())
	if errors.Is(err, database.ErrNotFound) {
		return "", ErrUnknownContract
	}
	if err != nil {
		return "", err
	}
	return string(kind), nil
}

// Contracts lists every deployed contract address.
func Contracts(db database.Database) ([]common.Address, error) {
	it := prefixdb.New(contractsPrefix, db).NewIterator()
	defer it.Release()

	var addrs []common.Address
	for it.Next() {
		addrs = append(addrs, common.BytesToAddress(it.Key()))
	}
	return addrs, it.Error()
}

func putContract(db database.Database, addr common.Address, kind string) error {
	return prefixdb.New(contractsPrefix, db).Put(addr.Bytes(), []byte(kind))
}
