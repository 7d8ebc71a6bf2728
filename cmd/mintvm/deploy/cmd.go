// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/spf13/cobra"

	"github.com/luxfi/mintvm/api"
	"github.com/luxfi/mintvm/chain"
)

var (
	ErrNoAccounts = errors.New("node has no dev accounts")
	ErrReverted   = errors.New("transaction reverted")
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "deploy [constructor args...]",
		Short: "Deploys a mint contract",
		RunE:  deployFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func deployFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	client := api.NewClient(config.URI)
	contract, err := Deploy(c.Context(), client, config.From, config.Kind, config.Args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), "contract deployed to:", contract.Hex())
	return nil
}

// DefaultAccount returns [from], or the first dev account of the node when
// [from] is zero.
func DefaultAccount(ctx context.Context, client *api.Client, from common.Address) (common.Address, error) {
	if from != (common.Address{}) {
		return from, nil
	}
	accounts, err := client.Accounts(ctx)
	if err != nil {
		return common.Address{}, err
	}
	if len(accounts) == 0 {
		return common.Address{}, ErrNoAccounts
	}
	return accounts[0], nil
}

// Deploy creates a contract of [kind] and returns its address.
func Deploy(ctx context.Context, client *api.Client, from common.Address, kind string, args ...string) (common.Address, error) {
	from, err := DefaultAccount(ctx, client, from)
	if err != nil {
		return common.Address{}, err
	}
	receipt, err := client.Deploy(ctx, from, kind, args...)
	if err != nil {
		return common.Address{}, err
	}
	if err := CheckReceipt(receipt); err != nil {
		return common.Address{}, err
	}
	return receipt.Contract, nil
}

// CheckReceipt turns a reverted receipt into an error.
func CheckReceipt(receipt *api.ReceiptReply) error {
	if receipt.Status != chain.Accepted {
		return fmt.Errorf("%w: %s: %s", ErrReverted, receipt.TxID, receipt.Error)
	}
	return nil
}
