// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/spf13/cobra"

	"github.com/luxfi/mintvm/api"
	"github.com/luxfi/mintvm/cmd/mintvm/deploy"
	"github.com/luxfi/mintvm/cmd/mintvm/serve"
	"github.com/luxfi/mintvm/config"
)

const (
	uriPrefix         = "ipfs/QmPSHvkdFgBc3maEPtCeidczQE6NkwESiKLfMEgpWigBsn/"
	hiddenMetadataURI = "ipfs/QmWruc1JKgg74zU22GSm38EA6oHCEJ9DcBZSThEPKuXvnj/hidden.json"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Deploys a KMBContract and mints from it",
		RunE:  runFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func runFunc(c *cobra.Command, args []string) (err error) {
	flags := c.Flags()
	cfg, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	ctx := c.Context()
	uri := cfg.URI
	if uri == "" {
		stop, localURI, err := startLocal(ctx)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, stop())
		}()
		uri = localURI
	}
	return Run(ctx, c.OutOrStdout(), api.NewClient(uri), cfg)
}

func startLocal(ctx context.Context) (func() error, string, error) {
	nodeConfig, err := serve.DefaultConfig()
	if err != nil {
		return nil, "", err
	}
	ctx, cancel := context.WithCancel(ctx)
	node, err := serve.Start(ctx, log.NewNoOpLogger(), nodeConfig)
	if err != nil {
		cancel()
		return nil, "", err
	}

	done := make(chan error, 1)
	go func() {
		done <- node.Run(ctx)
	}()
	return func() error {
		cancel()
		return <-done
	}, node.URI(), nil
}

// Run deploys a KMBContract from the first dev account and mints one token
// per iteration, paying the contract cost.
func Run(ctx context.Context, w io.Writer, client *api.Client, cfg *Config) error {
	owner, err := deploy.DefaultAccount(ctx, client, common.Address{})
	if err != nil {
		return err
	}
	contract, err := deploy.Deploy(ctx, client, owner, config.KMBContract, uriPrefix, hiddenMetadataURI)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "contract deployed to:", contract.Hex())

	if cfg.Unpause {
		receipt, err := client.SetPaused(ctx, owner, contract, false)
		if err != nil {
			return err
		}
		if err := deploy.CheckReceipt(receipt); err != nil {
			return err
		}
	}

	info, err := client.Info(ctx, contract)
	if err != nil {
		return err
	}
	for i := uint(0); i < cfg.Mints; i++ {
		receipt, err := client.Mint(ctx, owner, contract, 1, info.Cost)
		if err != nil {
			return err
		}
		if err := deploy.CheckReceipt(receipt); err != nil {
			return err
		}
		fmt.Fprintf(w, "minted token %d\n", receipt.TokenIDs[0])
	}
	return nil
}
