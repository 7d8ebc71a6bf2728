// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"github.com/spf13/cobra"

	"github.com/luxfi/log"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Runs a mint chain and serves its JSON-RPC API",
		RunE:  serveFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func serveFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	ctx := c.Context()
	node, err := Start(ctx, log.NewLogger("mintvm"), config)
	if err != nil {
		return err
	}
	return node.Run(ctx)
}
