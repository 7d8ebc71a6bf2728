// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package info

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/luxfi/mintvm/api"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "info <contract>",
		Short: "Prints the state of a mint contract",
		RunE:  infoFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func infoFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	reply, err := api.NewClient(config.URI).Info(c.Context(), config.Contract)
	if err != nil {
		return err
	}
	return Write(c.OutOrStdout(), reply)
}

// Write prints every accessor of [info], one per line.
func Write(w io.Writer, info *api.InfoReply) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value any
	}{
		{"contract", info.Contract.Hex()},
		{"name", info.Name},
		{"symbol", info.Symbol},
		{"owner", info.Owner.Hex()},
		{"withdrawRecipient", info.WithdrawRecipient.Hex()},
		{"cost", info.Cost},
		{"maxSupply", uint64(info.MaxSupply)},
		{"maxMintAmountPerTx", uint64(info.MaxMintAmountPerTx)},
		{"totalSupply", uint64(info.TotalSupply)},
		{"uriPrefix", info.URIPrefix},
		{"uriSuffix", info.URISuffix},
		{"hiddenMetadataUri", info.HiddenMetadataURI},
		{"paused", info.Paused},
		{"revealed", info.Revealed},
		{"balance", info.Balance},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%v\n", row.name, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}
