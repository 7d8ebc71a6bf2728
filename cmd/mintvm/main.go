// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luxfi/mintvm/cmd/mintvm/deploy"
	"github.com/luxfi/mintvm/cmd/mintvm/info"
	"github.com/luxfi/mintvm/cmd/mintvm/run"
	"github.com/luxfi/mintvm/cmd/mintvm/serve"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := &cobra.Command{
		Use:          "mintvm",
		Short:        "Runs and drives a mint chain",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		serve.Command(),
		deploy.Command(),
		run.Command(),
		info.Command(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
