// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/mintvm/api"
	"github.com/luxfi/mintvm/chain"
	"github.com/luxfi/mintvm/config"
)

func startNode(t *testing.T, dataDir string) (*Node, func() error) {
	t.Helper()
	require := require.New(t)

	cfg, err := DefaultConfig()
	require.NoError(err)
	cfg.DataDir = dataDir

	ctx, cancel := context.WithCancel(context.Background())
	node, err := Start(ctx, log.NewNoOpLogger(), cfg)
	require.NoError(err)

	done := make(chan error, 1)
	go func() {
		done <- node.Run(ctx)
	}()
	return node, func() error {
		cancel()
		return <-done
	}
}

func getStatus(t *testing.T, uri string) int {
	t.Helper()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get(uri)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	return resp.StatusCode
}

func TestServe(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	node, stop := startNode(t, "")
	client := api.NewClient(node.URI())

	accounts, err := client.Accounts(ctx)
	require.NoError(err)
	receipt, err := client.Deploy(ctx, accounts[0], config.KMBContractSimple, "ipfs://prefix/")
	require.NoError(err)
	require.Equal(chain.Accepted, receipt.Status, receipt.Error)

	require.Equal(http.StatusOK, getStatus(t, node.URI()+"/ext/health"))
	require.Equal(http.StatusOK, getStatus(t, node.URI()+"/ext/metrics"))
	require.Equal(http.StatusNotFound, getStatus(t, node.URI()+"/ext/bc/other"))

	require.NoError(stop())
}

func TestServePersists(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dataDir := t.TempDir()

	node, stop := startNode(t, dataDir)
	client := api.NewClient(node.URI())
	accounts, err := client.Accounts(ctx)
	require.NoError(err)
	receipt, err := client.Deploy(ctx, accounts[0], config.KMBContract, "ipfs://prefix/", "ipfs://hidden")
	require.NoError(err)
	require.Equal(chain.Accepted, receipt.Status, receipt.Error)
	require.NoError(stop())

	node, stop = startNode(t, dataDir)
	contracts, err := api.NewClient(node.URI()).Contracts(ctx)
	require.NoError(err)
	require.Equal([]common.Address{receipt.Contract}, contracts)
	require.NoError(stop())
}

func TestParseFlags(t *testing.T) {
	require := require.New(t)

	flags := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	AddFlags(flags)
	cfg, err := ParseFlags(flags, []string{
		"--" + HTTPPortKey, "0",
		"--" + AllowedHostsKey, "example.com,localhost",
	})
	require.NoError(err)
	require.Empty(cfg.DataDir)
	require.Equal("127.0.0.1", cfg.HTTPHost)
	require.Zero(cfg.HTTPPort)
	require.Equal([]string{"example.com", "localhost"}, cfg.AllowedHosts)
	require.Equal([]string{"*"}, cfg.AllowedOrigins)
	require.NotEmpty(cfg.Genesis)

	_, err = ParseFlags(flags, []string{"--" + GenesisFileKey, t.TempDir() + "/missing.json"})
	require.Error(err)
}
