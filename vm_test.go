// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mintvm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luxfi/database/memdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/mintvm/api"
	"github.com/luxfi/mintvm/chain"
	"github.com/luxfi/mintvm/config"
	"github.com/luxfi/mintvm/genesis"
)

func newTestVM(t *testing.T) *VM {
	t.Helper()
	require := require.New(t)

	genesisBytes, err := genesis.Default().Bytes()
	require.NoError(err)

	factory := &Factory{}
	vm, err := factory.New(log.NewNoOpLogger())
	require.NoError(err)
	require.NoError(vm.Initialize(context.Background(), &Config{
		DB:       memdb.New(),
		Genesis:  genesisBytes,
		Registry: metric.NewRegistry(),
	}))
	return vm
}

func get(t *testing.T, handler http.Handler) (int, string) {
	t.Helper()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return w.Code, string(body)
}

func TestUninitialized(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	vm := &VM{log: log.NewNoOpLogger()}
	_, err := vm.CreateHandlers(ctx)
	require.ErrorIs(err, errNotInitialized)
	_, err = vm.CreateStaticHandlers(ctx)
	require.ErrorIs(err, errNotInitialized)
	require.ErrorIs(vm.SetState(ctx, NormalOp), errNotInitialized)
	require.NoError(vm.Shutdown(ctx))
}

func TestLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	vm := newTestVM(t)

	version, err := vm.Version(ctx)
	require.NoError(err)
	require.Equal(Version.String(), version)

	handlers, err := vm.CreateHandlers(ctx)
	require.NoError(err)
	static, err := vm.CreateStaticHandlers(ctx)
	require.NoError(err)

	mux := http.NewServeMux()
	mux.Handle(api.Endpoint, handlers[""])
	ts := httptest.NewServer(mux)
	defer ts.Close()
	client := api.NewClient(ts.URL)

	// Bootstrapping nodes refuse calls.
	_, err = client.Accounts(ctx)
	require.Error(err)
	code, _ := get(t, static[HealthEndpoint])
	require.Equal(http.StatusServiceUnavailable, code)

	require.NoError(vm.SetState(ctx, NormalOp))

	code, _ = get(t, static[HealthEndpoint])
	require.Equal(http.StatusOK, code)

	accounts, err := client.Accounts(ctx)
	require.NoError(err)
	receipt, err := client.Deploy(ctx, accounts[0], config.KMBContract, "ipfs://prefix/", "ipfs://hidden")
	require.NoError(err)
	require.Equal(chain.Accepted, receipt.Status, receipt.Error)
	require.Equal(uint64(1), vm.Chain().Height())

	code, body := get(t, static[MetricsEndpoint])
	require.Equal(http.StatusOK, code)
	require.Contains(body, `txs_accepted{tx="deploy"} 1`)
	require.Contains(body, "request_duration_count")

	require.NoError(vm.Shutdown(ctx))
	code, body = get(t, static[HealthEndpoint])
	require.Equal(http.StatusServiceUnavailable, code)
	require.Contains(body, chain.ErrClosed.Error())
}
