// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mintvm runs a mint chain and exposes it over HTTP.
package mintvm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/rpc/v2"

	"github.com/luxfi/database"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"
	"github.com/luxfi/version"

	"github.com/luxfi/mintvm/api"
	"github.com/luxfi/mintvm/api/health"
	"github.com/luxfi/mintvm/chain"
	"github.com/luxfi/mintvm/metrics"
	"github.com/luxfi/mintvm/utils/json"
)

const (
	// HealthEndpoint and MetricsEndpoint are the handler keys returned by
	// CreateStaticHandlers.
	HealthEndpoint  = "health"
	MetricsEndpoint = "metrics"
)

var (
	Version = &version.Semantic{
		Major: 0,
		Minor: 1,
		Patch: 0,
	}

	errNotInitialized = errors.New("vm not initialized")
	errNotServing     = errors.New("vm is not serving requests")
)

type Config struct {
	DB      database.Database
	Genesis []byte
	// Registry collects the VM metrics and is served at the metrics
	// endpoint.
	Registry metric.Registry
}

type VM struct {
	log log.Logger

	lock     sync.RWMutex
	state    State
	registry metric.Registry
	metrics  metrics.Metrics
	health   *health.Health
	chain    *chain.Chain
}

func (vm *VM) Initialize(_ context.Context, config *Config) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	vm.state = Bootstrapping
	vm.log.Info("initializing mint vm",
		log.String("version", Version.String()),
	)

	m, err := metrics.New(config.Registry)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	h := health.New(vm.log, config.Registry)
	c, err := chain.New(config.DB, config.Genesis, vm.log, m)
	if err != nil {
		return err
	}
	if err := h.Register("chain", c); err != nil {
		return err
	}

	vm.registry = config.Registry
	vm.metrics = m
	vm.health = h
	vm.chain = c
	return nil
}

// SetState moves the VM through its lifecycle. Requests are rejected unless
// the VM is in NormalOp.
func (vm *VM) SetState(_ context.Context, state State) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	if vm.chain == nil {
		return errNotInitialized
	}
	vm.log.Info("vm state changed",
		log.Stringer("from", vm.state),
		log.Stringer("to", state),
	)
	vm.state = state
	return nil
}

func (vm *VM) Chain() *chain.Chain {
	return vm.chain
}

// HealthCheck fails while the VM is not serving requests.
func (vm *VM) HealthCheck(context.Context) (any, error) {
	vm.lock.RLock()
	defer vm.lock.RUnlock()

	details := map[string]string{"state": vm.state.String()}
	if vm.state != NormalOp {
		return details, errNotServing
	}
	return details, nil
}

func (*VM) Version(context.Context) (string, error) {
	return Version.String(), nil
}

// CreateHandlers returns the mint JSON-RPC handler under the "" extension.
func (vm *VM) CreateHandlers(context.Context) (map[string]http.Handler, error) {
	if vm.chain == nil {
		return nil, errNotInitialized
	}

	codec := json.NewCodec()

	rpcServer := rpc.NewServer()
	rpcServer.RegisterCodec(codec, "application/json")
	rpcServer.RegisterCodec(codec, "application/json;charset=UTF-8")
	rpcServer.RegisterInterceptFunc(vm.metrics.InterceptRequest)
	rpcServer.RegisterAfterFunc(vm.metrics.AfterRequest)
	err := rpcServer.RegisterService(api.NewService(vm.log, vm.chain), api.ServiceName)

	return map[string]http.Handler{
		"": vm.rejectMiddleware(rpcServer),
	}, err
}

// CreateStaticHandlers returns the health and metrics handlers.
func (vm *VM) CreateStaticHandlers(context.Context) (map[string]http.Handler, error) {
	if vm.chain == nil {
		return nil, errNotInitialized
	}
	if err := vm.health.Register("vm", health.CheckerFunc(vm.HealthCheck)); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		HealthEndpoint:  vm.health.Handler(),
		MetricsEndpoint: metrics.Handler(vm.registry),
	}, nil
}

func (vm *VM) rejectMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vm.lock.RLock()
		state := vm.state
		vm.lock.RUnlock()

		if state != NormalOp {
			http.Error(w, fmt.Sprintf("%s: %s", errNotServing, state), http.StatusServiceUnavailable)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

// Shutdown stops the chain. The database belongs to the caller.
func (vm *VM) Shutdown(context.Context) error {
	vm.lock.Lock()
	defer vm.lock.Unlock()

	vm.state = Stopped
	if vm.chain != nil {
		vm.chain.Close()
	}
	return nil
}
