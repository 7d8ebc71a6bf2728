// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	"github.com/luxfi/database/memdb"
	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	"github.com/luxfi/mintvm"
	"github.com/luxfi/mintvm/api/server"
)

const chainAlias = "bc/mint"

// Node is a mint VM served over HTTP.
type Node struct {
	log      log.Logger
	db       database.Database
	vm       *mintvm.VM
	server   server.Server
	listener net.Listener
}

// Start opens the database, initializes the VM and registers its handlers.
// The server does not accept requests until Run is called.
func Start(ctx context.Context, logger log.Logger, config *Config) (*Node, error) {
	db, err := openDB(config.DataDir)
	if err != nil {
		return nil, err
	}

	n := &Node{
		log: logger,
		db:  db,
	}
	if err := n.start(ctx, config); err != nil {
		if n.listener != nil {
			_ = n.listener.Close()
		}
		return nil, errors.Join(err, n.close(ctx))
	}
	return n, nil
}

func openDB(dataDir string) (database.Database, error) {
	if dataDir == "" {
		return memdb.New(), nil
	}
	return badgerdb.New(
		dataDir,
		nil, // configBytes - use default
		"",  // namespace
		nil, // metrics
	)
}

func (n *Node) start(ctx context.Context, config *Config) error {
	registry := metric.NewRegistry()

	factory := &mintvm.Factory{}
	vm, err := factory.New(n.log)
	if err != nil {
		return err
	}
	n.vm = vm
	if err := vm.Initialize(ctx, &mintvm.Config{
		DB:       n.db,
		Genesis:  config.Genesis,
		Registry: registry,
	}); err != nil {
		return err
	}

	address := net.JoinHostPort(config.HTTPHost, strconv.Itoa(int(config.HTTPPort)))
	n.listener, err = net.Listen("tcp", address)
	if err != nil {
		return err
	}

	n.server, err = server.New(
		n.log,
		n.listener,
		config.AllowedOrigins,
		config.ShutdownTimeout,
		vm.Chain().ChainID(),
		registry,
		server.DefaultHTTPConfig,
		config.AllowedHosts,
	)
	if err != nil {
		return err
	}

	handlers, err := vm.CreateHandlers(ctx)
	if err != nil {
		return err
	}
	for endpoint, handler := range handlers {
		if err := n.server.AddRoute(handler, chainAlias, endpoint); err != nil {
			return err
		}
	}
	static, err := vm.CreateStaticHandlers(ctx)
	if err != nil {
		return err
	}
	for base, handler := range static {
		if err := n.server.AddRoute(handler, base, ""); err != nil {
			return err
		}
	}
	return vm.SetState(ctx, mintvm.NormalOp)
}

// URI is the base URI API clients connect to.
func (n *Node) URI() string {
	return "http://" + n.listener.Addr().String()
}

// Run serves requests until [ctx] is cancelled, then shuts the node down.
func (n *Node) Run(ctx context.Context) error {
	n.log.Info("serving mint chain",
		log.String("uri", n.URI()),
		log.Stringer("chainID", n.vm.Chain().ChainID()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := n.server.Dispatch()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		return n.server.Shutdown()
	})
	return errors.Join(g.Wait(), n.close(context.WithoutCancel(ctx)))
}

func (n *Node) close(ctx context.Context) error {
	var errs []error
	if n.vm != nil {
		errs = append(errs, n.vm.Shutdown(ctx))
	}
	if err := n.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	return errors.Join(errs...)
}
