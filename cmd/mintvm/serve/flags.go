// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package serve

import (
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/luxfi/mintvm/genesis"
)

const (
	DataDirKey         = "data-dir"
	HTTPHostKey        = "http-host"
	HTTPPortKey        = "http-port"
	GenesisFileKey     = "genesis-file"
	AllowedOriginsKey  = "http-allowed-origins"
	AllowedHostsKey    = "http-allowed-hosts"
	ShutdownTimeoutKey = "http-shutdown-timeout"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(DataDirKey, "", "Directory of the chain database. The chain is kept in memory when empty")
	flags.String(HTTPHostKey, "127.0.0.1", "Address of the HTTP server")
	flags.Uint16(HTTPPortKey, 9650, "Port of the HTTP server")
	flags.String(GenesisFileKey, "", "Genesis JSON file. The built-in dev genesis is used when empty")
	flags.StringSlice(AllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port")
	flags.StringSlice(AllowedHostsKey, []string{"localhost"}, "Hosts to allow on the HTTP port")
	flags.Duration(ShutdownTimeoutKey, 10*time.Second, "Maximum duration to wait for in-flight requests on shutdown")
}

type Config struct {
	DataDir         string
	HTTPHost        string
	HTTPPort        uint16
	Genesis         []byte
	AllowedOrigins  []string
	AllowedHosts    []string
	ShutdownTimeout time.Duration
}

// DefaultConfig serves an in-memory dev chain on a random local port.
func DefaultConfig() (*Config, error) {
	genesisBytes, err := genesis.Default().Bytes()
	if err != nil {
		return nil, err
	}
	return &Config{
		HTTPHost:        "127.0.0.1",
		Genesis:         genesisBytes,
		AllowedOrigins:  []string{"*"},
		AllowedHosts:    []string{"localhost"},
		ShutdownTimeout: time.Second,
	}, nil
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	dataDir, err := flags.GetString(DataDirKey)
	if err != nil {
		return nil, err
	}

	httpHost, err := flags.GetString(HTTPHostKey)
	if err != nil {
		return nil, err
	}

	httpPort, err := flags.GetUint16(HTTPPortKey)
	if err != nil {
		return nil, err
	}

	genesisFile, err := flags.GetString(GenesisFileKey)
	if err != nil {
		return nil, err
	}

	var genesisBytes []byte
	if genesisFile == "" {
		genesisBytes, err = genesis.Default().Bytes()
	} else {
		genesisBytes, err = os.ReadFile(genesisFile)
	}
	if err != nil {
		return nil, err
	}

	allowedOrigins, err := flags.GetStringSlice(AllowedOriginsKey)
	if err != nil {
		return nil, err
	}

	allowedHosts, err := flags.GetStringSlice(AllowedHostsKey)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := flags.GetDuration(ShutdownTimeoutKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		DataDir:         dataDir,
		HTTPHost:        httpHost,
		HTTPPort:        httpPort,
		Genesis:         genesisBytes,
		AllowedOrigins:  allowedOrigins,
		AllowedHosts:    allowedHosts,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
