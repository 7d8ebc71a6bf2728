// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mintvm

import "github.com/luxfi/log"

// Factory creates new VM instances.
type Factory struct{}

func (*Factory) New(logger log.Logger) (*VM, error) {
	return &VM{log: logger}, nil
}
