// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"github.com/luxfi/database"
	"github.com/luxfi/log"

	"github.com/luxfi/mintvm/metrics"
)

type Backend struct {
	// DB is the database the transaction writes to. The caller decides
	// whether to commit it.
	DB      database.Database
	Log     log.Logger
	Metrics metrics.Metrics
}
