// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package units

// Denominations of value
const (
	Wei   uint64 = 1
	KWei  uint64 = 1000 * Wei
	MWei  uint64 = 1000 * KWei
	GWei  uint64 = 1000 * MWei  // 10^9 wei
	Szabo uint64 = 1000 * GWei  // 10^12 wei
	Milli uint64 = 1000 * Szabo // 0.001 ether
	Ether uint64 = 1000 * Milli // 10^18 wei

	// EtherDecimals is the number of fractional digits of one ether.
	EtherDecimals = 18
)
