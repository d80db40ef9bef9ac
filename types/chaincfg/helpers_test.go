// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"

	"github.com/Grim-lock/bitcoin/types/pow"
)

func hexString(b []byte) string {
	return hex.EncodeToString(b)
}

func pow2Compact(n *big.Int) uint32 {
	return pow.BigToCompact(n)
}
