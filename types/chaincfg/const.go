/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The Grimlock developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"math/big"
	"time"
)

const (
	// SatoshiPerCoin is the number of base units in one coin.
	SatoshiPerCoin = 1e8

	// GenesisReward is the value of the single genesis coinbase output.
	GenesisReward = 50 * SatoshiPerCoin

	// oneWeek is the base age assigned to converted fixed seeds.
	oneWeek = 7 * 24 * time.Hour

	// sigCheckVerificationFactor is how much more expensive verifying a
	// transaction after the last checkpoint is than one before it.
	sigCheckVerificationFactor = 5.0
)

// genesisTimestampMessage is pushed into the signature script of every
// genesis coinbase.
const genesisTimestampMessage = "dtdream grimlock"

// genesisOutputPubKeyHex is the uncompressed key paid by the genesis coinbase.
const genesisOutputPubKeyHex = "0401d6461fece0b03f683c0b73d520ef6a80dd918b1c49072b5179c56d40feb9ee3f64" +
	"aa9668f5bbecf38c05db9ad7e8828e6932c059b736796bbe6ca1340312d8"

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^230 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 230), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	mainPowLimitBits       uint32 = 0x1d3fffff // [3fffff0000000000000000000000000000000000000000000000000000]
	regressionPowLimitBits uint32 = 0x207fffff // [7fffff0000000000000000000000000000000000000000000000000000000000]
)
