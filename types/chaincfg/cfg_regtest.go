// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JAX.Network developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/Grim-lock/bitcoin/types/wire"
)

// regTestGenesisHash is the hash of the first block in the block chain for the
// regression test network.
var regTestGenesisHash = newHashFromStr("6abc13f01d22cd655f9b2a4be2df4cce2aba8414acfdb32c18c3e59edf675c20")

const regTestGenesisNonce = 3

// newRegTestParams defines the network parameters for the regression test
// network.  It is derived from the test network, keeping its address
// prefixes, and mines trivially easy blocks on demand.
func newRegTestParams(test *Params) (*Params, error) {
	return derive(test,
		withIdentity(Regtest, wire.RegTest, 18444),
		withRPC(18332, "regtest"),
		withPowLimit(regressionPowLimit, regressionPowLimitBits),
		withSubsidyHalvingInterval(150),
		withMajorities(750, 950, 1000),
		withMinerThreads(1),

		withGenesis(defaultGenesisOpts(mainGenesisTime, regressionPowLimitBits, regTestGenesisNonce),
			regTestGenesisHash, genesisMerkleRoot),

		withCheckpoints([]Checkpoint{
			{Height: 0, Hash: regTestGenesisHash},
		}, 0, 0, 0),

		// Regtest mode doesn't have any fixed or DNS seeds.
		withSeeds(nil, nil),

		withFlags(flags{
			defaultCheckMemPool:      true,
			allowMinDifficultyBlocks: true,
			mineBlocksOnDemand:       true,
		}),
	)
}
