// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JAX.Network developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/Grim-lock/bitcoin/types/wire"
)

// testNetGenesisHash is the hash of the first block in the block chain for the
// test network.
var testNetGenesisHash = newHashFromStr("0000003ec29b0a1aeef51895e8be49211289df292c404b61c87d7194843f3b96")

const testNetGenesisNonce = 510912884

// testNetAlertPubKey is the key that signs network alerts on the test network.
const testNetAlertPubKey = genesisOutputPubKeyHex

// newTestNetParams defines the network parameters for the public test
// network.  It differs from main in its identity, looser thresholds and
// policy, its own genesis block and address prefixes.
func newTestNetParams(main *Params) (*Params, error) {
	return derive(main,
		withIdentity(Testnet, wire.TestNet, 18333),
		withRPC(18332, "testnet3"),
		withAlertPubKey(mustDecodeHex(testNetAlertPubKey)),
		withMajorities(51, 75, 100),
		withMinerThreads(0),

		withGenesis(defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, testNetGenesisNonce),
			testNetGenesisHash, genesisMerkleRoot),

		withCheckpoints([]Checkpoint{
			{Height: 0, Hash: testNetGenesisHash},
		},
			mainGenesisTime,
			0,
			250,
		),

		withBase58Prefixes(112, 197, 240,
			[4]byte{0x05, 0x36, 0x88, 0xD0},
			[4]byte{0x05, 0x36, 0x84, 0x95},
		),

		withSeeds(testNetSeeds, nil),

		withFlags(flags{
			requireRPCPassword:            true,
			miningRequiresPeers:           true,
			allowMinDifficultyBlocks:      true,
			testnetToBeDeprecatedFieldRPC: true,
		}),
	)
}
