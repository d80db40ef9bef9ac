// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JAX.Network developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/Grim-lock/bitcoin/types/wire"
)

var (
	// genesisMerkleRoot is the hash of the genesis coinbase transaction,
	// shared by every network.
	genesisMerkleRoot = newHashFromStr("95f549366389f33499bbdd8a487bcdd698b65353aa5822b24fa72c99c93e5c33")

	// mainGenesisHash is the hash of the first block in the block chain for
	// the main network (genesis block).
	mainGenesisHash = newHashFromStr("0000002d55a26e46ca7b173ab176d955258782a776a17a10f6d7fed98ce55a64")
)

const (
	mainGenesisTime  = 1516949303 // Fri 26 Jan 06:48:23 UTC 2018
	mainGenesisNonce = 2105047687
)

// mainAlertPubKey is the key that signs network alerts on the main network.
const mainAlertPubKey = "04321b77dd21834c0f443e672f926e9b575ca34ef79eeda3636c4d11f1b692f36fcdf2161d47b8ac4a6a6597b42532c1c177ad598b79f3b08a144e063fd414a0ab"

// newMainNetParams defines the network parameters for the main network.  It
// is the base every other network is derived from.
func newMainNetParams() (*Params, error) {
	base := &Params{
		targetTimespan: time.Hour * 24 * 14, // 14 days
		targetSpacing:  time.Minute * 10,    // 10 minutes
	}

	return derive(base,
		withIdentity(Main, wire.MainNet, 8333),
		withRPC(8332, ""),
		withAlertPubKey(mustDecodeHex(mainAlertPubKey)),
		withPowLimit(mainPowLimit, mainPowLimitBits),
		withSubsidyHalvingInterval(210000),
		withMajorities(750, 950, 1000),
		withMinerThreads(0), // one thread per CPU

		withGenesis(defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, mainGenesisNonce),
			mainGenesisHash, genesisMerkleRoot),

		// Checkpoints ordered from oldest to newest.
		withCheckpoints([]Checkpoint{
			{Height: 0, Hash: mainGenesisHash},
		},
			mainGenesisTime, // time of the last checkpoint
			0,               // transactions up to the last checkpoint
			500,             // estimated transactions per day after it
		),

		// Address encoding magics: pay-to-pubkey-hash, pay-to-script-hash
		// and private key versions, then the BIP32 extended public and
		// private key versions.
		withBase58Prefixes(1, 6, 129,
			[4]byte{0x05, 0x89, 0xB3, 0x1F},
			[4]byte{0x05, 0x89, 0xAE, 0xE5},
		),

		// The main network ships without seeds.
		withSeeds(nil, nil),

		withFlags(flags{
			requireRPCPassword:  true,
			miningRequiresPeers: true,
			requireStandard:     true,
		}),
	)
}
