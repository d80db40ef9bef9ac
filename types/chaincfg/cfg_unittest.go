// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// newUnitTestParams defines the network parameters for the in-process unit
// test network.  It is the main network with its own port and data directory,
// no seeds and test friendly policy.  It is the only network whose parameters
// may be changed, through UnitTestParams.
func newUnitTestParams(main *Params) (*Params, error) {
	return derive(main,
		withIdentity(UnitTest, main.net, 18445),
		withRPC(18332, "unittest"),

		// Unit test mode doesn't have any fixed or DNS seeds.
		withSeeds(nil, nil),

		withFlags(flags{
			defaultCheckMemPool: true,
			requireStandard:     true,
			mineBlocksOnDemand:  true,
		}),
	)
}
