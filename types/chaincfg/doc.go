// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// Four networks are supported: the main network, the public test network, the
// regression test network and an in-process unit test network.  Their
// parameters are built and verified when the package is initialized, and one
// of them is selected once at startup:
//
//	if err := chaincfg.SelectParams(chaincfg.Testnet); err != nil {
//		return err
//	}
//	params := chaincfg.ActiveParams()
//	fmt.Println(params.DefaultPort(), params.GenesisHash())
//
// Parameters are read-only.  Only the unit test network can be changed, through
// the value returned by ModifiableParams.
package chaincfg
