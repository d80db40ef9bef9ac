// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/pkg/errors"
)

// ErrMultipleNetworks is returned when more than one network flag is set.
var ErrMultipleNetworks = errors.New("multiple networks parameters (testnet, regtest, unittest) " +
	"cannot be used together, please choose only one network")

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	TestNet        bool `long:"testnet" yaml:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" yaml:"regtest" description:"Use the regression test network"`
	UnitTest       bool `long:"unittest" yaml:"unittest" description:"Use the unit test network"`
}

// ResolveNetwork returns the network selected by the flags, main network when
// none is set.  It returns ErrMultipleNetworks if more than one was selected.
func (f *NetworkFlags) ResolveNetwork() (chaincfg.Network, error) {
	net := chaincfg.Main
	numNets := 0

	if f.TestNet {
		numNets++
		net = chaincfg.Testnet
	}
	if f.RegressionTest {
		numNets++
		net = chaincfg.Regtest
	}
	if f.UnitTest {
		numNets++
		net = chaincfg.UnitTest
	}

	if numNets > 1 {
		return chaincfg.Main, ErrMultipleNetworks
	}
	return net, nil
}
