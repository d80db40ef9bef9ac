// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"strings"

	"github.com/pkg/errors"
)

// Network identifies one of the supported network profiles.
type Network uint8

const (
	// Main is the production network.
	Main Network = iota

	// Testnet is the public test network.
	Testnet

	// Regtest is the local regression test network.
	Regtest

	// UnitTest is the in-process network used by unit tests.  It never
	// listens and is the only network whose parameters can be modified.
	UnitTest

	// numNetworks MUST be the last entry.
	numNetworks
)

var networkNames = [numNetworks]string{
	Main:     "main",
	Testnet:  "test",
	Regtest:  "regtest",
	UnitTest: "unittest",
}

// Networks returns every supported network in declaration order.
func Networks() []Network {
	return []Network{Main, Testnet, Regtest, UnitTest}
}

// String returns the network id used on the command line and in logs.
func (n Network) String() string {
	if !n.IsValid() {
		return "unknown"
	}
	return networkNames[n]
}

// IsValid reports whether n is one of the supported networks.
func (n Network) IsValid() bool {
	return n < numNetworks
}

// ParseNetwork returns the network named by its id.  The match is case
// insensitive.
func ParseNetwork(name string) (Network, error) {
	for i, id := range networkNames {
		if strings.EqualFold(id, name) {
			return Network(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownNetwork, "network %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (n Network) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, errors.Wrapf(ErrUnknownNetwork, "network %d", uint8(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
