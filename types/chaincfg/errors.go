// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/pkg/errors"
)

// Integrity errors.  They are detected while the network profiles are built
// and mean the hard-coded parameters are inconsistent.
var (
	// ErrGenesisMismatch describes a genesis block whose hash or merkle
	// root differs from the hard-coded value of its network.
	ErrGenesisMismatch = errors.New("genesis block does not match hard-coded value")

	// ErrCheckpointOrder describes a checkpoint table whose heights are not
	// strictly increasing or which does not start at the genesis block.
	ErrCheckpointOrder = errors.New("checkpoints are not strictly increasing from genesis")

	// ErrPrefixLength describes a base58 prefix of the wrong size.
	ErrPrefixLength = errors.New("base58 prefix has invalid length")

	// ErrPowLimitBits describes compact proof of work limit bits that do
	// not encode the proof of work limit.
	ErrPowLimitBits = errors.New("proof of work limit bits do not match the limit")

	// ErrGenesisPoW describes a genesis block which does not satisfy its own
	// difficulty target.
	ErrGenesisPoW = errors.New("genesis block does not satisfy proof of work")

	// ErrDuplicateMagic describes two coexisting networks sharing their
	// message start bytes.
	ErrDuplicateMagic = errors.New("duplicate network magic")

	// ErrDuplicatePort describes two coexisting networks sharing their
	// default peer-to-peer port.
	ErrDuplicatePort = errors.New("duplicate default port")

	// ErrPrefixCollision describes main and test networks sharing a base58
	// prefix, which would make their addresses or keys ambiguous.
	ErrPrefixCollision = errors.New("base58 prefix collision")
)

// Selection errors.
var (
	// ErrUnknownNetwork describes a network identifier outside of the
	// supported set.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrNotSelected is the panic value of reading the active parameters
	// before any network was selected.
	ErrNotSelected = errors.New("network parameters are not selected")

	// ErrNotUnitTest is the panic value of requesting modifiable parameters
	// while the active network is not the unit test network.
	ErrNotUnitTest = errors.New("modifiable parameters are only available for the unit test network")
)
