// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/Grim-lock/bitcoin/types/pow"
)

// validate checks the internal consistency of a finalized profile.
func (p *Params) validate() error {
	for _, t := range Base58Types() {
		if got, want := len(p.base58Prefixes[t]), base58PrefixLen[t]; got != want {
			return errors.Wrapf(ErrPrefixLength, "%s: %s is %d bytes, expected %d",
				p.name, t, got, want)
		}
	}

	if bits := pow.BigToCompact(p.powLimit); bits != p.powLimitBits {
		return errors.Wrapf(ErrPowLimitBits, "%s: limit encodes to %08x, bits are %08x",
			p.name, bits, p.powLimitBits)
	}

	genesisCheckpoint, ok := p.checkpoints.HashAt(0)
	if !ok || genesisCheckpoint != p.genesisHash {
		return errors.Wrapf(ErrCheckpointOrder, "%s: checkpoint 0 is %s, genesis is %s",
			p.name, genesisCheckpoint, p.genesisHash)
	}

	if !p.skipProofOfWorkCheck {
		err := pow.CheckProofOfWork(p.genesisHash, p.genesisBlock.Header.Bits, p.powLimit)
		if err != nil {
			return errors.Wrapf(ErrGenesisPoW, "%s: %v", p.name, err)
		}
	}

	return nil
}

// validateNetworkSet checks the rules between profiles.  Networks that can run
// side by side must not share magic bytes or default ports, and the main and
// test networks must not share any base58 prefix.  The unit test network is
// exempt since it never listens and reuses the main network tables.
func validateNetworkSet(profiles map[Network]*Params) error {
	coexisting := []Network{Main, Testnet, Regtest}

	for i, a := range coexisting {
		for _, b := range coexisting[i+1:] {
			pa, pb := profiles[a], profiles[b]
			if pa.net == pb.net {
				return errors.Wrapf(ErrDuplicateMagic, "%s and %s use %s", a, b, pa.net)
			}
			if pa.defaultPort == pb.defaultPort {
				return errors.Wrapf(ErrDuplicatePort, "%s and %s use %d", a, b, pa.defaultPort)
			}
		}
	}

	mainNet, testNet := profiles[Main], profiles[Testnet]
	for _, t := range Base58Types() {
		if bytes.Equal(mainNet.base58Prefixes[t], testNet.base58Prefixes[t]) {
			return errors.Wrapf(ErrPrefixCollision, "%s is %x on both %s and %s",
				t, mainNet.base58Prefixes[t], Main, Testnet)
		}
	}

	return nil
}
