// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/Grim-lock/bitcoin/types/chainhash"
)

var (
	// ErrUnexpectedDifficulty indicates specified bits do not align with
	// the expected value either because it doesn't match the calculated
	// value based on difficulty regarding the rules or it is out of the
	// valid range.
	ErrUnexpectedDifficulty = errors.New("unexpected difficulty")

	// ErrHighHash indicates the block does not hash to a value which is
	// lower than the required target difficultly.
	ErrHighHash = errors.New("block hash is higher than target")
)

// CheckTarget ensures the target encoded by bits is positive and does not
// exceed powLimit.
func CheckTarget(bits uint32, powLimit *big.Int) (*big.Int, error) {
	// The target difficulty must be larger than zero.
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return nil, errors.Wrapf(ErrUnexpectedDifficulty,
			"target difficulty of %064x is too low", target)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(powLimit) > 0 {
		return nil, errors.Wrapf(ErrUnexpectedDifficulty,
			"target difficulty of %064x is higher than max of %064x", target, powLimit)
	}

	return target, nil
}

// CheckProofOfWork ensures the bits which indicate the target difficulty are
// in min/max range and that hash is not above the target as claimed.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target, err := CheckTarget(bits, powLimit)
	if err != nil {
		return err
	}

	hashNum := HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		return errors.Wrapf(ErrHighHash,
			"hash of %064x is higher than expected max of %064x", hashNum, target)
	}

	return nil
}
