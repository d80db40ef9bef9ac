// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Grim-lock/bitcoin/types/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// CheckpointData is the checkpoint table of a network together with the
// statistics used to estimate synchronization progress.  It is immutable.
type CheckpointData struct {
	checkpoints []Checkpoint

	// lastCheckpointTime is the block time of the last checkpoint.
	lastCheckpointTime time.Time
	// txBeforeLastCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	txBeforeLastCheckpoint uint64
	// txPerDay estimates the transactions per day after the last checkpoint.
	txPerDay float64
}

// NewCheckpointData validates and wraps a checkpoint table.  Heights must be
// strictly increasing and the first checkpoint must be the genesis block.
func NewCheckpointData(checkpoints []Checkpoint, lastCheckpointTime time.Time,
	txBeforeLastCheckpoint uint64, txPerDay float64) (*CheckpointData, error) {

	if len(checkpoints) == 0 || checkpoints[0].Height != 0 {
		return nil, errors.Wrap(ErrCheckpointOrder, "missing genesis checkpoint")
	}
	for i := 1; i < len(checkpoints); i++ {
		if checkpoints[i].Height <= checkpoints[i-1].Height {
			return nil, errors.Wrapf(ErrCheckpointOrder, "height %d follows %d",
				checkpoints[i].Height, checkpoints[i-1].Height)
		}
	}

	return &CheckpointData{
		checkpoints:            append([]Checkpoint(nil), checkpoints...),
		lastCheckpointTime:     lastCheckpointTime,
		txBeforeLastCheckpoint: txBeforeLastCheckpoint,
		txPerDay:               txPerDay,
	}, nil
}

// Checkpoints returns a copy of the table ordered by height.
func (c *CheckpointData) Checkpoints() []Checkpoint {
	return append([]Checkpoint(nil), c.checkpoints...)
}

// LastCheckpointTime returns the block time of the last checkpoint.
func (c *CheckpointData) LastCheckpointTime() time.Time {
	return c.lastCheckpointTime
}

// TransactionsBeforeLastCheckpoint returns the number of transactions up to
// the last checkpoint.
func (c *CheckpointData) TransactionsBeforeLastCheckpoint() uint64 {
	return c.txBeforeLastCheckpoint
}

// EstimatedTransactionsPerDay returns the transaction rate assumed after the
// last checkpoint.
func (c *CheckpointData) EstimatedTransactionsPerDay() float64 {
	return c.txPerDay
}

// HashAt returns the checkpointed hash at height, if there is one.
func (c *CheckpointData) HashAt(height int32) (chainhash.Hash, bool) {
	i := sort.Search(len(c.checkpoints), func(i int) bool {
		return c.checkpoints[i].Height >= height
	})
	if i < len(c.checkpoints) && c.checkpoints[i].Height == height {
		return c.checkpoints[i].Hash, true
	}
	return chainhash.Hash{}, false
}

// CheckBlock returns false only when a checkpoint exists at height and its
// hash differs from hash.
func (c *CheckpointData) CheckBlock(height int32, hash chainhash.Hash) bool {
	want, ok := c.HashAt(height)
	return !ok || want == hash
}

// TotalBlocksEstimate returns the height of the last checkpoint.
func (c *CheckpointData) TotalBlocksEstimate() int32 {
	return c.LatestCheckpoint().Height
}

// LatestCheckpoint returns the checkpoint with the greatest height.
func (c *CheckpointData) LatestCheckpoint() Checkpoint {
	return c.checkpoints[len(c.checkpoints)-1]
}

// LastCheckpointIn returns the highest checkpoint whose hash is known to the
// caller, typically because the block is in its block index.
func (c *CheckpointData) LastCheckpointIn(known func(hash chainhash.Hash) bool) (Checkpoint, bool) {
	for i := len(c.checkpoints) - 1; i >= 0; i-- {
		if known(c.checkpoints[i].Hash) {
			return c.checkpoints[i], true
		}
	}
	return Checkpoint{}, false
}

// GuessVerificationProgress estimates the fraction of the chain verified once
// the tip holds chainTx transactions and was mined at tipTime.
//
// Transactions up to the last checkpoint are cheap to verify.  Those after it
// need signature checks and weigh sigCheckVerificationFactor times more.  The
// work still ahead is extrapolated from the estimated transaction rate.
func (c *CheckpointData) GuessVerificationProgress(chainTx uint64, tipTime, now time.Time) float64 {
	var workBefore, workAfter float64

	if chainTx <= c.txBeforeLastCheckpoint {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(c.txBeforeLastCheckpoint - chainTx)
		expensiveAfter := daysBetween(c.lastCheckpointTime, now) * c.txPerDay

		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigCheckVerificationFactor
	} else {
		cheapBefore := float64(c.txBeforeLastCheckpoint)
		expensiveBefore := float64(chainTx - c.txBeforeLastCheckpoint)
		expensiveAfter := daysBetween(tipTime, now) * c.txPerDay

		workBefore = cheapBefore + expensiveBefore*sigCheckVerificationFactor
		workAfter = expensiveAfter * sigCheckVerificationFactor
	}

	if workBefore+workAfter == 0 {
		return 1.0
	}
	return workBefore / (workBefore + workAfter)
}

// daysBetween returns the non-negative number of days from since to now.
func daysBetween(since, now time.Time) float64 {
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return d.Hours() / 24
}
