// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math/big"
	"time"

	"github.com/Grim-lock/bitcoin/txscript"
	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/Grim-lock/bitcoin/types/pow"
	"github.com/Grim-lock/bitcoin/types/wire"
	"github.com/pkg/errors"
)

// cancelCheckInterval is the number of hashes tried between context checks.
const cancelCheckInterval = 1 << 16

// genesisOptsOf recovers the options a network genesis block was built from.
func genesisOptsOf(params *chaincfg.Params) (chaincfg.GenesisBlockOpts, error) {
	block := params.GenesisBlock()
	if len(block.Transactions) != 1 {
		return chaincfg.GenesisBlockOpts{}, errors.Errorf("genesis block has %d transactions",
			len(block.Transactions))
	}

	coinbase := block.Transactions[0]
	pushes, err := txscript.PushedData(coinbase.TxIn[0].SignatureScript)
	if err != nil {
		return chaincfg.GenesisBlockOpts{}, errors.Wrap(err, "can't parse coinbase signature script")
	}
	if len(pushes) == 0 {
		return chaincfg.GenesisBlockOpts{}, errors.New("coinbase signature script has no data")
	}

	pubKey := txscript.ExtractPubKey(coinbase.TxOut[0].PkScript)
	if pubKey == nil {
		return chaincfg.GenesisBlockOpts{}, errors.Errorf("coinbase output is %s, not pay-to-pubkey",
			txscript.GetScriptClass(coinbase.TxOut[0].PkScript))
	}

	return chaincfg.GenesisBlockOpts{
		TimestampMessage: string(pushes[len(pushes)-1]),
		OutputPubKey:     pubKey,
		OutputValue:      coinbase.TxOut[0].Value,
		Version:          block.Header.Version,
		Timestamp:        block.Header.Timestamp,
		Bits:             block.Header.Bits,
		Nonce:            block.Header.Nonce,
	}, nil
}

// mineGenesis builds the genesis block described by opts and searches,
// starting at opts.Nonce, for a nonce that satisfies opts.Bits.  Each time the
// nonce space wraps around the timestamp moves forward by one second.
func mineGenesis(ctx context.Context, opts chaincfg.GenesisBlockOpts, powLimit *big.Int) (*wire.MsgBlock, error) {
	block, err := chaincfg.BuildGenesisBlock(opts)
	if err != nil {
		return nil, err
	}

	target, err := pow.CheckTarget(opts.Bits, powLimit)
	if err != nil {
		return nil, err
	}

	header := &block.Header
	for attempt := uint64(0); ; attempt++ {
		if attempt%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		hash := header.BlockHash()
		if pow.HashToBig(&hash).Cmp(target) <= 0 {
			return block, nil
		}

		header.Nonce++
		if header.Nonce == 0 {
			header.Timestamp = header.Timestamp.Add(time.Second)
		}
	}
}
