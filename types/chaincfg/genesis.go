/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The Grimlock developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"github.com/Grim-lock/bitcoin/txscript"
	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/Grim-lock/bitcoin/types/wire"
)

// coinbaseScriptBits and coinbaseScriptExtraNonce are the two numbers every
// genesis signature script starts with.
const (
	coinbaseScriptBits       = 486604799
	coinbaseScriptExtraNonce = 4
)

// GenesisBlockOpts holds everything a genesis block is derived from.
type GenesisBlockOpts struct {
	// TimestampMessage is pushed into the coinbase signature script.
	TimestampMessage string
	// OutputPubKey is the serialized public key paid by the coinbase.
	OutputPubKey []byte
	// OutputValue is the coinbase output value in base units.
	OutputValue int64

	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32
}

// genesisSignatureScript builds `<486604799> <4> <message>` the way the
// reference client serializes it: the explicit script number 4 stays a one
// byte data push.
func genesisSignatureScript(message string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(coinbaseScriptBits).
		AddScriptNum(coinbaseScriptExtraNonce).
		AddData([]byte(message)).
		Script()
}

// NewGenesisCoinbaseTx returns the single transaction of a genesis block.  It
// spends the null outpoint and pays value to pubKey.
func NewGenesisCoinbaseTx(message string, pubKey []byte, value int64) (*wire.MsgTx, error) {
	sigScript, err := genesisSignatureScript(message)
	if err != nil {
		return nil, errors.Wrap(err, "genesis signature script")
	}

	pkScript, err := txscript.PayToPubKeyScript(pubKey)
	if err != nil {
		return nil, errors.Wrap(err, "genesis output script")
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), sigScript))
	tx.AddTxOut(wire.NewTxOut(value, pkScript))
	return tx, nil
}

// BuildGenesisBlock assembles the genesis block described by opts.  The
// previous block is the zero hash and the merkle root is the hash of the only
// transaction.
func BuildGenesisBlock(opts GenesisBlockOpts) (*wire.MsgBlock, error) {
	tx, err := NewGenesisCoinbaseTx(opts.TimestampMessage, opts.OutputPubKey, opts.OutputValue)
	if err != nil {
		return nil, err
	}

	merkleRoot := tx.TxHash()
	header := wire.NewBlockHeader(opts.Version, &chainhash.Hash{}, &merkleRoot, opts.Bits, opts.Nonce)
	header.Timestamp = time.Unix(opts.Timestamp.Unix(), 0)

	block := wire.NewMsgBlock(header)
	block.AddTransaction(tx)
	return block, nil
}

// NewGenesisBlock is like BuildGenesisBlock but panics on error.  It is meant
// for hard-coded options, where an error can only be a programming mistake.
func NewGenesisBlock(opts GenesisBlockOpts) *wire.MsgBlock {
	block, err := BuildGenesisBlock(opts)
	if err != nil {
		panic(err)
	}
	return block
}

// verifyGenesis checks the built genesis block against the hard-coded hash and
// merkle root of its network.
func verifyGenesis(block *wire.MsgBlock, wantHash, wantMerkleRoot chainhash.Hash) error {
	merkleRoot := block.BuildMerkleRoot()
	if merkleRoot != wantMerkleRoot || block.Header.MerkleRoot != wantMerkleRoot {
		return errors.Wrapf(ErrGenesisMismatch, "merkle root %s, expected %s",
			merkleRoot, wantMerkleRoot)
	}

	hash := block.BlockHash()
	if hash != wantHash {
		return errors.Wrapf(ErrGenesisMismatch, "block hash %s, expected %s", hash, wantHash)
	}
	return nil
}

// defaultGenesisOpts returns the options shared by every network.  Only the
// time, bits and nonce differ between them.
func defaultGenesisOpts(timestamp int64, bits, nonce uint32) GenesisBlockOpts {
	return GenesisBlockOpts{
		TimestampMessage: genesisTimestampMessage,
		OutputPubKey:     mustDecodeHex(genesisOutputPubKeyHex),
		OutputValue:      GenesisReward,
		Version:          1,
		Timestamp:        time.Unix(timestamp, 0),
		Bits:             bits,
		Nonce:            nonce,
	}
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return *hash
}

// mustDecodeHex decodes a hard-coded hex literal and panics if it is invalid.
func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}
