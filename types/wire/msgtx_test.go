// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// coinbaseTxHex is the genesis coinbase transaction of the chain.
	coinbaseTxHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff1804ffff001d0104106474647265616d206772696d6c6f636bffffffff0100f2052a0100000043410401d6461fece0b03f683c0b73d520ef6a80dd918b1c49072b5179c56d40feb9ee3f64aa9668f5bbecf38c05db9ad7e8828e6932c059b736796bbe6ca1340312d8ac00000000"
	coinbaseTxID  = "95f549366389f33499bbdd8a487bcdd698b65353aa5822b24fa72c99c93e5c33"
)

func decodeCoinbase(t *testing.T) *MsgTx {
	raw, err := hex.DecodeString(coinbaseTxHex)
	require.NoError(t, err)

	var tx MsgTx
	require.NoError(t, tx.Deserialize(bytes.NewReader(raw)))
	return &tx
}

func TestMsgTxDeserialize(t *testing.T) {
	tx := decodeCoinbase(t)

	assert.Equal(t, int32(1), tx.Version)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	assert.True(t, tx.IsCoinBase())
	assert.Equal(t, MaxTxInSequenceNum, tx.TxIn[0].Sequence)
	assert.Equal(t, int64(5000000000), tx.TxOut[0].Value)
	assert.Len(t, tx.TxOut[0].PkScript, 67)
	assert.Equal(t, uint32(0), tx.LockTime)

	assert.Equal(t, coinbaseTxID, tx.TxHash().String())
	assert.Equal(t, len(coinbaseTxHex)/2, tx.SerializeSize())

	hexTx, err := tx.SerializeToHex()
	require.NoError(t, err)
	assert.Equal(t, coinbaseTxHex, hexTx)
}

func TestMsgTxCopy(t *testing.T) {
	tx := decodeCoinbase(t)
	clone := tx.Copy()

	require.Equal(t, tx.TxHash(), clone.TxHash())

	clone.TxIn[0].SignatureScript[0] = 0x00
	clone.TxOut[0].PkScript[0] = 0x00
	assert.Equal(t, coinbaseTxID, tx.TxHash().String())
	assert.NotEqual(t, tx.TxHash(), clone.TxHash())
}

func TestMsgTxBuild(t *testing.T) {
	tx := NewMsgTx(TxVersion)
	assert.False(t, tx.IsCoinBase())

	prevOut := NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex)
	assert.True(t, prevOut.IsNull())
	tx.AddTxIn(NewTxIn(prevOut, []byte{0x51}))
	tx.AddTxOut(NewTxOut(1, []byte{0x51}))
	assert.True(t, tx.IsCoinBase())

	notNull := NewOutPoint(&chainhash.Hash{0x01}, 0)
	assert.False(t, notNull.IsNull())
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001:0",
		notNull.String())
}

func TestMsgTxDeserializeShort(t *testing.T) {
	raw, err := hex.DecodeString(coinbaseTxHex)
	require.NoError(t, err)

	for _, size := range []int{0, 4, 5, 40, len(raw) - 1} {
		var tx MsgTx
		err := tx.Deserialize(bytes.NewReader(raw[:size]))
		assert.Error(t, err, "size %d", size)
	}
}

func TestBlockHeaderHash(t *testing.T) {
	merkle, err := chainhash.NewHashFromStr(coinbaseTxID)
	require.NoError(t, err)

	header := BlockHeader{
		Version:    1,
		MerkleRoot: *merkle,
		Timestamp:  time.Unix(1516949303, 0),
		Bits:       0x207fffff,
		Nonce:      3,
	}
	assert.Equal(t,
		"6abc13f01d22cd655f9b2a4be2df4cce2aba8414acfdb32c18c3e59edf675c20",
		header.BlockHash().String())

	var buf bytes.Buffer
	require.NoError(t, header.Serialize(&buf))
	assert.Equal(t, MaxBlockHeaderPayload, buf.Len())

	var decoded BlockHeader
	require.NoError(t, decoded.Deserialize(&buf))
	assert.Equal(t, header.BlockHash(), decoded.BlockHash())
	assert.True(t, header.Timestamp.Equal(decoded.Timestamp))
}

func TestMsgBlockRoundTrip(t *testing.T) {
	tx := decodeCoinbase(t)
	block := NewMsgBlock(NewBlockHeader(1, &chainhash.Hash{}, &chainhash.Hash{}, 0x207fffff, 3))
	block.AddTransaction(tx)
	block.Header.MerkleRoot = block.BuildMerkleRoot()
	assert.Equal(t, tx.TxHash(), block.Header.MerkleRoot)

	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))
	assert.Equal(t, block.SerializeSize(), buf.Len())

	var decoded MsgBlock
	require.NoError(t, decoded.Deserialize(&buf))
	assert.Equal(t, block.BlockHash(), decoded.BlockHash())
	assert.Equal(t, block.TxHashes(), decoded.TxHashes())

	clone := block.Copy()
	clone.Transactions[0].TxOut[0].Value = 1
	assert.Equal(t, int64(5000000000), block.Transactions[0].TxOut[0].Value)
}
