/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The Grimlock developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/Grim-lock/bitcoin/types/wire"
)

const genesisCoinbaseTxHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff" +
	"1804ffff001d0104106474647265616d206772696d6c6f636bffffffff0100f2052a01000000434104" +
	"01d6461fece0b03f683c0b73d520ef6a80dd918b1c49072b5179c56d40feb9ee3f64aa9668f5bbecf3" +
	"8c05db9ad7e8828e6932c059b736796bbe6ca1340312d8ac00000000"

func TestGenesisCoinbaseTx(t *testing.T) {
	tx, err := NewGenesisCoinbaseTx(genesisTimestampMessage,
		mustDecodeHex(genesisOutputPubKeyHex), GenesisReward)
	require.NoError(t, err)

	txHex, err := tx.SerializeToHex()
	require.NoError(t, err)
	assert.Equal(t, genesisCoinbaseTxHex, txHex)
	assert.True(t, tx.IsCoinBase())
	assert.Equal(t, genesisMerkleRoot, tx.TxHash())
}

func TestGenesisBlocks(t *testing.T) {
	wantHashes := map[Network]string{
		Main:     "0000002d55a26e46ca7b173ab176d955258782a776a17a10f6d7fed98ce55a64",
		Testnet:  "0000003ec29b0a1aeef51895e8be49211289df292c404b61c87d7194843f3b96",
		Regtest:  "6abc13f01d22cd655f9b2a4be2df4cce2aba8414acfdb32c18c3e59edf675c20",
		UnitTest: "0000002d55a26e46ca7b173ab176d955258782a776a17a10f6d7fed98ce55a64",
	}

	for _, net := range Networks() {
		params := ParamsFor(net)
		block := params.GenesisBlock()

		bh := block.BlockHash()
		assert.Equal(t, wantHashes[net], bh.String(), net.String())
		assert.Equal(t, params.GenesisHash(), bh, net.String())
		assert.Equal(t, genesisMerkleRoot, block.BuildMerkleRoot(), net.String())
		assert.Equal(t, genesisMerkleRoot, params.GenesisMerkleRoot(), net.String())
		assert.True(t, block.Header.PrevBlock.IsZero(), net.String())
		require.Len(t, block.Transactions, 1, net.String())

		buf := bytes.NewBuffer(nil)
		require.NoError(t, block.Serialize(buf), net.String())

		var decoded wire.MsgBlock
		require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())), net.String())
		assert.Equal(t, bh, decoded.BlockHash(), net.String())
	}
}

func TestGenesisBlockIsCopy(t *testing.T) {
	params := ParamsFor(Main)

	block := params.GenesisBlock()
	block.Header.Nonce++
	block.Transactions[0].TxOut[0].Value = 1

	fresh := params.GenesisBlock()
	assert.Equal(t, params.GenesisHash(), fresh.BlockHash())
	assert.Equal(t, int64(GenesisReward), fresh.Transactions[0].TxOut[0].Value)
}

func TestVerifyGenesis(t *testing.T) {
	block := NewGenesisBlock(defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, mainGenesisNonce))
	require.NoError(t, verifyGenesis(block, mainGenesisHash, genesisMerkleRoot))

	err := verifyGenesis(block, testNetGenesisHash, genesisMerkleRoot)
	assert.True(t, errors.Is(err, ErrGenesisMismatch))

	err = verifyGenesis(block, mainGenesisHash, chainhash.Hash{0x01})
	assert.True(t, errors.Is(err, ErrGenesisMismatch))

	block.Header.Timestamp = time.Unix(mainGenesisTime+1, 0)
	err = verifyGenesis(block, mainGenesisHash, genesisMerkleRoot)
	assert.True(t, errors.Is(err, ErrGenesisMismatch))
}

func TestBuildGenesisBlockErrors(t *testing.T) {
	opts := defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, mainGenesisNonce)
	opts.TimestampMessage = strings.Repeat("x", 521)

	_, err := BuildGenesisBlock(opts)
	assert.Error(t, err)
	assert.Panics(t, func() { NewGenesisBlock(opts) })
}

func TestNewHashFromStrPanics(t *testing.T) {
	assert.Panics(t, func() { newHashFromStr("zz") })
	assert.Panics(t, func() { mustDecodeHex("0") })
}
