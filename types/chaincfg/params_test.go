// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/Grim-lock/bitcoin/types/wire"
)

func TestNetworkValues(t *testing.T) {
	type values struct {
		name         string
		magic        [4]byte
		port         uint16
		rpcPort      uint16
		dataDir      string
		powLimitBits uint32
		halving      int32
		majorities   [3]int32
		minerThreads int
		prefixes     [5]string
		flags        [8]bool
	}

	mainPrefixes := [5]string{"01", "06", "81", "0589b31f", "0589aee5"}
	testPrefixes := [5]string{"70", "c5", "f0", "053688d0", "05368495"}

	tests := map[Network]values{
		Main: {
			name: "main", magic: [4]byte{0xf9, 0xbe, 0xb4, 0xd9}, port: 8333,
			rpcPort: 8332, dataDir: "", powLimitBits: 0x1d3fffff, halving: 210000,
			majorities: [3]int32{750, 950, 1000}, minerThreads: 0, prefixes: mainPrefixes,
			flags: [8]bool{true, true, false, false, true, false, false, false},
		},
		Testnet: {
			name: "test", magic: [4]byte{0x0b, 0x11, 0x09, 0x07}, port: 18333,
			rpcPort: 18332, dataDir: "testnet3", powLimitBits: 0x1d3fffff, halving: 210000,
			majorities: [3]int32{51, 75, 100}, minerThreads: 0, prefixes: testPrefixes,
			flags: [8]bool{true, true, false, true, false, false, false, true},
		},
		Regtest: {
			name: "regtest", magic: [4]byte{0xfa, 0xbf, 0xb5, 0xda}, port: 18444,
			rpcPort: 18332, dataDir: "regtest", powLimitBits: 0x207fffff, halving: 150,
			majorities: [3]int32{750, 950, 1000}, minerThreads: 1, prefixes: testPrefixes,
			flags: [8]bool{false, false, true, true, false, true, false, false},
		},
		UnitTest: {
			name: "unittest", magic: [4]byte{0xf9, 0xbe, 0xb4, 0xd9}, port: 18445,
			rpcPort: 18332, dataDir: "unittest", powLimitBits: 0x1d3fffff, halving: 210000,
			majorities: [3]int32{750, 950, 1000}, minerThreads: 0, prefixes: mainPrefixes,
			flags: [8]bool{false, false, true, false, true, true, false, false},
		},
	}

	registry, err := NewRegistry()
	require.NoError(t, err)

	for id, want := range tests {
		p := registry.ParamsFor(id)
		name := id.String()

		assert.Equal(t, id, p.NetworkID(), name)
		assert.Equal(t, want.name, p.Name(), name)
		assert.Equal(t, want.magic, p.MessageStart(), name)
		assert.Equal(t, wire.NetFromMessageStart(want.magic), p.Net(), name)
		assert.Equal(t, want.port, p.DefaultPort(), name)
		assert.Equal(t, want.rpcPort, p.RPCPort(), name)
		assert.Equal(t, want.dataDir, p.DataDir(), name)
		assert.Equal(t, want.powLimitBits, p.PowLimitBits(), name)
		assert.Equal(t, want.halving, p.SubsidyHalvingInterval(), name)
		assert.Equal(t, want.majorities, [3]int32{
			p.EnforceBlockUpgradeMajority(),
			p.RejectBlockOutdatedMajority(),
			p.ToCheckBlockUpgradeMajority(),
		}, name)
		assert.Equal(t, want.minerThreads, p.MinerThreads(), name)
		assert.Equal(t, 14*24*time.Hour, p.TargetTimespan(), name)
		assert.Equal(t, 10*time.Minute, p.TargetSpacing(), name)
		assert.EqualValues(t, 2016, p.DifficultyAdjustmentInterval(), name)

		for i, typ := range Base58Types() {
			assert.Equal(t, want.prefixes[i], hexString(p.Base58Prefix(typ)), "%s %s", name, typ)
		}

		assert.Equal(t, want.flags, [8]bool{
			p.RequireRPCPassword(),
			p.MiningRequiresPeers(),
			p.DefaultCheckMemPool(),
			p.AllowMinDifficultyBlocks(),
			p.RequireStandard(),
			p.MineBlocksOnDemand(),
			p.SkipProofOfWorkCheck(),
			p.TestnetToBeDeprecatedFieldRPC(),
		}, name)
	}
}

func TestPowLimits(t *testing.T) {
	full := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	assert.Zero(t, new(big.Int).Rsh(full, 26).Cmp(ParamsFor(Main).PowLimit()))
	assert.Zero(t, new(big.Int).Rsh(full, 26).Cmp(ParamsFor(Testnet).PowLimit()))
	assert.Zero(t, new(big.Int).Rsh(full, 1).Cmp(ParamsFor(Regtest).PowLimit()))
	assert.Zero(t, new(big.Int).Rsh(full, 26).Cmp(ParamsFor(UnitTest).PowLimit()))
}

func TestAlertPubKeys(t *testing.T) {
	assert.Equal(t, mainAlertPubKey, hexString(ParamsFor(Main).AlertPubKey()))
	assert.Equal(t, genesisOutputPubKeyHex, hexString(ParamsFor(Testnet).AlertPubKey()))
	assert.Equal(t, genesisOutputPubKeyHex, hexString(ParamsFor(Regtest).AlertPubKey()))
	assert.Equal(t, mainAlertPubKey, hexString(ParamsFor(UnitTest).AlertPubKey()))
	assert.Len(t, ParamsFor(Main).AlertPubKey(), 65)
}

func TestAddressPrefixLengths(t *testing.T) {
	for _, id := range Networks() {
		p := ParamsFor(id)
		assert.Len(t, p.Base58Prefix(PubKeyAddress), 1, id.String())
		assert.Len(t, p.Base58Prefix(ScriptAddress), 1, id.String())
		assert.Len(t, p.Base58Prefix(SecretKey), 1, id.String())
		assert.Len(t, p.Base58Prefix(ExtPublicKey), 4, id.String())
		assert.Len(t, p.Base58Prefix(ExtSecretKey), 4, id.String())
	}
	assert.Nil(t, ParamsFor(Main).Base58Prefix(numBase58Types))
	assert.Equal(t, "UNKNOWN", Base58Type(-1).String())
	assert.Equal(t, "EXT_SECRET_KEY", ExtSecretKey.String())
}

func TestAccessorsReturnCopies(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	p := registry.ParamsFor(Testnet)

	p.PowLimit().SetInt64(1)
	assert.Equal(t, uint32(0x1d3fffff), pow2Compact(p.PowLimit()))

	prefix := p.Base58Prefix(ExtPublicKey)
	prefix[0] = 0xff
	assert.EqualValues(t, 0x05, p.Base58Prefix(ExtPublicKey)[0])

	key := p.AlertPubKey()
	key[0] = 0xff
	assert.EqualValues(t, 0x04, p.AlertPubKey()[0])

	seeds := p.FixedSeeds()
	require.NotEmpty(t, seeds)
	seeds[0].Port = 1
	seeds[0].IP[15] = 0xee
	fresh := p.FixedSeeds()
	assert.EqualValues(t, 18333, fresh[0].Port)
	assert.NotEqual(t, byte(0xee), fresh[0].IP[15])
}

func TestCloneIsDeep(t *testing.T) {
	base := ParamsFor(Testnet)
	c := base.clone()

	c.powLimit.SetInt64(1)
	c.alertPubKey[0] = 0
	c.base58Prefixes[PubKeyAddress][0] = 0
	c.genesisOpts.OutputPubKey[0] = 0
	c.genesisBlock.Header.Nonce = 0
	c.checkpointTable[0].Height = 7
	c.fixedSeeds[0].Port = 1

	assert.Equal(t, "70", hexString(base.Base58Prefix(PubKeyAddress)))
	assert.EqualValues(t, 0x04, base.AlertPubKey()[0])
	assert.Equal(t, base.GenesisHash(), base.GenesisBlock().BlockHash())
	assert.EqualValues(t, 0x04, base.genesisOpts.OutputPubKey[0])
	assert.EqualValues(t, 0, base.checkpointTable[0].Height)
	assert.EqualValues(t, 18333, base.fixedSeeds[0].Port)
	assert.Equal(t, uint32(0x1d3fffff), pow2Compact(base.PowLimit()))
}

func TestDeriveErrors(t *testing.T) {
	mainNet := ParamsFor(Main)

	tests := []struct {
		name     string
		override override
		want     error
	}{
		{
			name: "genesis hash mismatch",
			override: withGenesis(defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, 1),
				mainGenesisHash, genesisMerkleRoot),
			want: ErrGenesisMismatch,
		},
		{
			name: "merkle root mismatch",
			override: withGenesis(defaultGenesisOpts(mainGenesisTime, mainPowLimitBits, mainGenesisNonce),
				mainGenesisHash, chainhash.Hash{0x01}),
			want: ErrGenesisMismatch,
		},
		{
			name:     "checkpoint order",
			override: withCheckpoints([]Checkpoint{{0, mainGenesisHash}, {0, mainGenesisHash}}, 0, 0, 0),
			want:     ErrCheckpointOrder,
		},
		{
			name:     "checkpoint not genesis",
			override: withCheckpoints([]Checkpoint{{0, testNetGenesisHash}}, 0, 0, 0),
			want:     ErrCheckpointOrder,
		},
		{
			name: "prefixes unchanged",
			override: withBase58Prefixes(1, 6, 129,
				[4]byte{0x05, 0x89, 0xB3, 0x1F}, [4]byte{0x05, 0x89, 0xAE, 0xE5}),
			want: nil,
		},
		{
			name: "short prefix",
			override: func(p *Params) {
				p.base58Prefixes[ExtSecretKey] = []byte{0x05, 0x89}
			},
			want: ErrPrefixLength,
		},
		{
			name: "pow limit bits",
			override: func(p *Params) {
				p.powLimitBits = 0x1d00ffff
			},
			want: ErrPowLimitBits,
		},
		{
			name:     "genesis above limit",
			override: withPowLimit(new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne), 0x1d00ffff),
			want:     ErrGenesisPoW,
		},
	}

	for _, test := range tests {
		_, err := derive(mainNet, test.override)
		if test.want == nil {
			assert.NoError(t, err, test.name)
			continue
		}
		assert.True(t, errors.Is(err, test.want), "%s: %v", test.name, err)
	}

	// Skipping proof of work accepts a genesis block above the limit.
	_, err := derive(mainNet,
		withPowLimit(new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne), 0x1d00ffff),
		func(p *Params) { p.skipProofOfWorkCheck = true },
	)
	assert.NoError(t, err)
}

func TestValidateNetworkSet(t *testing.T) {
	profiles := func() map[Network]*Params {
		r, err := NewRegistry()
		require.NoError(t, err)
		return r.profiles
	}

	require.NoError(t, validateNetworkSet(profiles()))

	set := profiles()
	set[Regtest].net = set[Testnet].net
	assert.True(t, errors.Is(validateNetworkSet(set), ErrDuplicateMagic))

	set = profiles()
	set[Testnet].defaultPort = set[Main].defaultPort
	assert.True(t, errors.Is(validateNetworkSet(set), ErrDuplicatePort))

	set = profiles()
	set[Testnet].base58Prefixes[ScriptAddress] = []byte{6}
	assert.True(t, errors.Is(validateNetworkSet(set), ErrPrefixCollision))

	// The unit test network shares the main magic and prefixes.
	set = profiles()
	assert.Equal(t, set[Main].net, set[UnitTest].net)
	assert.NoError(t, validateNetworkSet(set))
}
