// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/Grim-lock/bitcoin/types/wire"
)

// Base58Type selects one of the base58 version prefixes of a network.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey

	// numBase58Types MUST be the last entry.
	numBase58Types
)

// base58PrefixLen is the expected length of each prefix.
var base58PrefixLen = [numBase58Types]int{
	PubKeyAddress: 1,
	ScriptAddress: 1,
	SecretKey:     1,
	ExtPublicKey:  4,
	ExtSecretKey:  4,
}

var base58TypeNames = [numBase58Types]string{
	PubKeyAddress: "PUBKEY_ADDRESS",
	ScriptAddress: "SCRIPT_ADDRESS",
	SecretKey:     "SECRET_KEY",
	ExtPublicKey:  "EXT_PUBLIC_KEY",
	ExtSecretKey:  "EXT_SECRET_KEY",
}

// Base58Types returns every prefix type.
func Base58Types() []Base58Type {
	return []Base58Type{PubKeyAddress, ScriptAddress, SecretKey, ExtPublicKey, ExtSecretKey}
}

// String returns the conventional upper case name of the prefix type.
func (t Base58Type) String() string {
	if t < 0 || t >= numBase58Types {
		return "UNKNOWN"
	}
	return base58TypeNames[t]
}

// Params defines a network by its parameters.  These parameters may be used by
// applications to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
//
// A Params value is built once and is read-only afterwards: every accessor
// returning a slice, big integer or block returns a copy.
type Params struct {
	id   Network
	name string

	// net defines the magic bytes used to identify the network.
	net         wire.GrimNet
	defaultPort uint16
	rpcPort     uint16
	dataDir     string
	alertPubKey []byte

	// Proof of work and chain selection parameters.
	powLimit                    *big.Int
	powLimitBits                uint32
	subsidyHalvingInterval      int32
	enforceBlockUpgradeMajority int32
	rejectBlockOutdatedMajority int32
	toCheckBlockUpgradeMajority int32
	targetTimespan              time.Duration
	targetSpacing               time.Duration
	minerThreads                int

	// genesisOpts describe the genesis block.  It must hash to the
	// hard-coded genesisWantHash and genesisWantMerkleRoot.
	genesisOpts           GenesisBlockOpts
	genesisWantHash       chainhash.Hash
	genesisWantMerkleRoot chainhash.Hash
	genesisBlock          *wire.MsgBlock
	genesisHash           chainhash.Hash
	genesisMerkleRoot     chainhash.Hash

	checkpointTable   []Checkpoint
	checkpointTime    time.Time
	checkpointTxCount uint64
	checkpointTxRate  float64
	checkpoints       *CheckpointData

	base58Prefixes [numBase58Types][]byte

	fixedSeedSpecs []SeedSpec6
	fixedSeeds     []*wire.NetAddress
	dnsSeeds       []DNSSeed

	requireRPCPassword            bool
	miningRequiresPeers           bool
	defaultCheckMemPool           bool
	allowMinDifficultyBlocks      bool
	requireStandard               bool
	mineBlocksOnDemand            bool
	skipProofOfWorkCheck          bool
	testnetToBeDeprecatedFieldRPC bool
}

// NetworkID returns the network the parameters belong to.
func (p *Params) NetworkID() Network { return p.id }

// Name returns the network id, "main", "test", "regtest" or "unittest".
func (p *Params) Name() string { return p.name }

// Net returns the network magic.
func (p *Params) Net() wire.GrimNet { return p.net }

// MessageStart returns the four bytes that start every message on the wire.
func (p *Params) MessageStart() [4]byte { return p.net.MessageStart() }

// DefaultPort returns the default peer-to-peer port.
func (p *Params) DefaultPort() uint16 { return p.defaultPort }

// RPCPort returns the default RPC server port.
func (p *Params) RPCPort() uint16 { return p.rpcPort }

// DataDir returns the subdirectory of the data directory used by the
// network.  It is empty for the main network.
func (p *Params) DataDir() string { return p.dataDir }

// AlertPubKey returns the serialized key that signs network alerts.
func (p *Params) AlertPubKey() []byte { return append([]byte(nil), p.alertPubKey...) }

// PowLimit returns the highest allowed proof of work target.
func (p *Params) PowLimit() *big.Int { return new(big.Int).Set(p.powLimit) }

// PowLimitBits returns PowLimit in compact form.
func (p *Params) PowLimitBits() uint32 { return p.powLimitBits }

// SubsidyHalvingInterval returns the number of blocks between reward halvings.
func (p *Params) SubsidyHalvingInterval() int32 { return p.subsidyHalvingInterval }

// EnforceBlockUpgradeMajority returns how many of the last
// ToCheckBlockUpgradeMajority blocks must be upgraded before new block rules
// are enforced for upgraded blocks.
func (p *Params) EnforceBlockUpgradeMajority() int32 { return p.enforceBlockUpgradeMajority }

// RejectBlockOutdatedMajority returns how many of the last
// ToCheckBlockUpgradeMajority blocks must be upgraded before outdated blocks
// are rejected.
func (p *Params) RejectBlockOutdatedMajority() int32 { return p.rejectBlockOutdatedMajority }

// ToCheckBlockUpgradeMajority returns the size of the window the two
// thresholds above are counted in.
func (p *Params) ToCheckBlockUpgradeMajority() int32 { return p.toCheckBlockUpgradeMajority }

// TargetTimespan returns the desired time between difficulty retargets.
func (p *Params) TargetTimespan() time.Duration { return p.targetTimespan }

// TargetSpacing returns the desired time between blocks.
func (p *Params) TargetSpacing() time.Duration { return p.targetSpacing }

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.targetTimespan / p.targetSpacing)
}

// MinerThreads returns the default number of mining threads, zero meaning
// one per CPU.
func (p *Params) MinerThreads() int { return p.minerThreads }

// GenesisBlock returns a copy of the first block of the chain.
func (p *Params) GenesisBlock() *wire.MsgBlock { return p.genesisBlock.Copy() }

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() chainhash.Hash { return p.genesisHash }

// GenesisMerkleRoot returns the merkle root of the genesis block.
func (p *Params) GenesisMerkleRoot() chainhash.Hash { return p.genesisMerkleRoot }

// Checkpoints returns the checkpoint table of the network.
func (p *Params) Checkpoints() *CheckpointData { return p.checkpoints }

// Base58Prefix returns a copy of the version prefix of the given type.
func (p *Params) Base58Prefix(t Base58Type) []byte {
	if t < 0 || t >= numBase58Types {
		return nil
	}
	return append([]byte(nil), p.base58Prefixes[t]...)
}

// FixedSeeds returns copies of the hard-coded seed node addresses.
func (p *Params) FixedSeeds() []*wire.NetAddress {
	seeds := make([]*wire.NetAddress, len(p.fixedSeeds))
	for i, na := range p.fixedSeeds {
		seeds[i] = na.Copy()
	}
	return seeds
}

// DNSSeeds returns the DNS seeds of the network.
func (p *Params) DNSSeeds() []DNSSeed { return append([]DNSSeed(nil), p.dnsSeeds...) }

// RequireRPCPassword reports whether the RPC server refuses to start without a
// password.
func (p *Params) RequireRPCPassword() bool { return p.requireRPCPassword }

// MiningRequiresPeers reports whether mining waits for peers to connect.
func (p *Params) MiningRequiresPeers() bool { return p.miningRequiresPeers }

// DefaultCheckMemPool reports whether mempool consistency checks are on by
// default.
func (p *Params) DefaultCheckMemPool() bool { return p.defaultCheckMemPool }

// AllowMinDifficultyBlocks reports whether blocks may use the minimum
// difficulty after a long gap.
func (p *Params) AllowMinDifficultyBlocks() bool { return p.allowMinDifficultyBlocks }

// RequireStandard reports whether only standard transactions are relayed.
func (p *Params) RequireStandard() bool { return p.requireStandard }

// MineBlocksOnDemand reports whether blocks are mined on request instead of
// continuously.
func (p *Params) MineBlocksOnDemand() bool { return p.mineBlocksOnDemand }

// SkipProofOfWorkCheck reports whether block proof of work checks are
// skipped.
func (p *Params) SkipProofOfWorkCheck() bool { return p.skipProofOfWorkCheck }

// TestnetToBeDeprecatedFieldRPC reports whether the RPC interface still
// reports the legacy "testnet" field.
func (p *Params) TestnetToBeDeprecatedFieldRPC() bool { return p.testnetToBeDeprecatedFieldRPC }

// clone returns a deep copy of the parameters.  Derived networks start from a
// clone of their base.
func (p *Params) clone() *Params {
	c := *p

	c.alertPubKey = append([]byte(nil), p.alertPubKey...)
	if p.powLimit != nil {
		c.powLimit = new(big.Int).Set(p.powLimit)
	}

	c.genesisOpts.OutputPubKey = append([]byte(nil), p.genesisOpts.OutputPubKey...)
	if p.genesisBlock != nil {
		c.genesisBlock = p.genesisBlock.Copy()
	}

	c.checkpointTable = append([]Checkpoint(nil), p.checkpointTable...)
	for i := range p.base58Prefixes {
		c.base58Prefixes[i] = append([]byte(nil), p.base58Prefixes[i]...)
	}

	c.fixedSeedSpecs = append([]SeedSpec6(nil), p.fixedSeedSpecs...)
	c.fixedSeeds = make([]*wire.NetAddress, len(p.fixedSeeds))
	for i, na := range p.fixedSeeds {
		c.fixedSeeds[i] = na.Copy()
	}
	c.dnsSeeds = append([]DNSSeed(nil), p.dnsSeeds...)

	return &c
}

// override changes one aspect of a cloned base profile.
type override func(p *Params)

// derive clones base, applies the overrides in order and finalizes the
// result.
func derive(base *Params, overrides ...override) (*Params, error) {
	p := base.clone()
	for _, o := range overrides {
		o(p)
	}
	if err := p.finalize(); err != nil {
		return nil, err
	}
	return p, nil
}

// finalize builds and verifies the genesis block, attaches the checkpoint
// table, converts the fixed seeds and validates the result.
func (p *Params) finalize() error {
	block, err := BuildGenesisBlock(p.genesisOpts)
	if err != nil {
		return errors.Wrapf(err, "%s: genesis block", p.name)
	}

	if err := verifyGenesis(block, p.genesisWantHash, p.genesisWantMerkleRoot); err != nil {
		return errors.Wrapf(err, "%s", p.name)
	}
	p.genesisBlock = block
	p.genesisHash = block.BlockHash()
	p.genesisMerkleRoot = block.Header.MerkleRoot

	p.checkpoints, err = NewCheckpointData(p.checkpointTable, p.checkpointTime,
		p.checkpointTxCount, p.checkpointTxRate)
	if err != nil {
		return errors.Wrapf(err, "%s", p.name)
	}

	p.fixedSeeds = ConvertSeed6(p.fixedSeedSpecs, time.Now())

	return p.validate()
}

// Overrides shared by the network definitions.

func withIdentity(id Network, net wire.GrimNet, port uint16) override {
	return func(p *Params) {
		p.id = id
		p.name = id.String()
		p.net = net
		p.defaultPort = port
	}
}

func withRPC(port uint16, dataDir string) override {
	return func(p *Params) {
		p.rpcPort = port
		p.dataDir = dataDir
	}
}

func withAlertPubKey(key []byte) override {
	return func(p *Params) { p.alertPubKey = key }
}

func withPowLimit(limit *big.Int, bits uint32) override {
	return func(p *Params) {
		p.powLimit = new(big.Int).Set(limit)
		p.powLimitBits = bits
	}
}

func withSubsidyHalvingInterval(interval int32) override {
	return func(p *Params) { p.subsidyHalvingInterval = interval }
}

func withMajorities(enforce, reject, window int32) override {
	return func(p *Params) {
		p.enforceBlockUpgradeMajority = enforce
		p.rejectBlockOutdatedMajority = reject
		p.toCheckBlockUpgradeMajority = window
	}
}

func withMinerThreads(n int) override {
	return func(p *Params) { p.minerThreads = n }
}

func withGenesis(opts GenesisBlockOpts, hash, merkleRoot chainhash.Hash) override {
	return func(p *Params) {
		p.genesisOpts = opts
		p.genesisWantHash = hash
		p.genesisWantMerkleRoot = merkleRoot
	}
}

func withCheckpoints(table []Checkpoint, lastTime int64, txCount uint64, txPerDay float64) override {
	return func(p *Params) {
		p.checkpointTable = table
		p.checkpointTime = time.Unix(lastTime, 0)
		p.checkpointTxCount = txCount
		p.checkpointTxRate = txPerDay
	}
}

func withBase58Prefixes(pubKey, script, secret byte, extPub, extSecret [4]byte) override {
	return func(p *Params) {
		p.base58Prefixes[PubKeyAddress] = []byte{pubKey}
		p.base58Prefixes[ScriptAddress] = []byte{script}
		p.base58Prefixes[SecretKey] = []byte{secret}
		p.base58Prefixes[ExtPublicKey] = extPub[:]
		p.base58Prefixes[ExtSecretKey] = extSecret[:]
	}
}

func withSeeds(fixed []SeedSpec6, dns []DNSSeed) override {
	return func(p *Params) {
		p.fixedSeedSpecs = fixed
		p.dnsSeeds = dns
	}
}

// flags sets every policy flag of a network at once.
type flags struct {
	requireRPCPassword            bool
	miningRequiresPeers           bool
	defaultCheckMemPool           bool
	allowMinDifficultyBlocks      bool
	requireStandard               bool
	mineBlocksOnDemand            bool
	skipProofOfWorkCheck          bool
	testnetToBeDeprecatedFieldRPC bool
}

func withFlags(f flags) override {
	return func(p *Params) {
		p.requireRPCPassword = f.requireRPCPassword
		p.miningRequiresPeers = f.miningRequiresPeers
		p.defaultCheckMemPool = f.defaultCheckMemPool
		p.allowMinDifficultyBlocks = f.allowMinDifficultyBlocks
		p.requireStandard = f.requireStandard
		p.mineBlocksOnDemand = f.mineBlocksOnDemand
		p.skipProofOfWorkCheck = f.skipProofOfWorkCheck
		p.testnetToBeDeprecatedFieldRPC = f.testnetToBeDeprecatedFieldRPC
	}
}
