// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"gopkg.in/yaml.v3"
)

// paramsView is the YAML representation of a network profile.
type paramsView struct {
	Name         string            `yaml:"name"`
	Net          string            `yaml:"net"`
	MessageStart string            `yaml:"message_start"`
	DefaultPort  uint16            `yaml:"default_port"`
	RPCPort      uint16            `yaml:"rpc_port"`
	DataDir      string            `yaml:"data_dir"`
	AlertPubKey  string            `yaml:"alert_pub_key"`
	PowLimit     string            `yaml:"pow_limit"`
	PowLimitBits string            `yaml:"pow_limit_bits"`
	Consensus    consensusView     `yaml:"consensus"`
	Genesis      genesisView       `yaml:"genesis"`
	Checkpoints  []checkpointRow   `yaml:"checkpoints"`
	Base58       map[string]string `yaml:"base58_prefixes"`
	FixedSeeds   []string          `yaml:"fixed_seeds,omitempty"`
	DNSSeeds     []string          `yaml:"dns_seeds,omitempty"`
	Flags        map[string]bool   `yaml:"flags"`
}

type consensusView struct {
	SubsidyHalvingInterval       int32         `yaml:"subsidy_halving_interval"`
	EnforceBlockUpgradeMajority  int32         `yaml:"enforce_block_upgrade_majority"`
	RejectBlockOutdatedMajority  int32         `yaml:"reject_block_outdated_majority"`
	ToCheckBlockUpgradeMajority  int32         `yaml:"to_check_block_upgrade_majority"`
	TargetTimespan               time.Duration `yaml:"target_timespan"`
	TargetSpacing                time.Duration `yaml:"target_spacing"`
	DifficultyAdjustmentInterval int64         `yaml:"difficulty_adjustment_interval"`
	MinerThreads                 int           `yaml:"miner_threads"`
}

type genesisView struct {
	Hash       string `yaml:"hash"`
	MerkleRoot string `yaml:"merkle_root"`
	Time       int64  `yaml:"time"`
	Bits       string `yaml:"bits"`
	Nonce      uint32 `yaml:"nonce"`
}

func newParamsView(p *chaincfg.Params) paramsView {
	genesis := p.GenesisBlock()
	start := p.MessageStart()

	view := paramsView{
		Name:         p.Name(),
		Net:          p.Net().String(),
		MessageStart: hex.EncodeToString(start[:]),
		DefaultPort:  p.DefaultPort(),
		RPCPort:      p.RPCPort(),
		DataDir:      p.DataDir(),
		AlertPubKey:  hex.EncodeToString(p.AlertPubKey()),
		PowLimit:     fmt.Sprintf("%064x", p.PowLimit()),
		PowLimitBits: fmt.Sprintf("0x%08x", p.PowLimitBits()),
		Consensus: consensusView{
			SubsidyHalvingInterval:       p.SubsidyHalvingInterval(),
			EnforceBlockUpgradeMajority:  p.EnforceBlockUpgradeMajority(),
			RejectBlockOutdatedMajority:  p.RejectBlockOutdatedMajority(),
			ToCheckBlockUpgradeMajority:  p.ToCheckBlockUpgradeMajority(),
			TargetTimespan:               p.TargetTimespan(),
			TargetSpacing:                p.TargetSpacing(),
			DifficultyAdjustmentInterval: p.DifficultyAdjustmentInterval(),
			MinerThreads:                 p.MinerThreads(),
		},
		Genesis: genesisView{
			Hash:       p.GenesisHash().String(),
			MerkleRoot: p.GenesisMerkleRoot().String(),
			Time:       genesis.Header.Timestamp.Unix(),
			Bits:       fmt.Sprintf("0x%08x", genesis.Header.Bits),
			Nonce:      genesis.Header.Nonce,
		},
		Base58: make(map[string]string),
		Flags: map[string]bool{
			"require_rpc_password":               p.RequireRPCPassword(),
			"mining_requires_peers":              p.MiningRequiresPeers(),
			"default_check_mem_pool":             p.DefaultCheckMemPool(),
			"allow_min_difficulty_blocks":        p.AllowMinDifficultyBlocks(),
			"require_standard":                   p.RequireStandard(),
			"mine_blocks_on_demand":              p.MineBlocksOnDemand(),
			"skip_proof_of_work_check":           p.SkipProofOfWorkCheck(),
			"testnet_to_be_deprecated_field_rpc": p.TestnetToBeDeprecatedFieldRPC(),
		},
	}

	for _, row := range toCheckpointRows(p.Checkpoints().Checkpoints()) {
		view.Checkpoints = append(view.Checkpoints, *row)
	}
	for _, t := range chaincfg.Base58Types() {
		view.Base58[t.String()] = hex.EncodeToString(p.Base58Prefix(t))
	}
	for _, addr := range p.FixedSeeds() {
		view.FixedSeeds = append(view.FixedSeeds, addr.Key())
	}
	for _, seed := range p.DNSSeeds() {
		view.DNSSeeds = append(view.DNSSeeds, seed.String())
	}

	return view
}

func writeParamsYAML(w io.Writer, p *chaincfg.Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newParamsView(p)); err != nil {
		return err
	}
	return enc.Close()
}
