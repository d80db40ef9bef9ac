// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Grim-lock/bitcoin/config"
	"github.com/Grim-lock/bitcoin/types/chaincfg"
)

func main() {
	// Work around defer not working after os.Exit()
	if err := grimlockdMain(os.Args[1:]); err != nil {
		fmt.Println("FATAL:", err)
		os.Exit(1)
	}
}

// grimlockdMain loads the configuration, which selects the network, and
// reports the parameters the node runs with.
func grimlockdMain(args []string) error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	_, _, err := config.LoadConfig(args)
	if err != nil {
		return err
	}

	params := chaincfg.ActiveParams()
	log := config.Log

	start := params.MessageStart()
	log.Infof("Network %s: magic %x, p2p port %d, rpc port %d",
		params.Name(), start, params.DefaultPort(), params.RPCPort())
	log.Infof("Genesis block %s (merkle root %s)", params.GenesisHash(), params.GenesisMerkleRoot())
	log.Infof("Proof of work limit 0x%08x, retarget every %d blocks, halving every %d blocks",
		params.PowLimitBits(), params.DifficultyAdjustmentInterval(), params.SubsidyHalvingInterval())

	checkpoints := params.Checkpoints()
	latest := checkpoints.LatestCheckpoint()
	log.Infof("%d checkpoints, latest %d (%s)", len(checkpoints.Checkpoints()), latest.Height, latest.Hash)
	log.Infof("Estimated verification progress at genesis: %.6f",
		checkpoints.GuessVerificationProgress(0, params.GenesisBlock().Header.Timestamp, time.Now()))

	for _, seed := range params.DNSSeeds() {
		log.Debugf("DNS seed %s (%s)", seed.Name, seed)
	}
	for _, addr := range params.FixedSeeds() {
		log.Debugf("Fixed seed %s, last seen %s", addr.Key(), addr.Timestamp)
	}
	log.Infof("%d DNS seeds, %d fixed seeds", len(params.DNSSeeds()), len(params.FixedSeeds()))

	return nil
}
