// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrimlockdMain(t *testing.T) {
	dir := t.TempDir()

	err := grimlockdMain([]string{"--configfile=", "-b", dir, "--logdir", dir, "--nostdout", "-d", "debug", "--testnet"})
	require.NoError(t, err)
	assert.Equal(t, chaincfg.Testnet, chaincfg.ActiveParams().NetworkID())

	err = grimlockdMain([]string{"--configfile=", "-b", dir, "--logdir", dir, "--nostdout", "--testnet", "--regtest"})
	assert.Error(t, err)
}
