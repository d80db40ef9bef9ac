// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func TestParseSeedSpecs(t *testing.T) {
	input := `
# operators
192.0.2.10
198.51.100.20:8333
[2001:db8::28]:18444

2001:db8::29
`
	specs, err := parseSeedSpecs(strings.NewReader(input), 18333)
	require.NoError(t, err)
	require.Len(t, specs, 4)

	assert.Equal(t, [16]byte{10: 0xff, 11: 0xff, 12: 192, 13: 0, 14: 2, 15: 10}, specs[0].Addr)
	assert.EqualValues(t, 18333, specs[0].Port)
	assert.EqualValues(t, 8333, specs[1].Port)
	assert.Equal(t, byte(0x20), specs[2].Addr[0])
	assert.Equal(t, byte(0x28), specs[2].Addr[15])
	assert.EqualValues(t, 18444, specs[2].Port)
	assert.EqualValues(t, 18333, specs[3].Port)
}

func TestParseSeedSpecsErrors(t *testing.T) {
	for _, input := range []string{"seed.example.org", "192.0.2.1:99999", "192.0.2.1:port"} {
		_, err := parseSeedSpecs(strings.NewReader(input), 1)
		assert.Error(t, err, input)
	}
}

func TestWriteSeedTable(t *testing.T) {
	var buf bytes.Buffer
	specs := []chaincfg.SeedSpec6{{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 1, 13: 2, 14: 3, 15: 4}, Port: 8333}}
	require.NoError(t, writeSeedTable(&buf, "mainSeeds", specs))

	want := "var mainSeeds = []SeedSpec6{\n" +
		"\t{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x01, 0x02, 0x03, 0x04}, Port: 8333},\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestCheckpointsCSVRoundTrip(t *testing.T) {
	checkpoints := chaincfg.ParamsFor(chaincfg.Main).Checkpoints().Checkpoints()

	var buf bytes.Buffer
	require.NoError(t, writeCheckpointsCSV(&buf, checkpoints))
	assert.True(t, strings.HasPrefix(buf.String(), "height,hash\n"))

	decoded, err := readCheckpoints(&buf)
	require.NoError(t, err)
	assert.Equal(t, checkpoints, decoded)
}

func TestReadCheckpointsErrors(t *testing.T) {
	genesis := chaincfg.ParamsFor(chaincfg.Main).GenesisHash().String()

	tests := map[string]string{
		"bad hash":     "height,hash\n0,zz\n",
		"no genesis":   "height,hash\n5," + genesis + "\n",
		"out of order": "height,hash\n0," + genesis + "\n9," + genesis + "\n3," + genesis + "\n",
	}
	for name, input := range tests {
		_, err := readCheckpoints(strings.NewReader(input))
		assert.Error(t, err, name)
	}
}

func TestWriteCheckpointTable(t *testing.T) {
	var buf bytes.Buffer
	genesis := chaincfg.ParamsFor(chaincfg.Regtest).GenesisHash()
	require.NoError(t, writeCheckpointTable(&buf, []chaincfg.Checkpoint{{Height: 0, Hash: genesis}}))
	assert.Equal(t, "[]Checkpoint{\n\t{Height: 0, Hash: newHashFromStr(\""+genesis.String()+"\")},\n}\n", buf.String())
}

func TestWriteParamsYAML(t *testing.T) {
	params := chaincfg.ParamsFor(chaincfg.Testnet)

	var buf bytes.Buffer
	require.NoError(t, writeParamsYAML(&buf, params))

	var view paramsView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, params.Name(), view.Name)
	assert.Equal(t, params.DefaultPort(), view.DefaultPort)
	assert.Equal(t, params.GenesisHash().String(), view.Genesis.Hash)
	assert.Equal(t, params.TargetTimespan(), view.Consensus.TargetTimespan)
	assert.Len(t, view.Base58, len(chaincfg.Base58Types()))
	assert.Len(t, view.FixedSeeds, len(params.FixedSeeds()))
	assert.True(t, view.Flags["allow_min_difficulty_blocks"])
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	exiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	defer func() { cli.OsExiter = exiter }()

	var out bytes.Buffer
	app := &App{out: &out, in: strings.NewReader(stdin)}
	cliApp := &cli.App{Name: "genesis-generator", Commands: app.getCommands()}
	err := cliApp.Run(append([]string{"genesis-generator"}, args...))
	return out.String(), err
}

func TestAppCommands(t *testing.T) {
	regtest := chaincfg.ParamsFor(chaincfg.Regtest)

	out, err := runApp(t, "", "mine", "-n", "regtest", "--time", "1516949303", "--nonce", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "hash:        "+regtest.GenesisHash().String())
	assert.Contains(t, out, "nonce:       3")

	out, err = runApp(t, "192.0.2.10\n", "seeds", "-n", "test", "--name", "testSeeds")
	require.NoError(t, err)
	assert.Contains(t, out, "var testSeeds = []SeedSpec6{")
	assert.Contains(t, out, "Port: 18333}")

	out, err = runApp(t, "", "checkpoints", "-n", "regtest", "--csv")
	require.NoError(t, err)
	assert.Equal(t, "height,hash\n0,"+regtest.GenesisHash().String()+"\n", out)

	out, err = runApp(t, "", "params", "-n", "unittest")
	require.NoError(t, err)
	assert.Contains(t, out, "name: unittest")

	_, err = runApp(t, "", "params", "-n", "simnet")
	assert.Error(t, err)
}

func TestMineRejectsWideHeaderFields(t *testing.T) {
	for _, flag := range []string{"--bits", "--nonce"} {
		out, err := runApp(t, "", "mine", "-n", "regtest", "--time", "1516949303",
			flag, "4294967296")
		require.Error(t, err, flag)
		assert.Contains(t, err.Error(), "overflow", flag)
		assert.Empty(t, out, flag)
	}

	out, err := runApp(t, "", "mine", "-n", "regtest", "--time", "1516949303",
		"--nonce", "4294967295", "--bits", "545259519")
	require.NoError(t, err)
	assert.Contains(t, out, "bits:        0x207fffff")
}
