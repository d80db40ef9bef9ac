// Copyright (c) 2021 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagNetwork = "network"
	flagMessage = "message"
	flagPubKey  = "pubkey"
	flagTime    = "time"
	flagBits    = "bits"
	flagNonce   = "nonce"
	flagDump    = "dump"
	flagInput   = "in"
	flagName    = "name"
	flagCSV     = "csv"
)

var networkFlag = &cli.StringFlag{
	Name:    flagNetwork,
	Aliases: []string{"n"},
	Usage:   "network profile {main, test, regtest, unittest}",
	Value:   chaincfg.Main.String(),
}

func main() {
	app := &App{out: os.Stdout, in: os.Stdin}
	cliApp := &cli.App{
		Name:     "genesis-generator",
		Usage:    "offline tooling for network parameters",
		Commands: app.getCommands(),
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	out io.Writer
	in  io.Reader
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:  "mine",
			Usage: "search a nonce for a genesis block, defaults come from the selected network",
			Flags: []cli.Flag{
				networkFlag,
				&cli.StringFlag{Name: flagMessage, Usage: "timestamp message of the coinbase"},
				&cli.StringFlag{Name: flagPubKey, Usage: "hex-encoded public key paid by the coinbase"},
				&cli.Int64Flag{Name: flagTime, Usage: "unix timestamp of the block, 0 means now"},
				&cli.Uint64Flag{Name: flagBits, Usage: "compact target, 0 means the network limit"},
				&cli.Uint64Flag{Name: flagNonce, Usage: "first nonce to try"},
				&cli.BoolFlag{Name: flagDump, Usage: "dump the mined block"},
			},
			Action: app.mineCmd,
		},
		{
			Name:  "seeds",
			Usage: "convert a host[:port] list into a fixed seed table",
			Flags: []cli.Flag{
				networkFlag,
				&cli.StringFlag{Name: flagInput, Usage: "seed list file, stdin when empty"},
				&cli.StringFlag{Name: flagName, Usage: "name of the table", Value: "fixedSeeds"},
			},
			Action: app.seedsCmd,
		},
		{
			Name:  "checkpoints",
			Usage: "print a checkpoint table as Go source or CSV",
			Flags: []cli.Flag{
				networkFlag,
				&cli.StringFlag{Name: flagInput, Usage: "height,hash CSV file to convert instead of the network table"},
				&cli.BoolFlag{Name: flagCSV, Usage: "write CSV instead of Go source"},
			},
			Action: app.checkpointsCmd,
		},
		{
			Name:   "params",
			Usage:  "print the parameters of a network as YAML",
			Flags:  []cli.Flag{networkFlag, &cli.BoolFlag{Name: flagDump, Usage: "also dump the genesis block"}},
			Action: app.paramsCmd,
		},
	}
}

func networkParams(c *cli.Context) (*chaincfg.Params, error) {
	net, err := chaincfg.ParseNetwork(c.String(flagNetwork))
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return chaincfg.ParamsFor(net), nil
}

func (app *App) mineCmd(c *cli.Context) error {
	params, err := networkParams(c)
	if err != nil {
		return err
	}

	opts, err := genesisOptsOf(params)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if msg := c.String(flagMessage); msg != "" {
		opts.TimestampMessage = msg
	}
	if pubKey := c.String(flagPubKey); pubKey != "" {
		opts.OutputPubKey, err = hex.DecodeString(pubKey)
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "invalid public key"), 1)
		}
	}

	opts.Timestamp = time.Now()
	if ts := c.Int64(flagTime); ts != 0 {
		opts.Timestamp = time.Unix(ts, 0)
	}
	bits, nonce := c.Uint64(flagBits), c.Uint64(flagNonce)
	if bits > math.MaxUint32 {
		return cli.NewExitError(fmt.Errorf("bits %d overflows 32 bits", bits), 1)
	}
	if nonce > math.MaxUint32 {
		return cli.NewExitError(fmt.Errorf("nonce %d overflows 32 bits", nonce), 1)
	}
	opts.Bits = params.PowLimitBits()
	if bits != 0 {
		opts.Bits = uint32(bits)
	}
	opts.Nonce = uint32(nonce)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	started := time.Now()
	block, err := mineGenesis(ctx, opts, params.PowLimit())
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "genesis search failed"), 1)
	}

	if c.Bool(flagDump) {
		spew.Fdump(app.out, block)
	}

	fmt.Fprintf(app.out, "network:     %s\n", params.Name())
	fmt.Fprintf(app.out, "hash:        %s\n", block.BlockHash())
	fmt.Fprintf(app.out, "merkle root: %s\n", block.Header.MerkleRoot)
	fmt.Fprintf(app.out, "time:        %d\n", block.Header.Timestamp.Unix())
	fmt.Fprintf(app.out, "bits:        0x%08x\n", block.Header.Bits)
	fmt.Fprintf(app.out, "nonce:       %d\n", block.Header.Nonce)
	fmt.Fprintf(app.out, "elapsed:     %s\n", time.Since(started).Round(time.Millisecond))
	return nil
}

func (app *App) openInput(c *cli.Context) (io.ReadCloser, error) {
	path := c.String(flagInput)
	if path == "" {
		return io.NopCloser(app.in), nil
	}
	return os.Open(path)
}

func (app *App) seedsCmd(c *cli.Context) error {
	params, err := networkParams(c)
	if err != nil {
		return err
	}

	in, err := app.openInput(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer in.Close()

	specs, err := parseSeedSpecs(in, params.DefaultPort())
	if err != nil {
		return cli.NewExitError(errors.Wrap(err, "invalid seed list"), 1)
	}

	return writeSeedTable(app.out, c.String(flagName), specs)
}

func (app *App) checkpointsCmd(c *cli.Context) error {
	params, err := networkParams(c)
	if err != nil {
		return err
	}

	checkpoints := params.Checkpoints().Checkpoints()
	if c.String(flagInput) != "" {
		in, err := app.openInput(c)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer in.Close()

		checkpoints, err = readCheckpoints(in)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if c.Bool(flagCSV) {
		return writeCheckpointsCSV(app.out, checkpoints)
	}
	return writeCheckpointTable(app.out, checkpoints)
}

func (app *App) paramsCmd(c *cli.Context) error {
	params, err := networkParams(c)
	if err != nil {
		return err
	}

	if err := writeParamsYAML(app.out, params); err != nil {
		return cli.NewExitError(err, 1)
	}

	if c.Bool(flagDump) {
		spew.Fdump(app.out, params.GenesisBlock())
	}
	return nil
}
