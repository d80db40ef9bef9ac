// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/Grim-lock/bitcoin/types/chainhash"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

var zeroTime time.Time

type checkpointRow struct {
	Height int32  `csv:"height"`
	Hash   string `csv:"hash"`
}

func toCheckpointRows(checkpoints []chaincfg.Checkpoint) []*checkpointRow {
	rows := make([]*checkpointRow, len(checkpoints))
	for i, c := range checkpoints {
		rows[i] = &checkpointRow{Height: c.Height, Hash: c.Hash.String()}
	}
	return rows
}

// readCheckpoints decodes a height,hash CSV table and checks it is ordered the
// way a network checkpoint table must be.
func readCheckpoints(r io.Reader) ([]chaincfg.Checkpoint, error) {
	var rows []*checkpointRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Wrap(err, "can't decode checkpoints")
	}

	checkpoints := make([]chaincfg.Checkpoint, len(rows))
	for i, row := range rows {
		hash, err := chainhash.NewHashFromStr(row.Hash)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint %d", row.Height)
		}
		checkpoints[i] = chaincfg.Checkpoint{Height: row.Height, Hash: *hash}
	}

	data, err := chaincfg.NewCheckpointData(checkpoints, zeroTime, 0, 0)
	if err != nil {
		return nil, err
	}
	return data.Checkpoints(), nil
}

func writeCheckpointsCSV(w io.Writer, checkpoints []chaincfg.Checkpoint) error {
	return gocsv.Marshal(toCheckpointRows(checkpoints), w)
}

// writeCheckpointTable writes checkpoints as a Go slice literal.
func writeCheckpointTable(w io.Writer, checkpoints []chaincfg.Checkpoint) error {
	if _, err := fmt.Fprintln(w, "[]Checkpoint{"); err != nil {
		return err
	}
	for _, c := range checkpoints {
		_, err := fmt.Fprintf(w, "\t{Height: %d, Hash: newHashFromStr(\"%s\")},\n", c.Height, c.Hash)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
