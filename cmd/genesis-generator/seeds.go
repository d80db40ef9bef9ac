// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/pkg/errors"
)

// parseSeedSpecs reads one host[:port] per line from r.  Blank lines and
// lines starting with # are skipped, a missing port means defaultPort.
func parseSeedSpecs(r io.Reader, defaultPort uint16) ([]chaincfg.SeedSpec6, error) {
	var specs []chaincfg.SeedSpec6

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		spec, err := parseSeedSpec(text, defaultPort)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		specs = append(specs, spec)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}

func parseSeedSpec(text string, defaultPort uint16) (chaincfg.SeedSpec6, error) {
	host, port := text, defaultPort

	if h, p, err := net.SplitHostPort(text); err == nil {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return chaincfg.SeedSpec6{}, errors.Errorf("invalid port %q", p)
		}
		host, port = h, uint16(n)
	}

	ip := net.ParseIP(strings.Trim(host, "[]"))
	if ip == nil {
		return chaincfg.SeedSpec6{}, errors.Errorf("invalid address %q", host)
	}

	spec := chaincfg.SeedSpec6{Port: port}
	copy(spec.Addr[:], ip.To16())
	return spec, nil
}

// writeSeedTable writes specs as a Go slice literal named name.
func writeSeedTable(w io.Writer, name string, specs []chaincfg.SeedSpec6) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "var %s = []SeedSpec6{\n", name)
	for _, spec := range specs {
		octets := make([]string, len(spec.Addr))
		for i, b := range spec.Addr {
			octets[i] = fmt.Sprintf("0x%02x", b)
		}
		fmt.Fprintf(bw, "\t{Addr: [16]byte{%s}, Port: %d},\n", strings.Join(octets, ", "), spec.Port)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
