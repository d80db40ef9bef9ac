// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/Grim-lock/bitcoin/types/wire"
)

// SeedSpec6 is a fixed seed node address in IPv6 notation; IPv4 nodes use the
// IPv4-mapped form.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a human-readable label of the seed operator.
	Name string
	// Host is the seed host name.
	Host string
}

// String returns the host of the seed.
func (d DNSSeed) String() string {
	return d.Host
}

// ConvertSeed6 turns fixed seed specs into network addresses advertising a
// full node.  Each address is given a random last-seen time between one and
// two weeks before now.
func ConvertSeed6(specs []SeedSpec6, now time.Time) []*wire.NetAddress {
	return convertSeed6(specs, now, rand.Int63n)
}

// convertSeed6 is ConvertSeed6 with an injectable source of randomness.  draw
// must return a value in [0, n).
func convertSeed6(specs []SeedSpec6, now time.Time, draw func(n int64) int64) []*wire.NetAddress {
	weekSecs := int64(oneWeek / time.Second)

	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		lastSeen := now.Unix() - draw(weekSecs) - weekSecs
		addrs = append(addrs, wire.NewNetAddressTimestamp(time.Unix(lastSeen, 0),
			wire.SFNodeNetwork, ip, spec.Port))
	}
	return addrs
}

// testNetSeeds is the fixed seed table of the test network.  It is generated
// with `genesis-generator seeds`.
var testNetSeeds = []SeedSpec6{
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xc0, 0x00, 0x02, 0x0a}, Port: 18333},
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xc6, 0x33, 0x64, 0x14}, Port: 18333},
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xcb, 0x00, 0x71, 0x1e}, Port: 18333},
	{Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x28}, Port: 18333},
}
