// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// GrimNet represents which network a message belongs to.  On the wire it is
// written little endian, so its serialized form is the 4-byte message start
// marker of the network.
type GrimNet uint32

// Constants used to indicate the message network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network, message start f9 be b4 d9.
	MainNet GrimNet = 0xd9b4bef9

	// TestNet represents the public test network, message start 0b 11 09 07.
	TestNet GrimNet = 0x0709110b

	// RegTest represents the regression test network, message start
	// fa bf b5 da.
	RegTest GrimNet = 0xdab5bffa
)

// bnStrings is a map of networks back to their constant names for
// pretty printing.
var bnStrings = map[GrimNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// NetFromMessageStart returns the network whose serialized form is the
// passed message start marker.
func NetFromMessageStart(start [4]byte) GrimNet {
	return GrimNet(binary.LittleEndian.Uint32(start[:]))
}

// MessageStart returns the 4-byte marker prefixed to every message of the
// network.
func (n GrimNet) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(n))
	return start
}

// String returns the GrimNet in human-readable form.
func (n GrimNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown GrimNet (%d)", uint32(n))
}
