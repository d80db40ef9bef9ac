// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"fmt"
)

// These constants are the values of the opcodes used by the script builder
// and the standard script templates.
const (
	OP_0             = 0x00 // 0
	OP_FALSE         = 0x00 // 0 - AKA OP_0
	OP_DATA_1        = 0x01 // 1
	OP_DATA_75       = 0x4b // 75
	OP_PUSHDATA1     = 0x4c // 76
	OP_PUSHDATA2     = 0x4d // 77
	OP_PUSHDATA4     = 0x4e // 78
	OP_1NEGATE       = 0x4f // 79
	OP_1             = 0x51 // 81 - AKA OP_TRUE
	OP_TRUE          = 0x51 // 81
	OP_2             = 0x52 // 82
	OP_16            = 0x60 // 96
	OP_RETURN        = 0x6a // 106
	OP_DUP           = 0x76 // 118
	OP_EQUAL         = 0x87 // 135
	OP_EQUALVERIFY   = 0x88 // 136
	OP_HASH160       = 0xa9 // 169
	OP_CHECKSIG      = 0xac // 172
	OP_CHECKMULTISIG = 0xae // 174
)

// parsedOpcode represents an opcode that has been parsed and includes any
// potential data associated with it.
type parsedOpcode struct {
	opcode byte
	data   []byte
}

// isPush reports whether the opcode pushes data (including the small
// integer opcodes) onto the stack.
func (pop *parsedOpcode) isPush() bool {
	return pop.opcode <= OP_16 && pop.opcode != 0x50
}

// parseScript preparses the script in bytes into a list of parsedOpcodes
// while applying a number of sanity checks.
func parseScript(script []byte) ([]parsedOpcode, error) {
	retScript := make([]parsedOpcode, 0, len(script))
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var dataLen int
		switch {
		case op >= OP_DATA_1 && op <= OP_DATA_75:
			dataLen = int(op)

		case op == OP_PUSHDATA1:
			if len(script[i:]) < 1 {
				return retScript, scriptError(ErrMalformedPush,
					fmt.Sprintf("opcode OP_PUSHDATA1 requires 1 byte, script has %d", len(script[i:])))
			}
			dataLen = int(script[i])
			i++

		case op == OP_PUSHDATA2:
			if len(script[i:]) < 2 {
				return retScript, scriptError(ErrMalformedPush,
					fmt.Sprintf("opcode OP_PUSHDATA2 requires 2 bytes, script has %d", len(script[i:])))
			}
			dataLen = int(binary.LittleEndian.Uint16(script[i:]))
			i += 2

		case op == OP_PUSHDATA4:
			if len(script[i:]) < 4 {
				return retScript, scriptError(ErrMalformedPush,
					fmt.Sprintf("opcode OP_PUSHDATA4 requires 4 bytes, script has %d", len(script[i:])))
			}
			dataLen = int(binary.LittleEndian.Uint32(script[i:]))
			i += 4
		}

		if dataLen > len(script[i:]) {
			return retScript, scriptError(ErrMalformedPush,
				fmt.Sprintf("opcode 0x%02x pushes %d bytes, but script only has %d remaining",
					op, dataLen, len(script[i:])))
		}

		pop := parsedOpcode{opcode: op}
		if dataLen > 0 {
			pop.data = script[i : i+dataLen]
			i += dataLen
		}
		retScript = append(retScript, pop)
	}

	return retScript, nil
}
