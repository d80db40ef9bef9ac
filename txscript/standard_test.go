// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

const genesisPubKeyHex = "0401d6461fece0b03f683c0b73d520ef6a80dd918b1c49072b5179c56d40feb9ee3f64" +
	"aa9668f5bbecf38c05db9ad7e8828e6932c059b736796bbe6ca1340312d8"

func TestPayToPubKeyScript(t *testing.T) {
	pubKey := hexToBytes(genesisPubKeyHex)
	script, err := PayToPubKeyScript(pubKey)
	require.NoError(t, err)

	assert.Equal(t, "41"+genesisPubKeyHex+"ac", hex.EncodeToString(script))
	assert.Equal(t, PubKeyTy, GetScriptClass(script))
	assert.Equal(t, pubKey, ExtractPubKey(script))
}

func TestGetScriptClass(t *testing.T) {
	tests := []struct {
		name   string
		script []byte
		class  ScriptClass
	}{
		{
			name:   "compressed pubkey",
			script: append(append([]byte{0x21}, bytes.Repeat([]byte{0x02}, 33)...), OP_CHECKSIG),
			class:  PubKeyTy,
		},
		{
			name:   "pubkey of wrong length",
			script: append(append([]byte{0x20}, bytes.Repeat([]byte{0x02}, 32)...), OP_CHECKSIG),
			class:  NonStandardTy,
		},
		{
			name:   "bare OP_RETURN",
			script: []byte{OP_RETURN},
			class:  NullDataTy,
		},
		{
			name:   "OP_RETURN with small int",
			script: []byte{OP_RETURN, OP_16},
			class:  NullDataTy,
		},
		{
			name:   "OP_RETURN with data",
			script: []byte{OP_RETURN, OP_DATA_1, 0x11},
			class:  NullDataTy,
		},
		{
			name:   "malformed push",
			script: []byte{OP_PUSHDATA1, 0x05, 0x01},
			class:  NonStandardTy,
		},
		{
			name:   "empty",
			script: nil,
			class:  NonStandardTy,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.class, GetScriptClass(test.script), test.name)
	}
}

func TestScriptClassString(t *testing.T) {
	assert.Equal(t, "nonstandard", NonStandardTy.String())
	assert.Equal(t, "pubkey", PubKeyTy.String())
	assert.Equal(t, "nulldata", NullDataTy.String())
	assert.Equal(t, "Invalid", ScriptClass(200).String())
}

func TestParseScriptMalformed(t *testing.T) {
	tests := []struct {
		name   string
		script []byte
	}{
		{name: "OP_DATA_2 short", script: []byte{0x02, 0x01}},
		{name: "OP_PUSHDATA1 no length", script: []byte{OP_PUSHDATA1}},
		{name: "OP_PUSHDATA2 short length", script: []byte{OP_PUSHDATA2, 0x01}},
		{name: "OP_PUSHDATA4 short length", script: []byte{OP_PUSHDATA4, 0x01, 0x00}},
		{name: "OP_PUSHDATA4 short data", script: []byte{OP_PUSHDATA4, 0x02, 0x00, 0x00, 0x00, 0x01}},
	}

	for _, test := range tests {
		_, err := parseScript(test.script)
		assert.True(t, IsErrorCode(err, ErrMalformedPush), test.name)
	}
}

func TestPushedData(t *testing.T) {
	script := []byte{OP_0, OP_DATA_1, 0x11, OP_16, OP_PUSHDATA1, 0x02, 0xaa, 0xbb}
	data, err := PushedData(script)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{nil, {0x11}, {0xaa, 0xbb}}, data)

	_, err = PushedData([]byte{OP_DATA_75})
	assert.Error(t, err)
}

func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrInternal, "ErrInternal"},
		{ErrMalformedPush, "ErrMalformedPush"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	require.Equal(t, int(numErrorCodes), len(tests)-1)

	for _, test := range tests {
		assert.Equal(t, test.want, test.in.String())
	}
}
