// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/Grim-lock/bitcoin/types/chainhash"
)

const (
	// MaxVarIntPayload is the maximum payload size for a variable length integer.
	MaxVarIntPayload = 9

	// MaxMessagePayload is the maximum bytes a message can be regardless of
	// other individual limits imposed by messages themselves.
	MaxMessagePayload = 1024 * 1024 * 32 // 32MB

	// errNonCanonicalVarInt is the common format string used for
	// non-canonically encoded variable length integer errors.
	errNonCanonicalVarInt = "non-canonical varint %x - discriminant %x must " +
		"encode a value greater than %x"
)

var littleEndian = binary.LittleEndian

// Uint32Time represents a unix timestamp encoded with a uint32.  It is used as
// a way to signal the readElement function how to decode a timestamp into a Go
// time.Time since it is otherwise ambiguous.
type Uint32Time time.Time

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	var buf [8]byte

	// Attempt to read the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case *uint8:
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return err
		}
		*e = buf[0]
		return nil

	case *int32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(buf[:4]))
		return nil

	case *uint32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(buf[:4])
		return nil

	case *int64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*e = int64(littleEndian.Uint64(buf[:8]))
		return nil

	case *uint64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*e = littleEndian.Uint64(buf[:8])
		return nil

	// Unix timestamp encoded as a uint32.
	case *Uint32Time:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = Uint32Time(time.Unix(int64(littleEndian.Uint32(buf[:4])), 0))
		return nil

	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err

	case *ServiceFlag:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*e = ServiceFlag(littleEndian.Uint64(buf[:8]))
		return nil

	case *GrimNet:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = GrimNet(littleEndian.Uint32(buf[:4]))
		return nil
	}

	// Fall back to the slower binary.Read if a fast path was not available
	// above.
	return binary.Read(r, littleEndian, element)
}

// ReadElements reads multiple items from r.  It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	var buf [8]byte

	// Attempt to write the element based on the concrete type via fast
	// type assertions first.
	switch e := element.(type) {
	case uint8:
		buf[0] = e
		_, err := w.Write(buf[:1])
		return err

	case int32:
		littleEndian.PutUint32(buf[:4], uint32(e))
		_, err := w.Write(buf[:4])
		return err

	case uint32:
		littleEndian.PutUint32(buf[:4], e)
		_, err := w.Write(buf[:4])
		return err

	case int64:
		littleEndian.PutUint64(buf[:8], uint64(e))
		_, err := w.Write(buf[:8])
		return err

	case uint64:
		littleEndian.PutUint64(buf[:8], e)
		_, err := w.Write(buf[:8])
		return err

	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err

	case ServiceFlag:
		littleEndian.PutUint64(buf[:8], uint64(e))
		_, err := w.Write(buf[:8])
		return err

	case GrimNet:
		littleEndian.PutUint32(buf[:4], uint32(e))
		_, err := w.Write(buf[:4])
		return err
	}

	// Fall back to the slower binary.Write if a fast path was not available
	// above.
	return binary.Write(w, littleEndian, element)
}

// WriteElements writes multiple items to w.  It is equivalent to multiple
// calls to WriteElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadVarInt reads a variable length integer from r and returns it as a uint64.
func ReadVarInt(r io.Reader) (uint64, error) {
	var discriminant uint8
	if err := ReadElement(r, &discriminant); err != nil {
		return 0, err
	}

	var rv uint64
	switch discriminant {
	case 0xff:
		if err := ReadElement(r, &rv); err != nil {
			return 0, err
		}

		// The encoding is not canonical if the value could have been
		// encoded using fewer bytes.
		min := uint64(0x100000000)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	case 0xfe:
		var sv uint32
		if err := ReadElement(r, &sv); err != nil {
			return 0, err
		}
		rv = uint64(sv)

		min := uint64(0x10000)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	case 0xfd:
		var sv uint16
		if err := ReadElement(r, &sv); err != nil {
			return 0, err
		}
		rv = uint64(sv)

		min := uint64(0xfd)
		if rv < min {
			return 0, messageError("ReadVarInt", fmt.Sprintf(
				errNonCanonicalVarInt, rv, discriminant, min))
		}

	default:
		rv = uint64(discriminant)
	}

	return rv, nil
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return WriteElement(w, uint8(val))

	case val <= 0xffff:
		if err := WriteElement(w, uint8(0xfd)); err != nil {
			return err
		}
		return binary.Write(w, littleEndian, uint16(val))

	case val <= 0xffffffff:
		if err := WriteElement(w, uint8(0xfe)); err != nil {
			return err
		}
		return WriteElement(w, uint32(val))

	default:
		if err := WriteElement(w, uint8(0xff)); err != nil {
			return err
		}
		return WriteElement(w, val)
	}
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// ReadVarBytes reads a variable length byte array.  A byte array is encoded
// as a varInt containing the length of the array followed by the bytes
// themselves.  An error is returned if the length is greater than the
// passed maxAllowed parameter which helps protect against memory exhaustion
// attacks and forced panics through malformed messages.  The fieldName
// parameter is only used for the error message so it provides more context in
// the error.
func ReadVarBytes(r io.Reader, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	// Prevent byte array larger than the max message size.  It would
	// be possible to cause memory exhaustion and panics without a sane
	// upper bound on this count.
	if count > uint64(maxAllowed) {
		str := fmt.Sprintf("%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, maxAllowed)
		return nil, messageError("ReadVarBytes", str)
	}

	b := make([]byte, count)
	_, err = io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes serializes a variable length byte array to w as a varInt
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	slen := uint64(len(bytes))
	err := WriteVarInt(w, slen)
	if err != nil {
		return err
	}

	_, err = w.Write(bytes)
	return err
}
