// Package utf16bytes serializes UTF-16 code units to and from byte streams.
//
// UTF-16 text in files and wire formats is a byte stream with an endianness
// and an optional byte order mark. This package converts between that form
// and the []uint16 code-unit form the codec package operates on. It performs
// no validation of the code units themselves; ill-formed UTF-16 round-trips
// unchanged.
package utf16bytes

import (
	"encoding/binary"
	"errors"
)

// BOM is the byte order mark code unit U+FEFF.
const BOM = 0xfeff

// ErrOddLength is returned when a byte stream cannot be UTF-16 because its
// length is not a multiple of two.
var ErrOddLength = errors.New("utf16bytes: byte length is not a multiple of 2")

// Encode serializes code units in the given byte order.
// When withBOM is set, a byte order mark is prepended.
func Encode(units []uint16, order binary.ByteOrder, withBOM bool) []byte {
	size := len(units) * 2
	if withBOM {
		size += 2
	}

	buf := make([]byte, size)
	off := 0
	if withBOM {
		order.PutUint16(buf, BOM)
		off = 2
	}
	for i, u := range units {
		order.PutUint16(buf[off+2*i:], u)
	}
	return buf
}

// Decode deserializes a byte stream of the given byte order into code units.
// A leading byte order mark is not stripped.
func Decode(data []byte, order binary.ByteOrder) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	if len(data) == 0 {
		return nil, nil
	}

	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = order.Uint16(data[2*i:])
	}
	return units, nil
}

// DecodeDetect deserializes a byte stream, detecting the byte order from a
// leading byte order mark and stripping it. Streams without a mark are
// treated as little endian, the Windows convention.
func DecodeDetect(data []byte) ([]uint16, binary.ByteOrder, error) {
	order := binary.ByteOrder(binary.LittleEndian)
	switch {
	case len(data) >= 2 && data[0] == 0xff && data[1] == 0xfe:
		data = data[2:]
	case len(data) >= 2 && data[0] == 0xfe && data[1] == 0xff:
		order = binary.BigEndian
		data = data[2:]
	}

	units, err := Decode(data, order)
	if err != nil {
		return nil, nil, err
	}
	return units, order, nil
}
