package main

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/wippyai/unicode-conv/codec"
	"github.com/wippyai/unicode-conv/utf16bytes"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// convertData converts a byte stream between the named encodings. The source
// is first brought to UTF-8, then re-encoded to the destination, so every
// UTF-16 leg goes through the codec's strict validation.
func convertData(data []byte, from, to string, withBOM bool) ([]byte, error) {
	utf8Data, err := decodeSource(data, from)
	if err != nil {
		return nil, err
	}
	return encodeDest(utf8Data, to, withBOM)
}

func decodeSource(data []byte, from string) ([]byte, error) {
	switch from {
	case "utf8":
		return data, nil

	case "auto":
		switch {
		case bytes.HasPrefix(data, utf8BOM):
			return data[3:], nil
		case hasUTF16BOM(data):
			units, _, err := utf16bytes.DecodeDetect(data)
			if err != nil {
				return nil, err
			}
			return codec.ToUTF8(units)
		default:
			// no mark, assume UTF-8
			return data, nil
		}

	case "utf16le", "utf16be":
		units, err := utf16bytes.Decode(data, byteOrder(from))
		if err != nil {
			return nil, err
		}
		if len(units) > 0 && units[0] == utf16bytes.BOM {
			units = units[1:]
		}
		return codec.ToUTF8(units)

	default:
		return nil, fmt.Errorf("unknown source encoding %q", from)
	}
}

func encodeDest(utf8Data []byte, to string, withBOM bool) ([]byte, error) {
	switch to {
	case "utf8":
		if withBOM {
			return append(append([]byte{}, utf8BOM...), utf8Data...), nil
		}
		return utf8Data, nil

	case "utf16le", "utf16be":
		units, err := codec.ToUTF16(utf8Data)
		if err != nil {
			return nil, err
		}
		return utf16bytes.Encode(units, byteOrder(to), withBOM), nil

	default:
		return nil, fmt.Errorf("unknown destination encoding %q", to)
	}
}

func hasUTF16BOM(data []byte) bool {
	return len(data) >= 2 &&
		(data[0] == 0xff && data[1] == 0xfe || data[0] == 0xfe && data[1] == 0xff)
}

func byteOrder(encoding string) binary.ByteOrder {
	if encoding == "utf16be" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
