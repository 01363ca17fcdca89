package isobmff

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/simonhull/mediadissect/internal/textenc"
	"github.com/simonhull/mediadissect/internal/types"
)

// decodeItunesData decodes the payload of an iTunes data box. The item
// name selects the trkn and disk tuple layouts, which ride on the
// implicit and unsigned integer type tags.
//
// Layout: version (1 byte), type tag (3 bytes, low byte selects the
// value encoding), reserved (4 bytes), value.
func decodeItunesData(itemType string, data []byte) (*types.ItunesData, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("iTunes data box too short")
	}

	flags := uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	dataType := types.ItunesDataType(flags & 0xFF)
	payload := data[8:]

	d := &types.ItunesData{Type: dataType}

	switch dataType {
	case types.ItunesTypeImplicit:
		if numbered, ok := decodeItemNumber(itemType, payload); ok {
			d.Value = numbered
			return d, nil
		}
		d.Value = &types.ItunesText{Text: textenc.LossyUTF8(payload)}

	case types.ItunesTypeUTF8:
		d.Value = &types.ItunesText{Text: textenc.LossyUTF8(payload)}

	case types.ItunesTypeUTF16:
		d.Value = &types.ItunesText{Text: decodeUTF16BE(payload)}

	case types.ItunesTypeSignedInt:
		var value int64
		switch len(payload) {
		case 1:
			value = int64(int8(payload[0]))
		case 2:
			value = int64(int16(binary.BigEndian.Uint16(payload)))
		case 4:
			value = int64(int32(binary.BigEndian.Uint32(payload)))
		case 8:
			value = int64(binary.BigEndian.Uint64(payload))
		default:
			return nil, fmt.Errorf("invalid signed integer size: %d bytes", len(payload))
		}
		d.Value = &types.ItunesSignedInt{Value: value}

	case types.ItunesTypeUnsignedInt:
		if numbered, ok := decodeItemNumber(itemType, payload); ok {
			d.Value = numbered
			return d, nil
		}
		var value uint64
		switch len(payload) {
		case 1:
			value = uint64(payload[0])
		case 2:
			value = uint64(binary.BigEndian.Uint16(payload))
		case 4:
			value = uint64(binary.BigEndian.Uint32(payload))
		case 8:
			value = binary.BigEndian.Uint64(payload)
		default:
			return nil, fmt.Errorf("invalid unsigned integer size: %d bytes", len(payload))
		}
		d.Value = &types.ItunesUnsignedInt{Value: value}

	case types.ItunesTypeJPEG:
		d.Value = &types.ItunesImage{Format: "JPEG", Size: len(payload)}

	case types.ItunesTypePNG:
		d.Value = &types.ItunesImage{Format: "PNG", Size: len(payload)}

	default:
		d.Value = &types.ItunesBinary{Data: payload}
	}

	return d, nil
}

// decodeItemNumber decodes the (reserved, number, total) 16 bit triple
// used by trkn and disk items. Other items, and payloads shorter than
// the triple, report false.
func decodeItemNumber(itemType string, payload []byte) (types.ItunesValue, bool) {
	if itemType != "trkn" && itemType != "disk" {
		return nil, false
	}
	if len(payload) < 6 {
		return nil, false
	}

	number := binary.BigEndian.Uint16(payload[2:4])
	total := binary.BigEndian.Uint16(payload[4:6])
	if itemType == "trkn" {
		return &types.ItunesTrackNumber{Number: number, Total: total}, true
	}
	return &types.ItunesDiskNumber{Number: number, Total: total}, true
}

// decodeUTF16BE decodes big-endian UTF-16 without a BOM. A trailing
// odd byte is dropped.
func decodeUTF16BE(payload []byte) string {
	units := make([]uint16, 0, len(payload)/2)
	for i := 0; i+1 < len(payload); i += 2 {
		units = append(units, binary.BigEndian.Uint16(payload[i:i+2]))
	}
	return string(utf16.Decode(units))
}
