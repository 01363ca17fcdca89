// Package isobmff decodes the box tree of ISO Base Media File Format
// containers (MP4, MOV, M4A, M4V, 3GP).
//
// Boxes are walked by recursive descent over half-open file ranges.
// Containers carry their children, recognized leaf boxes carry typed
// content, and iTunes metadata items carry the decoded value of their
// data child. Payloads above the configured cap stay in the file and
// are represented by offset and size only.
package isobmff

import (
	"fmt"
	"strings"

	"github.com/simonhull/mediadissect/internal/binary"
	"github.com/simonhull/mediadissect/internal/registry"
	"github.com/simonhull/mediadissect/internal/types"
)

// maxDepth bounds box nesting. Real files stay in single digits.
const maxDepth = 20

// containerTypes are the standard boxes traversed for children.
var containerTypes = map[string]bool{
	"moov": true,
	"trak": true,
	"edts": true,
	"mdia": true,
	"minf": true,
	"dinf": true,
	"stbl": true,
	"mvex": true,
	"moof": true,
	"traf": true,
	"mfra": true,
	"meta": true,
	"ipro": true,
	"udta": true,
	"tref": true,
	"ilst": true,
	"dref": true,
}

// itunesItemTypes are the iTunes metadata items that wrap a data child.
// Items named with the MacRoman © prefix match by prefix instead.
var itunesItemTypes = map[string]bool{
	"trkn": true,
	"disk": true,
	"tmpo": true,
	"covr": true,
	"aART": true,
	"----": true,
	"gnre": true,
	"hdvd": true,
	"pgap": true,
	"pcst": true,
	"cpil": true,
	"rtng": true,
	"stik": true,
	"tven": true,
	"tves": true,
	"tvnn": true,
	"tvsh": true,
	"tvsn": true,
	"apID": true,
	"akID": true,
	"atID": true,
	"cnID": true,
	"geID": true,
	"plID": true,
	"sfID": true,
	"soaa": true,
	"soal": true,
	"soar": true,
	"soco": true,
	"sonm": true,
	"sosn": true,
	"xid ": true,
	"keyw": true,
	"catg": true,
	"purl": true,
	"egid": true,
	"desc": true,
	"ldes": true,
	"sdes": true,
}

// isItunesItem reports whether boxType names an iTunes metadata item.
func isItunesItem(boxType string) bool {
	return strings.HasPrefix(boxType, "©") || itunesItemTypes[boxType]
}

// isContainer reports whether boxType is traversed for child boxes.
// iTunes items are containers too: their value lives in a data child.
func isContainer(boxType string) bool {
	return containerTypes[boxType] || isItunesItem(boxType)
}

// sanitizeType converts four raw type bytes to a printable string.
// Byte 0xA9 is the MacRoman copyright sign used by iTunes item names
// and maps to '©'. Other bytes outside the graphic ASCII range map
// to '?'.
func sanitizeType(raw []byte) string {
	var sb strings.Builder
	for _, b := range raw {
		switch {
		case b == 0xA9:
			sb.WriteRune('©')
		case b >= 0x21 && b <= 0x7E, b == ' ':
			sb.WriteByte(b)
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// parseBoxes walks the boxes in [start, end) at the given nesting
// depth. It returns the boxes completed before any error, so callers
// keep the parsed part of a damaged tree. A container whose subtree
// failed is returned with the children that did parse.
func parseBoxes(sr *binary.SafeReader, start, end int64, depth int, opts registry.Options) ([]*types.Box, error) {
	if depth > maxDepth {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Kind:   types.KindDepthExceeded,
			Reason: "maximum box nesting depth exceeded",
			Offset: start,
		}
	}

	var boxes []*types.Box
	current := start

	for current < end {
		size32, err := binary.Read[uint32](sr, current, "box size")
		if err != nil {
			return boxes, err
		}
		typeRaw, err := sr.ReadBytes(current+4, 4, "box type")
		if err != nil {
			return boxes, err
		}
		boxType := sanitizeType(typeRaw)

		var size uint64
		var headerSize int64
		switch size32 {
		case 1:
			size64, err := binary.Read[uint64](sr, current+8, "box extended size")
			if err != nil {
				return boxes, err
			}
			size = size64
			headerSize = 16
		case 0:
			// Box runs to the end of its parent.
			size = uint64(end - current)
			headerSize = 8
		default:
			size = uint64(size32)
			headerSize = 8
		}

		if size < uint64(headerSize) {
			return boxes, &types.CorruptedFileError{
				Path:   sr.Path(),
				Kind:   types.KindMalformed,
				Reason: fmt.Sprintf("invalid box size %d (smaller than %d byte header)", size, headerSize),
				Offset: current,
			}
		}
		if size > uint64(end-current) {
			return boxes, &types.CorruptedFileError{
				Path:   sr.Path(),
				Kind:   types.KindSizeExceedsBuffer,
				Reason: fmt.Sprintf("box '%s' extends beyond its parent (size %d, available %d)", boxType, size, end-current),
				Offset: current,
			}
		}

		box := &types.Box{
			Offset:     current,
			Type:       boxType,
			Size:       size,
			HeaderSize: headerSize,
			Container:  isContainer(boxType),
		}

		if box.Container {
			childStart := current + headerSize
			childEnd := current + int64(size)

			// FullBox containers carry version and flags before their
			// children. dref additionally declares an entry count,
			// decoded here since the walker never sees it as a leaf.
			switch boxType {
			case "meta":
				if childEnd-childStart >= 4 {
					childStart += 4
				}
			case "dref":
				if childEnd-childStart >= 8 {
					prefix, err := sr.ReadBytes(childStart, 8, "dref box header")
					if err != nil {
						return boxes, err
					}
					if dr, err := decodeDataReference(prefix); err == nil {
						box.Content = dr
					}
					childStart += 8
				}
			}

			children, err := parseBoxes(sr, childStart, childEnd, depth+1, opts)
			box.Children = children
			if err != nil {
				boxes = append(boxes, box)
				return boxes, err
			}

			if opts.DecodeItunes && isItunesItem(boxType) {
				decodeItunesItem(box)
			}
		} else {
			dataSize := box.DataSize()
			if dataSize > 0 && opts.MaxRawPayload > 0 && dataSize <= uint64(opts.MaxRawPayload) {
				raw, err := sr.ReadBytes(current+headerSize, int(dataSize), boxType+" box payload")
				if err != nil {
					return boxes, err
				}
				box.Raw = raw
				box.Content = decodeLeaf(boxType, raw)
			}
		}

		boxes = append(boxes, box)
		current += int64(size)
	}

	return boxes, nil
}

// decodeItunesItem decodes the value of an iTunes metadata item from
// its first data child. Undecodable values stay raw.
func decodeItunesItem(box *types.Box) {
	for _, child := range box.Children {
		if child.Type != "data" {
			continue
		}
		if len(child.Raw) > 0 {
			if data, err := decodeItunesData(box.Type, child.Raw); err == nil {
				box.Itunes = data
			}
		}
		return
	}
}
