// Package id3v2 decodes ID3v2.3 and ID3v2.4 tags into their frame
// structure.
//
// Decoding is deliberately forgiving. A tag written by a sloppy encoder
// still yields every frame that can be recovered: frames with IDs from
// the wrong tag version are skipped, a frame whose payload resists typed
// decoding is kept raw, and padding or a truncated frame ends the scan.
// Each such event is reported as a Warning rather than an error, so the
// caller decides how strict to be.
package id3v2

import (
	"encoding/binary"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/simonhull/mediadissect/internal/types"
)

const (
	// TagHeaderLen is the fixed length of the tag header.
	TagHeaderLen = 10

	// FrameHeaderLen is the fixed length of a frame header: four byte
	// ID, four byte size, two byte flags.
	FrameHeaderLen = 10
)

// DetectVersion checks header bytes for the "ID3" marker and returns
// the declared tag version.
func DetectVersion(header []byte) (major, minor uint8, ok bool) {
	if len(header) >= 5 && string(header[0:3]) == "ID3" {
		return header[3], header[4], true
	}
	return 0, 0, false
}

// DetectMPEGSync reports whether the header starts with an MPEG audio
// frame sync. MP3 files with a stripped tag start this way.
func DetectMPEGSync(header []byte) bool {
	return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
}

// DecodeSynchsafe decodes a four byte synchsafe integer, seven bits per
// byte. High bits are masked off regardless of their value.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 | uint32(b[1]&0x7F)<<14 | uint32(b[2]&0x7F)<<7 | uint32(b[3]&0x7F)
}

// RemoveUnsync removes unsynchronization byte stuffing: a zero byte
// following 0xFF is an insertion and is dropped. The pair window runs
// over the output, so a single pass leaves no FF 00 pairs behind and
// re-application is a no-op.
func RemoveUnsync(data []byte) []byte {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if b == 0x00 && len(result) > 0 && result[len(result)-1] == 0xFF {
			continue
		}
		result = append(result, b)
	}
	return result
}

// DecodeHeader parses the ten byte tag header into a tag skeleton
// without frames. A size byte with its high bit set violates the
// synchsafe layout; the bit is masked off and the violation reported as
// a warning.
func DecodeHeader(header []byte) (*types.ID3v2Tag, []types.Warning, error) {
	if len(header) < TagHeaderLen {
		return nil, nil, fmt.Errorf("tag header needs %d bytes, have %d", TagHeaderLen, len(header))
	}
	if string(header[0:3]) != "ID3" {
		return nil, nil, fmt.Errorf("missing ID3 marker")
	}

	var warnings []types.Warning
	for i, b := range header[6:10] {
		if b&0x80 != 0 {
			warnings = append(warnings, types.Warning{
				Stage:   "tag",
				Message: fmt.Sprintf("size byte %d (0x%02X) violates synchsafe format", i, b),
				Offset:  int64(6 + i),
			})
		}
	}

	tag := &types.ID3v2Tag{
		VersionMajor: header[3],
		VersionMinor: header[4],
		Flags:        header[5],
		DeclaredSize: DecodeSynchsafe(header[6:10]),
	}
	return tag, warnings, nil
}

// DecodeTag decodes the frame region that follows the tag header and
// fills tag.Frames. data holds the tag's DeclaredSize bytes.
//
// Offsets in the returned warnings and in each Frame are positions
// within the frame region after unsynchronization removal.
func DecodeTag(tag *types.ID3v2Tag, data []byte, path string) ([]types.Warning, error) {
	var warnings []types.Warning

	if tag.Unsynchronized() {
		data = RemoveUnsync(data)
	}

	frameStart := 0
	if tag.HasExtendedHeader() {
		if len(data) < 4 {
			return warnings, &types.CorruptedFileError{
				Path:   path,
				Kind:   types.KindTooShort,
				Reason: "buffer too small for extended header",
				Offset: TagHeaderLen,
			}
		}
		var extSize uint32
		if tag.VersionMajor == 4 {
			extSize = DecodeSynchsafe(data[0:4])
		} else {
			extSize = binary.BigEndian.Uint32(data[0:4])
		}
		frameStart = 4 + int(extSize)
		if frameStart > len(data) {
			return warnings, &types.CorruptedFileError{
				Path:   path,
				Kind:   types.KindSizeExceedsBuffer,
				Reason: fmt.Sprintf("extended header size %d exceeds tag size %d", extSize, len(data)),
				Offset: TagHeaderLen,
			}
		}
	}

	frames, frameWarnings := decodeFrames(data, frameStart, tag.VersionMajor)
	warnings = append(warnings, frameWarnings...)
	tag.Frames = frames
	return warnings, nil
}

// decodeFrames walks the top-level frame region. Invalid frame IDs are
// skipped, a frame overrunning the buffer stops the walk, and padding
// ends it.
func decodeFrames(buffer []byte, start int, major uint8) ([]*types.Frame, []types.Warning) {
	var frames []*types.Frame
	var warnings []types.Warning

	pos := start
	for pos+FrameHeaderLen <= len(buffer) {
		id := frameID(buffer[pos : pos+4])

		if isPadding(id) {
			break
		}

		size := frameSize(buffer[pos+4:pos+8], major)
		flags := binary.BigEndian.Uint16(buffer[pos+8 : pos+10])
		remaining := len(buffer) - pos - FrameHeaderLen

		if !ValidFrameID(id, major) {
			warnings = append(warnings, types.Warning{
				Stage:   "frame",
				Message: invalidIDMessage(id, major),
				Offset:  int64(pos),
			})
			// Skip the whole frame when its size is plausible,
			// otherwise resynchronize one byte at a time
			if size > 0 && size <= uint32(remaining) {
				pos += FrameHeaderLen + int(size)
			} else {
				warnings = append(warnings, types.Warning{
					Stage:   "frame",
					Message: fmt.Sprintf("invalid frame size %d, falling back to 1-byte skip", size),
					Offset:  int64(pos),
				})
				pos++
			}
			continue
		}

		if size == 0 {
			warnings = append(warnings, types.Warning{
				Stage:   "frame",
				Message: fmt.Sprintf("frame '%s' has zero size, skipping", id),
				Offset:  int64(pos),
			})
			pos += FrameHeaderLen
			continue
		}

		if size > uint32(remaining) {
			warnings = append(warnings, types.Warning{
				Stage:   "frame",
				Message: fmt.Sprintf("frame '%s' size (%d bytes) exceeds remaining buffer, stopping", id, size),
				Offset:  int64(pos),
			})
			break
		}

		frame := &types.Frame{
			ID:           id,
			DeclaredSize: size,
			Flags:        flags,
			Offset:       int64(pos),
			Raw:          slices.Clone(buffer[pos+FrameHeaderLen : pos+FrameHeaderLen+int(size)]),
		}

		if err := parseContent(frame, major); err != nil {
			warnings = append(warnings, types.Warning{
				Stage:   "frame",
				Message: fmt.Sprintf("frame '%s': %v, keeping raw payload", id, err),
				Offset:  int64(pos),
			})
		}

		frames = append(frames, frame)
		pos += FrameHeaderLen + int(size)
	}

	return frames, warnings
}

// DecodeEmbedded decodes the sub-frames a CHAP or CTOC frame carries
// after its own fields. Unlike the top-level walk, anything malformed
// ends the scan, and decode failures keep the sub-frame raw without a
// warning.
func DecodeEmbedded(data []byte, major uint8) []*types.Frame {
	var frames []*types.Frame

	pos := 0
	for pos+FrameHeaderLen <= len(data) {
		id := frameID(data[pos : pos+4])
		if isPadding(id) {
			break
		}
		if !ValidFrameID(id, major) {
			break
		}

		size := frameSize(data[pos+4:pos+8], major)
		flags := binary.BigEndian.Uint16(data[pos+8 : pos+10])

		if pos+FrameHeaderLen+int(size) > len(data) {
			break
		}

		frame := &types.Frame{
			ID:           id,
			DeclaredSize: size,
			Flags:        flags,
			Offset:       int64(pos),
			Raw:          slices.Clone(data[pos+FrameHeaderLen : pos+FrameHeaderLen+int(size)]),
		}
		// Failures keep the raw payload
		_ = parseContent(frame, major)

		frames = append(frames, frame)
		pos += FrameHeaderLen + int(size)
	}

	return frames
}

// frameID interprets four header bytes as a frame ID. Bytes that do not
// form valid UTF-8 yield "????", which the padding check then rejects.
func frameID(b []byte) string {
	if !utf8.Valid(b) {
		return "????"
	}
	return string(b)
}

// isPadding reports whether a frame ID marks the start of the padding
// area rather than a real frame.
func isPadding(id string) bool {
	if len(id) == 0 || id[0] == 0 {
		return true
	}
	for _, c := range id {
		if !isASCIIAlphanumeric(c) {
			return true
		}
	}
	return false
}

func isASCIIAlphanumeric(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func frameSize(b []byte, major uint8) uint32 {
	if major == 4 {
		return DecodeSynchsafe(b)
	}
	return binary.BigEndian.Uint32(b)
}

func invalidIDMessage(id string, major uint8) string {
	other := 4
	if major == 4 {
		other = 3
	}
	return fmt.Sprintf("'%s' is not a valid ID3v2.%d frame ID (may be from ID3v2.%d or other version)", id, major, other)
}
