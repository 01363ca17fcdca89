// Package textenc decodes the character encodings ID3v2 frames declare.
//
// Frames carry an encoding byte followed by one or more strings that are
// null-terminated with a terminator as wide as the encoding's code unit.
// Decoding is forgiving where the formats are forgiving: ISO-8859-1 maps
// every byte, and ill-formed UTF-8 or UTF-16 code units become U+FFFD.
// Structural problems, such as an odd byte count in UTF-16 data, are
// reported as errors so the caller can keep the raw payload instead.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/mediadissect/internal/types"
)

// ParseEncoding maps a frame's encoding byte to a TextEncoding.
func ParseEncoding(b byte) (types.TextEncoding, error) {
	if b > 3 {
		return 0, fmt.Errorf("unknown text encoding 0x%02X", b)
	}
	return types.TextEncoding(b), nil
}

// Decode converts a single unterminated string in the given encoding.
func Decode(data []byte, enc types.TextEncoding) (string, error) {
	switch enc {
	case types.EncodingLatin1:
		return DecodeLatin1(data), nil
	case types.EncodingUTF8:
		return LossyUTF8(data), nil
	case types.EncodingUTF16:
		return decodeUTF16(data, unicode.UseBOM)
	case types.EncodingUTF16BE:
		return decodeUTF16(data, unicode.IgnoreBOM)
	default:
		return "", fmt.Errorf("unknown text encoding 0x%02X", uint8(enc))
	}
}

// DecodeLatin1 converts ISO-8859-1 bytes. Every byte maps to the code
// point of the same value, so this cannot fail.
func DecodeLatin1(data []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// The ISO-8859-1 decoder is total; fall back to the identity
		// mapping if the transform ever reports otherwise.
		runes := make([]rune, len(data))
		for i, b := range data {
			runes[i] = rune(b)
		}
		return string(runes)
	}
	return string(decoded)
}

// LossyUTF8 interprets data as UTF-8, replacing ill-formed sequences
// with U+FFFD.
func LossyUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

func decodeUTF16(data []byte, bom unicode.BOMPolicy) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("UTF-16 data has odd length %d", len(data))
	}
	dec := unicode.UTF16(unicode.BigEndian, bom).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("UTF-16 decode: %w", err)
	}
	return string(decoded), nil
}

// DecodeMulti splits data on aligned null terminators and decodes each
// segment. Empty segments are dropped; an unterminated tail is kept.
// The primary string is the first decoded segment, or "" when the data
// holds none.
func DecodeMulti(data []byte, enc types.TextEncoding) (primary string, all []string, err error) {
	termLen := enc.TerminatorLen()

	pos := 0
	for pos < len(data) {
		end := pos
		for end+termLen <= len(data) && !isTerminator(data[end:end+termLen]) {
			end += termLen
		}

		var segment []byte
		var next int
		if end+termLen <= len(data) {
			segment = data[pos:end]
			next = end + termLen
		} else {
			segment = data[pos:]
			next = len(data)
		}

		s, err := Decode(segment, enc)
		if err != nil {
			return "", nil, err
		}
		if s != "" {
			all = append(all, s)
		}
		pos = next
	}

	if len(all) > 0 {
		primary = all[0]
	}
	return primary, all, nil
}

// FindTerminator locates the first null terminator for the encoding,
// scanning byte by byte. It returns the index of the terminator and
// whether one was found.
func FindTerminator(data []byte, enc types.TextEncoding) (int, bool) {
	termLen := enc.TerminatorLen()
	for i := 0; i+termLen <= len(data); i++ {
		if isTerminator(data[i : i+termLen]) {
			return i, true
		}
	}
	return len(data), false
}

// SplitTerminated splits data at the first null terminator, decoding the
// part before it. When no terminator exists the whole buffer decodes as
// the first part and rest is empty.
func SplitTerminated(data []byte, enc types.TextEncoding) (first string, rest []byte, err error) {
	idx, found := FindTerminator(data, enc)
	if !found {
		s, err := Decode(data, enc)
		if err != nil {
			return "", nil, err
		}
		return s, nil, nil
	}

	s, err := Decode(data[:idx], enc)
	if err != nil {
		return "", nil, err
	}
	return s, data[idx+enc.TerminatorLen():], nil
}

func isTerminator(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
