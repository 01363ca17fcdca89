package id3v2

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/simonhull/mediadissect/internal/textenc"
	"github.com/simonhull/mediadissect/internal/types"
)

// maxUniqueFileIDLen is the identifier limit UFID declares.
const maxUniqueFileIDLen = 64

// parseContent decodes a frame's payload into typed content. The raw
// payload stays available either way, and on any decode failure the
// frame falls back to *BinaryContent with the error returned for the
// caller to report.
//
// Frames whose ID belongs to the other tag version are kept as binary
// without an error; the walk already warned about the ID.
func parseContent(frame *types.Frame, major uint8) error {
	frame.Content = &types.BinaryContent{Data: frame.Raw}

	if !ValidFrameID(frame.ID, major) {
		return nil
	}

	switch id := frame.ID; {
	case id == "TXXX":
		content, err := decodeUserText(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
	case id == "WXXX":
		content, err := decodeUserURL(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
	case strings.HasPrefix(id, "T"):
		content, err := decodeText(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
	case strings.HasPrefix(id, "W"):
		frame.Content = decodeURL(frame.Raw)
	case id == "COMM" || id == "USLT":
		content, err := decodeComment(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
	case id == "APIC":
		content, err := decodePicture(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
	case id == "UFID":
		content, err := decodeUniqueFileID(frame.Raw)
		if err != nil {
			return err
		}
		frame.Content = content
	case id == "CHAP":
		content, embedded, err := decodeChapter(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
		frame.Embedded = embedded
	case id == "CTOC":
		content, embedded, err := decodeTableOfContents(frame.Raw, major)
		if err != nil {
			return err
		}
		frame.Content = content
		frame.Embedded = embedded
	}
	return nil
}

// checkEncoding rejects encodings the tag version does not define.
// ID3v2.3 only knows ISO-8859-1 and UTF-16 with BOM.
func checkEncoding(enc types.TextEncoding, major uint8) error {
	if !enc.ValidFor(major) {
		return fmt.Errorf("text encoding %s is not valid for ID3v2.%d", enc, major)
	}
	return nil
}

// decodeText decodes a text information frame (T*** except TXXX): an
// encoding byte followed by one or more terminated strings.
func decodeText(data []byte, major uint8) (*types.TextContent, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("text frame data is empty")
	}
	enc, err := textenc.ParseEncoding(data[0])
	if err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("text frame data too short")
	}

	text, values, err := textenc.DecodeMulti(data[1:], enc)
	if err != nil {
		return nil, err
	}
	if err := checkEncoding(enc, major); err != nil {
		return nil, err
	}
	return &types.TextContent{Encoding: enc, Text: text, Strings: values}, nil
}

// decodeURL decodes a URL link frame (W*** except WXXX). URL frames
// carry no encoding byte and are always ISO-8859-1.
func decodeURL(data []byte) *types.URLContent {
	return &types.URLContent{URL: textenc.DecodeLatin1(data)}
}

// decodeUserText decodes a TXXX frame: encoding byte, terminated
// description, value.
func decodeUserText(data []byte, major uint8) (*types.UserTextContent, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("user text frame data is empty")
	}
	enc, err := textenc.ParseEncoding(data[0])
	if err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("user text frame data too short")
	}

	description, rest, err := textenc.SplitTerminated(data[1:], enc)
	if err != nil {
		return nil, err
	}
	value, err := textenc.Decode(rest, enc)
	if err != nil {
		return nil, err
	}
	if err := checkEncoding(enc, major); err != nil {
		return nil, err
	}
	return &types.UserTextContent{Encoding: enc, Description: description, Value: value}, nil
}

// decodeUserURL decodes a WXXX frame. The description honors the
// declared encoding, the URL after it is ISO-8859-1.
func decodeUserURL(data []byte, major uint8) (*types.UserURLContent, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("user URL frame data is empty")
	}
	enc, err := textenc.ParseEncoding(data[0])
	if err != nil {
		return nil, err
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("user URL frame data too short")
	}

	description, rest, err := textenc.SplitTerminated(data[1:], enc)
	if err != nil {
		return nil, err
	}
	if err := checkEncoding(enc, major); err != nil {
		return nil, err
	}
	return &types.UserURLContent{
		Encoding:    enc,
		Description: description,
		URL:         textenc.DecodeLatin1(rest),
	}, nil
}

// decodeComment decodes a COMM or USLT frame: encoding byte, three byte
// ISO-639-2 language code, terminated description, text.
func decodeComment(data []byte, major uint8) (*types.CommentContent, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("comment frame data too short")
	}
	enc, err := textenc.ParseEncoding(data[0])
	if err != nil {
		return nil, err
	}

	language := textenc.LossyUTF8(data[1:4])

	description, rest, err := textenc.SplitTerminated(data[4:], enc)
	if err != nil {
		return nil, err
	}
	text, err := textenc.Decode(rest, enc)
	if err != nil {
		return nil, err
	}
	if err := checkEncoding(enc, major); err != nil {
		return nil, err
	}
	return &types.CommentContent{
		Encoding:    enc,
		Language:    language,
		Description: description,
		Text:        text,
	}, nil
}

// decodePicture decodes an APIC frame: encoding byte, null-terminated
// ISO-8859-1 MIME type, picture type byte, terminated description, then
// the image bytes.
func decodePicture(data []byte, major uint8) (*types.PictureContent, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("picture frame data too short")
	}
	enc, err := textenc.ParseEncoding(data[0])
	if err != nil {
		return nil, err
	}
	pos := 1

	mimeStart := pos
	for pos < len(data) && data[pos] != 0 {
		pos++
	}
	if pos >= len(data) {
		return nil, fmt.Errorf("picture frame MIME type not null-terminated")
	}
	mimeType := textenc.DecodeLatin1(data[mimeStart:pos])
	pos++

	if pos >= len(data) {
		return nil, fmt.Errorf("picture frame missing picture type")
	}
	pictureType := types.PictureType(data[pos])
	pos++

	// The description terminator is scanned byte by byte even for the
	// two byte UTF-16 encodings
	descStart := pos
	termLen := enc.TerminatorLen()
	for pos+termLen <= len(data) {
		if isNullRun(data[pos : pos+termLen]) {
			break
		}
		pos++
	}
	if pos+termLen > len(data) {
		return nil, fmt.Errorf("picture frame description not properly terminated")
	}
	description, err := textenc.Decode(data[descStart:pos], enc)
	if err != nil {
		return nil, err
	}
	pos += termLen

	if err := checkEncoding(enc, major); err != nil {
		return nil, err
	}
	return &types.PictureContent{
		Encoding:    enc,
		MIMEType:    mimeType,
		PictureType: pictureType,
		Description: description,
		Data:        data[pos:],
	}, nil
}

func isNullRun(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return len(b) > 0
}

// decodeUniqueFileID decodes a UFID frame: null-terminated ISO-8859-1
// owner, then up to 64 identifier bytes.
func decodeUniqueFileID(data []byte) (*types.UniqueFileIDContent, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("UFID frame data is empty")
	}

	pos := 0
	for pos < len(data) && data[pos] != 0 {
		pos++
	}
	if pos >= len(data) {
		return nil, fmt.Errorf("UFID owner identifier not null-terminated")
	}
	owner := textenc.DecodeLatin1(data[:pos])
	pos++

	identifier := data[pos:]
	if len(identifier) > maxUniqueFileIDLen {
		return nil, fmt.Errorf("UFID identifier too long (max %d bytes)", maxUniqueFileIDLen)
	}
	return &types.UniqueFileIDContent{Owner: owner, Identifier: identifier}, nil
}

// decodeChapter decodes a CHAP frame: null-terminated element ID, start
// and end times in milliseconds, start and end byte offsets, then
// embedded sub-frames.
func decodeChapter(data []byte, major uint8) (*types.ChapterContent, []*types.Frame, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("chapter frame data is empty")
	}

	pos := 0
	for pos < len(data) && data[pos] != 0 {
		pos++
	}
	if pos >= len(data) {
		return nil, nil, fmt.Errorf("chapter frame element ID not null-terminated")
	}
	elementID := textenc.DecodeLatin1(data[:pos])
	pos++

	fields := [4]uint32{}
	names := [4]string{"start time", "end time", "start offset", "end offset"}
	for i := range fields {
		if pos+4 > len(data) {
			return nil, nil, fmt.Errorf("chapter frame missing %s", names[i])
		}
		fields[i] = binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4
	}

	var embedded []*types.Frame
	if pos < len(data) {
		embedded = DecodeEmbedded(data[pos:], major)
	}

	content := &types.ChapterContent{
		ElementID:   elementID,
		StartTimeMS: fields[0],
		EndTimeMS:   fields[1],
		StartOffset: fields[2],
		EndOffset:   fields[3],
	}
	return content, embedded, nil
}

// decodeTableOfContents decodes a CTOC frame: null-terminated element
// ID, flags byte, entry count, that many null-terminated child IDs,
// then embedded sub-frames.
func decodeTableOfContents(data []byte, major uint8) (*types.TableOfContentsContent, []*types.Frame, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("table of contents frame data is empty")
	}

	pos := 0
	for pos < len(data) && data[pos] != 0 {
		pos++
	}
	if pos >= len(data) {
		return nil, nil, fmt.Errorf("TOC frame element ID not null-terminated")
	}
	elementID := textenc.DecodeLatin1(data[:pos])
	pos++

	if pos >= len(data) {
		return nil, nil, fmt.Errorf("TOC frame missing flags")
	}
	flags := data[pos]
	pos++

	if pos >= len(data) {
		return nil, nil, fmt.Errorf("TOC frame missing entry count")
	}
	entryCount := int(data[pos])
	pos++

	childIDs := make([]string, 0, entryCount)
	for range entryCount {
		idStart := pos
		for pos < len(data) && data[pos] != 0 {
			pos++
		}
		if pos >= len(data) {
			return nil, nil, fmt.Errorf("TOC frame child element ID not null-terminated")
		}
		childIDs = append(childIDs, textenc.DecodeLatin1(data[idStart:pos]))
		pos++
	}

	var embedded []*types.Frame
	if pos < len(data) {
		embedded = DecodeEmbedded(data[pos:], major)
	}

	content := &types.TableOfContentsContent{
		ElementID: elementID,
		Flags:     flags,
		ChildIDs:  childIDs,
	}
	return content, embedded, nil
}
