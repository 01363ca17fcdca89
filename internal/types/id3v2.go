package types

import "fmt"

// TextEncoding identifies the character encoding of an ID3v2 text field.
//
// Most text-bearing frames store the encoding as their first payload byte.
// UTF-16BE and UTF-8 are only defined for ID3v2.4; a v2.3 frame using them
// is kept as raw bytes and reported as a warning.
type TextEncoding uint8

const (
	// EncodingLatin1 is ISO-8859-1, terminated by a single zero byte.
	EncodingLatin1 TextEncoding = 0
	// EncodingUTF16 is UTF-16 with a byte order mark, terminated by two zero bytes.
	EncodingUTF16 TextEncoding = 1
	// EncodingUTF16BE is UTF-16 big-endian without a byte order mark.
	EncodingUTF16BE TextEncoding = 2
	// EncodingUTF8 is UTF-8.
	EncodingUTF8 TextEncoding = 3
)

func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16 with BOM"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("Unknown (0x%02X)", uint8(e))
	}
}

// TerminatorLen returns the width in bytes of this encoding's null terminator.
func (e TextEncoding) TerminatorLen() int {
	if e == EncodingUTF16 || e == EncodingUTF16BE {
		return 2
	}
	return 1
}

// ValidFor reports whether the encoding may appear in a tag of the given
// major version. UTF-16BE and UTF-8 were introduced with ID3v2.4.
func (e TextEncoding) ValidFor(major uint8) bool {
	if e == EncodingUTF16BE || e == EncodingUTF8 {
		return major >= 4
	}
	return true
}

// ID3v2 tag header flag bits.
const (
	TagFlagUnsynchronized = 0x80
	TagFlagExtendedHeader = 0x40
	TagFlagExperimental   = 0x20
	TagFlagFooter         = 0x10
)

// ID3v2Tag is a decoded ID3v2 tag: the ten byte header plus every frame
// recovered from the frame region.
type ID3v2Tag struct {
	// VersionMajor and VersionMinor come from header bytes 3 and 4.
	// VersionMajor 3 means ID3v2.3, 4 means ID3v2.4.
	VersionMajor uint8
	VersionMinor uint8

	// Flags is the raw header flag byte.
	Flags uint8

	// DeclaredSize is the synchsafe size from the header. It counts the
	// bytes after the ten byte header, excluding any footer.
	DeclaredSize uint32

	// Frames holds every frame recovered from the tag, in file order.
	Frames []*Frame
}

// Version returns the tag version as text, such as "ID3v2.3".
func (t *ID3v2Tag) Version() string {
	return fmt.Sprintf("ID3v2.%d", t.VersionMajor)
}

// Unsynchronized reports whether the unsynchronization flag is set.
func (t *ID3v2Tag) Unsynchronized() bool { return t.Flags&TagFlagUnsynchronized != 0 }

// HasExtendedHeader reports whether an extended header follows the tag header.
func (t *ID3v2Tag) HasExtendedHeader() bool { return t.Flags&TagFlagExtendedHeader != 0 }

// Experimental reports whether the experimental indicator flag is set.
func (t *ID3v2Tag) Experimental() bool { return t.Flags&TagFlagExperimental != 0 }

// HasFooter reports whether the tag ends with a footer (ID3v2.4 only).
func (t *ID3v2Tag) HasFooter() bool { return t.Flags&TagFlagFooter != 0 }

// Frame returns the first frame with the given ID, or nil.
func (t *ID3v2Tag) Frame(id string) *Frame {
	for _, f := range t.Frames {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Text returns the primary text of the first frame with the given ID.
// It returns "" when the frame is absent or carries no decoded text.
func (t *ID3v2Tag) Text(id string) string {
	f := t.Frame(id)
	if f == nil {
		return ""
	}
	if tc, ok := f.Content.(*TextContent); ok {
		return tc.Text
	}
	return ""
}

// Frame is a single decoded ID3v2 frame.
type Frame struct {
	// ID is the four character frame identifier. Header bytes that do
	// not form valid UTF-8 are reported as "????".
	ID string

	// DeclaredSize is the payload size from the frame header.
	DeclaredSize uint32

	// Flags is the raw sixteen bit frame header flags field.
	Flags uint16

	// Offset is the position of the frame header within the tag's frame
	// region, after unsynchronization removal.
	Offset int64

	// Raw is the frame payload exactly as stored.
	Raw []byte

	// Content is the typed decode of the payload. Frames without a
	// typed decoder and frames whose typed decode failed carry a
	// *BinaryContent.
	Content FrameContent

	// Embedded holds sub-frames for CHAP and CTOC frames. Their Offset
	// is relative to the parent frame's payload.
	Embedded []*Frame
}

// FrameContent is the decoded payload of an ID3v2 frame.
//
// The concrete types are TextContent, URLContent, UserTextContent,
// UserURLContent, CommentContent, PictureContent, UniqueFileIDContent,
// ChapterContent, TableOfContentsContent, and BinaryContent.
type FrameContent interface {
	frameContent()
}

// TextContent is the payload of a text information frame (T***).
//
// ID3v2.4 allows several null-separated values in one frame; Strings
// holds all of them and Text the first.
type TextContent struct {
	Encoding TextEncoding
	Text     string
	Strings  []string
}

// URLContent is the payload of a URL link frame (W***), always ISO-8859-1.
type URLContent struct {
	URL string
}

// UserTextContent is the payload of a TXXX user-defined text frame.
type UserTextContent struct {
	Encoding    TextEncoding
	Description string
	Value       string
}

// UserURLContent is the payload of a WXXX user-defined URL frame. The
// description uses the declared encoding, the URL itself is ISO-8859-1.
type UserURLContent struct {
	Encoding    TextEncoding
	Description string
	URL         string
}

// CommentContent is the payload of a COMM comment or USLT lyrics frame.
type CommentContent struct {
	Encoding    TextEncoding
	Language    string
	Description string
	Text        string
}

// PictureContent is the payload of an APIC attached picture frame.
type PictureContent struct {
	Encoding    TextEncoding
	MIMEType    string
	PictureType PictureType
	Description string
	Data        []byte
}

// UniqueFileIDContent is the payload of a UFID frame.
type UniqueFileIDContent struct {
	Owner      string
	Identifier []byte
}

// UnusedChapterOffset marks a chapter byte offset field the writer left unset.
const UnusedChapterOffset = 0xFFFFFFFF

// ChapterContent is the payload of a CHAP chapter frame. The frame's
// sub-frames, typically a TIT2 title, appear in Frame.Embedded.
type ChapterContent struct {
	ElementID   string
	StartTimeMS uint32
	EndTimeMS   uint32
	StartOffset uint32
	EndOffset   uint32
}

// Duration returns the chapter length in milliseconds, or zero when the
// end time precedes the start time.
func (c *ChapterContent) Duration() uint32 {
	if c.EndTimeMS < c.StartTimeMS {
		return 0
	}
	return c.EndTimeMS - c.StartTimeMS
}

// HasByteOffsets reports whether both byte offset fields carry real values.
func (c *ChapterContent) HasByteOffsets() bool {
	return c.StartOffset != UnusedChapterOffset && c.EndOffset != UnusedChapterOffset
}

// CTOC flag bits.
const (
	TOCFlagOrdered  = 0x01
	TOCFlagTopLevel = 0x02
)

// TableOfContentsContent is the payload of a CTOC frame.
type TableOfContentsContent struct {
	ElementID string
	Flags     uint8
	ChildIDs  []string
}

// Ordered reports whether the child entries form an ordered sequence.
func (c *TableOfContentsContent) Ordered() bool { return c.Flags&TOCFlagOrdered != 0 }

// TopLevel reports whether this is the root table of contents.
func (c *TableOfContentsContent) TopLevel() bool { return c.Flags&TOCFlagTopLevel != 0 }

// BinaryContent holds the payload of frames without a typed decoder and
// of frames whose typed decode failed.
type BinaryContent struct {
	Data []byte
}

func (*TextContent) frameContent()            {}
func (*URLContent) frameContent()             {}
func (*UserTextContent) frameContent()        {}
func (*UserURLContent) frameContent()         {}
func (*CommentContent) frameContent()         {}
func (*PictureContent) frameContent()         {}
func (*UniqueFileIDContent) frameContent()    {}
func (*ChapterContent) frameContent()         {}
func (*TableOfContentsContent) frameContent() {}
func (*BinaryContent) frameContent()          {}

// PictureType is the APIC picture type byte.
type PictureType uint8

func (p PictureType) String() string {
	switch p {
	case 0x00:
		return "Other"
	case 0x01:
		return "32x32 pixels 'file icon' (PNG only)"
	case 0x02:
		return "Other file icon"
	case 0x03:
		return "Cover (front)"
	case 0x04:
		return "Cover (back)"
	case 0x05:
		return "Leaflet page"
	case 0x06:
		return "Media (e.g. label side of CD)"
	case 0x07:
		return "Lead artist/lead performer/soloist"
	case 0x08:
		return "Artist/performer"
	case 0x09:
		return "Conductor"
	case 0x0A:
		return "Band/Orchestra"
	case 0x0B:
		return "Composer"
	case 0x0C:
		return "Lyricist/text writer"
	case 0x0D:
		return "Recording Location"
	case 0x0E:
		return "During recording"
	case 0x0F:
		return "During performance"
	case 0x10:
		return "Movie/video screen capture"
	case 0x11:
		return "A bright coloured fish"
	case 0x12:
		return "Illustration"
	case 0x13:
		return "Band/artist logotype"
	case 0x14:
		return "Publisher/Studio logotype"
	default:
		return "Unknown"
	}
}

// FormatTimestamp renders a millisecond timestamp as "hh:mm:ss.mmm".
func FormatTimestamp(ms uint32) string {
	totalSeconds := ms / 1000
	millis := ms % 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
