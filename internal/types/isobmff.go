package types

import "fmt"

// Box is a single ISOBMFF box together with its decoded payload and
// children.
type Box struct {
	// Offset is the absolute file offset of the box header.
	Offset int64

	// Type is the four character box type. Byte 0xA9 is shown as '©';
	// other non-printable bytes are shown as '?'.
	Type string

	// Size is the total box size in bytes, including the header.
	Size uint64

	// HeaderSize is 8, or 16 when the 64 bit largesize field is present.
	HeaderSize int64

	// Container reports whether the box was traversed as a container.
	Container bool

	// Children holds the child boxes of a container, in file order.
	Children []*Box

	// Raw holds the payload of small leaf boxes. Payloads larger than
	// one MiB are left in the file and Raw stays nil.
	Raw []byte

	// Content is the typed decode of the payload for recognized leaf
	// boxes, nil otherwise.
	Content BoxContent

	// Itunes is the decoded value for iTunes metadata item containers
	// that carry a data child, nil otherwise.
	Itunes *ItunesData
}

// DataOffset returns the absolute file offset of the box payload.
func (b *Box) DataOffset() int64 {
	return b.Offset + b.HeaderSize
}

// DataSize returns the payload size in bytes.
func (b *Box) DataSize() uint64 {
	if b.Size < uint64(b.HeaderSize) {
		return 0
	}
	return b.Size - uint64(b.HeaderSize)
}

// Find returns the first box in the subtree rooted at b whose type
// matches boxType, or nil. The receiver itself is considered first.
func (b *Box) Find(boxType string) *Box {
	if b.Type == boxType {
		return b
	}
	for _, c := range b.Children {
		if found := c.Find(boxType); found != nil {
			return found
		}
	}
	return nil
}

// BoxContent is the typed payload of a recognized leaf box.
//
// The concrete types are FileTypeBox, MovieHeaderBox, TrackHeaderBox,
// MediaHeaderBox, HandlerBox, VideoMediaHeaderBox, SoundMediaHeaderBox,
// NullMediaHeaderBox, DataReferenceBox, DataEntryURLBox, DataEntryURNBox,
// SampleDescriptionBox, TimeToSampleBox, SampleToChunkBox, SampleSizeBox,
// ChunkOffsetBox, ChunkOffset64Box, EditListBox, ChapterListBox,
// MetadataMeanBox, and MetadataNameBox.
type BoxContent interface {
	boxContent()
}

// FileTypeBox is the decoded ftyp payload.
type FileTypeBox struct {
	MajorBrand       string
	MinorVersion     uint32
	CompatibleBrands []string
}

// MovieHeaderBox is the decoded mvhd payload.
type MovieHeaderBox struct {
	Version          uint8
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64

	// Rate is the preferred playback rate, 1.0 for normal speed.
	Rate float64

	// Volume is the preferred playback volume, 1.0 for full volume.
	Volume float64
}

// Track header flag bits.
const (
	TrackFlagEnabled   = 0x000001
	TrackFlagInMovie   = 0x000002
	TrackFlagInPreview = 0x000004
)

// TrackHeaderBox is the decoded tkhd payload.
type TrackHeaderBox struct {
	Version          uint8
	Flags            uint32
	CreationTime     uint64
	ModificationTime uint64
	TrackID          uint32
	Duration         uint64
	Layer            int16
	AlternateGroup   int16
	Volume           float64

	// Matrix is the 36 byte transformation matrix, kept raw.
	Matrix []byte

	// Width and Height are the visual presentation size in pixels.
	Width  float64
	Height float64
}

// Enabled reports whether the track is enabled.
func (t *TrackHeaderBox) Enabled() bool { return t.Flags&TrackFlagEnabled != 0 }

// InMovie reports whether the track is used in the presentation.
func (t *TrackHeaderBox) InMovie() bool { return t.Flags&TrackFlagInMovie != 0 }

// InPreview reports whether the track is used when previewing.
func (t *TrackHeaderBox) InPreview() bool { return t.Flags&TrackFlagInPreview != 0 }

// MediaHeaderBox is the decoded mdhd payload.
type MediaHeaderBox struct {
	Version          uint8
	CreationTime     uint64
	ModificationTime uint64
	Timescale        uint32
	Duration         uint64

	// Language is the ISO 639-2/T code unpacked from the packed
	// fifteen bit field, such as "und" or "eng".
	Language string
}

// HandlerBox is the decoded hdlr payload.
type HandlerBox struct {
	Version      uint8
	HandlerType  string
	Manufacturer string
	Name         string
}

// Description returns a human readable label for the handler type.
func (h *HandlerBox) Description() string {
	switch h.HandlerType {
	case "vide":
		return "Video Track"
	case "soun":
		return "Audio Track"
	case "hint":
		return "Hint Track"
	case "meta":
		return "Metadata Track"
	case "mdir":
		return "Metadata Directory"
	case "auxv":
		return "Auxiliary Video Track"
	case "text":
		return "Text/Subtitle Track"
	case "sbtl":
		return "Subtitle Track"
	case "subt":
		return "Subtitle Track"
	case "clcp":
		return "Closed Caption Track"
	case "tmcd":
		return "Timecode Track"
	default:
		return "Unknown Handler"
	}
}

// VideoMediaHeaderBox is the decoded vmhd payload.
type VideoMediaHeaderBox struct {
	GraphicsMode uint16
	OpColor      [3]uint16
}

// SoundMediaHeaderBox is the decoded smhd payload.
type SoundMediaHeaderBox struct {
	// Balance places mono tracks in the stereo field, 0 for center.
	Balance float64
}

// NullMediaHeaderBox is the decoded nmhd payload.
type NullMediaHeaderBox struct {
	Version uint8
}

// DataReferenceBox is the decoded dref payload header.
type DataReferenceBox struct {
	Version    uint8
	EntryCount uint32
}

// DataEntryURLBox is the decoded "url " payload. When the self contained
// flag is set the media data lives in the same file and Location reads
// "(data in same file)".
type DataEntryURLBox struct {
	Version  uint8
	Flags    uint32
	Location string
}

// SelfContained reports whether the media data lives in this file.
func (d *DataEntryURLBox) SelfContained() bool { return d.Flags&0x000001 != 0 }

// DataEntryURNBox is the decoded "urn " payload.
type DataEntryURNBox struct {
	Version  uint8
	Flags    uint32
	Name     string
	Location string
}

// SampleEntry is one entry of a sample description box.
type SampleEntry struct {
	Size   uint32
	Format string
}

// SampleDescriptionBox is the decoded stsd payload.
type SampleDescriptionBox struct {
	Version    uint8
	EntryCount uint32
	Entries    []SampleEntry
}

// TimeToSampleBox is the decoded stts payload header.
type TimeToSampleBox struct {
	Version    uint8
	EntryCount uint32
}

// SampleToChunkBox is the decoded stsc payload header.
type SampleToChunkBox struct {
	Version    uint8
	EntryCount uint32
}

// SampleSizeBox is the decoded stsz payload header.
type SampleSizeBox struct {
	Version     uint8
	SampleSize  uint32
	SampleCount uint32
}

// ChunkOffsetBox is the decoded stco payload header.
type ChunkOffsetBox struct {
	Version    uint8
	EntryCount uint32
}

// ChunkOffset64Box is the decoded co64 payload header.
type ChunkOffset64Box struct {
	Version    uint8
	EntryCount uint32
}

// EditListBox is the decoded elst payload header.
type EditListBox struct {
	Version    uint8
	EntryCount uint32
}

// ChapterListBox is the decoded chap payload, a list of chapter track IDs.
type ChapterListBox struct {
	TrackIDs []uint32
}

// MetadataMeanBox is the decoded mean payload of an iTunes freeform item.
type MetadataMeanBox struct {
	Version   uint8
	Namespace string
}

// MetadataNameBox is the decoded name payload of an iTunes freeform item.
type MetadataNameBox struct {
	Version uint8
	Name    string
}

func (*FileTypeBox) boxContent()          {}
func (*MovieHeaderBox) boxContent()       {}
func (*TrackHeaderBox) boxContent()       {}
func (*MediaHeaderBox) boxContent()       {}
func (*HandlerBox) boxContent()           {}
func (*VideoMediaHeaderBox) boxContent()  {}
func (*SoundMediaHeaderBox) boxContent()  {}
func (*NullMediaHeaderBox) boxContent()   {}
func (*DataReferenceBox) boxContent()     {}
func (*DataEntryURLBox) boxContent()      {}
func (*DataEntryURNBox) boxContent()      {}
func (*SampleDescriptionBox) boxContent() {}
func (*TimeToSampleBox) boxContent()      {}
func (*SampleToChunkBox) boxContent()     {}
func (*SampleSizeBox) boxContent()        {}
func (*ChunkOffsetBox) boxContent()       {}
func (*ChunkOffset64Box) boxContent()     {}
func (*EditListBox) boxContent()          {}
func (*ChapterListBox) boxContent()       {}
func (*MetadataMeanBox) boxContent()      {}
func (*MetadataNameBox) boxContent()      {}

// ItunesDataType classifies the payload of an iTunes data box. The value
// is the full 24 bit type indicator from the box flags.
type ItunesDataType uint32

const (
	// ItunesTypeImplicit means the type is implied by the item name.
	ItunesTypeImplicit ItunesDataType = 0x00
	// ItunesTypeUTF8 is UTF-8 text.
	ItunesTypeUTF8 ItunesDataType = 0x01
	// ItunesTypeUTF16 is big-endian UTF-16 text.
	ItunesTypeUTF16 ItunesDataType = 0x02
	// ItunesTypeJPEG is a JPEG image.
	ItunesTypeJPEG ItunesDataType = 0x0D
	// ItunesTypePNG is a PNG image.
	ItunesTypePNG ItunesDataType = 0x0E
	// ItunesTypeSignedInt is a big-endian signed integer of 1, 2, 4, or 8 bytes.
	ItunesTypeSignedInt ItunesDataType = 0x15
	// ItunesTypeUnsignedInt is a big-endian unsigned integer of 1, 2, 4, or 8 bytes.
	ItunesTypeUnsignedInt ItunesDataType = 0x16
)

func (t ItunesDataType) String() string {
	switch t {
	case ItunesTypeImplicit:
		return "Implicit"
	case ItunesTypeUTF8:
		return "UTF-8"
	case ItunesTypeUTF16:
		return "UTF-16 BE"
	case ItunesTypeJPEG:
		return "JPEG"
	case ItunesTypePNG:
		return "PNG"
	case ItunesTypeSignedInt:
		return "Signed Integer"
	case ItunesTypeUnsignedInt:
		return "Unsigned Integer"
	default:
		return fmt.Sprintf("Binary (0x%02X)", uint8(t))
	}
}

// ItunesData is the decoded value of an iTunes metadata item.
type ItunesData struct {
	Type  ItunesDataType
	Value ItunesValue
}

// String renders the value the way iTunes-aware tools label it.
func (d *ItunesData) String() string {
	switch v := d.Value.(type) {
	case *ItunesText:
		return fmt.Sprintf("%q", v.Text)
	case *ItunesTrackNumber:
		if v.Total > 0 {
			return fmt.Sprintf("Track %d of %d", v.Number, v.Total)
		}
		return fmt.Sprintf("Track %d", v.Number)
	case *ItunesDiskNumber:
		if v.Total > 0 {
			return fmt.Sprintf("Disk %d of %d", v.Number, v.Total)
		}
		return fmt.Sprintf("Disk %d", v.Number)
	case *ItunesSignedInt:
		return fmt.Sprintf("%d", v.Value)
	case *ItunesUnsignedInt:
		return fmt.Sprintf("%d", v.Value)
	case *ItunesImage:
		return fmt.Sprintf("%s image, %d bytes", v.Format, v.Size)
	case *ItunesBinary:
		return fmt.Sprintf("Binary data, %d bytes", len(v.Data))
	default:
		return ""
	}
}

// ItunesValue is the decoded payload of an iTunes data box.
//
// The concrete types are ItunesText, ItunesTrackNumber, ItunesDiskNumber,
// ItunesSignedInt, ItunesUnsignedInt, ItunesImage, and ItunesBinary.
type ItunesValue interface {
	itunesValue()
}

// ItunesText is a decoded text value.
type ItunesText struct {
	Text string
}

// ItunesTrackNumber is a decoded trkn value.
type ItunesTrackNumber struct {
	Number uint16
	Total  uint16
}

// ItunesDiskNumber is a decoded disk value.
type ItunesDiskNumber struct {
	Number uint16
	Total  uint16
}

// ItunesSignedInt is a decoded signed integer value.
type ItunesSignedInt struct {
	Value int64
}

// ItunesUnsignedInt is a decoded unsigned integer value.
type ItunesUnsignedInt struct {
	Value uint64
}

// ItunesImage records an embedded image without copying its bytes.
type ItunesImage struct {
	Format string
	Size   int
}

// ItunesBinary holds an uninterpreted payload.
type ItunesBinary struct {
	Data []byte
}

func (*ItunesText) itunesValue()        {}
func (*ItunesTrackNumber) itunesValue() {}
func (*ItunesDiskNumber) itunesValue()  {}
func (*ItunesSignedInt) itunesValue()   {}
func (*ItunesUnsignedInt) itunesValue() {}
func (*ItunesImage) itunesValue()       {}
func (*ItunesBinary) itunesValue()      {}
