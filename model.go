package mediadissect

import (
	"github.com/simonhull/mediadissect/internal/types"
)

// The dissected-structure model lives in internal/types and is
// re-exported here by alias, so format packages and callers share one
// set of concrete types.

// File is an alias to types.File, the dissected structure of one file.
type File = types.File

// ID3v2Tag is an alias to types.ID3v2Tag.
type ID3v2Tag = types.ID3v2Tag

// Frame is an alias to types.Frame.
type Frame = types.Frame

// FrameContent is an alias to types.FrameContent, the closed union of
// typed frame payloads.
type FrameContent = types.FrameContent

// Frame content variants.
type (
	TextContent            = types.TextContent
	URLContent             = types.URLContent
	UserTextContent        = types.UserTextContent
	UserURLContent         = types.UserURLContent
	CommentContent         = types.CommentContent
	PictureContent         = types.PictureContent
	UniqueFileIDContent    = types.UniqueFileIDContent
	ChapterContent         = types.ChapterContent
	TableOfContentsContent = types.TableOfContentsContent
	BinaryContent          = types.BinaryContent
)

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// Re-export the ID3v2 text encodings.
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)

// PictureType is an alias to types.PictureType, the APIC picture type.
type PictureType = types.PictureType

// Box is an alias to types.Box, one node of the ISOBMFF box tree.
type Box = types.Box

// BoxContent is an alias to types.BoxContent, the closed union of typed
// leaf payloads.
type BoxContent = types.BoxContent

// Box content variants.
type (
	FileTypeBox          = types.FileTypeBox
	MovieHeaderBox       = types.MovieHeaderBox
	TrackHeaderBox       = types.TrackHeaderBox
	MediaHeaderBox       = types.MediaHeaderBox
	HandlerBox           = types.HandlerBox
	VideoMediaHeaderBox  = types.VideoMediaHeaderBox
	SoundMediaHeaderBox  = types.SoundMediaHeaderBox
	NullMediaHeaderBox   = types.NullMediaHeaderBox
	DataReferenceBox     = types.DataReferenceBox
	DataEntryURLBox      = types.DataEntryURLBox
	DataEntryURNBox      = types.DataEntryURNBox
	SampleDescriptionBox = types.SampleDescriptionBox
	TimeToSampleBox      = types.TimeToSampleBox
	SampleToChunkBox     = types.SampleToChunkBox
	SampleSizeBox        = types.SampleSizeBox
	ChunkOffsetBox       = types.ChunkOffsetBox
	ChunkOffset64Box     = types.ChunkOffset64Box
	EditListBox          = types.EditListBox
	ChapterListBox       = types.ChapterListBox
	MetadataMeanBox      = types.MetadataMeanBox
	MetadataNameBox      = types.MetadataNameBox
)

// SampleEntry is an alias to types.SampleEntry, one entry of a sample
// description box.
type SampleEntry = types.SampleEntry

// ItunesData is an alias to types.ItunesData, a decoded iTunes
// metadata value attached to its item box.
type ItunesData = types.ItunesData

// ItunesDataType is an alias to types.ItunesDataType.
type ItunesDataType = types.ItunesDataType

// iTunes data type codes.
const (
	ItunesTypeImplicit    = types.ItunesTypeImplicit
	ItunesTypeUTF8        = types.ItunesTypeUTF8
	ItunesTypeUTF16       = types.ItunesTypeUTF16
	ItunesTypeJPEG        = types.ItunesTypeJPEG
	ItunesTypePNG         = types.ItunesTypePNG
	ItunesTypeSignedInt   = types.ItunesTypeSignedInt
	ItunesTypeUnsignedInt = types.ItunesTypeUnsignedInt
)

// ItunesValue is an alias to types.ItunesValue, the closed union of
// decoded iTunes payloads.
type ItunesValue = types.ItunesValue

// iTunes value variants.
type (
	ItunesText        = types.ItunesText
	ItunesTrackNumber = types.ItunesTrackNumber
	ItunesDiskNumber  = types.ItunesDiskNumber
	ItunesSignedInt   = types.ItunesSignedInt
	ItunesUnsignedInt = types.ItunesUnsignedInt
	ItunesImage       = types.ItunesImage
	ItunesBinary      = types.ItunesBinary
)

// FormatTimestamp renders a millisecond timestamp as hh:mm:ss.mmm, the
// display form used for chapter times.
func FormatTimestamp(ms uint32) string {
	return types.FormatTimestamp(ms)
}
