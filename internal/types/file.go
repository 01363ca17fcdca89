// Package types provides core data structures for dissected media files.
//
// This package defines the File, ID3v2Tag, Frame, Box, and ItunesData types
// that represent the decoded structure of a media file across all supported
// formats.
package types

import "io"

// File represents the dissected structure of a single media file.
//
// Exactly one of Tag or Boxes is populated, depending on the detected
// format. Files in an unrecognized format produce a File with
// FormatUnknown and neither field set.
type File struct {
	Path string

	// Format is the detected container or tag format.
	Format Format

	// MediaType is the format label reported by the dissector that
	// handled the file, such as "ID3v2.3" or "ISOBMFF".
	MediaType string

	// Dissector is the descriptive name of the dissector that produced
	// this result.
	Dissector string

	// Size is the file size in bytes.
	Size int64

	// Tag holds the decoded ID3v2 tag for ID3 formats.
	Tag *ID3v2Tag

	// Boxes holds the top-level box tree for ISOBMFF files.
	Boxes []*Box

	// Warnings collects non-fatal problems found during dissection.
	Warnings []Warning

	// Source is the reader the file was dissected from. Open stores the
	// file handle here; dissection from a plain reader leaves it nil.
	Source io.ReaderAt
}

// Close releases the file handle held in Source, when there is one.
// The dissected structure remains fully usable after Close.
func (f *File) Close() error {
	src := f.Source
	f.Source = nil
	if closer, ok := src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
