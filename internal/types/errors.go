package types

import "fmt"

// ParseErrorKind classifies recoverable parse failures into a closed set.
type ParseErrorKind int

const (
	// KindMalformed covers structural problems with no more specific kind.
	KindMalformed ParseErrorKind = iota
	// KindTooShort indicates a field or payload smaller than its fixed layout requires.
	KindTooShort
	// KindInvalidTerminator indicates a required null terminator was not found.
	KindInvalidTerminator
	// KindUnknownEncoding indicates a text encoding byte outside the defined range.
	KindUnknownEncoding
	// KindSizeExceedsBuffer indicates a declared size larger than the enclosing region.
	KindSizeExceedsBuffer
	// KindDepthExceeded indicates box nesting beyond the recursion limit.
	KindDepthExceeded
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindTooShort:
		return "too short"
	case KindInvalidTerminator:
		return "invalid terminator"
	case KindUnknownEncoding:
		return "unknown encoding"
	case KindSizeExceedsBuffer:
		return "size exceeds buffer"
	case KindDepthExceeded:
		return "depth exceeded"
	case KindMalformed:
		return "malformed"
	default:
		return "malformed"
	}
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when no dissector recognizes the file.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Kind   ParseErrorKind
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Warning represents a non-fatal issue encountered during dissection.
//
// Warnings indicate problems that don't prevent the rest of the file from
// being decoded but may indicate corrupted or unusual data. Examples include:
//   - A tag size byte with its reserved high bit set
//   - A frame ID not defined for the tag version
//   - A frame payload that failed typed decoding and was kept as raw bytes
//   - A box subtree abandoned because a child overran its parent
//
// Warnings are collected in File.Warnings during dissection.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "detection", "tag", "frame", "structure", "box", "metadata"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
