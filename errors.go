package mediadissect

import (
	"github.com/simonhull/mediadissect/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exported from internal/types to form the public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exported from internal/types to form the public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exported from internal/types to form the public API.
type CorruptedFileError = types.CorruptedFileError

// Warning is an alias to types.Warning.
// Re-exported from internal/types to form the public API.
type Warning = types.Warning

// ParseErrorKind is an alias to types.ParseErrorKind.
// Re-exported from internal/types to form the public API.
type ParseErrorKind = types.ParseErrorKind

// Re-export the parse error kinds carried by CorruptedFileError.
const (
	KindMalformed         = types.KindMalformed
	KindTooShort          = types.KindTooShort
	KindInvalidTerminator = types.KindInvalidTerminator
	KindUnknownEncoding   = types.KindUnknownEncoding
	KindSizeExceedsBuffer = types.KindSizeExceedsBuffer
	KindDepthExceeded     = types.KindDepthExceeded
)
