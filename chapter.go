package mediadissect

import (
	"github.com/simonhull/mediadissect/internal/types"
)

// Chapter is an alias to types.Chapter, assembled from CHAP frames by
// ID3v2Tag.Chapters.
// Re-exported from internal/types to form the public API.
type Chapter = types.Chapter
