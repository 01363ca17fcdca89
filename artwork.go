package mediadissect

import (
	"github.com/simonhull/mediadissect/internal/types"
)

// Artwork is an alias to types.Artwork, collected by File.Artworks.
// Re-exported from internal/types to form the public API.
type Artwork = types.Artwork

// SniffImageMIME detects the MIME type of image data from its magic
// bytes. Returns "" when the signature is not recognized.
func SniffImageMIME(data []byte) string {
	return types.SniffImageMIME(data)
}
