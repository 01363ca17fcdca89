package mediadissect

import (
	"github.com/simonhull/mediadissect/internal/types"
)

// Tags is an alias to types.Tags, the format-agnostic metadata view
// derived by File.Summary.
// Re-exported from internal/types to form the public API.
type Tags = types.Tags
