// Package registry manages format-specific dissectors for media file types.
package registry

import (
	"io"
	"slices"

	"github.com/simonhull/mediadissect/internal/types"
)

// ProbeLen is how many leading bytes of a file every Sniff receives.
const ProbeLen = 12

// DefaultMaxRawPayload caps how many bytes of a leaf payload are kept
// in memory. Larger payloads keep their offset and size only.
const DefaultMaxRawPayload = 1 << 20

// Options carries decoding knobs shared across dissectors.
type Options struct {
	// MaxRawPayload is the retained-payload cap in bytes. Zero or
	// negative keeps no payloads at all.
	MaxRawPayload int64

	// DecodeItunes enables best-effort decoding of iTunes metadata
	// found under ilst containers.
	DecodeItunes bool
}

// DefaultOptions returns the settings used when the caller sets none.
func DefaultOptions() Options {
	return Options{
		MaxRawPayload: DefaultMaxRawPayload,
		DecodeItunes:  true,
	}
}

// Dissector is the interface all format dissectors implement.
type Dissector interface {
	// Name is the display name, e.g. "ISO Base Media File Format Dissector".
	Name() string

	// MediaType is the short media label, e.g. "ID3v2.3".
	MediaType() string

	// Format is the format constant this dissector produces.
	Format() types.Format

	// Sniff reports whether the probe bytes look like this format.
	// probe holds up to ProbeLen bytes and may be shorter for tiny files.
	Sniff(probe []byte) bool

	// Dissect decodes the file structure.
	// Returns a partially initialized File (Path, Format, Size set by caller).
	Dissect(r io.ReaderAt, size int64, path string, opts Options) (*types.File, error)
}

// dissectors holds the registered dissectors in probe order.
var dissectors []Dissector

// Register adds a dissector to the probe order.
// This is called by format packages during initialization (init functions).
// The probe order follows the Format constant order, not registration
// order, so it does not depend on package initialization sequence.
func Register(d Dissector) {
	i, _ := slices.BinarySearchFunc(dissectors, d, func(a, b Dissector) int {
		return int(a.Format()) - int(b.Format())
	})
	dissectors = slices.Insert(dissectors, i, d)
}

// Probe returns the first registered dissector whose Sniff accepts the
// probe bytes.
// Returns nil if no registered dissector recognizes the data.
func Probe(probe []byte) Dissector {
	for _, d := range dissectors {
		if d.Sniff(probe) {
			return d
		}
	}
	return nil
}

// ByFormat returns the registered dissector for a given format.
// Returns nil if no dissector is registered for the format.
func ByFormat(f types.Format) Dissector {
	for _, d := range dissectors {
		if d.Format() == f {
			return d
		}
	}
	return nil
}

// All returns the registered dissectors in probe order.
func All() []Dissector {
	return dissectors
}
