package mediadissect

import (
	"io"

	"github.com/simonhull/mediadissect/internal/registry"
	"github.com/simonhull/mediadissect/internal/types"
)

// Format is an alias to types.Format.
// Re-exported from internal/types to form the public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatID3v23  = types.FormatID3v23
	FormatID3v24  = types.FormatID3v24
	FormatISOBMFF = types.FormatISOBMFF
)

// SupportedMediaTypes lists the media types the registered dissectors
// recognize, in probe order.
func SupportedMediaTypes() []string {
	var names []string
	for _, d := range registry.All() {
		names = append(names, d.MediaType())
	}
	return names
}

// DetectFormat reports the format the dispatcher would select for the
// file content, without dissecting it.
//
// Detection reads the first bytes of the file and asks each registered
// dissector in order; the first match wins. Content nobody recognizes
// is FormatUnknown, never an error.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	probe, err := readProbe(r, size, path)
	if err != nil {
		return FormatUnknown, err
	}
	if d := registry.Probe(probe); d != nil {
		return d.Format(), nil
	}
	return FormatUnknown, nil
}

// readProbe reads up to registry.ProbeLen leading bytes. Files shorter
// than the probe window yield what they have.
func readProbe(r io.ReaderAt, size int64, path string) ([]byte, error) {
	n := int64(registry.ProbeLen)
	if size < n {
		n = size
	}
	if n <= 0 {
		return nil, nil
	}

	probe := make([]byte, n)
	if _, err := r.ReadAt(probe, 0); err != nil {
		return nil, &types.OutOfBoundsError{
			Path:   path,
			What:   "format probe",
			Offset: 0,
			Length: int(n),
			Size:   size,
		}
	}
	return probe, nil
}
