package isobmff

import (
	"errors"
	"io"

	"github.com/simonhull/mediadissect/internal/binary"
	"github.com/simonhull/mediadissect/internal/registry"
	"github.com/simonhull/mediadissect/internal/types"
)

func init() {
	registry.Register(&dissector{})
}

// knownBrands are the ftyp major brands accepted during sniffing.
var knownBrands = map[string]bool{
	"isom": true,
	"iso2": true,
	"iso3": true,
	"iso4": true,
	"iso5": true,
	"iso6": true,
	"mp41": true,
	"mp42": true,
	"mp71": true,
	"M4A ": true,
	"M4V ": true,
	"M4P ": true,
	"M4B ": true,
	"qt  ": true,
	"mqt ": true,
	"3gp4": true,
	"3gp5": true,
	"3gp6": true,
	"3gp7": true,
	"3gp8": true,
	"3gp9": true,
	"3g2a": true,
	"3g2b": true,
	"3g2c": true,
	"mmp4": true,
	"avc1": true,
	"MSNV": true,
	"dash": true,
	"msdh": true,
	"msix": true,
}

type dissector struct{}

func (d *dissector) Name() string {
	return "ISO Base Media File Format Dissector"
}

func (d *dissector) MediaType() string {
	return "ISOBMFF"
}

func (d *dissector) Format() types.Format {
	return types.FormatISOBMFF
}

// Sniff requires an ftyp box at offset zero with a known major brand.
func (d *dissector) Sniff(probe []byte) bool {
	if len(probe) < 12 {
		return false
	}
	if string(probe[4:8]) != "ftyp" {
		return false
	}
	return knownBrands[string(probe[8:12])]
}

func (d *dissector) Dissect(r io.ReaderAt, size int64, path string, opts registry.Options) (*types.File, error) {
	file := &types.File{
		Path:      path,
		Format:    d.Format(),
		MediaType: d.MediaType(),
		Dissector: d.Name(),
		Size:      size,
	}

	sr := binary.NewSafeReader(r, size, path)
	boxes, err := parseBoxes(sr, 0, size, 0, opts)
	if err != nil {
		if len(boxes) == 0 {
			return nil, err
		}
		// Part of the tree parsed. Keep it and report the damage.
		file.Warnings = append(file.Warnings, structureWarning(err))
	}

	file.Boxes = boxes
	return file, nil
}

// structureWarning converts a box tree error into the warning attached
// to a partially parsed file.
func structureWarning(err error) types.Warning {
	w := types.Warning{Stage: "structure", Message: err.Error()}

	var corrupted *types.CorruptedFileError
	var outOfBounds *types.OutOfBoundsError
	switch {
	case errors.As(err, &corrupted):
		w.Message = corrupted.Reason
		w.Offset = corrupted.Offset
	case errors.As(err, &outOfBounds):
		w.Message = "box tree truncated by end of file"
		w.Offset = outOfBounds.Offset
	}
	return w
}
