package id3v2

import (
	"fmt"
	"io"

	"github.com/simonhull/mediadissect/internal/binary"
	"github.com/simonhull/mediadissect/internal/registry"
	"github.com/simonhull/mediadissect/internal/types"
)

func init() {
	registry.Register(&dissector{major: 3})
	registry.Register(&dissector{major: 4})
}

// dissector handles one ID3v2 major version. The two versions differ
// in frame size encoding, frame ID vocabulary, and allowed text
// encodings, so each registers separately and owns its own sniff rule.
type dissector struct {
	major uint8
}

func (d *dissector) Name() string {
	return fmt.Sprintf("ID3v2.%d Dissector", d.major)
}

func (d *dissector) MediaType() string {
	return fmt.Sprintf("ID3v2.%d", d.major)
}

func (d *dissector) Format() types.Format {
	if d.major == 4 {
		return types.FormatID3v24
	}
	return types.FormatID3v23
}

// Sniff matches the ID3 marker with this dissector's major version.
// The v2.3 dissector additionally accepts a bare MPEG frame sync, since
// an MP3 without a leading tag is still worth walking for one.
func (d *dissector) Sniff(probe []byte) bool {
	if major, _, ok := DetectVersion(probe); ok {
		return major == d.major
	}
	return d.major == 3 && DetectMPEGSync(probe)
}

func (d *dissector) Dissect(r io.ReaderAt, size int64, path string, opts registry.Options) (*types.File, error) {
	file := &types.File{
		Path:      path,
		Format:    d.Format(),
		MediaType: d.MediaType(),
		Dissector: d.Name(),
		Size:      size,
	}

	reader := binary.NewSafeReader(r, size, path)
	header, err := reader.ReadBytes(0, TagHeaderLen, "ID3v2 header")
	if err != nil {
		return nil, err
	}

	tag, headerWarnings, err := DecodeHeader(header)
	if err != nil {
		// MPEG audio that sniffed by frame sync alone
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "tag",
			Message: "no ID3v2 tag found",
		})
		return file, nil
	}
	if tag.VersionMajor != d.major {
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "tag",
			Message: fmt.Sprintf("expected ID3v2.%d, found version 2.%d", d.major, tag.VersionMajor),
		})
		return file, nil
	}
	file.Warnings = append(file.Warnings, headerWarnings...)

	switch {
	case tag.DeclaredSize > 100_000_000:
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "tag",
			Message: "extremely large tag size (> 100MB), verify file integrity",
			Offset:  6,
		})
	case tag.DeclaredSize > 50_000_000:
		file.Warnings = append(file.Warnings, types.Warning{
			Stage:   "tag",
			Message: "tag size is very large (> 50MB), likely rich podcast with chapter images",
			Offset:  6,
		})
	}

	if tag.DeclaredSize > 0 {
		data, err := reader.ReadBytes(TagHeaderLen, int(tag.DeclaredSize), "ID3v2 tag data")
		if err != nil {
			return nil, err
		}
		tagWarnings, err := DecodeTag(tag, data, path)
		file.Warnings = append(file.Warnings, tagWarnings...)
		if err != nil {
			return nil, err
		}
	}

	file.Tag = tag
	return file, nil
}
