package types

import "fmt"

// Artwork is an embedded image found during dissection.
//
// For ID3 formats the source is an APIC frame; for ISOBMFF it is a covr
// metadata item. Multiple artworks per file are supported.
type Artwork struct {
	// Source is the native carrier of the image, "APIC" or "covr".
	Source string

	// MIMEType of the image data, such as "image/jpeg". Sniffed from
	// the image bytes when the carrier doesn't declare one.
	MIMEType string

	// PictureType is the APIC picture type. Zero for covr items.
	PictureType PictureType

	// Description of the artwork (APIC only, optional).
	Description string

	// Image binary data.
	Data []byte
}

// String returns a human-readable description of the artwork.
//
// Example output: "Cover (front) (JPEG, 245KB)"
func (a Artwork) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.PictureType, mimeToFormat(a.MIMEType), formatSize(len(a.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}

// Artworks collects the embedded images found in the dissected
// structure: APIC frames for ID3 formats, covr items for ISOBMFF.
// The returned Data slices alias the dissected payloads. Images whose
// payload was not retained (over the raw payload cap) are omitted.
func (f *File) Artworks() []Artwork {
	var artworks []Artwork
	if f.Tag != nil {
		for _, frame := range f.Tag.Frames {
			pc, ok := frame.Content.(*PictureContent)
			if !ok {
				continue
			}
			mime := pc.MIMEType
			if mime == "" {
				mime = SniffImageMIME(pc.Data)
			}
			artworks = append(artworks, Artwork{
				Source:      "APIC",
				MIMEType:    mime,
				PictureType: pc.PictureType,
				Description: pc.Description,
				Data:        pc.Data,
			})
		}
	}
	for _, box := range f.Boxes {
		collectCoverArt(&artworks, box)
	}
	return artworks
}

// collectCoverArt pulls image payloads out of covr data children. The
// first 8 bytes of a data payload are the version/flags and reserved
// words, the image bytes follow.
func collectCoverArt(artworks *[]Artwork, box *Box) {
	if box.Type == "covr" {
		for _, child := range box.Children {
			if child.Type != "data" || len(child.Raw) <= 8 {
				continue
			}
			data := child.Raw[8:]
			*artworks = append(*artworks, Artwork{
				Source:   "covr",
				MIMEType: SniffImageMIME(data),
				Data:     data,
			})
		}
		return
	}
	for _, child := range box.Children {
		collectCoverArt(artworks, child)
	}
}

// SniffImageMIME detects the MIME type of image data from its magic
// bytes. Returns "" when the signature is not recognized.
func SniffImageMIME(data []byte) string {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return "image/png"
	case len(data) >= 6 && (string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a"):
		return "image/gif"
	case len(data) >= 2 && string(data[:2]) == "BM":
		return "image/bmp"
	default:
		return ""
	}
}
