package types

// Format identifies the container or tag format detected for a file.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatID3v23 represents files carrying an ID3v2.3 tag.
	FormatID3v23
	// FormatID3v24 represents files carrying an ID3v2.4 tag.
	FormatID3v24
	// FormatISOBMFF represents ISO Base Media File Format files (MP4, M4A, M4B, MOV).
	FormatISOBMFF
)

func (f Format) String() string {
	switch f {
	case FormatID3v23:
		return "ID3v2.3"
	case FormatID3v24:
		return "ID3v2.4"
	case FormatISOBMFF:
		return "ISOBMFF"
	case FormatUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatID3v23, FormatID3v24:
		return []string{".mp3"}
	case FormatISOBMFF:
		return []string{".mp4", ".m4a", ".m4b", ".m4v", ".mov", ".3gp"}
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}
