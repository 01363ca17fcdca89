package types

import "testing"

func TestBoxDataOffsetAndSize(t *testing.T) {
	b := &Box{Offset: 100, Type: "mvhd", Size: 108, HeaderSize: 8}

	if got := b.DataOffset(); got != 108 {
		t.Errorf("DataOffset() = %d, want 108", got)
	}
	if got := b.DataSize(); got != 100 {
		t.Errorf("DataSize() = %d, want 100", got)
	}

	// Extended header
	b = &Box{Offset: 0, Type: "mdat", Size: 1 << 33, HeaderSize: 16}
	if got := b.DataOffset(); got != 16 {
		t.Errorf("DataOffset() = %d, want 16", got)
	}
	if got := b.DataSize(); got != (1<<33)-16 {
		t.Errorf("DataSize() = %d, want %d", got, uint64(1<<33)-16)
	}

	// Size smaller than header never underflows
	b = &Box{Size: 4, HeaderSize: 8}
	if got := b.DataSize(); got != 0 {
		t.Errorf("DataSize() = %d, want 0", got)
	}
}

func TestBoxFind(t *testing.T) {
	tree := &Box{
		Type: "moov",
		Children: []*Box{
			{Type: "mvhd"},
			{
				Type: "trak",
				Children: []*Box{
					{Type: "tkhd"},
					{Type: "mdia", Children: []*Box{{Type: "mdhd"}}},
				},
			},
		},
	}

	if got := tree.Find("mdhd"); got == nil {
		t.Error("Find(mdhd) should locate nested box")
	}
	if got := tree.Find("moov"); got != tree {
		t.Error("Find should consider the receiver itself")
	}
	if got := tree.Find("ilst"); got != nil {
		t.Errorf("Find(ilst) = %v, want nil", got)
	}
}

func TestHandlerBoxDescription(t *testing.T) {
	tests := []struct {
		handlerType string
		want        string
	}{
		{"vide", "Video Track"},
		{"soun", "Audio Track"},
		{"mdir", "Metadata Directory"},
		{"clcp", "Closed Caption Track"},
		{"tmcd", "Timecode Track"},
		{"zzzz", "Unknown Handler"},
	}

	for _, tc := range tests {
		h := &HandlerBox{HandlerType: tc.handlerType}
		if got := h.Description(); got != tc.want {
			t.Errorf("Description(%q) = %q, want %q", tc.handlerType, got, tc.want)
		}
	}
}

func TestTrackHeaderFlags(t *testing.T) {
	h := &TrackHeaderBox{Flags: TrackFlagEnabled | TrackFlagInMovie}
	if !h.Enabled() {
		t.Error("expected enabled flag to be set")
	}
	if !h.InMovie() {
		t.Error("expected in-movie flag to be set")
	}
	if h.InPreview() {
		t.Error("expected in-preview flag to be clear")
	}
}

func TestItunesDataTypeString(t *testing.T) {
	tests := []struct {
		dataType ItunesDataType
		want     string
	}{
		{ItunesTypeImplicit, "Implicit"},
		{ItunesTypeUTF8, "UTF-8"},
		{ItunesTypeUTF16, "UTF-16 BE"},
		{ItunesTypeJPEG, "JPEG"},
		{ItunesTypePNG, "PNG"},
		{ItunesTypeSignedInt, "Signed Integer"},
		{ItunesTypeUnsignedInt, "Unsigned Integer"},
		{ItunesDataType(0x42), "Binary (0x42)"},
		// Only the low byte appears in the fallback label
		{ItunesDataType(0x100), "Binary (0x00)"},
	}

	for _, tc := range tests {
		if got := tc.dataType.String(); got != tc.want {
			t.Errorf("ItunesDataType(0x%X).String() = %q, want %q", uint32(tc.dataType), got, tc.want)
		}
	}
}

func TestItunesDataString(t *testing.T) {
	tests := []struct {
		name string
		data *ItunesData
		want string
	}{
		{
			name: "text",
			data: &ItunesData{Type: ItunesTypeUTF8, Value: &ItunesText{Text: "Abbey Road"}},
			want: `"Abbey Road"`,
		},
		{
			name: "track with total",
			data: &ItunesData{Type: ItunesTypeImplicit, Value: &ItunesTrackNumber{Number: 3, Total: 12}},
			want: "Track 3 of 12",
		},
		{
			name: "track without total",
			data: &ItunesData{Type: ItunesTypeImplicit, Value: &ItunesTrackNumber{Number: 3}},
			want: "Track 3",
		},
		{
			name: "disk with total",
			data: &ItunesData{Type: ItunesTypeImplicit, Value: &ItunesDiskNumber{Number: 1, Total: 2}},
			want: "Disk 1 of 2",
		},
		{
			name: "signed integer",
			data: &ItunesData{Type: ItunesTypeSignedInt, Value: &ItunesSignedInt{Value: -5}},
			want: "-5",
		},
		{
			name: "image",
			data: &ItunesData{Type: ItunesTypeJPEG, Value: &ItunesImage{Format: "JPEG", Size: 2048}},
			want: "JPEG image, 2048 bytes",
		},
		{
			name: "binary",
			data: &ItunesData{Type: ItunesDataType(0x42), Value: &ItunesBinary{Data: []byte{1, 2, 3}}},
			want: "Binary data, 3 bytes",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.data.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSniffImageMIME(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), "image/png"},
		{"gif", []byte("GIF89a...."), "image/gif"},
		{"bmp", []byte("BM1234"), "image/bmp"},
		{"unknown", []byte{0x00, 0x01, 0x02}, ""},
		{"empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SniffImageMIME(tc.data); got != tc.want {
				t.Errorf("SniffImageMIME() = %q, want %q", got, tc.want)
			}
		})
	}
}
