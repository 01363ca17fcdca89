package isobmff

import (
	"testing"

	"github.com/simonhull/mediadissect/internal/types"
)

// dataPayload assembles a data box payload with the given type tag.
func dataPayload(typeTag byte, value []byte) []byte {
	b := []byte{
		0x00,                // version
		0x00, 0x00, typeTag, // type tag
		0x00, 0x00, 0x00, 0x00, // reserved
	}
	return append(b, value...)
}

func decodeValue(t *testing.T, itemType string, typeTag byte, value []byte) *types.ItunesData {
	t.Helper()
	d, err := decodeItunesData(itemType, dataPayload(typeTag, value))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func TestDecodeItunesData_UTF8Text(t *testing.T) {
	d := decodeValue(t, "©nam", 0x01, []byte("Test Song"))
	if d.Type != types.ItunesTypeUTF8 {
		t.Errorf("expected UTF-8 type, got %v", d.Type)
	}

	text, ok := d.Value.(*types.ItunesText)
	if !ok {
		t.Fatalf("expected ItunesText, got %T", d.Value)
	}
	if text.Text != "Test Song" {
		t.Errorf("expected %q, got %q", "Test Song", text.Text)
	}
}

func TestDecodeItunesData_ImplicitText(t *testing.T) {
	d := decodeValue(t, "©gen", 0x00, []byte("Podcast"))
	if d.Type != types.ItunesTypeImplicit {
		t.Errorf("expected implicit type, got %v", d.Type)
	}

	text, ok := d.Value.(*types.ItunesText)
	if !ok {
		t.Fatalf("expected ItunesText, got %T", d.Value)
	}
	if text.Text != "Podcast" {
		t.Errorf("expected %q, got %q", "Podcast", text.Text)
	}
}

func TestDecodeItunesData_UTF16Text(t *testing.T) {
	d := decodeValue(t, "©nam", 0x02, []byte{0x00, 'H', 0x00, 'i'})

	text, ok := d.Value.(*types.ItunesText)
	if !ok {
		t.Fatalf("expected ItunesText, got %T", d.Value)
	}
	if text.Text != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", text.Text)
	}
}

func TestDecodeItunesData_UTF16TrailingByteDropped(t *testing.T) {
	d := decodeValue(t, "©nam", 0x02, []byte{0x00, 'H', 0x00, 'i', 0x00})

	text, ok := d.Value.(*types.ItunesText)
	if !ok {
		t.Fatalf("expected ItunesText, got %T", d.Value)
	}
	if text.Text != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", text.Text)
	}
}

func TestDecodeItunesData_TrackNumberImplicit(t *testing.T) {
	value := []byte{0x00, 0x00, 0x00, 0x03, 0x00, 0x0C, 0x00, 0x00}
	d := decodeValue(t, "trkn", 0x00, value)

	track, ok := d.Value.(*types.ItunesTrackNumber)
	if !ok {
		t.Fatalf("expected ItunesTrackNumber, got %T", d.Value)
	}
	if track.Number != 3 || track.Total != 12 {
		t.Errorf("expected track 3 of 12, got %d of %d", track.Number, track.Total)
	}
	if d.String() != "Track 3 of 12" {
		t.Errorf("unexpected rendering %q", d.String())
	}
}

func TestDecodeItunesData_DiskNumberUnsigned(t *testing.T) {
	value := []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x02}
	d := decodeValue(t, "disk", 0x16, value)

	disk, ok := d.Value.(*types.ItunesDiskNumber)
	if !ok {
		t.Fatalf("expected ItunesDiskNumber, got %T", d.Value)
	}
	if disk.Number != 1 || disk.Total != 2 {
		t.Errorf("expected disk 1 of 2, got %d of %d", disk.Number, disk.Total)
	}
}

func TestDecodeItunesData_TrackTooShortFallsToInteger(t *testing.T) {
	// A trkn item whose payload cannot hold the number triple decodes
	// as a plain integer.
	d := decodeValue(t, "trkn", 0x16, []byte{0x00, 0x07})

	value, ok := d.Value.(*types.ItunesUnsignedInt)
	if !ok {
		t.Fatalf("expected ItunesUnsignedInt, got %T", d.Value)
	}
	if value.Value != 7 {
		t.Errorf("expected 7, got %d", value.Value)
	}
}

func TestDecodeItunesData_SignedIntSizes(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    int64
	}{
		{"one byte", []byte{0xFF}, -1},
		{"two bytes", []byte{0x00, 0x2A}, 42},
		{"four bytes", []byte{0xFF, 0xFF, 0xFF, 0x00}, -256},
		{"eight bytes", []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, 1 << 32},
	}

	for _, tt := range tests {
		d := decodeValue(t, "tmpo", 0x15, tt.payload)
		value, ok := d.Value.(*types.ItunesSignedInt)
		if !ok {
			t.Errorf("%s: expected ItunesSignedInt, got %T", tt.name, d.Value)
			continue
		}
		if value.Value != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, value.Value)
		}
	}
}

func TestDecodeItunesData_UnsignedIntSizes(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    uint64
	}{
		{"one byte", []byte{0xFF}, 255},
		{"two bytes", []byte{0x01, 0x00}, 256},
		{"four bytes", []byte{0x00, 0x00, 0x01, 0x00}, 256},
		{"eight bytes", []byte{0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		d := decodeValue(t, "cnID", 0x16, tt.payload)
		value, ok := d.Value.(*types.ItunesUnsignedInt)
		if !ok {
			t.Errorf("%s: expected ItunesUnsignedInt, got %T", tt.name, d.Value)
			continue
		}
		if value.Value != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, value.Value)
		}
	}
}

func TestDecodeItunesData_BadIntegerSize(t *testing.T) {
	if _, err := decodeItunesData("tmpo", dataPayload(0x15, []byte{0x00, 0x00, 0x01})); err == nil {
		t.Error("expected error for 3 byte signed integer")
	}
	if _, err := decodeItunesData("cnID", dataPayload(0x16, []byte{0x00, 0x00, 0x01})); err == nil {
		t.Error("expected error for 3 byte unsigned integer")
	}
}

func TestDecodeItunesData_Images(t *testing.T) {
	jpeg := decodeValue(t, "covr", 0x0D, []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00})
	image, ok := jpeg.Value.(*types.ItunesImage)
	if !ok {
		t.Fatalf("expected ItunesImage, got %T", jpeg.Value)
	}
	if image.Format != "JPEG" || image.Size != 5 {
		t.Errorf("expected 5 byte JPEG, got %d byte %s", image.Size, image.Format)
	}

	png := decodeValue(t, "covr", 0x0E, make([]byte, 8))
	image, ok = png.Value.(*types.ItunesImage)
	if !ok {
		t.Fatalf("expected ItunesImage, got %T", png.Value)
	}
	if image.Format != "PNG" || image.Size != 8 {
		t.Errorf("expected 8 byte PNG, got %d byte %s", image.Size, image.Format)
	}
}

func TestDecodeItunesData_BinaryFallback(t *testing.T) {
	d := decodeValue(t, "----", 0x99, []byte{0x01, 0x02, 0x03})
	if d.Type.String() != "Binary (0x99)" {
		t.Errorf("unexpected type rendering %q", d.Type.String())
	}

	bin, ok := d.Value.(*types.ItunesBinary)
	if !ok {
		t.Fatalf("expected ItunesBinary, got %T", d.Value)
	}
	if len(bin.Data) != 3 {
		t.Errorf("expected 3 bytes, got %d", len(bin.Data))
	}
}

func TestDecodeItunesData_TooShort(t *testing.T) {
	if _, err := decodeItunesData("©nam", []byte{0x00, 0x00, 0x00, 0x01}); err == nil {
		t.Error("expected error for payload below the 8 byte preamble")
	}
}
