package textenc

import (
	"slices"
	"testing"

	"github.com/simonhull/mediadissect/internal/types"
)

func TestParseEncoding(t *testing.T) {
	for b := byte(0); b <= 3; b++ {
		enc, err := ParseEncoding(b)
		if err != nil {
			t.Fatalf("ParseEncoding(%d) unexpected error: %v", b, err)
		}
		if uint8(enc) != b {
			t.Errorf("ParseEncoding(%d) = %v", b, enc)
		}
	}

	if _, err := ParseEncoding(4); err == nil {
		t.Error("expected error for encoding byte 4, got nil")
	}
	if _, err := ParseEncoding(0xFF); err == nil {
		t.Error("expected error for encoding byte 0xFF, got nil")
	}
}

func TestDecodeLatin1(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"ascii", []byte("Hello"), "Hello"},
		{"high bytes", []byte{0x63, 0x61, 0x66, 0xE9}, "café"},
		{"degree sign", []byte{0xB0}, "°"},
		{"empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeLatin1(tc.data); got != tc.want {
				t.Errorf("DecodeLatin1(% x) = %q, want %q", tc.data, got, tc.want)
			}
		})
	}
}

func TestDecodeUTF8Lossy(t *testing.T) {
	got, err := Decode([]byte("plain"), types.EncodingUTF8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain" {
		t.Errorf("Decode = %q, want %q", got, "plain")
	}

	// Ill-formed bytes become replacement characters instead of failing
	got, err = Decode([]byte{'o', 'k', 0xFF, 'x'}, types.EncodingUTF8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok�x" {
		t.Errorf("Decode = %q, want %q", got, "ok�x")
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"BE BOM", []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}, "Hi"},
		{"LE BOM", []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}, "Hi"},
		{"no BOM defaults to BE", []byte{0x00, 'H', 0x00, 'i'}, "Hi"},
		{"BOM only", []byte{0xFE, 0xFF}, ""},
		{"empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(tc.data, types.EncodingUTF16)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Decode(% x) = %q, want %q", tc.data, got, tc.want)
			}
		})
	}
}

func TestDecodeUTF16OddLength(t *testing.T) {
	if _, err := Decode([]byte{0xFE, 0xFF, 0x00}, types.EncodingUTF16); err == nil {
		t.Error("expected error for odd-length UTF-16 data, got nil")
	}
	if _, err := Decode([]byte{0x00}, types.EncodingUTF16BE); err == nil {
		t.Error("expected error for odd-length UTF-16BE data, got nil")
	}
}

func TestDecodeUTF16BE(t *testing.T) {
	got, err := Decode([]byte{0x00, 'B', 0x00, 'E'}, types.EncodingUTF16BE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "BE" {
		t.Errorf("Decode = %q, want %q", got, "BE")
	}
}

func TestDecodeMulti(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		enc         types.TextEncoding
		wantPrimary string
		wantAll     []string
	}{
		{
			name:        "single terminated",
			data:        []byte("Title\x00"),
			enc:         types.EncodingLatin1,
			wantPrimary: "Title",
			wantAll:     []string{"Title"},
		},
		{
			name:        "single unterminated",
			data:        []byte("Title"),
			enc:         types.EncodingLatin1,
			wantPrimary: "Title",
			wantAll:     []string{"Title"},
		},
		{
			name:        "multiple values",
			data:        []byte("Rock\x00Pop\x00"),
			enc:         types.EncodingLatin1,
			wantPrimary: "Rock",
			wantAll:     []string{"Rock", "Pop"},
		},
		{
			name:        "empty segments dropped",
			data:        []byte("One\x00\x00Two"),
			enc:         types.EncodingLatin1,
			wantPrimary: "One",
			wantAll:     []string{"One", "Two"},
		},
		{
			name:        "all empty",
			data:        []byte{0x00, 0x00},
			enc:         types.EncodingLatin1,
			wantPrimary: "",
			wantAll:     nil,
		},
		{
			name:        "empty data",
			data:        nil,
			enc:         types.EncodingLatin1,
			wantPrimary: "",
			wantAll:     nil,
		},
		{
			name:        "utf16 pair",
			data:        []byte{0xFE, 0xFF, 0x00, 'A', 0x00, 0x00, 0xFE, 0xFF, 0x00, 'B'},
			enc:         types.EncodingUTF16,
			wantPrimary: "A",
			wantAll:     []string{"A", "B"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			primary, all, err := DecodeMulti(tc.data, tc.enc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if primary != tc.wantPrimary {
				t.Errorf("primary = %q, want %q", primary, tc.wantPrimary)
			}
			if !slices.Equal(all, tc.wantAll) {
				t.Errorf("all = %v, want %v", all, tc.wantAll)
			}
		})
	}
}

func TestDecodeMulti_OddUTF16Tail(t *testing.T) {
	// Unterminated UTF-16 tail with an odd byte count is a structural error
	if _, _, err := DecodeMulti([]byte{0x00, 'A', 0x00}, types.EncodingUTF16); err == nil {
		t.Error("expected error for odd UTF-16 tail, got nil")
	}
}

func TestFindTerminator(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		enc       types.TextEncoding
		wantIdx   int
		wantFound bool
	}{
		{"latin1 found", []byte("ab\x00cd"), types.EncodingLatin1, 2, true},
		{"latin1 missing", []byte("abcd"), types.EncodingLatin1, 4, false},
		{"latin1 at start", []byte("\x00ab"), types.EncodingLatin1, 0, true},
		{"utf16 needs two zeros", []byte{0x00, 'A', 0x00, 0x00}, types.EncodingUTF16, 2, true},
		{"utf16 missing", []byte{0x00, 'A', 0x00, 'B'}, types.EncodingUTF16, 4, false},
		{"empty", nil, types.EncodingLatin1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx, found := FindTerminator(tc.data, tc.enc)
			if idx != tc.wantIdx || found != tc.wantFound {
				t.Errorf("FindTerminator(% x) = (%d, %v), want (%d, %v)",
					tc.data, idx, found, tc.wantIdx, tc.wantFound)
			}
		})
	}
}

func TestSplitTerminated(t *testing.T) {
	first, rest, err := SplitTerminated([]byte("desc\x00value"), types.EncodingLatin1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "desc" {
		t.Errorf("first = %q, want %q", first, "desc")
	}
	if string(rest) != "value" {
		t.Errorf("rest = %q, want %q", rest, "value")
	}
}

func TestSplitTerminated_NoTerminator(t *testing.T) {
	first, rest, err := SplitTerminated([]byte("only"), types.EncodingLatin1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "only" {
		t.Errorf("first = %q, want %q", first, "only")
	}
	if rest != nil {
		t.Errorf("rest = %v, want nil", rest)
	}
}

func TestSplitTerminated_UTF16(t *testing.T) {
	data := []byte{0xFE, 0xFF, 0x00, 'D', 0x00, 0x00, 'r', 'e', 's', 't'}
	first, rest, err := SplitTerminated(data, types.EncodingUTF16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "D" {
		t.Errorf("first = %q, want %q", first, "D")
	}
	if string(rest) != "rest" {
		t.Errorf("rest = %q, want %q", rest, "rest")
	}
}
