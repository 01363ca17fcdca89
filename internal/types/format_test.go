package types

import "testing"

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatID3v23, "ID3v2.3"},
		{FormatID3v24, "ID3v2.4"},
		{FormatISOBMFF, "ISOBMFF"},
		{FormatUnknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.format.String(); got != tc.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tc.format), got, tc.want)
		}
	}
}

func TestFormatExtensions(t *testing.T) {
	tests := []struct {
		format Format
		want   int
	}{
		{FormatID3v23, 1},
		{FormatID3v24, 1},
		{FormatISOBMFF, 6},
		{FormatUnknown, 0},
	}

	for _, tc := range tests {
		got := tc.format.Extensions()
		if len(got) != tc.want {
			t.Errorf("%s.Extensions() = %v, want %d entries", tc.format, got, tc.want)
		}
	}
}
