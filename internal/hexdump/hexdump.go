// Package hexdump renders byte slices as offset/hex/ASCII gutter lines
// for diagnostic output.
package hexdump

import (
	"fmt"
	"strings"
)

// Format renders data as a hexdump, 16 bytes per line.
//
// Each line shows the offset (baseOffset plus the position within data),
// the hex bytes in two groups of eight, and an ASCII gutter where bytes
// outside 0x20..0x7E appear as '.'.
func Format(data []byte, baseOffset int64) string {
	return FormatLimited(data, baseOffset, 0)
}

// FormatLimited renders at most maxBytes of data and appends a
// "<truncated>" notice when data is longer. A maxBytes of zero or less
// disables the limit.
func FormatLimited(data []byte, baseOffset int64, maxBytes int) string {
	truncated := false
	if maxBytes > 0 && len(data) > maxBytes {
		data = data[:maxBytes]
		truncated = true
	}

	var b strings.Builder
	for start := 0; start < len(data); start += 16 {
		line := data[start:min(start+16, len(data))]

		fmt.Fprintf(&b, "%08X  ", baseOffset+int64(start))

		for col, c := range line {
			if col == 8 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02X ", c)
		}

		// Pad short lines so the ASCII gutter stays aligned.
		for col := len(line); col < 16; col++ {
			if col == 8 {
				b.WriteByte(' ')
			}
			b.WriteString("   ")
		}

		b.WriteString(" |")
		for _, c := range line {
			if c >= 0x20 && c <= 0x7E {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}

	if truncated {
		b.WriteString("<truncated>\n")
	}
	return b.String()
}
