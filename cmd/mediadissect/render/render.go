// Package render turns decoded media structures into the terminal
// listing printed by the mediadissect CLI. It formats what the
// dissectors already decoded and never reads the file itself.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/mediadissect"
)

// Options control how much of the decoded structure is shown.
type Options struct {
	// Verbose includes the sample table and padding boxes that are
	// normally suppressed.
	Verbose bool

	// Dump appends a hex dump of each retained raw payload.
	Dump bool
}

// dumpLimit caps the hex dump of image payloads. Cover art runs to
// hundreds of kilobytes and only the leading bytes identify it.
const dumpLimit = 128

// Banner writes the two line detection summary for a dissected file.
func Banner(w io.Writer, f *mediadissect.File) {
	fmt.Fprintf(w, "Analyzing file: %s\n", f.Path)
	fmt.Fprintf(w, "Detected format: %s (%s)\n", f.MediaType, f.Dissector)
}

// Warnings lists the warnings recorded during dissection, one per line.
// It writes nothing for a clean file.
func Warnings(w io.Writer, f *mediadissect.File) {
	if len(f.Warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "\nWarnings (%d):\n", len(f.Warnings))
	for _, warn := range f.Warnings {
		fmt.Fprintf(w, "  %s\n", warn.String())
	}
}

// pad returns the indentation for a nesting level, four spaces per level.
func pad(level int) string {
	return strings.Repeat("    ", level)
}

// writeIndented writes every line of text prefixed with indent.
// Blank lines stay blank.
func writeIndented(w io.Writer, indent, text string) {
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
}
