package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/mediadissect"
	"github.com/simonhull/mediadissect/internal/hexdump"
	"github.com/simonhull/mediadissect/internal/isobmff"
)

// technicalBoxes are sample table and padding boxes that crowd the
// listing without telling the reader much. They only show up with -v.
var technicalBoxes = map[string]bool{
	"mdat": true,
	"free": true,
	"stts": true,
	"stsc": true,
	"stsz": true,
	"stco": true,
	"co64": true,
}

// FileTypeHeader writes the leading ftyp box as its own section. It
// writes nothing when the tree does not start with an ftyp box.
func FileTypeHeader(w io.Writer, f *mediadissect.File) {
	if len(f.Boxes) == 0 || f.Boxes[0].Type != "ftyp" {
		return
	}
	fmt.Fprintf(w, "\nISO Base Media File Format Header:\n")
	renderBox(w, f.Boxes[0], 0, Options{Verbose: true})
	fmt.Fprintln(w)
}

// Boxes writes the box tree, one line per box with decoded content
// lines nested underneath.
func Boxes(w io.Writer, boxes []*mediadissect.Box, opts Options) {
	fmt.Fprintf(w, "Box Structure:\n\n")
	for _, b := range boxes {
		renderBox(w, b, 0, opts)
	}
}

func renderBox(w io.Writer, b *mediadissect.Box, level int, opts Options) {
	if !opts.Verbose && technicalBoxes[b.Type] {
		return
	}

	indent := pad(level)
	fmt.Fprintf(w, "%sBox at offset 0x%08X: '%s' (%s) - Size: %d bytes\n",
		indent, b.Offset, b.Type, isobmff.Describe(b.Type), b.Size)

	content := indent + "    "
	if b.Itunes != nil {
		fmt.Fprintf(w, "%sData Type: %s\n", content, b.Itunes.Type)
		fmt.Fprintf(w, "%sValue: %s\n", content, b.Itunes)
	}
	if b.Content != nil {
		renderBoxContent(w, content, b.Content)
	}

	if opts.Dump && len(b.Raw) > 0 {
		fmt.Fprintf(w, "%sRaw data:\n", content)
		var dump string
		if b.Type == "covr" || (b.Type == "data" && len(b.Raw) > 1024) {
			// Image payloads: the leading bytes carry the signature,
			// the rest is pixel data.
			dump = hexdump.FormatLimited(b.Raw, 0, dumpLimit)
		} else {
			dump = hexdump.Format(b.Raw, 0)
		}
		writeIndented(w, content, dump)
		fmt.Fprintln(w)
	}

	for _, child := range b.Children {
		renderBox(w, child, level+1, opts)
	}
}

// renderBoxContent writes the decoded fields of a recognized box.
func renderBoxContent(w io.Writer, indent string, content mediadissect.BoxContent) {
	switch c := content.(type) {
	case *mediadissect.FileTypeBox:
		fmt.Fprintf(w, "%sMajor Brand: '%s'\n", indent, c.MajorBrand)
		fmt.Fprintf(w, "%sMinor Version: %d\n", indent, c.MinorVersion)
		if len(c.CompatibleBrands) > 0 {
			quoted := make([]string, len(c.CompatibleBrands))
			for i, brand := range c.CompatibleBrands {
				quoted[i] = "'" + brand + "'"
			}
			fmt.Fprintf(w, "%sCompatible Brands: %s\n", indent, strings.Join(quoted, ", "))
		}
	case *mediadissect.MovieHeaderBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sCreation Time: %d (Mac epoch)\n", indent, c.CreationTime)
		fmt.Fprintf(w, "%sModification Time: %d (Mac epoch)\n", indent, c.ModificationTime)
		fmt.Fprintf(w, "%sTimescale: %d units/second\n", indent, c.Timescale)
		fmt.Fprintf(w, "%sDuration: %d units (%.2f seconds)\n", indent, c.Duration, durationSeconds(c.Duration, c.Timescale))
		fmt.Fprintf(w, "%sPreferred Rate: %.2f\n", indent, c.Rate)
		fmt.Fprintf(w, "%sPreferred Volume: %.2f\n", indent, c.Volume)
	case *mediadissect.TrackHeaderBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sFlags: 0x%06X (Track enabled: %t, In movie: %t, In preview: %t)\n",
			indent, c.Flags, c.Enabled(), c.InMovie(), c.InPreview())
		fmt.Fprintf(w, "%sCreation Time: %d (Mac epoch)\n", indent, c.CreationTime)
		fmt.Fprintf(w, "%sModification Time: %d (Mac epoch)\n", indent, c.ModificationTime)
		fmt.Fprintf(w, "%sTrack ID: %d\n", indent, c.TrackID)
		fmt.Fprintf(w, "%sDuration: %d units\n", indent, c.Duration)
		fmt.Fprintf(w, "%sLayer: %d\n", indent, c.Layer)
		fmt.Fprintf(w, "%sAlternate Group: %d\n", indent, c.AlternateGroup)
		fmt.Fprintf(w, "%sVolume: %.2f\n", indent, c.Volume)
		fmt.Fprintf(w, "%sWidth: %.2f pixels\n", indent, c.Width)
		fmt.Fprintf(w, "%sHeight: %.2f pixels\n", indent, c.Height)
	case *mediadissect.MediaHeaderBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sCreation Time: %d (Mac epoch)\n", indent, c.CreationTime)
		fmt.Fprintf(w, "%sModification Time: %d (Mac epoch)\n", indent, c.ModificationTime)
		fmt.Fprintf(w, "%sTimescale: %d units/second\n", indent, c.Timescale)
		fmt.Fprintf(w, "%sDuration: %d units (%.2f seconds)\n", indent, c.Duration, durationSeconds(c.Duration, c.Timescale))
		fmt.Fprintf(w, "%sLanguage: %s\n", indent, c.Language)
	case *mediadissect.HandlerBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sHandler Type: '%s' (%s)\n", indent, c.HandlerType, c.Description())
		if strings.TrimSpace(c.Manufacturer) != "" {
			fmt.Fprintf(w, "%sManufacturer: '%s'\n", indent, c.Manufacturer)
		}
		if c.Name != "" {
			fmt.Fprintf(w, "%sName: %q\n", indent, c.Name)
		}
	case *mediadissect.VideoMediaHeaderBox:
		fmt.Fprintf(w, "%sGraphics Mode: %d\n", indent, c.GraphicsMode)
		fmt.Fprintf(w, "%sOpColor: R=%d, G=%d, B=%d\n", indent, c.OpColor[0], c.OpColor[1], c.OpColor[2])
	case *mediadissect.SoundMediaHeaderBox:
		fmt.Fprintf(w, "%sBalance: %.2f (0=center, -1=full left, 1=full right)\n", indent, c.Balance)
	case *mediadissect.NullMediaHeaderBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
	case *mediadissect.DataReferenceBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d\n", indent, c.EntryCount)
	case *mediadissect.DataEntryURLBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sFlags: 0x%06X\n", indent, c.Flags)
		if c.Location != "" {
			fmt.Fprintf(w, "%sLocation: %s\n", indent, c.Location)
		}
	case *mediadissect.DataEntryURNBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sFlags: 0x%06X\n", indent, c.Flags)
		if c.Name != "" {
			fmt.Fprintf(w, "%sName: %s\n", indent, c.Name)
		}
		if c.Location != "" {
			fmt.Fprintf(w, "%sLocation: %s\n", indent, c.Location)
		}
	case *mediadissect.SampleDescriptionBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d\n", indent, c.EntryCount)
		if len(c.Entries) > 0 {
			formats := make([]string, len(c.Entries))
			for i, entry := range c.Entries {
				formats[i] = "'" + entry.Format + "'"
			}
			fmt.Fprintf(w, "%sSample Entries: %s\n", indent, strings.Join(formats, ", "))
		}
	case *mediadissect.TimeToSampleBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d time-to-sample entries\n", indent, c.EntryCount)
	case *mediadissect.SampleToChunkBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d sample-to-chunk entries\n", indent, c.EntryCount)
	case *mediadissect.SampleSizeBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		if c.SampleSize == 0 {
			fmt.Fprintf(w, "%sSample Size: Variable\n", indent)
			fmt.Fprintf(w, "%sSample Count: %d (with individual sizes)\n", indent, c.SampleCount)
		} else {
			fmt.Fprintf(w, "%sSample Size: %d bytes (constant)\n", indent, c.SampleSize)
			fmt.Fprintf(w, "%sSample Count: %d\n", indent, c.SampleCount)
		}
	case *mediadissect.ChunkOffsetBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d chunk offsets (32-bit)\n", indent, c.EntryCount)
	case *mediadissect.ChunkOffset64Box:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d chunk offsets (64-bit)\n", indent, c.EntryCount)
	case *mediadissect.EditListBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sEntry Count: %d edit list entries\n", indent, c.EntryCount)
	case *mediadissect.ChapterListBox:
		fmt.Fprintf(w, "%sChapter Track IDs: %v\n", indent, c.TrackIDs)
	case *mediadissect.MetadataMeanBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sNamespace: %s\n", indent, c.Namespace)
	case *mediadissect.MetadataNameBox:
		fmt.Fprintf(w, "%sVersion: %d\n", indent, c.Version)
		fmt.Fprintf(w, "%sName: %s\n", indent, c.Name)
	}
}

// durationSeconds converts a duration in timescale units to seconds.
func durationSeconds(duration uint64, timescale uint32) float64 {
	if timescale == 0 {
		return 0
	}
	return float64(duration) / float64(timescale)
}
