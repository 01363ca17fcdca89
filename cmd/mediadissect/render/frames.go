package render

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/mediadissect"
	"github.com/simonhull/mediadissect/internal/hexdump"
	"github.com/simonhull/mediadissect/internal/id3v2"
)

// TagHeader writes the decoded ID3v2 tag header block.
func TagHeader(w io.Writer, tag *mediadissect.ID3v2Tag) {
	fmt.Fprintf(w, "\nID3v2 Header Found:\n")
	fmt.Fprintf(w, "  Version: 2.%d.%d\n", tag.VersionMajor, tag.VersionMinor)
	fmt.Fprintf(w, "  Flags: 0x%02X\n", tag.Flags)

	if tag.Flags != 0 {
		var parts []string
		if tag.Unsynchronized() {
			parts = append(parts, "unsynchronisation")
		}
		if tag.HasExtendedHeader() {
			parts = append(parts, "extended_header")
		}
		if tag.Experimental() {
			parts = append(parts, "experimental")
		}
		if tag.HasFooter() {
			parts = append(parts, "footer_present")
		}
		if len(parts) > 0 {
			fmt.Fprintf(w, "    Active: %s\n", strings.Join(parts, ", "))
		}
	}

	fmt.Fprintf(w, "  Tag Size: %d bytes\n", tag.DeclaredSize)

	switch {
	case tag.DeclaredSize > 100_000_000:
		fmt.Fprintln(w, "  WARNING: Extremely large tag size (> 100MB), verify file integrity")
	case tag.DeclaredSize > 50_000_000:
		fmt.Fprintln(w, "  WARNING: Tag size is very large (> 50MB), likely rich podcast with chapter images")
	case tag.DeclaredSize > 10_000_000:
		fmt.Fprintln(w, "  INFO: Large tag size (> 10MB), possibly podcast with embedded chapter content")
	}
}

// Frames writes every frame of the tag.
func Frames(w io.Writer, tag *mediadissect.ID3v2Tag, opts Options) {
	fmt.Fprintf(w, "\nID3v2.%d Frames:\n", tag.VersionMajor)
	for _, frame := range tag.Frames {
		renderFrame(w, frame, opts)
	}
}

// renderFrame writes one top level frame: the raw header fields, the
// decoded content, and in dump mode the payload bytes.
func renderFrame(w io.Writer, frame *mediadissect.Frame, opts Options) {
	indent := pad(1)
	frameHeaderLine(w, frame, indent)

	switch c := frame.Content.(type) {
	case *mediadissect.ChapterContent:
		renderChapterContent(w, indent, c)
		if opts.Dump {
			dumpFrameData(w, indent, frame)
		}
		renderSubFrames(w, frame, opts)
	case *mediadissect.TableOfContentsContent:
		renderTOCContent(w, indent, c)
		if opts.Dump {
			dumpFrameData(w, indent, frame)
		}
		renderSubFrames(w, frame, opts)
	default:
		frameLine(w, frame, indent)
		renderFrameContent(w, indent, frame.Content)
		if opts.Dump {
			dumpFrameData(w, indent, frame)
		}
	}
}

// frameHeaderLine shows the header bytes the frame was decoded from.
func frameHeaderLine(w io.Writer, frame *mediadissect.Frame, indent string) {
	id := frame.ID
	for len(id) < 4 {
		id += "?"
	}
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], frame.DeclaredSize)

	fmt.Fprintf(w,
		"%sFrame offset 0x%08X, ID: [0x%02X, 0x%02X, 0x%02X, 0x%02X] = %q, Size: [0x%02X, 0x%02X, 0x%02X, 0x%02X] = %d, Flags: 0x%04X\n",
		indent, frame.Offset,
		id[0], id[1], id[2], id[3], frame.ID,
		size[0], size[1], size[2], size[3], frame.DeclaredSize,
		frame.Flags)
}

// frameLine shows the frame ID with its standard name and size.
func frameLine(w io.Writer, frame *mediadissect.Frame, indent string) {
	fmt.Fprintf(w, "%sFrame: %s (%s) - Size: %d bytes", indent, frame.ID, id3v2.Describe(frame.ID), frame.DeclaredSize)
	if frame.Flags != 0 {
		fmt.Fprintf(w, " - Flags: 0x%04X", frame.Flags)
	}
	fmt.Fprintln(w)
}

// renderFrameContent writes the decoded payload lines for the content
// types that render inline. Binary payloads produce no content lines.
func renderFrameContent(w io.Writer, indent string, content mediadissect.FrameContent) {
	switch c := content.(type) {
	case *mediadissect.TextContent:
		fmt.Fprintf(w, "%sEncoding: %s\n", indent, c.Encoding)
		if len(c.Strings) > 1 {
			fmt.Fprintf(w, "%sValues (%d strings):\n", indent, len(c.Strings))
			for i, s := range c.Strings {
				fmt.Fprintf(w, "%s  [%d] %q\n", indent, i+1, s)
			}
		} else {
			fmt.Fprintf(w, "%sValue: %q\n", indent, c.Text)
		}
	case *mediadissect.URLContent:
		fmt.Fprintf(w, "%sURL: %q\n", indent, c.URL)
	case *mediadissect.UserTextContent:
		fmt.Fprintf(w, "%sEncoding: %s\n", indent, c.Encoding)
		fmt.Fprintf(w, "%sDescription: %q\n", indent, c.Description)
		fmt.Fprintf(w, "%sValue: %q\n", indent, c.Value)
	case *mediadissect.UserURLContent:
		fmt.Fprintf(w, "%sEncoding: %s\n", indent, c.Encoding)
		fmt.Fprintf(w, "%sDescription: %q\n", indent, c.Description)
		fmt.Fprintf(w, "%sURL: %q\n", indent, c.URL)
	case *mediadissect.CommentContent:
		fmt.Fprintf(w, "%sEncoding: %s\n", indent, c.Encoding)
		fmt.Fprintf(w, "%sLanguage: %q\n", indent, c.Language)
		if c.Description != "" {
			fmt.Fprintf(w, "%sDescription: %q\n", indent, c.Description)
		}
		fmt.Fprintf(w, "%sText: %q\n", indent, c.Text)
	case *mediadissect.PictureContent:
		fmt.Fprintf(w, "%sEncoding: %s\n", indent, c.Encoding)
		fmt.Fprintf(w, "%sMIME type: %s\n", indent, c.MIMEType)
		fmt.Fprintf(w, "%sPicture type: %d (%s)\n", indent, uint8(c.PictureType), c.PictureType)
		if c.Description != "" {
			fmt.Fprintf(w, "%sDescription: %q\n", indent, c.Description)
		}
		fmt.Fprintf(w, "%sData size: %d bytes\n", indent, len(c.Data))
	case *mediadissect.UniqueFileIDContent:
		fmt.Fprintf(w, "%sOwner: %q\n", indent, c.Owner)
		fmt.Fprintf(w, "%sIdentifier: %d bytes\n", indent, len(c.Identifier))
	}
}

func renderChapterContent(w io.Writer, indent string, c *mediadissect.ChapterContent) {
	fmt.Fprintf(w, "%sElement ID: %q\n", indent, c.ElementID)
	fmt.Fprintf(w, "%sTime: %s - %s (duration: %s)\n", indent,
		mediadissect.FormatTimestamp(c.StartTimeMS),
		mediadissect.FormatTimestamp(c.EndTimeMS),
		mediadissect.FormatTimestamp(c.Duration()))
	if c.HasByteOffsets() {
		fmt.Fprintf(w, "%sByte offsets: %d - %d\n", indent, c.StartOffset, c.EndOffset)
	}
}

func renderTOCContent(w io.Writer, indent string, c *mediadissect.TableOfContentsContent) {
	fmt.Fprintf(w, "%sElement ID: %q\n", indent, c.ElementID)
	if c.TopLevel() {
		fmt.Fprintf(w, "%sFlags: Top-level TOC\n", indent)
	}
	if c.Ordered() {
		fmt.Fprintf(w, "%sFlags: Ordered\n", indent)
	}
	if len(c.ChildIDs) > 0 {
		fmt.Fprintf(w, "%sChild elements (%d): ", indent, len(c.ChildIDs))
		for i, child := range c.ChildIDs {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "[%d] %q", i+1, child)
		}
		fmt.Fprintln(w)
	}
}

// renderSubFrames writes the embedded frames of a CHAP or CTOC frame,
// indented one extra level.
func renderSubFrames(w io.Writer, frame *mediadissect.Frame, opts Options) {
	if len(frame.Embedded) == 0 {
		return
	}
	fmt.Fprintf(w, "%sSub-frames: %d embedded frame(s)\n", pad(1), len(frame.Embedded))
	fmt.Fprintln(w)
	for _, sub := range frame.Embedded {
		renderEmbeddedFrame(w, sub, pad(2), opts)
	}
}

// renderEmbeddedFrame writes one embedded frame at the given indent.
func renderEmbeddedFrame(w io.Writer, frame *mediadissect.Frame, indent string, opts Options) {
	if opts.Dump {
		frameHeaderLine(w, frame, indent)
	}
	frameLine(w, frame, indent)
	renderFrameContent(w, indent+"    ", frame.Content)
	if opts.Dump {
		dumpFrameData(w, indent+"    ", frame)
	}
}

// dumpFrameData writes the frame payload as a hex dump. Picture frames
// are cut off after the image signature.
func dumpFrameData(w io.Writer, indent string, frame *mediadissect.Frame) {
	if len(frame.Raw) == 0 {
		return
	}
	fmt.Fprintf(w, "%sRaw data:\n", indent)
	var dump string
	if frame.ID == "APIC" {
		dump = hexdump.FormatLimited(frame.Raw, 0, dumpLimit)
	} else {
		dump = hexdump.Format(frame.Raw, 0)
	}
	writeIndented(w, indent, dump)
	fmt.Fprintln(w)
}
