package types

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Tags is a format-agnostic view of the descriptive metadata found in a
// file. Text frames and iTunes metadata items are mapped to standard
// fields where possible.
//
// Tags is derived from the dissected structure and never holds data the
// structure does not. For access to unmapped values, use the All()
// iterator or Get() to retrieve raw values by their native key, such as
// "TIT2" or "©nam".
type Tags struct {
	raw map[string][]string

	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Composer    string
	Genre       string
	Date        string
	Comment     string
	Copyright   string
	Encoder     string
	Lyrics      string
	Grouping    string
	Narrator    string
	TrackNumber int
	TrackTotal  int
	DiscNumber  int
	DiscTotal   int
}

// All returns an iterator over all raw tag values by native key.
//
// The iterator yields key-value pairs where values are string slices,
// as a key can appear more than once.
//
// Example:
//
//	for key, values := range tags.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
//
// The returned iterator is read-only. Do not modify the yielded slices.
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if t.raw == nil {
			return
		}
		for key, values := range t.raw {
			if !yield(key, values) {
				return
			}
		}
	}
}

// Filter returns an iterator over raw tags whose key satisfies keep.
//
// Example:
//
//	for key, values := range tags.Filter(func(k string) bool {
//		return strings.HasPrefix(k, "T")
//	}) {
//		fmt.Printf("%s: %v\n", key, values)
//	}
func (t *Tags) Filter(keep func(key string) bool) iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if t.raw == nil {
			return
		}
		for key, values := range t.raw {
			if !keep(key) {
				continue
			}
			if !yield(key, values) {
				return
			}
		}
	}
}

// Get retrieves all values for a native tag key.
//
// Keys are format-specific (e.g. "TIT2", "TPE1", "©nam", "trkn").
// Returns nil if the key doesn't exist.
func (t *Tags) Get(key string) []string {
	if t.raw == nil {
		return nil
	}
	values := t.raw[key]
	if values == nil {
		return nil
	}
	return slices.Clone(values)
}

// GetFirst retrieves the first value for a native tag key.
//
// Returns empty string if the key doesn't exist or has no values.
func (t *Tags) GetFirst(key string) string {
	values := t.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// GetBest returns the first value of the first candidate key that has
// one. Useful when the same field has different native keys per format:
//
//	artist := tags.GetBest("TPE1", "©ART")
func (t *Tags) GetBest(candidates ...string) string {
	for _, key := range candidates {
		if v := t.GetFirst(key); v != "" {
			return v
		}
	}
	return ""
}

// Set replaces all values for a native tag key. Setting no values
// removes the key. Values are cloned before storing.
func (t *Tags) Set(key string, values ...string) {
	if len(values) == 0 {
		if t.raw != nil {
			delete(t.raw, key)
		}
		return
	}
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	t.raw[key] = slices.Clone(values)
}

// AddRaw appends one value under a native tag key. Unlike Set, repeated
// calls accumulate, matching how a tag can repeat a frame.
func (t *Tags) AddRaw(key, value string) {
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	t.raw[key] = append(t.raw[key], value)
}

// Summary derives the Tags view from the dissected structure. ID3v2
// frames and iTunes metadata items feed both the standard fields and
// the raw key map; everything else stays reachable through the
// structure itself.
func (f *File) Summary() *Tags {
	tags := &Tags{}
	if f.Tag != nil {
		for _, frame := range f.Tag.Frames {
			applyFrame(tags, frame)
		}
	}
	for _, box := range f.Boxes {
		collectItunesItems(tags, box)
	}
	return tags
}

// applyFrame maps one decoded frame onto the standard fields.
func applyFrame(tags *Tags, frame *Frame) {
	switch c := frame.Content.(type) {
	case *TextContent:
		tags.AddRaw(frame.ID, c.Text)
		switch frame.ID {
		case "TIT2": // Title
			tags.Title = c.Text
		case "TPE1": // Artist
			tags.Artist = c.Text
		case "TPE2": // Album artist
			tags.AlbumArtist = c.Text
		case "TALB": // Album
			tags.Album = c.Text
		case "TCOM": // Composer
			tags.Composer = c.Text
		case "TCON": // Genre
			tags.Genre = c.Text
		case "TYER", "TDRC": // Year (v2.3), recording time (v2.4)
			tags.Date = c.Text
		case "TCOP": // Copyright
			tags.Copyright = c.Text
		case "TENC": // Encoded by
			tags.Encoder = c.Text
		case "TIT1": // Grouping
			tags.Grouping = c.Text
		case "TRCK": // Track number/total
			tags.TrackNumber, tags.TrackTotal = splitNumberTotal(c.Text)
		case "TPOS": // Disc number/total
			tags.DiscNumber, tags.DiscTotal = splitNumberTotal(c.Text)
		}
	case *CommentContent:
		tags.AddRaw(frame.ID, c.Text)
		switch frame.ID {
		case "COMM":
			if tags.Comment == "" {
				tags.Comment = c.Text
			}
		case "USLT":
			tags.Lyrics = c.Text
		}
	case *UserTextContent:
		tags.AddRaw("TXXX:"+c.Description, c.Value)
		if strings.EqualFold(c.Description, "narrator") {
			tags.Narrator = c.Value
		}
	case *URLContent:
		tags.AddRaw(frame.ID, c.URL)
	case *UserURLContent:
		tags.AddRaw("WXXX:"+c.Description, c.URL)
	}
}

// collectItunesItems walks a box subtree and maps decoded iTunes
// metadata items onto the standard fields.
func collectItunesItems(tags *Tags, box *Box) {
	if box.Itunes != nil {
		applyItunesItem(tags, box.Type, box.Itunes)
	}
	for _, child := range box.Children {
		collectItunesItems(tags, child)
	}
}

func applyItunesItem(tags *Tags, itemType string, data *ItunesData) {
	if text, ok := data.Value.(*ItunesText); ok {
		tags.AddRaw(itemType, text.Text)
		switch itemType {
		case "©nam": // Title
			tags.Title = text.Text
		case "©ART": // Artist
			tags.Artist = text.Text
		case "aART": // Album artist
			tags.AlbumArtist = text.Text
		case "©alb": // Album
			tags.Album = text.Text
		case "©wrt": // Composer
			tags.Composer = text.Text
		case "©gen": // Genre
			tags.Genre = text.Text
		case "©day": // Release date
			tags.Date = text.Text
		case "©cmt": // Comment
			tags.Comment = text.Text
		case "cprt": // Copyright
			tags.Copyright = text.Text
		case "©too": // Encoding tool
			tags.Encoder = text.Text
		case "©lyr": // Lyrics
			tags.Lyrics = text.Text
		case "©grp": // Grouping
			tags.Grouping = text.Text
		case "©nrt": // Narrator
			tags.Narrator = text.Text
		}
		return
	}

	switch itemType {
	case "trkn":
		if n, ok := data.Value.(*ItunesTrackNumber); ok {
			tags.TrackNumber, tags.TrackTotal = int(n.Number), int(n.Total)
			tags.AddRaw(itemType, data.String())
		}
	case "disk":
		if n, ok := data.Value.(*ItunesDiskNumber); ok {
			tags.DiscNumber, tags.DiscTotal = int(n.Number), int(n.Total)
			tags.AddRaw(itemType, data.String())
		}
	default:
		if s := data.String(); s != "" {
			tags.AddRaw(itemType, s)
		}
	}
}

// splitNumberTotal parses "N" or "N/Total".
func splitNumberTotal(text string) (number, total int) {
	parts := strings.Split(text, "/")
	if len(parts) >= 1 {
		fmt.Sscanf(parts[0], "%d", &number)
	}
	if len(parts) >= 2 {
		fmt.Sscanf(parts[1], "%d", &total)
	}
	return
}
