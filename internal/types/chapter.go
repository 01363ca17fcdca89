package types

import "time"

// Chapter is a chapter marker assembled from a CHAP frame and its
// embedded title frame.
//
// Chapters are a convenience view over the decoded tag. The underlying
// frames, including byte offsets and additional sub-frames, remain
// available through ID3v2Tag.Frames:
//
//	file, _ := mediadissect.Open("audiobook.mp3")
//	for _, chapter := range file.Tag.Chapters() {
//	    fmt.Printf("[%d] %s: %s - %s\n",
//	        chapter.Index,
//	        chapter.Title,
//	        chapter.StartTime,
//	        chapter.EndTime)
//	}
type Chapter struct {
	Index     int           `json:"index"`
	ElementID string        `json:"element_id"`
	Title     string        `json:"title"`
	StartTime time.Duration `json:"start_time"`
	EndTime   time.Duration `json:"end_time"`
}

// Chapters assembles the tag's CHAP frames into Chapter values, in file
// order. The title comes from the first embedded TIT2 sub-frame.
func (t *ID3v2Tag) Chapters() []Chapter {
	var chapters []Chapter
	for _, f := range t.Frames {
		if f.ID != "CHAP" {
			continue
		}
		cc, ok := f.Content.(*ChapterContent)
		if !ok {
			continue
		}
		ch := Chapter{
			Index:     len(chapters),
			ElementID: cc.ElementID,
			StartTime: time.Duration(cc.StartTimeMS) * time.Millisecond,
			EndTime:   time.Duration(cc.EndTimeMS) * time.Millisecond,
		}
		for _, sub := range f.Embedded {
			if sub.ID != "TIT2" {
				continue
			}
			if tc, ok := sub.Content.(*TextContent); ok {
				ch.Title = tc.Text
				break
			}
		}
		chapters = append(chapters, ch)
	}
	return chapters
}
