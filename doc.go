// Package mediadissect provides structural dissection of media metadata.
//
// mediadissect decodes the binary metadata structures of media files into
// a typed, hierarchical model for diagnostic inspection. It reads ID3v2.3
// and ID3v2.4 tags frame by frame and ISOBMFF containers (MP4, M4A, M4B,
// MOV, 3GP) box by box, keeping offsets, sizes, flags, and raw payloads
// alongside the decoded fields.
//
// # Quick Start
//
// Dissecting a file:
//
//	file, err := mediadissect.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	fmt.Printf("Format: %s (%s)\n", file.Format, file.Dissector)
//	for _, frame := range file.Tag.Frames {
//		fmt.Printf("  %s: %d bytes at offset %d\n", frame.ID, frame.DeclaredSize, frame.Offset)
//	}
//
// # Supported Formats
//
//   - ID3v2.3: full frame iteration with typed content decoding
//   - ID3v2.4: synchsafe frame sizes, UTF-8 and UTF-16BE text
//   - ISOBMFF: recursive box tree with typed leaf content and iTunes metadata
//
// Files in any other format open successfully with FormatUnknown and an
// empty structure.
//
// # Philosophy
//
// mediadissect embodies three core principles:
//
// 1. Show the bytes: the model keeps what the file actually contains.
// Declared sizes, header flags, raw payloads, and file offsets survive
// decoding, so anomalies stay visible instead of being normalized away.
//
// 2. Graceful degradation: corrupted structures return partial data plus
// warnings, not errors. A frame that fails typed decoding is kept as raw
// bytes; a box subtree that overruns its parent is abandoned while its
// siblings survive.
//
// 3. Zero surprises: behavior is predictable and well-documented. The API
// guides you toward correct usage.
//
// # Architecture
//
// The library uses a layered architecture:
//
//	[File]             - Entry point with Open()
//	  ├─ [Tag]         - Decoded ID3v2 tag (frames, typed content)
//	  ├─ [Boxes]       - Decoded ISOBMFF box tree (typed leaf content)
//	  ├─ [Warnings]    - Non-fatal problems found along the way
//	  └─ [Summary()]   - Format-agnostic tag view derived on demand
//
// Format-specific dissectors implement a common interface and register
// themselves with an internal dispatcher that picks one by sniffing the
// first bytes of the file.
//
// # Error Handling
//
// mediadissect distinguishes between fatal errors and warnings:
//
//   - Fatal errors prevent dissection entirely (file not found, declared
//     region beyond end of file, nothing decodable)
//   - Warnings indicate non-fatal issues (skipped frames, abandoned
//     subtrees, undecodable text)
//
// Always check file.Warnings for issues encountered during dissection:
//
//	if len(file.Warnings) > 0 {
//		for _, w := range file.Warnings {
//			log.Printf("Warning: %s", w)
//		}
//	}
//
// Structural errors carry a closed kind classification:
//
//	var corrupted *mediadissect.CorruptedFileError
//	if errors.As(err, &corrupted) {
//		fmt.Println(corrupted.Kind, corrupted.Offset)
//	}
//
// # Advanced Usage
//
// Derive the format-agnostic metadata view:
//
//	tags := file.Summary()
//	fmt.Printf("%s - %s\n", tags.Artist, tags.Title)
//
// Collect embedded artwork:
//
//	for _, art := range file.Artworks() {
//		fmt.Println(art)
//	}
//
// Dissect multiple files concurrently:
//
//	ctx := context.Background()
//	files, err := mediadissect.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
//
// # Performance
//
// mediadissect reads only the structures it decodes:
//
//   - Media data (mdat) is never buffered; only its offset and size are kept
//   - Leaf payloads above the retention cap keep offset and size only
//   - OpenMany dissects files in parallel
package mediadissect
