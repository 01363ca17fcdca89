package mediadissect

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/mediadissect/internal/registry"

	// The format dissectors register themselves with the dispatcher
	// in their init functions.
	_ "github.com/simonhull/mediadissect/internal/id3v2"
	_ "github.com/simonhull/mediadissect/internal/isobmff"
)

// Open dissects the metadata structure of a media file.
//
// Supported formats: ID3v2.3, ID3v2.4, ISOBMFF (MP4, M4A, M4B, MOV, 3GP).
// A file no dissector recognizes opens successfully with FormatUnknown
// and an empty structure; its content is never read past the probe.
//
// Damage inside a recognized structure surfaces as File.Warnings, not as
// an error. An error means the file could not be opened or the structure
// could not be dissected at all.
//
//	file, err := mediadissect.Open("episode.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	for _, w := range file.Warnings {
//		log.Println(w)
//	}
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	file, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Keep the file handle; Close releases it.
	file.Source = f

	if options.strictParsing && len(file.Warnings) > 0 {
		f.Close()
		return nil, fmt.Errorf("strict mode: %s", file.Warnings[0])
	}

	return file, nil
}

// openReader dissects from an io.ReaderAt (internal, for testing).
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	probe, err := readProbe(r, size, path)
	if err != nil {
		return nil, err
	}

	dissector := registry.Probe(probe)
	if dissector == nil {
		// Unknown format pass-through: report it, read nothing more.
		return &File{
			Path:      path,
			Format:    FormatUnknown,
			MediaType: "Unknown",
			Dissector: "Unknown Format Dissector",
			Size:      size,
		}, nil
	}

	file, err := dissector.Dissect(r, size, path, options.dissect)
	if err != nil {
		return nil, fmt.Errorf("dissect %s: %w", dissector.MediaType(), err)
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// OpenContext is Open with an up-front cancellation check. Dissection of
// a single local file is fast enough that incremental cancellation has
// nothing to interrupt, so the context is not consulted again once
// dissection starts.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	file, err := mediadissect.OpenContext(ctx, "episode.mp3")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(path, opts...)
}

// OpenMany dissects several files concurrently, up to runtime.NumCPU()
// at a time. Results come back in input order.
//
// The batch is all-or-nothing: the first failure cancels the remaining
// work, every already-opened file is closed, and only the error is
// returned.
//
//	files, err := mediadissect.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// A cancelled batch skips files whose goroutine has not
			// started reading yet.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
