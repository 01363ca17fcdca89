package mediadissect

import "github.com/simonhull/mediadissect/internal/registry"

// Option configures behavior when opening files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := mediadissect.Open("song.mp3",
//	    mediadissect.WithStrictParsing(),
//	    mediadissect.WithMaxRawPayload(64*1024),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool             // Fail on any warning
	ignoreWarnings bool             // Suppress all warnings
	dissect        registry.Options // Knobs passed through to the dissectors
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		dissect:        registry.DefaultOptions(),
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, mediadissect keeps decoding when it encounters issues
// like skipped frames or undecodable text, returning warnings alongside
// the dissected structure.
//
// With strict parsing enabled, any warning becomes a fatal error.
//
// Example:
//
//	file, err := mediadissect.Open("song.mp3", mediadissect.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues (skipped frames, abandoned
// subtrees, etc.) are collected in File.Warnings. This option discards
// them after dissection.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxRawPayload overrides the retained-payload cap in bytes.
//
// Leaf box payloads larger than the cap keep their offset and size but
// not their bytes. The default is 1MiB. A cap of zero keeps no payloads
// at all.
//
// Example:
//
//	// Keep payloads up to 16MB, enough for large embedded artwork
//	file, err := mediadissect.Open("movie.m4v",
//	    mediadissect.WithMaxRawPayload(16*1024*1024),
//	)
func WithMaxRawPayload(limit int64) Option {
	return func(o *openOptions) {
		o.dissect.MaxRawPayload = limit
	}
}

// WithoutItunesDecoding disables best-effort decoding of iTunes
// metadata items under ilst containers.
//
// The items and their data children still appear in the box tree with
// raw payloads; only the typed value attachment is skipped.
func WithoutItunesDecoding() Option {
	return func(o *openOptions) {
		o.dissect.DecodeItunes = false
	}
}
