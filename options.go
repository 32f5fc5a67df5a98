package id3tag

import (
	"github.com/rs/zerolog"

	"github.com/simonhull/id3tag/internal/id3"
)

// Option configures behavior when opening tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3tag.Open("song.mp3", id3tag.VAll,
//	    id3tag.WithStrictParsing(),
//	    id3tag.WithLogger(logger),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening tags.
type openOptions struct {
	logger         zerolog.Logger
	newEngine      func(zerolog.Logger) Engine
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	padding        bool // Reserve free space after ID3v2 frames
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		logger:    zerolog.Nop(),
		newEngine: defaultEngine,
		padding:   true,
	}
}

func defaultEngine(log zerolog.Logger) Engine {
	return id3.New(log)
}

// WithLogger routes library logging to log.
//
// By default id3tag logs nothing. Frame skips and dropped frames are
// logged at debug level, malformed tags at warn level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *openOptions) {
		o.logger = log
	}
}

// WithEngine replaces the file-backed ID3 engine.
//
// newEngine is called once per opened tag, so OpenMany gets one engine
// per file.
func WithEngine(newEngine func(zerolog.Logger) Engine) Option {
	return func(o *openOptions) {
		if newEngine != nil {
			o.newEngine = newEngine
		}
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, id3tag continues when it encounters issues like unregistered
// frames or truncated frame bodies, returning warnings alongside the frames
// it could read.
//
// Example:
//
//	tag, err := id3tag.Open("song.mp3", id3tag.VAll, id3tag.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Tag.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithPadding sets the initial padding policy. Padding is on by default.
func WithPadding(enabled bool) Option {
	return func(o *openOptions) {
		o.padding = enabled
	}
}
