// Package logger owns the process-wide zerolog logger.
//
// main calls Init once; everything else receives a zerolog.Logger through its
// constructor, usually narrowed with Component.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures Init.
type Options struct {
	// Level is a zerolog level name ("trace" … "error", plus "warning").
	// Anything unrecognised falls back to info.
	Level string
	// Pretty switches to the coloured console writer. JSON otherwise.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service is stamped on every entry as "service" when non-empty.
	Service string
}

var (
	mu       sync.Mutex
	instance *zerolog.Logger
)

// Init builds the process logger. Later calls return the first logger
// unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return *instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(out).Level(lvl).With().Timestamp().Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	l := ctx.Logger()
	instance = &l
	return l
}

// Get returns the logger built by Init and panics before that.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		panic("logger: Get() called before Init()")
	}
	return *instance
}

// Component returns parent with a "component" field, the way services and
// workers are told apart in the log stream.
func Component(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("component", name).Logger()
}

// Reset forgets the logger so tests can call Init again.
func Reset() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
