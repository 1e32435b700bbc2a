// Package logger owns the process-wide zerolog logger of the API.
//
// main calls Init once with values from the environment; everything else
// receives a child from Component, so each log line names the part of the
// service that wrote it ("auth", "activities", "http", ...).
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	// Level accepts zerolog level names ("warning" is an alias for warn).
	// Empty or unknown values select info.
	Level string
	// Pretty switches to the coloured console writer for local runs.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service and Version are stamped on every entry when non-empty.
	Service string
	Version string
}

var root atomic.Pointer[zerolog.Logger]

// Init builds the root logger. Only the first call configures it; later
// calls return the logger already in place.
func Init(opts Options) zerolog.Logger {
	if l := root.Load(); l != nil {
		return *l
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl := parseLevel(opts.Level)
	fields := zerolog.New(out).Level(lvl).With().Timestamp().Caller()
	if opts.Service != "" {
		fields = fields.Str("service", opts.Service)
	}
	if opts.Version != "" {
		fields = fields.Str("version", opts.Version)
	}
	l := fields.Logger()

	if root.CompareAndSwap(nil, &l) {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.SetGlobalLevel(lvl)
	}
	return *root.Load()
}

// Get returns the root logger and panics when Init has not run.
func Get() zerolog.Logger {
	l := root.Load()
	if l == nil {
		panic("logger: Get() called before Init()")
	}
	return *l
}

// Component returns a child of the root logger carrying component=name.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset clears the root logger. Tests only.
func Reset() {
	root.Store(nil)
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
