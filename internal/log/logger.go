// Package log builds the zerolog loggers used by the store and the example
// programs.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the output encoding of a logger.
type Format uint8

const (
	ConsoleFormat Format = iota
	JSONFormat
)

// Options for New.
type Options struct {
	// Level is the minimum level written. The zero value is zerolog.DebugLevel.
	Level zerolog.Level
	// Format selects console or JSON output, default console.
	Format Format
	// Out is the destination, default os.Stdout.
	Out io.Writer
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(level string) (zerolog.Level, error) {
	return zerolog.ParseLevel(level)
}

// ParseFormat parses "console" or "json".
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "console", "":
		return ConsoleFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return ConsoleFormat, fmt.Errorf("unknown log format %q", format)
	}
}

// New creates a root logger with timestamps.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var w io.Writer = out
	if opts.Format == ConsoleFormat {
		w = newConsoleWriter(out)
	}

	return zerolog.New(w).Level(opts.Level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	cw.FormatMessage = func(i any) string {
		return fmt.Sprintf("message: %q |", i)
	}

	cw.FormatFieldName = func(i any) string {
		return fmt.Sprintf("%q: ", i)
	}

	cw.FormatFieldValue = func(i any) string {
		return fmt.Sprintf("%q |", fmt.Sprint(i))
	}

	return cw
}
