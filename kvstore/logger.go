package kvstore

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog"
)

// pebbleLogger routes Pebble's internal messages to zerolog.
type pebbleLogger struct {
	l zerolog.Logger
}

var _ pebble.Logger = pebbleLogger{}

func (p pebbleLogger) Infof(format string, args ...any) {
	p.l.Info().Msgf(format, args...)
}

// Fatalf logs at fatal level and panics. Pebble requires Fatalf not to return.
func (p pebbleLogger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.l.WithLevel(zerolog.FatalLevel).Msg(msg)
	panic("pebble: " + msg)
}
