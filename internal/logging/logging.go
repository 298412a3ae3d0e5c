// Package logging builds the zerolog logger the commands share. Publishes
// stay silent at the default level so pipeline output is only the contract
// messages; raising the level is for humans debugging a feed.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// DefaultLevel keeps routine runs quiet. Only warnings and errors surface
// unless verbosity is raised.
const DefaultLevel = zerolog.WarnLevel

// New builds a console logger writing to w at the given level. Color is
// only used when w is a terminal.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		cw.NoColor = true
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name ("debug", "info", ...) to a zerolog level,
// falling back to the default for empty or unknown names.
func ParseLevel(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || l == zerolog.NoLevel {
		return DefaultLevel
	}
	return l
}
