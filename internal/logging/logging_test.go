package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zerolog.Level
	}{
		{name: "debug", in: "debug", want: zerolog.DebugLevel},
		{name: "info", in: "info", want: zerolog.InfoLevel},
		{name: "case folded", in: "WARN", want: zerolog.WarnLevel},
		{name: "surrounding space", in: " error ", want: zerolog.ErrorLevel},
		{name: "empty falls back", in: "", want: DefaultLevel},
		{name: "unknown falls back", in: "chatty", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.WarnLevel)

	logger.Debug().Msg("hidden detail")
	if buf.Len() != 0 {
		t.Errorf("debug event written at warn level: %q", buf.String())
	}

	logger.Warn().Msg("manifest rewritten")
	if !strings.Contains(buf.String(), "manifest rewritten") {
		t.Errorf("warn event missing from output: %q", buf.String())
	}
}

func TestNew_NoColorForPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.InfoLevel)

	logger.Info().Str("path", "manifest.json").Msg("loaded")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI escape written to non-terminal writer: %q", buf.String())
	}
}
