// Package logging builds the structured logger of the command line tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	nanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/term"

	"fixture-generator/primitive"
)

// Log formats accepted by New.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// RunIDLength is the number of characters of a run id.
const RunIDLength = 12

// New returns a logger writing to w at the given level. FormatAuto picks the
// text handler when w is a terminal and JSON otherwise.
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case FormatAuto, "":
		if isTerminal(w) {
			return slog.New(slog.NewTextHandler(w, opts)), nil
		}

		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// ParseLevel parses debug, info, warn or error, in any case.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}

	return level, nil
}

// ValidFormat reports whether New accepts format.
func ValidFormat(format string) bool {
	switch format {
	case FormatAuto, FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// NewRunID returns a random alphanumeric id that tags every log line of one
// invocation.
func NewRunID() (string, error) {
	id, err := nanoid.Generate(primitive.Alphabet, RunIDLength)
	if err != nil {
		return "", fmt.Errorf("run id: %w", err)
	}

	return id, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
