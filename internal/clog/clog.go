// Package clog builds a log/slog handler for the CLI from a level/format
// pair, grounded on MacroPower-x/log's CreateHandler/GetLevel/GetFormat
// shape.
package clog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler's output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("vexysvgo: unknown log level")
	ErrUnknownFormat = errors.New("vexysvgo: unknown log format")
)

// GetLevel parses a level string ("debug", "info", "warn", "error").
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// GetFormat parses a format string ("text" or "json").
func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if f == FormatText || f == FormatJSON {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// New builds a slog.Logger writing to w at the given level/format.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	logFmt, err := GetFormat(format)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch logFmt {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
