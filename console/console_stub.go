//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"log/slog"
	"strings"
)

// Native builds have no browser console, so messages go to the default slog logger.
// The actual browser implementation is in console.go with js/wasm build tags.

// Log writes an informational message.
func Log(args ...any) {
	slog.Info(join(args))
}

// Warn writes a warning.
func Warn(args ...any) {
	slog.Warn(join(args))
}

// Error writes an error.
func Error(args ...any) {
	slog.Error(join(args))
}

// join mimics the browser console, which separates arguments with spaces.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
