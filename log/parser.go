package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel maps a textual level to a slog level. Empty input means INFO.
func ParseLogLevel(input string) (slog.Level, error) {
	sanitized := strings.ToLower(strings.TrimSpace(input))

	switch sanitized {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unable to parse a log level from input: %q", input)
	}
}
