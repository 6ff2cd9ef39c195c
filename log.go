package pointviz

import (
	"log/slog"
	"os"
)

// vizLogLevel controls the log level for viewer debug logging.
// Defaults to LevelWarn (quiet).
// SetVerbose(true) sets it to LevelDebug.
var vizLogLevel = new(slog.LevelVar)

func init() {
	vizLogLevel.Set(slog.LevelWarn)
}

// SetVerbose enables or disables verbose/debug logging for the viewer.
// When enabled, engine rebuilds, registry changes and UI interactions are
// logged to stderr.
func SetVerbose(v bool) {
	if v {
		vizLogLevel.Set(slog.LevelDebug)
	} else {
		vizLogLevel.Set(slog.LevelWarn)
	}
}

// vizLogger is the shared logger for the package.
var vizLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: vizLogLevel}))

// vizVerbose reports whether debug logging is enabled, for callers that
// want to skip building expensive log arguments.
func vizVerbose() bool {
	return vizLogLevel.Level() <= slog.LevelDebug
}
