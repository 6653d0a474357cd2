package sinks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/common"
)

// openTarget resolves a target to its writer. The returned closer is nil for
// the standard streams. Parent directories of file targets are created as
// needed.
func openTarget(t common.Target) (io.Writer, io.Closer, error) {
	switch t.Kind {
	case common.TargetStdout:
		return os.Stdout, nil, nil
	case common.TargetStderr:
		return os.Stderr, nil, nil
	case common.TargetFile:
		if dir := filepath.Dir(t.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("open target %s: %w", t.Path, err)
			}
		}
		f, err := os.OpenFile(t.Path, t.Mode.Flags(), 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open target %s: %w", t.Path, err)
		}
		return f, f, nil
	default:
		return nil, nil, fmt.Errorf("invalid target kind %d", int(t.Kind))
	}
}

// timestampHook stamps each record with a formatted time field. Keeping the
// format and zone choice in a per-logger hook avoids zerolog's process-wide
// timestamp globals, so sinks with different settings can coexist.
func timestampHook(ts common.Timestamp) zerolog.Hook {
	return zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str(zerolog.TimestampFieldName, ts.Format(time.Now()))
	})
}

// newLogger assembles a level-filtered logger with per-sink timestamping.
func newLogger(w io.Writer, level common.Level, ts common.Timestamp) zerolog.Logger {
	return zerolog.New(w).Level(level.Zerolog()).Hook(timestampHook(ts))
}

// consoleWriter returns a console writer for the given stream. The timestamp
// is already formatted by the logger's hook and passed through verbatim.
func consoleWriter(w io.Writer, format Format, noColor bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: noColor,
		FormatTimestamp: func(i any) string {
			s, _ := i.(string)
			return s
		},
	}
	if format == FormatCompact {
		cw.PartsOrder = []string{zerolog.LevelFieldName, zerolog.MessageFieldName}
	}
	return cw
}

func newConsoleDrain(w io.Writer, closer io.Closer, format Format, noColor bool, level common.Level, ts common.Timestamp) *slogconf.Drain {
	return slogconf.NewDrain(newLogger(consoleWriter(w, format, noColor), level, ts), closer)
}
