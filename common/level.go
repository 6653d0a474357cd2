package common

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Level is the minimal severity a sink should emit.
type Level int

const (
	// LevelCritical designates unrecoverable failures.
	LevelCritical Level = iota

	// LevelError designates failures of individual operations.
	LevelError

	// LevelWarning designates unusual but tolerated conditions.
	LevelWarning

	// LevelInfo designates regular operational records. This is the default
	// for all built-in sinks.
	LevelInfo

	// LevelDebug designates diagnostics for development.
	LevelDebug

	// LevelTrace designates very fine-grained diagnostics.
	LevelTrace
)

var levelNames = map[Level]string{
	LevelCritical: "critical",
	LevelError:    "error",
	LevelWarning:  "warning",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Zerolog maps the level to its zerolog equivalent. Critical maps to the
// fatal level, the closest severity above error.
func (l Level) Zerolog() zerolog.Level {
	switch l {
	case LevelCritical:
		return zerolog.FatalLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelTrace:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	s, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("invalid level %d", int(l))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "critical":
		*l = LevelCritical
	case "error":
		*l = LevelError
	case "warning":
		*l = LevelWarning
	case "info":
		*l = LevelInfo
	case "debug":
		*l = LevelDebug
	case "trace":
		*l = LevelTrace
	default:
		return fmt.Errorf("unknown level %q, expected one of critical, error, warning, info, debug or trace", text)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Level) MarshalYAML() (any, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
