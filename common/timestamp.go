package common

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Timestamp selects the format and time zone of record timestamps. The zero
// value is TimestampUTC.
type Timestamp int

const (
	// TimestampUTC renders UTC time in RFC 3339 format.
	TimestampUTC Timestamp = iota

	// TimestampLocal renders local time in RFC 3339 format.
	TimestampLocal
)

// Format renders t according to the timestamp setting.
func (ts Timestamp) Format(t time.Time) string {
	if ts == TimestampLocal {
		return t.Local().Format(time.RFC3339)
	}
	return t.UTC().Format(time.RFC3339)
}

func (ts Timestamp) String() string {
	if ts == TimestampLocal {
		return "rfc3339-local"
	}
	return "rfc3339-utc"
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	switch ts {
	case TimestampUTC, TimestampLocal:
		return []byte(ts.String()), nil
	default:
		return nil, fmt.Errorf("invalid timestamp format %d", int(ts))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "rfc3339-utc":
		*ts = TimestampUTC
	case "rfc3339-local":
		*ts = TimestampLocal
	default:
		return fmt.Errorf("unknown timestamp format %q, expected rfc3339-utc or rfc3339-local", s)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (ts Timestamp) MarshalYAML() (any, error) {
	text, err := ts.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return ts.UnmarshalText([]byte(s))
}
