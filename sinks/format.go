package sinks

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format selects how console-style sinks lay out their records. The zero
// value is FormatFull.
type Format int

const (
	// FormatFull emits all record information on every line.
	FormatFull Format = iota

	// FormatCompact omits the timestamp for denser output.
	FormatCompact
)

func (f Format) String() string {
	if f == FormatCompact {
		return "compact"
	}
	return "full"
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatFull, FormatCompact:
		return []byte(f.String()), nil
	default:
		return nil, fmt.Errorf("invalid format %d", int(f))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "full":
		*f = FormatFull
	case "compact":
		*f = FormatCompact
	default:
		return fmt.Errorf("unknown format %q, expected full or compact", s)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Format) MarshalYAML() (any, error) {
	text, err := f.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(s))
}

// Color controls colored output for terminal sinks. The zero value is
// ColorAuto.
type Color int

const (
	// ColorAuto enables colors when the target stream is a terminal.
	ColorAuto Color = iota

	// ColorDisable disables colors.
	ColorDisable

	// ColorForce enables colors regardless of the target stream.
	ColorForce
)

func (c Color) String() string {
	switch c {
	case ColorDisable:
		return "disable"
	case ColorForce:
		return "force"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	switch c {
	case ColorAuto, ColorDisable, ColorForce:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("invalid color setting %d", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "auto":
		*c = ColorAuto
	case "disable":
		*c = ColorDisable
	case "force":
		*c = ColorForce
	default:
		return fmt.Errorf("unknown color setting %q, expected auto, disable or force", s)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}
