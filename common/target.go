package common

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// OpenMode selects how a log file is opened. The default is Append.
type OpenMode int

const (
	// Append appends to an existing file, creating it if absent.
	Append OpenMode = iota

	// Truncate truncates an existing file to zero length before writing,
	// creating it if absent.
	Truncate

	// New creates a new file. An existing file at the target location is an
	// error.
	New
)

var openModeNames = map[OpenMode]string{
	Append:   "append",
	Truncate: "truncate",
	New:      "new",
}

func (m OpenMode) String() string {
	if s, ok := openModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("OpenMode(%d)", int(m))
}

// Flags returns the os.OpenFile flags corresponding to the mode.
func (m OpenMode) Flags() int {
	switch m {
	case Truncate:
		return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	case New:
		return os.O_CREATE | os.O_WRONLY | os.O_EXCL
	default:
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m OpenMode) MarshalText() ([]byte, error) {
	s, ok := openModeNames[m]
	if !ok {
		return nil, fmt.Errorf("invalid open mode %d", int(m))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *OpenMode) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "append":
		*m = Append
	case "truncate":
		*m = Truncate
	case "new":
		*m = New
	default:
		return fmt.Errorf("unknown open mode %q, expected append, truncate or new", s)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m OpenMode) MarshalYAML() (any, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OpenMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}

// TargetKind discriminates the variants of Target.
type TargetKind int

const (
	// TargetStdout is the standard output stream.
	TargetStdout TargetKind = iota

	// TargetStderr is the standard error stream.
	TargetStderr

	// TargetFile is a file on disk.
	TargetFile
)

// Target is the output of a sink capable of writing to the terminal and to
// files. The standard streams serialize as the bare tokens "stdout" and
// "stderr"; files serialize as a record with a path and an optional mode.
//
// The zero value is the standard output stream. See TermTarget for sinks
// restricted to terminal output.
type Target struct {
	// Kind selects the variant.
	Kind TargetKind

	// Path of the log file. Only meaningful for TargetFile.
	Path string

	// Mode with which the log file is opened. Only meaningful for
	// TargetFile.
	Mode OpenMode
}

// Stdout returns a target for the standard output stream.
func Stdout() Target { return Target{Kind: TargetStdout} }

// Stderr returns a target for the standard error stream.
func Stderr() Target { return Target{Kind: TargetStderr} }

// File returns a target for the file at path, opened with the given mode.
func File(path string, mode OpenMode) Target {
	return Target{Kind: TargetFile, Path: path, Mode: mode}
}

func (t Target) String() string {
	switch t.Kind {
	case TargetStderr:
		return "stderr"
	case TargetFile:
		return t.Path
	default:
		return "stdout"
	}
}

func (t Target) encode() (any, error) {
	switch t.Kind {
	case TargetStdout:
		return "stdout", nil
	case TargetStderr:
		return "stderr", nil
	case TargetFile:
		return map[string]any{"path": t.Path, "mode": t.Mode.String()}, nil
	default:
		return nil, fmt.Errorf("invalid target kind %d", int(t.Kind))
	}
}

func (t *Target) decode(v any) error {
	switch v := v.(type) {
	case string:
		switch v {
		case "stdout":
			*t = Stdout()
		case "stderr":
			*t = Stderr()
		default:
			return fmt.Errorf("unknown target %q, expected stdout, stderr or a file record", v)
		}
		return nil
	case map[string]any:
		path, ok := v["path"].(string)
		if !ok || path == "" {
			return fmt.Errorf("file target requires a path")
		}
		mode := Append
		if raw, ok := v["mode"]; ok {
			s, ok := raw.(string)
			if !ok {
				return fmt.Errorf("file target mode must be a string, got %T", raw)
			}
			if err := mode.UnmarshalText([]byte(s)); err != nil {
				return err
			}
		}
		*t = File(path, mode)
		return nil
	default:
		return fmt.Errorf("invalid target value of type %T", v)
	}
}

// MarshalJSON implements json.Marshaler.
func (t Target) MarshalJSON() ([]byte, error) {
	v, err := t.encode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Target) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return t.decode(v)
}

// MarshalYAML implements yaml.Marshaler.
func (t Target) MarshalYAML() (any, error) {
	return t.encode()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Target) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	return t.decode(v)
}

// TargetDecodeHook returns a mapstructure hook that decodes Target values
// from their scalar or record wire form.
func TargetDecodeHook() mapstructure.DecodeHookFunc {
	targetType := reflect.TypeOf(Target{})
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != targetType || from == targetType {
			return data, nil
		}
		var t Target
		if err := t.decode(data); err != nil {
			return nil, err
		}
		return t, nil
	}
}

// TermTarget is the output of a terminal-only sink. The zero value is the
// standard output stream.
type TermTarget int

const (
	// TermStdout is the standard output stream.
	TermStdout TermTarget = iota

	// TermStderr is the standard error stream.
	TermStderr
)

// Stream returns the os stream the target refers to.
func (t TermTarget) Stream() *os.File {
	if t == TermStderr {
		return os.Stderr
	}
	return os.Stdout
}

func (t TermTarget) String() string {
	if t == TermStderr {
		return "stderr"
	}
	return "stdout"
}

// MarshalText implements encoding.TextMarshaler.
func (t TermTarget) MarshalText() ([]byte, error) {
	switch t {
	case TermStdout, TermStderr:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("invalid terminal target %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TermTarget) UnmarshalText(text []byte) error {
	switch s := string(text); s {
	case "stdout":
		*t = TermStdout
	case "stderr":
		*t = TermStderr
	default:
		return fmt.Errorf("unknown terminal target %q, expected stdout or stderr", s)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t TermTarget) MarshalYAML() (any, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TermTarget) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}
