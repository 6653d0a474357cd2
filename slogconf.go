package slogconf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Drain is the default build target: a ready-to-use logger together with the
// resources backing its output.
type Drain struct {
	// Logger emits records to the configured sink.
	Logger zerolog.Logger

	closer io.Closer
}

// NewDrain wraps logger and the closer owning its output. closer may be nil
// for outputs that need no teardown, such as the standard streams.
func NewDrain(logger zerolog.Logger, closer io.Closer) *Drain {
	return &Drain{Logger: logger, closer: closer}
}

// Close releases the resources backing the drain's output, if any.
func (d *Drain) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}

var (
	defaultDecoders  = sync.OnceValue(NewDecoders)
	defaultFactories = sync.OnceValue(NewFactories[*Drain])
)

// DefaultDecoders returns the process-wide decoder registry. The built-in
// sink types register themselves here when the sinks package is imported.
func DefaultDecoders() *Decoders { return defaultDecoders() }

// DefaultFactories returns the process-wide drain factories. The built-in
// sink types register themselves here when the sinks package is imported.
func DefaultFactories() *Factories[*Drain] { return defaultFactories() }

// Decode reads a configuration document using the default decoder registry.
// Equivalent to DefaultDecoders().Decode(doc).
func Decode(doc any) (Config, error) {
	return DefaultDecoders().Decode(doc)
}

// Build constructs a drain from cfg using the default factories. Equivalent
// to DefaultFactories().Build(cfg).
func Build(cfg Config) (*Drain, error) {
	return DefaultFactories().Build(cfg)
}

// Load reads a configuration document from the file at path and decodes it
// with the default decoder registry. The format is selected by file
// extension (.json, .yaml or .yml). Individual fields can be overridden via
// SLOGCONF_-prefixed environment variables, with "__" separating path
// segments, e.g. SLOGCONF_LEVEL=debug or SLOGCONF_TARGET__PATH=/tmp/app.log.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %q", ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := k.Load(env.Provider("SLOGCONF_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "slogconf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	return Decode(k.Raw())
}
