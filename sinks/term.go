package sinks

import (
	"github.com/mattn/go-isatty"

	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/common"
)

// Term configures a sink of type "term": colored console output to one of
// the standard streams.
type Term struct {
	// Target is the stream the sink writes to.
	Target common.TermTarget `json:"target"`

	// Format selects the record layout.
	Format Format `json:"format"`

	// Level is the minimal level the sink emits.
	Level common.Level `json:"level"`

	// Timestamp selects the timestamp format.
	Timestamp common.Timestamp `json:"timestamp"`

	// Color controls colored output.
	Color Color `json:"color"`
}

// NewTerm returns a term configuration with defaults: stdout, full format,
// info level, UTC timestamps, automatic color detection.
func NewTerm() *Term {
	return &Term{Level: common.LevelInfo}
}

// Kind implements slogconf.Config.
func (c *Term) Kind() string { return KindTerm }

// MarshalFields implements slogconf.Config.
func (c *Term) MarshalFields() (any, error) { return encode(c) }

func decodeTerm(fields map[string]any) (slogconf.Config, error) {
	cfg := NewTerm()
	if err := decode(fields, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildTerm constructs a drain emitting colored console records.
func BuildTerm(cfg *Term) (*slogconf.Drain, error) {
	stream := cfg.Target.Stream()

	var noColor bool
	switch cfg.Color {
	case ColorDisable:
		noColor = true
	case ColorForce:
		noColor = false
	default:
		noColor = !isatty.IsTerminal(stream.Fd())
	}

	return newConsoleDrain(stream, nil, cfg.Format, noColor, cfg.Level, cfg.Timestamp), nil
}
