package sinks

import (
	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/common"
)

// Plain configures a sink of type "plain": uncolored console-style output to
// a stream or file.
type Plain struct {
	// Target is the output the sink writes to.
	Target common.Target `json:"target"`

	// Format selects the record layout.
	Format Format `json:"format"`

	// Level is the minimal level the sink emits.
	Level common.Level `json:"level"`

	// Timestamp selects the timestamp format.
	Timestamp common.Timestamp `json:"timestamp"`
}

// NewPlain returns a plain configuration with defaults: stdout, full format,
// info level, UTC timestamps.
func NewPlain() *Plain {
	return &Plain{Level: common.LevelInfo}
}

// Kind implements slogconf.Config.
func (c *Plain) Kind() string { return KindPlain }

// MarshalFields implements slogconf.Config.
func (c *Plain) MarshalFields() (any, error) { return encode(c) }

func decodePlain(fields map[string]any) (slogconf.Config, error) {
	cfg := NewPlain()
	if err := decode(fields, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildPlain constructs a drain emitting uncolored console-style records.
func BuildPlain(cfg *Plain) (*slogconf.Drain, error) {
	w, closer, err := openTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	return newConsoleDrain(w, closer, cfg.Format, true, cfg.Level, cfg.Timestamp), nil
}
