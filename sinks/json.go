package sinks

import (
	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/common"
)

// JSON configures a sink of type "json": newline-delimited JSON records to a
// stream or file.
type JSON struct {
	// Target is the output the sink writes to.
	Target common.Target `json:"target"`

	// Level is the minimal level the sink emits.
	Level common.Level `json:"level"`

	// Timestamp selects the timestamp format.
	Timestamp common.Timestamp `json:"timestamp"`
}

// NewJSON returns a json configuration with defaults: stdout, info level,
// UTC timestamps.
func NewJSON() *JSON {
	return &JSON{Level: common.LevelInfo}
}

// Kind implements slogconf.Config.
func (c *JSON) Kind() string { return KindJSON }

// MarshalFields implements slogconf.Config.
func (c *JSON) MarshalFields() (any, error) { return encode(c) }

func decodeJSON(fields map[string]any) (slogconf.Config, error) {
	cfg := NewJSON()
	if err := decode(fields, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildJSON constructs a drain emitting newline-delimited JSON records.
func BuildJSON(cfg *JSON) (*slogconf.Drain, error) {
	w, closer, err := openTarget(cfg.Target)
	if err != nil {
		return nil, err
	}
	return slogconf.NewDrain(newLogger(w, cfg.Level, cfg.Timestamp), closer), nil
}
