package sinks

import (
	"fmt"

	"github.com/rs/zerolog"

	slogconf "github.com/qzed/slog-conf"
)

// Null configures a sink of type "null", which discards all records. Its
// serialized form is the bare token "null"; the record form with just the
// type tag is accepted on decode.
type Null struct{}

// NewNull returns a null configuration.
func NewNull() *Null { return &Null{} }

// Kind implements slogconf.Config.
func (c *Null) Kind() string { return KindNull }

// MarshalFields implements slogconf.Config.
func (c *Null) MarshalFields() (any, error) { return KindNull, nil }

func decodeNull(fields map[string]any) (slogconf.Config, error) {
	if len(fields) != 0 {
		return nil, fmt.Errorf("null sink takes no settings")
	}
	return NewNull(), nil
}

// BuildNull constructs a drain that discards all records.
func BuildNull(*Null) (*slogconf.Drain, error) {
	return slogconf.NewDrain(zerolog.Nop(), nil), nil
}
