package sinks

import (
	"github.com/mitchellh/mapstructure"

	"github.com/qzed/slog-conf/common"
)

// decode fills out from the raw configuration fields using json tag names.
// Wire types from the common package are handled by decode hooks, so fields
// may come from any structured-data parser producing maps, strings and
// scalars.
func decode(fields map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			common.TargetDecodeHook(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(fields)
}

// encode converts cfg into its generic map representation. Values of common
// wire types are kept as-is; their own marshalers apply when the map is
// serialized, and the decode hooks accept them unchanged on the way back.
func encode(cfg any) (map[string]any, error) {
	var m map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &m,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return m, nil
}
