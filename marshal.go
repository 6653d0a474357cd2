package slogconf

import "fmt"

// Marshal serializes cfg into a self-describing document that round-trips
// through Decode.
//
// For record-style configurations the result is the configuration's own
// field map with the type tag injected under TypeKey. For scalar-form
// configurations the result is the tag itself as a bare string; Marshal
// rejects a scalar representation that differs from the tag, since the
// scalar is all a decoder gets to see.
func Marshal(cfg Config) (any, error) {
	fields, err := cfg.MarshalFields()
	if err != nil {
		return nil, fmt.Errorf("marshal %q: %w", cfg.Kind(), err)
	}

	switch fields := fields.(type) {
	case map[string]any:
		fields[TypeKey] = cfg.Kind()
		return fields, nil
	case string:
		if fields != cfg.Kind() {
			return nil, fmt.Errorf("marshal %q: scalar form %q does not match the type tag", cfg.Kind(), fields)
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("marshal %q: unsupported field representation %T", cfg.Kind(), fields)
	}
}
