package slogconf

import (
	"fmt"
	"sort"
	"sync"
)

// DecodeFunc parses the fields of a serialized configuration into its
// concrete type. The type tag has been stripped from fields before the call;
// for scalar-form documents fields is nil.
type DecodeFunc func(fields map[string]any) (Config, error)

// Decoders maps type tags to decode functions for deserialization of sink
// configurations. Lookups may run concurrently; Register and Deregister are
// safe to call at any time but are expected to happen during startup.
type Decoders struct {
	mu    sync.RWMutex
	store map[string]DecodeFunc
}

// NewDecoders returns an empty decoder registry.
func NewDecoders() *Decoders {
	return &Decoders{store: make(map[string]DecodeFunc)}
}

// Register installs fn as the decode function for the given tag, replacing
// any previous entry. It returns the previously registered function, or nil
// if the tag was unused. Callers can use the returned value to detect
// duplicate registrations or to restore the old function later.
func (d *Decoders) Register(tag string, fn DecodeFunc) DecodeFunc {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.store[tag]
	d.store[tag] = fn
	return prev
}

// Deregister removes the decode function for the given tag and reports
// whether an entry existed.
func (d *Decoders) Deregister(tag string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.store[tag]
	delete(d.store, tag)
	return ok
}

// Tags returns the registered type tags in lexicographic order. The order
// carries no semantic meaning and is intended for diagnostics.
func (d *Decoders) Tags() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tags := make([]string, 0, len(d.store))
	for tag := range d.store {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Decode reads a self-describing configuration document.
//
// A map document must carry its type tag in the field named by TypeKey; the
// remaining fields are handed to the registered decode function. A string
// document is the scalar form: the string is the tag itself and the decode
// function is invoked without fields.
//
// Decode fails with ErrMissingType if a record document lacks the tag field,
// with ErrUnknownType if the tag has no registered decode function, and with
// the decode function's own error, wrapped, if parsing the fields fails.
func (d *Decoders) Decode(doc any) (Config, error) {
	switch doc := doc.(type) {
	case string:
		return d.decode(doc, nil)
	case map[string]any:
		raw, ok := doc[TypeKey]
		if !ok {
			return nil, ErrMissingType
		}
		tag, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected a string tag, got %T", ErrMissingType, raw)
		}
		fields := make(map[string]any, len(doc)-1)
		for k, v := range doc {
			if k != TypeKey {
				fields[k] = v
			}
		}
		return d.decode(tag, fields)
	default:
		return nil, fmt.Errorf("configuration document must be a mapping or a string, got %T", doc)
	}
}

func (d *Decoders) decode(tag string, fields map[string]any) (Config, error) {
	d.mu.RLock()
	fn, ok := d.store[tag]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	cfg, err := fn(fields)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", tag, err)
	}
	return cfg, nil
}
