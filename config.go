package slogconf

import "reflect"

// TypeKey is the name of the field carrying the type tag of a serialized
// sink configuration.
//
// The key is reserved: configuration types must not use a field with this
// name in their own record representation. Marshal injects it next to the
// configuration's fields and Decode strips it before the remaining fields
// reach the concrete decode function.
const TypeKey = "type"

// Config describes how a log sink should be created.
//
// Implementations are identified in two independent ways: by a stable string
// tag (Kind) naming the type in serialized form, and by their concrete Go
// type, which build registries use as lookup key. The identity token for the
// latter is derived via reflection, see TypeID; implementations never
// compute it themselves.
type Config interface {
	// Kind returns the type tag of this configuration.
	Kind() string

	// MarshalFields returns the serializable representation of the
	// configuration without its type tag. Record-style configurations
	// return a map[string]any. Configurations whose entire representation
	// is their tag return that tag as a string.
	MarshalFields() (any, error)
}

// TypeID returns the identity token of the concrete type backing cfg.
// Tokens are unique per concrete type, stable for the lifetime of the
// process and usable as map keys. TypeID(cfg) and TypeIDFor[C]() agree
// whenever cfg is backed by C.
func TypeID(cfg Config) reflect.Type { return reflect.TypeOf(cfg) }

// TypeIDFor returns the identity token of the concrete configuration
// type C.
func TypeIDFor[C Config]() reflect.Type { return reflect.TypeOf((*C)(nil)).Elem() }

// Is reports whether cfg is backed by the concrete type C.
func Is[C Config](cfg Config) bool {
	_, ok := cfg.(C)
	return ok
}

// As narrows cfg to its concrete type C. It returns false if cfg is backed
// by a different type. The returned value is a view of the same underlying
// configuration, not a copy.
func As[C Config](cfg Config) (C, bool) {
	c, ok := cfg.(C)
	return c, ok
}
