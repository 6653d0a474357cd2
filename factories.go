package slogconf

import (
	"fmt"
	"reflect"
	"sync"
)

// FactoryFunc builds a target artifact T from the concrete configuration
// type C.
type FactoryFunc[C Config, T any] func(cfg C) (T, error)

type buildShim[T any] func(cfg Config) (T, error)

// Factories maps concrete configuration types to factories producing targets
// of type T. Build may run concurrently; registration calls are safe at any
// time but are expected to happen during startup. Multiple registries with
// different target types can cover the same configuration types.
type Factories[T any] struct {
	mu    sync.RWMutex
	store map[reflect.Type]buildShim[T]
}

// NewFactories returns an empty factory registry.
func NewFactories[T any]() *Factories[T] {
	return &Factories[T]{store: make(map[reflect.Type]buildShim[T])}
}

// Build constructs a T from cfg using the factory registered for its
// concrete type. It fails with ErrUnsupported if no factory is registered,
// and with the factory's own error, otherwise unchanged, if construction
// fails.
func (f *Factories[T]) Build(cfg Config) (T, error) {
	f.mu.RLock()
	shim, ok := f.store[TypeID(cfg)]
	f.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrUnsupported, cfg)
	}
	return shim(cfg)
}

// DeregisterID removes the factory registered under the given identity
// token.
func (f *Factories[T]) DeregisterID(id reflect.Type) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, id)
}

// RegisteredID reports whether a factory is registered under the given
// identity token.
func (f *Factories[T]) RegisteredID(id reflect.Type) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.store[id]
	return ok
}

// Clear removes all registered factories.
func (f *Factories[T]) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store = make(map[reflect.Type]buildShim[T])
}

// RegisterFactory installs build as the factory for the configuration type
// C, replacing any previous entry. It reports whether a previous factory was
// replaced.
//
// The registry only invokes build for configurations whose identity matches
// C, so the narrowing inside the registry cannot fail through this API. A
// failed narrow would mean a forged identity token and panics.
func RegisterFactory[C Config, T any](f *Factories[T], build FactoryFunc[C, T]) bool {
	id := TypeIDFor[C]()
	shim := func(cfg Config) (T, error) {
		c, ok := As[C](cfg)
		if !ok {
			panic(fmt.Sprintf("slog-conf: factory for %v invoked with %T", id, cfg))
		}
		return build(c)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	_, replaced := f.store[id]
	f.store[id] = shim
	return replaced
}

// DeregisterFactory removes the factory for the configuration type C and
// reports whether an entry existed.
func DeregisterFactory[C Config, T any](f *Factories[T]) bool {
	id := TypeIDFor[C]()

	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.store[id]
	delete(f.store, id)
	return ok
}

// IsRegistered reports whether a factory is registered for the configuration
// type C.
func IsRegistered[C Config, T any](f *Factories[T]) bool {
	return f.RegisteredID(TypeIDFor[C]())
}
