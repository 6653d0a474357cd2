// Package slogconf provides runtime configuration for log sinks.
//
// The package is roughly divided into two parts: de-/serialization of sink
// configurations and construction of ready-to-use drains from them. Both are
// driven by registries, so new sink types can be added without touching
// existing code.
//
// A configuration is any type implementing [Config]. Serialized
// configurations are self-describing: record-style configurations carry
// their type tag in the field named by [TypeKey], configurations whose
// entire representation is a short token serialize as that token directly.
// [Decoders] maps type tags to decode functions and turns documents back
// into Config values. [Factories] maps concrete configuration types to
// factories and turns Config values into target artifacts.
//
// Default registries covering the built-in sink types are available through
// [DefaultDecoders] and [DefaultFactories]. They are populated by importing
// the sinks package:
//
//	import _ "github.com/qzed/slog-conf/sinks"
//
//	cfg, err := slogconf.Load("logging.yaml")
//	if err != nil { ... }
//	drain, err := slogconf.Build(cfg)
//	if err != nil { ... }
//	defer drain.Close()
//	drain.Logger.Info().Msg("ready")
//
// Custom sink types implement Config and register a decode function and a
// factory, either into the default registries or into dedicated ones.
package slogconf
