package sinks

import slogconf "github.com/qzed/slog-conf"

// Type tags of the built-in sink configurations.
const (
	KindPlain = "plain"
	KindTerm  = "term"
	KindJSON  = "json"
	KindNull  = "null"
)

func init() {
	dec := slogconf.DefaultDecoders()
	dec.Register(KindPlain, decodePlain)
	dec.Register(KindTerm, decodeTerm)
	dec.Register(KindJSON, decodeJSON)
	dec.Register(KindNull, decodeNull)

	fac := slogconf.DefaultFactories()
	slogconf.RegisterFactory(fac, BuildPlain)
	slogconf.RegisterFactory(fac, BuildTerm)
	slogconf.RegisterFactory(fac, BuildJSON)
	slogconf.RegisterFactory(fac, BuildNull)
}
