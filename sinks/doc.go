// Package sinks provides the built-in sink configurations and the drain
// factories matching them.
//
// Importing the package, even blank, registers all built-in types into the
// default registries of the slogconf package:
//
//	_ "github.com/qzed/slog-conf/sinks"
//
// Built-in types:
//
//   - "plain": uncolored console-style output to a stream or file
//   - "term": colored console output to stdout or stderr
//   - "json": newline-delimited JSON records to a stream or file
//   - "null": discards all records
package sinks
