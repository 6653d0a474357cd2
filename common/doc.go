// Package common provides the wire types shared by the built-in sink
// configurations: output targets, file open modes, severity levels and
// timestamp formats.
//
// All types round-trip through JSON and YAML. Enumerations serialize as
// short lowercase tokens; Target serializes either as a bare token
// ("stdout", "stderr") or as a record with a path and an open mode.
package common
