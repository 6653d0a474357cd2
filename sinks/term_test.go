package sinks_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/common"
	"github.com/qzed/slog-conf/sinks"
)

func TestTerm_DecodeFields(t *testing.T) {
	cfg := decodeYAML(t, `type: term
target: stderr
color: force
level: trace
`)

	term, ok := slogconf.As[*sinks.Term](cfg)
	require.True(t, ok)
	assert.Equal(t, common.TermStderr, term.Target)
	assert.Equal(t, sinks.ColorForce, term.Color)
	assert.Equal(t, common.LevelTrace, term.Level)
	assert.Equal(t, sinks.FormatFull, term.Format)
}

func TestTerm_DecodeInvalidTarget(t *testing.T) {
	// Terminal sinks cannot write to files.
	var v any
	require.NoError(t, yaml.Unmarshal([]byte("type: term\ntarget:\n  path: /tmp/app.log\n"), &v))

	_, err := slogconf.Decode(v)
	require.Error(t, err)
}

func TestTerm_RoundTrip(t *testing.T) {
	orig := &sinks.Term{
		Target:    common.TermStderr,
		Format:    sinks.FormatCompact,
		Level:     common.LevelError,
		Timestamp: common.TimestampUTC,
		Color:     sinks.ColorDisable,
	}

	doc, err := slogconf.Marshal(orig)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var parsed any
	require.NoError(t, json.Unmarshal(data, &parsed))

	cfg, err := slogconf.Decode(parsed)
	require.NoError(t, err)
	assert.Equal(t, orig, cfg)
}

func TestTerm_Build(t *testing.T) {
	cfg := sinks.NewTerm()
	cfg.Color = sinks.ColorDisable

	drain, err := sinks.BuildTerm(cfg)
	require.NoError(t, err)
	require.NoError(t, drain.Close())
}
