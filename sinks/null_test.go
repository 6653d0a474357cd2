package sinks_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slogconf "github.com/qzed/slog-conf"
	"github.com/qzed/slog-conf/sinks"
)

func TestNull_ScalarRoundTrip(t *testing.T) {
	doc, err := slogconf.Marshal(sinks.NewNull())
	require.NoError(t, err)
	assert.Equal(t, "null", doc)

	cfg, err := slogconf.Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, sinks.NewNull(), cfg)
}

func TestNull_DecodeRecordForm(t *testing.T) {
	cfg, err := slogconf.Decode(map[string]any{"type": "null"})
	require.NoError(t, err)
	assert.True(t, slogconf.Is[*sinks.Null](cfg))

	// The null sink has no settings of its own.
	_, err = slogconf.Decode(map[string]any{"type": "null", "target": "stdout"})
	require.Error(t, err)
}

func TestNull_Build(t *testing.T) {
	drain, err := sinks.BuildNull(sinks.NewNull())
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, drain.Logger.GetLevel())
	require.NoError(t, drain.Close())
}
