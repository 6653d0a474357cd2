package slogconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slogconf "github.com/qzed/slog-conf"
)

func TestMarshal_InjectsTag(t *testing.T) {
	doc, err := slogconf.Marshal(&echoConfig{Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"type": "echo", "message": "hi"}, doc)
}

func TestMarshal_RoundTrip(t *testing.T) {
	reg := slogconf.NewDecoders()
	reg.Register("echo", decodeEcho)

	orig := &echoConfig{Message: "hi"}
	doc, err := slogconf.Marshal(orig)
	require.NoError(t, err)

	cfg, err := reg.Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, orig, cfg)
}

func TestMarshal_Scalar(t *testing.T) {
	reg := slogconf.NewDecoders()
	reg.Register("quiet", decodeQuiet)

	doc, err := slogconf.Marshal(&quietConfig{})
	require.NoError(t, err)
	assert.Equal(t, "quiet", doc)

	cfg, err := reg.Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, &quietConfig{}, cfg)
}

// badScalar claims scalar form but returns a value differing from its tag,
// which would not survive a round trip.
type badScalar struct{}

func (c *badScalar) Kind() string                { return "bad" }
func (c *badScalar) MarshalFields() (any, error) { return "worse", nil }

// badFields returns a representation that is neither a record nor a scalar.
type badFields struct{}

func (c *badFields) Kind() string                { return "bad" }
func (c *badFields) MarshalFields() (any, error) { return 42, nil }

func TestMarshal_Invalid(t *testing.T) {
	_, err := slogconf.Marshal(&badScalar{})
	require.Error(t, err)

	_, err = slogconf.Marshal(&badFields{})
	require.Error(t, err)
}
