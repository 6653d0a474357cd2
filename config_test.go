package slogconf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slogconf "github.com/qzed/slog-conf"
)

func TestIdentity_Tokens(t *testing.T) {
	var cfg slogconf.Config = &echoConfig{Message: "hi"}

	// The token derived from a value and the token derived from its
	// declared type must always agree.
	assert.Equal(t, slogconf.TypeIDFor[*echoConfig](), slogconf.TypeID(cfg))
	assert.NotEqual(t, slogconf.TypeIDFor[*quietConfig](), slogconf.TypeID(cfg))
}

func TestIdentity_Narrowing(t *testing.T) {
	var cfg slogconf.Config = &echoConfig{Message: "hi"}

	require.True(t, slogconf.Is[*echoConfig](cfg))
	require.False(t, slogconf.Is[*quietConfig](cfg))

	echo, ok := slogconf.As[*echoConfig](cfg)
	require.True(t, ok)
	assert.Equal(t, "hi", echo.Message)

	// Narrowing yields a view, not a copy.
	echo.Message = "changed"
	again, _ := slogconf.As[*echoConfig](cfg)
	assert.Equal(t, "changed", again.Message)

	_, ok = slogconf.As[*quietConfig](cfg)
	require.False(t, ok)
}
