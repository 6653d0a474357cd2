package common

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTarget_JSON(t *testing.T) {
	data, err := json.Marshal(Stdout())
	require.NoError(t, err)
	assert.Equal(t, `"stdout"`, string(data))

	data, err = json.Marshal(File("/tmp/app.log", Truncate))
	require.NoError(t, err)
	assert.JSONEq(t, `{"path": "/tmp/app.log", "mode": "truncate"}`, string(data))

	var tgt Target
	require.NoError(t, json.Unmarshal([]byte(`"stderr"`), &tgt))
	assert.Equal(t, Stderr(), tgt)

	require.NoError(t, json.Unmarshal([]byte(`{"path": "/tmp/app.log"}`), &tgt))
	assert.Equal(t, File("/tmp/app.log", Append), tgt)

	require.Error(t, json.Unmarshal([]byte(`"console"`), &tgt))
	require.Error(t, json.Unmarshal([]byte(`{"mode": "append"}`), &tgt))
}

func TestTarget_YAML(t *testing.T) {
	data, err := yaml.Marshal(Stderr())
	require.NoError(t, err)
	assert.Equal(t, "stderr\n", string(data))

	var tgt Target
	require.NoError(t, yaml.Unmarshal([]byte("path: /tmp/app.log\nmode: new\n"), &tgt))
	assert.Equal(t, File("/tmp/app.log", New), tgt)

	require.NoError(t, yaml.Unmarshal([]byte("stdout"), &tgt))
	assert.Equal(t, Stdout(), tgt)
}

func TestTarget_DecodeHook(t *testing.T) {
	type conf struct {
		Target Target `json:"target"`
	}

	dec := func(fields map[string]any) (conf, error) {
		var c conf
		d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:    "json",
			Result:     &c,
			DecodeHook: TargetDecodeHook(),
		})
		require.NoError(t, err)
		return c, d.Decode(fields)
	}

	c, err := dec(map[string]any{"target": "stderr"})
	require.NoError(t, err)
	assert.Equal(t, Stderr(), c.Target)

	c, err = dec(map[string]any{"target": map[string]any{"path": "/tmp/app.log", "mode": "truncate"}})
	require.NoError(t, err)
	assert.Equal(t, File("/tmp/app.log", Truncate), c.Target)

	// Already-typed values pass through unchanged.
	c, err = dec(map[string]any{"target": File("a.log", New)})
	require.NoError(t, err)
	assert.Equal(t, File("a.log", New), c.Target)

	_, err = dec(map[string]any{"target": "console"})
	require.Error(t, err)
}

func TestOpenMode_Flags(t *testing.T) {
	assert.Equal(t, os.O_CREATE|os.O_WRONLY|os.O_APPEND, Append.Flags())
	assert.Equal(t, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, Truncate.Flags())
	assert.Equal(t, os.O_CREATE|os.O_WRONLY|os.O_EXCL, New.Flags())
}

func TestOpenMode_Text(t *testing.T) {
	var m OpenMode
	require.NoError(t, m.UnmarshalText([]byte("new")))
	assert.Equal(t, New, m)

	require.Error(t, m.UnmarshalText([]byte("overwrite")))

	_, err := OpenMode(7).MarshalText()
	require.Error(t, err)
}

func TestTermTarget(t *testing.T) {
	assert.Same(t, os.Stdout, TermStdout.Stream())
	assert.Same(t, os.Stderr, TermStderr.Stream())

	var tt TermTarget
	require.NoError(t, tt.UnmarshalText([]byte("stderr")))
	assert.Equal(t, TermStderr, tt)

	require.Error(t, tt.UnmarshalText([]byte("file")))
}
