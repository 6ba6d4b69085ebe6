package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unisplit/vector"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodec_Result(t *testing.T) {
	result := []*vector.Strings{
		vector.Of("a", "b"),
		vector.NA[string](),
		vector.Of[string](),
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(result)
			require.NoError(t, err)
			assert.JSONEq(t, `[["a","b"],[null],[]]`, string(data))

			var decoded []*vector.Strings
			require.NoError(t, c.Unmarshal(data, &decoded))
			require.Len(t, decoded, 3)
			assert.Equal(t, []string{"a", "b"}, decoded[0].Values())
			assert.True(t, decoded[1].IsNA(0))
			assert.Equal(t, 0, decoded[2].Len())
		})
	}
}

func TestCodec_InputVector(t *testing.T) {
	var v vector.Strings
	require.NoError(t, Default.Unmarshal([]byte(`["x\ny", null, ""]`), &v))
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.IsNA(1))

	got, ok := v.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "x\ny", got)
}
