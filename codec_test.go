package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	for _, ct := range []string{"text/toon", "application/json", "application/cbor"} {
		c := r.Get(ct)
		require.NotNil(t, c, ct)
		assert.Equal(t, ct, c.ContentType())
	}
	assert.Nil(t, r.Get("application/xml"))
}

func TestRegistry_RegisterOverrides(t *testing.T) {
	r := NewRegistry()
	custom := TOON(Options{IndentSize: 4, MaxDepth: 3, CompactStrings: true})
	r.Register(custom)
	assert.Equal(t, custom, r.Get("text/toon"))
}

func TestCodec_RoundTrips(t *testing.T) {
	v := Obj(
		F("users", Arr(row(1, "Alice"), row(2, "Bob"))),
		F("count", Int(2)),
		F("ratio", Float(0.5)),
		F("note", Str("a, b")),
		F("ok", Bool(true)),
		F("gone", Null()),
	)

	r := NewRegistry()
	for _, ct := range []string{"text/toon", "application/json", "application/cbor"} {
		c := r.Get(ct)

		data, err := c.Marshal(v)
		require.NoError(t, err, ct)

		got, err := c.Unmarshal(data)
		require.NoError(t, err, ct)
		assert.True(t, v.Equal(got), "%s: %s", ct, data)
	}
}

func TestCBOR_SortsDecodedKeys(t *testing.T) {
	c := CBOR()
	data, err := c.Marshal(Obj(F("zebra", Int(1)), F("apple", Int(2))))
	require.NoError(t, err)

	got, err := c.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "zebra"}, got.Keys())
}

func TestCBOR_InvalidInput(t *testing.T) {
	_, err := CBOR().Unmarshal([]byte{0xff})
	assert.Error(t, err)
}
