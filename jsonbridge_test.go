package toon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_PreservesKeyOrder(t *testing.T) {
	v, err := FromJSON([]byte(`{"zebra":1,"apple":2,"mango":3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, v.Keys())
}

func TestFromJSON_NumberKinds(t *testing.T) {
	v, err := FromJSON([]byte(`{"i":3,"f":3.5,"e":1e2,"big":9007199254740993}`))
	require.NoError(t, err)

	assert.Equal(t, KindInt, v.Get("i").Kind())
	assert.Equal(t, KindFloat, v.Get("f").Kind())
	assert.Equal(t, KindFloat, v.Get("e").Kind())
	assert.Equal(t, KindInt, v.Get("big").Kind(), "int64-range integers stay integers")
}

func TestFromJSON_Structures(t *testing.T) {
	v, err := FromJSON([]byte(`{"a":[1,"x",null,true],"b":{"c":false}}`))
	require.NoError(t, err)

	want := Obj(
		F("a", Arr(Int(1), Str("x"), Null(), Bool(true))),
		F("b", Obj(F("c", Bool(false)))),
	)
	assert.True(t, want.Equal(v))
}

func TestFromJSON_Errors(t *testing.T) {
	for _, input := range []string{"", "{", `{"a":}`, `1 2`} {
		_, err := FromJSON([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestFromJSONC_StripsComments(t *testing.T) {
	input := []byte(`{
		// primary key
		"id": 7,
		"name": "x", // trailing comment
	}`)

	v, err := FromJSONC(input)
	require.NoError(t, err)
	assert.True(t, Obj(F("id", Int(7)), F("name", Str("x"))).Equal(v))
}

func TestToJSON_OrderAndTypes(t *testing.T) {
	v := Obj(
		F("s", Str(`quote " here`)),
		F("n", Null()),
		F("arr", Arr(Int(1), Float(2))),
	)
	assert.Equal(t, `{"s":"quote \" here","n":null,"arr":[1,2.0]}`, string(ToJSON(v)))
}

func TestToJSON_NonFiniteBecomesNull(t *testing.T) {
	v := Arr(Float(math.NaN()), Float(math.Inf(1)), Float(math.Inf(-1)), Float(1.5))
	assert.Equal(t, `[null,null,null,1.5]`, string(ToJSON(v)))
}

func TestToJSON_RoundTrip(t *testing.T) {
	v := Obj(
		F("users", Arr(row(1, "Alice"), row(2, "Bob"))),
		F("meta", Obj(F("ok", Bool(true)))),
	)

	got, err := FromJSON(ToJSON(v))
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
	assert.Equal(t, v.Keys(), got.Keys(), "key order survives the trip")
}

func TestToJSONIndent(t *testing.T) {
	out := string(ToJSONIndent(Obj(F("a", Int(1)))))
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
}
