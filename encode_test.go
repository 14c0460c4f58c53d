package toon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"null", Null(), "null"},
		{"nil", nil, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(2.5), "2.5"},
		{"integral float keeps point", Float(3), "3.0"},
		{"bare string", Str("hello"), "hello"},
		{"string with space stays bare", Str("hello world"), "hello world"},
		{"empty string quoted", Str(""), `""`},
		{"comma quoted", Str("a,b"), `"a,b"`},
		{"quote doubled", Str(`say "hi"`), `"say ""hi"""`},
		{"newline escaped", Str("a\nb"), `"a\nb"`},
		{"colon quoted", Str("a: b"), `"a: b"`},
		{"bool lookalike quoted", Str("true"), `"true"`},
		{"null lookalike quoted", Str("NULL"), `"NULL"`},
		{"int lookalike quoted", Str("123"), `"123"`},
		{"float lookalike quoted", Str("-1.5"), `"-1.5"`},
		{"leading space quoted", Str(" x"), `" x"`},
		{"empty obj", Obj(), "{}"},
		{"empty arr", Arr(), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.v))
		})
	}
}

func TestEncode_TabularWithKey(t *testing.T) {
	v := Obj(F("users", Arr(
		Obj(F("id", Int(1)), F("name", Str("Alice")), F("active", Bool(true))),
		Obj(F("id", Int(2)), F("name", Str("Bob")), F("active", Bool(false))),
	)))

	want := strings.Join([]string{
		"users[2]{id,name,active}:",
		"  1,Alice,true",
		"  2,Bob,false",
	}, "\n")
	assert.Equal(t, want, Encode(v))
}

func TestEncode_TabularBareArray(t *testing.T) {
	v := Arr(
		Obj(F("id", Int(1)), F("name", Str("Alice"))),
		Obj(F("id", Int(2)), F("name", Str("Bob"))),
	)

	want := "[2]{id,name}:\n  1,Alice\n  2,Bob"
	assert.Equal(t, want, Encode(v))
}

func TestEncode_TabularEscapedCells(t *testing.T) {
	v := Arr(
		Obj(F("id", Int(1)), F("note", Str("a,b"))),
		Obj(F("id", Int(2)), F("note", Str("line1\nline2"))),
	)

	want := "[2]{id,note}:\n  1,\"a,b\"\n  2,\"line1\\nline2\""
	assert.Equal(t, want, Encode(v))
}

func TestEncode_TabularMissingFieldEmpty(t *testing.T) {
	// Wrapper rows need not be uniform; missing columns render empty.
	v := Obj(F("data", Arr(
		Obj(F("a", Int(1)), F("b", Str("x"))),
		Obj(F("a", Int(2))),
	)))

	want := "data[2]{a,b}:\n  1,x\n  2,"
	assert.Equal(t, want, Encode(v))
}

func TestEncode_TabularNullCell(t *testing.T) {
	v := Arr(
		Obj(F("a", Int(1)), F("b", Null())),
		Obj(F("a", Int(2)), F("b", Str("x"))),
	)
	assert.Equal(t, "[2]{a,b}:\n  1,null\n  2,x", Encode(v))
}

func TestEncode_NonUniformFieldArrayIndexLines(t *testing.T) {
	// Rows with differing key sets never tabularize; the field falls
	// back to index lines so no element is dropped.
	v := Obj(
		F("users", Arr(Obj(F("a", Int(1))), Obj(F("b", Int(2))))),
		F("n", Int(3)),
	)

	want := strings.Join([]string{
		"users:",
		"  0:",
		"    a: 1",
		"  1:",
		"    b: 2",
		"n: 3",
	}, "\n")
	assert.Equal(t, want, Encode(v))
}

func TestEncode_SingleElementFieldArrayNotTabular(t *testing.T) {
	v := Obj(F("users", Arr(Obj(F("id", Int(1))))), F("n", Int(2)))
	got := Encode(v)
	assert.NotContains(t, got, "{id}")
	assert.Contains(t, got, "n: 2")
}

func TestEncode_SingleElementArrayNotTabular(t *testing.T) {
	v := Arr(Obj(F("id", Int(1))))
	got := Encode(v)
	assert.NotContains(t, got, "{id}")
	assert.True(t, strings.HasPrefix(got, "0:"))
}

func TestEncode_ContainerCellsFallBackToNested(t *testing.T) {
	// Rows holding container values cannot fit one line per row; the
	// encoder takes the nested path instead.
	v := Arr(
		Obj(F("id", Int(1)), F("tags", Arr(Str("a")))),
		Obj(F("id", Int(2)), F("tags", Arr(Str("b")))),
	)
	got := Encode(v)
	assert.NotContains(t, got, "]{")
	assert.Contains(t, got, "0:")
	assert.Contains(t, got, "1:")
}

func TestEncode_NestedObject(t *testing.T) {
	v := Obj(
		F("a", Int(1)),
		F("b", Obj(F("c", Int(2)))),
	)
	assert.Equal(t, "a: 1\nb:\n  c: 2", Encode(v))
}

func TestEncode_NonUniformArrayIndexLines(t *testing.T) {
	v := Arr(Int(1), Str("two"), Bool(true))
	assert.Equal(t, "0: 1\n1: two\n2: true", Encode(v))
}

func TestEncode_DepthCollapseToJSON(t *testing.T) {
	deep := Obj(F("a", Obj(F("b", Obj(F("c", Obj(F("d", Int(1)))))))))

	got := EncodeWithOptions(deep, Options{IndentSize: 2, MaxDepth: 2, CompactStrings: true})
	assert.Equal(t, "a:\n  b: {\"c\":{\"d\":1}}", got)
}

func TestEncode_IndentSize(t *testing.T) {
	v := Obj(F("b", Obj(F("c", Int(2)))))
	got := EncodeWithOptions(v, Options{IndentSize: 4, MaxDepth: 3, CompactStrings: true})
	assert.Equal(t, "b:\n    c: 2", got)
}

func TestEncode_CompactStringsOff(t *testing.T) {
	got := EncodeWithOptions(Str("hello"), Options{IndentSize: 2, MaxDepth: 3, CompactStrings: false})
	assert.Equal(t, `"hello"`, got)
}

func TestEncode_NeverMutatesInput(t *testing.T) {
	v := Obj(F("users", Arr(row(1, "a"), row(2, "b"))))
	before := string(ToJSON(v))
	Encode(v)
	assert.Equal(t, before, string(ToJSON(v)))
}
