package toon

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"word", 1},
		{"hello world", 4},
		{"abcdefgh", 2},
		{"a,b", 3},
		{`{"id":1}`, 7},
		{"   \n\t", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTokens(tt.text), "%q", tt.text)
	}
}

func TestSavings_UniformArrayBeatsJSON(t *testing.T) {
	rows := make([]*Value, 20)
	for i := range rows {
		rows[i] = Obj(
			F("id", Int(int64(i))),
			F("name", Str(fmt.Sprintf("user%d", i))),
			F("active", Bool(i%2 == 0)),
		)
	}
	v := Obj(F("users", Arr(rows...)))

	r := Savings(v, DefaultOptions())
	assert.Less(t, r.TOONTokens, r.JSONTokens)
	assert.Greater(t, r.SavingsPercent, 30.0, "tabular form should cut at least a third")
	assert.Less(t, r.TOONBytes, r.JSONBytes)
}

func TestSavings_ScalarBreaksEven(t *testing.T) {
	r := Savings(Str("hello"), DefaultOptions())
	assert.NotZero(t, r.JSONTokens)
	assert.InDelta(t, 0, r.SavingsPercent, 60)
}
