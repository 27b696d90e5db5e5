package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriState_ScanValue(t *testing.T) {
	cases := []struct {
		src  interface{}
		want TriState
	}{
		{nil, Unset},
		{true, True},
		{false, False},
		{int64(1), True},
		{int64(0), False},
		{[]byte("t"), True},
		{"false", False},
	}

	for _, tc := range cases {
		var ts TriState
		require.NoError(t, ts.Scan(tc.src))
		assert.Equal(t, tc.want, ts, "src=%v", tc.src)
	}

	v, err := Unset.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = False.Value()
	require.NoError(t, err)
	assert.Equal(t, false, v)

	var ts TriState
	assert.Error(t, ts.Scan("maybe"))
}

func TestTriState_JSONKeepsUnsetDistinctFromFalse(t *testing.T) {
	var p struct {
		A TriState `json:"a"`
		B TriState `json:"b"`
		C TriState `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":null,"b":false,"c":true}`), &p))

	assert.Equal(t, Unset, p.A)
	assert.Equal(t, False, p.B)
	assert.Equal(t, True, p.C)
	assert.False(t, p.A.IsSet())
	assert.True(t, p.B.IsSet())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":false,"c":true}`, string(out))
}
