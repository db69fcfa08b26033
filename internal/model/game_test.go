package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ReleaseDate
		wantErr bool
	}{
		{name: "string", input: `{"d":"1998"}`, want: "1998"},
		{name: "full date string", input: `{"d":"2011-08-21"}`, want: "2011-08-21"},
		{name: "integer year", input: `{"d":2002}`, want: "2002"},
		{name: "null", input: `{"d":null}`, want: ""},
		{name: "missing", input: `{}`, want: ""},
		{name: "float", input: `{"d":20.5}`, wantErr: true},
		{name: "bool", input: `{"d":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				D ReleaseDate `json:"d"`
			}
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.D)
		})
	}
}

func TestGame_JSONUsesUnderscoreID(t *testing.T) {
	b, err := json.Marshal(Game{ID: "abc", Title: "Starcraft", Genre: "RTS", ReleaseDate: "1998"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "abc", m["_id"])
	assert.Equal(t, "Starcraft", m["title"])
	assert.Equal(t, "RTS", m["genre"])
	assert.Equal(t, "1998", m["releaseDate"])
	_, hasID := m["id"]
	assert.False(t, hasID)
}
