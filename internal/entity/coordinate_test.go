package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_UnmarshalJSON(t *testing.T) {
	t.Run("Both keys are read", func(t *testing.T) {
		var c Coordinate

		require.NoError(t, json.Unmarshal([]byte(`{"r":3,"c":7}`), &c))

		assert.Equal(t, Coordinate{Row: 3, Col: 7}, c)
	})

	t.Run("Zero is a real value, not a default", func(t *testing.T) {
		var c Coordinate

		require.NoError(t, json.Unmarshal([]byte(`{"r":0,"c":0}`), &c))

		assert.Equal(t, Coordinate{}, c)
	})

	cases := []struct {
		name string
		body string
	}{
		{name: "missing c", body: `{"r":0}`},
		{name: "missing r", body: `{"c":2}`},
		{name: "empty object", body: `{}`},
		{name: "null r", body: `{"r":null,"c":1}`},
		{name: "fractional value", body: `{"r":1.5,"c":1}`},
		{name: "unknown key", body: `{"r":1,"c":1,"z":0}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: an incomplete or malformed coordinate
			var selection Selection

			// When: decoding a selection that carries it
			err := json.Unmarshal([]byte(`{"start":`+tc.body+`,"end":{"r":0,"c":2}}`), &selection)

			// Then: the request is invalid
			require.ErrorIs(t, err, apperror.ErrInvalidRequest)
		})
	}
}
