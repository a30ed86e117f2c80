package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	Name string `json:"name"`
}

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		keys []string
		want string
	}{
		{"data envelope", `{"data":{"name":"Ada"}}`, nil, "Ada"},
		{"bare object", `{"name":"Ada"}`, nil, "Ada"},
		{"second key", `{"user":{"name":"Ada"}}`, []string{"data", "user"}, "Ada"},
		{"first key wins", `{"data":{"name":"A"},"user":{"name":"B"}}`, []string{"data", "user"}, "A"},
		{"null data falls through", `{"data":null,"name":"Ada"}`, nil, "Ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unwrap[named](json.RawMessage(tt.raw), tt.keys...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestUnwrap_Invalid(t *testing.T) {
	_, err := Unwrap[named](json.RawMessage(`[1,2`))
	assert.Error(t, err)
}
