package api

import (
	"bytes"
	"encoding/json"
)

// Envelope is the standard `{data: X}` response wrapper.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Unwrap decodes raw into T, looking for the payload under each key in
// order and falling back to the bare object. With no keys it looks under
// "data" only.
func Unwrap[T any](raw json.RawMessage, keys ...string) (T, error) {
	var out T
	if len(keys) == 0 {
		keys = []string{"data"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, k := range keys {
			v, ok := fields[k]
			if !ok || isNull(v) {
				continue
			}
			if err := json.Unmarshal(v, &out); err != nil {
				return out, err
			}
			return out, nil
		}
	}

	err := json.Unmarshal(raw, &out)
	return out, err
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
