package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// UserRecord is the server-owned profile projection. Only ID, Name, Email
// and the timestamps are read directly; every other field the backend sends
// is kept in Extra and written back unchanged.
type UserRecord struct {
	ID        string
	Name      string
	Email     string
	CreatedAt string
	UpdatedAt string
	Extra     map[string]json.RawMessage

	// rawID is the id exactly as the server sent it when that was not a
	// JSON string (for example a number), so it is written back unchanged.
	rawID json.RawMessage
}

var knownUserFields = map[string]struct{}{
	"id":         {},
	"name":       {},
	"email":      {},
	"created_at": {},
	"updated_at": {},
}

// UnmarshalJSON accepts numeric or string ids and keeps unknown fields.
func (u *UserRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*u = UserRecord{}
	u.ID = rawScalar(raw["id"])
	if id := raw["id"]; len(id) > 0 && id[0] != '"' && u.ID != "" {
		u.rawID = append(json.RawMessage(nil), id...)
	}
	u.Name = rawScalar(raw["name"])
	u.Email = rawScalar(raw["email"])
	u.CreatedAt = rawScalar(raw["created_at"])
	u.UpdatedAt = rawScalar(raw["updated_at"])

	for k, v := range raw {
		if _, known := knownUserFields[k]; known {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]json.RawMessage)
		}
		u.Extra[k] = v
	}
	return nil
}

// MarshalJSON writes the known fields followed by Extra.
func (u UserRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+5)
	for k, v := range u.Extra {
		out[k] = v
	}
	if id := u.jsonID(); id != nil {
		out["id"] = id
	}
	out["name"] = u.Name
	out["email"] = u.Email
	if u.CreatedAt != "" {
		out["created_at"] = u.CreatedAt
	}
	if u.UpdatedAt != "" {
		out["updated_at"] = u.UpdatedAt
	}
	return json.Marshal(out)
}

// MarshalYAML mirrors MarshalJSON so both output formats show the same
// fields. Extra values are decoded from their JSON form.
func (u UserRecord) MarshalYAML() (any, error) {
	out := make(map[string]any, len(u.Extra)+5)
	for k, raw := range u.Extra {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	if id := u.jsonID(); id != nil {
		out["id"] = u.ID
		if n, err := strconv.ParseInt(u.ID, 10, 64); err == nil && id[0] != '"' {
			out["id"] = n
		}
	}
	out["name"] = u.Name
	out["email"] = u.Email
	if u.CreatedAt != "" {
		out["created_at"] = u.CreatedAt
	}
	if u.UpdatedAt != "" {
		out["updated_at"] = u.UpdatedAt
	}
	return out, nil
}

// jsonID is the encoded id: the server's original bytes while ID still
// matches them, otherwise ID as a string. It is nil when there is no id.
func (u UserRecord) jsonID() json.RawMessage {
	if u.ID == "" {
		return nil
	}
	if len(u.rawID) > 0 && rawScalar(u.rawID) == u.ID {
		return u.rawID
	}
	b, _ := json.Marshal(u.ID)
	return b
}

// MemberSince parses CreatedAt. The zero time is returned when it is missing
// or unparseable.
func (u UserRecord) MemberSince() time.Time {
	return parseTimestamp(u.CreatedAt)
}

// IsZero reports whether the record carries no identity at all.
func (u UserRecord) IsZero() bool {
	return u.ID == "" && u.Name == "" && u.Email == "" && len(u.Extra) == 0
}

func rawScalar(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
