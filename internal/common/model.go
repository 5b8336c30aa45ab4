// File: internal/common/model.go
package common

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Role names as stored on user profile documents. Every account picks exactly
// one at sign-up and keeps it.
const (
	RoleMember = "member"
	RoleGuide  = "guide"
	RoleHost   = "host"
	RoleFriend = "friend"
)

// ValidRole reports whether role is one of the four account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleMember, RoleGuide, RoleHost, RoleFriend:
		return true
	}
	return false
}

// StringList is a list of strings persisted as a JSON array in a single text
// column, so the same model works on PostgreSQL and on the SQLite driver used
// in tests.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshalling string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// SplitCommaList turns free text like "Português, Inglês ,  " into
// ["Português", "Inglês"]: split on comma, trim whitespace, drop empties.
// Profile edit screens submit languages and interests in this form.
func SplitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
