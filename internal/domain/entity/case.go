// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
)

// Record statuses. Only two writers exist and both write the literal
// "resolved"; absence of the field means pending.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// Display defaults for case cards. The station defaults reflect the
// single-station deployment this dashboard was built for and are kept as-is.
const (
	DefaultCaseName     = "Belapur"
	DefaultCasePhone    = "Device Alert"
	DefaultCaseAddress  = "Belapur Highway"
	DefaultResolvedBy   = "Police"
	DefaultUnknownField = "Unknown"
)

// Case represents an emergency report from the "emergencies" collection.
// Raw holds the document exactly as the store delivered it; display fields
// are derived through View so malformed documents still render best-effort.
type Case struct {
	ID  string
	Raw map[string]any
}

// Resolved reports whether the case has been marked resolved.
func (c Case) Resolved() bool {
	return stringField(c.Raw, "status") == StatusResolved
}

// UserID returns the reporting user's id, if the document carries one.
func (c Case) UserID() any {
	if c.Raw == nil {
		return nil
	}

	return c.Raw["userId"]
}

// CaseView is the normalized display projection of a case card.
type CaseView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Time       string `json:"time"`
	Resolved   bool   `json:"resolved"`
	ResolvedBy string `json:"resolvedBy,omitempty"`
}

// View derives the card projection, applying the documented fallback chains.
func (c Case) View() CaseView {
	return CaseViewOf(c.ID, c.Raw)
}

// CaseViewOf builds a case card projection from any raw record. The solved
// aggregate pushes resolved device alerts through the same projection, which
// is where the "Belapur" / "Device Alert" defaults come from.
func CaseViewOf(id string, raw map[string]any) CaseView {
	return CaseView{
		ID:         id,
		Name:       firstField(raw, DefaultCaseName, "userName"),
		Phone:      firstField(raw, DefaultCasePhone, "userPhone"),
		Address:    firstField(raw, DefaultCaseAddress, "formattedAddress", "userAddress"),
		Time:       FormatTimestamp(rawField(raw, "timestamp")),
		Resolved:   stringField(raw, "status") == StatusResolved,
		ResolvedBy: firstField(raw, DefaultResolvedBy, "resolvedBy"),
	}
}

// CaseDetail is the projection for the case detail modal, which uses plain
// "Unknown" defaults rather than the card defaults.
type CaseDetail struct {
	ID         string
	Name       string
	Phone      string
	Age        string
	Email      string
	Address    string
	Time       string
	Resolved   bool
	ResolvedBy string
}

// Detail derives the detail-modal projection.
func (c Case) Detail() CaseDetail {
	return CaseDetail{
		ID:         c.ID,
		Name:       firstField(c.Raw, DefaultUnknownField, "userName"),
		Phone:      firstField(c.Raw, DefaultUnknownField, "userPhone"),
		Age:        firstField(c.Raw, DefaultUnknownField, "userAge"),
		Email:      firstField(c.Raw, DefaultUnknownField, "userEmail"),
		Address:    firstField(c.Raw, DefaultUnknownField, "formattedAddress", "userAddress"),
		Time:       FormatTimestamp(rawField(c.Raw, "timestamp")),
		Resolved:   c.Resolved(),
		ResolvedBy: firstField(c.Raw, DefaultResolvedBy, "resolvedBy"),
	}
}

// Resolution carries the operator identity written onto a record when it is
// marked resolved. The resolved-at instant is assigned by the backend.
type Resolution struct {
	By      string
	Station string
	Message string
}

// Notification is the status update appended for the reporting user after an
// operator resolves their case.
type Notification struct {
	UserID      any
	EmergencyID string
	Title       string
	Message     string
	Type        string
	Read        bool
}

// rawField returns the raw value under key, or nil.
func rawField(raw map[string]any, key string) any {
	if raw == nil {
		return nil
	}

	return raw[key]
}

// stringField coerces the value under key to a string, treating nil and
// empty strings as absent.
func stringField(raw map[string]any, key string) string {
	v := rawField(raw, key)
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}

	return strings.TrimSpace(s)
}

// firstField walks the keys in order and returns the first non-empty value,
// falling back to def. Malformed types are coerced to string rather than
// rejected.
func firstField(raw map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if s := stringField(raw, key); s != "" {
			return s
		}
	}

	return def
}
