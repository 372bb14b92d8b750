package api

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

// Route is a routing rule as returned by GET /routes.
type Route struct {
	ID          string      `json:"id"`
	Priority    int         `json:"priority"`
	Description Description `json:"description"`
	Expression  string      `json:"expression"`
	Actions     []string    `json:"actions"`
	CreatedAt   string      `json:"created_at,omitempty"`
}

// RoutesPage is one page of routes. TotalCount is the number of routes on
// the server across all pages.
type RoutesPage struct {
	Items      []Route `json:"items"`
	TotalCount uint64  `json:"total_count"`
}

// Description holds a route description as whatever JSON the server sent.
// Mailgun usually returns a string but the type is not guaranteed.
type Description json.RawMessage

// UnmarshalJSON stores the raw value without interpreting it.
func (d *Description) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// MarshalJSON writes the raw value back, or null when empty.
func (d Description) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

// IsNull reports whether the description is absent or JSON null.
func (d Description) IsNull() bool {
	return len(d) == 0 || bytes.Equal(d, []byte("null"))
}

// IsString reports whether the description is a JSON string.
func (d Description) IsString() bool {
	return len(d) > 0 && d[0] == '"'
}

// Text returns the string contents for a JSON string, the raw JSON text for
// any other value, and "" for null.
func (d Description) Text() string {
	if d.IsNull() {
		return ""
	}
	if d.IsString() {
		var s string
		if err := json.Unmarshal(d, &s); err == nil {
			return s
		}
	}
	return string(d)
}

// Raw returns the undecoded JSON value.
func (d Description) Raw() json.RawMessage {
	return json.RawMessage(d)
}

// RouteDescriptor describes a route to create.
type RouteDescriptor struct {
	Priority    int
	Description string
	Expression  string
	// Actions are applied by Mailgun in order.
	Actions []string
}

// Form encodes the descriptor as a POST /routes body.
func (d RouteDescriptor) Form() url.Values {
	form := url.Values{}
	form.Set("priority", strconv.Itoa(d.Priority))
	form.Set("description", d.Description)
	form.Set("expression", d.Expression)
	addActions(form, d.Actions)
	return form
}

// RouteUpdate holds the mutable fields of an existing route. Description and
// expression cannot be changed through an update.
type RouteUpdate struct {
	Priority int
	Actions  []string
}

// Form encodes the update as a PUT /routes/{id} body.
func (u RouteUpdate) Form() url.Values {
	form := url.Values{}
	form.Set("priority", strconv.Itoa(u.Priority))
	addActions(form, u.Actions)
	return form
}

// addActions adds one "action" field per action, keeping their order.
func addActions(form url.Values, actions []string) {
	for _, action := range actions {
		form.Add("action", action)
	}
}

// ListParams selects a page of routes.
type ListParams struct {
	// Skip is the offset into the route collection. Nil omits the parameter.
	Skip *uint64
	// Limit is the page size. Zero omits the parameter.
	Limit int
}
