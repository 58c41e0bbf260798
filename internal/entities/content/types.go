// Package content defines the domain types for content items and packs
package content

import "fmt"

// Reference is an embedded pointer at another content item. Documents carry
// full references instead of bare names so consumers never need a lookup step.
type Reference struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// Document is one serialized content item, ready to upload. Keys are
// shape-specific; values are scalars, lists, References, or nested Documents.
// A Document is never mutated after construction.
type Document map[string]any

// Index returns the document's index slug, if present
func (d Document) Index() string {
	s, _ := d["index"].(string)
	return s
}

// Name returns the document's display name, if present
func (d Document) Name() string {
	s, _ := d["name"].(string)
	return s
}

// Fields is the flat form-field record supplied for one content item. The
// serializer only reads it. Values arrive either as native Go values or as
// JSON-decoded ones (float64 numbers, []any lists), so the accessors accept both.
type Fields map[string]any

// Str returns the string value for key, or "" when absent or not a string
func (f Fields) Str(key string) string {
	s, _ := f[key].(string)
	return s
}

// Int returns the integer value for key, accepting JSON numbers
func (f Fields) Int(key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the numeric value for key as a float64
func (f Fields) Float(key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the boolean value for key, or false when absent
func (f Fields) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Strings returns the list value for key. Accepts []string and JSON []any.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// IntMap returns the nested numeric record for key (ability-score bonuses)
func (f Fields) IntMap(key string) map[string]int {
	switch v := f[key].(type) {
	case map[string]int:
		return v
	case map[string]any:
		out := make(map[string]int, len(v))
		for k, raw := range v {
			switch n := raw.(type) {
			case int:
				out[k] = n
			case float64:
				out[k] = int(n)
			}
		}
		return out
	}
	return nil
}

// Has reports whether key is present with a usable value: non-empty for
// strings and lists, any value for numbers and booleans.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	switch val := v.(type) {
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	}
	return true
}

// APIPath builds the canonical resource URL for a content item. The scheme is
// an interoperability contract with existing backends and must not change.
func APIPath(t Type, slug string) string {
	return fmt.Sprintf("/api/%s/%s", t, slug)
}

// Pack is a named, versioned collection of content documents that can be
// activated as a unit.
type Pack struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
