package serializer

import (
	"strings"

	"github.com/critfumble/content-api/internal/entities/content"
)

// customPrefix marks user-authored items apart from built-in SRD content
const customPrefix = "custom-"

// Slug derives the canonical machine identifier from a display name:
// lowercased, whitespace runs collapsed to a single hyphen. Deterministic in
// the name alone.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// CustomSlug is the slug used as the index of a user-authored item
func CustomSlug(name string) string {
	return customPrefix + Slug(name)
}

// Ref builds an embedded reference to the named item of the given type. The
// referenced item is not required to exist; references to built-in SRD content
// (e.g. ability scores) resolve through the same scheme.
func Ref(t content.Type, name string) content.Reference {
	slug := Slug(name)
	return content.Reference{
		Index: slug,
		Name:  name,
		URL:   content.APIPath(t, slug),
	}
}

// splitList splits comma-separated free text into trimmed, non-empty pieces
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(s, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// splitLines splits textarea input into trimmed, non-blank lines, in order
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(strings.TrimSuffix(line, "\r")); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// refList converts a comma-separated list of display names into references
func refList(t content.Type, s string) []content.Reference {
	names := splitList(s)
	if len(names) == 0 {
		return nil
	}
	refs := make([]content.Reference, len(names))
	for i, name := range names {
		refs[i] = Ref(t, name)
	}
	return refs
}
