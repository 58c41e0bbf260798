package serializer

import (
	"fmt"

	"github.com/critfumble/content-api/internal/entities/content"
)

// serializeClass builds a class record. Fields: name, hit_die, proficiencies,
// saving_throws, subclasses, class_features.
//
// class_features is newline-delimited "Name: Description" text, one line per
// level starting at 1. Each line synthesizes one level record:
// ability_score_bonuses is 1 at levels 4, 8, 12, 16 and 20 (zero-based index
// congruent to 3 mod 4), and prof_bonus is floor((index+7)/4), stepping at
// levels 5, 9, 13 and 17. The formulas reproduce the observed source
// arithmetic exactly and are pinned by tests; whether they model every
// published progression level is left as-is on purpose.
func serializeClass(f content.Fields) content.Document {
	doc := newDocument(content.TypeClasses, f.Str("name"))

	setInt(doc, "hit_die", f.Int("hit_die"))
	setRefs(doc, "proficiencies", content.TypeProficiencies, f.Str("proficiencies"))
	setRefs(doc, "saving_throws", content.TypeAbilityScores, f.Str("saving_throws"))
	setRefs(doc, "subclasses", content.TypeSubclasses, f.Str("subclasses"))

	entries := parseNamedEntries(f.Str("class_features"))
	if len(entries) > 0 {
		levels := make([]content.Document, len(entries))
		for i, entry := range entries {
			bonuses := 0
			if i%4 == 3 {
				bonuses = 1
			}
			levels[i] = content.Document{
				"level":                 i + 1,
				"ability_score_bonuses": bonuses,
				"prof_bonus":            (i + 7) / 4,
				"features": []content.Document{{
					"name": entry.Name,
					"desc": entry.Desc,
				}},
			}
		}
		doc["class_levels"] = levels
	}

	return doc
}

// serializeSubclass builds a subclass record. Fields: name, class,
// subclass_flavor, desc, features.
//
// features lines become level-indexed entries starting at level 3, the level
// subclasses come online.
func serializeSubclass(f content.Fields) content.Document {
	doc := newDocument(content.TypeSubclasses, f.Str("name"))

	setRef(doc, "class", content.TypeClasses, f.Str("class"))
	setStr(doc, "subclass_flavor", f.Str("subclass_flavor"))
	setLines(doc, "desc", f.Str("desc"))

	entries := parseNamedEntries(f.Str("features"))
	if len(entries) > 0 {
		levels := make([]content.Document, len(entries))
		for i, entry := range entries {
			levels[i] = content.Document{
				"level": i + 3,
				"features": []content.Document{{
					"name": entry.Name,
					"desc": entry.Desc,
				}},
			}
		}
		doc["subclass_levels"] = levels
	}

	return doc
}

// serializeLevel builds a standalone class-level record. Fields: class,
// level, ability_score_bonuses, prof_bonus, features, subclass.
//
// Level records have no display name of their own; the index derives from the
// class name and level number ("custom-berserker-3").
func serializeLevel(f content.Fields) content.Document {
	class := f.Str("class")
	level := f.Int("level")
	slug := CustomSlug(fmt.Sprintf("%s %d", class, level))

	doc := content.Document{
		"index":                 slug,
		"url":                   content.APIPath(content.TypeLevels, slug),
		"level":                 level,
		"ability_score_bonuses": f.Int("ability_score_bonuses"),
		"prof_bonus":            f.Int("prof_bonus"),
	}

	setRef(doc, "class", content.TypeClasses, class)
	setRef(doc, "subclass", content.TypeSubclasses, f.Str("subclass"))
	setRefs(doc, "features", content.TypeFeatures, f.Str("features"))

	return doc
}

// serializeFeature builds a class-feature record. Fields: name, level, class,
// subclass, desc.
func serializeFeature(f content.Fields) content.Document {
	doc := newDocument(content.TypeFeatures, f.Str("name"))

	setInt(doc, "level", f.Int("level"))
	setRef(doc, "class", content.TypeClasses, f.Str("class"))
	setRef(doc, "subclass", content.TypeSubclasses, f.Str("subclass"))
	setLines(doc, "desc", f.Str("desc"))

	return doc
}
