package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// serializeRace builds a race record. Fields: name, speed, ability_bonuses
// (record keyed STR..CHA), alignment, age, size, size_description,
// starting_proficiencies, languages, language_desc, traits, subraces.
//
// Race ability bonuses keep any nonzero entry and carry the ability score as
// a bare name; subraces differ on both points (see serializeSubrace). The
// asymmetry is deliberate and mirrored by the tests.
func serializeRace(f content.Fields) content.Document {
	doc := newDocument(content.TypeRaces, f.Str("name"))

	setInt(doc, "speed", f.Int("speed"))

	bonuses := f.IntMap("ability_bonuses")
	var entries []content.Document
	for _, ability := range content.AbilityScoreOrder {
		if bonus := bonuses[ability]; bonus != 0 {
			entries = append(entries, content.Document{
				"ability_score": ability,
				"bonus":         bonus,
			})
		}
	}
	if len(entries) > 0 {
		doc["ability_bonuses"] = entries
	}

	setStr(doc, "alignment", f.Str("alignment"))
	setStr(doc, "age", f.Str("age"))
	setStr(doc, "size", f.Str("size"))
	setStr(doc, "size_description", f.Str("size_description"))

	setRefs(doc, "starting_proficiencies", content.TypeProficiencies, f.Str("starting_proficiencies"))
	setRefs(doc, "languages", content.TypeLanguages, f.Str("languages"))
	setStr(doc, "language_desc", f.Str("language_desc"))
	setRefs(doc, "traits", content.TypeTraits, f.Str("traits"))
	setRefs(doc, "subraces", content.TypeSubraces, f.Str("subraces"))

	return doc
}

// serializeSubrace builds a subrace record. Fields: name, race, desc,
// ability_bonuses, starting_proficiencies, languages, racial_traits.
//
// Only strictly positive bonuses appear, each wrapping the ability score in a
// full reference.
func serializeSubrace(f content.Fields) content.Document {
	doc := newDocument(content.TypeSubraces, f.Str("name"))

	setRef(doc, "race", content.TypeRaces, f.Str("race"))
	setStr(doc, "desc", f.Str("desc"))

	bonuses := f.IntMap("ability_bonuses")
	var entries []content.Document
	for _, ability := range content.AbilityScoreOrder {
		if bonus := bonuses[ability]; bonus > 0 {
			entries = append(entries, content.Document{
				"ability_score": Ref(content.TypeAbilityScores, ability),
				"bonus":         bonus,
			})
		}
	}
	if len(entries) > 0 {
		doc["ability_bonuses"] = entries
	}

	setRefs(doc, "starting_proficiencies", content.TypeProficiencies, f.Str("starting_proficiencies"))
	setRefs(doc, "languages", content.TypeLanguages, f.Str("languages"))
	setRefs(doc, "racial_traits", content.TypeTraits, f.Str("racial_traits"))

	return doc
}

// serializeTrait builds a racial-trait record. Fields: name, races, subraces,
// proficiencies, desc.
func serializeTrait(f content.Fields) content.Document {
	doc := newDocument(content.TypeTraits, f.Str("name"))

	setRefs(doc, "races", content.TypeRaces, f.Str("races"))
	setRefs(doc, "subraces", content.TypeSubraces, f.Str("subraces"))
	setRefs(doc, "proficiencies", content.TypeProficiencies, f.Str("proficiencies"))
	setLines(doc, "desc", f.Str("desc"))

	return doc
}
