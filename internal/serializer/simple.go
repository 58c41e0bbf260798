package serializer

import (
	"strconv"
	"strings"

	"github.com/critfumble/content-api/internal/entities/content"
)

// The shapes in this file are flat: a name, a description, and at most a
// couple of references.

// serializeDescribed covers conditions, damage types and weapon properties:
// name plus a multi-line description.
func serializeDescribed(t content.Type, f content.Fields) content.Document {
	doc := newDocument(t, f.Str("name"))
	setLines(doc, "desc", f.Str("desc"))
	return doc
}

// serializeProse covers magic schools and rule sections, whose description is
// a single prose string rather than a line list.
func serializeProse(t content.Type, f content.Fields) content.Document {
	doc := newDocument(t, f.Str("name"))
	setStr(doc, "desc", f.Str("desc"))
	return doc
}

// serializeAlignment builds an alignment record. Fields: name, abbreviation, desc.
func serializeAlignment(f content.Fields) content.Document {
	doc := newDocument(content.TypeAlignments, f.Str("name"))
	setStr(doc, "abbreviation", f.Str("abbreviation"))
	setStr(doc, "desc", f.Str("desc"))
	return doc
}

// serializeSkill builds a skill record. Fields: name, desc, ability_score.
func serializeSkill(f content.Fields) content.Document {
	doc := newDocument(content.TypeSkills, f.Str("name"))
	setLines(doc, "desc", f.Str("desc"))
	setRef(doc, "ability_score", content.TypeAbilityScores, f.Str("ability_score"))
	return doc
}

// serializeAbilityScore builds an ability-score record. Fields: name (the
// abbreviation, e.g. "STR"), full_name, desc, skills.
func serializeAbilityScore(f content.Fields) content.Document {
	doc := newDocument(content.TypeAbilityScores, f.Str("name"))
	setStr(doc, "full_name", f.Str("full_name"))
	setLines(doc, "desc", f.Str("desc"))
	setRefs(doc, "skills", content.TypeSkills, f.Str("skills"))
	return doc
}

// serializeLanguage builds a language record. Fields: name, type,
// typical_speakers, script.
func serializeLanguage(f content.Fields) content.Document {
	doc := newDocument(content.TypeLanguages, f.Str("name"))
	setStr(doc, "type", f.Str("type"))
	setList(doc, "typical_speakers", f.Str("typical_speakers"))
	setStr(doc, "script", f.Str("script"))
	return doc
}

// serializeProficiency builds a proficiency record. Fields: name, type,
// classes, races.
func serializeProficiency(f content.Fields) content.Document {
	doc := newDocument(content.TypeProficiencies, f.Str("name"))
	setStr(doc, "type", f.Str("type"))
	setRefs(doc, "classes", content.TypeClasses, f.Str("classes"))
	setRefs(doc, "races", content.TypeRaces, f.Str("races"))
	return doc
}

// serializeRule builds a rule record with references to its sections.
// Fields: name, desc, subsections.
func serializeRule(f content.Fields) content.Document {
	doc := newDocument(content.TypeRules, f.Str("name"))
	setStr(doc, "desc", f.Str("desc"))
	setRefs(doc, "subsections", content.TypeRuleSections, f.Str("subsections"))
	return doc
}

// serializeBackground builds a background record. Fields: name,
// starting_proficiencies, feature_name, feature_desc, personality_traits,
// ideals, bonds, flaws.
func serializeBackground(f content.Fields) content.Document {
	doc := newDocument(content.TypeBackgrounds, f.Str("name"))

	setRefs(doc, "starting_proficiencies", content.TypeProficiencies, f.Str("starting_proficiencies"))

	if featureName := f.Str("feature_name"); featureName != "" {
		feature := content.Document{"name": featureName}
		if lines := splitLines(f.Str("feature_desc")); len(lines) > 0 {
			feature["desc"] = lines
		}
		doc["feature"] = feature
	}

	setLines(doc, "personality_traits", f.Str("personality_traits"))
	setLines(doc, "ideals", f.Str("ideals"))
	setLines(doc, "bonds", f.Str("bonds"))
	setLines(doc, "flaws", f.Str("flaws"))

	return doc
}

// serializeFeat builds a feat record. Fields: name, desc, prerequisites.
//
// Prerequisites are comma-separated "<ability> <score>" pairs ("STR 13");
// pieces that do not end in a number are skipped, in keeping with the other
// free-text heuristics.
func serializeFeat(f content.Fields) content.Document {
	doc := newDocument(content.TypeFeats, f.Str("name"))
	setLines(doc, "desc", f.Str("desc"))

	var prereqs []content.Document
	for _, piece := range splitList(f.Str("prerequisites")) {
		ability, scoreText, ok := splitTrailingNumber(piece)
		if !ok {
			continue
		}
		score, err := strconv.Atoi(scoreText)
		if err != nil {
			continue
		}
		prereqs = append(prereqs, content.Document{
			"ability_score": Ref(content.TypeAbilityScores, ability),
			"minimum_score": score,
		})
	}
	if len(prereqs) > 0 {
		doc["prerequisites"] = prereqs
	}

	return doc
}

// splitTrailingNumber splits "STR 13" into ("STR", "13")
func splitTrailingNumber(s string) (prefix, number string, ok bool) {
	idx := strings.LastIndexByte(s, ' ')
	if idx < 0 {
		return "", "", false
	}
	prefix = strings.TrimSpace(s[:idx])
	number = strings.TrimSpace(s[idx+1:])
	if prefix == "" || number == "" {
		return "", "", false
	}
	return prefix, number, true
}
