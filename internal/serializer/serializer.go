// Package serializer converts flat form-field records into canonical content
// documents: the nested JSON shapes the content-pack API stores and serves.
//
// Serialize is a pure function. It performs no I/O, holds no state, and never
// fails: input is assumed to have passed the per-type required-field check
// (IsValid) first, and the free-text heuristics degrade to partial output
// rather than erroring.
package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// Serialize produces the canonical document for one content item. The switch
// is exhaustive over the closed content-type set; an unknown type yields nil,
// which callers guard against with content.ParseType.
func Serialize(t content.Type, f content.Fields) content.Document {
	switch t {
	case content.TypeSpells:
		return serializeSpell(f)
	case content.TypeMonsters:
		return serializeMonster(f)
	case content.TypeEquipment:
		return serializeEquipment(f)
	case content.TypeMagicItems:
		return serializeMagicItem(f)
	case content.TypeRaces:
		return serializeRace(f)
	case content.TypeSubraces:
		return serializeSubrace(f)
	case content.TypeTraits:
		return serializeTrait(f)
	case content.TypeClasses:
		return serializeClass(f)
	case content.TypeSubclasses:
		return serializeSubclass(f)
	case content.TypeLevels:
		return serializeLevel(f)
	case content.TypeFeatures:
		return serializeFeature(f)
	case content.TypeBackgrounds:
		return serializeBackground(f)
	case content.TypeFeats:
		return serializeFeat(f)
	case content.TypeSkills:
		return serializeSkill(f)
	case content.TypeConditions:
		return serializeDescribed(content.TypeConditions, f)
	case content.TypeDamageTypes:
		return serializeDescribed(content.TypeDamageTypes, f)
	case content.TypeWeaponProperties:
		return serializeDescribed(content.TypeWeaponProperties, f)
	case content.TypeAlignments:
		return serializeAlignment(f)
	case content.TypeAbilityScores:
		return serializeAbilityScore(f)
	case content.TypeLanguages:
		return serializeLanguage(f)
	case content.TypeProficiencies:
		return serializeProficiency(f)
	case content.TypeRules:
		return serializeRule(f)
	case content.TypeRuleSections:
		return serializeProse(content.TypeRuleSections, f)
	case content.TypeMagicSchools:
		return serializeProse(content.TypeMagicSchools, f)
	case content.TypeEquipmentCategories:
		return serializeEquipmentCategory(f)
	}
	return nil
}

// newDocument starts a document with the three keys every shape carries
func newDocument(t content.Type, name string) content.Document {
	slug := CustomSlug(name)
	return content.Document{
		"index": slug,
		"name":  name,
		"url":   content.APIPath(t, slug),
	}
}

// Optional-field setters. Empty, zero, and false values are omitted from the
// output entirely; shapes that always carry a key set it directly instead.

func setStr(doc content.Document, key, val string) {
	if val != "" {
		doc[key] = val
	}
}

func setInt(doc content.Document, key string, val int) {
	if val != 0 {
		doc[key] = val
	}
}

func setFloat(doc content.Document, key string, val float64) {
	if val != 0 {
		doc[key] = val
	}
}

func setLines(doc content.Document, key, text string) {
	if lines := splitLines(text); len(lines) > 0 {
		doc[key] = lines
	}
}

func setList(doc content.Document, key, text string) {
	if items := splitList(text); len(items) > 0 {
		doc[key] = items
	}
}

func setRef(doc content.Document, key string, t content.Type, name string) {
	if name != "" {
		doc[key] = Ref(t, name)
	}
}

func setRefs(doc content.Document, key string, t content.Type, names string) {
	if refs := refList(t, names); len(refs) > 0 {
		doc[key] = refs
	}
}
