package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// serializeMonster builds a monster statblock. Fields: name, size, type,
// subtype, alignment, armor_class, hit_points, hit_dice, speed, the six
// ability scores (strength..charisma), damage_vulnerabilities,
// damage_resistances, damage_immunities, condition_immunities, senses,
// languages, challenge_rating, special_abilities, actions, legendary_actions.
//
// Derived values: hit_points_roll folds the Constitution modifier into the
// hit-dice string, proficiency_bonus and xp come from the challenge rating.
// xp and proficiency_bonus are always present, even when the rating has no
// table entry (xp 0).
func serializeMonster(f content.Fields) content.Document {
	doc := newDocument(content.TypeMonsters, f.Str("name"))

	setStr(doc, "size", f.Str("size"))
	setStr(doc, "type", f.Str("type"))
	setStr(doc, "subtype", f.Str("subtype"))
	setStr(doc, "alignment", f.Str("alignment"))
	setInt(doc, "armor_class", f.Int("armor_class"))
	setInt(doc, "hit_points", f.Int("hit_points"))

	if hitDice := f.Str("hit_dice"); hitDice != "" {
		doc["hit_dice"] = hitDice
		doc["hit_points_roll"] = HitPointsRoll(hitDice, f.Int("constitution"))
	}

	if speed := ParseSpeed(f.Str("speed")); speed != nil {
		doc["speed"] = speed
	}

	for _, ability := range []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"} {
		doc[ability] = f.Int(ability)
	}

	setList(doc, "damage_vulnerabilities", f.Str("damage_vulnerabilities"))
	setList(doc, "damage_resistances", f.Str("damage_resistances"))
	setList(doc, "damage_immunities", f.Str("damage_immunities"))
	setRefs(doc, "condition_immunities", content.TypeConditions, f.Str("condition_immunities"))

	if senses := ParseSenses(f.Str("senses")); senses != nil {
		doc["senses"] = senses
	}
	setStr(doc, "languages", f.Str("languages"))

	cr := f.Float("challenge_rating")
	doc["challenge_rating"] = cr
	doc["proficiency_bonus"] = ProficiencyBonus(cr)
	doc["xp"] = XPForChallengeRating(cr)

	if abilities := ParseActions(f.Str("special_abilities")); len(abilities) > 0 {
		doc["special_abilities"] = abilities
	}
	if actions := ParseActions(f.Str("actions")); len(actions) > 0 {
		doc["actions"] = actions
	}
	if legendary := ParseActions(f.Str("legendary_actions")); len(legendary) > 0 {
		doc["legendary_actions"] = legendary
	}

	return doc
}
