package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// requiredFields lists the fields that must be present and non-empty before a
// type may be serialized. Every shape needs a display name except levels,
// which are identified by class and level number instead.
var requiredFields = map[content.Type][]string{
	content.TypeSpells:              {"name", "school", "desc"},
	content.TypeMonsters:            {"name", "size", "type", "hit_dice", "challenge_rating"},
	content.TypeEquipment:           {"name", "equipment_category"},
	content.TypeMagicItems:          {"name", "equipment_category", "desc"},
	content.TypeRaces:               {"name", "size", "speed"},
	content.TypeSubraces:            {"name", "race", "desc"},
	content.TypeTraits:              {"name", "desc"},
	content.TypeClasses:             {"name", "hit_die"},
	content.TypeSubclasses:          {"name", "class", "desc"},
	content.TypeLevels:              {"class", "level"},
	content.TypeFeatures:            {"name", "class", "level", "desc"},
	content.TypeBackgrounds:         {"name", "feature_name", "feature_desc"},
	content.TypeFeats:               {"name", "desc"},
	content.TypeSkills:              {"name", "desc", "ability_score"},
	content.TypeConditions:          {"name", "desc"},
	content.TypeDamageTypes:         {"name", "desc"},
	content.TypeWeaponProperties:    {"name", "desc"},
	content.TypeAlignments:          {"name", "abbreviation", "desc"},
	content.TypeAbilityScores:       {"name", "full_name", "desc"},
	content.TypeLanguages:           {"name", "type"},
	content.TypeProficiencies:       {"name", "type"},
	content.TypeRules:               {"name", "desc"},
	content.TypeRuleSections:        {"name", "desc"},
	content.TypeMagicSchools:        {"name", "desc"},
	content.TypeEquipmentCategories: {"name"},
}

// MissingFields returns the required fields absent from the record, in the
// order they are declared. Empty means the record is ready to serialize.
func MissingFields(t content.Type, f content.Fields) []string {
	var missing []string
	for _, field := range requiredFields[t] {
		if !f.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsValid is the presence gate run before Serialize. Serialize itself never
// rejects input; this predicate is the only place "is the form complete"
// is decided.
func IsValid(t content.Type, f content.Fields) bool {
	return len(MissingFields(t, f)) == 0
}
