package content

// Type identifies one of the content categories a pack can hold. The set is
// closed; the tag doubles as the plural kebab-case path segment in resource URLs.
type Type string

// Content type constants
const (
	TypeSpells              Type = "spells"
	TypeMonsters            Type = "monsters"
	TypeEquipment           Type = "equipment"
	TypeRaces               Type = "races"
	TypeBackgrounds         Type = "backgrounds"
	TypeFeats               Type = "feats"
	TypeTraits              Type = "traits"
	TypeSkills              Type = "skills"
	TypeConditions          Type = "conditions"
	TypeAlignments          Type = "alignments"
	TypeDamageTypes         Type = "damage-types"
	TypeWeaponProperties    Type = "weapon-properties"
	TypeAbilityScores       Type = "ability-scores"
	TypeLanguages           Type = "languages"
	TypeProficiencies       Type = "proficiencies"
	TypeRules               Type = "rules"
	TypeEquipmentCategories Type = "equipment-categories"
	TypeMagicSchools        Type = "magic-schools"
	TypeRuleSections        Type = "rule-sections"
	TypeFeatures            Type = "features"
	TypeLevels              Type = "levels"
	TypeMagicItems          Type = "magic-items"
	TypeSubclasses          Type = "subclasses"
	TypeSubraces            Type = "subraces"
	TypeClasses             Type = "classes"
)

// AllTypes lists every content type in a stable order
var AllTypes = []Type{
	TypeSpells,
	TypeMonsters,
	TypeEquipment,
	TypeRaces,
	TypeBackgrounds,
	TypeFeats,
	TypeTraits,
	TypeSkills,
	TypeConditions,
	TypeAlignments,
	TypeDamageTypes,
	TypeWeaponProperties,
	TypeAbilityScores,
	TypeLanguages,
	TypeProficiencies,
	TypeRules,
	TypeEquipmentCategories,
	TypeMagicSchools,
	TypeRuleSections,
	TypeFeatures,
	TypeLevels,
	TypeMagicItems,
	TypeSubclasses,
	TypeSubraces,
	TypeClasses,
}

// String returns the string representation of the type
func (t Type) String() string {
	return string(t)
}

// ParseType returns the content type for a path segment, and whether it is one
// of the known types.
func ParseType(s string) (Type, bool) {
	t := Type(s)
	for _, known := range AllTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// AbilityScoreOrder is the fixed iteration order for ability-score-keyed
// records. Output lists derived from such records follow this order.
var AbilityScoreOrder = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}
