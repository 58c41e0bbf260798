package serializer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/serializer"
)

func TestSerializeRaceAbilityBonuses(t *testing.T) {
	doc := serializer.Serialize(content.TypeRaces, content.Fields{
		"name":  "Marsh Gnome",
		"size":  "Small",
		"speed": 25,
		"ability_bonuses": map[string]int{
			"STR": 0, "DEX": 2, "CON": 0, "INT": 0, "WIS": 0, "CHA": 0,
		},
	})

	bonuses, ok := doc["ability_bonuses"].([]content.Document)
	require.True(t, ok)
	require.Len(t, bonuses, 1, "zero bonuses are omitted")

	// Races carry the ability score as a bare name
	assert.Equal(t, content.Document{"ability_score": "DEX", "bonus": 2}, bonuses[0])
}

func TestSerializeRaceKeepsNegativeBonuses(t *testing.T) {
	doc := serializer.Serialize(content.TypeRaces, content.Fields{
		"name":  "Gloom Dwarf",
		"size":  "Medium",
		"speed": 25,
		"ability_bonuses": map[string]int{
			"CON": 2, "CHA": -1,
		},
	})

	bonuses, ok := doc["ability_bonuses"].([]content.Document)
	require.True(t, ok)
	require.Len(t, bonuses, 2, "races keep any nonzero bonus, negatives included")
	assert.Equal(t, content.Document{"ability_score": "CON", "bonus": 2}, bonuses[0])
	assert.Equal(t, content.Document{"ability_score": "CHA", "bonus": -1}, bonuses[1])
}

func TestSerializeSubraceAbilityBonuses(t *testing.T) {
	doc := serializer.Serialize(content.TypeSubraces, content.Fields{
		"name": "Hill Gnome",
		"race": "Marsh Gnome",
		"desc": "Gnomes of the low hills.",
		"ability_bonuses": map[string]int{
			"STR": 0, "WIS": 1, "CHA": -1,
		},
	})

	bonuses, ok := doc["ability_bonuses"].([]content.Document)
	require.True(t, ok)
	require.Len(t, bonuses, 1, "subraces keep strictly positive bonuses only")

	// Subraces wrap the ability score in a full reference
	assert.Equal(t, content.Document{
		"ability_score": content.Reference{
			Index: "wis",
			Name:  "WIS",
			URL:   "/api/ability-scores/wis",
		},
		"bonus": 1,
	}, bonuses[0])

	assert.Equal(t, content.Reference{
		Index: "marsh-gnome",
		Name:  "Marsh Gnome",
		URL:   "/api/races/marsh-gnome",
	}, doc["race"])
}

func TestSerializeSubraceAllZeroBonusesOmitted(t *testing.T) {
	doc := serializer.Serialize(content.TypeSubraces, content.Fields{
		"name":            "Plain Subrace",
		"race":            "Marsh Gnome",
		"desc":            "Nothing special.",
		"ability_bonuses": map[string]int{"STR": 0},
	})

	_, has := doc["ability_bonuses"]
	assert.False(t, has)
}

func TestSerializeTrait(t *testing.T) {
	doc := serializer.Serialize(content.TypeTraits, content.Fields{
		"name":  "Bog Sense",
		"races": "Marsh Gnome, Gloom Dwarf",
		"desc":  "You can always find solid footing in a marsh.",
	})

	assert.Equal(t, "custom-bog-sense", doc["index"])
	races, ok := doc["races"].([]content.Reference)
	require.True(t, ok)
	require.Len(t, races, 2)
	assert.Equal(t, "marsh-gnome", races[0].Index)
	assert.Equal(t, "gloom-dwarf", races[1].Index)
}
