package serializer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critfumble/content-api/internal/entities/content"
	"github.com/critfumble/content-api/internal/serializer"
)

func TestSlug(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Fireball", want: "fireball"},
		{name: "two words", in: "Fire Ball", want: "fire-ball"},
		{name: "whitespace runs collapse", in: "Fire    Ball", want: "fire-ball"},
		{name: "mixed case", in: "FIRE ball", want: "fire-ball"},
		{name: "leading and trailing whitespace", in: "  Fire Ball  ", want: "fire-ball"},
		{name: "tabs count as whitespace", in: "Fire\tBall", want: "fire-ball"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, serializer.Slug(tc.in))
			assert.Equal(t, "custom-"+tc.want, serializer.CustomSlug(tc.in))
		})
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	fields := content.Fields{
		"name":             "Fire Ball",
		"level":            3,
		"school":           "Evocation",
		"desc":             "A bright streak flashes.\nIt blossoms with a low roar.",
		"classes":          "Wizard, Sorcerer",
		"components":       []string{"V", "S", "M"},
		"ritual":           false,
		"concentration":    false,
		"casting_time":     "1 action",
		"range":            "150 feet",
		"duration":         "Instantaneous",
		"material":         "A tiny ball of bat guano and sulfur",
		"ability_bonuses":  map[string]int{"DEX": 2},
		"challenge_rating": 5.0,
	}

	for _, contentType := range content.AllTypes {
		first, err := json.Marshal(serializer.Serialize(contentType, fields))
		require.NoError(t, err)
		second, err := json.Marshal(serializer.Serialize(contentType, fields))
		require.NoError(t, err)
		assert.Equal(t, first, second, "type %s", contentType)
	}
}

func TestSerializeSpellRoundTrip(t *testing.T) {
	doc := serializer.Serialize(content.TypeSpells, content.Fields{
		"name":          "Fireball",
		"level":         3,
		"school":        "Evocation",
		"components":    []string{"V", "S", "M"},
		"material":      "bat guano",
		"casting_time":  "1 action",
		"duration":      "Instantaneous",
		"range":         "150 feet",
		"desc":          "A bright streak flashes from your pointing finger.",
		"classes":       "Wizard",
		"ritual":        false,
		"concentration": false,
		"higher_level":  "",
	})

	assert.Equal(t, "custom-fireball", doc["index"])
	assert.Equal(t, "Fireball", doc["name"])
	assert.Equal(t, "/api/spells/custom-fireball", doc["url"])
	assert.Equal(t, 3, doc["level"])
	assert.Equal(t, "bat guano", doc["material"])

	assert.Equal(t, content.Reference{
		Index: "evocation",
		Name:  "Evocation",
		URL:   "/api/magic-schools/evocation",
	}, doc["school"])

	assert.Equal(t, []content.Reference{{
		Index: "wizard",
		Name:  "Wizard",
		URL:   "/api/classes/wizard",
	}}, doc["classes"])

	// Empty optionals are omitted, never emitted as null
	_, hasHigherLevel := doc["higher_level"]
	assert.False(t, hasHigherLevel)
	_, hasSubclasses := doc["subclasses"]
	assert.False(t, hasSubclasses)

	// Spell booleans are shape defaults: present even when false
	assert.Equal(t, false, doc["ritual"])
	assert.Equal(t, false, doc["concentration"])
}

func TestSerializeSlugIgnoresOtherFields(t *testing.T) {
	a := serializer.Serialize(content.TypeConditions, content.Fields{"name": "Fire Ball", "desc": "one"})
	b := serializer.Serialize(content.TypeConditions, content.Fields{"name": "Fire  Ball", "desc": "two\nlines"})

	assert.Equal(t, "custom-fire-ball", a["index"])
	assert.Equal(t, a["index"], b["index"])
}

func TestSerializeOmitsEmptyOptionals(t *testing.T) {
	doc := serializer.Serialize(content.TypeEquipment, content.Fields{
		"name":               "Plain Rope",
		"equipment_category": "Adventuring Gear",
		"weight":             0.0,
		"desc":               "",
	})

	_, hasWeight := doc["weight"]
	assert.False(t, hasWeight, "zero weight must be omitted")
	_, hasDesc := doc["desc"]
	assert.False(t, hasDesc)
	_, hasCost := doc["cost"]
	assert.False(t, hasCost)

	assert.Equal(t, "custom-plain-rope", doc["index"])
	assert.Equal(t, content.Reference{
		Index: "adventuring-gear",
		Name:  "Adventuring Gear",
		URL:   "/api/equipment-categories/adventuring-gear",
	}, doc["equipment_category"])
}

func TestSerializeUnknownTypeReturnsNil(t *testing.T) {
	assert.Nil(t, serializer.Serialize(content.Type("sandwiches"), content.Fields{"name": "BLT"}))
}

func TestIsValid(t *testing.T) {
	fields := content.Fields{
		"name":   "Shield of Testing",
		"school": "Abjuration",
	}
	assert.False(t, serializer.IsValid(content.TypeSpells, fields))
	assert.Equal(t, []string{"desc"}, serializer.MissingFields(content.TypeSpells, fields))

	fields["desc"] = "A shimmering barrier appears."
	assert.True(t, serializer.IsValid(content.TypeSpells, fields))

	// Empty strings do not count as present
	fields["school"] = ""
	assert.False(t, serializer.IsValid(content.TypeSpells, fields))
}

func TestIsValidLevelsNeedNoName(t *testing.T) {
	assert.True(t, serializer.IsValid(content.TypeLevels, content.Fields{
		"class": "Berserker",
		"level": 3,
	}))
	assert.False(t, serializer.IsValid(content.TypeLevels, content.Fields{"level": 3}))
}
