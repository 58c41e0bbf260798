package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critfumble/content-api/internal/entities/content"
)

func TestHitPointsRoll(t *testing.T) {
	testCases := []struct {
		name         string
		hitDice      string
		constitution int
		want         string
	}{
		{
			name:         "constitution above 10 appends modifier times dice count",
			hitDice:      "3d8",
			constitution: 14,
			want:         "3d8+6",
		},
		{
			name:         "odd constitution rounds the modifier down",
			hitDice:      "4d10",
			constitution: 15,
			want:         "4d10+8",
		},
		{
			name:         "constitution of exactly 10 leaves the dice unchanged",
			hitDice:      "3d8",
			constitution: 10,
			want:         "3d8",
		},
		{
			name:         "constitution below 10 leaves the dice unchanged",
			hitDice:      "2d6",
			constitution: 7,
			want:         "2d6",
		},
		{
			name:         "unparseable dice string passes through untouched",
			hitDice:      "lots of dice",
			constitution: 18,
			want:         "lots of dice",
		},
		{
			name:         "single die",
			hitDice:      "1d4",
			constitution: 12,
			want:         "1d4+1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HitPointsRoll(tc.hitDice, tc.constitution))
		})
	}
}

func TestParseSpeed(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want content.Document
	}{
		{
			name: "walk and fly",
			text: "30 ft., fly 60 ft.",
			want: content.Document{"walk": "30 ft.", "fly": "60 ft."},
		},
		{
			name: "bare number defaults to walk",
			text: "25 ft.",
			want: content.Document{"walk": "25 ft."},
		},
		{
			name: "swim and burrow",
			text: "swim 40 ft., burrow 20 ft.",
			want: content.Document{"swim": "40 ft.", "burrow": "20 ft."},
		},
		{
			name: "unmatched segments are dropped",
			text: "30 ft., hover (while concentrating)",
			want: content.Document{"walk": "30 ft."},
		},
		{
			name: "empty input yields nothing",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSpeed(tc.text))
		})
	}
}

func TestParseSenses(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want content.Document
	}{
		{
			name: "darkvision and passive perception",
			text: "darkvision 60 ft., passive Perception 13",
			want: content.Document{"darkvision": "60 ft.", "passive_perception": 13},
		},
		{
			name: "multi word sense gets underscores",
			text: "blindsight beyond walls 30 ft.",
			want: content.Document{"blindsight_beyond_walls": "30 ft."},
		},
		{
			name: "tremorsense alone",
			text: "tremorsense 120 ft.",
			want: content.Document{"tremorsense": "120 ft."},
		},
		{
			name: "unmatched segment is dropped",
			text: "keen smell, darkvision 60 ft.",
			want: content.Document{"darkvision": "60 ft."},
		},
		{
			name: "empty input yields nothing",
			text: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSenses(tc.text))
		})
	}
}

func TestParseActions(t *testing.T) {
	block := "Multiattack. The creature makes two claw attacks.\n" +
		"\n" +
		"Claw. Melee Weapon Attack: +5 to hit, reach 5 ft., one target.\n" +
		"Hit: 7 (1d8 + 3) slashing damage."

	actions := ParseActions(block)
	require.Len(t, actions, 2)

	assert.Equal(t, "Multiattack", actions[0]["name"])
	assert.Equal(t, "Multiattack. The creature makes two claw attacks.", actions[0]["desc"])

	assert.Equal(t, "Claw", actions[1]["name"])
	desc, ok := actions[1]["desc"].(string)
	require.True(t, ok)
	assert.Contains(t, desc, "Hit: 7 (1d8 + 3) slashing damage.")
}

func TestParseActionsWithoutSentenceBreak(t *testing.T) {
	actions := ParseActions("Frightful Presence.")
	require.Len(t, actions, 1)
	assert.Equal(t, "Frightful Presence", actions[0]["name"])
}

func TestParseActionsEmptyInput(t *testing.T) {
	assert.Empty(t, ParseActions(""))
	assert.Empty(t, ParseActions("\n\n  \n"))
}

func TestParseNamedEntries(t *testing.T) {
	entries := parseNamedEntries("Rage: Enter a rage as a bonus action.\n\nReckless Attack: Attack with advantage.\nno colon line\n")
	require.Len(t, entries, 3)

	assert.Equal(t, "Rage", entries[0].Name)
	assert.Equal(t, "Enter a rage as a bonus action.", entries[0].Desc)
	assert.Equal(t, "Reckless Attack", entries[1].Name)
	assert.Equal(t, "no colon line", entries[2].Name)
	assert.Empty(t, entries[2].Desc)
}

func TestChallengeRatingTable(t *testing.T) {
	assert.Equal(t, 10, XPForChallengeRating(0))
	assert.Equal(t, 25, XPForChallengeRating(0.125))
	assert.Equal(t, 1800, XPForChallengeRating(5))
	assert.Equal(t, 25000, XPForChallengeRating(20))

	// Exact match only: no interpolation for off-table ratings
	assert.Equal(t, 0, XPForChallengeRating(0.1))
	assert.Equal(t, 0, XPForChallengeRating(21))
}

func TestProficiencyBonus(t *testing.T) {
	testCases := []struct {
		cr   float64
		want int
	}{
		{cr: 0, want: 1},
		{cr: 0.5, want: 1},
		{cr: 1, want: 2},
		{cr: 4, want: 2},
		{cr: 5, want: 3},
		{cr: 9, want: 4},
		{cr: 20, want: 6},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ProficiencyBonus(tc.cr), "cr %v", tc.cr)
	}
}
