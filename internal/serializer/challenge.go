package serializer

import "math"

// challengeXP maps challenge rating to the XP reward for defeating the
// monster. Lookup is exact match only; a rating outside the table is worth 0.
var challengeXP = map[float64]int{
	0:     10,
	0.125: 25,
	0.25:  50,
	0.5:   100,
	1:     200,
	2:     450,
	3:     700,
	4:     1100,
	5:     1800,
	6:     2300,
	7:     2900,
	8:     3900,
	9:     5000,
	10:    5900,
	11:    7200,
	12:    8400,
	13:    10000,
	14:    11500,
	15:    13000,
	16:    15000,
	17:    18000,
	18:    20000,
	19:    22000,
	20:    25000,
}

// XPForChallengeRating returns the XP reward for a challenge rating, or 0 for
// a rating not in the table
func XPForChallengeRating(cr float64) int {
	return challengeXP[cr]
}

// ProficiencyBonus derives a monster's proficiency bonus from its challenge
// rating: floor((cr-1)/4) + 2
func ProficiencyBonus(cr float64) int {
	return int(math.Floor((cr-1)/4)) + 2
}
