package serializer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/critfumble/content-api/internal/entities/content"
)

// The parsers in this file are best-effort transforms over free-form text.
// Segments that do not match are dropped rather than reported; callers get a
// partial result, never an error.

var (
	diceCountRe = regexp.MustCompile(`^(\d+)\s*[dD]\d+`)
	speedRe     = regexp.MustCompile(`^(?:([A-Za-z]+)\s+)?(\d+)\s*ft\.?$`)
	senseRe     = regexp.MustCompile(`^(.+?)\s+(\d+)\s*ft\.?$`)
	passiveRe   = regexp.MustCompile(`^passive\s+[Pp]erception\s+(\d+)$`)
)

// diceCount extracts the dice-count portion of a roll string ("3d8" -> 3)
func diceCount(dice string) (int, bool) {
	m := diceCountRe.FindStringSubmatch(strings.TrimSpace(dice))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// HitPointsRoll appends the Constitution contribution to a hit-dice string:
// "3d8" with CON 14 becomes "3d8+6". A CON of 10 or less leaves the string
// unchanged, as does a dice string whose count portion does not parse; the
// transform is best-effort over free-form input.
func HitPointsRoll(hitDice string, constitution int) string {
	if constitution <= 10 {
		return hitDice
	}
	n, ok := diceCount(hitDice)
	if !ok {
		return hitDice
	}
	mod := (constitution - 10) / 2
	return fmt.Sprintf("%s+%d", hitDice, mod*n)
}

// ParseSpeed converts movement text like "30 ft., fly 60 ft." into a map of
// movement type to a formatted distance. A segment with no leading movement
// word is walking speed.
func ParseSpeed(text string) content.Document {
	speeds := content.Document{}
	for _, segment := range splitList(text) {
		m := speedRe.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		mode := strings.ToLower(m[1])
		if mode == "" {
			mode = "walk"
		}
		speeds[mode] = m[2] + " ft."
	}
	if len(speeds) == 0 {
		return nil
	}
	return speeds
}

// ParseSenses converts senses text like "darkvision 60 ft., passive
// Perception 13" into a map of sense name (spaces become underscores) to a
// formatted distance. The passive Perception segment becomes the numeric
// passive_perception field.
func ParseSenses(text string) content.Document {
	senses := content.Document{}
	for _, segment := range splitList(text) {
		if m := passiveRe.FindStringSubmatch(segment); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				senses["passive_perception"] = n
			}
			continue
		}
		m := senseRe.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		name := strings.Join(strings.Fields(strings.ToLower(m[1])), "_")
		senses[name] = m[2] + " ft."
	}
	if len(senses) == 0 {
		return nil
	}
	return senses
}

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// ParseActions splits an action block into paragraphs separated by blank
// lines. Each paragraph's text up to the first ". " is its name, the whole
// paragraph its description. A multi-sentence name before the first period is
// a known limitation of the heuristic.
func ParseActions(block string) []content.Document {
	var actions []content.Document
	for _, para := range blankLineRe.Split(block, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		name := para
		if idx := strings.Index(para, ". "); idx >= 0 {
			name = para[:idx]
		} else {
			name = strings.TrimSuffix(name, ".")
		}
		actions = append(actions, content.Document{
			"name": name,
			"desc": para,
		})
	}
	return actions
}

// namedEntry is one "Name: Description" line of a feature list
type namedEntry struct {
	Name string
	Desc string
}

// parseNamedEntries splits newline-delimited "Name: Description" text. A line
// without a colon becomes an entry with an empty description.
func parseNamedEntries(text string) []namedEntry {
	var entries []namedEntry
	for _, line := range splitLines(text) {
		name, desc, _ := strings.Cut(line, ":")
		entries = append(entries, namedEntry{
			Name: strings.TrimSpace(name),
			Desc: strings.TrimSpace(desc),
		})
	}
	return entries
}
