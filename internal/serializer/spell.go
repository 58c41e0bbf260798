package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// serializeSpell builds a spell document. Fields: name, level, school,
// casting_time, range, duration, components, material, ritual, concentration,
// desc, higher_level, classes, subclasses, attack_type.
//
// Level is always present (0 means cantrip), as are the ritual and
// concentration flags; material and higher_level are omitted when empty.
func serializeSpell(f content.Fields) content.Document {
	doc := newDocument(content.TypeSpells, f.Str("name"))

	doc["level"] = f.Int("level")
	doc["ritual"] = f.Bool("ritual")
	doc["concentration"] = f.Bool("concentration")

	setRef(doc, "school", content.TypeMagicSchools, f.Str("school"))
	setStr(doc, "casting_time", f.Str("casting_time"))
	setStr(doc, "range", f.Str("range"))
	setStr(doc, "duration", f.Str("duration"))
	setStr(doc, "attack_type", f.Str("attack_type"))
	setStr(doc, "material", f.Str("material"))

	if comps := f.Strings("components"); len(comps) > 0 {
		doc["components"] = comps
	} else {
		setList(doc, "components", f.Str("components"))
	}

	setLines(doc, "desc", f.Str("desc"))
	setLines(doc, "higher_level", f.Str("higher_level"))

	setRefs(doc, "classes", content.TypeClasses, f.Str("classes"))
	setRefs(doc, "subclasses", content.TypeSubclasses, f.Str("subclasses"))

	return doc
}
