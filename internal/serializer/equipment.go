package serializer

import (
	"github.com/critfumble/content-api/internal/entities/content"
)

// serializeEquipment builds an equipment record. Fields: name,
// equipment_category, weapon_category, weapon_range, cost_quantity, cost_unit,
// damage_dice, damage_type, range_normal, range_long, properties,
// armor_category, armor_class_base, armor_dex_bonus, str_minimum,
// stealth_disadvantage, weight, desc.
func serializeEquipment(f content.Fields) content.Document {
	doc := newDocument(content.TypeEquipment, f.Str("name"))

	setRef(doc, "equipment_category", content.TypeEquipmentCategories, f.Str("equipment_category"))

	weaponCategory := f.Str("weapon_category")
	weaponRange := f.Str("weapon_range")
	setStr(doc, "weapon_category", weaponCategory)
	setStr(doc, "weapon_range", weaponRange)
	if weaponCategory != "" && weaponRange != "" {
		doc["category_range"] = weaponCategory + " " + weaponRange
	}

	if quantity := f.Int("cost_quantity"); quantity > 0 {
		doc["cost"] = content.Document{
			"quantity": quantity,
			"unit":     f.Str("cost_unit"),
		}
	}

	if dice := f.Str("damage_dice"); dice != "" {
		damage := content.Document{"damage_dice": dice}
		if damageType := f.Str("damage_type"); damageType != "" {
			damage["damage_type"] = Ref(content.TypeDamageTypes, damageType)
		}
		doc["damage"] = damage
	}

	if normal := f.Int("range_normal"); normal > 0 {
		weaponReach := content.Document{"normal": normal}
		if long := f.Int("range_long"); long > 0 {
			weaponReach["long"] = long
		}
		doc["range"] = weaponReach
	}

	setRefs(doc, "properties", content.TypeWeaponProperties, f.Str("properties"))

	setStr(doc, "armor_category", f.Str("armor_category"))
	if base := f.Int("armor_class_base"); base > 0 {
		doc["armor_class"] = content.Document{
			"base":      base,
			"dex_bonus": f.Bool("armor_dex_bonus"),
		}
	}
	setInt(doc, "str_minimum", f.Int("str_minimum"))
	if f.Bool("stealth_disadvantage") {
		doc["stealth_disadvantage"] = true
	}

	setFloat(doc, "weight", f.Float("weight"))
	setLines(doc, "desc", f.Str("desc"))

	return doc
}

// serializeMagicItem builds a magic-item record. Fields: name,
// equipment_category, rarity, variant, variants, desc. The variant flag is
// always present; variants reference other magic items.
func serializeMagicItem(f content.Fields) content.Document {
	doc := newDocument(content.TypeMagicItems, f.Str("name"))

	setRef(doc, "equipment_category", content.TypeEquipmentCategories, f.Str("equipment_category"))
	if rarity := f.Str("rarity"); rarity != "" {
		doc["rarity"] = content.Document{"name": rarity}
	}
	doc["variant"] = f.Bool("variant")
	setRefs(doc, "variants", content.TypeMagicItems, f.Str("variants"))
	setLines(doc, "desc", f.Str("desc"))

	return doc
}

// serializeEquipmentCategory builds an equipment-category record listing its
// member equipment by reference. Fields: name, equipment.
func serializeEquipmentCategory(f content.Fields) content.Document {
	doc := newDocument(content.TypeEquipmentCategories, f.Str("name"))
	setRefs(doc, "equipment", content.TypeEquipment, f.Str("equipment"))
	return doc
}
