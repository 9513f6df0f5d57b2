package character

import "github.com/duskward/labyrinth/internal/game/item"

// Record is the on-the-wire/on-disk save format: a map keyed by field name
// (spec §5). The engine writes a Character only through Serialize and reads
// one only through Deserialize, so storage backends never touch Character
// fields directly.
type Record map[string]any

// Serialize converts c into a Record suitable for a SaveStore.
func (c *Character) Serialize() Record {
	weapons := make([]Record, len(c.Weapons))
	for i, w := range c.Weapons {
		weapons[i] = Record{
			"name":           w.Name,
			"damage_die":     w.DamageDie,
			"base_price":     w.BasePrice,
			"damaged":        w.Damaged,
			"labyrinth_drop": w.LabyrinthDrop,
		}
	}
	armors := make([]Record, len(c.Armors))
	for i, a := range c.Armors {
		armors[i] = Record{
			"name":           a.Name,
			"armor_class":    a.ArmorClass,
			"base_price":     a.BasePrice,
			"damaged":        a.Damaged,
			"labyrinth_drop": a.LabyrinthDrop,
		}
	}
	rings := make([]Record, len(c.Rings))
	for i, r := range c.Rings {
		rings[i] = Record{
			"name":      r.Name,
			"attribute": r.Attribute,
			"bonus":     r.Bonus,
			"cursed":    r.Cursed,
		}
	}
	quests := make([]Record, len(c.Quests))
	for i, q := range c.Quests {
		quests[i] = Record{
			"target_monster": q.TargetMonster,
			"kind":           q.Kind,
			"goal":           q.Goal,
			"progress":       q.Progress,
			"reward_gold":    q.RewardGold,
		}
	}
	attrs := make(Record, len(c.Attributes))
	for a, v := range c.Attributes {
		attrs[string(a)] = v
	}
	training := make(Record, len(c.AttributeTraining))
	for a, v := range c.AttributeTraining {
		training[string(a)] = v
	}
	potionUses := make(Record, len(c.PotionUses))
	for k, v := range c.PotionUses {
		potionUses[k] = v
	}
	spellUses := make(Record, len(c.SpellUses))
	for k, v := range c.SpellUses {
		spellUses[k] = v
	}

	rec := Record{
		"name":                c.Name,
		"difficulty":          string(c.Difficulty),
		"device_id":           c.DeviceID,
		"attributes":          attrs,
		"hp":                  c.HP,
		"max_hp":              c.MaxHP,
		"gold":                c.Gold,
		"rings":               rings,
		"weapons":             weapons,
		"armors":              armors,
		"equipped_weapon":     c.EquippedWeapon,
		"equipped_armor":      c.EquippedArmor,
		"healing_potions":     c.HealingPotions,
		"potion_uses":         potionUses,
		"spell_uses":          spellUses,
		"level":               c.Level,
		"xp":                  c.XP,
		"unspent_stat_points": c.UnspentStatPoints,
		"attribute_training":  training,
		"death_count":         c.DeathCount,
		"quests":              quests,
	}
	if c.Companion != nil {
		rec["companion"] = Record{
			"name":       c.Companion.Name,
			"tier":       c.Companion.Tier,
			"max_hp":     c.Companion.MaxHP,
			"hp":         c.Companion.HP,
			"strength":   c.Companion.Strength,
			"ac":         c.Companion.AC,
			"damage_die": c.Companion.DamageDie,
		}
	}
	return rec
}

// asRecord coerces v into a Record whether it arrived in-process (already a
// Record) or round-tripped through encoding/json, which decodes a nested
// object inside a map[string]any as plain map[string]any, never as the
// named Record type.
func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}

// asRecordSlice is asRecord's counterpart for a nested array: encoding/json
// decodes it as []any, never as []Record.
func asRecordSlice(v any) ([]Record, bool) {
	switch s := v.(type) {
	case []Record:
		return s, true
	case []any:
		out := make([]Record, 0, len(s))
		for _, elem := range s {
			if r, ok := asRecord(elem); ok {
				out = append(out, r)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Deserialize rebuilds a Character from a Record. Unknown keys are ignored;
// missing keys default to the zero values New would have produced for a
// fresh character (spec §5 forward compatibility).
func Deserialize(rec Record) *Character {
	c := New(stringField(rec, "name"), Difficulty(stringField(rec, "difficulty")), stringField(rec, "device_id"))

	if attrs, ok := asRecord(rec["attributes"]); ok {
		for k, v := range attrs {
			if n, ok := toInt(v); ok {
				c.Attributes[Attribute(k)] = n
			}
		}
	}
	c.HP = intField(rec, "hp")
	c.MaxHP = intField(rec, "max_hp")
	c.Gold = intField(rec, "gold")
	c.EquippedWeapon = intFieldDefault(rec, "equipped_weapon", -1)
	c.EquippedArmor = intFieldDefault(rec, "equipped_armor", -1)
	c.HealingPotions = intField(rec, "healing_potions")
	c.Level = intFieldDefault(rec, "level", 1)
	c.XP = intField(rec, "xp")
	c.UnspentStatPoints = intField(rec, "unspent_stat_points")
	c.DeathCount = intField(rec, "death_count")

	if weapons, ok := asRecordSlice(rec["weapons"]); ok {
		for _, w := range weapons {
			c.Weapons = append(c.Weapons, item.Weapon{
				Name:          stringField(w, "name"),
				DamageDie:     stringField(w, "damage_die"),
				BasePrice:     intField(w, "base_price"),
				Damaged:       boolField(w, "damaged"),
				LabyrinthDrop: boolField(w, "labyrinth_drop"),
			})
		}
	}
	if armors, ok := asRecordSlice(rec["armors"]); ok {
		for _, a := range armors {
			c.Armors = append(c.Armors, item.Armor{
				Name:          stringField(a, "name"),
				ArmorClass:    intField(a, "armor_class"),
				BasePrice:     intField(a, "base_price"),
				Damaged:       boolField(a, "damaged"),
				LabyrinthDrop: boolField(a, "labyrinth_drop"),
			})
		}
	}
	if rings, ok := asRecordSlice(rec["rings"]); ok {
		for _, r := range rings {
			c.Rings = append(c.Rings, item.Ring{
				Name:      stringField(r, "name"),
				Attribute: stringField(r, "attribute"),
				Bonus:     intField(r, "bonus"),
				Cursed:    boolField(r, "cursed"),
			})
		}
	}
	if quests, ok := asRecordSlice(rec["quests"]); ok {
		for _, q := range quests {
			c.Quests = append(c.Quests, Quest{
				TargetMonster: stringField(q, "target_monster"),
				Kind:          stringField(q, "kind"),
				Goal:          intField(q, "goal"),
				Progress:      intField(q, "progress"),
				RewardGold:    intField(q, "reward_gold"),
			})
		}
	}
	if training, ok := asRecord(rec["attribute_training"]); ok {
		for k, v := range training {
			if n, ok := toInt(v); ok {
				c.AttributeTraining[Attribute(k)] = n
			}
		}
	}
	if uses, ok := asRecord(rec["potion_uses"]); ok {
		for k, v := range uses {
			if n, ok := toInt(v); ok {
				c.PotionUses[k] = n
			}
		}
	}
	if uses, ok := asRecord(rec["spell_uses"]); ok {
		for k, v := range uses {
			if n, ok := toInt(v); ok {
				c.SpellUses[k] = n
			}
		}
	}
	if comp, ok := asRecord(rec["companion"]); ok {
		c.Companion = &Companion{
			Name:      stringField(comp, "name"),
			Tier:      intField(comp, "tier"),
			MaxHP:     intField(comp, "max_hp"),
			HP:        intField(comp, "hp"),
			Strength:  intField(comp, "strength"),
			AC:        intField(comp, "ac"),
			DamageDie: stringField(comp, "damage_die"),
		}
	}
	return c
}

func stringField(rec Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

func boolField(rec Record, key string) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return false
}

func intField(rec Record, key string) int {
	return intFieldDefault(rec, key, 0)
}

func intFieldDefault(rec Record, key string, def int) int {
	if v, ok := rec[key]; ok {
		if n, ok := toInt(v); ok {
			return n
		}
	}
	return def
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
