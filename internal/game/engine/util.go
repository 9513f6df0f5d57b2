package engine

import (
	"strconv"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/item"
)

func itoa(n int) string { return strconv.Itoa(n) }

// characterWeaponFromRow turns an immutable drop-table row into a
// character-owned weapon instance, undamaged (spec §4.4 victory drops).
func characterWeaponFromRow(row content.Weapon) item.Weapon {
	return item.Weapon{Name: row.Name, DamageDie: row.DamageDie, BasePrice: row.BasePrice, LabyrinthDrop: row.LabyrinthDrop}
}

// characterArmorFromRow turns an immutable drop-table row into a
// character-owned armor instance, undamaged (spec §4.4 victory drops).
func characterArmorFromRow(row content.Armor) item.Armor {
	return item.Armor{Name: row.Name, ArmorClass: row.ArmorClass, BasePrice: row.BasePrice, LabyrinthDrop: row.LabyrinthDrop}
}

// rollRingInstance rolls a magic ring's effect magnitude at the moment of
// acquisition, turning an immutable content-table row into a bound,
// character-owned instance (spec §3).
func rollRingInstance(r content.Ring, src dice.Source) item.Ring {
	bonus := dice.Sum(r.BonusDie, src)
	if r.Penalty {
		bonus = -bonus
	}
	return item.Ring{Name: r.Name, Attribute: r.Attribute, Bonus: bonus, Cursed: r.Cursed}
}

// bindRing appends a ring to the character and immediately applies its bound
// attribute effect, adjusting max_hp too when the affected attribute is
// Constitution (spec §3 "Magic Ring": "bind immediately, apply effect").
func bindRing(c *character.Character, r item.Ring) {
	c.Rings = append(c.Rings, r)
	attr := character.Attribute(r.Attribute)
	c.Attributes[attr] += r.Bonus
	c.ClampAttributeFloor(attr)
	if attr == character.Constitution {
		delta := 5 * r.Bonus
		c.MaxHP += delta
		c.HP += delta
		if c.MaxHP < 1 {
			c.MaxHP = 1
		}
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
		if c.HP < 1 {
			c.HP = 1
		}
	}
}
