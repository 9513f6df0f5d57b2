package engine

import (
	"strconv"
	"strings"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/item"
)

func shopMenuEvent() Event {
	return menu(
		opt("shop:weapons", "Weapons"),
		opt("shop:armor", "Armor"),
		opt("shop:potions", "Potions"),
		opt("shop:spells", "Spells"),
		opt("shop:sell", "Sell gear"),
		opt("shop:back", "Back to town"),
	)
}

// chaTierMultiplier returns the haggle multiplier for a sell price: a
// generous Charisma gets a better cut, a poor one a worse one (spec §4.8
// "Shop").
func chaTierMultiplier(cha int) float64 {
	switch {
	case cha >= 15:
		return 1.2
	case cha <= 6:
		return 0.8
	default:
		return 1.0
	}
}

// sellPrice implements the haggle formula: base * 0.5 * CHA tier * a
// uniform(0.9, 1.1) jitter, floored at 1 (spec §4.8 "Shop").
func sellPrice(basePrice int, cha int, src dice.Source) int {
	jitter := 0.9 + float64(src.Intn(2001))/10000.0
	price := float64(basePrice) * 0.5 * chaTierMultiplier(cha) * jitter
	floored := int(price)
	if floored < 1 {
		floored = 1
	}
	return floored
}

func handleShopMenu(s *State, a Action) []Event {
	c := s.Character
	switch {
	case a.ID == "town:shop" || a.ID == "":
		return []Event{clear(), dialogue("The shopkeeper greets you."), shopMenuEvent()}
	case a.ID == "shop:back":
		return []Event{clear(), updateStats(s.statsSnapshot()), townMenuEvent(c)}
	case a.ID == "shop:weapons":
		return []Event{dialogue("Available weapons:"), buyMenu(s.Tables.Weapons.All(), "shop:buy:weapon", func(w content.Weapon) (string, int) { return w.Name, w.BasePrice })}
	case a.ID == "shop:armor":
		return []Event{dialogue("Available armor:"), buyMenu(s.Tables.Armors.All(), "shop:buy:armor", func(a content.Armor) (string, int) { return a.Name, a.BasePrice })}
	case a.ID == "shop:potions":
		return []Event{dialogue("Available potions:"), buyMenu(s.Tables.Potions.All(), "shop:buy:potion", func(p content.Potion) (string, int) { return p.Name, p.BasePrice })}
	case a.ID == "shop:spells":
		return []Event{dialogue("Available spells:"), buyMenu(s.Tables.Spells.All(), "shop:buy:spell", func(sp content.Spell) (string, int) { return sp.Name, sp.BasePrice })}
	case a.ID == "shop:sell":
		return sellMenu(c)
	case strings.HasPrefix(a.ID, "shop:buy:weapon:"):
		return buyWeapon(s, trimPrefix(a.ID, "shop:buy:weapon:"))
	case strings.HasPrefix(a.ID, "shop:buy:armor:"):
		return buyArmor(s, trimPrefix(a.ID, "shop:buy:armor:"))
	case strings.HasPrefix(a.ID, "shop:buy:potion:"):
		return buyPotion(s, trimPrefix(a.ID, "shop:buy:potion:"))
	case strings.HasPrefix(a.ID, "shop:buy:spell:"):
		return buySpell(s, trimPrefix(a.ID, "shop:buy:spell:"))
	case strings.HasPrefix(a.ID, "shop:sell:"):
		return sellItem(s, trimPrefix(a.ID, "shop:sell:"))
	default:
		return []Event{shopMenuEvent()}
	}
}

func buyMenu[T any](rows []T, prefix string, describe func(T) (string, int)) Event {
	options := make([]MenuOption, 0, len(rows)+1)
	for _, row := range rows {
		name, price := describe(row)
		options = append(options, opt(prefix+":"+name, name+" ("+itoa(price)+"g)"))
	}
	options = append(options, opt("shop:back", "Back"))
	return menu(options...)
}

func buyWeapon(s *State, name string) []Event {
	c := s.Character
	row, ok := s.Tables.Weapons.ByName(name)
	if !ok {
		return withResultPage(s, []Event{dialogue("That weapon is no longer available.")})
	}
	if c.Gold < row.BasePrice {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= row.BasePrice
	s.Stats.GoldSpent += row.BasePrice
	c.Weapons = append(c.Weapons, item.Weapon{Name: row.Name, DamageDie: row.DamageDie, BasePrice: row.BasePrice})
	return withResultPage(s, []Event{dialogue("You purchase a " + row.Name + ".")})
}

func buyArmor(s *State, name string) []Event {
	c := s.Character
	row, ok := s.Tables.Armors.ByName(name)
	if !ok {
		return withResultPage(s, []Event{dialogue("That armor is no longer available.")})
	}
	if c.Gold < row.BasePrice {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= row.BasePrice
	s.Stats.GoldSpent += row.BasePrice
	c.Armors = append(c.Armors, item.Armor{Name: row.Name, ArmorClass: row.ArmorClass, BasePrice: row.BasePrice})
	return withResultPage(s, []Event{dialogue("You purchase a suit of " + row.Name + ".")})
}

func buyPotion(s *State, name string) []Event {
	c := s.Character
	row, ok := s.Tables.Potions.ByName(name)
	if !ok {
		return withResultPage(s, []Event{dialogue("That potion is no longer available.")})
	}
	if c.Gold < row.BasePrice {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= row.BasePrice
	s.Stats.GoldSpent += row.BasePrice
	c.PotionUses[string(row.Kind)]++
	return withResultPage(s, []Event{dialogue("You purchase a " + row.Name + ".")})
}

func buySpell(s *State, name string) []Event {
	c := s.Character
	row, ok := s.Tables.Spells.ByName(name)
	if !ok {
		return withResultPage(s, []Event{dialogue("That spell is no longer available.")})
	}
	if c.Gold < row.BasePrice {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= row.BasePrice
	s.Stats.GoldSpent += row.BasePrice
	c.SpellUses[string(row.Kind)]++
	return withResultPage(s, []Event{dialogue("You learn " + row.Name + ".")})
}

func sellMenu(c *character.Character) []Event {
	var options []MenuOption
	for i, w := range c.Weapons {
		if w.Damaged || w.LabyrinthDrop || i == c.EquippedWeapon {
			continue
		}
		options = append(options, opt("shop:sell:weapon:"+itoa(i), w.Name))
	}
	for i, a := range c.Armors {
		if a.Damaged || a.LabyrinthDrop || i == c.EquippedArmor {
			continue
		}
		options = append(options, opt("shop:sell:armor:"+itoa(i), a.Name))
	}
	for i, r := range c.Rings {
		if r.Cursed {
			continue
		}
		options = append(options, opt("shop:sell:ring:"+itoa(i), r.Name))
	}
	options = append(options, opt("shop:back", "Back"))
	return []Event{dialogue("What would you like to sell?"), menu(options...)}
}

func sellItem(s *State, ref string) []Event {
	c := s.Character
	idx, kind, ok := parseGearRef(ref)
	if !ok {
		return sellMenu(c)
	}
	cha := c.Attribute(character.Charisma)
	switch kind {
	case "weapon":
		if idx < 0 || idx >= len(c.Weapons) || c.Weapons[idx].Damaged || c.Weapons[idx].LabyrinthDrop || idx == c.EquippedWeapon {
			return withResultPage(s, []Event{dialogue("That weapon cannot be sold.")})
		}
		price := sellPrice(c.Weapons[idx].BasePrice, cha, s.Dice)
		c.Gold += price
		s.Stats.GoldEarned += price
		c.Weapons = append(c.Weapons[:idx], c.Weapons[idx+1:]...)
		if c.EquippedWeapon > idx {
			c.EquippedWeapon--
		}
		return withResultPage(s, []Event{dialogue("You sell it for " + itoa(price) + " gold.")})
	case "armor":
		if idx < 0 || idx >= len(c.Armors) || c.Armors[idx].Damaged || c.Armors[idx].LabyrinthDrop || idx == c.EquippedArmor {
			return withResultPage(s, []Event{dialogue("That armor cannot be sold.")})
		}
		price := sellPrice(c.Armors[idx].BasePrice, cha, s.Dice)
		c.Gold += price
		s.Stats.GoldEarned += price
		c.Armors = append(c.Armors[:idx], c.Armors[idx+1:]...)
		if c.EquippedArmor > idx {
			c.EquippedArmor--
		}
		return withResultPage(s, []Event{dialogue("You sell it for " + itoa(price) + " gold.")})
	case "ring":
		if idx < 0 || idx >= len(c.Rings) || c.Rings[idx].Cursed {
			return withResultPage(s, []Event{dialogue("That ring cannot be sold.")})
		}
		// Rings have no base_price in the content model; sale value derives
		// from the bonus magnitude alone.
		price := sellPrice(10*absInt(c.Rings[idx].Bonus), cha, s.Dice)
		c.Gold += price
		s.Stats.GoldEarned += price
		c.Rings = append(c.Rings[:idx], c.Rings[idx+1:]...)
		return withResultPage(s, []Event{dialogue("You sell it for " + itoa(price) + " gold.")})
	default:
		return withResultPage(s, []Event{dialogue("That cannot be sold.")})
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// handleGamble implements the exact-die and d20-range wager modes: a flat
// entry fee, the house always rolls with a d20 regardless of mode (spec
// §4.8 "Gamble").
const gambleStake = 20

func handleGamble(s *State, a Action) []Event {
	c := s.Character
	switch {
	case a.ID == "town:gamble":
		return []Event{dialogue("The dealer shuffles a deck of d20 cards. Stake " + itoa(gambleStake) + "g."), menu(
			opt("town:gamble:exact", "Guess the exact roll (20x payout)"),
			opt("town:gamble:range", "Guess high (1-10) or low (11-20) (2x payout)"),
			opt("town:continue", "Back"),
		)}
	case a.ID == "town:gamble:exact":
		if c.Gold < gambleStake {
			return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
		}
		options := make([]MenuOption, 0, 20)
		for i := 1; i <= 20; i++ {
			options = append(options, opt("town:gamble:exact:"+itoa(i), itoa(i)))
		}
		return []Event{dialogue("Guess the die's exact value."), menu(options...)}
	case strings.HasPrefix(a.ID, "town:gamble:exact:"):
		guess, err := strconv.Atoi(trimPrefix(a.ID, "town:gamble:exact:"))
		if err != nil {
			return withResultPage(s, []Event{dialogue("Invalid wager.")})
		}
		c.Gold -= gambleStake
		s.Stats.GoldSpent += gambleStake
		roll := s.Dice.Intn(20) + 1
		if roll == guess {
			payout := gambleStake * 20
			c.Gold += payout
			s.Stats.GoldEarned += payout
			return withResultPage(s, []Event{dialogue("The die shows " + itoa(roll) + "! You win " + itoa(payout) + " gold!")})
		}
		return withResultPage(s, []Event{dialogue("The die shows " + itoa(roll) + ". You lose your stake.")})
	case a.ID == "town:gamble:range":
		if c.Gold < gambleStake {
			return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
		}
		return []Event{dialogue("High (11-20) or low (1-10)?"), menu(
			opt("town:gamble:range:high", "High"),
			opt("town:gamble:range:low", "Low"),
		)}
	case a.ID == "town:gamble:range:high" || a.ID == "town:gamble:range:low":
		c.Gold -= gambleStake
		s.Stats.GoldSpent += gambleStake
		roll := s.Dice.Intn(20) + 1
		wantHigh := a.ID == "town:gamble:range:high"
		isHigh := roll >= 11
		if wantHigh == isHigh {
			payout := gambleStake * 2
			c.Gold += payout
			s.Stats.GoldEarned += payout
			return withResultPage(s, []Event{dialogue("The die shows " + itoa(roll) + "! You win " + itoa(payout) + " gold!")})
		}
		return withResultPage(s, []Event{dialogue("The die shows " + itoa(roll) + ". You lose your stake.")})
	default:
		return []Event{townMenuEvent(c)}
	}
}
