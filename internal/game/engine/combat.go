package engine

import (
	"context"
	"strings"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/monster"
	"github.com/duskward/labyrinth/internal/game/quest"
)

// startCombat begins the encounter against s.Room.Monster: clears the
// per-combat buffs and examine flag, rolls initiative, and declares the
// monster's first defended zone (spec §4.4).
func startCombat(s *State, m *monster.Instance) []Event {
	c := s.Character
	c.ExamineUsed = false
	c.Buffs = character.Buffs{}
	s.Phase = PhaseCombat
	s.Combat = CombatState{
		PlayerTurnFirst: combat.RollInitiative(c, m, s.Dice),
		MonsterZone:     combat.DeclareMonsterZone(s.Dice),
	}

	events := []Event{
		dialogue("A " + m.Name + " blocks your path!"),
		updateStats(s.statsSnapshot()),
	}
	if !s.Combat.PlayerTurnFirst {
		events = append(events, combatUpdate(m.Name+" strikes first!"))
		events = append(events, resolveMonsterAttack(s, m)...)
		if !c.IsAlive() {
			return append(events, startRevivalRoll(s)...)
		}
	}
	return append(events, combatMenuEvent(s, m))
}

func combatMenuEvent(s *State, m *monster.Instance) Event {
	c := s.Character
	options := []MenuOption{
		opt("combat:aim:head", "Attack the head"),
		opt("combat:aim:body", "Attack the body"),
		opt("combat:aim:legs", "Attack the legs"),
	}
	if len(potionOptions(c, "")) > 0 {
		options = append(options, opt("combat:use_potion", "Use a potion"))
	}
	if len(spellOptions(c, "")) > 0 {
		options = append(options, opt("combat:cast_spell", "Cast a spell"))
	}
	if !c.Utility.DivineUsed {
		options = append(options, opt("combat:divine", "Call on divine aid"))
	}
	if !m.IsDragon {
		options = append(options, opt("combat:charm", "Attempt to charm"))
	}
	options = append(options, opt("combat:run", "Flee"))
	if !c.ExamineUsed {
		options = append(options, opt("combat:examine", "Examine foe"))
	}
	return menu(options...)
}

func spellOptions(c *character.Character, prefix string) []MenuOption {
	var options []MenuOption
	for name, n := range c.SpellUses {
		if n > 0 {
			options = append(options, opt(prefix+":"+name, name+" ("+itoa(n)+")"))
		}
	}
	return options
}

func handleCombat(ctx context.Context, s *State, a Action) []Event {
	if a.ID == "combat:continue" && s.Continuation != nil {
		cont := s.Continuation
		s.Continuation = nil
		return cont(s)
	}
	if s.Room == nil || s.Room.Monster == nil {
		s.Phase = PhaseTown
		return []Event{dialogue("The battle has already ended."), townMenuEvent(s.Character)}
	}
	m := s.Room.Monster

	switch {
	case strings.HasPrefix(a.ID, "combat:aim:"):
		return playerAttack(s, m, combat.Zone(trimPrefix(a.ID, "combat:aim:")))
	case a.ID == "combat:attack":
		return playerAttack(s, m, combat.ZoneBody)
	case a.ID == "combat:use_potion", strings.HasPrefix(a.ID, "combat:use_potion:"):
		return combatUsePotion(s, m, a)
	case a.ID == "combat:cast_spell", strings.HasPrefix(a.ID, "combat:cast_spell:"):
		return combatCastSpell(s, m, a)
	case a.ID == "combat:divine":
		return combatDivine(s, m)
	case a.ID == "combat:charm":
		return combatCharm(s, m)
	case a.ID == "combat:run":
		return combatFlee(s, m)
	case a.ID == "combat:examine":
		return combatExamine(s, m)
	case a.ID == "combat:after_examine":
		return []Event{combatMenuEvent(s, m)}
	default:
		return []Event{combatMenuEvent(s, m)}
	}
}

func playerAttack(s *State, m *monster.Instance, zone combat.Zone) []Event {
	c := s.Character
	result := combat.ResolvePlayerAttack(c, m, zone, s.Combat.MonsterZone, s.Dice)
	events := []Event{}

	switch result.Outcome {
	case combat.Fumble:
		c.HP -= result.SelfInjury
		if c.HP < 0 {
			c.HP = 0
		}
		events = append(events, combatUpdate("Your attack goes wildly astray! You injure yourself for "+itoa(result.SelfInjury)+"."))
	case combat.Miss:
		events = append(events, combatUpdate("Your attack misses."))
	case combat.Blocked:
		events = append(events, combatUpdate("The "+m.Name+" blocks your attack."))
		combat.MaybeDamageWeapon(c, s.Dice)
	case combat.Hit, combat.Crit:
		m.HP -= result.Damage
		if m.HP < 0 {
			m.HP = 0
		}
		label := "You hit"
		if result.Outcome == combat.Crit {
			label = "A critical strike"
		}
		events = append(events, combatUpdate(label+" the "+m.Name+" for "+itoa(result.Damage)+" damage."))
		combat.MaybeDamageWeapon(c, s.Dice)
	}

	if !c.IsAlive() {
		return append(events, startRevivalRoll(s)...)
	}
	if m.IsDead() {
		return append(events, resolveVictory(s, m)...)
	}
	return append(events, afterPlayerTurn(s, m)...)
}

// afterPlayerTurn runs the shared "end of player's turn" sequence: the
// poison DoT tick, then (unless frozen) the monster's counterattack, then a
// fresh zone declaration for the next round (spec §4.4).
func afterPlayerTurn(s *State, m *monster.Instance) []Event {
	c := s.Character
	var events []Event

	if dmg := combat.ApplyPoisonTick(c, s.Dice); dmg > 0 {
		events = append(events, combatUpdate("The poison in your veins deals "+itoa(dmg)+" damage."))
		if !c.IsAlive() {
			return append(events, startRevivalRoll(s)...)
		}
	}

	if combat.TickFreeze(m) {
		events = append(events, combatUpdate("The "+m.Name+" is frozen solid and cannot act."))
	} else {
		events = append(events, resolveMonsterAttack(s, m)...)
		if !c.IsAlive() {
			return append(events, startRevivalRoll(s)...)
		}
	}

	s.Combat.MonsterZone = combat.DeclareMonsterZone(s.Dice)
	return append(events, updateStats(s.statsSnapshot()), combatMenuEvent(s, m))
}

func resolveMonsterAttack(s *State, m *monster.Instance) []Event {
	c := s.Character
	result := combat.ResolveMonsterAttack(c, m, s.Dice)
	switch result.Outcome {
	case combat.Fumble:
		return []Event{combatUpdate(m.Name + " fumbles and stumbles, hurting itself.")}
	case combat.Miss:
		return []Event{combatUpdate(m.Name + " misses you.")}
	case combat.Hit, combat.Crit:
		c.HP -= result.Damage
		if c.HP < 0 {
			c.HP = 0
		}
		combat.MaybeDamageArmor(c, s.Dice)
		label := "hits"
		if result.Outcome == combat.Crit {
			label = "critically strikes"
		}
		return []Event{combatUpdate(m.Name + " " + label + " you for " + itoa(result.Damage) + " damage.")}
	default:
		return nil
	}
}

func combatUsePotion(s *State, m *monster.Instance, a Action) []Event {
	c := s.Character
	name := trimPrefix(a.ID, "combat:use_potion:")
	if a.ID == "combat:use_potion" {
		options := potionOptions(c, "combat:use_potion")
		if len(options) == 0 {
			return []Event{dialogue(s.Tables.Dialogues.Get("combat", "no_potions", 0, nil)), combatMenuEvent(s, m)}
		}
		return []Event{dialogue("Use which potion?"), menu(options...)}
	}
	row, ok := s.Tables.Potions.ByName(name)
	if !ok || c.PotionUses[name] <= 0 {
		return []Event{dialogue("You have none of that potion."), combatMenuEvent(s, m)}
	}
	c.PotionUses[name]--
	s.Stats.PotionsUsed++
	result := combat.UsePotion(c, row.Kind, s.Dice)
	events := []Event{combatUpdate("You drink the " + row.Name + ".")}
	if result.Healed > 0 {
		events = append(events, combatUpdate("You recover "+itoa(result.Healed)+" hit points."))
	}
	if !result.ConsumesTurn {
		return append(events, updateStats(s.statsSnapshot()), combatMenuEvent(s, m))
	}
	return append(events, afterPlayerTurn(s, m)...)
}

func combatCastSpell(s *State, m *monster.Instance, a Action) []Event {
	c := s.Character
	rest := trimPrefix(a.ID, "combat:cast_spell:")
	if a.ID == "combat:cast_spell" {
		options := spellOptions(c, "combat:cast_spell")
		if len(options) == 0 {
			return []Event{dialogue("You know no spells."), combatMenuEvent(s, m)}
		}
		return []Event{dialogue("Cast which spell?"), menu(options...)}
	}

	parts := strings.SplitN(rest, ":", 2)
	name := parts[0]
	row, ok := s.Tables.Spells.ByName(name)
	if !ok || c.SpellUses[name] <= 0 {
		return []Event{dialogue("You have no charges left for that spell."), combatMenuEvent(s, m)}
	}
	if row.Kind == content.SpellLightningBolt && len(parts) < 2 {
		return []Event{dialogue("Full force, or held back?"), menu(
			opt("combat:cast_spell:"+name+":full", "Full force (6d6)"),
			opt("combat:cast_spell:"+name+":half", "Held back (3d6)"),
		)}
	}
	lightningFull := len(parts) > 1 && parts[1] == "full"

	c.SpellUses[name]--
	s.Stats.SpellsUsed++
	result := combat.CastSpell(c, m, row.Kind, lightningFull, s.Dice)
	events := []Event{combatUpdate("You cast " + row.Name + ".")}

	if result.ExitsCombat {
		events = append(events, combatUpdate("The world folds away; you are pulled from combat."))
		return append(events, endEncounterWithoutReward(s, "town")...)
	}
	if result.CompanionTier > 0 {
		summonCompanion(c, result.CompanionTier)
		events = append(events, combatUpdate(c.Companion.Name+" answers your summons!"))
		return append(events, updateStats(s.statsSnapshot()), combatMenuEvent(s, m))
	}
	if result.Damage > 0 {
		m.HP -= result.Damage
		if m.HP < 0 {
			m.HP = 0
		}
		events = append(events, combatUpdate("The "+row.Name+" deals "+itoa(result.Damage)+" damage."))
	}

	if m.IsDead() {
		return append(events, resolveVictory(s, m)...)
	}
	return append(events, afterPlayerTurn(s, m)...)
}

func summonCompanion(c *character.Character, tier int) {
	c.Companion = &character.Companion{
		Name:      "Summoned Ally",
		Tier:      tier,
		MaxHP:     tier * 5,
		HP:        tier * 5,
		Strength:  tier,
		AC:        10 + tier,
		DamageDie: "1d4",
	}
}

func combatDivine(s *State, m *monster.Instance) []Event {
	c := s.Character
	if c.Utility.DivineUsed {
		return []Event{combatMenuEvent(s, m)}
	}
	c.Utility.DivineUsed = true
	result := combat.DivineAid(c, s.Dice)
	if !result.Succeeded {
		return append([]Event{combatUpdate("Your plea goes unanswered.")}, afterPlayerTurn(s, m)...)
	}
	m.HP -= result.Damage
	if m.HP < 0 {
		m.HP = 0
	}
	events := []Event{combatUpdate("A shaft of light sears the " + m.Name + " for " + itoa(result.Damage) + " damage.")}
	if m.IsDead() {
		return append(events, resolveVictory(s, m)...)
	}
	return append(events, afterPlayerTurn(s, m)...)
}

func combatCharm(s *State, m *monster.Instance) []Event {
	c := s.Character
	if combat.Charm(c, m, s.Dice) {
		xp := combat.VictoryXP(m, s.Depth) / 4
		gold := combat.VictoryGold(m, s.Depth, s.Dice) / 4
		c.GainXP(xp)
		c.Gold += gold
		s.Stats.GoldEarned += gold
		events := []Event{
			dialogue(s.Tables.Dialogues.Get("combat", "charm_success", 0, nil)),
			combatUpdate("You gain " + itoa(xp) + " XP and " + itoa(gold) + " gold."),
		}
		return append(events, endEncounterWithoutReward(s, "labyrinth")...)
	}
	return append([]Event{dialogue(s.Tables.Dialogues.Get("combat", "charm_fail", 0, nil))}, afterPlayerTurn(s, m)...)
}

func combatFlee(s *State, m *monster.Instance) []Event {
	c := s.Character
	if combat.Flee(c, m, s.Dice) {
		events := []Event{dialogue(s.Tables.Dialogues.Get("combat", "flee_success", 0, nil))}
		return append(events, endEncounterWithoutReward(s, "labyrinth")...)
	}
	return append([]Event{dialogue(s.Tables.Dialogues.Get("combat", "flee_fail", 0, nil))}, afterPlayerTurn(s, m)...)
}

func combatExamine(s *State, m *monster.Instance) []Event {
	c := s.Character
	if c.ExamineUsed {
		return []Event{combatMenuEvent(s, m)}
	}
	c.ExamineUsed = true
	result := combat.Examine(c, m, s.Dice)
	if !result.Succeeded {
		return []Event{dialogue(s.Tables.Dialogues.Get("combat", "examine_fail", 0, nil)), combatMenuEvent(s, m)}
	}
	text := s.Tables.Dialogues.Get("combat", "examine_result", 0, map[string]string{
		"hp": itoa(result.HP), "ac": itoa(result.AC),
	})
	return []Event{dialogue(text), combatMenuEvent(s, m)}
}

// endEncounterWithoutReward clears the room and returns to the named phase
// (labyrinth for flee/charm, town for teleport/portal), with no XP, gold,
// drops, or quest credit beyond whatever the caller already applied (spec
// §4.4: charm/flee/portal exits).
func endEncounterWithoutReward(s *State, dest string) []Event {
	s.Room = nil
	if dest == "town" {
		s.Phase = PhaseTown
		s.Character.Utility.ResetTownVisit()
		return []Event{clear(), sceneReset(), updateStats(s.statsSnapshot()), townMenuEvent(s.Character)}
	}
	s.Phase = PhaseLabyrinth
	return []Event{clear(), sceneReset(), updateStats(s.statsSnapshot()), labyrinthMenuEvent(s.Character)}
}

// resolveVictory awards XP, gold, drops, and quest credit for a kill, then
// routes to the Dragon end-screen or back to the labyrinth with the reward
// shown (spec §4.4 "Victory branch", §4.8).
func resolveVictory(s *State, m *monster.Instance) []Event {
	c := s.Character
	s.EncounterCount++
	s.Stats.MonstersDefeated++

	xp := combat.VictoryXP(m, s.Depth)
	gold := combat.VictoryGold(m, s.Depth, s.Dice)
	levelBefore := c.Level
	c.GainXP(xp)
	c.Gold += gold
	s.Stats.GoldEarned += gold
	leveled := c.Level > levelBefore

	remaining, questGold := quest.CreditKill(c.Quests, m.Name)
	if questGold > 0 {
		c.Gold += questGold
		s.Stats.GoldEarned += questGold
		s.Stats.QuestsCompleted += len(c.Quests) - len(remaining)
	}
	c.Quests = remaining

	events := []Event{
		combatUpdate("The " + m.Name + " falls."),
		combatUpdate("You gain " + itoa(xp) + " XP and " + itoa(gold) + " gold."),
	}
	if questGold > 0 {
		events = append(events, combatUpdate("A quest is fulfilled! You receive " + itoa(questGold) + " bonus gold."))
	}
	if leveled {
		events = append(events, combatUpdate("You feel stronger. You have reached level " + itoa(c.Level) + "!"))
	}

	drops := combat.RollDrops(m, s.Tables, s.Dice)
	if drops.Potion {
		if p, ok := randomPotion(s); ok {
			c.PotionUses[string(p.Kind)]++
			events = append(events, combatUpdate("You find a "+p.Name+"."))
		}
	}
	if drops.Scroll {
		if sp, ok := randomSpell(s); ok {
			c.SpellUses[string(sp.Kind)]++
			events = append(events, combatUpdate("You find a scroll of "+sp.Name+"."))
		}
	}
	switch drops.MagicGear {
	case combat.DropRing:
		bindRing(c, rollRingInstance(drops.Ring, s.Dice))
		events = append(events, combatUpdate("The beast carried a ring: "+drops.Ring.Name+"."))
	case combat.DropArmor:
		c.Armors = append(c.Armors, characterArmorFromRow(drops.Armor))
		events = append(events, combatUpdate("You salvage "+drops.Armor.Name+"."))
	case combat.DropWeapon:
		c.Weapons = append(c.Weapons, characterWeaponFromRow(drops.Weapon))
		events = append(events, combatUpdate("You salvage "+drops.Weapon.Name+"."))
	}

	if m.IsDragon {
		return append(events, beginVictorySequence(s)...)
	}
	s.Room.Monster = nil
	s.Phase = PhaseLabyrinth
	return append(events, updateStats(s.statsSnapshot()), labyrinthMenuEvent(c))
}

func randomPotion(s *State) (content.Potion, bool) {
	all := s.Tables.Potions.All()
	if len(all) == 0 {
		return content.Potion{}, false
	}
	return all[s.Dice.Intn(len(all))], true
}

func randomSpell(s *State) (content.Spell, bool) {
	all := s.Tables.Spells.All()
	if len(all) == 0 {
		return content.Spell{}, false
	}
	return all[s.Dice.Intn(len(all))], true
}
