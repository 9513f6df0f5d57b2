package engine

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/quest"
)

const (
	healerCost      = 40
	eatCost         = 10
	tavernCost      = 10
	prayCost        = 0
	sleepCost       = 0
	restCost        = 10
	removeCurseCost = 10
	trainBaseCost   = 50
	trainCap        = 7
)

func townMenuEvent(c *character.Character) Event {
	options := []MenuOption{
		opt("town:enter", "Descend into the labyrinth"),
		opt("town:shop", "Visit the shop"),
		opt("town:healer", "See the healer (40g)"),
		opt("town:tavern", "Drink at the tavern (10g)"),
		opt("town:eat", "Eat a meal (10g)"),
		opt("town:pray", "Pray at the shrine"),
		opt("town:sleep", "Sleep at the inn"),
		opt("town:rest", "Rest (10g)"),
		opt("town:train", "Train an attribute"),
	}
	if c.UnspentStatPoints > 0 {
		options = append(options, opt("town:level", "Spend stat points"))
	}
	options = append(options,
		opt("town:quests", "View quests"),
	)
	if c.Companion != nil {
		options = append(options, opt("town:companion", "Tend to your companion"))
	}
	options = append(options,
		opt("town:repair", "Weaponsmith repair (30g each)"),
		opt("town:remove_curses", "Remove curses (10g each)"),
		opt("town:gamble", "Gamble"),
		opt("town:save", "Save your progress"),
		opt("town:quit", "Abandon this character"),
	)
	return menu(options...)
}

func withResultPage(s *State, events []Event) []Event {
	s.Continuation = func(*State) []Event {
		return []Event{clear(), updateStats(s.statsSnapshot()), townMenuEvent(s.Character)}
	}
	return append(events, prompt("town:continue", "Continue"))
}

func handleTown(ctx context.Context, s *State, a Action) []Event {
	c := s.Character

	if a.ID == "town:continue" && s.Continuation != nil {
		cont := s.Continuation
		s.Continuation = nil
		return cont(s)
	}

	switch a.ID {
	case "town:enter":
		s.Depth = 0
		s.Room = nil
		s.Phase = PhaseLabyrinth
		return []Event{clear(), dialogue("You descend the worn stone steps into the dark."), labyrinthMenuEvent(c)}

	case "town:save":
		if err := s.Stores.Save.Save(ctx, s.DeviceID, c.Serialize()); err != nil {
			s.Logger.Error("saving character", zap.Error(err))
			return withResultPage(s, []Event{dialogue("Your progress could not be saved.")})
		}
		return withResultPage(s, []Event{dialogue("Your progress has been saved.")})

	case "town:quit":
		if err := s.Stores.Save.Delete(ctx, s.DeviceID); err != nil {
			s.Logger.Error("deleting character on abandon", zap.Error(err))
		}
		s.Phase = PhaseMainMenu
		s.Character = nil
		return []Event{clear(), dialogue("You abandon your character and walk away from the labyrinth for good."), mainMenuEvent()}

	case "town:healer":
		return handleHealer(s)
	case "town:tavern":
		return handleOnceService(s, &c.Utility.TavernThisVisit, "Tavern", tavernCost, character.Charisma)
	case "town:eat":
		return handleOnceService(s, &c.Utility.AteThisVisit, "Eat", eatCost, character.Charisma)
	case "town:pray":
		return handleOnceService(s, &c.Utility.PrayedThisVisit, "Pray", prayCost, character.Wisdom)
	case "town:sleep":
		return handleOnceService(s, &c.Utility.SleptThisVisit, "Sleep", sleepCost, character.Constitution)
	case "town:rest":
		return handleOnceService(s, &c.Utility.SleptThisVisit, "Rest", restCost, character.Constitution)
	case "town:train":
		return handleTrainMenu(s, a)
	case "town:level":
		return handleLevelMenu(s, a)
	case "town:quests":
		return handleQuestsMenu(s, a)
	case "town:companion":
		return handleCompanion(s)
	case "town:repair":
		return handleRepairMenu(s, a)
	case "town:remove_curses":
		return handleRemoveCurses(s)
	case "town:gamble":
		return handleGamble(s, a)
	default:
		if strings.HasPrefix(a.ID, "town:shop") || strings.HasPrefix(a.ID, "shop:") {
			return handleShopMenu(s, a)
		}
		if strings.HasPrefix(a.ID, "town:train:") {
			return handleTrainMenu(s, a)
		}
		if strings.HasPrefix(a.ID, "town:level:") {
			return handleLevelMenu(s, a)
		}
		if strings.HasPrefix(a.ID, "town:quests:") {
			return handleQuestsMenu(s, a)
		}
		if strings.HasPrefix(a.ID, "town:repair:") {
			return handleRepairMenu(s, a)
		}
		if strings.HasPrefix(a.ID, "town:gamble:") {
			return handleGamble(s, a)
		}
		return []Event{townMenuEvent(c)}
	}
}

func handleHealer(s *State) []Event {
	c := s.Character
	if c.Gold < healerCost {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= healerCost
	s.Stats.GoldSpent += healerCost
	c.HP = c.MaxHP
	c.Debuffs = character.Debuffs{}
	return withResultPage(s, []Event{dialogue("The healer tends your wounds. You are fully restored.")})
}

// handleOnceService implements the shared Tavern/Eat/Pray/Sleep/Rest
// contract: pay the cost, then roll 5d4+attribute>25 for a ceil(max_hp/3)
// heal, gated to once per town visit by the flag pointer (spec §4.8).
func handleOnceService(s *State, flag *bool, label string, cost int, attr character.Attribute) []Event {
	c := s.Character
	if *flag {
		return withResultPage(s, []Event{dialogue(alreadyVisited(s))})
	}
	if c.Gold < cost {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= cost
	s.Stats.GoldSpent += cost
	*flag = true

	total := dice.Sum("5d4", s.Dice) + c.Attribute(attr)
	if total <= 25 {
		return withResultPage(s, []Event{dialogue(label + " passes uneventfully.")})
	}
	healed := ceilDiv3(c.MaxHP)
	c.HP += healed
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	return withResultPage(s, []Event{dialogue(label + " restores " + itoa(healed) + " hit points.")})
}

func ceilDiv3(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 2) / 3
}

func notEnoughGold(s *State) string {
	return s.Tables.Dialogues.Get("town", "not_enough_gold", 0, nil)
}

func alreadyVisited(s *State) string {
	return s.Tables.Dialogues.Get("town", "already_visited", 0, nil)
}

func handleTrainMenu(s *State, a Action) []Event {
	c := s.Character
	totalTrainings := 0
	for _, n := range c.AttributeTraining {
		totalTrainings += n
	}

	attr := character.Attribute(trimPrefix(a.ID, "town:train:"))
	if a.ID == "town:train" {
		attr = ""
	}
	if attr == "" {
		if totalTrainings >= trainCap {
			return withResultPage(s, []Event{dialogue("You have reached the limit of training your body and mind can take.")})
		}
		options := make([]MenuOption, 0, len(character.Attributes))
		for _, at := range character.Attributes {
			options = append(options, opt("town:train:"+string(at), string(at)))
		}
		s.Continuation = nil
		return []Event{dialogue("Train which attribute?"), menu(options...)}
	}

	if totalTrainings >= trainCap {
		return withResultPage(s, []Event{dialogue("You have reached the limit of training your body and mind can take.")})
	}
	cost := trainBaseCost * (c.AttributeTraining[attr] + 1)
	if c.Gold < cost {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= cost
	s.Stats.GoldSpent += cost
	c.AttributeTraining[attr]++
	c.Attributes[attr]++
	if attr == character.Constitution {
		c.MaxHP += 5
		c.HP += 5
	}
	return withResultPage(s, []Event{dialogue("Your " + string(attr) + " increases to " + itoa(c.Attribute(attr)) + ".")})
}

func handleLevelMenu(s *State, a Action) []Event {
	c := s.Character
	if c.UnspentStatPoints <= 0 {
		return withResultPage(s, []Event{dialogue("You have no stat points to spend.")})
	}
	attr := character.Attribute(trimPrefix(a.ID, "town:level:"))
	if a.ID == "town:level" {
		options := make([]MenuOption, 0, len(character.Attributes))
		for _, at := range character.Attributes {
			options = append(options, opt("town:level:"+string(at), string(at)))
		}
		return []Event{dialogue(itoa(c.UnspentStatPoints) + " stat points available. Raise which attribute?"), menu(options...)}
	}
	c.Attributes[attr]++
	c.UnspentStatPoints--
	return withResultPage(s, []Event{dialogue("Your " + string(attr) + " increases to " + itoa(c.Attribute(attr)) + ".")})
}

func handleQuestsMenu(s *State, a Action) []Event {
	c := s.Character
	switch {
	case a.ID == "town:quests:request":
		if !quest.CanOffer(c.Quests) {
			return withResultPage(s, []Event{dialogue("You already carry as many quests as you can manage.")})
		}
		offer, ok := quest.GenerateOffer(c.Quests, s.Tables, s.Dice)
		if !ok {
			return withResultPage(s, []Event{dialogue("No one has work for you right now.")})
		}
		c.Quests = append(c.Quests, offer)
		return withResultPage(s, []Event{dialogue("New quest: " + quest.Desc(offer) + ", reward " + itoa(offer.RewardGold) + "g.")})
	default:
		if len(c.Quests) == 0 {
			return []Event{dialogue("You carry no quests."), menu(opt("town:quests:request", "Request a quest"), opt("town:continue", "Back"))}
		}
		lines := make([]Event, 0, len(c.Quests)+1)
		for _, q := range c.Quests {
			lines = append(lines, dialogue(quest.Desc(q)+" ("+itoa(q.Progress)+"/"+itoa(q.Goal)+")"))
		}
		options := []MenuOption{opt("town:continue", "Back")}
		if quest.CanOffer(c.Quests) {
			options = append([]MenuOption{opt("town:quests:request", "Request another quest")}, options...)
		}
		s.Continuation = func(*State) []Event {
			return []Event{clear(), updateStats(s.statsSnapshot()), townMenuEvent(s.Character)}
		}
		return append(lines, menu(options...))
	}
}

func handleCompanion(s *State) []Event {
	c := s.Character
	if c.Companion == nil {
		return withResultPage(s, []Event{dialogue("You have no companion.")})
	}
	if c.PotionUses[string(content.PotionHealing)] <= 0 {
		return withResultPage(s, []Event{dialogue("You have no healing potions to share with your companion.")})
	}
	c.PotionUses[string(content.PotionHealing)]--
	s.Stats.PotionsUsed++
	healed := dice.Sum("2d4", s.Dice)
	c.Companion.HP += healed
	if c.Companion.HP > c.Companion.MaxHP {
		c.Companion.HP = c.Companion.MaxHP
	}
	return withResultPage(s, []Event{dialogue(c.Companion.Name + " recovers " + itoa(healed) + " hit points.")})
}

func handleRepairMenu(s *State, a Action) []Event {
	c := s.Character
	idx, kind, ok := parseGearRef(trimPrefix(a.ID, "town:repair:"))
	if a.ID == "town:repair" {
		ok = false
	}
	if !ok {
		options := damagedGearOptions(c, "town:repair")
		if len(options) == 0 {
			return withResultPage(s, []Event{dialogue("None of your gear needs repair.")})
		}
		return []Event{dialogue("Repair which item?"), menu(options...)}
	}
	if c.Gold < combat.RepairCost {
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= combat.RepairCost
	s.Stats.GoldSpent += combat.RepairCost
	switch kind {
	case "weapon":
		c.Weapons[idx].Damaged = false
	case "armor":
		c.Armors[idx].Damaged = false
	}
	return withResultPage(s, []Event{dialogue("The smith restores your gear to working order.")})
}

func handleRemoveCurses(s *State) []Event {
	c := s.Character
	var total int
	for i, r := range c.Rings {
		if r.Cursed {
			total++
			c.Rings[i].Cursed = false
		}
	}
	if total == 0 {
		return withResultPage(s, []Event{dialogue("You carry no cursed items.")})
	}
	cost := total * removeCurseCost
	if c.Gold < cost {
		for i := range c.Rings {
			c.Rings[i].Cursed = true
		}
		return withResultPage(s, []Event{dialogue(notEnoughGold(s))})
	}
	c.Gold -= cost
	s.Stats.GoldSpent += cost
	return withResultPage(s, []Event{dialogue("The curse lifts from " + itoa(total) + " item(s).")})
}

func damagedGearOptions(c *character.Character, prefix string) []MenuOption {
	var options []MenuOption
	for i, w := range c.Weapons {
		if w.Damaged {
			options = append(options, opt(prefix+":weapon:"+itoa(i), w.Name+" (weapon)"))
		}
	}
	for i, ar := range c.Armors {
		if ar.Damaged {
			options = append(options, opt(prefix+":armor:"+itoa(i), ar.Name+" (armor)"))
		}
	}
	return options
}

// parseGearRef parses a "weapon:3" / "armor:1" reference into its kind and
// index.
func parseGearRef(ref string) (idx int, kind string, ok bool) {
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", false
	}
	return n, parts[0], true
}
