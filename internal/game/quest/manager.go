// Package quest implements the kill-quest offer/progress/reward cycle: up to
// three simultaneous quests, each always goal 1 against a single target
// monster (spec §4.6).
package quest

import (
	"fmt"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
)

// MaxActive is the most quests a character may hold at once (spec §3, §4.6).
const MaxActive = 3

// CanOffer reports whether the character has room for another quest.
func CanOffer(active []character.Quest) bool {
	return len(active) < MaxActive
}

// kindRollThreshold mirrors the 60%-kill/40%-collect flavor split; mechanics
// are identical either way (spec §4.6: "kind" is flavor text only).
const kindRollThreshold = 60

// rewardFor scales with difficulty and inversely with how rare the monster
// is to encounter, so a quest against a seldom-wandering target pays more
// than one against a common nuisance.
func rewardFor(m content.Monster) int {
	wander := m.WanderChance
	if wander < 0.01 {
		wander = 0.01
	}
	return m.Difficulty*20 + int((1.0/wander)/2)
}

func descFor(kind, monsterName string) string {
	verb := "Slay"
	if kind == "collect" {
		verb = "Collect parts from"
	}
	return fmt.Sprintf("%s %s (1)", verb, monsterName)
}

// GenerateOffer picks a quest-eligible monster not already targeted by an
// active quest and returns a new Quest for it.
//
// Postcondition: ok is false iff no eligible, untargeted monster exists in
// tables.Monsters; CanOffer(active) must be checked by the caller first.
func GenerateOffer(active []character.Quest, tables *content.Tables, src dice.Source) (character.Quest, bool) {
	taken := make(map[string]bool, len(active))
	for _, q := range active {
		taken[q.TargetMonster] = true
	}

	var candidates []content.Monster
	for _, m := range tables.Monsters.All() {
		if content.QuestEligible(m) && !taken[m.Name] {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return character.Quest{}, false
	}

	m := candidates[src.Intn(len(candidates))]
	kind := "kill"
	if src.Intn(100) >= kindRollThreshold {
		kind = "collect"
	}

	return character.Quest{
		TargetMonster: m.Name,
		Kind:          kind,
		Goal:          1,
		Progress:      0,
		RewardGold:    rewardFor(m),
	}, true
}

// Desc returns the flavor description for a quest, derived from its kind
// and target rather than stored, so it always reflects the quest's current
// fields even after deserialization.
func Desc(q character.Quest) string {
	return descFor(q.Kind, q.TargetMonster)
}

// CreditKill advances every active quest targeting monsterName, completes
// and removes any whose goal is now met, and returns the surviving quests
// plus the total gold earned from completed ones (spec §4.6: "Idempotent
// per kill" — called once per kill, each matching quest advances once).
func CreditKill(active []character.Quest, monsterName string) ([]character.Quest, int) {
	gold := 0
	remaining := make([]character.Quest, 0, len(active))
	for _, q := range active {
		if q.TargetMonster == monsterName {
			q.Progress++
			if q.Done() {
				gold += q.RewardGold
				continue
			}
		}
		remaining = append(remaining, q)
	}
	return remaining, gold
}
