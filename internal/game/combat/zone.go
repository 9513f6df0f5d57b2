package combat

import "github.com/duskward/labyrinth/internal/game/dice"

// DeclareMonsterZone picks the monster's defended zone for the upcoming
// round, uniformly at random (spec §4.4 "zone match").
func DeclareMonsterZone(src dice.Source) Zone {
	return Zones[src.Intn(len(Zones))]
}
