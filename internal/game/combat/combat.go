// Package combat implements the pure 5d4-based combat resolver: AC and
// initiative math, the attack/damage pipeline, the seven action contracts
// (examine, divine aid, charm, flee, potion, spell, attack), equipment
// degradation, and victory payout (spec §4.4).
package combat

// Zone identifies a body region a player can aim an attack at and a monster
// can declare as its defended zone (spec §4.4 "zone match").
type Zone string

const (
	ZoneHead Zone = "head"
	ZoneBody Zone = "body"
	ZoneLegs Zone = "legs"
)

// Zones is the full set a monster's defend zone is drawn from.
var Zones = []Zone{ZoneHead, ZoneBody, ZoneLegs}

// Outcome is the result tier of one 5d4 attack check.
type Outcome int

const (
	Miss Outcome = iota
	Hit
	Crit
	Fumble
	Blocked
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Crit:
		return "critical"
	case Fumble:
		return "fumble"
	case Blocked:
		return "blocked"
	default:
		return "miss"
	}
}

// rawOutcome classifies a raw 5d4 roll on its own terms, independent of any
// hit/miss threshold: 5 is always a fumble, 20 is always a critical
// (spec §4.4).
func rawOutcome(raw int) (fumble, crit bool) {
	return raw == 5, raw == 20
}
