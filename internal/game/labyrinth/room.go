// Package labyrinth generates the procedural dungeon rooms the engine
// enters on every "go deeper" action: a mandatory monster, an optional
// chest, an optional trap, and a background descriptor for the scene event
// (spec §4.5).
package labyrinth

import (
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// Chest is a room's optional treasure. Gold is always present; Ring is nil
// unless the independent 50% ring roll succeeded.
type Chest struct {
	Gold int
	Ring *content.Ring
}

// Room is one dungeon entry's generated content. Monster is never nil:
// every room has a monster, forced or drawn.
type Room struct {
	Monster    *monster.Instance
	Chest      *Chest
	Trap       *content.Trap
	Background string
}
