package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/stretchr/testify/assert"
)

func TestDeclareMonsterZone_ReturnsOneOfThree(t *testing.T) {
	src := dice.NewSeededSource(5)
	for i := 0; i < 20; i++ {
		z := combat.DeclareMonsterZone(src)
		assert.Contains(t, combat.Zones, z)
	}
}
