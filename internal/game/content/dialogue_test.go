package content_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestDialogueTable_UsesLoadedLine(t *testing.T) {
	tbl := content.NewDialogueTable([]content.DialogueEntry{
		{Namespace: "combat", Key: "examine_fail", Lines: []string{"Custom line for {name}."}},
	}, zaptest.NewLogger(t))

	got := tbl.Get("combat", "examine_fail", 0, map[string]string{"name": "Goblin"})
	assert.Equal(t, "Custom line for Goblin.", got)
}

func TestDialogueTable_FallsBackToDefault(t *testing.T) {
	tbl := content.NewDialogueTable(nil, zaptest.NewLogger(t))

	got := tbl.Get("combat", "examine_fail", 0, nil)
	assert.Equal(t, "You can't make out the creature's capabilities clearly.", got)
}

func TestDialogueTable_UnknownNamespaceReturnsNonEmpty(t *testing.T) {
	tbl := content.NewDialogueTable(nil, zaptest.NewLogger(t))
	got := tbl.Get("nope", "nope", 0, nil)
	assert.NotEmpty(t, got)
}
