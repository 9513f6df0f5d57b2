package content

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DialogueEntry is one namespaced dialogue line group as stored in
// dialogues.yaml: a namespace ("combat"), a key ("examine_fail"), and one or
// more candidate lines the engine picks from. Keeping multiple lines per key
// lets content authors vary flavor text the way original_source's
// get_dialogue() does.
type DialogueEntry struct {
	Namespace string   `yaml:"namespace"`
	Key       string    `yaml:"key"`
	Lines     []string `yaml:"lines"`
}

// dialogueID is the internal lookup key: "namespace.key".
func dialogueID(namespace, key string) string {
	return namespace + "." + key
}

// DialogueTable resolves namespace/key lookups to a formatted string,
// substituting named fields from a context map, and falling back to a
// hard-coded English default when the key is missing (spec §4.2, §7).
//
// Invariant: lookup is safe for concurrent use (content tables are shared
// read-only across sessions, spec §5); logging of missing keys happens at
// most once per process per missing key.
type DialogueTable struct {
	lines  map[string][]string
	logger *zap.Logger
	warned sync.Map // dialogueID -> struct{}
}

// NewDialogueTable builds a DialogueTable from loaded entries.
//
// Precondition: logger must be non-nil.
func NewDialogueTable(entries []DialogueEntry, logger *zap.Logger) *DialogueTable {
	t := &DialogueTable{lines: make(map[string][]string, len(entries)), logger: logger}
	for _, e := range entries {
		t.lines[dialogueID(e.Namespace, e.Key)] = e.Lines
	}
	return t
}

// LoadDialogues reads every YAML file in dir, each holding a top-level list
// of DialogueEntry, and builds a DialogueTable.
func LoadDialogues(dir string, logger *zap.Logger) (*DialogueTable, error) {
	entries, err := loadYAMLDir(dir, decodeYAMLList[DialogueEntry])
	if err != nil {
		return nil, err
	}
	return NewDialogueTable(entries, logger), nil
}

// Get returns a formatted dialogue line for namespace/key, substituting ctx
// fields with "{field}" placeholders. When variants exist, variant selects
// deterministically among them (callers pass a dice roll modulo len(lines)
// rather than letting this package reach for randomness itself, keeping
// dialogue selection reproducible under a seeded Source).
//
// Postcondition: Always returns a non-empty string.
func (t *DialogueTable) Get(namespace, key string, variant int, ctx map[string]string) string {
	id := dialogueID(namespace, key)
	lines, ok := t.lines[id]
	if !ok || len(lines) == 0 {
		t.warnOnce(id)
		return substitute(defaultDialogue(namespace, key), ctx)
	}
	if variant < 0 {
		variant = 0
	}
	line := lines[variant%len(lines)]
	return substitute(line, ctx)
}

func (t *DialogueTable) warnOnce(id string) {
	if _, loaded := t.warned.LoadOrStore(id, struct{}{}); !loaded {
		t.logger.Warn("dialogue key missing, using default", zap.String("key", id))
	}
}

func substitute(line string, ctx map[string]string) string {
	if len(ctx) == 0 {
		return line
	}
	for k, v := range ctx {
		line = strings.ReplaceAll(line, "{"+k+"}", v)
	}
	return line
}

// defaultDialogue returns the compiled-in English fallback for a namespace/key
// pair that is absent from content, or a generic line if even that is unknown.
func defaultDialogue(namespace, key string) string {
	if byKey, ok := defaultDialogues[namespace]; ok {
		if line, ok := byKey[key]; ok {
			return line
		}
	}
	return fmt.Sprintf("...(%s)", key)
}

var defaultDialogues = map[string]map[string]string{
	"combat": {
		"examine_fail":   "You can't make out the creature's capabilities clearly.",
		"examine_result": "You can see: HP {hp}, AC {ac}",
		"no_potions":     "You have no potions.",
		"flee_fail":      "You fail to escape!",
		"flee_success":   "You break away and flee.",
		"charm_success":  "The creature calms and wanders off peacefully.",
		"charm_fail":     "The creature snarls, unmoved.",
	},
	"labyrinth": {
		"room_entry": "You step into a damp chamber with flickering torchlight.",
		"chest":      "You find a chest.",
		"trap_alert": "Trap! {name}!",
	},
	"traps": {
		"gold_dust":    "Some of your gold turns to dust! You lose {amount} gold.",
		"poisoned":     "You have been poisoned!",
		"rust_weapon":  "Your weapon is splattered with corrosive dust, but it holds for now.",
		"dex_down":     "Your dexterity is sapped by the mist.",
		"avoid_trap":   "You avoid the trap!",
		"trap_damage":  "You are hit for {dmg} damage. HP: {hp}",
	},
	"town": {
		"not_enough_gold": "You don't have enough gold for that.",
		"already_visited": "You've already done that here today.",
	},
}
