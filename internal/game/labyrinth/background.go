package labyrinth

import "strings"

// backgroundKeywords maps a lowercase substring of a monster's name to the
// background image name the scene event should carry. The first match in
// slice order wins, so more specific keywords should precede general ones.
var backgroundKeywords = []struct {
	keyword    string
	background string
}{
	{"dragon", "dragon_lair"},
	{"skeleton", "crypt"},
	{"zombie", "crypt"},
	{"ghost", "crypt"},
	{"spider", "web_cavern"},
	{"rat", "sewer"},
	{"goblin", "cave"},
	{"orc", "cave"},
	{"troll", "cave"},
	{"wolf", "forest_den"},
	{"bandit", "forest_den"},
	{"slime", "flooded_chamber"},
}

// defaultBackground is used when no keyword matches the room's monster name.
const defaultBackground = "dungeon_corridor"

// descriptorFor picks a background by proximity-matching monster name
// keywords (spec §4.5). The mapping is a plain lookup table rather than a
// regex engine: the keyword set here is small and fixed, so regex buys
// nothing a substring scan doesn't already give.
func descriptorFor(monsterName string) string {
	lower := strings.ToLower(monsterName)
	for _, kw := range backgroundKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.background
		}
	}
	return defaultBackground
}
