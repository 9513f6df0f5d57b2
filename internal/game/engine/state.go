package engine

import (
	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/labyrinth"
	"github.com/duskward/labyrinth/internal/storage"
)

// Stores bundles the persistence boundary a State is wired against (spec
// §4.9). Review may be nil; the engine reports storage.ErrReviewsNotConfigured
// rather than panicking when a review action reaches an unconfigured table.
type Stores struct {
	Save        storage.SaveStore
	Leaderboard storage.LeaderboardStore
	Review      storage.ReviewSubmitter
}

// RunStats accumulates the counters a leaderboard entry needs at the end of
// a run (spec §4.9, §4.10).
type RunStats struct {
	MonstersDefeated int
	QuestsCompleted  int
	PotionsUsed      int
	SpellsUsed       int
	GoldEarned       int
	GoldSpent        int
}

// CombatState is the scratch state one combat encounter needs beyond what
// Character and the room's monster.Instance already carry: whose turn it
// is, the declared zones, and whether the player already spent this turn's
// action (spec §4.4).
type CombatState struct {
	PlayerZone      combat.Zone
	MonsterZone     combat.Zone
	PlayerTurnFirst bool
	TurnUsed        bool
}

// State is one player's complete, serializable-on-demand game session. The
// engine only ever mutates State through a dispatch handler; handlers never
// talk to each other directly.
type State struct {
	Phase    Phase
	DeviceID string

	Character *character.Character
	Tables    *content.Tables
	Dice      dice.Source
	Stores    Stores
	Logger    *zap.Logger

	// Creation scratch (spec §4.8 "Creation").
	PendingDifficulty character.Difficulty
	RolledValue       int
	Unassigned        []character.Attribute
	PendingName       string

	// Labyrinth/combat scratch (spec §4.5, §4.8 "Labyrinth").
	Depth          int
	EncounterCount int
	Room           *labyrinth.Room
	Combat         CombatState

	// Revival scratch (spec §9).
	AwaitingRevival bool

	Stats RunStats

	// Continuation, if set, is invoked and cleared by the next "*:continue"
	// action, letting a result page defer its follow-up events without the
	// dispatch table needing to intercept every phase's continue action
	// (spec §6.2 "every result page ends with a *:continue action").
	Continuation func(*State) []Event
}

// NewState creates a State parked at the main menu, ready to dispatch its
// first Action.
func NewState(deviceID string, tables *content.Tables, src dice.Source, stores Stores, logger *zap.Logger) *State {
	return &State{
		Phase:    PhaseMainMenu,
		DeviceID: deviceID,
		Tables:   tables,
		Dice:     src,
		Stores:   stores,
		Logger:   logger,
	}
}

// statsSnapshot builds the HUD snapshot for the current character, or a
// zeroed snapshot if no character has been created yet.
func (s *State) statsSnapshot() StatsSnapshot {
	if s.Character == nil {
		return StatsSnapshot{}
	}
	c := s.Character
	return StatsSnapshot{
		HP:               c.HP,
		MaxHP:            c.MaxHP,
		Gold:             c.Gold,
		XP:               c.XP,
		Level:            c.Level,
		Depth:            s.Depth,
		CharacterSummary: c.Name + " the " + string(c.Difficulty),
	}
}
