package models

import "time"

// MiddleSize is the number of undealt cards in the middle.
const MiddleSize = 3

// GameConfig is the immutable per-game configuration, persisted under
// config-<gameID>.
type GameConfig struct {
	// GameID is <roomID>-<shortid>.
	GameID string `json:"gameId"`

	// RoomID identifies the room the game runs in.
	RoomID string `json:"roomId"`

	// Roles is the expanded, order-sorted night sequence (doppelganger
	// duplicates inserted, non-night roles filtered out).
	Roles []Role `json:"roles"`

	// OriginalRoles is the pre-expansion selection; it is what gets dealt.
	OriginalRoles []Role `json:"originalRoles"`

	SecondsPerCharacter int `json:"secondsPerCharacter"`
	SecondsToConference int `json:"secondsToConference"`
}

// GameState is the mutable turn cursor, persisted under game-<gameID>.
// CurrentIdx is -1 before the first night turn and len(Roles) once the day
// phase begins.
type GameState struct {
	CurrentIdx int  `json:"currentIdx"`
	Paused     bool `json:"paused"`

	// DayEndsAt is set when the day phase starts so clients can render a
	// countdown. Zero during the night.
	DayEndsAt time.Time `json:"dayEndsAt,omitempty"`
}

// Started reports whether the first night turn has begun.
func (s *GameState) Started() bool {
	return s.CurrentIdx >= 0
}

// IsDay reports whether the night sequence of n roles has been exhausted.
func (s *GameState) IsDay(n int) bool {
	return s.CurrentIdx >= n
}

// CharacterRecord is the dealt-card record, persisted under
// characters-<gameID> and re-persisted after every resolved action.
type CharacterRecord struct {
	// CharacterMap maps player ID to the dealt role.
	CharacterMap map[string]Role `json:"characterMap"`

	// MiddleCards is the 3-card middle, indexable 0-2.
	MiddleCards []Role `json:"middleCards"`
}

// LogItem is one entry of the append-only action log, used only for the
// end-of-game narrative.
type LogItem struct {
	PlayerName    string   `json:"playerName"`
	RoleName      string   `json:"roleName"`
	Targets       []string `json:"targets,omitempty"`
	MiddleIndices []int    `json:"middleIndices,omitempty"`
	Message       string   `json:"message,omitempty"`
}
