package models

import "time"

// TurnInfo is the ambient disclosure payload one recipient receives when a
// night turn begins. Empty for everyone outside the turn's reveal set.
type TurnInfo struct {
	// Werewolves lists every player whose starting role is on the werewolf
	// team. Sent only to werewolf-info roles on their info turns.
	Werewolves []PlayerRef `json:"allWerewolves,omitempty"`

	// Masons lists every player holding a mason starting role.
	Masons []PlayerRef `json:"allMasons,omitempty"`

	// Insomniac is the recipient's own current role, revealed on the
	// insomniac turn.
	Insomniac *Role `json:"insomniac,omitempty"`

	// ConferenceEndTime is set instead of the above once the day phase
	// begins.
	ConferenceEndTime *time.Time `json:"conferenceEndTime,omitempty"`
}

// Empty reports whether the payload discloses nothing.
func (i *TurnInfo) Empty() bool {
	return i == nil ||
		(len(i.Werewolves) == 0 && len(i.Masons) == 0 &&
			i.Insomniac == nil && i.ConferenceEndTime == nil)
}

// ExecutedPlayer is one entry of a game's execution set.
type ExecutedPlayer struct {
	Name string `json:"name"`

	// ByHunter marks a player executed by a dead Hunter's retaliation
	// rather than by the vote itself.
	ByHunter bool `json:"byHunter,omitempty"`
}

// GameResult is the end-of-game payload sent to every player.
type GameResult struct {
	// CharacterResults maps player name to the final role held, after the
	// doppelganger retroactive rewrite.
	CharacterResults map[string]Role `json:"characterResults"`

	// MiddleCards is the final middle.
	MiddleCards []Role `json:"middleCards"`

	// Votes maps vote target (player name or "middle") to count.
	Votes map[string]int `json:"votes"`

	Executed []ExecutedPlayer `json:"executed"`

	// WinningTeams is every team that qualified; it may be empty.
	WinningTeams []Team `json:"winningTeams"`

	// Log is the chronological action narrative.
	Log []LogItem `json:"log"`
}
