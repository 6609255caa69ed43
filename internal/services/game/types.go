package game

import (
	"time"

	"github.com/maxgale/onenight/internal/models"
)

// Seat is one player joining a game.
type Seat struct {
	PlayerID string
	Name     string
}

type StartGameInput struct {
	RoomID string

	// Players in seating order.
	Players []Seat

	// RoleKeys selects catalog cards by key. The selection must hold
	// exactly len(Players) + 3 cards.
	RoleKeys []string

	SecondsPerCharacter int
	SecondsToConference int
}

type StartGameOutput struct {
	GameID string
	Config *models.GameConfig

	// Deals maps player id to the dealt starting role.
	Deals map[string]models.Role
}

type HandleActionInput struct {
	GameID   string
	PlayerID string
	Request  *models.ActionRequest
}

type HandleActionOutput struct {
	// Accepted is false when the eligibility guard rejected the request;
	// this is normal control flow, not an error.
	Accepted bool

	Message string
	Result  []models.Role

	// Info carries inline disclosure, set when a doppelganger transforms
	// into an information-granting role.
	Info *models.TurnInfo

	// StartingRole is set when the action rewrote the actor's starting
	// role (the doppelganger transformation).
	StartingRole *models.Role
}

type CastVoteInput struct {
	GameID   string
	PlayerID string

	// Target is the voted player's id, or "middle".
	Target string
}

type CastVoteOutput struct {
	// Vote is the recorded vote value (target player name or "middle").
	Vote string

	// AllVoted reports whether this vote completed the tally and finished
	// the game.
	AllVoted bool
}

type AdvanceTurnInput struct {
	GameID string
}

type AdvanceTurnOutput struct {
	State *models.GameState
}

type PauseGameInput struct {
	GameID string
}

type PauseGameOutput struct{}

type ResumeGameInput struct {
	GameID string
}

type ResumeGameOutput struct {
	// DayEndsAt is the recomputed conference deadline when resuming during
	// the day phase.
	DayEndsAt *time.Time
}

type CancelGameInput struct {
	GameID string
}

type CancelGameOutput struct{}

// Broadcaster pushes engine events to connected players. The transport layer
// implements it; a no-op implementation is used when none is set.
type Broadcaster interface {
	// TurnChanged announces a new turn. Infos maps player id to that
	// recipient's disclosure payload.
	TurnChanged(gameID string, state *models.GameState, infos map[string]*models.TurnInfo)

	// GameEnded delivers the final result to the room.
	GameEnded(gameID string, result *models.GameResult)

	GamePaused(gameID string)
	GameResumed(gameID string, state *models.GameState)
}

type noopBroadcaster struct{}

func (noopBroadcaster) TurnChanged(string, *models.GameState, map[string]*models.TurnInfo) {}
func (noopBroadcaster) GameEnded(string, *models.GameResult)                               {}
func (noopBroadcaster) GamePaused(string)                                                  {}
func (noopBroadcaster) GameResumed(string, *models.GameState)                              {}
