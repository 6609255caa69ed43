package ws

import (
	"time"

	"github.com/maxgale/onenight/internal/models"
)

// Action is the inbound message discriminator.
type Action string

const (
	ActionStartGame       Action = "start_game"
	ActionCharacterAction Action = "character_action"
	ActionCastVote        Action = "cast_vote"
	ActionNextCharacter   Action = "next_character"
	ActionPauseGame       Action = "pause_game"
	ActionResumeGame      Action = "resume_game"
	ActionCancelGame      Action = "cancel_game"
)

// InboundMessage is one client request. Fields beyond Action are read
// depending on the action.
type InboundMessage struct {
	Action Action `json:"action"`
	GameID string `json:"gameId,omitempty"`

	// start_game
	RoleKeys            []string `json:"roleKeys,omitempty"`
	SecondsPerCharacter int      `json:"secondsPerCharacter,omitempty"`
	SecondsToConference int      `json:"secondsToConference,omitempty"`

	// character_action
	PlayersSelected     []string `json:"playersSelected,omitempty"`
	MiddleCardsSelected []int    `json:"middleCardsSelected,omitempty"`

	// cast_vote: a player id or "middle"
	Target string `json:"target,omitempty"`
}

// Event is the outbound message discriminator.
type Event string

const (
	EventJoined       Event = "joined"
	EventRoomUpdate   Event = "room_update"
	EventGameStarted  Event = "game_started"
	EventTurn         Event = "turn"
	EventActionResult Event = "action_result"
	EventVoteRecorded Event = "vote_recorded"
	EventGamePaused   Event = "game_paused"
	EventGameResumed  Event = "game_resumed"
	EventGameEnded    Event = "game_ended"
	EventError        Event = "error"
)

// OutboundMessage is one server push. Payload fields are set depending on the
// event; the rest stay empty.
type OutboundMessage struct {
	Event  Event  `json:"event"`
	GameID string `json:"gameId,omitempty"`

	// joined
	PlayerID string `json:"playerId,omitempty"`

	// joined, room_update
	RoomID  string             `json:"roomId,omitempty"`
	Players []models.PlayerRef `json:"players,omitempty"`

	// game_started: the recipient's dealt card
	Role *models.Role `json:"role,omitempty"`

	// turn, game_resumed
	State *models.GameState `json:"state,omitempty"`

	// turn: the recipient's private disclosure
	Info *models.TurnInfo `json:"info,omitempty"`

	// turn (day transition)
	ConferenceEndTime *time.Time `json:"conferenceEndTime,omitempty"`

	// action_result
	Accepted     bool          `json:"accepted,omitempty"`
	Message      string        `json:"message,omitempty"`
	Result       []models.Role `json:"result,omitempty"`
	StartingRole *models.Role  `json:"startingRole,omitempty"`

	// vote_recorded
	Vote     string `json:"vote,omitempty"`
	AllVoted bool   `json:"allVoted,omitempty"`

	// game_ended
	GameResult *models.GameResult `json:"gameResult,omitempty"`

	// error
	Error string `json:"error,omitempty"`
}
