package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound     GameError = "game not found"
	ErrPlayerNotFound   GameError = "player not found"
	ErrGameCancelled    GameError = "game has been cancelled"
	ErrUnknownRoleKey   GameError = "unknown role key"
	ErrRoleCount        GameError = "role selection must exceed the player count by exactly three"
	ErrNoPlayers        GameError = "at least one player is required"
	ErrInvalidSelection GameError = "invalid player or middle card selection"
	ErrNotDayPhase      GameError = "voting is only allowed during the day"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilStatsRepo     GameError = "stats repository cannot be nil"
)
