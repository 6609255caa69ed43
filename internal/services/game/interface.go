package game

import "context"

// Service defines the interface for running game sessions
type Service interface {
	// StartGame expands and deals a role selection, creates the session,
	// and schedules the first night turn
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// HandleAction applies one player's night action for the current turn
	HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error)

	// CastVote records a day-phase vote; the game finishes early once every
	// player has voted
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// AdvanceTurn moves to the next night turn immediately (debug operation,
	// same code path the turn timer uses)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// PauseGame suspends the session's timers
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)

	// ResumeGame restores a paused session's timers
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)

	// CancelGame tears down a session and discards its records
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)
}
