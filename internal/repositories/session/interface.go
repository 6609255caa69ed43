package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/maxgale/onenight/internal/repositories/session Repository

import (
	"context"

	"github.com/maxgale/onenight/internal/models"
)

// Repository defines the interface for game session persistence. Records are
// opaque JSON blobs keyed by game id; the engine treats the store as
// best-effort and keeps authoritative state in memory.
type Repository interface {
	// SaveConfig persists a game's expanded configuration
	SaveConfig(ctx context.Context, input *SaveConfigInput) error

	// GetConfig retrieves a game's configuration
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.GameConfig, error)

	// SaveState persists a game's turn cursor
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves a game's turn cursor
	GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error)

	// SaveCharacters persists the dealt-card record and the middle
	SaveCharacters(ctx context.Context, input *SaveCharactersInput) error

	// GetCharacters retrieves the dealt-card record
	GetCharacters(ctx context.Context, input *GetCharactersInput) (*models.CharacterRecord, error)

	// AppendLog appends one entry to the game's action log
	AppendLog(ctx context.Context, input *AppendLogInput) error

	// GetLog retrieves the full action log in order
	GetLog(ctx context.Context, input *GetLogInput) ([]models.LogItem, error)

	// SaveRoster persists the player slots for a game
	SaveRoster(ctx context.Context, input *SaveRosterInput) error

	// GetRoster retrieves the player slots for a game
	GetRoster(ctx context.Context, input *GetRosterInput) ([]*models.Player, error)

	// DeleteGame removes every record for a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
