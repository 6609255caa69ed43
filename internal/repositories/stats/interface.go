package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/maxgale/onenight/internal/repositories/stats Repository

import "context"

// Repository defines the interface for lifetime player statistics. It is a
// reporting concern only; engine correctness never depends on it.
type Repository interface {
	// RecordGame updates per-player counters from one finished game
	RecordGame(ctx context.Context, input *RecordGameInput) error

	// GetLeaderboard returns all-time standings ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
