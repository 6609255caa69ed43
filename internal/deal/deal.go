// Package deal shuffles a role selection and deals starting cards.
package deal

import (
	"math/rand"
	"time"

	"github.com/maxgale/onenight/internal/models"
)

// Shuffler provides card shuffling functionality
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for deterministic, replayable deals
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Shuffler{
		random: random,
	}
}

// Shuffle returns a shuffled copy of the selection.
func (s *Shuffler) Shuffle(selection []models.Role) []models.Role {
	out := make([]models.Role, len(selection))
	copy(out, selection)
	s.random.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deal shuffles the selection, assigns one card per player id in order, and
// returns the per-player map plus the undealt middle. The selection must hold
// exactly len(playerIDs) + models.MiddleSize cards.
func (s *Shuffler) Deal(selection []models.Role, playerIDs []string) (map[string]models.Role, []models.Role) {
	shuffled := s.Shuffle(selection)

	characterMap := make(map[string]models.Role, len(playerIDs))
	for i, id := range playerIDs {
		characterMap[id] = shuffled[i]
	}

	middle := make([]models.Role, 0, models.MiddleSize)
	middle = append(middle, shuffled[len(playerIDs):]...)

	return characterMap, middle
}
