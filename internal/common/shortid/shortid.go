// Package shortid generates the short, url-safe suffix appended to room ids
// to form game ids.
package shortid

import (
	"math/rand"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length of a generated id.
const Length = 6

// Generator produces short ids from its own random source.
type Generator struct {
	random *rand.Rand
}

// Config for a short id generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new generator
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	return &Generator{random: rand.New(rand.NewSource(seed))}
}

// NewID returns a new short id.
func (g *Generator) NewID() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = alphabet[g.random.Intn(len(alphabet))]
	}
	return string(b)
}
