// Package leaderboard serves the all-time standings over HTTP.
package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/repositories/stats"
)

// HandlerError is a custom error type for leaderboard handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    HandlerError = "config cannot be nil"
	ErrNilStatsRepo HandlerError = "stats repository cannot be nil"
)

// Handler serves GET /api/leaderboard.
type Handler struct {
	statsRepo stats.Repository
}

// Config holds dependencies for the leaderboard handler
type Config struct {
	StatsRepo stats.Repository
}

// New creates a new leaderboard handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	return &Handler{statsRepo: cfg.StatsRepo}, nil
}

type response struct {
	Entries []stats.LeaderboardEntry `json:"entries"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	out, err := h.statsRepo.GetLeaderboard(r.Context(), &stats.GetLeaderboardInput{Limit: limit})
	if err != nil {
		zap.L().Error("leaderboard query failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entries := out.Entries
	if entries == nil {
		entries = []stats.LeaderboardEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Entries: entries}); err != nil {
		zap.L().Warn("leaderboard encode failed", zap.Error(err))
	}
}
