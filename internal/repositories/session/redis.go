package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/maxgale/onenight/internal/models"
)

const (
	// Key prefixes for Redis, matching one record per game id
	configKeyPrefix     = "config-"
	stateKeyPrefix      = "game-"
	charactersKeyPrefix = "characters-"
	logKeyPrefix        = "log-"
	rosterKeyPrefix     = "roster-"
)

// ErrGameNotFound is returned when no record exists for a game id
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func (r *redisRepository) setJSON(ctx context.Context, key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (r *redisRepository) getJSON(ctx context.Context, key string, out any) error {
	blob, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(blob), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}

// SaveConfig persists a game's expanded configuration
func (r *redisRepository) SaveConfig(ctx context.Context, input *SaveConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	if input.Config.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	return r.setJSON(ctx, configKeyPrefix+input.Config.GameID, input.Config)
}

// GetConfig retrieves a game's configuration
func (r *redisRepository) GetConfig(ctx context.Context, input *GetConfigInput) (*models.GameConfig, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var cfg models.GameConfig
	if err := r.getJSON(ctx, configKeyPrefix+input.GameID, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveState persists a game's turn cursor
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	return r.setJSON(ctx, stateKeyPrefix+input.GameID, input.State)
}

// GetState retrieves a game's turn cursor
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var state models.GameState
	if err := r.getJSON(ctx, stateKeyPrefix+input.GameID, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// SaveCharacters persists the dealt-card record and the middle
func (r *redisRepository) SaveCharacters(ctx context.Context, input *SaveCharactersInput) error {
	if input == nil || input.Characters == nil {
		return errors.New("input and characters cannot be nil")
	}

	if input.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	return r.setJSON(ctx, charactersKeyPrefix+input.GameID, input.Characters)
}

// GetCharacters retrieves the dealt-card record
func (r *redisRepository) GetCharacters(ctx context.Context, input *GetCharactersInput) (*models.CharacterRecord, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var record models.CharacterRecord
	if err := r.getJSON(ctx, charactersKeyPrefix+input.GameID, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// AppendLog appends one entry to the game's action log
func (r *redisRepository) AppendLog(ctx context.Context, input *AppendLogInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	blob, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if err := r.client.RPush(ctx, logKeyPrefix+input.GameID, blob).Err(); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}

// GetLog retrieves the full action log in order
func (r *redisRepository) GetLog(ctx context.Context, input *GetLogInput) ([]models.LogItem, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	blobs, err := r.client.LRange(ctx, logKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	entries := make([]models.LogItem, 0, len(blobs))
	for _, blob := range blobs {
		var entry models.LogItem
		if err := json.Unmarshal([]byte(blob), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveRoster persists the player slots for a game
func (r *redisRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	return r.setJSON(ctx, rosterKeyPrefix+input.GameID, input.Players)
}

// GetRoster retrieves the player slots for a game
func (r *redisRepository) GetRoster(ctx context.Context, input *GetRosterInput) ([]*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var players []*models.Player
	if err := r.getJSON(ctx, rosterKeyPrefix+input.GameID, &players); err != nil {
		return nil, err
	}

	return players, nil
}

// DeleteGame removes every record for a game
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, configKeyPrefix+input.GameID)
	pipe.Del(ctx, stateKeyPrefix+input.GameID)
	pipe.Del(ctx, charactersKeyPrefix+input.GameID)
	pipe.Del(ctx, logKeyPrefix+input.GameID)
	pipe.Del(ctx, rosterKeyPrefix+input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
