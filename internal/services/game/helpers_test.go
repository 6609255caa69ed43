package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxgale/onenight/internal/models"
	"github.com/maxgale/onenight/internal/roles"
)

func roleByKey(t *testing.T, key string) models.Role {
	t.Helper()
	role, ok := roles.ByKey(key)
	require.True(t, ok, "unknown key %q", key)
	return role
}

func rolesByKeys(t *testing.T, keys ...string) []models.Role {
	t.Helper()
	out := make([]models.Role, 0, len(keys))
	for _, key := range keys {
		out = append(out, roleByKey(t, key))
	}
	return out
}

func newTestPlayer(t *testing.T, id, name, key string) *models.Player {
	t.Helper()
	role := roleByKey(t, key)
	return &models.Player{
		ID:           id,
		Name:         name,
		StartingRole: role,
		Role:         role,
	}
}

func newTestConfig(t *testing.T, gameID string, keys ...string) *models.GameConfig {
	t.Helper()
	selection := rolesByKeys(t, keys...)
	return &models.GameConfig{
		GameID:              gameID,
		RoomID:              "room",
		Roles:               roles.Expand(selection),
		OriginalRoles:       selection,
		SecondsPerCharacter: 15,
		SecondsToConference: 300,
	}
}

// turnIdx finds the first turn slot with the given display name.
func turnIdx(t *testing.T, cfg *models.GameConfig, name string) int {
	t.Helper()
	for i, r := range cfg.Roles {
		if r.Name == name {
			return i
		}
	}
	t.Fatalf("no turn named %q", name)
	return -1
}
