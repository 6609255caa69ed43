package game

import (
	"fmt"

	"github.com/maxgale/onenight/internal/models"
)

// ActionReceipt builds the idempotency key consumed when a player acts. A
// player may hold at most one receipt per (game, turn-role, starting-role)
// triple; the doppelganger's starting role changes when she transforms, which
// is what allows her chained second action in the same turn slot.
func ActionReceipt(gameID, turnRoleName, startingRoleName string) string {
	return fmt.Sprintf("%s-%s-%s", gameID, turnRoleName, startingRoleName)
}

// CanTakeAction decides whether actor may act on the current turn.
func CanTakeAction(cfg *models.GameConfig, state *models.GameState, players []*models.Player, actor *models.Player, gameID string) bool {
	if cfg == nil || state == nil || actor == nil {
		return false
	}
	if !state.Started() || state.IsDay(len(cfg.Roles)) {
		return false
	}

	current := cfg.Roles[state.CurrentIdx]
	if actor.HasTakenAction(ActionReceipt(gameID, current.Name, actor.StartingRole.Name)) {
		return false
	}

	baseWerewolfTurn := current.ID == models.RoleWerewolf && !current.IsDoppelgangerCopy()

	switch {
	case actor.StartingRole.Name == current.Name:
		// The base Werewolf turn grants an action only to a solo wolf;
		// with multiple wolves they already see each other via
		// disclosure.
		if baseWerewolfTurn {
			return countWerewolfTeam(players) == 1
		}
		return true

	case baseWerewolfTurn && actor.StartingRole.ID == models.RoleMysticWolf:
		// A lone Mystic Wolf substitutes for the missing solo-wolf peek.
		return countWerewolfTeam(players) == 1

	case current.ID == models.RoleDoppelganger && actor.StartingRole.IsDoppelgangerCopy():
		// A transformed doppelganger chains into her new role's action
		// during the same turn slot.
		return true
	}

	return false
}

func countWerewolfTeam(players []*models.Player) int {
	n := 0
	for _, p := range players {
		if p.StartingRole.Team == models.TeamWerewolf {
			n++
		}
	}
	return n
}
