package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/models"
)

// ActionOutcome is the structured result of one resolved night action.
type ActionOutcome struct {
	// Message is the user-facing outcome text.
	Message string

	// Result holds the role instances the actor is now allowed to see.
	Result []models.Role

	// Info carries inline disclosure for a doppelganger who transformed
	// into an information-granting role.
	Info *models.TurnInfo

	// Transformed reports that the actor's starting role was rewritten.
	Transformed bool
}

// resolveContext bundles the mutable state an action may touch. The middle
// slice is mutated in place.
type resolveContext struct {
	players []*models.Player
	actor   *models.Player
	request *models.ActionRequest
	middle  []models.Role
}

type resolveFunc func(*resolveContext) (*ActionOutcome, error)

// actionTable dispatches on the actor's starting-role ID. A doppelganger copy
// keeps the base role's ID, so prefixed roles land on the base behavior. Roles
// with a night turn but no effect resolve to a no-op.
var actionTable = map[models.RoleID]resolveFunc{
	models.RoleDoppelganger:   resolveDoppelganger,
	models.RoleMysticWolf:     resolveViewPlayer,
	models.RoleWerewolf:       resolveViewOneMiddle,
	models.RoleSeer:           resolveSeer,
	models.RoleApprenticeSeer: resolveViewOneMiddle,
	models.RoleRobber:         resolveRobber,
	models.RoleTroublemaker:   resolveTroublemaker,
	models.RoleDrunk:          resolveDrunk,
	models.RoleMinion:         resolveNoEffect,
	models.RoleMason:          resolveNoEffect,
	models.RoleInsomniac:      resolveNoEffect,
	models.RoleHunter:         resolveNoEffect,
	models.RoleTanner:         resolveNoEffect,
	models.RoleVillager:       resolveNoEffect,
}

// Resolve applies the actor's role effect to the players and middle and
// returns what the actor learns. Dispatch is on the actor's current starting
// role, not team.
func Resolve(players []*models.Player, actor *models.Player, request *models.ActionRequest, middle []models.Role) (*ActionOutcome, error) {
	if request == nil {
		request = &models.ActionRequest{}
	}

	fn, ok := actionTable[actor.StartingRole.ID]
	if !ok {
		zap.L().Warn("unsupported role action",
			zap.String("role", actor.StartingRole.Name))
		return &ActionOutcome{}, nil
	}

	return fn(&resolveContext{
		players: players,
		actor:   actor,
		request: request,
		middle:  middle,
	})
}

func (rc *resolveContext) selectedPlayer(i int) (*models.Player, error) {
	if i >= len(rc.request.Players) {
		return nil, ErrInvalidSelection
	}
	for _, p := range rc.players {
		if p.ID == rc.request.Players[i] {
			return p, nil
		}
	}
	return nil, ErrInvalidSelection
}

func (rc *resolveContext) selectedMiddle(i int) (int, error) {
	if i >= len(rc.request.MiddleCards) {
		return 0, ErrInvalidSelection
	}
	idx := rc.request.MiddleCards[i]
	if idx < 0 || idx >= len(rc.middle) {
		return 0, ErrInvalidSelection
	}
	return idx, nil
}

// resolveDoppelganger copies the selected player's current role, renames it
// with the doppelganger prefix, and rewrites the actor's starting role so
// follow-up dispatch lands on the copied behavior. A copied Minion gets its
// werewolf disclosure inline because the Minion has no doppelganger turn slot.
func resolveDoppelganger(rc *resolveContext) (*ActionOutcome, error) {
	target, err := rc.selectedPlayer(0)
	if err != nil {
		return nil, err
	}

	copied := target.Role.CopyForDoppelganger()
	rc.actor.StartingRole = copied

	message := fmt.Sprintf("You are now the %s.", copied.Name)
	if d := strings.TrimSpace(target.Role.Directions); d != "" {
		message = fmt.Sprintf("%s %s", message, d)
	}

	outcome := &ActionOutcome{
		Message:     message,
		Result:      []models.Role{copied},
		Transformed: true,
	}

	if copied.ID == models.RoleMinion {
		outcome.Info = TurnInfo(copied, rc.players, rc.actor)
	}

	return outcome, nil
}

func resolveViewPlayer(rc *resolveContext) (*ActionOutcome, error) {
	target, err := rc.selectedPlayer(0)
	if err != nil {
		return nil, err
	}

	return &ActionOutcome{
		Message: fmt.Sprintf("You have viewed the %s.", target.Role.Name),
		Result:  []models.Role{target.Role},
	}, nil
}

func resolveViewOneMiddle(rc *resolveContext) (*ActionOutcome, error) {
	idx, err := rc.selectedMiddle(0)
	if err != nil {
		return nil, err
	}

	card := rc.middle[idx]
	return &ActionOutcome{
		Message: fmt.Sprintf("You saw the %s in the middle.", card.Name),
		Result:  []models.Role{card},
	}, nil
}

// resolveSeer views one other player's card, or two middle cards when no
// player is selected.
func resolveSeer(rc *resolveContext) (*ActionOutcome, error) {
	if len(rc.request.Players) > 0 {
		target, err := rc.selectedPlayer(0)
		if err != nil {
			return nil, err
		}
		return &ActionOutcome{
			Message: fmt.Sprintf("You saw the %s.", target.Role.Name),
			Result:  []models.Role{target.Role},
		}, nil
	}

	first, err := rc.selectedMiddle(0)
	if err != nil {
		return nil, err
	}
	second, err := rc.selectedMiddle(1)
	if err != nil {
		return nil, err
	}

	a, b := rc.middle[first], rc.middle[second]
	return &ActionOutcome{
		Message: fmt.Sprintf("You saw the %s and the %s in the middle.", a.Name, b.Name),
		Result:  []models.Role{a, b},
	}, nil
}

// resolveRobber exchanges current roles with the selected player. The swap
// reads both sides before writing either.
func resolveRobber(rc *resolveContext) (*ActionOutcome, error) {
	target, err := rc.selectedPlayer(0)
	if err != nil {
		return nil, err
	}
	if target.ID == rc.actor.ID {
		return nil, ErrInvalidSelection
	}

	taken := target.Role
	target.Role = rc.actor.Role
	rc.actor.Role = taken

	return &ActionOutcome{
		Message: fmt.Sprintf("You are now the %s.", taken.Name),
		Result:  []models.Role{taken},
	}, nil
}

// resolveTroublemaker exchanges the current roles of two other players; the
// actor learns nothing about the swapped cards.
func resolveTroublemaker(rc *resolveContext) (*ActionOutcome, error) {
	first, err := rc.selectedPlayer(0)
	if err != nil {
		return nil, err
	}
	second, err := rc.selectedPlayer(1)
	if err != nil {
		return nil, err
	}
	if first.ID == second.ID || first.ID == rc.actor.ID || second.ID == rc.actor.ID {
		return nil, ErrInvalidSelection
	}

	tmp := first.Role
	first.Role = second.Role
	second.Role = tmp

	return &ActionOutcome{Message: "Success!"}, nil
}

// resolveDrunk exchanges the actor's current role with a middle slot, sight
// unseen.
func resolveDrunk(rc *resolveContext) (*ActionOutcome, error) {
	idx, err := rc.selectedMiddle(0)
	if err != nil {
		return nil, err
	}

	tmp := rc.middle[idx]
	rc.middle[idx] = rc.actor.Role
	rc.actor.Role = tmp

	return &ActionOutcome{Message: "Success!"}, nil
}

func resolveNoEffect(*resolveContext) (*ActionOutcome, error) {
	return &ActionOutcome{}, nil
}
