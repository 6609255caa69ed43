package game

import "github.com/maxgale/onenight/internal/models"

// werewolfInfoRoles is the reveal set for werewolf information: turns whose
// role is in the set disclose the wolf list, and only recipients whose
// starting role is in the set receive it.
var werewolfInfoRoles = map[models.RoleID]bool{
	models.RoleWerewolf:   true,
	models.RoleMysticWolf: true,
	models.RoleMinion:     true,
}

// TurnInfo computes the ambient information one recipient receives when the
// given night turn begins. It is a strict allow-list keyed on the recipient's
// current starting role; everyone else gets an empty payload, regardless of
// team.
func TurnInfo(current models.Role, players []*models.Player, recipient *models.Player) *models.TurnInfo {
	info := &models.TurnInfo{}
	if recipient == nil {
		return info
	}

	switch {
	case werewolfInfoRoles[current.ID]:
		if !werewolfInfoRoles[recipient.StartingRole.ID] {
			return info
		}
		for _, p := range players {
			if p.StartingRole.Team == models.TeamWerewolf {
				info.Werewolves = append(info.Werewolves, p.Ref())
			}
		}

	case current.ID == models.RoleMason:
		if recipient.StartingRole.ID != models.RoleMason {
			return info
		}
		for _, p := range players {
			if p.StartingRole.ID == models.RoleMason {
				info.Masons = append(info.Masons, p.Ref())
			}
		}

	case current.ID == models.RoleInsomniac:
		// Matched on the recipient's own starting-role name, prefix
		// included: the "Doppelganger Insomniac" slot wakes only the
		// transformed doppelganger, the plain slot only the Insomniac.
		if recipient.StartingRole.Name != current.Name {
			return info
		}
		role := recipient.Role
		info.Insomniac = &role
	}

	return info
}
