// Package roles holds the static role catalog and the night-sequence
// expansion applied when a game is set up.
package roles

import (
	"sort"

	"github.com/maxgale/onenight/internal/models"
)

// catalog is the full ordered card set. The two Werewolf and two Mason cards
// share a name and order key on purpose: the scheduler folds consecutive
// same-named entries into one combined turn. Roles with order <= 0 never get
// a night turn.
var catalog = []models.Role{
	{
		ID:         models.RoleDoppelganger,
		Name:       "Doppelganger",
		Key:        "doppelganger",
		Team:       models.TeamUnknown,
		Order:      1,
		Directions: "Doppelganger, click another player to select that card. You are now that role.",
	},
	{
		ID:         models.RoleWerewolf,
		Name:       "Werewolf",
		Key:        "werewolf_1",
		Team:       models.TeamWerewolf,
		Order:      10,
		Directions: "If there is only one Werewolf, you may look at a card from the center.",
		Doppel:     true,
	},
	{
		ID:         models.RoleWerewolf,
		Name:       "Werewolf",
		Key:        "werewolf_2",
		Team:       models.TeamWerewolf,
		Order:      10,
		Directions: "If there is only one Werewolf, you may look at a card from the center.",
		Doppel:     true,
	},
	{
		ID:         models.RoleMysticWolf,
		Name:       "Mystic Wolf",
		Key:        "mystic_wolf",
		Team:       models.TeamWerewolf,
		Order:      20,
		Directions: "You may view another player's card.",
		Doppel:     true,
	},
	{
		ID:         models.RoleMinion,
		Name:       "Minion",
		Key:        "minion",
		Team:       models.TeamWerewolfAlly,
		Order:      30,
		Directions: "You may now see the other werewolves",
		Doppel:     true,
	},
	{
		ID:         models.RoleMason,
		Name:       "Mason",
		Key:        "mason_1",
		Team:       models.TeamVillager,
		Order:      40,
		Directions: "Wake up and view the other mason.",
		Doppel:     true,
	},
	{
		ID:         models.RoleMason,
		Name:       "Mason",
		Key:        "mason_2",
		Team:       models.TeamVillager,
		Order:      40,
		Directions: "Wake up and view the other mason.",
		Doppel:     true,
	},
	{
		ID:         models.RoleSeer,
		Name:       "Seer",
		Key:        "seer",
		Team:       models.TeamVillager,
		Order:      50,
		Directions: "You may view another player's card, or two from the center.",
		Doppel:     true,
	},
	{
		ID:         models.RoleApprenticeSeer,
		Name:       "Apprentice Seer",
		Key:        "apprentice_seer",
		Team:       models.TeamVillager,
		Order:      55,
		Directions: "You may view one card from the center.",
		Doppel:     true,
	},
	{
		ID:         models.RoleRobber,
		Name:       "Robber",
		Key:        "robber",
		Team:       models.TeamVillager,
		Order:      60,
		Directions: "Click on another player to exchange your card with that players card.",
		Doppel:     true,
	},
	{
		ID:         models.RoleTroublemaker,
		Name:       "Troublemaker",
		Key:        "troublemaker",
		Team:       models.TeamVillager,
		Order:      70,
		Directions: "You may switch two other players cards.",
		Doppel:     true,
	},
	{
		ID:         models.RoleDrunk,
		Name:       "Drunk",
		Key:        "drunk",
		Team:       models.TeamVillager,
		Order:      80,
		Directions: "Exchange your card with a card from the center.",
		Doppel:     true,
	},
	{
		ID:         models.RoleInsomniac,
		Name:       "Insomniac",
		Key:        "insomniac",
		Team:       models.TeamVillager,
		Order:      90,
		Directions: "View your card.",
		Doppel:     true,
	},
	{
		ID:    models.RoleHunter,
		Name:  "Hunter",
		Key:   "hunter",
		Team:  models.TeamVillager,
		Order: -1,
	},
	{
		ID:    models.RoleTanner,
		Name:  "Tanner",
		Key:   "tanner",
		Team:  models.TeamSelf,
		Order: -1,
	},
	{
		ID:    models.RoleVillager,
		Name:  "Villager",
		Key:   "villager",
		Team:  models.TeamVillager,
		Order: -1,
	},
}

// Catalog returns a copy of the full card set in catalog order.
func Catalog() []models.Role {
	out := make([]models.Role, len(catalog))
	copy(out, catalog)
	return out
}

// ByKey looks up a catalog card by its unique key.
func ByKey(key string) (models.Role, bool) {
	for _, r := range catalog {
		if r.Key == key {
			return r, true
		}
	}
	return models.Role{}, false
}

// ByName looks up the first catalog card with the given display name.
func ByName(name string) (models.Role, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return models.Role{}, false
}

// Expand derives the night turn sequence from a pre-expansion selection.
// When a Doppelganger is in play, a synthetic "Doppelganger Insomniac" slot is
// inserted right after the Insomniac with order = insomniac order + 1. Only
// the Insomniac gets a dedicated doppelganger slot; every other copied role
// acts during the Doppelganger's own turn. Roles without a night order are
// dropped, and the result is sorted ascending by order.
func Expand(selected []models.Role) []models.Role {
	hasDoppelganger := false
	for _, r := range selected {
		if r.ID == models.RoleDoppelganger {
			hasDoppelganger = true
			break
		}
	}

	expanded := make([]models.Role, 0, len(selected)+1)
	for _, r := range selected {
		if r.Order <= 0 {
			continue
		}
		expanded = append(expanded, r)
		if hasDoppelganger && r.ID == models.RoleInsomniac {
			copied := r.CopyForDoppelganger()
			copied.Order = r.Order + 1
			expanded = append(expanded, copied)
		}
	}

	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].Order < expanded[j].Order
	})

	return expanded
}
