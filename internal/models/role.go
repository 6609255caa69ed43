package models

import "strings"

// RoleID identifies a role's behavior. A doppelganger copy of a role keeps the
// base role's ID so action dispatch and disclosure rules fall through to the
// base behavior; only the display name carries the prefix.
type RoleID string

const (
	RoleDoppelganger   RoleID = "doppelganger"
	RoleWerewolf       RoleID = "werewolf"
	RoleMysticWolf     RoleID = "mystic_wolf"
	RoleMinion         RoleID = "minion"
	RoleMason          RoleID = "mason"
	RoleSeer           RoleID = "seer"
	RoleApprenticeSeer RoleID = "apprentice_seer"
	RoleRobber         RoleID = "robber"
	RoleTroublemaker   RoleID = "troublemaker"
	RoleDrunk          RoleID = "drunk"
	RoleInsomniac      RoleID = "insomniac"
	RoleHunter         RoleID = "hunter"
	RoleTanner         RoleID = "tanner"
	RoleVillager       RoleID = "villager"
)

// Team is the winning-condition grouping a role belongs to.
type Team int

const (
	TeamUnknown Team = iota
	TeamWerewolf
	TeamWerewolfAlly
	TeamVillager
	TeamSelf // wins alone (Tanner)
)

// String returns the display name for a team.
func (t Team) String() string {
	switch t {
	case TeamWerewolf:
		return "Werewolf"
	case TeamWerewolfAlly:
		return "Werewolf Ally"
	case TeamVillager:
		return "Villager"
	case TeamSelf:
		return "Tanner"
	default:
		return "Unknown"
	}
}

// DoppelgangerPrefix is prepended to a role's name when the doppelganger
// copies it.
const DoppelgangerPrefix = "Doppelganger "

// Role is one card: a catalog entry, or a doppelganger copy of one.
type Role struct {
	// ID selects the role's behavior.
	ID RoleID `json:"id"`

	// Name is the display name. Catalog entries use the base name; a
	// doppelganger copy carries the "Doppelganger " prefix.
	Name string `json:"name"`

	// Key uniquely identifies the card within a catalog selection
	// (the two Werewolf cards share a name but not a key).
	Key string `json:"key"`

	Team Team `json:"team"`

	// Order is the night turn-order key. Roles with order <= 0 have no
	// night turn.
	Order int `json:"order"`

	// Directions is the night-turn prompt shown to the player.
	Directions string `json:"directions,omitempty"`

	// Doppel marks roles whose behavior the doppelganger can assume.
	Doppel bool `json:"doppel"`
}

// IsDoppelgangerCopy reports whether the role is a doppelganger's copy of a
// base role (as opposed to the Doppelganger card itself).
func (r Role) IsDoppelgangerCopy() bool {
	return r.ID != RoleDoppelganger && strings.HasPrefix(r.Name, DoppelgangerPrefix)
}

// CopyForDoppelganger returns a renamed copy of the role for a transforming
// doppelganger. The ID is kept so the copy behaves as the base role.
func (r Role) CopyForDoppelganger() Role {
	copied := r
	copied.Name = DoppelgangerPrefix + r.Name
	copied.Key = "doppelganger_" + r.Key
	return copied
}
