package models

// VoteMiddle is the vote value for abstaining to the middle.
const VoteMiddle = "middle"

// Player is one seat in a game session.
type Player struct {
	// ID is the stable player identity for the connection.
	ID string `json:"id"`

	// Name is the display name other players see.
	Name string `json:"name"`

	// StartingRole is the role dealt at the start of the night. It is
	// rewritten only by the doppelganger transformation.
	StartingRole Role `json:"startingRole"`

	// Role is the card the player currently holds; swap effects mutate it.
	Role Role `json:"role"`

	// ActionsTaken holds consumed action receipts, one per
	// (game, turn-role, starting-role) triple.
	ActionsTaken []string `json:"actionsTaken"`

	// Vote is the name of the voted player, VoteMiddle, or empty.
	Vote string `json:"vote"`
}

// HasTakenAction reports whether the player already consumed the receipt.
func (p *Player) HasTakenAction(receipt string) bool {
	for _, a := range p.ActionsTaken {
		if a == receipt {
			return true
		}
	}
	return false
}

// TakeAction records an action receipt.
func (p *Player) TakeAction(receipt string) {
	p.ActionsTaken = append(p.ActionsTaken, receipt)
}

// PlayerRef is the public projection of a player used in disclosure payloads
// and broadcast messages.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ref returns the public projection of the player.
func (p *Player) Ref() PlayerRef {
	return PlayerRef{ID: p.ID, Name: p.Name}
}
