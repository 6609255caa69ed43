package models

// ActionRequest is the selection a player submits for their night action.
type ActionRequest struct {
	// Players holds the ids of 0-2 selected other players.
	Players []string `json:"playersSelected,omitempty"`

	// MiddleCards holds 0-2 selected middle indices (0-2).
	MiddleCards []int `json:"middleCardsSelected,omitempty"`
}
