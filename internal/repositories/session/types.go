package session

import "github.com/maxgale/onenight/internal/models"

type SaveConfigInput struct {
	Config *models.GameConfig
}

type GetConfigInput struct {
	GameID string
}

type SaveStateInput struct {
	GameID string
	State  *models.GameState
}

type GetStateInput struct {
	GameID string
}

type SaveCharactersInput struct {
	GameID     string
	Characters *models.CharacterRecord
}

type GetCharactersInput struct {
	GameID string
}

type AppendLogInput struct {
	GameID string
	Entry  *models.LogItem
}

type GetLogInput struct {
	GameID string
}

type SaveRosterInput struct {
	GameID  string
	Players []*models.Player
}

type GetRosterInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}
