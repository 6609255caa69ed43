package stats

// PlayerOutcome is one player's line in a finished game.
type PlayerOutcome struct {
	PlayerName string
	RoleName   string
	Team       string
	Won        bool
	Executed   bool
}

type RecordGameInput struct {
	GameID   string
	Outcomes []PlayerOutcome
}

type GetLeaderboardInput struct {
	// Limit caps the number of rows; 0 means no cap.
	Limit int
}

// LeaderboardEntry is one row of the all-time standings.
type LeaderboardEntry struct {
	PlayerName  string `db:"player_name" json:"playerName"`
	GamesPlayed int    `db:"games_played" json:"gamesPlayed"`
	GamesWon    int    `db:"games_won" json:"gamesWon"`
	Executions  int    `db:"executions" json:"executions"`
}

type GetLeaderboardOutput struct {
	Entries []LeaderboardEntry
}
