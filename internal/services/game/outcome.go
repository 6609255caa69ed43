package game

import "github.com/maxgale/onenight/internal/models"

// ComputeResult tallies votes and determines the winning teams once the day
// phase ends. It reads the roster but does not mutate it.
func ComputeResult(players []*models.Player, middle []models.Role, log []models.LogItem) *models.GameResult {
	// A doppelganger is scored as whatever she ended the game holding, so
	// whoever still holds the literal Doppelganger card is rewritten to her
	// final transformed role (the card may have been swapped away from her).
	var doppelganger *models.Role
	for _, p := range players {
		if p.StartingRole.IsDoppelgangerCopy() {
			role := p.StartingRole
			doppelganger = &role
			break
		}
	}

	final := make(map[string]models.Role, len(players))
	for _, p := range players {
		role := p.Role
		if doppelganger != nil && role.ID == models.RoleDoppelganger {
			role = *doppelganger
		}
		final[p.Name] = role
	}

	// Middle and no-shows count in the tally but are never candidates.
	votes := make(map[string]int)
	for _, p := range players {
		if p.Vote != "" {
			votes[p.Vote]++
		}
	}

	maxVotes := 0
	for _, p := range players {
		if n := votes[p.Name]; n > maxVotes {
			maxVotes = n
		}
	}

	// A single vote never executes anyone, which also covers the
	// everyone-got-one-vote circle.
	executed := []models.ExecutedPlayer{}
	if maxVotes > 1 {
		for _, p := range players {
			if votes[p.Name] == maxVotes {
				executed = append(executed, models.ExecutedPlayer{Name: p.Name})
			}
		}
	}

	// A dead Hunter drags their own vote target along, even with zero
	// direct votes. One level only: a retaliation victim who is also a
	// Hunter does not chain further.
	for _, e := range append([]models.ExecutedPlayer(nil), executed...) {
		if final[e.Name].ID != models.RoleHunter {
			continue
		}
		target := voteOf(players, e.Name)
		if target == "" || target == models.VoteMiddle {
			continue
		}
		if _, isPlayer := final[target]; !isPlayer {
			continue
		}
		if containsExecuted(executed, target) {
			continue
		}
		executed = append(executed, models.ExecutedPlayer{Name: target, ByHunter: true})
	}

	return &models.GameResult{
		CharacterResults: final,
		MiddleCards:      middle,
		Votes:            votes,
		Executed:         executed,
		WinningTeams:     winningTeams(players, final, executed),
		Log:              log,
	}
}

func winningTeams(players []*models.Player, final map[string]models.Role, executed []models.ExecutedPlayer) []models.Team {
	var werewolfExists, allyExists bool
	for _, p := range players {
		switch final[p.Name].Team {
		case models.TeamWerewolf:
			werewolfExists = true
		case models.TeamWerewolfAlly:
			allyExists = true
		}
	}

	var werewolfExecuted, allyExecuted, villagerExecuted, tannerExecuted bool
	for _, e := range executed {
		switch final[e.Name].Team {
		case models.TeamWerewolf:
			werewolfExecuted = true
		case models.TeamWerewolfAlly:
			allyExecuted = true
		case models.TeamVillager:
			villagerExecuted = true
		case models.TeamSelf:
			tannerExecuted = true
		}
	}

	winners := []models.Team{}

	// The tanner winning does not block a villager win, but it does block
	// the werewolf and minion branches.
	if tannerExecuted {
		winners = append(winners, models.TeamSelf)
	}

	switch {
	case werewolfExecuted || (!werewolfExists && !villagerExecuted && !tannerExecuted):
		winners = append(winners, models.TeamVillager)
	case werewolfExists && !werewolfExecuted && !tannerExecuted:
		winners = append(winners, models.TeamWerewolf)
	case !werewolfExists && allyExists && !allyExecuted && villagerExecuted && !tannerExecuted:
		winners = append(winners, models.TeamWerewolfAlly)
	}

	return winners
}

func voteOf(players []*models.Player, name string) string {
	for _, p := range players {
		if p.Name == name {
			return p.Vote
		}
	}
	return ""
}

func containsExecuted(executed []models.ExecutedPlayer, name string) bool {
	for _, e := range executed {
		if e.Name == name {
			return true
		}
	}
	return false
}
