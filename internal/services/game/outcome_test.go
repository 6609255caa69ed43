package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/maxgale/onenight/internal/models"
)

type outcomeSuite struct {
	suite.Suite
}

func TestOutcomeSuite(t *testing.T) {
	suite.Run(t, new(outcomeSuite))
}

func (s *outcomeSuite) executedNames(result *models.GameResult) []string {
	names := make([]string, 0, len(result.Executed))
	for _, e := range result.Executed {
		names = append(names, e.Name)
	}
	return names
}

func (s *outcomeSuite) middle() []models.Role {
	return rolesByKeys(s.T(), "villager", "villager", "villager")
}

func (s *outcomeSuite) TestWerewolfExecutedVillagersWin() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	seer.Vote = "alice"
	villager.Vote = "alice"

	result := ComputeResult([]*models.Player{wolf, seer, villager}, s.middle(), nil)

	s.Equal([]string{"alice"}, s.executedNames(result))
	s.Equal([]models.Team{models.TeamVillager}, result.WinningTeams)
	s.Equal(2, result.Votes["alice"])
	s.Equal(1, result.Votes["bob"])
}

func (s *outcomeSuite) TestWerewolfSurvivesWolvesWin() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	seer.Vote = "bob"
	villager.Vote = "bob"

	result := ComputeResult([]*models.Player{wolf, seer, villager}, s.middle(), nil)

	s.Equal([]string{"bob"}, s.executedNames(result))
	s.Equal([]models.Team{models.TeamWerewolf}, result.WinningTeams)
}

func (s *outcomeSuite) TestOneVoteEachExecutesNobody() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	seer.Vote = "carol"
	villager.Vote = "alice"

	result := ComputeResult([]*models.Player{wolf, seer, villager}, s.middle(), nil)

	s.Empty(result.Executed)
	// The wolf walks free.
	s.Equal([]models.Team{models.TeamWerewolf}, result.WinningTeams)
}

func (s *outcomeSuite) TestAllMiddleVotesNoWolvesVillagersWin() {
	seer := newTestPlayer(s.T(), "p1", "alice", "seer")
	villager := newTestPlayer(s.T(), "p2", "bob", "villager")
	seer.Vote = models.VoteMiddle
	villager.Vote = models.VoteMiddle

	result := ComputeResult([]*models.Player{seer, villager}, s.middle(), nil)

	s.Empty(result.Executed)
	s.Equal([]models.Team{models.TeamVillager}, result.WinningTeams)
	// The middle tally is recorded but never executes anyone.
	s.Equal(2, result.Votes[models.VoteMiddle])
}

func (s *outcomeSuite) TestTieExecutesAllLeaders() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	v1 := newTestPlayer(s.T(), "p3", "carol", "villager")
	v2 := newTestPlayer(s.T(), "p4", "dave", "villager")
	wolf.Vote = "bob"
	seer.Vote = "alice"
	v1.Vote = "bob"
	v2.Vote = "alice"

	result := ComputeResult([]*models.Player{wolf, seer, v1, v2}, s.middle(), nil)

	s.Equal([]string{"alice", "bob"}, s.executedNames(result))
	// The wolf died in the tie, so the village still wins.
	s.Equal([]models.Team{models.TeamVillager}, result.WinningTeams)
}

func (s *outcomeSuite) TestTannerExecutedWinsAlone() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	tanner := newTestPlayer(s.T(), "p2", "bob", "tanner")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	tanner.Vote = "bob"
	villager.Vote = "bob"

	result := ComputeResult([]*models.Player{wolf, tanner, villager}, s.middle(), nil)

	s.Equal([]string{"bob"}, s.executedNames(result))
	// The tanner win blocks the surviving wolf.
	s.Equal([]models.Team{models.TeamSelf}, result.WinningTeams)
}

func (s *outcomeSuite) TestTannerAndWerewolfBothExecuted() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	tanner := newTestPlayer(s.T(), "p2", "bob", "tanner")
	v1 := newTestPlayer(s.T(), "p3", "carol", "villager")
	v2 := newTestPlayer(s.T(), "p4", "dave", "villager")
	wolf.Vote = "bob"
	tanner.Vote = "alice"
	v1.Vote = "alice"
	v2.Vote = "bob"

	result := ComputeResult([]*models.Player{wolf, tanner, v1, v2}, s.middle(), nil)

	s.Equal([]string{"alice", "bob"}, s.executedNames(result))
	// A dead wolf is a villager win even alongside the tanner's.
	s.Equal([]models.Team{models.TeamSelf, models.TeamVillager}, result.WinningTeams)
}

func (s *outcomeSuite) TestMinionWinsWhenVillagerDiesWithNoWolves() {
	minion := newTestPlayer(s.T(), "p1", "alice", "minion")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	minion.Vote = "carol"
	seer.Vote = "carol"
	villager.Vote = "bob"

	result := ComputeResult([]*models.Player{minion, seer, villager}, s.middle(), nil)

	s.Equal([]string{"carol"}, s.executedNames(result))
	s.Equal([]models.Team{models.TeamWerewolfAlly}, result.WinningTeams)
}

func (s *outcomeSuite) TestMinionExecutedVillagersWin() {
	minion := newTestPlayer(s.T(), "p1", "alice", "minion")
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")
	minion.Vote = "carol"
	seer.Vote = "alice"
	villager.Vote = "alice"

	result := ComputeResult([]*models.Player{minion, seer, villager}, s.middle(), nil)

	s.Equal([]string{"alice"}, s.executedNames(result))
	// No wolf in play and no villager died, so the village takes it.
	s.Equal([]models.Team{models.TeamVillager}, result.WinningTeams)
}

func (s *outcomeSuite) TestVillagerExecutedWithNoWolvesNobodyWins() {
	seer := newTestPlayer(s.T(), "p1", "alice", "seer")
	v1 := newTestPlayer(s.T(), "p2", "bob", "villager")
	v2 := newTestPlayer(s.T(), "p3", "carol", "villager")
	seer.Vote = "bob"
	v1.Vote = "alice"
	v2.Vote = "bob"

	result := ComputeResult([]*models.Player{seer, v1, v2}, s.middle(), nil)

	s.Equal([]string{"bob"}, s.executedNames(result))
	s.Empty(result.WinningTeams)
}

func (s *outcomeSuite) TestHunterDragsTargetAlong() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	hunter := newTestPlayer(s.T(), "p2", "bob", "hunter")
	v1 := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	hunter.Vote = "alice"
	v1.Vote = "bob"

	result := ComputeResult([]*models.Player{wolf, hunter, v1}, s.middle(), nil)

	s.Require().Len(result.Executed, 2)
	s.Equal("bob", result.Executed[0].Name)
	s.False(result.Executed[0].ByHunter)
	s.Equal("alice", result.Executed[1].Name)
	s.True(result.Executed[1].ByHunter)
	// The hunter's retaliation killed the wolf.
	s.Equal([]models.Team{models.TeamVillager}, result.WinningTeams)
}

func (s *outcomeSuite) TestHunterMiddleVoteDragsNobody() {
	wolf := newTestPlayer(s.T(), "p1", "alice", "werewolf_1")
	hunter := newTestPlayer(s.T(), "p2", "bob", "hunter")
	v1 := newTestPlayer(s.T(), "p3", "carol", "villager")
	wolf.Vote = "bob"
	hunter.Vote = models.VoteMiddle
	v1.Vote = "bob"

	result := ComputeResult([]*models.Player{wolf, hunter, v1}, s.middle(), nil)

	s.Equal([]string{"bob"}, s.executedNames(result))
	s.Equal([]models.Team{models.TeamWerewolf}, result.WinningTeams)
}

func (s *outcomeSuite) TestHunterChainStopsAtOneLevel() {
	h1 := newTestPlayer(s.T(), "p1", "alice", "hunter")
	h2 := newTestPlayer(s.T(), "p2", "bob", "hunter")
	wolf := newTestPlayer(s.T(), "p3", "carol", "werewolf_1")
	v1 := newTestPlayer(s.T(), "p4", "dave", "villager")
	h1.Vote = "bob"
	h2.Vote = "carol"
	wolf.Vote = "alice"
	v1.Vote = "alice"

	result := ComputeResult([]*models.Player{h1, h2, wolf, v1}, s.middle(), nil)

	// alice executed by vote; her target bob dragged along; bob is also a
	// hunter, but retaliation does not cascade to carol.
	s.Equal([]string{"alice", "bob"}, s.executedNames(result))
	s.Equal([]models.Team{models.TeamWerewolf}, result.WinningTeams)
}

func (s *outcomeSuite) TestHunterScoredOnFinalCard() {
	// The hunter card moved during the night: its holder retaliates, the
	// original hunter does not.
	robber := newTestPlayer(s.T(), "p1", "alice", "robber")
	hunter := newTestPlayer(s.T(), "p2", "bob", "hunter")
	wolf := newTestPlayer(s.T(), "p3", "carol", "werewolf_1")
	robber.Role, hunter.Role = hunter.Role, robber.Role

	robber.Vote = "carol"
	hunter.Vote = "alice"
	wolf.Vote = "alice"

	result := ComputeResult([]*models.Player{robber, hunter, wolf}, s.middle(), nil)

	s.Require().Len(result.Executed, 2)
	s.Equal("alice", result.Executed[0].Name)
	s.Equal("carol", result.Executed[1].Name)
	s.True(result.Executed[1].ByHunter)
	s.Equal(models.RoleHunter, result.CharacterResults["alice"].ID)
}

func (s *outcomeSuite) TestDoppelgangerCardScoredAsTransformedRole() {
	// The doppelganger copied the wolf, then her card was swapped away. The
	// player left holding the literal Doppelganger card is scored as a wolf.
	dopp := newTestPlayer(s.T(), "p1", "alice", "doppelganger")
	dopp.StartingRole = roleByKey(s.T(), "werewolf_1").CopyForDoppelganger()
	seer := newTestPlayer(s.T(), "p2", "bob", "seer")
	villager := newTestPlayer(s.T(), "p3", "carol", "villager")

	// The troublemaker effect moved the doppelganger card to bob.
	dopp.Role, seer.Role = seer.Role, dopp.Role

	dopp.Vote = "carol"
	seer.Vote = "carol"
	villager.Vote = "alice"

	result := ComputeResult([]*models.Player{dopp, seer, villager}, s.middle(), nil)

	s.Equal(models.RoleWerewolf, result.CharacterResults["bob"].ID)
	s.Equal("Doppelganger Werewolf", result.CharacterResults["bob"].Name)
	s.Equal(models.RoleSeer, result.CharacterResults["alice"].ID)

	s.Equal([]string{"carol"}, s.executedNames(result))
	// bob counts as a live wolf now.
	s.Equal([]models.Team{models.TeamWerewolf}, result.WinningTeams)
}

func (s *outcomeSuite) TestResultCarriesLogAndMiddle() {
	seer := newTestPlayer(s.T(), "p1", "alice", "seer")
	villager := newTestPlayer(s.T(), "p2", "bob", "villager")
	seer.Vote = models.VoteMiddle
	villager.Vote = models.VoteMiddle
	log := []models.LogItem{{PlayerName: "alice", RoleName: "Seer", Message: "You saw the Villager."}}
	middle := rolesByKeys(s.T(), "werewolf_2", "villager", "tanner")

	result := ComputeResult([]*models.Player{seer, villager}, middle, log)

	s.Equal(log, result.Log)
	s.Equal(middle, result.MiddleCards)
}
