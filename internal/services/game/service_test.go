package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	sessionmock "github.com/maxgale/onenight/internal/repositories/session/mocks"
	statsmock "github.com/maxgale/onenight/internal/repositories/stats/mocks"

	"github.com/maxgale/onenight/internal/common/shortid"
	"github.com/maxgale/onenight/internal/deal"
	"github.com/maxgale/onenight/internal/models"
)

type serviceSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	sessionRepo *sessionmock.MockRepository
	statsRepo   *statsmock.MockRepository
	registry    *Registry
	svc         *service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceSuite))
}

func (s *serviceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessionRepo = sessionmock.NewMockRepository(s.ctrl)
	s.statsRepo = statsmock.NewMockRepository(s.ctrl)
	s.registry = NewRegistry()
	s.ctx = context.Background()

	svc, err := New(&Config{
		SessionRepo: s.sessionRepo,
		StatsRepo:   s.statsRepo,
		Shuffler:    deal.New(&deal.Config{Seed: 42}),
		ShortID:     shortid.New(&shortid.Config{Seed: 7}),
		Registry:    s.registry,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *serviceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// allowPersistence stubs out the write-through persistence, which the engine
// treats as best-effort.
func (s *serviceSuite) allowPersistence() {
	s.sessionRepo.EXPECT().SaveConfig(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.sessionRepo.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.sessionRepo.EXPECT().SaveCharacters(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.sessionRepo.EXPECT().SaveRoster(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.sessionRepo.EXPECT().AppendLog(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// seedSession injects a session directly so tests can start at a chosen turn
// without racing the real timers.
func (s *serviceSuite) seedSession(cfg *models.GameConfig, players []*models.Player, middle []models.Role, idx int) *gameSession {
	characterMap := make(map[string]models.Role, len(players))
	for _, p := range players {
		characterMap[p.ID] = p.Role
	}
	sess := newGameSession(cfg, players, characterMap, middle)
	sess.state.CurrentIdx = idx
	s.registry.add(sess)
	return sess
}

func (s *serviceSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{StatsRepo: s.statsRepo})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.sessionRepo})
	s.ErrorIs(err, ErrNilStatsRepo)
}

func (s *serviceSuite) TestStartGameDealsAndRegisters() {
	s.allowPersistence()
	s.sessionRepo.EXPECT().DeleteGame(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	out, err := s.svc.StartGame(s.ctx, &StartGameInput{
		RoomID: "room",
		Players: []Seat{
			{PlayerID: "p1", Name: "alice"},
			{PlayerID: "p2", Name: "bob"},
			{PlayerID: "p3", Name: "carol"},
		},
		RoleKeys: []string{"werewolf_1", "seer", "robber", "villager", "troublemaker", "drunk"},
	})

	s.Require().NoError(err)
	s.True(strings.HasPrefix(out.GameID, "room-"))
	s.Len(out.GameID, len("room-")+shortid.Length)
	s.Len(out.Deals, 3)
	s.Equal(1, s.registry.Len())

	// Every dealt role comes from the selection.
	for _, role := range out.Deals {
		s.Contains([]string{"werewolf_1", "seer", "robber", "villager", "troublemaker", "drunk"}, role.Key)
	}

	// Night sequence excludes the villager.
	s.Len(out.Config.Roles, 5)
	s.Equal(defaultSecondsPerCharacter, out.Config.SecondsPerCharacter)
	s.Equal(defaultSecondsToConference, out.Config.SecondsToConference)

	_, err = s.svc.CancelGame(s.ctx, &CancelGameInput{GameID: out.GameID})
	s.Require().NoError(err)
}

func (s *serviceSuite) TestStartGameValidation() {
	_, err := s.svc.StartGame(s.ctx, &StartGameInput{RoomID: "room"})
	s.ErrorIs(err, ErrNoPlayers)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{
		RoomID:   "room",
		Players:  []Seat{{PlayerID: "p1", Name: "alice"}},
		RoleKeys: []string{"seer", "villager"},
	})
	s.ErrorIs(err, ErrRoleCount)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{
		RoomID:   "room",
		Players:  []Seat{{PlayerID: "p1", Name: "alice"}},
		RoleKeys: []string{"seer", "villager", "drunk", "dragon"},
	})
	s.ErrorIs(err, ErrUnknownRoleKey)
}

func (s *serviceSuite) TestHandleActionGameNotFound() {
	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{GameID: "room-nope", PlayerID: "p1"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *serviceSuite) TestHandleActionSeerActsOnce() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_1"),
		newTestPlayer(s.T(), "p3", "carol", "robber"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	sess := s.seedSession(cfg, players, middle, turnIdx(s.T(), cfg, "Seer"))

	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{Players: []string{"p2"}},
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.Equal("You saw the Werewolf.", out.Message)
	s.Require().Len(out.Result, 1)
	s.Nil(out.StartingRole)

	// The receipt blocks a repeat within the same turn.
	out, err = s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{Players: []string{"p3"}},
	})
	s.Require().NoError(err)
	s.False(out.Accepted)

	s.Len(sess.log, 1)
	s.Equal("alice", sess.log[0].PlayerName)
	s.Equal("Seer", sess.log[0].RoleName)
}

func (s *serviceSuite) TestHandleActionIneligibleIsNotAnError() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "robber"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, turnIdx(s.T(), cfg, "Seer"))

	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p2",
		Request:  &models.ActionRequest{Players: []string{"p1"}},
	})

	s.Require().NoError(err)
	s.False(out.Accepted)
}

func (s *serviceSuite) TestHandleActionInvalidSelectionKeepsTurnOpen() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "robber"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, turnIdx(s.T(), cfg, "Seer"))

	_, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{},
	})
	s.ErrorIs(err, ErrInvalidSelection)

	// The botched request consumed nothing; a valid retry still lands.
	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{MiddleCards: []int{0, 1}},
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
}

func (s *serviceSuite) TestHandleActionDoppelgangerTransform() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "doppelganger", "seer", "robber", "werewolf_1", "villager", "troublemaker")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "doppelganger"),
		newTestPlayer(s.T(), "p2", "bob", "seer"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "robber")
	s.seedSession(cfg, players, middle, turnIdx(s.T(), cfg, "Doppelganger"))

	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{Players: []string{"p2"}},
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.Require().NotNil(out.StartingRole)
	s.Equal("Doppelganger Seer", out.StartingRole.Name)

	// The transformed copy chains straight into the seer action.
	out, err = s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{MiddleCards: []int{0, 1}},
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.Nil(out.StartingRole)
}

func (s *serviceSuite) TestAdvanceTurnCollapsesDuplicateCards() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "werewolf_1", "werewolf_2", "seer", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "werewolf_1"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_2"),
		newTestPlayer(s.T(), "p3", "carol", "seer"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, -1)

	out, err := s.svc.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Equal(0, out.State.CurrentIdx)
	s.Equal("Werewolf", cfg.Roles[out.State.CurrentIdx].Name)

	// Both werewolf cards share one turn; the next advance skips to the seer.
	out, err = s.svc.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Equal("Seer", cfg.Roles[out.State.CurrentIdx].Name)
}

func (s *serviceSuite) TestAdvancePastLastTurnBeginsDay() {
	s.allowPersistence()
	s.statsRepo.EXPECT().RecordGame(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_1"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	sess := s.seedSession(cfg, players, middle, len(cfg.Roles)-1)

	out, err := s.svc.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Equal(len(cfg.Roles), out.State.CurrentIdx)
	s.False(out.State.DayEndsAt.IsZero())
	s.False(sess.dayEnd.IsZero())

	s.sessionRepo.EXPECT().DeleteGame(gomock.Any(), gomock.Any()).Return(nil)
	_, err = s.svc.CancelGame(s.ctx, &CancelGameInput{GameID: cfg.GameID})
	s.Require().NoError(err)
}

func (s *serviceSuite) TestCastVoteBeforeDayRejected() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_1"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, 0)

	_, err := s.svc.CastVote(s.ctx, &CastVoteInput{GameID: cfg.GameID, PlayerID: "p1", Target: "p2"})
	s.ErrorIs(err, ErrNotDayPhase)
}

func (s *serviceSuite) TestCastVoteAllVotedFinishesGame() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_1"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, len(cfg.Roles))

	s.statsRepo.EXPECT().RecordGame(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	out, err := s.svc.CastVote(s.ctx, &CastVoteInput{GameID: cfg.GameID, PlayerID: "p1", Target: "p2"})
	s.Require().NoError(err)
	s.Equal("bob", out.Vote)
	s.False(out.AllVoted)

	out, err = s.svc.CastVote(s.ctx, &CastVoteInput{GameID: cfg.GameID, PlayerID: "p2", Target: models.VoteMiddle})
	s.Require().NoError(err)
	s.Equal(models.VoteMiddle, out.Vote)
	s.True(out.AllVoted)

	// The finished session is gone.
	s.Equal(0, s.registry.Len())
	_, err = s.svc.CastVote(s.ctx, &CastVoteInput{GameID: cfg.GameID, PlayerID: "p1", Target: "p2"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *serviceSuite) TestPauseSuspendsTimersNotActions() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
		newTestPlayer(s.T(), "p2", "bob", "werewolf_1"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	sess := s.seedSession(cfg, players, middle, turnIdx(s.T(), cfg, "Seer"))

	_, err := s.svc.PauseGame(s.ctx, &PauseGameInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.True(sess.state.Paused)

	// Pausing freezes the clock, not the players.
	out, err := s.svc.HandleAction(s.ctx, &HandleActionInput{
		GameID:   cfg.GameID,
		PlayerID: "p1",
		Request:  &models.ActionRequest{Players: []string{"p2"}},
	})
	s.Require().NoError(err)
	s.True(out.Accepted)

	// The debug advance is a timer stand-in, so it respects the pause.
	advOut, err := s.svc.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Equal(turnIdx(s.T(), cfg, "Seer"), advOut.State.CurrentIdx)

	_, err = s.svc.ResumeGame(s.ctx, &ResumeGameInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.False(sess.state.Paused)

	// The advance path works again after resume.
	advOut, err = s.svc.AdvanceTurn(s.ctx, &AdvanceTurnInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Greater(advOut.State.CurrentIdx, turnIdx(s.T(), cfg, "Seer"))
}

func (s *serviceSuite) TestCancelGameDeletesRecords() {
	s.allowPersistence()

	cfg := newTestConfig(s.T(), "room-abc123", "seer", "robber", "werewolf_1", "villager", "troublemaker", "drunk")
	players := []*models.Player{
		newTestPlayer(s.T(), "p1", "alice", "seer"),
	}
	middle := rolesByKeys(s.T(), "villager", "troublemaker", "drunk")
	s.seedSession(cfg, players, middle, 0)

	s.sessionRepo.EXPECT().DeleteGame(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := s.svc.CancelGame(s.ctx, &CancelGameInput{GameID: cfg.GameID})
	s.Require().NoError(err)
	s.Equal(0, s.registry.Len())

	_, err = s.svc.CancelGame(s.ctx, &CancelGameInput{GameID: cfg.GameID})
	s.ErrorIs(err, ErrGameNotFound)
}
