package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/common/clock"
	"github.com/maxgale/onenight/internal/common/shortid"
	"github.com/maxgale/onenight/internal/deal"
	"github.com/maxgale/onenight/internal/models"
	"github.com/maxgale/onenight/internal/repositories/session"
	"github.com/maxgale/onenight/internal/repositories/stats"
	"github.com/maxgale/onenight/internal/roles"
)

const (
	// startBuffer is the pause between dealing and the first night turn, so
	// players can read their card.
	startBuffer = 5 * time.Second

	// doppelgangerAllowance extends the Doppelganger turn, since she may
	// need to take a second action after transforming.
	doppelgangerAllowance = 10 * time.Second

	defaultSecondsPerCharacter = 15
	defaultSecondsToConference = 300
)

type service struct {
	sessionRepo session.Repository
	statsRepo   stats.Repository
	shuffler    *deal.Shuffler
	shortID     *shortid.Generator
	clock       clock.Clock
	registry    *Registry
	broadcaster Broadcaster
}

// Config holds dependencies for the game service
type Config struct {
	SessionRepo session.Repository
	StatsRepo   stats.Repository

	// Optional. Defaults are created when nil.
	Shuffler *deal.Shuffler
	ShortID  *shortid.Generator
	Clock    clock.Clock
	Registry *Registry
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	svc := &service{
		sessionRepo: cfg.SessionRepo,
		statsRepo:   cfg.StatsRepo,
		shuffler:    cfg.Shuffler,
		shortID:     cfg.ShortID,
		clock:       cfg.Clock,
		registry:    cfg.Registry,
		broadcaster: noopBroadcaster{},
	}
	if svc.shuffler == nil {
		svc.shuffler = deal.New(nil)
	}
	if svc.shortID == nil {
		svc.shortID = shortid.New(nil)
	}
	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}
	if svc.registry == nil {
		svc.registry = NewRegistry()
	}

	return svc, nil
}

// SetBroadcaster wires the transport layer in. Call it before serving
// traffic; it is not safe to swap while games are running.
func (s *service) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = noopBroadcaster{}
	}
	s.broadcaster = b
}

func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}
	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(input.RoleKeys) != len(input.Players)+models.MiddleSize {
		return nil, ErrRoleCount
	}

	selection := make([]models.Role, 0, len(input.RoleKeys))
	for _, key := range input.RoleKeys {
		role, ok := roles.ByKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoleKey, key)
		}
		selection = append(selection, role)
	}

	gameID := fmt.Sprintf("%s-%s", input.RoomID, s.shortID.NewID())

	playerIDs := make([]string, 0, len(input.Players))
	for _, seat := range input.Players {
		playerIDs = append(playerIDs, seat.PlayerID)
	}
	characterMap, middle := s.shuffler.Deal(selection, playerIDs)

	players := make([]*models.Player, 0, len(input.Players))
	for _, seat := range input.Players {
		dealt := characterMap[seat.PlayerID]
		players = append(players, &models.Player{
			ID:           seat.PlayerID,
			Name:         seat.Name,
			StartingRole: dealt,
			Role:         dealt,
		})
	}

	cfg := &models.GameConfig{
		GameID:              gameID,
		RoomID:              input.RoomID,
		Roles:               roles.Expand(selection),
		OriginalRoles:       selection,
		SecondsPerCharacter: input.SecondsPerCharacter,
		SecondsToConference: input.SecondsToConference,
	}
	if cfg.SecondsPerCharacter <= 0 {
		cfg.SecondsPerCharacter = defaultSecondsPerCharacter
	}
	if cfg.SecondsToConference <= 0 {
		cfg.SecondsToConference = defaultSecondsToConference
	}

	sess := newGameSession(cfg, players, characterMap, middle)

	s.persistConfig(ctx, sess)
	s.persistState(ctx, sess)
	s.persistCharacters(ctx, sess)
	s.persistRoster(ctx, sess)

	s.registry.add(sess)
	sess.dispatch(func() {
		sess.schedule(startBuffer, func() {
			s.advance(sess)
		})
	})

	deals := make(map[string]models.Role, len(characterMap))
	for id, role := range characterMap {
		deals[id] = role
	}

	return &StartGameOutput{
		GameID: gameID,
		Config: cfg,
		Deals:  deals,
	}, nil
}

func (s *service) HandleAction(ctx context.Context, input *HandleActionInput) (*HandleActionOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	var out *HandleActionOutput
	var err error
	if !sess.dispatch(func() {
		out, err = s.handleAction(ctx, sess, input)
	}) {
		return nil, ErrGameNotFound
	}
	return out, err
}

func (s *service) handleAction(ctx context.Context, sess *gameSession, input *HandleActionInput) (*HandleActionOutput, error) {
	actor := sess.playerByID(input.PlayerID)
	if actor == nil {
		return nil, ErrPlayerNotFound
	}

	// Pause suspends only the turn timers; a player who still has their
	// window open may act.
	if !CanTakeAction(sess.cfg, sess.state, sess.players, actor, sess.gameID) {
		return &HandleActionOutput{Accepted: false}, nil
	}

	current := sess.cfg.Roles[sess.state.CurrentIdx]

	// The receipt is keyed on the pre-action starting role: the
	// doppelganger transformation rewrites it, which is what frees her
	// chained second action in the same turn slot.
	receipt := ActionReceipt(sess.gameID, current.Name, actor.StartingRole.Name)
	actingRole := actor.StartingRole.Name

	outcome, err := Resolve(sess.players, actor, input.Request, sess.middle)
	if err != nil {
		// Malformed selections leave the session untouched; the caller
		// may retry within the turn window.
		return nil, err
	}

	actor.TakeAction(receipt)

	entry := models.LogItem{
		PlayerName: actor.Name,
		RoleName:   actingRole,
		Message:    outcome.Message,
	}
	if input.Request != nil {
		for _, id := range input.Request.Players {
			entry.Targets = append(entry.Targets, sess.playerNameByID(id))
		}
		entry.MiddleIndices = input.Request.MiddleCards
	}
	sess.log = append(sess.log, entry)

	s.persistLog(ctx, sess, &entry)
	s.persistCharacters(ctx, sess)
	s.persistRoster(ctx, sess)

	out := &HandleActionOutput{
		Accepted: true,
		Message:  outcome.Message,
		Result:   outcome.Result,
		Info:     outcome.Info,
	}
	if outcome.Transformed {
		role := actor.StartingRole
		out.StartingRole = &role
	}
	return out, nil
}

func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	var out *CastVoteOutput
	var err error
	if !sess.dispatch(func() {
		out, err = s.castVote(ctx, sess, input)
	}) {
		return nil, ErrGameNotFound
	}
	return out, err
}

func (s *service) castVote(ctx context.Context, sess *gameSession, input *CastVoteInput) (*CastVoteOutput, error) {
	actor := sess.playerByID(input.PlayerID)
	if actor == nil {
		return nil, ErrPlayerNotFound
	}
	if !sess.state.IsDay(len(sess.cfg.Roles)) {
		return nil, ErrNotDayPhase
	}

	vote := models.VoteMiddle
	if input.Target != models.VoteMiddle {
		vote = sess.playerNameByID(input.Target)
		if vote == "" {
			return nil, ErrPlayerNotFound
		}
	}
	actor.Vote = vote

	s.persistRoster(ctx, sess)

	allVoted := sess.allVoted()
	if allVoted {
		s.finish(sess)
	}

	return &CastVoteOutput{Vote: vote, AllVoted: allVoted}, nil
}

func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	var out *AdvanceTurnOutput
	if !sess.dispatch(func() {
		if !sess.state.Paused {
			s.advance(sess)
		}
		state := *sess.state
		out = &AdvanceTurnOutput{State: &state}
	}) {
		return nil, ErrGameNotFound
	}
	return out, nil
}

func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	if !sess.dispatch(func() {
		if sess.state.Paused {
			return
		}
		sess.state.Paused = true
		sess.stopTimer()
		if sess.state.IsDay(len(sess.cfg.Roles)) {
			sess.remaining = sess.dayEnd.Sub(s.clock.Now())
			if sess.remaining < 0 {
				sess.remaining = 0
			}
		}
		s.persistState(ctx, sess)
		s.broadcaster.GamePaused(sess.gameID)
	}) {
		return nil, ErrGameNotFound
	}
	return &PauseGameOutput{}, nil
}

func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	out := &ResumeGameOutput{}
	if !sess.dispatch(func() {
		if !sess.state.Paused {
			return
		}
		sess.state.Paused = false

		switch {
		case sess.state.IsDay(len(sess.cfg.Roles)):
			// The conference deadline shifts by however long the
			// pause lasted.
			sess.dayEnd = s.clock.Now().Add(sess.remaining)
			sess.state.DayEndsAt = sess.dayEnd
			dayEnd := sess.dayEnd
			out.DayEndsAt = &dayEnd
			sess.schedule(sess.remaining, func() {
				s.finish(sess)
			})

		case sess.state.Started():
			// The current night turn restarts with a full window.
			d := time.Duration(sess.cfg.SecondsPerCharacter) * time.Second
			if cur, ok := sess.currentRole(); ok && cur.ID == models.RoleDoppelganger && !cur.IsDoppelgangerCopy() {
				d += doppelgangerAllowance
			}
			sess.schedule(d, func() {
				s.advance(sess)
			})

		default:
			sess.schedule(startBuffer, func() {
				s.advance(sess)
			})
		}

		s.persistState(ctx, sess)
		state := *sess.state
		s.broadcaster.GameResumed(sess.gameID, &state)
	}) {
		return nil, ErrGameNotFound
	}
	return out, nil
}

func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	sess, ok := s.registry.get(input.GameID)
	if !ok {
		return nil, ErrGameNotFound
	}

	if !sess.dispatch(func() {
		sess.end()
	}) {
		return nil, ErrGameNotFound
	}
	s.registry.remove(sess.gameID)

	// A cancelled game's records have no replay value.
	if err := s.sessionRepo.DeleteGame(ctx, &session.DeleteGameInput{GameID: sess.gameID}); err != nil {
		zap.L().Warn("delete game records failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}

	return &CancelGameOutput{}, nil
}

// advance moves the session to its next turn. It runs on the session
// goroutine, either from the turn timer or from the debug operation.
func (s *service) advance(sess *gameSession) {
	n := len(sess.cfg.Roles)
	if sess.state.IsDay(n) {
		return
	}

	prevName := ""
	if sess.state.Started() {
		prevName = sess.cfg.Roles[sess.state.CurrentIdx].Name
	}

	// Duplicate cards (the two Werewolves, the two Masons) share one
	// combined turn, so consecutive same-named slots collapse.
	idx := sess.state.CurrentIdx + 1
	for idx < n && sess.cfg.Roles[idx].Name == prevName {
		idx++
	}
	sess.state.CurrentIdx = idx

	if idx >= n {
		s.beginDay(sess)
		return
	}

	current := sess.cfg.Roles[idx]

	d := time.Duration(sess.cfg.SecondsPerCharacter) * time.Second
	if current.ID == models.RoleDoppelganger && !current.IsDoppelgangerCopy() {
		d += doppelgangerAllowance
	}
	sess.schedule(d, func() {
		s.advance(sess)
	})

	s.persistState(context.Background(), sess)

	infos := make(map[string]*models.TurnInfo, len(sess.players))
	for _, p := range sess.players {
		infos[p.ID] = TurnInfo(current, sess.players, p)
	}
	state := *sess.state
	s.broadcaster.TurnChanged(sess.gameID, &state, infos)
}

func (s *service) beginDay(sess *gameSession) {
	d := time.Duration(sess.cfg.SecondsToConference) * time.Second
	sess.dayStart = s.clock.Now()
	sess.dayEnd = sess.dayStart.Add(d)
	sess.state.DayEndsAt = sess.dayEnd

	sess.schedule(d, func() {
		s.finish(sess)
	})

	s.persistState(context.Background(), sess)

	infos := make(map[string]*models.TurnInfo, len(sess.players))
	for _, p := range sess.players {
		dayEnd := sess.dayEnd
		infos[p.ID] = &models.TurnInfo{ConferenceEndTime: &dayEnd}
	}
	state := *sess.state
	s.broadcaster.TurnChanged(sess.gameID, &state, infos)
}

// finish computes and broadcasts the result, records stats, and tears the
// session down. Session records stay in redis for replay; only cancellation
// deletes them.
func (s *service) finish(sess *gameSession) {
	if sess.ended {
		return
	}

	result := ComputeResult(sess.players, sess.middle, sess.log)

	sess.end()
	s.registry.remove(sess.gameID)

	s.broadcaster.GameEnded(sess.gameID, result)
	s.recordStats(sess, result)
}

func (s *service) recordStats(sess *gameSession, result *models.GameResult) {
	winners := make(map[models.Team]bool, len(result.WinningTeams))
	for _, t := range result.WinningTeams {
		winners[t] = true
	}

	outcomes := make([]stats.PlayerOutcome, 0, len(sess.players))
	for _, p := range sess.players {
		final := result.CharacterResults[p.Name]
		outcomes = append(outcomes, stats.PlayerOutcome{
			PlayerName: p.Name,
			RoleName:   final.Name,
			Team:       final.Team.String(),
			Won:        winners[final.Team],
			Executed:   containsExecuted(result.Executed, p.Name),
		})
	}

	err := s.statsRepo.RecordGame(context.Background(), &stats.RecordGameInput{
		GameID:   sess.gameID,
		Outcomes: outcomes,
	})
	if err != nil {
		zap.L().Warn("record game stats failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}

func (s *service) persistConfig(ctx context.Context, sess *gameSession) {
	if err := s.sessionRepo.SaveConfig(ctx, &session.SaveConfigInput{Config: sess.cfg}); err != nil {
		zap.L().Warn("persist config failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}

func (s *service) persistState(ctx context.Context, sess *gameSession) {
	state := *sess.state
	if err := s.sessionRepo.SaveState(ctx, &session.SaveStateInput{GameID: sess.gameID, State: &state}); err != nil {
		zap.L().Warn("persist state failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}

func (s *service) persistCharacters(ctx context.Context, sess *gameSession) {
	record := &models.CharacterRecord{
		CharacterMap: make(map[string]models.Role, len(sess.players)),
		MiddleCards:  sess.middle,
	}
	for _, p := range sess.players {
		record.CharacterMap[p.ID] = p.Role
	}
	if err := s.sessionRepo.SaveCharacters(ctx, &session.SaveCharactersInput{GameID: sess.gameID, Characters: record}); err != nil {
		zap.L().Warn("persist characters failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}

func (s *service) persistRoster(ctx context.Context, sess *gameSession) {
	if err := s.sessionRepo.SaveRoster(ctx, &session.SaveRosterInput{GameID: sess.gameID, Players: sess.players}); err != nil {
		zap.L().Warn("persist roster failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}

func (s *service) persistLog(ctx context.Context, sess *gameSession, entry *models.LogItem) {
	if err := s.sessionRepo.AppendLog(ctx, &session.AppendLogInput{GameID: sess.gameID, Entry: entry}); err != nil {
		zap.L().Warn("persist log entry failed",
			zap.String("gameId", sess.gameID),
			zap.Error(err))
	}
}
