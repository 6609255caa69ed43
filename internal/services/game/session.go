package game

import (
	"time"

	"github.com/maxgale/onenight/internal/models"
)

// gameSession owns one game's mutable state. Every mutation runs on the
// session's own event goroutine, so a pending timer and an incoming action
// for the same game are never interleaved at the data level.
type gameSession struct {
	gameID string
	roomID string

	cfg          *models.GameConfig
	state        *models.GameState
	players      []*models.Player
	characterMap map[string]models.Role
	middle       []models.Role
	log          []models.LogItem

	// events is unbuffered on purpose: a successful send is a rendezvous
	// with the loop, which guarantees the event runs to completion.
	events chan func()
	done   chan struct{}

	// ended is owned by the event goroutine. Events that slip in during
	// teardown see it set and no-op.
	ended bool

	// timer is the single pending deferred event: the next turn advance
	// during the night, the results computation during the day.
	timer *time.Timer

	dayStart  time.Time
	dayEnd    time.Time
	remaining time.Duration
}

func newGameSession(cfg *models.GameConfig, players []*models.Player, characterMap map[string]models.Role, middle []models.Role) *gameSession {
	sess := &gameSession{
		gameID:       cfg.GameID,
		roomID:       cfg.RoomID,
		cfg:          cfg,
		state:        &models.GameState{CurrentIdx: -1},
		players:      players,
		characterMap: characterMap,
		middle:       middle,
		events:       make(chan func()),
		done:         make(chan struct{}),
	}
	go sess.run()
	return sess
}

func (s *gameSession) run() {
	for {
		select {
		case fn := <-s.events:
			fn()
		case <-s.done:
			// Serve senders that raced with teardown; their events
			// no-op on the ended flag.
			for {
				select {
				case fn := <-s.events:
					fn()
				default:
					return
				}
			}
		}
	}
}

// dispatch runs fn on the session goroutine and waits for it to finish.
// It reports false when the session was already torn down.
func (s *gameSession) dispatch(fn func()) bool {
	ran := make(chan struct{})
	var ok bool
	wrapped := func() {
		defer close(ran)
		if s.ended {
			return
		}
		fn()
		ok = true
	}

	select {
	case s.events <- wrapped:
	case <-s.done:
		// The loop may still be draining; try once more without
		// blocking on a gone receiver.
		select {
		case s.events <- wrapped:
		default:
			return false
		}
	}

	<-ran
	return ok
}

// async queues fn without waiting; timer callbacks use it. Events queued
// after teardown are dropped.
func (s *gameSession) async(fn func()) {
	go func() {
		select {
		case s.events <- func() {
			if s.ended {
				return
			}
			fn()
		}:
		case <-s.done:
		}
	}()
}

// schedule replaces the pending deferred event.
func (s *gameSession) schedule(d time.Duration, fn func()) {
	s.stopTimer()
	s.timer = time.AfterFunc(d, func() {
		s.async(fn)
	})
}

func (s *gameSession) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// end stops the timer and marks the session finished. It must run on the
// event goroutine; the loop drains racing senders before exiting.
func (s *gameSession) end() {
	if s.ended {
		return
	}
	s.ended = true
	s.stopTimer()
	close(s.done)
}

func (s *gameSession) playerByID(id string) *models.Player {
	for _, p := range s.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *gameSession) playerNameByID(id string) string {
	if p := s.playerByID(id); p != nil {
		return p.Name
	}
	return ""
}

func (s *gameSession) allVoted() bool {
	for _, p := range s.players {
		if p.Vote == "" {
			return false
		}
	}
	return true
}

// currentRole returns the role whose turn it is, or false during setup and
// the day phase.
func (s *gameSession) currentRole() (models.Role, bool) {
	if !s.state.Started() || s.state.IsDay(len(s.cfg.Roles)) {
		return models.Role{}, false
	}
	return s.cfg.Roles[s.state.CurrentIdx], true
}
