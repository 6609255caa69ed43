package game

import "sync"

// Registry tracks the live game sessions for one process. It is created by
// the entry point and handed to the service; sessions are added on start and
// removed on cancel or natural end.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*gameSession
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*gameSession),
	}
}

func (r *Registry) add(sess *gameSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.gameID] = sess
}

func (r *Registry) get(gameID string) (*gameSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[gameID]
	return sess, ok
}

func (r *Registry) remove(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, gameID)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
