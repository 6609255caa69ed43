package ws

import (
	"sync"

	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/models"
)

// Hub tracks connected clients by room and routes engine broadcasts back to
// them. It implements the game service's Broadcaster interface.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room

	// games maps a running game id to its room id.
	games map[string]string
}

type room struct {
	id      string
	clients map[string]*client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]*room),
		games: make(map[string]string),
	}
}

func (h *Hub) join(c *client) {
	h.mu.Lock()
	r, ok := h.rooms[c.roomID]
	if !ok {
		r = &room{id: c.roomID, clients: make(map[string]*client)}
		h.rooms[c.roomID] = r
	}
	r.clients[c.playerID] = c
	refs := r.refs()
	h.mu.Unlock()

	h.toRoom(c.roomID, OutboundMessage{
		Event:   EventRoomUpdate,
		RoomID:  c.roomID,
		Players: refs,
	})
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	r, ok := h.rooms[c.roomID]
	if ok {
		delete(r.clients, c.playerID)
		if len(r.clients) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	var refs []models.PlayerRef
	if ok && len(r.clients) > 0 {
		refs = r.refs()
	}
	h.mu.Unlock()

	if refs != nil {
		h.toRoom(c.roomID, OutboundMessage{
			Event:   EventRoomUpdate,
			RoomID:  c.roomID,
			Players: refs,
		})
	}
}

// bindGame records which room a game runs in, so engine broadcasts can be
// routed without parsing the game id.
func (h *Hub) bindGame(gameID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.games[gameID] = roomID
}

func (h *Hub) unbindGame(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.games, gameID)
}

func (h *Hub) gameRoom(gameID string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	roomID, ok := h.games[gameID]
	return roomID, ok
}

// roomClients snapshots the room membership; the slice is unordered.
func (h *Hub) roomClients(roomID string) []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[roomID]
	if !ok {
		return nil
	}
	out := make([]*client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out
}

func (r *room) refs() []models.PlayerRef {
	refs := make([]models.PlayerRef, 0, len(r.clients))
	for _, c := range r.clients {
		refs = append(refs, models.PlayerRef{ID: c.playerID, Name: c.name})
	}
	return refs
}

// toRoom fans one message out to every client in the room.
func (h *Hub) toRoom(roomID string, msg OutboundMessage) {
	for _, c := range h.roomClients(roomID) {
		c.enqueue(msg)
	}
}

// toPlayer delivers a message to one client in the room, if connected.
func (h *Hub) toPlayer(roomID, playerID string, msg OutboundMessage) {
	h.mu.RLock()
	r, ok := h.rooms[roomID]
	var c *client
	if ok {
		c = r.clients[playerID]
	}
	h.mu.RUnlock()

	if c != nil {
		c.enqueue(msg)
	}
}

// TurnChanged implements game.Broadcaster. Disclosure payloads are private,
// so each player gets an individually assembled message.
func (h *Hub) TurnChanged(gameID string, state *models.GameState, infos map[string]*models.TurnInfo) {
	roomID, ok := h.gameRoom(gameID)
	if !ok {
		zap.L().Warn("turn broadcast for unbound game", zap.String("gameId", gameID))
		return
	}

	for _, c := range h.roomClients(roomID) {
		msg := OutboundMessage{
			Event:  EventTurn,
			GameID: gameID,
			State:  state,
			Info:   infos[c.playerID],
		}
		if !state.DayEndsAt.IsZero() {
			t := state.DayEndsAt
			msg.ConferenceEndTime = &t
		}
		c.enqueue(msg)
	}
}

// GameEnded implements game.Broadcaster. Results are public.
func (h *Hub) GameEnded(gameID string, result *models.GameResult) {
	roomID, ok := h.gameRoom(gameID)
	if !ok {
		return
	}
	h.toRoom(roomID, OutboundMessage{
		Event:      EventGameEnded,
		GameID:     gameID,
		GameResult: result,
	})
	h.unbindGame(gameID)
}

// GamePaused implements game.Broadcaster.
func (h *Hub) GamePaused(gameID string) {
	roomID, ok := h.gameRoom(gameID)
	if !ok {
		return
	}
	h.toRoom(roomID, OutboundMessage{Event: EventGamePaused, GameID: gameID})
}

// GameResumed implements game.Broadcaster.
func (h *Hub) GameResumed(gameID string, state *models.GameState) {
	roomID, ok := h.gameRoom(gameID)
	if !ok {
		return
	}
	h.toRoom(roomID, OutboundMessage{Event: EventGameResumed, GameID: gameID, State: state})
}
