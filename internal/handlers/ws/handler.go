package ws

import (
	"context"
	"net/http"
	"sort"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/common/uuid"
	"github.com/maxgale/onenight/internal/models"
	"github.com/maxgale/onenight/internal/services/game"
)

// HandlerError is a custom error type for websocket handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig  HandlerError = "config cannot be nil"
	ErrNilService HandlerError = "game service cannot be nil"
	ErrNilHub     HandlerError = "hub cannot be nil"
)

// Handler upgrades connections and routes inbound actions to the game
// service.
type Handler struct {
	svc      game.Service
	hub      *Hub
	uuid     uuid.UUID
	upgrader websocket.Upgrader
}

// Config holds dependencies for the websocket handler
type Config struct {
	Service game.Service
	Hub     *Hub

	// Optional. A default generator is created when nil.
	UUID uuid.UUID
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Service == nil {
		return nil, ErrNilService
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}

	gen := cfg.UUID
	if gen == nil {
		gen = uuid.New()
	}

	return &Handler{
		svc:  cfg.Service,
		hub:  cfg.Hub,
		uuid: gen,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP joins the caller to a room. Required query parameters: room and
// name.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	name := r.URL.Query().Get("name")
	if roomID == "" || name == "" {
		http.Error(w, "room and name are required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		handler:  h,
		conn:     conn,
		send:     make(chan OutboundMessage, sendBuffer),
		playerID: h.uuid.NewUUID(),
		name:     name,
		roomID:   roomID,
	}

	go c.writePump()
	c.enqueue(OutboundMessage{
		Event:    EventJoined,
		PlayerID: c.playerID,
		RoomID:   roomID,
	})
	h.hub.join(c)
	go c.readPump()

	zap.L().Info("player joined",
		zap.String("roomId", roomID),
		zap.String("playerId", c.playerID),
		zap.String("name", name))
}

func (h *Handler) handleMessage(c *client, msg *InboundMessage) {
	ctx := context.Background()

	switch msg.Action {
	case ActionStartGame:
		h.startGame(ctx, c, msg)

	case ActionCharacterAction:
		out, err := h.svc.HandleAction(ctx, &game.HandleActionInput{
			GameID:   msg.GameID,
			PlayerID: c.playerID,
			Request: &models.ActionRequest{
				Players:     msg.PlayersSelected,
				MiddleCards: msg.MiddleCardsSelected,
			},
		})
		if err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
			return
		}
		c.enqueue(OutboundMessage{
			Event:        EventActionResult,
			GameID:       msg.GameID,
			Accepted:     out.Accepted,
			Message:      out.Message,
			Result:       out.Result,
			Info:         out.Info,
			StartingRole: out.StartingRole,
		})

	case ActionCastVote:
		out, err := h.svc.CastVote(ctx, &game.CastVoteInput{
			GameID:   msg.GameID,
			PlayerID: c.playerID,
			Target:   msg.Target,
		})
		if err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
			return
		}
		c.enqueue(OutboundMessage{
			Event:    EventVoteRecorded,
			GameID:   msg.GameID,
			Vote:     out.Vote,
			AllVoted: out.AllVoted,
		})

	case ActionNextCharacter:
		if _, err := h.svc.AdvanceTurn(ctx, &game.AdvanceTurnInput{GameID: msg.GameID}); err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
		}

	case ActionPauseGame:
		if _, err := h.svc.PauseGame(ctx, &game.PauseGameInput{GameID: msg.GameID}); err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
		}

	case ActionResumeGame:
		if _, err := h.svc.ResumeGame(ctx, &game.ResumeGameInput{GameID: msg.GameID}); err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
		}

	case ActionCancelGame:
		if _, err := h.svc.CancelGame(ctx, &game.CancelGameInput{GameID: msg.GameID}); err != nil {
			c.enqueue(OutboundMessage{Event: EventError, GameID: msg.GameID, Error: err.Error()})
			return
		}
		h.hub.unbindGame(msg.GameID)

	default:
		c.enqueue(OutboundMessage{Event: EventError, Error: "unknown action"})
	}
}

// startGame seats everyone currently in the caller's room and starts a game
// with them.
func (h *Handler) startGame(ctx context.Context, c *client, msg *InboundMessage) {
	clients := h.hub.roomClients(c.roomID)
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].playerID < clients[j].playerID
	})

	seats := make([]game.Seat, 0, len(clients))
	for _, rc := range clients {
		seats = append(seats, game.Seat{PlayerID: rc.playerID, Name: rc.name})
	}

	out, err := h.svc.StartGame(ctx, &game.StartGameInput{
		RoomID:              c.roomID,
		Players:             seats,
		RoleKeys:            msg.RoleKeys,
		SecondsPerCharacter: msg.SecondsPerCharacter,
		SecondsToConference: msg.SecondsToConference,
	})
	if err != nil {
		c.enqueue(OutboundMessage{Event: EventError, Error: err.Error()})
		return
	}

	h.hub.bindGame(out.GameID, c.roomID)

	// Dealt cards are private; each player learns only their own.
	for _, rc := range clients {
		role := out.Deals[rc.playerID]
		h.hub.toPlayer(c.roomID, rc.playerID, OutboundMessage{
			Event:  EventGameStarted,
			GameID: out.GameID,
			RoomID: c.roomID,
			Role:   &role,
		})
	}

	zap.L().Info("game started",
		zap.String("gameId", out.GameID),
		zap.String("roomId", c.roomID),
		zap.Int("players", len(seats)))
}
