// Package gateway is the per-connection protocol dispatcher. A single
// goroutine owns all command processing, so every mutation of room
// state happens one message at a time in arrival order.
package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adewitt76/LastLight/internal/game"
	"github.com/adewitt76/LastLight/internal/protocol"
	"github.com/adewitt76/LastLight/internal/store"
)

// Policy holds the gameplay knobs the gateway enforces.
type Policy struct {
	// MinPlayers is the roster size required before the host may
	// start a game.
	MinPlayers int
	// ResetDelay is how long a finished game is shown before the
	// room returns to the lobby.
	ResetDelay time.Duration
}

// session binds a connection to the player it controls and that
// player's room. It is the only mutable per-connection state.
type session struct {
	playerID   string
	roomID     string
	playerName string
}

type Gateway struct {
	inbox  chan Msg
	store  *store.RoomStore
	engine *game.Engine
	logger *zap.Logger
	policy Policy

	conns       map[string]chan protocol.ServerMessage // connID -> outbox
	sessions    map[string]*session                    // connID -> binding
	resetTimers map[string]*time.Timer                 // roomID -> pending reset

	ctx    context.Context
	cancel context.CancelFunc
}

func NewGateway(parent context.Context, st *store.RoomStore, eng *game.Engine, logger *zap.Logger, policy Policy) *Gateway {
	ctx, cancel := context.WithCancel(parent)

	g := &Gateway{
		inbox:       make(chan Msg, 64),
		store:       st,
		engine:      eng,
		logger:      logger,
		policy:      policy,
		conns:       make(map[string]chan protocol.ServerMessage),
		sessions:    make(map[string]*session),
		resetTimers: make(map[string]*time.Timer),
		ctx:         ctx,
		cancel:      cancel,
	}

	go g.loop()
	return g
}

// Inbox is where the transport layer (and tests) deliver commands.
func (g *Gateway) Inbox() chan<- Msg { return g.inbox }

func (g *Gateway) loop() {
	for {
		select {
		case <-g.ctx.Done():
			g.shutdown()
			return

		case m := <-g.inbox:
			switch msg := m.(type) {
			case Connect:
				g.conns[msg.ConnID] = msg.Outbox

			case Disconnect:
				g.handleLeave(msg.ConnID)
				if ch, ok := g.conns[msg.ConnID]; ok {
					close(ch)
					delete(g.conns, msg.ConnID)
				}

			case CreateRoom:
				g.handleCreateRoom(msg)

			case JoinRoom:
				g.handleJoinRoom(msg)

			case LeaveRoom:
				g.handleLeave(msg.ConnID)

			case ListRooms:
				g.send(msg.ConnID, protocol.RoomList(g.store.Summaries()))

			case StartGame:
				g.handleStartGame(msg)

			case Move:
				g.handleMove(msg)

			case RequestPositions:
				g.handleRequestPositions(msg)

			case CompleteTask:
				g.handleCompleteTask(msg)

			case resetRoomFired:
				g.handleResetFired(msg.RoomID)

			case GetStats:
				msg.Reply <- Stats{
					Rooms:         g.store.RoomCount(),
					Connections:   len(g.conns),
					Sessions:      len(g.sessions),
					PendingResets: len(g.resetTimers),
				}

			case Shutdown:
				g.shutdown()
				return
			}
		}
	}
}

func (g *Gateway) shutdown() {
	for id, timer := range g.resetTimers {
		timer.Stop()
		delete(g.resetTimers, id)
	}
	for id, ch := range g.conns {
		close(ch)
		delete(g.conns, id)
	}
	clear(g.sessions)
	g.cancel()
}

// send delivers a message to one connection. A full outbox drops the
// message rather than blocking the loop or ejecting the client; the
// writer is expected to keep up under normal load.
func (g *Gateway) send(connID string, msg protocol.ServerMessage) {
	ch, ok := g.conns[connID]
	if !ok {
		return
	}
	select {
	case ch <- msg:
	default:
		g.logger.Warn("outbox full, dropping message",
			zap.String("conn", connID), zap.String("type", msg.Type))
	}
}

// sendToRoom delivers a message to every member of the room except
// excludeConnID (empty string excludes nobody).
func (g *Gateway) sendToRoom(room *game.GameRoom, msg protocol.ServerMessage, excludeConnID string) {
	for _, p := range room.Players {
		connID, ok := g.store.ConnectionFor(p.ID)
		if !ok || connID == excludeConnID {
			continue
		}
		g.send(connID, msg)
	}
}

// broadcastAll delivers a message to every connection in the process.
// Room membership changes affect discoverability for every prospective
// joiner, so room-list updates go here, not just to the room.
func (g *Gateway) broadcastAll(msg protocol.ServerMessage) {
	for connID := range g.conns {
		g.send(connID, msg)
	}
}

func (g *Gateway) handleCreateRoom(msg CreateRoom) {
	playerID := uuid.NewString()
	roomID := g.store.GenerateRoomID()
	player := g.store.CreatePlayer(playerID, msg.PlayerName)
	room := g.store.CreateRoom(roomID, msg.RoomName, playerID, msg.MaxPlayers)

	room.Players = append(room.Players, player)
	g.store.AddRoom(roomID, room)
	g.store.AddPlayerConnection(playerID, msg.ConnID)
	g.sessions[msg.ConnID] = &session{playerID: playerID, roomID: roomID, playerName: msg.PlayerName}

	g.send(msg.ConnID, protocol.RoomCreated(room, playerID))

	g.logger.Info("room created",
		zap.String("room", roomID), zap.String("player", msg.PlayerName))
}

func (g *Gateway) handleJoinRoom(msg JoinRoom) {
	room, err := g.store.GetRoom(msg.RoomID)
	if err != nil {
		g.send(msg.ConnID, protocol.Error("Room not found", protocol.CodeRoomNotFound))
		return
	}
	if len(room.Players) >= room.MaxPlayers {
		g.send(msg.ConnID, protocol.Error("Room is full", protocol.CodeRoomFull))
		return
	}
	if room.IsStarted {
		g.send(msg.ConnID, protocol.Error("Game already started", protocol.CodeGameStarted))
		return
	}

	playerID := uuid.NewString()
	player := g.store.CreatePlayer(playerID, msg.PlayerName)

	room.Players = append(room.Players, player)
	g.store.AddPlayerConnection(playerID, msg.ConnID)
	g.sessions[msg.ConnID] = &session{playerID: playerID, roomID: msg.RoomID, playerName: msg.PlayerName}

	g.send(msg.ConnID, protocol.RoomJoined(room, playerID))
	g.sendToRoom(room, protocol.PlayerJoined(player), msg.ConnID)

	// Replay every existing player's last known position so the
	// joiner's client can render the room immediately.
	for _, existing := range room.Players {
		if existing.ID != playerID {
			g.send(msg.ConnID, protocol.PlayerMoved(existing.ID, existing.Position))
		}
	}

	if room.IsStarted && room.GameState != nil {
		g.send(msg.ConnID, protocol.GameStarted(room.GameState))
	}

	g.logger.Info("player joined room",
		zap.String("room", msg.RoomID), zap.String("player", msg.PlayerName))
}

func (g *Gateway) handleStartGame(msg StartGame) {
	sess, ok := g.sessions[msg.ConnID]
	if !ok {
		g.send(msg.ConnID, protocol.Error("Not in a room", protocol.CodeNotInRoom))
		return
	}
	room, err := g.store.GetRoom(sess.roomID)
	if err != nil {
		g.send(msg.ConnID, protocol.Error("Room not found", protocol.CodeRoomNotFound))
		return
	}
	if room.HostPlayerID != sess.playerID {
		g.send(msg.ConnID, protocol.Error("Only host can start game", protocol.CodeNotHost))
		return
	}
	if room.IsStarted {
		g.send(msg.ConnID, protocol.Error("Game already started", protocol.CodeGameStarted))
		return
	}
	if len(room.Players) < g.policy.MinPlayers {
		g.send(msg.ConnID, protocol.Error("Not enough players", protocol.CodeNotEnoughPlayers))
		return
	}

	gs := g.engine.CreateGameState(room)
	room.GameState = gs
	room.IsStarted = true

	g.sendToRoom(room, protocol.GameStarted(gs), "")

	// Re-broadcast every member's position so all clients render the
	// full roster from the first frame.
	for _, p := range room.Players {
		g.sendToRoom(room, protocol.PlayerMoved(p.ID, p.Position), "")
	}

	g.logger.Info("game started",
		zap.String("room", room.ID), zap.Int("players", len(room.Players)))
}

func (g *Gateway) handleMove(msg Move) {
	sess, ok := g.sessions[msg.ConnID]
	if !ok {
		return
	}
	room, err := g.store.GetRoom(sess.roomID)
	if err != nil {
		return
	}

	g.engine.UpdatePlayerPosition(room, sess.playerID, msg.Position)
	g.sendToRoom(room, protocol.PlayerMoved(sess.playerID, msg.Position), msg.ConnID)
}

func (g *Gateway) handleRequestPositions(msg RequestPositions) {
	sess, ok := g.sessions[msg.ConnID]
	if !ok {
		return
	}
	room, err := g.store.GetRoom(sess.roomID)
	if err != nil {
		return
	}

	for _, p := range room.Players {
		if p.ID != sess.playerID {
			g.send(msg.ConnID, protocol.PlayerMoved(p.ID, p.Position))
		}
	}
}

func (g *Gateway) handleCompleteTask(msg CompleteTask) {
	sess, ok := g.sessions[msg.ConnID]
	if !ok {
		return
	}
	room, err := g.store.GetRoom(sess.roomID)
	if err != nil || room.GameState == nil {
		return
	}

	if !g.engine.CompleteTask(room.GameState, msg.TaskID, sess.playerID) {
		return
	}
	g.sendToRoom(room, protocol.TaskCompleted(msg.TaskID, sess.playerID), "")

	win := g.engine.CheckWinCondition(room.GameState)
	if !win.Won {
		return
	}
	room.GameState.Phase = game.PhaseEnded
	g.sendToRoom(room, protocol.GameEnded(win.Winner, win.Reason), "")
	g.scheduleReset(room.ID)

	g.logger.Info("game ended",
		zap.String("room", room.ID), zap.String("winner", string(win.Winner)))
}

// scheduleReset arms the post-win timer. The callback only posts a
// message back to the loop; the room is re-fetched by id when it is
// handled, never through a captured reference.
func (g *Gateway) scheduleReset(roomID string) {
	if old, ok := g.resetTimers[roomID]; ok {
		old.Stop()
	}
	g.resetTimers[roomID] = time.AfterFunc(g.policy.ResetDelay, func() {
		select {
		case g.inbox <- resetRoomFired{RoomID: roomID}:
		case <-g.ctx.Done():
		}
	})
}

func (g *Gateway) handleResetFired(roomID string) {
	delete(g.resetTimers, roomID)

	room, err := g.store.GetRoom(roomID)
	if err != nil {
		// Room was deleted while the timer was pending.
		return
	}
	g.store.ResetRoom(room)
	g.broadcastAll(protocol.RoomList(g.store.Summaries()))

	g.logger.Info("room reset after game", zap.String("room", roomID))
}

// handleLeave is the shared leave protocol for explicit room:leave and
// transport disconnect. Unbound connections are a no-op.
func (g *Gateway) handleLeave(connID string) {
	sess, ok := g.sessions[connID]
	if !ok {
		return
	}
	delete(g.sessions, connID)
	g.store.RemovePlayerConnection(sess.playerID)

	room, err := g.store.GetRoom(sess.roomID)
	if err != nil {
		return
	}

	remaining := room.Players[:0:0]
	for _, p := range room.Players {
		if p.ID != sess.playerID {
			remaining = append(remaining, p)
		}
	}
	room.Players = remaining

	g.sendToRoom(room, protocol.PlayerLeft(sess.playerID), "")

	if len(room.Players) == 0 {
		g.store.DeleteRoom(room.ID)
		if timer, ok := g.resetTimers[room.ID]; ok {
			timer.Stop()
			delete(g.resetTimers, room.ID)
		}
		g.logger.Info("room deleted", zap.String("room", room.ID))
	} else if room.HostPlayerID == sess.playerID {
		room.HostPlayerID = room.Players[0].ID
		g.sendToRoom(room, protocol.RoomUpdated(room), "")
		g.logger.Info("host transferred",
			zap.String("room", room.ID), zap.String("host", room.HostPlayerID))
	}

	// Lobby screens everywhere need the fresh listing, not just this
	// room's members.
	g.broadcastAll(protocol.RoomList(g.store.Summaries()))
}
