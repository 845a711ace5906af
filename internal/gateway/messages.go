package gateway

import (
	"github.com/adewitt76/LastLight/internal/game"
	"github.com/adewitt76/LastLight/internal/protocol"
)

// Msg is a command processed by the gateway loop. One variant per
// inbound protocol command, plus connection lifecycle and internal
// scheduling messages.
type Msg interface{ isGatewayMsg() }

// Connect registers a transport connection and the outbox channel its
// writer drains.
type Connect struct {
	ConnID string
	Outbox chan protocol.ServerMessage
}

// Disconnect runs the leave protocol and releases the connection.
type Disconnect struct{ ConnID string }

type CreateRoom struct {
	ConnID     string
	RoomName   string
	PlayerName string
	MaxPlayers int
}

type JoinRoom struct {
	ConnID     string
	RoomID     string
	PlayerName string
}

type LeaveRoom struct{ ConnID string }

type ListRooms struct{ ConnID string }

type StartGame struct{ ConnID string }

type Move struct {
	ConnID   string
	Position game.Position
}

type RequestPositions struct{ ConnID string }

type CompleteTask struct {
	ConnID string
	TaskID string
}

// resetRoomFired is sent by the post-win timer. The room is re-fetched
// by id when it arrives, so a room deleted in the meantime is a no-op.
type resetRoomFired struct{ RoomID string }

// GetStats reflects internal state without data races; used by tests
// and nothing else.
type GetStats struct{ Reply chan Stats }

type Stats struct {
	Rooms         int
	Connections   int
	Sessions      int
	PendingResets int
}

type Shutdown struct{}

func (Connect) isGatewayMsg()          {}
func (Disconnect) isGatewayMsg()       {}
func (CreateRoom) isGatewayMsg()       {}
func (JoinRoom) isGatewayMsg()         {}
func (LeaveRoom) isGatewayMsg()        {}
func (ListRooms) isGatewayMsg()        {}
func (StartGame) isGatewayMsg()        {}
func (Move) isGatewayMsg()             {}
func (RequestPositions) isGatewayMsg() {}
func (CompleteTask) isGatewayMsg()     {}
func (resetRoomFired) isGatewayMsg()   {}
func (GetStats) isGatewayMsg()         {}
func (Shutdown) isGatewayMsg()         {}
