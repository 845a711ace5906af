package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adewitt76/LastLight/internal/gateway"
	"github.com/adewitt76/LastLight/internal/protocol"
)

const (
	outboxSize   = 32
	writeTimeout = 3 * time.Second
)

// Handler accepts a websocket connection and bridges it to the
// gateway: a writer goroutine drains the connection's outbox while the
// reader loop turns wire envelopes into gateway commands. Closing the
// socket, cleanly or not, is the same as leaving the room.
func Handler(g *gateway.Gateway, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		connID := uuid.NewString()
		out := make(chan protocol.ServerMessage, outboxSize)

		g.Inbox() <- gateway.Connect{ConnID: connID, Outbox: out}
		defer func() { g.Inbox() <- gateway.Disconnect{ConnID: connID} }()

		logger.Info("player connected", zap.String("conn", connID))
		defer logger.Info("player disconnected", zap.String("conn", connID))

		// Writer goroutine: the gateway closes out on disconnect or
		// shutdown, which ends the range.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for msg := range out {
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, writeTimeout)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Clean close and going-away are as good as an
				// explicit leave; the deferred Disconnect handles both.
				return
			}

			var cm protocol.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			msg, ok := toGatewayMsg(connID, cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}

			g.Inbox() <- msg
		}
	}
}

func toGatewayMsg(connID string, m protocol.ClientMessage) (gateway.Msg, bool) {
	switch m.Type {
	case protocol.MsgRoomCreate:
		return gateway.CreateRoom{ConnID: connID, RoomName: m.RoomName, PlayerName: m.PlayerName, MaxPlayers: m.MaxPlayers}, true
	case protocol.MsgRoomJoin:
		return gateway.JoinRoom{ConnID: connID, RoomID: m.RoomID, PlayerName: m.PlayerName}, true
	case protocol.MsgRoomLeave:
		return gateway.LeaveRoom{ConnID: connID}, true
	case protocol.MsgRoomList:
		return gateway.ListRooms{ConnID: connID}, true
	case protocol.MsgGameStart:
		return gateway.StartGame{ConnID: connID}, true
	case protocol.MsgGameMove:
		if m.Position == nil {
			return nil, false
		}
		return gateway.Move{ConnID: connID, Position: *m.Position}, true
	case protocol.MsgRequestPositions:
		return gateway.RequestPositions{ConnID: connID}, true
	case protocol.MsgCompleteTask:
		if m.TaskID == "" {
			return nil, false
		}
		return gateway.CompleteTask{ConnID: connID, TaskID: m.TaskID}, true
	default:
		return nil, false
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, message string) {
	payload, _ := json.Marshal(protocol.Error(message, ""))
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	_ = conn.Write(wctx, websocket.MessageText, payload)
	cancel()
}
