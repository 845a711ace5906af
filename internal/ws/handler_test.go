package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewitt76/LastLight/internal/game"
	"github.com/adewitt76/LastLight/internal/gateway"
	"github.com/adewitt76/LastLight/internal/protocol"
)

func TestToGatewayMsg(t *testing.T) {
	cases := []struct {
		name string
		in   protocol.ClientMessage
		want gateway.Msg
		ok   bool
	}{
		{
			name: "create room",
			in:   protocol.ClientMessage{Type: "room:create", RoomName: "drift", PlayerName: "ada", MaxPlayers: 4},
			want: gateway.CreateRoom{ConnID: "c1", RoomName: "drift", PlayerName: "ada", MaxPlayers: 4},
			ok:   true,
		},
		{
			name: "join room",
			in:   protocol.ClientMessage{Type: "room:join", RoomID: "AB12CD", PlayerName: "ben"},
			want: gateway.JoinRoom{ConnID: "c1", RoomID: "AB12CD", PlayerName: "ben"},
			ok:   true,
		},
		{
			name: "leave",
			in:   protocol.ClientMessage{Type: "room:leave"},
			want: gateway.LeaveRoom{ConnID: "c1"},
			ok:   true,
		},
		{
			name: "list",
			in:   protocol.ClientMessage{Type: "room:list"},
			want: gateway.ListRooms{ConnID: "c1"},
			ok:   true,
		},
		{
			name: "start",
			in:   protocol.ClientMessage{Type: "game:start"},
			want: gateway.StartGame{ConnID: "c1"},
			ok:   true,
		},
		{
			name: "move",
			in:   protocol.ClientMessage{Type: "game:move", Position: &game.Position{X: 1, Y: 2}},
			want: gateway.Move{ConnID: "c1", Position: game.Position{X: 1, Y: 2}},
			ok:   true,
		},
		{
			name: "move without position",
			in:   protocol.ClientMessage{Type: "game:move"},
			ok:   false,
		},
		{
			name: "request positions",
			in:   protocol.ClientMessage{Type: "game:request-positions"},
			want: gateway.RequestPositions{ConnID: "c1"},
			ok:   true,
		},
		{
			name: "complete task",
			in:   protocol.ClientMessage{Type: "game:complete-task", TaskID: "power"},
			want: gateway.CompleteTask{ConnID: "c1", TaskID: "power"},
			ok:   true,
		},
		{
			name: "complete task without id",
			in:   protocol.ClientMessage{Type: "game:complete-task"},
			ok:   false,
		},
		{
			name: "unknown type",
			in:   protocol.ClientMessage{Type: "game:emergency-meeting"},
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toGatewayMsg("c1", tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
