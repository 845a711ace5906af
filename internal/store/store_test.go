package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/adewitt76/LastLight/internal/game"
)

func TestAddGetDeleteRoom(t *testing.T) {
	s := NewRoomStore()

	_, err := s.GetRoom("NOPE")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	room := s.CreateRoom("AB12CD", "drifters", "host-1", 4)
	s.AddRoom(room.ID, room)

	got, err := s.GetRoom("AB12CD")
	require.NoError(t, err)
	assert.Same(t, room, got)
	assert.Equal(t, 1, s.RoomCount())

	s.DeleteRoom("AB12CD")
	_, err = s.GetRoom("AB12CD")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Equal(t, 0, s.RoomCount())

	// Deleting again is harmless.
	s.DeleteRoom("AB12CD")
}

func TestCreatePlayerSpawnsAtHub(t *testing.T) {
	s := NewRoomStore()
	p := s.CreatePlayer("p1", "ada")

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "ada", p.Name)
	assert.Equal(t, game.HubSpawn, p.Position)
	assert.Equal(t, game.RoleCrewmate, p.Role)
	assert.True(t, p.IsAlive)
	assert.Equal(t, 0, p.InfectionLevel)
}

func TestPlayerConnections(t *testing.T) {
	s := NewRoomStore()

	s.AddPlayerConnection("p1", "conn-1")
	connID, ok := s.ConnectionFor("p1")
	require.True(t, ok)
	assert.Equal(t, "conn-1", connID)
	assert.Equal(t, 1, s.ConnectionCount())

	s.RemovePlayerConnection("p1")
	_, ok = s.ConnectionFor("p1")
	assert.False(t, ok)

	// Idempotent removal.
	s.RemovePlayerConnection("p1")
	assert.Equal(t, 0, s.ConnectionCount())
}

func TestResetRoom(t *testing.T) {
	s := NewRoomStore()
	room := s.CreateRoom("AB12CD", "drifters", "p1", 4)
	for _, id := range []string{"p1", "p2"} {
		room.Players = append(room.Players, s.CreatePlayer(id, id))
	}
	s.AddRoom(room.ID, room)

	room.IsStarted = true
	room.GameState = &game.GameState{ID: "gs", Phase: game.PhaseEnded}
	room.Players[0].Position = game.Position{X: 1, Y: 2}
	room.Players[0].Role = game.RoleDecayer
	room.Players[0].IsAlive = false
	room.Players[0].InfectionLevel = 80

	s.ResetRoom(room)

	assert.False(t, room.IsStarted)
	assert.Nil(t, room.GameState)
	require.Len(t, room.Players, 2)
	for _, p := range room.Players {
		assert.Equal(t, game.HubSpawn, p.Position)
		assert.Equal(t, game.RoleCrewmate, p.Role)
		assert.True(t, p.IsAlive)
		assert.Equal(t, 0, p.InfectionLevel)
	}
	assert.Equal(t, "p1", room.Players[0].ID, "membership survives reset")
	assert.Equal(t, "p2", room.Players[1].ID)
}

func TestSummaries(t *testing.T) {
	s := NewRoomStore()

	waiting := s.CreateRoom("WAIT01", "open seats", "h1", 4)
	waiting.Players = append(waiting.Players, s.CreatePlayer("h1", "h1"))
	s.AddRoom(waiting.ID, waiting)

	playing := s.CreateRoom("PLAY01", "mid game", "h2", 4)
	playing.Players = append(playing.Players, s.CreatePlayer("h2", "h2"))
	playing.IsStarted = true
	s.AddRoom(playing.ID, playing)

	full := s.CreateRoom("FULL01", "no seats", "h3", 1)
	full.Players = append(full.Players, s.CreatePlayer("h3", "h3"))
	s.AddRoom(full.ID, full)

	summaries := s.Summaries()
	require.Len(t, summaries, 3)

	assert.Equal(t, "WAIT01", summaries[0].ID, "insertion order preserved")
	assert.Equal(t, "waiting", summaries[0].Status)
	assert.True(t, summaries[0].IsJoinable)
	assert.Equal(t, 1, summaries[0].PlayerCount)

	assert.Equal(t, "playing", summaries[1].Status)
	assert.False(t, summaries[1].IsJoinable)

	assert.Equal(t, "waiting", summaries[2].Status)
	assert.False(t, summaries[2].IsJoinable, "full room is not joinable")
}

func TestGenerateRoomIDShape(t *testing.T) {
	s := NewRoomStore()
	id := s.GenerateRoomID()

	assert.Len(t, id, roomIDLength)
	for _, c := range id {
		assert.True(t, strings.ContainsRune(roomIDCharset, c), "unexpected character %q", c)
	}
}

// Generated ids never collide with a live room, whatever rooms exist.
func TestGenerateRoomIDAvoidsLiveRooms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewRoomStore()
		n := rapid.IntRange(0, 50).Draw(t, "rooms")
		for i := 0; i < n; i++ {
			id := s.GenerateRoomID()
			s.AddRoom(id, s.CreateRoom(id, "room", "host", 4))
		}

		id := s.GenerateRoomID()
		_, err := s.GetRoom(id)
		if err == nil {
			t.Fatalf("generated id %q collides with a stored room", id)
		}
	})
}
