// Package store owns every room, player, and connection association in
// the process. All gameplay mutation flows through objects obtained
// here; nothing else keeps authoritative copies.
package store

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"

	"github.com/adewitt76/LastLight/internal/game"
)

var ErrRoomNotFound = errors.New("room not found")

const roomIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const roomIDLength = 6

// RoomStore is the in-memory registry of rooms and player-connection
// associations. Command handling is serialized by the gateway loop,
// but the health endpoint reads counts from other goroutines, so the
// maps stay behind a lock.
type RoomStore struct {
	mu          sync.RWMutex
	rooms       map[string]*game.GameRoom
	roomOrder   []string          // insertion order for summaries
	connections map[string]string // playerID -> connectionID
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms:       make(map[string]*game.GameRoom),
		connections: make(map[string]string),
	}
}

// GenerateRoomID returns a short human-typable room code. Collisions
// with live rooms are retried; at this scale the loop virtually never
// iterates.
func (s *RoomStore) GenerateRoomID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for {
		id := randomRoomID()
		if _, taken := s.rooms[id]; !taken {
			return id
		}
	}
}

func randomRoomID() string {
	code := make([]byte, roomIDLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomIDCharset))))
		if err != nil {
			panic(err) // crypto/rand failure means the process is unusable
		}
		code[i] = roomIDCharset[n.Int64()]
	}
	return string(code)
}

// CreatePlayer returns a fresh player at the hub spawn point.
func (s *RoomStore) CreatePlayer(id, name string) *game.Player {
	return &game.Player{
		ID:             id,
		Name:           name,
		Position:       game.HubSpawn,
		Role:           game.RoleCrewmate,
		IsAlive:        true,
		InfectionLevel: 0,
	}
}

// CreateRoom returns an unstored room with an empty roster.
func (s *RoomStore) CreateRoom(id, name, hostPlayerID string, maxPlayers int) *game.GameRoom {
	return &game.GameRoom{
		ID:           id,
		Name:         name,
		Players:      []*game.Player{},
		GameState:    nil,
		IsStarted:    false,
		MaxPlayers:   maxPlayers,
		HostPlayerID: hostPlayerID,
	}
}

func (s *RoomStore) AddRoom(roomID string, room *game.GameRoom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[roomID]; !exists {
		s.roomOrder = append(s.roomOrder, roomID)
	}
	s.rooms[roomID] = room
}

func (s *RoomStore) GetRoom(roomID string) (*game.GameRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *RoomStore) DeleteRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[roomID]; !exists {
		return
	}
	delete(s.rooms, roomID)
	for i, id := range s.roomOrder {
		if id == roomID {
			s.roomOrder = append(s.roomOrder[:i], s.roomOrder[i+1:]...)
			break
		}
	}
}

func (s *RoomStore) AddPlayerConnection(playerID, connectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections[playerID] = connectionID
}

// RemovePlayerConnection drops the association; removing an unknown
// player is a no-op.
func (s *RoomStore) RemovePlayerConnection(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.connections, playerID)
}

// ConnectionFor returns the connection id controlling the player.
func (s *RoomStore) ConnectionFor(playerID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	connID, ok := s.connections[playerID]
	return connID, ok
}

// ResetRoom returns a finished room to the lobby state: game discarded,
// every player back at the hub as a healthy crewmate. Membership and
// identities are untouched so the room can be replayed without
// re-joining.
func (s *RoomStore) ResetRoom(room *game.GameRoom) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room.IsStarted = false
	room.GameState = nil
	for _, p := range room.Players {
		p.Position = game.HubSpawn
		p.Role = game.RoleCrewmate
		p.IsAlive = true
		p.InfectionLevel = 0
	}
}

// Summaries returns a lobby-listing view of every room in insertion
// order.
func (s *RoomStore) Summaries() []game.RoomSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summaries := make([]game.RoomSummary, 0, len(s.roomOrder))
	for _, id := range s.roomOrder {
		room := s.rooms[id]
		status := "waiting"
		if room.IsStarted {
			status = "playing"
		}
		summaries = append(summaries, game.RoomSummary{
			ID:          room.ID,
			Name:        room.Name,
			PlayerCount: len(room.Players),
			MaxPlayers:  room.MaxPlayers,
			Status:      status,
			IsJoinable:  !room.IsStarted && len(room.Players) < room.MaxPlayers,
		})
	}
	return summaries
}

func (s *RoomStore) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

func (s *RoomStore) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}
