// Package protocol defines the JSON wire messages exchanged with game
// clients. Both directions use a flat envelope with a "type" tag and
// only the fields that tag uses populated.
package protocol

import "github.com/adewitt76/LastLight/internal/game"

// Client -> server message types.
const (
	MsgRoomCreate       = "room:create"
	MsgRoomJoin         = "room:join"
	MsgRoomLeave        = "room:leave"
	MsgRoomList         = "room:list"
	MsgGameStart        = "game:start"
	MsgGameMove         = "game:move"
	MsgRequestPositions = "game:request-positions"
	MsgCompleteTask     = "game:complete-task"
)

// Server -> client message types.
const (
	MsgRoomCreated   = "room:created"
	MsgRoomJoined    = "room:joined"
	MsgPlayerJoined  = "room:player-joined"
	MsgPlayerLeft    = "room:player-left"
	MsgRoomUpdated   = "room:updated"
	MsgGameStarted   = "game:started"
	MsgPlayerMoved   = "game:player-moved"
	MsgTaskCompleted = "game:task-completed"
	MsgGameEnded     = "game:ended"
	MsgError         = "error"
	// MsgRoomList is shared: a reply to room:list and a global
	// broadcast after membership changes.
)

// Error codes reported with MsgError.
const (
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodeRoomFull         = "ROOM_FULL"
	CodeGameStarted      = "GAME_STARTED"
	CodeNotInRoom        = "NOT_IN_ROOM"
	CodeNotHost          = "NOT_HOST"
	CodeNotEnoughPlayers = "NOT_ENOUGH_PLAYERS"
)

type ClientMessage struct {
	Type       string         `json:"type"`
	RoomName   string         `json:"roomName,omitempty"`
	PlayerName string         `json:"playerName,omitempty"`
	MaxPlayers int            `json:"maxPlayers,omitempty"`
	RoomID     string         `json:"roomId,omitempty"`
	Position   *game.Position `json:"position,omitempty"`
	TaskID     string         `json:"taskId,omitempty"`
}

type ServerMessage struct {
	Type      string             `json:"type"`
	Room      *game.GameRoom     `json:"room,omitempty"`
	PlayerID  string             `json:"playerId,omitempty"`
	Rooms     []game.RoomSummary `json:"rooms,omitempty"`
	Player    *game.Player       `json:"player,omitempty"`
	GameState *game.GameState    `json:"gameState,omitempty"`
	Position  *game.Position     `json:"position,omitempty"`
	TaskID    string             `json:"taskId,omitempty"`
	Winner    game.Winner        `json:"winner,omitempty"`
	Reason    string             `json:"reason,omitempty"`
	Message   string             `json:"message,omitempty"`
	Code      string             `json:"code,omitempty"`
}

func RoomCreated(room *game.GameRoom, playerID string) ServerMessage {
	return ServerMessage{Type: MsgRoomCreated, Room: room, PlayerID: playerID}
}

func RoomJoined(room *game.GameRoom, playerID string) ServerMessage {
	return ServerMessage{Type: MsgRoomJoined, Room: room, PlayerID: playerID}
}

func RoomList(rooms []game.RoomSummary) ServerMessage {
	return ServerMessage{Type: MsgRoomList, Rooms: rooms}
}

func PlayerJoined(player *game.Player) ServerMessage {
	return ServerMessage{Type: MsgPlayerJoined, Player: player}
}

func PlayerLeft(playerID string) ServerMessage {
	return ServerMessage{Type: MsgPlayerLeft, PlayerID: playerID}
}

func RoomUpdated(room *game.GameRoom) ServerMessage {
	return ServerMessage{Type: MsgRoomUpdated, Room: room}
}

func GameStarted(gs *game.GameState) ServerMessage {
	return ServerMessage{Type: MsgGameStarted, GameState: gs}
}

func PlayerMoved(playerID string, pos game.Position) ServerMessage {
	return ServerMessage{Type: MsgPlayerMoved, PlayerID: playerID, Position: &pos}
}

func TaskCompleted(taskID, playerID string) ServerMessage {
	return ServerMessage{Type: MsgTaskCompleted, TaskID: taskID, PlayerID: playerID}
}

func GameEnded(winner game.Winner, reason string) ServerMessage {
	return ServerMessage{Type: MsgGameEnded, Winner: winner, Reason: reason}
}

func Error(message, code string) ServerMessage {
	return ServerMessage{Type: MsgError, Message: message, Code: code}
}
