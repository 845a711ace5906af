package game

// Role is a player's allegiance. Only crewmates exist until the
// social-deduction rules land; decayer is carried by the data model
// but never assigned by any current rule.
type Role string

const (
	RoleCrewmate Role = "crewmate"
	RoleDecayer  Role = "decayer"
)

// Phase is the lifecycle stage of a started game. Transitions only move
// forward; the sole way back to lobby is a full room reset.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhasePlaying Phase = "playing"
	PhaseMeeting Phase = "meeting"
	PhaseVoting  Phase = "voting"
	PhaseEnded   Phase = "ended"
)

type TaskType string

const (
	TaskPower           TaskType = "power"
	TaskOxygen          TaskType = "oxygen"
	TaskCommunications  TaskType = "communications"
	TaskDecontamination TaskType = "decontamination"
)

type Winner string

const (
	WinnerCrew     Winner = "crew"
	WinnerDecayers Winner = "decayers"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// HubSpawn is the safe central hub coordinate where players spawn and
// are returned to on room reset.
var HubSpawn = Position{X: 2400, Y: 1600}

type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Role     Role     `json:"role"`
	IsAlive  bool     `json:"isAlive"`
	// InfectionLevel is 0-100; reserved for the unbuilt infection rules.
	InfectionLevel int `json:"infectionLevel"`
}

// Task is a discrete objective tied to a map location. RoomID is the
// map-location tag, not a GameRoom id.
type Task struct {
	ID               string   `json:"id"`
	RoomID           string   `json:"roomId"`
	Type             TaskType `json:"type"`
	IsCompleted      bool     `json:"isCompleted"`
	AssignedPlayerID string   `json:"assignedPlayerId,omitempty"`
}

// MapRoom is a location on the ship map with environmental state.
// GameState carries an empty list of these until decay rules exist.
type MapRoom struct {
	ID           string `json:"id"`
	DecayLevel   int    `json:"decayLevel"`
	Lighting     int    `json:"lighting"`
	HasSpores    bool   `json:"hasSpores"`
	IsAccessible bool   `json:"isAccessible"`
}

// GameState is the per-game snapshot owned by a started GameRoom.
// Players holds the roster as it stood at start time: the same Player
// instances as the room roster, but an independent list, so the two
// can diverge if membership changes after start.
type GameState struct {
	ID      string    `json:"id"`
	Players []*Player `json:"players"`
	Rooms   []MapRoom `json:"rooms"`
	// EntropyMeter is 0-100; reserved for game-over-by-decay.
	EntropyMeter int     `json:"entropyMeter"`
	Phase        Phase   `json:"phase"`
	Tasks        []*Task `json:"tasks"`
	MaxPlayers   int     `json:"maxPlayers"`
	HostPlayerID string  `json:"hostPlayerId"`
}

// GameRoom is the top-level play-session aggregate. Players is kept in
// join order and unique by id; len(Players) never exceeds MaxPlayers.
type GameRoom struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Players      []*Player  `json:"players"`
	GameState    *GameState `json:"gameState"`
	IsStarted    bool       `json:"isStarted"`
	MaxPlayers   int        `json:"maxPlayers"`
	HostPlayerID string     `json:"hostPlayerId"`
}

// FindPlayer returns the roster entry with the given id, or nil.
func (r *GameRoom) FindPlayer(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// RoomSummary is the lightweight lobby-listing view of a room.
type RoomSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PlayerCount int    `json:"playerCount"`
	MaxPlayers  int    `json:"maxPlayers"`
	Status      string `json:"status"` // "waiting" | "playing"
	IsJoinable  bool   `json:"isJoinable"`
}
