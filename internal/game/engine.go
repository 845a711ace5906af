package game

import "github.com/google/uuid"

// Engine applies the gameplay rules on top of room data. It mutates the
// room it is handed directly so the store stays the single source of
// truth; it holds no state of its own.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// CreateInitialTasks returns a fresh copy of the fixed task catalog,
// all incomplete.
func (e *Engine) CreateInitialTasks() []*Task {
	tasks := make([]*Task, len(taskCatalog))
	for i, t := range taskCatalog {
		task := t
		tasks[i] = &task
	}
	return tasks
}

// CreateGameState builds the game snapshot for a room about to start.
// The player list shares the room's Player instances but is an
// independent slice, so the game roster is frozen at start time. The
// room itself is not mutated; the caller attaches the result and flips
// IsStarted.
func (e *Engine) CreateGameState(room *GameRoom) *GameState {
	players := make([]*Player, len(room.Players))
	copy(players, room.Players)

	return &GameState{
		ID:           uuid.NewString(),
		Players:      players,
		Rooms:        []MapRoom{},
		EntropyMeter: 0,
		Phase:        PhasePlaying,
		Tasks:        e.CreateInitialTasks(),
		MaxPlayers:   room.MaxPlayers,
		HostPlayerID: room.HostPlayerID,
	}
}

// CompleteTask marks the task done and records who did it. Returns
// false without touching anything when the task is unknown or already
// complete, so repeat completions are harmless no-ops.
func (e *Engine) CompleteTask(gs *GameState, taskID, playerID string) bool {
	for _, t := range gs.Tasks {
		if t.ID == taskID {
			if t.IsCompleted {
				return false
			}
			t.IsCompleted = true
			t.AssignedPlayerID = playerID
			return true
		}
	}
	return false
}

// WinResult is the outcome of a win-condition check.
type WinResult struct {
	Won    bool
	Winner Winner
	Reason string
}

// CheckWinCondition evaluates the crew's all-tasks-complete victory.
// The decayer win path exists in the type system only; no rule ever
// awards it.
func (e *Engine) CheckWinCondition(gs *GameState) WinResult {
	for _, t := range gs.Tasks {
		if !t.IsCompleted {
			return WinResult{}
		}
	}
	return WinResult{Won: true, Winner: WinnerCrew, Reason: "All tasks completed"}
}

// UpdatePlayerPosition writes the position onto the room roster entry
// and, when a game is active, onto the game roster entry as well. The
// two rosters are kept in sync independently rather than collapsed:
// they model "current room membership" vs "membership at game start"
// and may legitimately hold different players.
func (e *Engine) UpdatePlayerPosition(room *GameRoom, playerID string, pos Position) {
	if p := room.FindPlayer(playerID); p != nil {
		p.Position = pos
	}

	if room.GameState == nil {
		return
	}
	for _, p := range room.GameState.Players {
		if p.ID == playerID {
			p.Position = pos
			return
		}
	}
}
