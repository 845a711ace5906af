package game

// taskCatalog is the fixed set of objectives instantiated for every
// game, in deterministic order. Decontamination exists as a TaskType
// but has no catalog entry; no current rule creates one.
var taskCatalog = []Task{
	{ID: "power", RoomID: "power-room", Type: TaskPower},
	{ID: "oxygen", RoomID: "oxygen-room", Type: TaskOxygen},
	{ID: "communications", RoomID: "comms-room", Type: TaskCommunications},
}
