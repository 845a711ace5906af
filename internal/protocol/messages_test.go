package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewitt76/LastLight/internal/game"
)

// Clients key on the type tag and expect absent fields to be omitted,
// not null.
func TestEnvelopeOmitsUnusedFields(t *testing.T) {
	payload, err := json.Marshal(Error("Room not found", CodeRoomNotFound))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, "error", raw["type"])
	assert.Equal(t, "ROOM_NOT_FOUND", raw["code"])
	assert.NotContains(t, raw, "room")
	assert.NotContains(t, raw, "position")
	assert.NotContains(t, raw, "gameState")
}

func TestPlayerMovedCarriesZeroPosition(t *testing.T) {
	payload, err := json.Marshal(PlayerMoved("p1", game.Position{}))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	// The origin is a legal coordinate; the pointer field keeps it on
	// the wire where a value field with omitempty would drop it.
	require.Contains(t, raw, "position")
	pos := raw["position"].(map[string]any)
	assert.Equal(t, float64(0), pos["x"])
	assert.Equal(t, float64(0), pos["y"])
}
