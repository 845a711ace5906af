package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/adewitt76/LastLight/internal/store"
)

// Healthz reports process liveness plus the room and connection counts
// so operators can see load at a glance.
func Healthz(st *store.RoomStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status      string `json:"status"`
			Rooms       int    `json:"rooms"`
			Connections int    `json:"connections"`
		}{
			Status:      "ok",
			Rooms:       st.RoomCount(),
			Connections: st.ConnectionCount(),
		})
	}
}
