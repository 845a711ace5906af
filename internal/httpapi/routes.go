package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adewitt76/LastLight/internal/gateway"
	"github.com/adewitt76/LastLight/internal/store"
	"github.com/adewitt76/LastLight/internal/ws"
)

func SetupRoutes(g *gateway.Gateway, st *store.RoomStore, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz(st))
	r.Get("/ws", ws.Handler(g, logger))
	return r
}
