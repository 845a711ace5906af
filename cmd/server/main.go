package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/adewitt76/LastLight/internal/config"
	"github.com/adewitt76/LastLight/internal/game"
	"github.com/adewitt76/LastLight/internal/gateway"
	"github.com/adewitt76/LastLight/internal/httpapi"
	"github.com/adewitt76/LastLight/internal/observability"
	"github.com/adewitt76/LastLight/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	st := store.NewRoomStore()
	eng := game.NewEngine()
	g := gateway.NewGateway(ctx, st, eng, logger, gateway.Policy{
		MinPlayers: cfg.MinPlayers,
		ResetDelay: cfg.ResetDelay,
	})

	// Build the router *with* the gateway injected
	handler := httpapi.SetupRoutes(g, st, logger)

	logger.Info("game server listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
