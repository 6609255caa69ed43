package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/maxgale/onenight/internal/config"
	"github.com/maxgale/onenight/internal/deal"
	"github.com/maxgale/onenight/internal/handlers/leaderboard"
	"github.com/maxgale/onenight/internal/handlers/ws"
	"github.com/maxgale/onenight/internal/logger"
	"github.com/maxgale/onenight/internal/repositories/session"
	"github.com/maxgale/onenight/internal/repositories/stats"
	"github.com/maxgale/onenight/internal/services/game"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	sessionRepo, err := session.NewRedis(&session.Config{RedisClient: redisClient})
	if err != nil {
		zap.L().Fatal("failed to create session repository", zap.Error(err))
	}

	db, err := sqlx.Open("sqlite3", cfg.StatsDBPath)
	if err != nil {
		zap.L().Fatal("failed to open stats database", zap.Error(err))
	}
	defer db.Close()

	statsRepo, err := stats.NewSQLite(&stats.Config{DB: db})
	if err != nil {
		zap.L().Fatal("failed to create stats repository", zap.Error(err))
	}

	var shuffler *deal.Shuffler
	if cfg.DealSeed != 0 {
		shuffler = deal.New(&deal.Config{Seed: cfg.DealSeed})
	}

	svc, err := game.New(&game.Config{
		SessionRepo: sessionRepo,
		StatsRepo:   statsRepo,
		Shuffler:    shuffler,
	})
	if err != nil {
		zap.L().Fatal("failed to create game service", zap.Error(err))
	}

	hub := ws.NewHub()
	svc.SetBroadcaster(hub)

	wsHandler, err := ws.New(&ws.Config{Service: svc, Hub: hub})
	if err != nil {
		zap.L().Fatal("failed to create websocket handler", zap.Error(err))
	}

	leaderboardHandler, err := leaderboard.New(&leaderboard.Config{StatsRepo: statsRepo})
	if err != nil {
		zap.L().Fatal("failed to create leaderboard handler", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.Handle("/api/leaderboard", leaderboardHandler)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Warn("shutdown incomplete", zap.Error(err))
	}
}
