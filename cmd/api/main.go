package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sparkmeet/identity-api/internal/api"
	"github.com/sparkmeet/identity-api/internal/core/token"
	"github.com/sparkmeet/identity-api/internal/infrastructure/config"
	mongodb "github.com/sparkmeet/identity-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sparkmeet/identity-api/internal/infrastructure/db/redis"
	"github.com/sparkmeet/identity-api/internal/infrastructure/queue"
	"github.com/sparkmeet/identity-api/pkg/logger"
)

// @title        SparkMeet Identity API
// @version      1.0
// @description  Credential issuance service: registration, login, and signed bearer tokens.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not up yet; a missing JWT secret is fatal either way.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	issuer, err := token.NewIssuer(cfg.JWTSecret, token.DefaultTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token issuer configuration invalid")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	recorder := redisdb.NewActivityRecorder(rdb)
	dispatcher := queue.NewActivityDispatcher(0, recorder, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, issuer, dispatcher, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting identity api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
