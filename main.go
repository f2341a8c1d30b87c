package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/nstore-core/server/internal/advisor"
	"github.com/nstore-core/server/internal/cart"
	"github.com/nstore-core/server/internal/catalog"
	"github.com/nstore-core/server/internal/core"
	"github.com/nstore-core/server/internal/httpx"
	"github.com/nstore-core/server/internal/orders"
	"github.com/nstore-core/server/internal/store"
	logx "github.com/nstore-core/server/pkg/logger"
)

// AppConfig defines all configurable parameters for the service, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Infrastructure
	Redis      store.RedisConfig
	HistoryTTL string `envconfig:"ADVICE_HISTORY_TTL" default:"24h"`

	// Advice gateway
	Gemini  advisor.GeminiConfig
	Advisor advisor.Config
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}
	logx.Init(logx.LoggerOpts{Environment: core.EnvironmentFromOS()})

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	historyTTL, err := time.ParseDuration(cfg.HistoryTTL)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.HistoryTTL).Msg("invalid ADVICE_HISTORY_TTL")
	}

	// System of record. Without a Redis URL state lives in memory and dies
	// with the process.
	var (
		st      store.Store
		history advisor.History
	)
	if cfg.Redis.URL != "" {
		rdb, err := cfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise redis client")
		}
		defer rdb.Close()
		st = store.NewRedis(rdb)
		history = advisor.NewRedisHistory(rdb, historyTTL)
		logx.Info().Msg("connected to redis")
	} else {
		st = store.NewMemory()
		history = advisor.NewMemoryHistory()
		logx.Warn().Msg("REDIS_URL not set, state will not survive a restart")
	}

	cat, err := catalog.New(ctx, st)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load catalog")
	}
	crt, err := cart.New(ctx, st)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load cart")
	}
	book := orders.NewBook(catalog.SeedOrders())

	chatModel, err := advisor.NewGeminiChatModel(ctx, cfg.Gemini)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to build advisor chat model")
	}
	adv := advisor.New(chatModel, cfg.Advisor)

	router := httpx.NewRouter()
	(&httpx.CatalogHandler{Catalog: cat}).Register(router)
	(&httpx.CartHandler{Cart: crt, Catalog: cat, Orders: book, Store: st}).Register(router)
	(&httpx.AuthHandler{Store: st}).Register(router)
	(&httpx.AdviceHandler{Advisor: adv, Catalog: cat, History: history}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal().Err(err).Msg("listen failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logx.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
