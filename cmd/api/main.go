package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fulano-assistant/config"
	pgConn "fulano-assistant/config/postgre"
	redisConn "fulano-assistant/config/redis"
	sqliteConn "fulano-assistant/config/sqlite"
	_ "fulano-assistant/docs" // Swagger docs
	"fulano-assistant/internal/agent"
	"fulano-assistant/internal/agent/orchestrator"
	"fulano-assistant/internal/agent/tools"
	"fulano-assistant/internal/chat/dispatch"
	chatUC "fulano-assistant/internal/chat/usecase"
	"fulano-assistant/internal/conversation/locker"
	"fulano-assistant/internal/conversation/repository"
	pgRepo "fulano-assistant/internal/conversation/repository/postgre"
	sqliteRepo "fulano-assistant/internal/conversation/repository/sqlite"
	"fulano-assistant/internal/httpserver"
	"fulano-assistant/internal/intent"
	"fulano-assistant/internal/middleware"
	"fulano-assistant/pkg/llmprovider"
	"fulano-assistant/pkg/log"

	"github.com/joho/godotenv"
)

// @title       Fulano Assistant API
// @description Spanish-language chat assistant that answers small talk locally and delegates the rest to an LLM with tools.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Fulano Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Conversation store
	db, store, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Database.Driver, err)
	}
	logger.Infof(ctx, "Conversation store ready (%s)", cfg.Database.Driver)

	// 4. Per-conversation ordering
	var lk locker.Locker = locker.NewLocal()
	if cfg.Redis.Addr != "" {
		rdb, err := redisConn.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisConn.Disconnect(rdb)
		lk = locker.NewRedis(rdb, cfg.Redis.LockTTL, logger)
		logger.Infof(ctx, "Conversation locks held in redis at %s", cfg.Redis.Addr)
	}

	// 5. Tools
	registry := agent.NewToolRegistry(logger, cfg.Tools.Timeout)
	toolSet := tools.NewSet(ctx, cfg.Tools, nil, logger)
	if err := toolSet.RegisterAll(registry); err != nil {
		return fmt.Errorf("register tools: %w", err)
	}
	logger.Infof(ctx, "Registered %d tools", len(registry.List()))

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfiguration, err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfiguration, err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	gateway := llmprovider.NewGateway(manager, llmprovider.SessionOptions{Temperature: cfg.LLM.Temperature})
	orch := orchestrator.New(gateway, registry, logger, orchestrator.Config{
		SystemInstruction: cfg.LLM.SystemInstruction,
		Timezone:          cfg.Tools.Timezone,
		MaxToolCalls:      cfg.LLM.MaxToolCalls,
	})

	// 7. Intent classifier and local handlers
	corpus := intent.DefaultCorpus()
	classifier, err := intent.Train(corpus, intent.WithSoftmaxScale(cfg.Dialogue.SoftmaxScale))
	if err != nil {
		return fmt.Errorf("train classifier: %w", err)
	}
	table, err := dispatch.NewDefault(corpus, registry, dispatch.Options{
		CityExtractor: tools.NewCityExtractor(cfg.Tools.DefaultCity, tools.KnownCities...),
	}, logger)
	if err != nil {
		return fmt.Errorf("build dispatch table: %w", err)
	}
	localIntents, err := table.Select(cfg.Dialogue.LocalIntents)
	if err != nil {
		return fmt.Errorf("%w: dialogue.local_intents: %v", config.ErrConfiguration, err)
	}

	// 8. Chat use case
	uc := chatUC.New(store, lk, classifier, table, orch, chatUC.Config{
		ConfidenceThreshold: cfg.Dialogue.ConfidenceThreshold,
		LocalIntents:        localIntents,
	}, logger)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ChatUseCase: uc,
		Database:    db,

		ShutdownTimeout: uc.MaxTurnDuration(),
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// openStore connects the configured driver and returns the matching Store.
func openStore(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (*sql.DB, repository.Store, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := pgConn.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, pgRepo.New(db, l), nil
	case "sqlite":
		db, err := sqliteConn.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return db, sqliteRepo.New(db, l), nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported database.driver %q", config.ErrConfiguration, cfg.Driver)
	}
}
