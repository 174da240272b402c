package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/internal/core"
	"github.com/sandevgo/brandgen/internal/providers/image"
	"github.com/sandevgo/brandgen/internal/providers/llm"
	"github.com/sandevgo/brandgen/internal/service/brand"
	"github.com/sandevgo/brandgen/internal/service/studio"
	"github.com/sandevgo/brandgen/internal/storage/memory"
	"github.com/sandevgo/brandgen/internal/storage/sqlite"
	httptransport "github.com/sandevgo/brandgen/internal/transport/http"
	"github.com/sandevgo/brandgen/internal/transport/telegram"
	"github.com/sandevgo/brandgen/pkg/log"
	"github.com/sandevgo/brandgen/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	groqCfg := config.NewGroqConfig(ctx)
	hfCfg := config.NewHuggingFaceConfig(ctx)

	// 2. Storage
	history, cleanups, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, cleanups...)

	// 3. Providers
	writer := llm.NewGroq(groqCfg)
	renderer := image.NewHuggingFace(hfCfg)

	var captioner core.Captioner
	if appCfg.EnableCaptioning {
		captioner = image.NewBLIPCaptioner(hfCfg)
	}

	// 4. Brand kit service
	brandSvc := brand.NewService(memory.NewKits(), captioner)

	// 5. Creation studio
	studioSvc := studio.New(writer, renderer, brandSvc, history)

	// 6. Transports
	transports, err := initTransports(ctx, appCfg, studioSvc, brandSvc)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.AssetRepository, []srv.Service, error) {
	if !cfg.PersistHistory {
		return memory.NewHistory(), nil, nil
	}

	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewAssets(db), []srv.Service{srv.NewCleanup(db.Close)}, nil
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	studioSvc *studio.Studio,
	brandSvc *brand.Service,
) ([]srv.Service, error) {
	var services []srv.Service

	// HTTP API
	if cfg.IsHTTPSelected() {
		httpCfg := config.NewHTTPConfig(ctx)
		handler := httptransport.NewHandler(studioSvc, brandSvc)
		services = append(services, httptransport.NewServer(ctx, httpCfg, handler))
	}

	// Telegram Bot
	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, studioSvc)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
