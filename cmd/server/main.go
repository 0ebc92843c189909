package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ItemGateway/internal/auth"
	"ItemGateway/internal/config"
	"ItemGateway/internal/handlers"
	"ItemGateway/internal/middleware"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/repo/rest"
	"ItemGateway/internal/service"
	"ItemGateway/internal/storage"
	"ItemGateway/internal/supabase"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// один клиент бэкенда на процесс; без своего таймаута, срок запроса задаёт только контекст
	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)

	items, profiles, err := newRepositories(cfg, client)
	if err != nil {
		sugar.Fatalw("failed to initialize row store", "error", err)
	}

	blobs, err := newBlobStore(ctx, cfg, client)
	if err != nil {
		sugar.Fatalw("failed to initialize blob store", "error", err)
	}

	itemService := service.NewItemService(items, blobs, sugar)
	userService := service.NewUserService(profiles, newVerifier(cfg, client), sugar)

	h := handlers.NewHandler(itemService, userService, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"SupabaseURL", cfg.SupabaseURL,
		"RowStore", cfg.RowStore,
		"BlobDriver", cfg.BlobDriver,
		"Bucket", cfg.BlobBucket,
		"LocalJWT", cfg.SupabaseJWTSecret != "",
		"CORSAllowAll", cfg.CORSAllowAll,
	)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("Starting server", "addr", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
}

// newLogger: для debug development-конфиг, иначе production с заданным уровнем.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if lvl == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

func newRepositories(cfg *config.Config, client *supabase.Client) (repo.ItemRepository, repo.ProfileRepository, error) {
	if cfg.RowStore == config.RowStorePostgres {
		gormDB, err := repo.InitDB(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewItemRepository(gormDB, cfg.ItemsTable), repo.NewProfileRepository(gormDB, cfg.ProfilesTable), nil
	}
	return rest.NewItemRepository(client, cfg.ItemsTable), rest.NewProfileRepository(client, cfg.ProfilesTable), nil
}

func newBlobStore(ctx context.Context, cfg *config.Config, client *supabase.Client) (storage.Store, error) {
	switch cfg.BlobDriver {
	case config.BlobDriverS3:
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.BlobBucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		return s3Store, nil
	case config.BlobDriverMinio:
		minioStore, err := storage.NewMinioStore(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKeyID, cfg.S3SecretAccessKey, cfg.BlobBucket, cfg.S3UseSSL)
		if err != nil {
			return nil, err
		}
		return minioStore, nil
	default:
		return storage.NewSupabaseStore(client, cfg.BlobBucket), nil
	}
}

// newVerifier: с JWT secret токены проверяются локально, иначе через сервис аутентификации.
func newVerifier(cfg *config.Config, client *supabase.Client) auth.Verifier {
	if cfg.SupabaseJWTSecret != "" {
		return auth.NewJWTVerifier(cfg.SupabaseJWTSecret, "authenticated")
	}
	return auth.NewRemoteVerifier(client)
}
