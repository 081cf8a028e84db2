package main

import (
	"context"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/database"
	videorepo "github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/repository/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/storage"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver"
)

// buildApplication assembles the same graph as BuildApplication in wire.go.
func buildApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Application, func(), error) {
	repo, cleanup, err := provideVideoRepository(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	presigner, err := storage.NewS3Storage(ctx, cfg, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	videoService := video.NewService(repo, log)
	uploadService := provideUploadService(presigner, cfg, log)
	httpServer := httpserver.New(cfg, log, videoService, uploadService)
	return NewApplication(httpServer, log), cleanup, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

// provideVideoRepository opens and migrates Postgres, or returns the
// in-memory store when VIDEO_STORE_BACKEND=memory. The cleanup closes the pool.
func provideVideoRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (video.Repository, func(), error) {
	if cfg.IsMemoryStore() {
		log.Warn().Msg("using in-memory video store; data is lost on restart")
		return videorepo.NewInMemoryRepository(), func() {}, nil
	}

	db, err := database.Connect(newDatabaseConfig(cfg))
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}

	if err := database.Migrate(ctx, db, log); err != nil {
		cleanup()
		return nil, nil, err
	}
	return videorepo.NewPostgresRepository(db), cleanup, nil
}

func provideUploadService(presigner upload.Presigner, cfg *config.Config, log zerolog.Logger) upload.Service {
	return upload.NewService(presigner, cfg.UploadURLTTL, log)
}
