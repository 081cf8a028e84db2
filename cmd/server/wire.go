//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/storage"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver"
)

var videoSet = wire.NewSet(
	provideVideoRepository,
	video.NewService,
)

var uploadSet = wire.NewSet(
	storage.NewS3Storage,
	wire.Bind(new(upload.Presigner), new(*storage.S3Storage)),
	provideUploadService,
)

// BuildApplication assembles the video API with Wire.
func BuildApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Application, func(), error) {
	wire.Build(
		videoSet,
		uploadSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil, nil
}
