package handlers

import (
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
)

// Provider wires HTTP handlers.
type Provider struct {
	Video  *VideoHandler
	Upload *UploadHandler
	Health *HealthHandler
}

func NewProvider(cfg *config.Config, videoService video.Service, uploadService upload.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Video:  NewVideoHandler(cfg, videoService, log),
		Upload: NewUploadHandler(uploadService, log),
		Health: NewHealthHandler(videoService, log),
	}
}
