package video

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// Service describes the business logic surface for video metadata.
type Service interface {
	List(ctx context.Context) ([]Video, error)
	GetByKey(ctx context.Context, key string) (*Video, error)
	Register(ctx context.Context, input RegisterInput) (*Video, error)
	Seed(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the video service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "video-service").Logger(),
	}
}

// List returns every video, newest first.
func (s *service) List(ctx context.Context) ([]Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []Video{}
	}
	return videos, nil
}

// GetByKey looks a video up by exact s3_key match.
func (s *service) GetByKey(ctx context.Context, key string) (*Video, error) {
	if strings.TrimSpace(key) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Video not found", nil, "video-get-empty-key")
	}
	return s.repo.GetByKey(ctx, key)
}

// Register inserts a new video row. Title and s3_key are required.
func (s *service) Register(ctx context.Context, input RegisterInput) (*Video, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.S3Key) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title and s3_key are required", nil, "video-register-missing-field")
	}

	v := &Video{
		Title:          input.Title,
		Description:    input.Description,
		S3Key:          input.S3Key,
		ThumbnailS3Key: normalizeOptional(input.ThumbnailS3Key),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.log.Info().Int64("video_id", v.ID).Str("s3_key", v.S3Key).Msg("video registered")
	return v, nil
}

// Seed inserts the sample catalog, skipping keys that already exist. It
// returns the number of rows inserted.
func (s *service) Seed(ctx context.Context) (int, error) {
	inserted := 0
	for _, sample := range SampleVideos() {
		v := sample
		created, err := s.repo.CreateIfAbsent(ctx, &v)
		if err != nil {
			return inserted, err
		}
		if created {
			inserted++
		}
	}
	s.log.Info().Int("inserted", inserted).Msg("sample videos seeded")
	return inserted, nil
}

// Ping reports whether the metadata store answers a trivial round trip.
func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func normalizeOptional(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}
