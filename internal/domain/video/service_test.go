package video_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// MockRepository is a mock implementation of video.Repository for testing.
type MockRepository struct {
	ListFunc           func(ctx context.Context) ([]video.Video, error)
	GetByKeyFunc       func(ctx context.Context, key string) (*video.Video, error)
	CreateFunc         func(ctx context.Context, v *video.Video) error
	CreateIfAbsentFunc func(ctx context.Context, v *video.Video) (bool, error)
	PingFunc           func(ctx context.Context) error
}

func (m *MockRepository) List(ctx context.Context) ([]video.Video, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockRepository) GetByKey(ctx context.Context, key string) (*video.Video, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *MockRepository) Create(ctx context.Context, v *video.Video) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, v)
	}
	return nil
}

func (m *MockRepository) CreateIfAbsent(ctx context.Context, v *video.Video) (bool, error) {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, v)
	}
	return true, nil
}

func (m *MockRepository) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestRegisterRejectsMissingFields(t *testing.T) {
	created := 0
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error {
			created++
			return nil
		},
	}
	svc := video.NewService(repo, zerolog.Nop())

	tests := []struct {
		name  string
		input video.RegisterInput
	}{
		{"missing title", video.RegisterInput{S3Key: "k"}},
		{"missing key", video.RegisterInput{Title: "T"}},
		{"blank title", video.RegisterInput{Title: "   ", S3Key: "k"}},
		{"blank key", video.RegisterInput{Title: "T", S3Key: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.Register(context.Background(), tt.input)
			assert.Nil(t, v)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
		})
	}
	assert.Zero(t, created, "no row may be created for rejected input")
}

func TestRegisterKeepsTitleAndNormalizesOptionalFields(t *testing.T) {
	var stored *video.Video
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error {
			v.ID = 7
			stored = v
			return nil
		},
	}
	svc := video.NewService(repo, zerolog.Nop())

	v, err := svc.Register(context.Background(), video.RegisterInput{
		Title:          "  Demo ",
		S3Key:          "videos/abc.mp4",
		Description:    strPtr("desc"),
		ThumbnailS3Key: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(7), v.ID)
	assert.Equal(t, "  Demo ", v.Title)
	assert.Equal(t, "videos/abc.mp4", v.S3Key)
	assert.Nil(t, v.ThumbnailS3Key)
	require.NotNil(t, v.Description)
	assert.Equal(t, "desc", *v.Description)
}

func TestRegisterPropagatesConflict(t *testing.T) {
	conflict := platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
		platformerrors.ErrorTypeConflict, "video with this s3_key already exists", nil, "dup")
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, v *video.Video) error { return conflict },
	}
	svc := video.NewService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), video.RegisterInput{Title: "T", S3Key: "k"})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))
}

func TestListNeverReturnsNil(t *testing.T) {
	svc := video.NewService(&MockRepository{}, zerolog.Nop())

	videos, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestGetByKeyEmptyIsNotFound(t *testing.T) {
	called := false
	repo := &MockRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*video.Video, error) {
			called = true
			return nil, nil
		},
	}
	svc := video.NewService(repo, zerolog.Nop())

	_, err := svc.GetByKey(context.Background(), "")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.False(t, called)
}

func TestSeedCountsInsertedRows(t *testing.T) {
	seen := map[string]bool{"sample-video-1.mp4": true}
	repo := &MockRepository{
		CreateIfAbsentFunc: func(ctx context.Context, v *video.Video) (bool, error) {
			if seen[v.S3Key] {
				return false, nil
			}
			seen[v.S3Key] = true
			return true, nil
		},
	}
	svc := video.NewService(repo, zerolog.Nop())

	inserted, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSeedStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	repo := &MockRepository{
		CreateIfAbsentFunc: func(ctx context.Context, v *video.Video) (bool, error) { return false, boom },
	}
	svc := video.NewService(repo, zerolog.Nop())

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, boom)
}
