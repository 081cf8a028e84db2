package video

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func TestInMemoryCreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	desc := "first upload"
	v := &domain.Video{Title: "Cats", Description: &desc, S3Key: "videos/cats.mp4"}
	require.NoError(t, repo.Create(ctx, v))
	assert.Equal(t, int64(1), v.ID)
	assert.False(t, v.CreatedAt.IsZero())

	got, err := repo.GetByKey(ctx, "videos/cats.mp4")
	require.NoError(t, err)
	assert.Equal(t, *v, *got)
}

func TestInMemoryCreateDuplicateKeyConflicts(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Video{Title: "a", S3Key: "videos/a.mp4"}))
	err := repo.Create(ctx, &domain.Video{Title: "b", S3Key: "videos/a.mp4"})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))

	got, err := repo.GetByKey(ctx, "videos/a.mp4")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestInMemoryGetMissing(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetByKey(context.Background(), "videos/missing.mp4")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestInMemoryListNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository(WithClock(steppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Minute)))
	ctx := context.Background()

	for _, key := range []string{"videos/1.mp4", "videos/2.mp4", "videos/3.mp4"} {
		require.NoError(t, repo.Create(ctx, &domain.Video{Title: key, S3Key: key}))
	}

	videos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, "videos/3.mp4", videos[0].S3Key)
	assert.Equal(t, "videos/2.mp4", videos[1].S3Key)
	assert.Equal(t, "videos/1.mp4", videos[2].S3Key)
}

func TestInMemoryListTieBreaksOnID(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewInMemoryRepository(WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Video{Title: "a", S3Key: "videos/a.mp4"}))
	require.NoError(t, repo.Create(ctx, &domain.Video{Title: "b", S3Key: "videos/b.mp4"}))

	videos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "videos/b.mp4", videos[0].S3Key)
}

func TestInMemoryCreateIfAbsent(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	inserted, err := repo.CreateIfAbsent(ctx, &domain.Video{Title: "a", S3Key: "sample.mp4"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.CreateIfAbsent(ctx, &domain.Video{Title: "b", S3Key: "sample.mp4"})
	require.NoError(t, err)
	assert.False(t, inserted)

	videos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestInMemoryPingHonoursContext(t *testing.T) {
	repo := NewInMemoryRepository()
	assert.NoError(t, repo.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, repo.Ping(ctx), context.Canceled)
}
