package video

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// InMemoryRepository keeps videos in process memory. It is used for local
// runs without Postgres and in tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[string]domain.Video
	now    func() time.Time
}

// InMemoryOption customizes an InMemoryRepository.
type InMemoryOption func(*InMemoryRepository)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) InMemoryOption {
	return func(r *InMemoryRepository) {
		if now != nil {
			r.now = now
		}
	}
}

func NewInMemoryRepository(opts ...InMemoryOption) *InMemoryRepository {
	r := &InMemoryRepository{
		byKey: make(map[string]domain.Video),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	videos := make([]domain.Video, 0, len(r.byKey))
	for _, v := range r.byKey {
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return videos[i].ID > videos[j].ID
	})
	return videos, nil
}

func (r *InMemoryRepository) GetByKey(ctx context.Context, key string) (*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byKey[key]
	if !ok {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"Video not found",
			nil,
			"video-get-not-found",
		)
	}
	return &v, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, v *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[v.S3Key]; exists {
		return platformerrors.NewErrorWithContext(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeConflict,
			"a video with this s3_key already exists",
			nil,
			"video-create-conflict",
			map[string]any{"s3_key": v.S3Key},
		)
	}
	r.insertLocked(v)
	return nil
}

func (r *InMemoryRepository) CreateIfAbsent(ctx context.Context, v *domain.Video) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[v.S3Key]; exists {
		return false, nil
	}
	r.insertLocked(v)
	return true, nil
}

func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *InMemoryRepository) insertLocked(v *domain.Video) {
	r.nextID++
	now := r.now()
	v.ID = r.nextID
	v.CreatedAt = now
	v.UpdatedAt = now
	r.byKey[v.S3Key] = *v
}
