package video

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/database/entities"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

const uniqueViolation = "23505"

// PostgresRepository persists videos in the videos table.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository around a shared pool.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every video, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Video, error) {
	var rows []entities.Video
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list videos",
			err,
			"video-list-db-001",
		)
	}

	videos := make([]domain.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, mapEntity(row))
	}
	return videos, nil
}

func (r *PostgresRepository) GetByKey(ctx context.Context, key string) (*domain.Video, error) {
	var row entities.Video
	err := r.db.WithContext(ctx).Where("s3_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"Video not found",
				err,
				"video-get-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get video",
			err,
			"video-get-db-001",
		)
	}
	v := mapEntity(row)
	return &v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *domain.Video) error {
	row := toEntity(v)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return platformerrors.NewErrorWithContext(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"a video with this s3_key already exists",
				err,
				"video-create-conflict",
				map[string]any{"s3_key": v.S3Key},
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create video",
			err,
			"video-create-db-001",
		)
	}
	*v = mapEntity(row)
	return nil
}

// CreateIfAbsent inserts v unless its s3_key is taken. It reports whether a
// row was written.
func (r *PostgresRepository) CreateIfAbsent(ctx context.Context, v *domain.Video) (bool, error) {
	row := toEntity(v)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "s3_key"}}, DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return false, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to insert video",
			result.Error,
			"video-insert-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	*v = mapEntity(row)
	return true, nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeUnavailable,
			"database unreachable",
			err,
			"video-ping-db-001",
		)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func toEntity(v *domain.Video) entities.Video {
	return entities.Video{
		Title:          v.Title,
		Description:    v.Description,
		S3Key:          v.S3Key,
		ThumbnailS3Key: v.ThumbnailS3Key,
	}
}

func mapEntity(row entities.Video) domain.Video {
	return domain.Video{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		S3Key:          row.S3Key,
		ThumbnailS3Key: row.ThumbnailS3Key,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
