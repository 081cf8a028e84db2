package video

import "context"

// Repository exposes persistence for Video records.
//
// GetByKey returns a NOT_FOUND platform error on a miss. Create and
// CreateIfAbsent fill in ID and timestamps; Create returns a CONFLICT platform
// error when the s3_key already exists.
type Repository interface {
	List(ctx context.Context) ([]Video, error)
	GetByKey(ctx context.Context, key string) (*Video, error)
	Create(ctx context.Context, v *Video) error
	CreateIfAbsent(ctx context.Context, v *Video) (bool, error)
	Ping(ctx context.Context) error
}
