package upload

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// Presigner signs a single PUT for key, bound to contentType, valid for ttl.
type Presigner interface {
	PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error)
}

// Service issues presigned upload tickets. It never touches object bytes and
// persists nothing.
type Service interface {
	Issue(ctx context.Context, kind Kind, contentTypeHint string) (*Ticket, error)
}

// IDFunc returns a fresh object identifier.
type IDFunc func() string

type service struct {
	presigner Presigner
	ttl       time.Duration
	newID     IDFunc
	log       zerolog.Logger
}

// Option customizes the upload service.
type Option func(*service)

// WithIDFunc overrides the identifier source.
func WithIDFunc(fn IDFunc) Option {
	return func(s *service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService wires the issuer. Identifiers default to random UUIDs.
func NewService(presigner Presigner, ttl time.Duration, log zerolog.Logger, opts ...Option) Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &service{
		presigner: presigner,
		ttl:       ttl,
		newID:     uuid.NewString,
		log:       log.With().Str("component", "upload-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a fresh key for kind and presigns a PUT for it. For videos
// the hint is ignored and the content type is always video/mp4.
func (s *service) Issue(ctx context.Context, kind Kind, contentTypeHint string) (*Ticket, error) {
	var contentType string
	switch kind {
	case KindVideo:
		contentType = VideoContentType
	case KindThumbnail:
		contentType = ThumbnailContentType(contentTypeHint)
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"unknown upload kind", nil, "upload-unknown-kind")
	}

	key := objectKey(kind, s.newID(), contentType)

	url, err := s.presigner.PresignPut(ctx, key, contentType, s.ttl)
	if err != nil {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal,
			"error generating upload URL", err, "upload-presign-failed", map[string]any{"kind": string(kind)})
	}

	s.log.Debug().Str("kind", string(kind)).Str("key", key).Msg("upload url issued")

	return &Ticket{
		UploadURL:   url,
		Key:         key,
		ContentType: contentType,
		ExpiresIn:   int(s.ttl.Seconds()),
	}, nil
}
