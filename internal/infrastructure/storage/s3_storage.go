package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// presignMiddlewareID is the finalize step that computes the SigV4 query
// signature for presigned requests.
const presignMiddlewareID = "PresignHTTPRequest"

var errStorageDisabled = errors.New("object storage is not configured; set S3_BUCKET_NAME to enable uploads")

// S3Storage issues presigned write URLs for an S3-compatible bucket. It never
// reads or writes object bytes itself.
type S3Storage struct {
	bucket   string
	presign  *s3.PresignClient
	log      zerolog.Logger
	disabled bool
}

// NewS3Storage builds the presign client. Static credentials are used when
// both AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are set; otherwise the
// default AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*S3Storage, error) {
	logger := log.With().Str("component", "s3-storage").Logger()
	storage := &S3Storage{
		bucket: strings.TrimSpace(cfg.S3Bucket),
		log:    logger,
	}

	if storage.bucket == "" {
		logger.Warn().Msg("S3_BUCKET_NAME is not set; upload URL requests will fail until configured")
		storage.disabled = true
		return storage, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	storage.presign = s3.NewPresignClient(client)
	logger.Info().Str("bucket", storage.bucket).Str("region", cfg.S3Region).Msg("s3 storage ready")
	return storage, nil
}

func (s *S3Storage) ensureEnabled(ctx context.Context) error {
	if s.disabled {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeUnavailable,
			"object storage is not configured", errStorageDisabled, "storage-disabled")
	}
	return nil
}

// PresignPut signs a single PUT of contentType to key, valid for ttl.
func (s *S3Storage) PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error) {
	if err := s.ensureEnabled(ctx); err != nil {
		return "", err
	}

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	},
		s3.WithPresignExpires(ttl),
		s3.WithPresignClientFromClientOptions(func(o *s3.Options) {
			o.APIOptions = append(o.APIOptions, signContentType(contentType))
		}),
	)
	if err != nil {
		return "", platformerrors.NewErrorWithContext(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"presign put object", err, "storage-presign-failed", map[string]any{"key": key})
	}
	return req.URL, nil
}

// signContentType puts Content-Type on the request right before it is signed,
// so it lands in X-Amz-SignedHeaders and a PUT with another type is rejected.
func signContentType(contentType string) func(*middleware.Stack) error {
	return func(stack *middleware.Stack) error {
		mw := middleware.FinalizeMiddlewareFunc("SignContentType", func(
			ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler,
		) (middleware.FinalizeOutput, middleware.Metadata, error) {
			if req, ok := in.Request.(*smithyhttp.Request); ok {
				req.Header.Set("Content-Type", contentType)
			}
			return next.HandleFinalize(ctx, in)
		})

		if err := stack.Finalize.Insert(mw, presignMiddlewareID, middleware.Before); err != nil {
			return stack.Finalize.Add(mw, middleware.Before)
		}
		return nil
	}
}
