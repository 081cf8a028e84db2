package storage

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

func testConfig() *config.Config {
	return &config.Config{
		S3Region:       "us-east-1",
		S3Bucket:       "video-uploads",
		S3AccessKeyID:  "AKIDEXAMPLE",
		S3SecretKey:    "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		S3Endpoint:     "http://localhost:9000",
		S3UsePathStyle: true,
	}
}

func TestPresignPutProducesScopedURL(t *testing.T) {
	storage, err := NewS3Storage(context.Background(), testConfig(), zerolog.Nop())
	require.NoError(t, err)

	raw, err := storage.PresignPut(context.Background(), "videos/abc.mp4", "video/mp4", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/video-uploads/videos/abc.mp4", u.Path)

	query := u.Query()
	assert.Equal(t, "3600", query.Get("X-Amz-Expires"))
	assert.Equal(t, "AWS4-HMAC-SHA256", query.Get("X-Amz-Algorithm"))
	assert.NotEmpty(t, query.Get("X-Amz-Signature"))
	assert.True(t, strings.HasPrefix(query.Get("X-Amz-Credential"), "AKIDEXAMPLE/"))
	assert.Contains(t, query.Get("X-Amz-SignedHeaders"), "content-type")
}

func TestPresignPutHonoursTTL(t *testing.T) {
	storage, err := NewS3Storage(context.Background(), testConfig(), zerolog.Nop())
	require.NoError(t, err)

	raw, err := storage.PresignPut(context.Background(), "thumbnails/abc.png", "image/png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestPresignPutDisabledWithoutBucket(t *testing.T) {
	cfg := testConfig()
	cfg.S3Bucket = ""

	storage, err := NewS3Storage(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	_, err = storage.PresignPut(context.Background(), "videos/abc.mp4", "video/mp4", time.Hour)
	assert.ErrorIs(t, err, errStorageDisabled)
	assert.Equal(t, platformerrors.LayerInfrastructure, platformerrors.GetPlatformError(err).Layer)
}

// signatureMatches re-signs a PUT of rawURL carrying contentType the way the
// bucket would and reports whether it reproduces the URL's signature.
func signatureMatches(t *testing.T, rawURL, contentType string) bool {
	t.Helper()
	cfg := testConfig()

	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	query := u.Query()
	want := query.Get("X-Amz-Signature")
	signedAt, err := time.Parse("20060102T150405Z", query.Get("X-Amz-Date"))
	require.NoError(t, err)

	query.Del("X-Amz-Signature")
	u.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodPut, u.String(), nil)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	creds := aws.Credentials{AccessKeyID: cfg.S3AccessKeyID, SecretAccessKey: cfg.S3SecretKey}
	signed, _, err := v4.NewSigner().PresignHTTP(context.Background(), creds, req, "UNSIGNED-PAYLOAD", "s3", cfg.S3Region, signedAt,
		func(o *v4.SignerOptions) { o.DisableURIPathEscaping = true })
	require.NoError(t, err)

	got, err := url.Parse(signed)
	require.NoError(t, err)
	return got.Query().Get("X-Amz-Signature") == want
}

func TestPresignPutRejectsOtherContentType(t *testing.T) {
	storage, err := NewS3Storage(context.Background(), testConfig(), zerolog.Nop())
	require.NoError(t, err)

	raw, err := storage.PresignPut(context.Background(), "thumbnails/abc.png", "image/png", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")

	assert.True(t, signatureMatches(t, raw, "image/png"))
	assert.False(t, signatureMatches(t, raw, "text/html"))
}
