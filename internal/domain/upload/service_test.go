package upload

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

type fakePresigner struct {
	calls    int
	lastKey  string
	lastType string
	lastTTL  time.Duration
	err      error
}

func (f *fakePresigner) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error) {
	f.calls++
	f.lastKey = key
	f.lastType = contentType
	f.lastTTL = ttl
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.example/" + key + "?sig=1", nil
}

var videoKeyPattern = regexp.MustCompile(`^videos/[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.mp4$`)

func TestIssueVideoKeysAreUnique(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewService(presigner, time.Hour, zerolog.Nop())

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		ticket, err := svc.Issue(context.Background(), KindVideo, "")
		require.NoError(t, err)
		require.Regexp(t, videoKeyPattern, ticket.Key)
		_, dup := seen[ticket.Key]
		require.False(t, dup, "duplicate key %s", ticket.Key)
		seen[ticket.Key] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestIssueVideoTicket(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewService(presigner, time.Hour, zerolog.Nop(), WithIDFunc(func() string { return "abc" }))

	ticket, err := svc.Issue(context.Background(), KindVideo, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "videos/abc.mp4", ticket.Key)
	assert.Equal(t, VideoContentType, ticket.ContentType)
	assert.Equal(t, 3600, ticket.ExpiresIn)
	assert.Equal(t, "https://bucket.example/videos/abc.mp4?sig=1", ticket.UploadURL)
	assert.Equal(t, VideoContentType, presigner.lastType)
	assert.Equal(t, time.Hour, presigner.lastTTL)
}

func TestIssueThumbnailContentTypes(t *testing.T) {
	tests := []struct {
		name     string
		hint     string
		wantKey  string
		wantType string
	}{
		{"png", "image/png", "thumbnails/abc.png", "image/png"},
		{"jpeg", "image/jpeg", "thumbnails/abc.jpg", "image/jpeg"},
		{"webp keeps type but uses jpg extension", "image/webp", "thumbnails/abc.jpg", "image/webp"},
		{"absent defaults to jpeg", "", "thumbnails/abc.jpg", "image/jpeg"},
		{"non-image defaults to jpeg", "application/pdf", "thumbnails/abc.jpg", "image/jpeg"},
		{"parameters and case are ignored", "IMAGE/PNG; charset=binary", "thumbnails/abc.png", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presigner := &fakePresigner{}
			svc := NewService(presigner, time.Hour, zerolog.Nop(), WithIDFunc(func() string { return "abc" }))

			ticket, err := svc.Issue(context.Background(), KindThumbnail, tt.hint)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, ticket.Key)
			assert.Equal(t, tt.wantType, ticket.ContentType)
			assert.Equal(t, tt.wantType, presigner.lastType)
		})
	}
}

func TestIssuePresignFailure(t *testing.T) {
	presigner := &fakePresigner{err: errors.New("no credentials")}
	svc := NewService(presigner, time.Hour, zerolog.Nop())

	ticket, err := svc.Issue(context.Background(), KindThumbnail, "image/png")
	assert.Nil(t, ticket)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.NotContains(t, platformerrors.GetPlatformError(err).Message, "no credentials")
}

func TestIssueUnknownKind(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewService(presigner, time.Hour, zerolog.Nop())

	_, err := svc.Issue(context.Background(), Kind("audio"), "")
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Zero(t, presigner.calls)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind(" Video ")
	require.NoError(t, err)
	assert.Equal(t, KindVideo, kind)

	kind, err = ParseKind("thumbnail")
	require.NoError(t, err)
	assert.Equal(t, KindThumbnail, kind)

	_, err = ParseKind("audio")
	assert.Error(t, err)
}

func TestNewServiceDefaultsTTL(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewService(presigner, 0, zerolog.Nop())

	ticket, err := svc.Issue(context.Background(), KindVideo, "")
	require.NoError(t, err)
	assert.Equal(t, 3600, ticket.ExpiresIn)
}
