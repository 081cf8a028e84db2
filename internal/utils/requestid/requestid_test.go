package requestid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsLowercaseULID(t *testing.T) {
	id := New()
	assert.Len(t, id, 26)
	assert.Regexp(t, `^[0-9a-hjkmnp-tv-z]{26}$`, id)
	assert.NotEqual(t, id, New())
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", FromContext(ctx))
	assert.Empty(t, FromContext(context.Background()))
}
