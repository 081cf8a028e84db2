package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

func keyContext(param, rawPath string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/videos/x", nil)
	c.Request.URL.RawPath = rawPath
	c.Params = gin.Params{{Key: "key", Value: param}}
	return c
}

func TestPathKeyDecodesEscapedParam(t *testing.T) {
	key, err := pathKey(keyContext("videos%2Fa+b%25.mp4", "/videos/videos%2Fa+b%25.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "videos/a+b%.mp4", key)
}

func TestPathKeyUsesParamWhenPathWasNotEscaped(t *testing.T) {
	key, err := pathKey(keyContext("plain%.mp4", ""))
	require.NoError(t, err)
	assert.Equal(t, "plain%.mp4", key)
}

func TestPathKeyRejectsBadEscape(t *testing.T) {
	_, err := pathKey(keyContext("bad%zz", "/videos/bad%zz"))
	require.Error(t, err)

	platformErr := platformerrors.GetPlatformError(err)
	require.NotNil(t, platformErr)
	assert.Equal(t, platformerrors.LayerHandler, platformErr.Layer)
	assert.Equal(t, platformerrors.ErrorTypeValidation, platformErr.Type)
}
