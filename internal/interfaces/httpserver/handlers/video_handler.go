package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/metrics"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/requests"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/responses"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// VideoHandler exposes the video catalog endpoints.
type VideoHandler struct {
	cfg     *config.Config
	service video.Service
	log     zerolog.Logger
}

func NewVideoHandler(cfg *config.Config, service video.Service, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "video-handler").Logger(),
	}
}

// List godoc
// @Summary      List videos
// @Description  Returns every registered video, newest first.
// @Tags         videos
// @Produce      json
// @Success      200  {array}   video.Video
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.service.List(c.Request.Context())
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Get godoc
// @Summary      Get a video by storage key
// @Description  Looks a video up by exact s3_key. Keys containing "/" must be percent-encoded.
// @Tags         videos
// @Produce      json
// @Param        key  path      string  true  "Percent-encoded s3_key"
// @Success      200  {object}  video.Video
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /videos/{key} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	key, err := pathKey(c)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	v, err := h.service.GetByKey(c.Request.Context(), key)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Register godoc
// @Summary      Register a video
// @Description  Records metadata for a video whose binaries have already been uploaded.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.RegisterVideoRequest  true  "Video metadata"
// @Success      201      {object}  video.Video
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      409      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /videos [post]
func (h *VideoHandler) Register(c *gin.Context) {
	var req requests.RegisterVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordRegistration("invalid")
		platformerrors.WriteValidationError(c, "invalid request body")
		return
	}

	v, err := h.service.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		metrics.RecordRegistration(registrationStatus(err))
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.RecordRegistration("success")
	c.JSON(http.StatusCreated, v)
}

// Duration godoc
// @Summary      Resolve playback URL
// @Description  Returns the public URL of a video object. Duration is measured client side and is always null.
// @Tags         videos
// @Produce      json
// @Param        key  path      string  true  "Percent-encoded s3_key"
// @Success      200  {object}  responses.DurationResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Router       /video-duration/{key} [get]
func (h *VideoHandler) Duration(c *gin.Context) {
	key, err := pathKey(c)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}
	key = strings.TrimPrefix(key, "/")
	c.JSON(http.StatusOK, responses.DurationResponse{
		Duration: nil,
		VideoURL: h.cfg.PublicBaseURL() + "/" + key,
	})
}

func registrationStatus(err error) string {
	switch {
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation):
		return "invalid"
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict):
		return "conflict"
	default:
		return "error"
	}
}

// pathKey returns the :key param decoded like decodeURIComponent. gin leaves
// the param escaped when it routed on RawPath; "+" is kept literally.
func pathKey(c *gin.Context) (string, error) {
	raw := c.Param("key")
	if c.Request.URL.RawPath == "" {
		return raw, nil
	}
	key, err := url.PathUnescape(raw)
	if err != nil {
		return "", platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation,
			"invalid video key", err, "video-key-malformed")
	}
	return key, nil
}
