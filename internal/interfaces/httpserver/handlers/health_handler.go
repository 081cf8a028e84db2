package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/responses"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the metadata store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the operational probes.
type HealthHandler struct {
	store Pinger
	log   zerolog.Logger
}

func NewHealthHandler(store Pinger, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		store: store,
		log:   log.With().Str("component", "health-handler").Logger(),
	}
}

var _ Pinger = (video.Service)(nil)

// Health godoc
// @Summary      Health check
// @Description  Reports store reachability.
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Failure      503  {object}  responses.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.ping(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, responses.HealthResponse{
			Status: "unhealthy",
			Checks: map[string]string{"database": "unreachable"},
		})
		return
	}
	c.JSON(http.StatusOK, responses.HealthResponse{
		Status: "healthy",
		Checks: map[string]string{"database": "ok"},
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Failure      503  {object}  responses.HealthResponse
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.ping(c); err != nil {
		c.JSON(http.StatusServiceUnavailable, responses.HealthResponse{Status: "not_ready"})
		return
	}
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "ready"})
}

// Live godoc
// @Summary      Liveness probe
// @Description  Reports process health only; never touches the store.
// @Tags         health
// @Produce      json
// @Success      200  {object}  responses.HealthResponse
// @Router       /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthResponse{Status: "alive"})
}

func (h *HealthHandler) ping(c *gin.Context) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	err := h.store.Ping(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("metadata store ping failed")
	}
	return err
}
