package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates API route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches the catalog, upload and probe routes to router.
func (r *Routes) Register(router gin.IRouter) {
	router.GET("/videos", r.handlers.Video.List)
	router.POST("/videos", r.handlers.Video.Register)
	router.GET("/videos/:key", r.handlers.Video.Get)
	router.GET("/video-duration/:key", r.handlers.Video.Duration)

	router.GET("/generate-upload-url", r.handlers.Upload.VideoURL)
	router.GET("/generate-thumbnail-upload-url", r.handlers.Upload.ThumbnailURL)

	router.GET("/health", r.handlers.Health.Health)
	router.GET("/ready", r.handlers.Health.Ready)
	router.GET("/live", r.handlers.Health.Live)
}
