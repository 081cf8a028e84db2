package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	videoapidocs "github.com/SimonRiley0-7/youtube-clone/docs/swagger"
	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/handlers"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/middlewares"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/routes"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, videoService video.Service, uploadService upload.Service) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	videoapidocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	// Route on the escaped path so /videos/videos%2Fabc.mp4 reaches :key as
	// one segment. Handlers decode the param themselves; gin's unescaping
	// would turn "+" into a space.
	engine.UseRawPath = true
	engine.UnescapePathValues = false

	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Tracing(cfg.ServiceName),
		middlewares.Logging(log),
		middlewares.Metrics(),
		middlewares.CORS(cfg.CORSAllowOrigins),
	)

	handlerProvider := handlers.NewProvider(cfg, videoService, uploadService, log)
	registerCoreRoutes(engine, cfg)
	routes.NewRoutes(handlerProvider).Register(engine)

	engine.NoRoute(func(c *gin.Context) {
		platformerrors.WriteNotFound(c, "route not found")
	})

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the engine for tests and embedding.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("video-api HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": cfg.ServiceName, "status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.StaticDir != "" {
		engine.Static("/app", cfg.StaticDir)
	}
}
