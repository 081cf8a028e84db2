package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/metrics"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/requests"
	"github.com/SimonRiley0-7/youtube-clone/internal/interfaces/httpserver/responses"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// UploadHandler issues presigned upload URLs.
type UploadHandler struct {
	service upload.Service
	log     zerolog.Logger
}

func NewUploadHandler(service upload.Service, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		service: service,
		log:     log.With().Str("component", "upload-handler").Logger(),
	}
}

// VideoURL godoc
// @Summary      Issue a video upload URL
// @Description  Generates a fresh videos/<id>.mp4 key and a presigned PUT URL bound to video/mp4.
// @Tags         uploads
// @Produce      json
// @Success      200  {object}  responses.UploadURLResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /generate-upload-url [get]
func (h *UploadHandler) VideoURL(c *gin.Context) {
	h.issue(c, upload.KindVideo, "")
}

// ThumbnailURL godoc
// @Summary      Issue a thumbnail upload URL
// @Description  Generates a fresh thumbnails/<id>.<ext> key. fileType selects the bound image type; anything else falls back to image/jpeg.
// @Tags         uploads
// @Produce      json
// @Param        fileType  query     string  false  "Image MIME type"  example(image/png)
// @Success      200       {object}  responses.UploadURLResponse
// @Failure      500       {object}  responses.ErrorResponse
// @Router       /generate-thumbnail-upload-url [get]
func (h *UploadHandler) ThumbnailURL(c *gin.Context) {
	var query requests.ThumbnailUploadQuery
	_ = c.ShouldBindQuery(&query)
	h.issue(c, upload.KindThumbnail, query.FileType)
}

func (h *UploadHandler) issue(c *gin.Context, kind upload.Kind, hint string) {
	start := time.Now()
	ticket, err := h.service.Issue(c.Request.Context(), kind, hint)
	if err != nil {
		metrics.RecordUploadURL(string(kind), "error", time.Since(start).Seconds())
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.RecordUploadURL(string(kind), "success", time.Since(start).Seconds())
	c.JSON(http.StatusOK, responses.BuildUploadURLResponse(ticket))
}
