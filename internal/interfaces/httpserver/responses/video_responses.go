package responses

import (
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/upload"
	"github.com/SimonRiley0-7/youtube-clone/internal/utils/platformerrors"
)

// UploadURLResponse is returned by both upload-URL endpoints.
type UploadURLResponse struct {
	UploadURL   string `json:"uploadUrl"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// BuildUploadURLResponse maps an issued ticket to the wire shape.
func BuildUploadURLResponse(ticket *upload.Ticket) *UploadURLResponse {
	return &UploadURLResponse{
		UploadURL:   ticket.UploadURL,
		Key:         ticket.Key,
		ContentType: ticket.ContentType,
		ExpiresIn:   ticket.ExpiresIn,
	}
}

// DurationResponse reports where a video can be fetched. Duration is not
// computed server side and is always null.
type DurationResponse struct {
	Duration *float64 `json:"duration"`
	VideoURL string   `json:"videoUrl"`
}

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ErrorResponse documents the error envelope for swagger.
type ErrorResponse = platformerrors.HTTPErrorResponse
