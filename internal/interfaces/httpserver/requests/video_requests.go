package requests

import (
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
)

// RegisterVideoRequest is the body of POST /videos. Required fields are
// checked by the video service so every missing-field path shares one message.
type RegisterVideoRequest struct {
	Title          string  `json:"title" example:"My trip"`
	Description    *string `json:"description,omitempty" example:"Holiday footage"`
	S3Key          string  `json:"s3_key" example:"videos/2f1c0b7e-9f0e-4b4e-9d55-0b5c3f0a9e11.mp4"`
	ThumbnailS3Key *string `json:"thumbnail_s3_key,omitempty" example:"thumbnails/7a3e4c1d-5b2f-4e8a-9c0d-1e2f3a4b5c6d.png"`
}

// ToDomain converts the request to a registration input.
func (r *RegisterVideoRequest) ToDomain() video.RegisterInput {
	return video.RegisterInput{
		Title:          r.Title,
		Description:    r.Description,
		S3Key:          r.S3Key,
		ThumbnailS3Key: r.ThumbnailS3Key,
	}
}

// ThumbnailUploadQuery carries the optional content-type hint.
type ThumbnailUploadQuery struct {
	FileType string `form:"fileType"`
}
