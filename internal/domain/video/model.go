package video

import "time"

// Video is a registered video record. S3Key is the durable external handle
// and is never reused or mutated.
type Video struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	S3Key          string    `json:"s3_key"`
	ThumbnailS3Key *string   `json:"thumbnail_s3_key"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RegisterInput is the payload for registering a video after its binaries
// have been uploaded.
type RegisterInput struct {
	Title          string
	Description    *string
	S3Key          string
	ThumbnailS3Key *string
}

// SampleVideos are the demo rows inserted by the seed command.
func SampleVideos() []Video {
	return []Video{
		{Title: "Sample Video 1", Description: stringPtr("This is a sample video for testing"), S3Key: "sample-video-1.mp4"},
		{Title: "Sample Video 2", Description: stringPtr("Another sample video"), S3Key: "sample-video-2.mp4"},
	}
}

func stringPtr(s string) *string {
	return &s
}
