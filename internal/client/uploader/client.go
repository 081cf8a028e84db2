package uploader

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Ticket is an upload URL issued by the API.
type Ticket struct {
	UploadURL   string `json:"uploadUrl"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// RegisterRequest is the metadata posted once both objects are stored.
type RegisterRequest struct {
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	S3Key          string  `json:"s3_key"`
	ThumbnailS3Key *string `json:"thumbnail_s3_key,omitempty"`
}

// Video mirrors the API's video record.
type Video struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	S3Key          string    `json:"s3_key"`
	ThumbnailS3Key *string   `json:"thumbnail_s3_key"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type apiError struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client talks to the video API and to presigned storage URLs.
type Client struct {
	api     *resty.Client
	storage *resty.Client
}

// NewClient builds a client for the API at baseURL. Object PUTs use a
// separate client with no base URL and no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	api := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", "video-cli/1.0").
		SetTimeout(timeout)
	storage := resty.New().
		SetHeader("User-Agent", "video-cli/1.0")
	return &Client{api: api, storage: storage}
}

// VideoUploadURL requests a presigned URL for a new video object.
func (c *Client) VideoUploadURL(ctx context.Context) (*Ticket, error) {
	var ticket Ticket
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&ticket).
		SetError(&apiError{}).
		Get("/generate-upload-url")
	if err := checkResponse("request video upload url", resp, err); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ThumbnailUploadURL requests a presigned URL for a thumbnail of contentType.
func (c *Client) ThumbnailUploadURL(ctx context.Context, contentType string) (*Ticket, error) {
	var ticket Ticket
	req := c.api.R().
		SetContext(ctx).
		SetResult(&ticket).
		SetError(&apiError{})
	if contentType != "" {
		req.SetQueryParam("fileType", contentType)
	}
	resp, err := req.Get("/generate-thumbnail-upload-url")
	if err := checkResponse("request thumbnail upload url", resp, err); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Put uploads data to a presigned URL with the content type it was signed for.
func (c *Client) Put(ctx context.Context, uploadURL, contentType string, data []byte) error {
	resp, err := c.storage.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(uploadURL)
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("put object: storage returned %d", resp.StatusCode())
	}
	return nil
}

// Register records video metadata.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Video, error) {
	var v Video
	resp, err := c.api.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&v).
		SetError(&apiError{}).
		Post("/videos")
	if err := checkResponse("register video", resp, err); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVideos fetches the catalog, newest first.
func (c *Client) ListVideos(ctx context.Context) ([]Video, error) {
	var videos []Video
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&videos).
		SetError(&apiError{}).
		Get("/videos")
	if err := checkResponse("list videos", resp, err); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideo fetches one video by storage key.
func (c *Client) GetVideo(ctx context.Context, key string) (*Video, error) {
	var v Video
	resp, err := c.api.R().
		SetContext(ctx).
		SetResult(&v).
		SetError(&apiError{}).
		Get("/videos/" + url.PathEscape(key))
	if err := checkResponse("get video", resp, err); err != nil {
		return nil, err
	}
	return &v, nil
}

func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%s: %s (%d)", op, apiErr.Error.Message, resp.StatusCode())
	}
	return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode())
}
