package uploader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Stage is a step of the upload sequence.
type Stage int

const (
	StageIdle Stage = iota
	StageRequestingURLs
	StageUploadingThumbnail
	StageUploadingVideo
	StageRegisteringMetadata
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageRequestingURLs:
		return "requesting_urls"
	case StageUploadingThumbnail:
		return "uploading_thumbnail"
	case StageUploadingVideo:
		return "uploading_video"
	case StageRegisteringMetadata:
		return "registering_metadata"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrVideoRequired     = errors.New("video file is required")
	ErrThumbnailRequired = errors.New("thumbnail file is required")
)

// StageError reports which stage of the sequence failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// File is an object to upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Request describes one upload.
type Request struct {
	Title       string
	Description string
	Video       *File
	Thumbnail   *File
}

// API is the subset of Client the orchestrator drives.
type API interface {
	VideoUploadURL(ctx context.Context) (*Ticket, error)
	ThumbnailUploadURL(ctx context.Context, contentType string) (*Ticket, error)
	Put(ctx context.Context, uploadURL, contentType string, data []byte) error
	Register(ctx context.Context, req RegisterRequest) (*Video, error)
}

// Orchestrator runs the four-stage upload: request both URLs concurrently,
// PUT the thumbnail, PUT the video, then register metadata. Any failure stops
// the sequence. Objects already uploaded are left in place and nothing is
// retried.
type Orchestrator struct {
	api     API
	log     zerolog.Logger
	onStage func(Stage)

	mu    sync.Mutex
	stage Stage
}

// OrchestratorOption customizes an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithStageHook is called on every stage transition.
func WithStageHook(fn func(Stage)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.onStage = fn
	}
}

func NewOrchestrator(api API, log zerolog.Logger, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		api: api,
		log: log.With().Str("component", "upload-orchestrator").Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stage returns the current stage.
func (o *Orchestrator) Stage() Stage {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

func (o *Orchestrator) setStage(s Stage) {
	o.mu.Lock()
	o.stage = s
	o.mu.Unlock()

	o.log.Debug().Str("stage", s.String()).Msg("stage changed")
	if o.onStage != nil {
		o.onStage(s)
	}
}

func (o *Orchestrator) fail(stage Stage, err error) error {
	o.setStage(StageFailed)
	o.log.Warn().Err(err).Str("stage", stage.String()).Msg("upload failed")
	return &StageError{Stage: stage, Err: err}
}

// Run performs one upload. Invalid requests are rejected before any network
// call and leave the orchestrator idle.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Video, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	o.setStage(StageRequestingURLs)
	var videoTicket, thumbTicket *Ticket
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := o.api.VideoUploadURL(gctx)
		videoTicket = t
		return err
	})
	g.Go(func() error {
		t, err := o.api.ThumbnailUploadURL(gctx, req.Thumbnail.ContentType)
		thumbTicket = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, o.fail(StageRequestingURLs, err)
	}

	o.setStage(StageUploadingThumbnail)
	thumbType := thumbTicket.ContentType
	if thumbType == "" {
		thumbType = req.Thumbnail.ContentType
	}
	if err := o.api.Put(ctx, thumbTicket.UploadURL, thumbType, req.Thumbnail.Data); err != nil {
		return nil, o.fail(StageUploadingThumbnail, err)
	}

	o.setStage(StageUploadingVideo)
	videoType := videoTicket.ContentType
	if videoType == "" {
		videoType = "video/mp4"
	}
	if err := o.api.Put(ctx, videoTicket.UploadURL, videoType, req.Video.Data); err != nil {
		return nil, o.fail(StageUploadingVideo, err)
	}

	o.setStage(StageRegisteringMetadata)
	thumbKey := thumbTicket.Key
	reg := RegisterRequest{
		Title:          strings.TrimSpace(req.Title),
		S3Key:          videoTicket.Key,
		ThumbnailS3Key: &thumbKey,
	}
	if req.Description != "" {
		desc := req.Description
		reg.Description = &desc
	}
	v, err := o.api.Register(ctx, reg)
	if err != nil {
		return nil, o.fail(StageRegisteringMetadata, err)
	}

	o.setStage(StageDone)
	o.log.Info().Str("s3_key", v.S3Key).Int64("video_id", v.ID).Msg("upload complete")
	return v, nil
}

func validate(req Request) error {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return ErrTitleRequired
	case req.Video == nil || len(req.Video.Data) == 0:
		return ErrVideoRequired
	case req.Thumbnail == nil || len(req.Thumbnail.Data) == 0:
		return ErrThumbnailRequired
	}
	return nil
}
