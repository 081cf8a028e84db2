package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SimonRiley0-7/youtube-clone/internal/client/uploader"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a video and thumbnail through the API",
	Long: `Request presigned URLs from the API, PUT the thumbnail and the video
straight to object storage, then register the metadata.

A failure at any step stops the upload. Objects already stored are not
removed, and rerunning starts over with new keys.`,
	RunE: runUpload,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos, newest first",
	RunE:  runList,
}

func init() {
	uploadCmd.Flags().String("video", "", "Path to the .mp4 file (required)")
	uploadCmd.Flags().String("thumbnail", "", "Path to the thumbnail image (required)")
	uploadCmd.Flags().String("title", "", "Video title (required)")
	uploadCmd.Flags().String("description", "", "Optional description")
	uploadCmd.Flags().Duration("timeout", 30*time.Second, "API request timeout")
	_ = uploadCmd.MarkFlagRequired("video")
	_ = uploadCmd.MarkFlagRequired("thumbnail")
	_ = uploadCmd.MarkFlagRequired("title")
}

// readFile loads path and sniffs its MIME type from the content.
func readFile(path string) (*uploader.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mime := mimetype.Detect(data)
	contentType := mime.String()
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return &uploader.File{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func runUpload(cmd *cobra.Command, args []string) error {
	apiURL, _ := cmd.Flags().GetString("api")
	videoPath, _ := cmd.Flags().GetString("video")
	thumbPath, _ := cmd.Flags().GetString("thumbnail")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verbose, _ := cmd.Flags().GetBool("verbose")

	videoFile, err := readFile(videoPath)
	if err != nil {
		return fmt.Errorf("read video: %w", err)
	}
	if videoFile.ContentType != "video/mp4" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s looks like %s; it will be stored as video/mp4\n", videoFile.Name, videoFile.ContentType)
	}

	thumbFile, err := readFile(thumbPath)
	if err != nil {
		return fmt.Errorf("read thumbnail: %w", err)
	}
	if !strings.HasPrefix(thumbFile.ContentType, "image/") {
		return fmt.Errorf("thumbnail %s is %s, not an image", thumbFile.Name, thumbFile.ContentType)
	}

	log := zerolog.Nop()
	if verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	}

	out := cmd.OutOrStdout()
	orchestrator := uploader.NewOrchestrator(
		uploader.NewClient(apiURL, timeout),
		log,
		uploader.WithStageHook(func(s uploader.Stage) {
			fmt.Fprintf(out, "-> %s\n", s)
		}),
	)

	v, err := orchestrator.Run(cmd.Context(), uploader.Request{
		Title:       title,
		Description: description,
		Video:       videoFile,
		Thumbnail:   thumbFile,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Uploaded video %d: %s\n", v.ID, v.S3Key)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	apiURL, _ := cmd.Flags().GetString("api")

	videos, err := uploader.NewClient(apiURL, 0).ListVideos(cmd.Context())
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No videos yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tS3 KEY\tCREATED")
	for _, v := range videos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.ID, v.Title, v.S3Key, v.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
