package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "video-cli",
	Short: "Video catalog CLI",
	Long: `video-cli manages the video catalog database and drives uploads
against a running video API.

Examples:
  # Database
  video-cli ping
  video-cli seed
  video-cli add --title "Canva tutorial" --s3-key videos/tutorial.mp4

  # API
  video-cli upload --video clip.mp4 --thumbnail cover.png --title "My clip"
  video-cli list`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("api", "http://localhost:5000", "Video API base URL")
}
