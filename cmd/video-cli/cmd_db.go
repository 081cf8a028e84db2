package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SimonRiley0-7/youtube-clone/internal/config"
	"github.com/SimonRiley0-7/youtube-clone/internal/domain/video"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/database"
	"github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/logger"
	videorepo "github.com/SimonRiley0-7/youtube-clone/internal/infrastructure/repository/video"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check database connectivity",
	Long:  `Connect to the database and print the server time and version.`,
	RunE:  runPing,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample videos",
	Long:  `Apply migrations and insert the sample catalog. Rows whose s3_key already exists are skipped.`,
	RunE:  runSeed,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a video directly in the database",
	Long:  `Insert one video row for an object that is already in the bucket.`,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().String("title", "", "Video title (required)")
	addCmd.Flags().String("s3-key", "", "Object key of the video (required)")
	addCmd.Flags().String("description", "", "Optional description")
	addCmd.Flags().String("thumbnail-key", "", "Optional object key of the thumbnail")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("s3-key")
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

func cliLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return logger.New(cfg).Level(zerolog.DebugLevel)
	}
	return logger.New(cfg).Level(zerolog.WarnLevel)
}

// openDatabase connects with the server's database settings and applies
// migrations. The caller closes the returned handle.
func openDatabase(ctx context.Context, cmd *cobra.Command) (*gorm.DB, zerolog.Logger, error) {
	loadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if cfg.IsMemoryStore() {
		return nil, zerolog.Nop(), fmt.Errorf("database commands need VIDEO_STORE_BACKEND=postgres")
	}
	log := cliLogger(cmd, cfg)

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    1,
		MaxOpenConns:    2,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Silent,
	})
	if err != nil {
		return nil, log, err
	}
	if err := database.Migrate(ctx, db, log); err != nil {
		_ = database.Close(db)
		return nil, log, err
	}
	return db, log, nil
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, _, err := openDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close(db)

	info, err := database.Inspect(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Database connection successful")
	fmt.Fprintf(cmd.OutOrStdout(), "  server time: %s\n", info.Now.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(cmd.OutOrStdout(), "  version:     %s\n", info.Version)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, log, err := openDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close(db)

	svc := video.NewService(videorepo.NewPostgresRepository(db), log)
	inserted, err := svc.Seed(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d sample videos\n", inserted, len(video.SampleVideos()))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, log, err := openDatabase(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close(db)

	title, _ := cmd.Flags().GetString("title")
	key, _ := cmd.Flags().GetString("s3-key")
	description, _ := cmd.Flags().GetString("description")
	thumbnail, _ := cmd.Flags().GetString("thumbnail-key")

	input := video.RegisterInput{Title: title, S3Key: key}
	if description != "" {
		input.Description = &description
	}
	if thumbnail != "" {
		input.ThumbnailS3Key = &thumbnail
	}

	svc := video.NewService(videorepo.NewPostgresRepository(db), log)
	v, err := svc.Register(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added video %d: %s (%s)\n", v.ID, v.Title, v.S3Key)
	return nil
}
