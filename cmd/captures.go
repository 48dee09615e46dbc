package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/data"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/images"
	"github.com/spf13/cobra"
)

var genCapturesCmd = &cobra.Command{
	Use:   "captures [PHOTO-DIRECTORY...]",
	Short: "Build the capture index from the EXIF times of the photos",
	RunE:  runGenCaptures,
}

var genThumbsCmd = &cobra.Command{
	Use:   "thumbs [PHOTO-DIRECTORY...]",
	Short: "Scale the photos into the thumbnail directory",
	RunE:  runGenThumbs,
}

func init() {
	genCmd.AddCommand(genCapturesCmd)
	genCmd.AddCommand(genThumbsCmd)

	genCapturesCmd.Flags().Duration("offset", 0, "Added to every capture time, e.g. to correct the camera clock")
	genCapturesCmd.Flags().String("timezone", "Local", "Time zone the camera clock was set to")

	genThumbsCmd.Flags().IntP("workers", "j", 0, "Number of parallel workers (default: number of CPUs)")
}

func photoRoots(settings *config.Settings, args []string) []string {
	if len(args) > 0 {
		return args
	}

	return []string{tripPaths(settings).Photos}
}

func runGenCaptures(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	offset, err := cmd.Flags().GetDuration("offset")
	if err != nil {
		return err
	}

	tz, err := cmd.Flags().GetString("timezone")
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("time zone: %w", err)
	}

	captures, err := images.ScanCaptures(photoRoots(settings, args), loc, offset, logger)
	if err != nil {
		return err
	}

	if len(captures) == 0 {
		return fmt.Errorf("no photos with capture time found")
	}

	paths := tripPaths(settings)
	if ok, err := confirmOverwrite(cmd, paths.Captures); err != nil || !ok {
		return err
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(paths.Captures)); err != nil {
		return err
	}

	if err := data.WriteCaptureIndex(paths.Captures, captures); err != nil {
		return err
	}

	logger.Info().Int("photos", len(captures)).Str("file", paths.Captures).Msg("written capture index")
	return nil
}

func runGenThumbs(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}

	photos, err := filesystem.GatherFiles(photoRoots(settings, args), images.Extensions)
	if err != nil {
		return fmt.Errorf("scanning files: %w", err)
	}

	thumbsDirectory := tripPaths(settings).Thumbs
	if err := filesystem.CreateDirectoryIfNotExists(thumbsDirectory); err != nil {
		return err
	}

	failures := images.MakeThumbnails(photos, thumbsDirectory, images.ThumbOptions{
		Size:    settings.Thumbs.Size,
		Workers: workers,
	}, logger)

	logger.Info().
		Int("photos", len(photos)).
		Int("failed", failures).
		Str("directory", thumbsDirectory).
		Msg("thumbnails done")

	if failures > 0 {
		return fmt.Errorf("%d thumbnail(s) failed", failures)
	}

	return nil
}
