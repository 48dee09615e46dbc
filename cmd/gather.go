package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bgraf/trackmap/data/trackfile"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/images"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// gatherCmd represents the gather command
var gatherCmd = &cobra.Command{
	Use:   "gather SOURCE...",
	Short: "Copy photos and track files of the trip days from camera and logger directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGather,
}

func init() {
	rootCmd.AddCommand(gatherCmd)

	gatherCmd.Flags().StringP("from", "f", time.Now().Format("2006-01-02"), "Earliest date to copy")
	gatherCmd.Flags().StringP("to", "t", "", "Latest date to copy (default: no limit)")
	gatherCmd.Flags().BoolP("all", "a", false, "Copy all and ignore the dates")
}

// gatherTargets maps source files to their place in the trip.
type gatherTargets struct {
	photos string
	tracks string
	from   time.Time
	// to is exclusive; zero means unbounded.
	to time.Time
}

// Target returns the destination of a file modified at mod, or false if it is not gathered.
func (g gatherTargets) Target(path string, mod time.Time) (string, bool) {
	if mod.Before(g.from) || (!g.to.IsZero() && !mod.Before(g.to)) {
		return "", false
	}

	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))

	switch {
	case slices.Contains(images.Extensions, ext):
		return filepath.Join(g.photos, name), true
	case trackfile.IsTrackFile(name) && ext != ".json":
		return filepath.Join(g.tracks, name), true
	}

	return "", false
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date: %w", err)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

func runGather(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	paths := tripPaths(settings)
	targets := gatherTargets{
		photos: paths.Photos,
		tracks: filepath.Dir(paths.Track),
	}

	if all, err := cmd.Flags().GetBool("all"); err != nil || !all {
		from, err := cmd.Flags().GetString("from")
		if err != nil {
			return err
		}

		if targets.from, err = parseDay(from); err != nil {
			return err
		}

		to, err := cmd.Flags().GetString("to")
		if err != nil {
			return err
		}

		if to != "" {
			last, err := parseDay(to)
			if err != nil {
				return err
			}
			targets.to = last.AddDate(0, 0, 1)
		}
	}

	copied := 0
	for _, root := range args {
		n, err := gather(root, targets, logger)
		copied += n
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	logger.Info().Int("files", copied).Msg("gathered")
	return nil
}

func gather(root string, targets gatherTargets, logger zerolog.Logger) (int, error) {
	logger.Info().Str("root", root).Msg("scanning")

	copied := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("file info: %w", err)
		}

		targetFile, ok := targets.Target(path, info.ModTime())
		if !ok {
			return nil
		}

		if filesystem.Exists(targetFile) {
			logger.Debug().Str("file", targetFile).Msg("skipping, already exists")
			return nil
		}

		if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(targetFile)); err != nil {
			return err
		}

		logger.Info().Str("file", targetFile).Msg("copying")
		if err := filesystem.Copy(filesystem.Abs(path), targetFile); err != nil {
			return err
		}
		copied++

		return nil
	})

	return copied, err
}
