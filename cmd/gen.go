package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/data"
	"github.com/bgraf/trackmap/data/trackfile"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/store"
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate track logs, routes, capture indices and thumbnails",
	Long:  `Generate collects procedures that prepare the inputs of a trip map.`,
}

var genRawCmd = &cobra.Command{
	Use:   "raw CSV-FILE",
	Short: "Convert a CSV track log into the raw JSON track log",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenRaw,
}

var genRouteCmd = &cobra.Command{
	Use:   "route",
	Short: "Derive a simplified route geometry from the track",
	RunE:  runGenRoute,
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.AddCommand(genRawCmd)
	genCmd.AddCommand(genRouteCmd)

	genCmd.PersistentFlags().BoolP("yes", "y", false, "Overwrite existing files without asking")
}

func runGenRaw(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	paths := tripPaths(settings)
	if ok, err := confirmOverwrite(cmd, paths.Track); err != nil || !ok {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(paths.Track)); err != nil {
		return err
	}

	out, err := os.Create(paths.Track)
	if err != nil {
		return err
	}

	n, err := data.ConvertRawCSV(in, out)
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("convert %s: %w", args[0], err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	logger.Info().Int("records", n).Str("file", paths.Track).Msg("written raw track log")
	return nil
}

func runGenRoute(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	paths := tripPaths(settings)

	track, err := trackfile.LoadTrack(paths.Track)
	if err != nil {
		return err
	}

	route := geotrack.RouteFromTrack(track, settings.Route.Simplify)

	if ok, err := confirmOverwrite(cmd, paths.Route); err != nil || !ok {
		return err
	}

	if err := filesystem.CreateDirectoryIfNotExists(filepath.Dir(paths.Route)); err != nil {
		return err
	}

	if err := data.WriteRoute(paths.Route, route); err != nil {
		return err
	}

	logger.Info().
		Int("samples", len(track)).
		Int("points", len(route)).
		Float64("km", geotrack.RouteLengthKm(route)).
		Str("file", paths.Route).
		Msg("written route")

	return nil
}

func tripPaths(settings *config.Settings) store.Paths {
	return store.ResolvePaths(filesystem.Abs(settings.Trip.Directory), settings)
}

// confirmOverwrite asks before an existing file is replaced. It reports true when writing may
// proceed.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	if !filesystem.Exists(path) {
		return true, nil
	}

	if yes, err := cmd.Flags().GetBool("yes"); err != nil || yes {
		return yes, err
	}

	isConfirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite %s", path),
		Default: isConfirmed,
	}

	err := survey.AskOne(prompt, &isConfirmed)
	exitOnInterrupt(err)

	return isConfirmed, err
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
