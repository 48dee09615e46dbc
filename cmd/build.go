package cmd

import (
	"github.com/bgraf/trackmap/building"
	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the map page with its data and photos into the build directory",
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", "", "Build directory")
	buildCmd.Flags().Bool("clean", false, "Rebuild even if the inputs did not change")

	mustBindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output"))
}

func runBuild(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	isCleanBuild, err := cmd.Flags().GetBool("clean")
	if err != nil {
		return err
	}

	tripDirectory := filesystem.Abs(settings.Trip.Directory)
	buildDirectory := filesystem.Abs(filesystem.ResolvePath(tripDirectory, settings.Build.Directory))

	logger.Info().
		Str("trip", tripDirectory).
		Str("build", buildDirectory).
		Msg("building")

	_, err = building.Build(settings, building.Options{
		Clean:          isCleanBuild,
		BaseDirectory:  tripDirectory,
		BuildDirectory: buildDirectory,
	}, logger)

	return err
}
