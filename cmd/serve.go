package cmd

import (
	"github.com/bgraf/trackmap/cmd/serve"
	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the map page with server-side interaction handling",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address")
	mustBindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address"))
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	if settings.Log.Level != "debug" && settings.Log.Level != "trace" {
		gin.SetMode(gin.ReleaseMode)
	}

	return serve.Run(settings, filesystem.Abs(settings.Trip.Directory), logger)
}
