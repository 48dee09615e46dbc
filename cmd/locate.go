package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/bgraf/trackmap/render"
	"github.com/bgraf/trackmap/store"
	"github.com/spf13/cobra"
)

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the inferred location of every photo",
	RunE:  runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	settings, logger, err := setup()
	if err != nil {
		return err
	}

	paths := tripPaths(settings)

	trip, err := store.Load(paths, nil, logger)
	if err != nil {
		return err
	}

	if trip.PhotosErr != nil {
		return trip.PhotosErr
	}

	trip.WarnFarOffsets(settings.Match.WarnOffset, logger)

	return writeLocations(os.Stdout, trip, settings.Map.Locale)
}

func writeLocations(out io.Writer, trip *store.Trip, locale string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PHOTO\tLON\tLAT\tOFFSET")
	for i, loc := range trip.Locations {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%s\n", loc.Name, loc.Lon, loc.Lat, trip.Offsets[i])
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%d samples, %s, %s\n",
		trip.Stats.Samples,
		trip.Stats.Duration(),
		render.TrackSummary(trip.Stats, locale),
	)
	return err
}
