package store

import (
	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/render"
)

// PageURLs are the locations the page loads its data from.
type PageURLs struct {
	Static   string
	Photos   string
	Route    string
	Sessions string
}

// Page assembles the map page for the trip.
func (t *Trip) Page(s *config.Settings, urls PageURLs, resolve render.AssetResolver) (render.Page, error) {
	segments := len(t.Route) - 1
	colors, err := render.RouteGradient(render.RouteColorStart, render.RouteColorEnd, segments)
	if err != nil {
		return render.Page{}, err
	}

	title := t.Description.Title
	if title == "" {
		title = "Trip"
	}

	mapConfig := render.MapConfig{
		Center:      [2]float64{s.Map.Center.Lat, s.Map.Center.Lon},
		Zoom:        s.Map.Zoom,
		Tiles:       s.Map.Tiles,
		RouteURL:    urls.Route,
		RouteColors: colors,
		Assets:      map[string]render.Asset{},
		SessionsURL: urls.Sessions,
		Overlay:     s.Interaction.Overlay,
	}

	if t.Photos != nil {
		mapConfig.PhotosURL = urls.Photos
		mapConfig.Assets = render.AssetTable(t.Locations, resolve)
	}

	return render.Page{
		Title:       title,
		Subtitle:    render.TrackSummary(t.Stats, s.Map.Locale),
		Description: t.Description,
		StaticURL:   urls.Static,
		Map:         mapConfig,
	}, nil
}
