package geotrack

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Layer identifiers of the map sources built from the features below.
const (
	PhotosLayer = "pictures"
	RouteLayer  = "route"
)

// PhotoFeatures wraps every inferred location into a point feature whose only property is the photo
// name. Coordinates are in [lon, lat] order.
func PhotoFeatures(locations []InferredLocation) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, loc := range locations {
		f := geojson.NewFeature(orb.Point{loc.Lon, loc.Lat})
		f.Properties["name"] = loc.Name
		fc.Append(f)
	}

	return fc
}

// RouteFeature wraps the curated route into a single line feature.
func RouteFeature(route Route) *geojson.Feature {
	ls := make(orb.LineString, 0, len(route))
	for _, c := range route {
		ls = append(ls, orb.Point{c[0], c[1]})
	}

	return geojson.NewFeature(ls)
}

// BuildPhotoFeatures runs the matcher and the feature builder in one go.
func BuildPhotoFeatures(track Track, captures []Capture) (*geojson.FeatureCollection, error) {
	locations, err := Match(track, captures)
	if err != nil {
		return nil, err
	}

	return PhotoFeatures(locations), nil
}
