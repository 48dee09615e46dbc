package render

import (
	"net/url"
	"path"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/images"
)

// Asset locates the displayed resources of a photo.
type Asset struct {
	Photo string `json:"photo"`
	Thumb string `json:"thumb"`
}

// AssetResolver maps a photo name to its resources. The core only hands out names; resolvers own
// the path conventions.
type AssetResolver func(name string) Asset

// ConventionResolver places photos under photoBase and thumbnails under thumbBase, both named after
// the photo.
func ConventionResolver(photoBase, thumbBase string) AssetResolver {
	return func(name string) Asset {
		return Asset{
			Photo: joinURL(photoBase, name),
			Thumb: joinURL(thumbBase, images.ThumbnailName(name)),
		}
	}
}

func joinURL(base, name string) string {
	return path.Join(base, url.PathEscape(name))
}

// AssetTable resolves the assets of every located photo.
func AssetTable(locations []geotrack.InferredLocation, resolve AssetResolver) map[string]Asset {
	table := make(map[string]Asset, len(locations))
	for _, loc := range locations {
		if _, ok := table[loc.Name]; !ok {
			table[loc.Name] = resolve(loc.Name)
		}
	}

	return table
}
