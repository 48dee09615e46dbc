package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/bgraf/trackmap/res"
)

// MapConfig is handed to the map script on the page.
type MapConfig struct {
	Center [2]float64 `json:"center"`
	Zoom   float64    `json:"zoom"`
	Tiles  string     `json:"tiles"`

	// PhotosURL is empty when no valid photo features exist; the layer is omitted then.
	PhotosURL   string           `json:"photosURL,omitempty"`
	RouteURL    string           `json:"routeURL,omitempty"`
	RouteColors []string         `json:"routeColors"`
	Assets      map[string]Asset `json:"assets"`

	// SessionsURL enables server-side interaction handling. Static pages fall back to plain
	// tooltips.
	SessionsURL string `json:"sessionsURL,omitempty"`
	Overlay     bool   `json:"overlay"`
}

type Page struct {
	Title       string
	Subtitle    string
	Description Description
	StaticURL   string
	Map         MapConfig
}

func ReadTemplates(locale string) (*template.Template, error) {
	templates, err := template.New("").Funcs(makeTemplateFuncmap(locale)).ParseFS(res.Templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}

func WritePage(w io.Writer, templates *template.Template, page Page) error {
	if err := templates.ExecuteTemplate(w, "map.html", page); err != nil {
		return fmt.Errorf("could not execute template: %w", err)
	}

	return nil
}
