package serve

import (
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/images"
	"github.com/bgraf/trackmap/interaction"
	"github.com/bgraf/trackmap/logging"
	"github.com/bgraf/trackmap/render"
	"github.com/bgraf/trackmap/res"
	"github.com/bgraf/trackmap/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	staticRoute   = "/static"
	photosRoute   = "/photos"
	thumbsRoute   = "/thumbs"
	sessionsRoute = "/api/sessions"
)

type serveAPI struct {
	trip     *store.Trip
	settings *config.Settings
	page     render.Page
	photos   *resourceMap
	thumbs   *resourceMap
	sessions *sessionStore
	logger   zerolog.Logger
}

// Run loads the trip found under baseDirectory and serves it until the server fails.
func Run(settings *config.Settings, baseDirectory string, logger zerolog.Logger) error {
	resolve := render.ConventionResolver(photosRoute, thumbsRoute)

	trip, err := store.Load(store.ResolvePaths(baseDirectory, settings), resolve, logger)
	if err != nil {
		return err
	}
	trip.WarnFarOffsets(settings.Match.WarnOffset, logger)

	r, err := NewRouter(trip, settings, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("address", settings.Serve.Address).Msg("serving")

	return r.Run(settings.Serve.Address)
}

// NewRouter wires the page, its data and the interaction API.
func NewRouter(trip *store.Trip, settings *config.Settings, logger zerolog.Logger) (*gin.Engine, error) {
	resolve := render.ConventionResolver(photosRoute, thumbsRoute)

	page, err := trip.Page(settings, store.PageURLs{
		Static:   staticRoute,
		Photos:   "/photos.geojson",
		Route:    "/route.geojson",
		Sessions: sessionsRoute,
	}, resolve)
	if err != nil {
		return nil, err
	}

	templates, err := render.ReadTemplates(settings.Map.Locale)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return nil, fmt.Errorf("static files: %w", err)
	}

	api := newServeAPI(trip, settings, page, logger)

	r := gin.New()
	r.Use(logging.GinLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(templates)

	r.GET("/", api.ServeIndex)
	r.GET("/photos.geojson", api.ServePhotoFeatures)
	r.GET("/route.geojson", api.ServeRouteFeature)
	r.GET(photosRoute+"/:name", api.ServePhoto)
	r.GET(thumbsRoute+"/:name", api.ServeThumb)
	r.StaticFS(staticRoute, http.FS(static))

	sessions := r.Group(sessionsRoute)
	sessions.POST("", api.CreateSession)
	sessions.GET("/:id", api.ServeSession)
	sessions.POST("/:id/events", api.HandleEvent)

	return r, nil
}

func newServeAPI(trip *store.Trip, settings *config.Settings, page render.Page, logger zerolog.Logger) *serveAPI {
	api := &serveAPI{
		trip:     trip,
		settings: settings,
		page:     page,
		photos:   newResourceMap(),
		thumbs:   newResourceMap(),
		sessions: newSessionStore(interaction.Options{Overlay: settings.Interaction.Overlay}),
		logger:   logger,
	}

	for _, c := range trip.Captures {
		api.photos.Add(c.Name, filepath.Join(trip.Paths.Photos, c.Name))

		thumb := images.ThumbnailName(c.Name)
		api.thumbs.Add(thumb, filepath.Join(trip.Paths.Thumbs, thumb))
	}

	return api
}
