package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyTripDirectory = "trip.directory"

	KeyTrackFile       = "data.track"
	KeyCapturesFile    = "data.captures"
	KeyRouteFile       = "data.route"
	KeyDescriptionFile = "data.description"

	KeyPhotosDirectory = "assets.photos"
	KeyThumbsDirectory = "assets.thumbs"

	KeyMapCenterLat = "map.center.lat"
	KeyMapCenterLon = "map.center.lon"
	KeyMapZoom      = "map.zoom"
	KeyMapTiles     = "map.tiles"
	KeyMapLocale    = "map.locale"

	KeyOverlay         = "interaction.overlay"
	KeyMatchWarnOffset = "match.warnOffset"
	KeyServeAddress    = "serve.address"
	KeyBuildDirectory  = "build.directory"
	KeyThumbSize       = "thumbs.size"
	KeyRouteSimplify   = "route.simplify"
	KeyLogLevel        = "log.level"
	KeyLogPretty       = "log.pretty"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTripDirectory, ".")

	v.SetDefault(KeyTrackFile, "data/raw.json")
	v.SetDefault(KeyCapturesFile, "images/times.json")
	v.SetDefault(KeyRouteFile, "data/route.json")
	v.SetDefault(KeyDescriptionFile, "")

	v.SetDefault(KeyPhotosDirectory, "images")
	v.SetDefault(KeyThumbsDirectory, "images/thumbs")

	v.SetDefault(KeyMapCenterLat, 38.74433850188757)
	v.SetDefault(KeyMapCenterLon, -109.56237695591732)
	v.SetDefault(KeyMapZoom, 15)
	v.SetDefault(KeyMapTiles, "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault(KeyMapLocale, "en_US")

	v.SetDefault(KeyOverlay, false)
	v.SetDefault(KeyMatchWarnOffset, 120*time.Second)
	v.SetDefault(KeyServeAddress, ":8000")
	v.SetDefault(KeyBuildDirectory, "build")
	v.SetDefault(KeyThumbSize, 400)
	v.SetDefault(KeyRouteSimplify, 0.00005)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, true)
}

// TripSettings locates the trip. Relative data and asset paths are resolved against Directory.
type TripSettings struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type DataSettings struct {
	Track       string `mapstructure:"track" validate:"required"`
	Captures    string `mapstructure:"captures" validate:"required"`
	Route       string `mapstructure:"route" validate:"required"`
	Description string `mapstructure:"description"`
}

type AssetSettings struct {
	Photos string `mapstructure:"photos" validate:"required"`
	Thumbs string `mapstructure:"thumbs" validate:"required"`
}

type CenterSettings struct {
	Lat float64 `mapstructure:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `mapstructure:"lon" validate:"gte=-180,lte=180"`
}

type MapSettings struct {
	Center CenterSettings `mapstructure:"center"`
	Zoom   float64        `mapstructure:"zoom" validate:"gte=0,lte=22"`
	Tiles  string         `mapstructure:"tiles" validate:"required"`
	Locale string         `mapstructure:"locale" validate:"required"`
}

type InteractionSettings struct {
	Overlay bool `mapstructure:"overlay"`
}

type MatchSettings struct {
	WarnOffset time.Duration `mapstructure:"warnOffset" validate:"gte=0"`
}

type ServeSettings struct {
	Address string `mapstructure:"address" validate:"required"`
}

type BuildSettings struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type ThumbSettings struct {
	Size int `mapstructure:"size" validate:"gt=0"`
}

type RouteSettings struct {
	Simplify float64 `mapstructure:"simplify" validate:"gte=0"`
}

type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `mapstructure:"pretty"`
}

// Settings is the validated configuration of a trackmap run.
type Settings struct {
	Trip        TripSettings        `mapstructure:"trip"`
	Data        DataSettings        `mapstructure:"data"`
	Assets      AssetSettings       `mapstructure:"assets"`
	Map         MapSettings         `mapstructure:"map"`
	Interaction InteractionSettings `mapstructure:"interaction"`
	Match       MatchSettings       `mapstructure:"match"`
	Serve       ServeSettings       `mapstructure:"serve"`
	Build       BuildSettings       `mapstructure:"build"`
	Thumbs      ThumbSettings       `mapstructure:"thumbs"`
	Route       RouteSettings       `mapstructure:"route"`
	Log         LogSettings         `mapstructure:"log"`
}

// Load reads all settings from v and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &s, nil
}

// Current loads the settings from the global viper instance.
func Current() (*Settings, error) {
	return Load(viper.GetViper())
}
