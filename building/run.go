package building

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/filesystem"
	"github.com/bgraf/trackmap/images"
	"github.com/bgraf/trackmap/render"
	"github.com/bgraf/trackmap/res"
	"github.com/bgraf/trackmap/store"
	"github.com/rs/zerolog"
)

const (
	indexFileName  = "index.html"
	photosFileName = "photos.geojson"
	routeFileName  = "route.geojson"
	staticDir      = "static"
	photosDir      = "photos"
	thumbsDir      = "thumbs"
)

type Options struct {
	Clean bool
	// BaseDirectory anchors relative input paths.
	BaseDirectory  string
	BuildDirectory string
}

// Result summarizes a build.
type Result struct {
	Skipped      bool
	Photos       int
	CopiedAssets int
	FailedAssets int
}

// Build writes a self-contained map page into the build directory. Unless opts.Clean is set, nothing
// is written when neither the inputs nor the settings changed since the last build.
func Build(settings *config.Settings, opts Options, logger zerolog.Logger) (Result, error) {
	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return Result{}, fmt.Errorf("could not ensure build directory: %w", err)
	}

	paths := store.ResolvePaths(opts.BaseDirectory, settings)

	nextCache, err := makeBuildCache(paths.Inputs(), settings)
	if err != nil {
		return Result{}, fmt.Errorf("inspect inputs: %w", err)
	}

	if !opts.Clean {
		currentCache, err := readBuildCache(opts.BuildDirectory)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn().Err(err).Msg("could not read build cache")
		}

		if err == nil && currentCache.Equal(nextCache) && filesystem.Exists(filepath.Join(opts.BuildDirectory, indexFileName)) {
			logger.Info().Msg("nothing to do")
			return Result{Skipped: true}, nil
		}
	}

	resolve := render.ConventionResolver(photosDir, thumbsDir)

	trip, err := store.Load(paths, resolve, logger)
	if err != nil {
		return Result{}, err
	}
	trip.WarnFarOffsets(settings.Match.WarnOffset, logger)

	state := &buildState{
		Options: opts,
		logger:  logger,
	}

	templates, err := render.ReadTemplates(settings.Map.Locale)
	if err != nil {
		return Result{}, err
	}

	page, err := trip.Page(settings, store.PageURLs{
		Static: staticDir,
		Photos: photosFileName,
		Route:  routeFileName,
	}, resolve)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, templates, page); err != nil {
		return Result{}, err
	}

	if err := state.WriteFile(indexFileName, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("could not write index file: %w", err)
	}

	if err := state.WriteJSON(routeFileName, trip.RouteFeature); err != nil {
		return Result{}, err
	}

	result := Result{}

	photosPath := filepath.Join(opts.BuildDirectory, photosFileName)
	if trip.Photos != nil {
		if err := state.WriteJSON(photosFileName, trip.Photos); err != nil {
			return Result{}, err
		}
		result.Photos = len(trip.Photos.Features)
	} else if err := os.Remove(photosPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Result{}, err
	}

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return Result{}, err
	}

	if err := filesystem.InstallFS(static, filepath.Join(opts.BuildDirectory, staticDir), logger); err != nil {
		return Result{}, fmt.Errorf("installation of static files failed: %w", err)
	}

	for _, dir := range []string{photosDir, thumbsDir} {
		if err := filesystem.CreateDirectoryIfNotExists(filepath.Join(opts.BuildDirectory, dir)); err != nil {
			return Result{}, err
		}
	}

	assets := NewAssetSet()
	for _, c := range trip.Captures {
		assets.Add(filepath.Join(paths.Photos, c.Name), filepath.Join(opts.BuildDirectory, photosDir, c.Name))

		thumb := images.ThumbnailName(c.Name)
		assets.Add(filepath.Join(paths.Thumbs, thumb), filepath.Join(opts.BuildDirectory, thumbsDir, thumb))
	}

	result.CopiedAssets, result.FailedAssets = copyAssets(state, assets)

	if err := writeBuildCache(opts.BuildDirectory, nextCache); err != nil {
		return Result{}, fmt.Errorf("write build cache: %w", err)
	}

	logger.Info().
		Str("directory", opts.BuildDirectory).
		Int("photos", result.Photos).
		Int("assets", result.CopiedAssets).
		Msg("build done")

	return result, nil
}

type buildState struct {
	Options
	logger zerolog.Logger
}

// WriteFile writes a file at the given path interpreted relative to the build directory.
func (state *buildState) WriteFile(path string, content []byte) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute path")
	}

	p := filepath.Join(state.BuildDirectory, path)

	return os.WriteFile(p, content, 0o666)
}

func (state *buildState) WriteJSON(path string, v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := state.WriteFile(path, content); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

// copyAssets copies all entries with a pool of workers. Missing or failing files are logged and
// counted; they never abort the build.
func copyAssets(state *buildState, assets *AssetSet) (copied, failed int) {
	type job struct{ src, dst string }

	var (
		wg      sync.WaitGroup
		nCopied atomic.Int64
		nFailed atomic.Int64
		jobs    = make(chan job)
	)

	for i, n := 0, runtime.NumCPU(); i < n; i++ {
		wg.Add(1)
		go func(jobs <-chan job) {
			defer wg.Done()
			for j := range jobs {
				if err := copyIfChanged(j.src, j.dst, state.Clean); err != nil {
					state.logger.Warn().Err(err).Str("file", j.src).Msg("asset not copied")
					nFailed.Add(1)
					continue
				}
				nCopied.Add(1)
			}
		}(jobs)
	}

	_ = assets.ForEach(func(src, dst string) error {
		jobs <- job{src, dst}
		return nil
	})
	close(jobs)

	wg.Wait()

	return int(nCopied.Load()), int(nFailed.Load())
}

func copyIfChanged(src, dst string, force bool) error {
	if !force {
		srcMod, err := filesystem.FileModifiedTime(src)
		if err != nil {
			return err
		}

		if dstMod, err := filesystem.FileModifiedTime(dst); err == nil && dstMod.Equal(srcMod) {
			return nil
		}
	}

	return filesystem.Copy(src, dst)
}
