package images

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

type ThumbOptions struct {
	// Size bounds width and height of the thumbnails.
	Size    int
	Quality int
	Workers int
}

// ThumbnailName maps a photo name to its thumbnail file name.
func ThumbnailName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	ext = strings.ToLower(ext)
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return base + ext
}

// MakeThumbnail scales src to fit into a size x size box and writes it to dst.
func MakeThumbnail(src, dst string, opts ThumbOptions) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}

	thumb := imaging.Fit(img, opts.Size, opts.Size, imaging.Lanczos)

	quality := opts.Quality
	if quality == 0 {
		quality = 85
	}

	if err := imaging.Save(thumb, dst, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("save %s: %w", dst, err)
	}

	return nil
}

// MakeThumbnails scales all photos into outputDir using a pool of workers. It returns the number of
// failed photos; failures are logged.
func MakeThumbnails(photos []string, outputDir string, opts ThumbOptions, logger zerolog.Logger) int {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	srcFiles := make(chan string)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for src := range srcFiles {
				dst := filepath.Join(outputDir, ThumbnailName(filepath.Base(src)))
				if err := MakeThumbnail(src, dst, opts); err != nil {
					logger.Error().Err(err).Str("photo", src).Msg("thumbnail failed")
					mu.Lock()
					failures++
					mu.Unlock()
					continue
				}
				logger.Debug().Str("photo", src).Str("thumb", dst).Msg("scaled")
			}
		}()
	}

	for _, p := range photos {
		srcFiles <- p
	}

	close(srcFiles)
	wg.Wait()

	return failures
}
