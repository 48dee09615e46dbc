package building

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bgraf/trackmap/config"
	"github.com/bgraf/trackmap/filesystem"
)

const cacheFileName = "cache.json"

// buildCache records what the last build was made from. An unchanged cache means the build
// directory is up to date.
type buildCache struct {
	Inputs   []cacheInput `json:"inputs"`
	Settings string       `json:"settings"`
}

type cacheInput struct {
	Path     string   `json:"path"`
	Modified jsonTime `json:"modified"`
}

type jsonTime time.Time

func (j jsonTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(j).UTC().Format(time.RFC3339Nano))
}

func (j *jsonTime) UnmarshalJSON(bytes []byte) error {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}

	*j = jsonTime(t)
	return nil
}

func (c buildCache) Equal(other buildCache) bool {
	if c.Settings != other.Settings {
		return false
	}

	return slices.EqualFunc(c.Inputs, other.Inputs, func(a, b cacheInput) bool {
		return a.Path == b.Path && time.Time(a.Modified).Equal(time.Time(b.Modified))
	})
}

func readBuildCache(buildDirectory string) (cache buildCache, err error) {
	payloadBytes, err := os.ReadFile(filepath.Join(buildDirectory, cacheFileName))
	if err != nil {
		return
	}

	err = json.Unmarshal(payloadBytes, &cache)
	return
}

func makeBuildCache(inputs []string, settings *config.Settings) (buildCache, error) {
	cache := buildCache{Settings: fmt.Sprintf("%+v", *settings)}

	for _, p := range inputs {
		mod, err := filesystem.FileModifiedTime(p)
		if err != nil {
			return buildCache{}, err
		}

		cache.Inputs = append(cache.Inputs, cacheInput{Path: p, Modified: jsonTime(mod)})
	}

	return cache, nil
}

func writeBuildCache(buildDirectory string, cache buildCache) error {
	jsonBytes, err := json.Marshal(cache)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(buildDirectory, cacheFileName), jsonBytes, 0o666)
}
