package serve

import (
	"path/filepath"
)

// resourceMap limits file serving to registered names. Requests never reach the file system with a
// client supplied path.
type resourceMap struct {
	byName map[string]string
}

func newResourceMap() *resourceMap {
	return &resourceMap{
		byName: make(map[string]string),
	}
}

func (r *resourceMap) Add(name, srcPath string) {
	var err error
	srcPath, err = filepath.Abs(srcPath)
	if err != nil {
		panic(err)
	}

	r.byName[name] = srcPath
}

func (r *resourceMap) PathFromName(name string) (string, bool) {
	if src, ok := r.byName[name]; ok {
		return src, true
	}

	return "", false
}
