package filesystem

import (
	"os"
	"path/filepath"
	"time"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func IsDirectory(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.IsDir()
}

func FileModifiedTime(path string) (mod time.Time, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return
	}

	mod = fi.ModTime()

	return
}

// ResolvePath interprets p relative to base unless it is absolute or empty.
func ResolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
