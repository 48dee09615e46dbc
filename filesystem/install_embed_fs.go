package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
)

// InstallFS writes every file of fsys below root, recreating the directory structure.
func InstallFS(fsys fs.FS, root string, logger zerolog.Logger) error {
	return installFSDirectory(fsys, ".", root, logger)
}

func installFSDirectory(fsys fs.FS, embedDirectory string, targetDirectory string, logger zerolog.Logger) error {
	if err := CreateDirectoryIfNotExists(targetDirectory); err != nil {
		return fmt.Errorf("creating root directory '%s' failed: %w", targetDirectory, err)
	}

	entries, err := fs.ReadDir(fsys, embedDirectory)
	if err != nil {
		return fmt.Errorf("could not read embedded FS: %w", err)
	}

	for _, entry := range entries {
		// Embedded file systems always use forward slashes.
		embedPath := path.Join(embedDirectory, entry.Name())
		targetPath := filepath.Join(targetDirectory, entry.Name())

		if entry.IsDir() {
			if err = installFSDirectory(fsys, embedPath, targetPath, logger); err != nil {
				return fmt.Errorf("could not install subdirectory: %w", err)
			}
			continue
		}

		logger.Debug().Str("file", embedPath).Msg("installing")

		content, err := fs.ReadFile(fsys, embedPath)
		if err != nil {
			return fmt.Errorf("could not read embedded file '%s': %w", embedPath, err)
		}

		if err := os.WriteFile(targetPath, content, 0666); err != nil {
			return fmt.Errorf("could not write file '%s': %w", targetPath, err)
		}
	}

	return nil
}
