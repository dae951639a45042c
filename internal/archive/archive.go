package archive

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"roost/internal/config"
)

// Archive is the read-only filesystem side of the engine: one directory per
// author under the configured root, each holding the downloader's media and
// side-car files.
type Archive struct {
	Logger *slog.Logger
	Config *config.Config
}

func (a *Archive) Init(_ context.Context) error {
	a.Logger = a.Logger.With("component", "archive")
	return nil
}

// AuthorDir returns the directory holding the author's files.
func (a *Archive) AuthorDir(handle string) string {
	return filepath.Join(a.Config.ArchiveRoot, handle)
}

// HasAuthor reports whether the author's directory exists.
func (a *Archive) HasAuthor(handle string) bool {
	info, err := os.Stat(a.AuthorDir(handle))
	return err == nil && info.IsDir()
}

// Authors enumerates every author directory under the root.
func (a *Archive) Authors() ([]string, error) {
	entries, err := os.ReadDir(a.Config.ArchiveRoot)
	if err != nil {
		return nil, err
	}

	var handles []string
	for _, entry := range entries {
		if entry.IsDir() {
			handles = append(handles, entry.Name())
		}
	}
	return handles, nil
}
