// Package storage provides the listers that feed the validation engine:
// a local filesystem walker and an S3-compatible object store client.
// Both produce flat lists of absolute keys under a prefix; the engine
// does the rest.
package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/logging"
)

// LocalLister walks a directory tree and reports every file as a
// slash-separated key, mirroring what an object store would return for
// the same layout.
type LocalLister struct {
	logger zerolog.Logger
}

// NewLocalLister creates a lister over the local filesystem.
func NewLocalLister() *LocalLister {
	return &LocalLister{logger: logging.GetLogger("storage.local")}
}

// List returns every file under prefix, including prefix itself when it
// is a regular file. Keys use forward slashes regardless of platform.
func (l *LocalLister) List(ctx context.Context, prefix string) ([]string, error) {
	info, err := os.Stat(prefix)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageAccess, "can't access %s", prefix)
	}
	if !info.IsDir() {
		return []string{filepath.ToSlash(prefix)}, nil
	}

	var keys []string
	err = filepath.WalkDir(prefix, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.IsDir() {
			keys = append(keys, filepath.ToSlash(p))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStorageList, "failed to list %s", prefix)
	}

	l.logger.Debug().Str("prefix", prefix).Int("keyCount", len(keys)).Msg("Listed local paths")
	return keys, nil
}
