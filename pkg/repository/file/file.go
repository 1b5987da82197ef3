package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/repository"
	"github.com/m-mizutani/alertsnap/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Storage keeps artifacts as files under a root directory. Keys are
// slash-separated relative paths; absolute keys are used as they are.
type Storage struct {
	root string
}

var _ interfaces.Storage = (*Storage)(nil)

// New returns a Storage rooted at root. An empty root means the working
// directory.
func New(root string) *Storage {
	return &Storage{root: root}
}

func (x *Storage) path(key string) (string, error) {
	if key == "" {
		return "", goerr.Wrap(repository.ErrInvalidKey, "key is empty")
	}

	p := filepath.FromSlash(key)
	if filepath.IsAbs(p) || x.root == "" {
		return filepath.Clean(p), nil
	}
	return filepath.Join(x.root, p), nil
}

// Put writes data to a temporary file in the destination directory and
// renames it over the destination, so readers see either the previous
// content or the new one. Missing parent directories are created.
func (x *Storage) Put(ctx context.Context, key string, data []byte) error {
	path, err := x.path(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to write temporary file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmpName))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to change file mode", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, path); err != nil {
		safe.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace file", goerr.V("path", path))
	}

	return nil
}

func (x *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := x.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	return data, nil
}
