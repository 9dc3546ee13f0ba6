package sources

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alape/bfi/configs"
)

// SearchPaths are directories consulted, in order, for relative paths
// missing from the working directory.
type SearchPaths []string

func (Module) SearchPaths(
	loader configs.Loader,
) (ret SearchPaths) {
	for paths := range configs.All[[]string](loader, "source_paths") {
		ret = append(ret, paths...)
	}
	return
}

func (s SearchPaths) open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err == nil || filepath.IsAbs(path) || !errors.Is(err, fs.ErrNotExist) {
		return f, err
	}
	for _, dir := range s {
		f, e := os.Open(filepath.Join(dir, path))
		if e == nil {
			return f, nil
		}
		if !errors.Is(e, fs.ErrNotExist) {
			return nil, e
		}
	}
	return nil, err
}
