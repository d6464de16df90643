package publish

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/markup/internal/errors"
)

// FileSink writes markup to files below a directory.
type FileSink struct {
	dir string
}

// NewFileSink creates a FileSink, creating dir if needed.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		return nil, errors.New("M031").WithDetail("The file sink needs an output directory.")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("M030").Wrap(err)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Put writes body to dir/key. The file is written to a temporary name
// first and renamed into place.
func (s *FileSink) Put(ctx context.Context, key string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !filepath.IsLocal(key) {
		return errors.New("M031").WithDetail("Key " + key + " escapes the output directory.")
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.New("M030").Wrap(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".publish-*")
	if err != nil {
		return errors.New("M030").Wrap(err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.New("M030").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.New("M030").Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.New("M030").Wrap(err)
	}
	return nil
}
