package screenshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound reports a missing stored object.
var ErrNotFound = errors.New("screenshot not found")

// DiskStore keeps screenshots as files in one directory.
type DiskStore struct {
	root string
}

// NewDiskStore prepares root and returns a store writing into it.
func NewDiskStore(root string) (*DiskStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("media directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &DiskStore{root: filepath.Clean(root)}, nil
}

// Put writes image bytes under their content-addressed name. Writing an
// existing object is a no-op.
func (s *DiskStore) Put(ctx context.Context, img Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(img.Name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp screenshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(img.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write screenshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close screenshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store screenshot: %w", err)
	}
	return nil
}

// Open returns a reader for a stored object.
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadSeekCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open screenshot: %w", err)
	}
	return file, nil
}

// Delete removes a stored object. Missing objects are ignored.
func (s *DiskStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete screenshot: %w", err)
	}
	return nil
}

func (s *DiskStore) path(name string) (string, error) {
	if s == nil || s.root == "" {
		return "", fmt.Errorf("screenshot store is not configured")
	}
	if !ValidName(name) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.root, name), nil
}
