package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const ResumePath = "resume/resume.pdf"

var ErrInvalidObjectPath = errors.New("invalid object path")

// PhotoPath is the fixed location of the profile photo for a file extension.
func PhotoPath(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "jpg"
	}
	return "photos/profile." + ext
}

type ObjectStoreInterface interface {
	Put(ctx context.Context, objectPath string, r io.Reader) (string, error)
	Remove(ctx context.Context, objectPath string) error
}

// FileObjectStore keeps objects below a directory that the HTTP server
// exposes at PublicURL.
type FileObjectStore struct {
	dir       string
	publicURL string
}

func NewFileObjectStore(dir, publicURL string) (*FileObjectStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create object directory: %w", err)
	}
	return &FileObjectStore{dir: dir, publicURL: strings.TrimSuffix(publicURL, "/")}, nil
}

func (f *FileObjectStore) resolve(objectPath string) (string, string, error) {
	clean := strings.TrimPrefix(path.Clean("/"+objectPath), "/")
	if clean == "" || clean != strings.TrimPrefix(objectPath, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidObjectPath, objectPath)
	}
	return filepath.Join(f.dir, filepath.FromSlash(clean)), clean, nil
}

func (f *FileObjectStore) Put(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	target, clean, err := f.resolve(objectPath)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := writeFileAtomic(target, r, 0o644); err != nil {
		return "", err
	}
	return f.publicURL + "/" + clean, nil
}

// Remove deletes an object. Removing a missing object is not an error.
func (f *FileObjectStore) Remove(ctx context.Context, objectPath string) error {
	target, _, err := f.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
