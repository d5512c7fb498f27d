package admin

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/providers"
	"folio/internal/store"
	"io"
	"path"
	"slices"
	"strings"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

var photoExtensions = []string{"jpg", "jpeg", "png", "webp", "gif"}

// Files stores the resume and profile photo at their fixed object paths.
type Files struct {
	client store.ClientInterface
	logger providers.Logger
}

func NewFiles(client store.ClientInterface, logger providers.Logger) *Files {
	return &Files{client: client, logger: logger}
}

func (f *Files) UploadResume(ctx context.Context, r io.Reader) (string, error) {
	url, err := f.client.UploadFile(ctx, store.ResumePath, r)
	if err != nil {
		return "", err
	}
	f.logger.Infof(providers.TypeAdmin, "Resume uploaded to %s", url)
	return url, nil
}

func (f *Files) DeleteResume(ctx context.Context) error {
	return f.client.DeleteFile(ctx, store.ResumePath)
}

// UploadPhoto stores the photo under the extension of filename.
func (f *Files) UploadPhoto(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext, err := photoExtension(filename)
	if err != nil {
		return "", err
	}
	url, err := f.client.UploadFile(ctx, store.PhotoPath(ext), r)
	if err != nil {
		return "", err
	}
	f.logger.Infof(providers.TypeAdmin, "Photo uploaded to %s", url)
	return url, nil
}

func (f *Files) DeletePhoto(ctx context.Context, filename string) error {
	ext, err := photoExtension(filename)
	if err != nil {
		return err
	}
	return f.client.DeleteFile(ctx, store.PhotoPath(ext))
}

func photoExtension(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if !slices.Contains(photoExtensions, ext) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, filename)
	}
	return ext, nil
}
