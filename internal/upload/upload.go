// Package upload implements the file upload adapter. Two interchangeable
// backends satisfy the Uploader contract: local disk storage and the
// Cloudinary image host. The backend is a deployment-time configuration
// choice, invisible to callers.
package upload

import (
	"context"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

// File is one binary upload taken from a multipart form.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadedFile is the public result of a stored file.
type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Uploader stores a batch of files and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, files []File) ([]UploadedFile, error)
}

// New selects the backend from the configuration.
func New(cfg *config.Config) Uploader {
	if cfg.Upload.Backend == config.UploadBackendCloudinary {
		return NewCloudinary(cfg.Upload.Cloudinary)
	}

	return NewLocal(cfg.Upload.LocalDir)
}

// validate rejects an empty batch before any backend work happens.
func validate(files []File) error {
	if len(files) == 0 {
		return errs.Upload("No files uploaded", nil)
	}

	return nil
}
