package upload

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/webfolio-cms/webfolio/internal/errs"
	"github.com/webfolio-cms/webfolio/internal/uniuri"
)

// uploadsSubdir is the directory below the public root where files land.
const uploadsSubdir = "uploads"

// Local writes uploads under a public static directory using randomly
// generated collision-resistant filenames. Files persist indefinitely;
// orphans of replaced or deleted entities are never reclaimed.
type Local struct {
	dir string
}

// NewLocal creates a local disk backend rooted at the given public directory.
func NewLocal(dir string) *Local {
	if dir == "" {
		dir = "./public"
	}

	return &Local{dir: dir}
}

// Upload stores each file on disk and returns path-relative URLs.
func (l *Local) Upload(_ context.Context, files []File) ([]UploadedFile, error) {
	if err := validate(files); err != nil {
		return nil, err
	}

	target := filepath.Join(l.dir, uploadsSubdir)
	if err := os.MkdirAll(target, 0o750); err != nil {
		return nil, errs.Storage("Failed to upload files", err)
	}

	out := make([]UploadedFile, 0, len(files))

	for _, file := range files {
		name := uniuri.New() + extensionFor(file)

		if err := os.WriteFile(filepath.Join(target, name), file.Data, 0o640); err != nil {
			return nil, errs.Storage("Failed to upload files", err)
		}

		log.Debug().Str("filename", file.Name).Str("stored", name).Msg("stored upload on local disk")

		out = append(out, UploadedFile{
			URL:      "/" + path.Join(uploadsSubdir, name),
			Filename: file.Name,
		})
	}

	return out, nil
}

// extensionFor picks the stored file extension from the original name.
func extensionFor(file File) string {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if ext == "" || strings.ContainsAny(ext, "/\\") {
		return ""
	}

	return ext
}
