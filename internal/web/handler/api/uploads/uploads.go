// Package uploads implements the /api/upload endpoint, handing multipart
// files to the configured upload backend.
package uploads

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/errs"
	"github.com/webfolio-cms/webfolio/internal/upload"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

const (
	// Path is the path of the upload endpoint.
	Path = handler.APIPath + "/upload"

	// SingleField is the single-file multipart form field.
	SingleField = "file"

	// MultiField is the multi-file multipart form field.
	MultiField = "files"
)

// Service is the upload API handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	uploader upload.Uploader
}

// Handler is the upload API handler.
var Handler = Service{}

// response extends the envelope with the single-file convenience url.
type response struct {
	Success bool                  `json:"success"`
	URL     string                `json:"url,omitempty"`
	Data    []upload.UploadedFile `json:"data"`
}

// Init initializes the upload API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, uploader upload.Uploader) {
	if app == nil || cfg == nil || uploader == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.uploader = uploader

	app.Post(Path, s.Post)
}

// Post stores the posted files and returns their public URLs. Files arrive
// in the "file" field, the "files" field, or both; the combined ordered list
// must not be empty.
func (s *Service) Post(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return handler.FailErr(c, errs.Upload("No files uploaded", err))
	}

	var headers []*multipart.FileHeader
	headers = append(headers, form.File[SingleField]...)
	headers = append(headers, form.File[MultiField]...)

	files := make([]upload.File, 0, len(headers))

	for _, header := range headers {
		if header.Size == 0 {
			continue
		}

		data, err := readFile(header)
		if err != nil {
			return handler.FailErr(c, errs.Storage("Failed to upload files", err))
		}

		files = append(files, upload.File{
			Name:        header.Filename,
			ContentType: header.Header.Get(fiber.HeaderContentType),
			Data:        data,
		})
	}

	uploaded, err := s.uploader.Upload(c.Context(), files)
	if err != nil {
		return handler.FailErr(c, err)
	}

	resp := response{
		Success: true,
		Data:    uploaded,
	}

	// convenience url for exactly one uploaded file
	if len(uploaded) == 1 {
		resp.URL = uploaded[0].URL
	}

	return c.JSON(resp)
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	return io.ReadAll(file)
}
