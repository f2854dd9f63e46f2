package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/errs"
	"github.com/webfolio-cms/webfolio/internal/upload"
)

// setupTestApp creates a fiber app with the handler mounted on a local disk
// backend rooted in a test temp directory.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		Upload: config.Upload{
			Backend:  config.UploadBackendLocal,
			LocalDir: t.TempDir(),
		},
	}

	app := fiber.New()

	svc := Service{}
	svc.Init(app, cfg, upload.New(cfg))

	return app
}

// multipartBody builds a multipart form with the given field to file name
// to content triples.
func multipartBody(t *testing.T, files [][3]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := writer.CreateFormFile(f[0], f[1])
		require.NoError(t, err)
		_, err = part.Write([]byte(f[2]))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func postForm(t *testing.T, app *fiber.App, body io.Reader, contentType string) (*http.Response, []byte) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, Path, body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func TestPost_SingleFile(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := multipartBody(t, [][3]string{
		{SingleField, "shot.png", "png-bytes"},
	})

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out response
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, out.Success)
	require.Len(t, out.Data, 1)
	assert.True(t, strings.HasPrefix(out.Data[0].URL, "/uploads/"))
	assert.Equal(t, "shot.png", out.Data[0].Filename)

	// single uploads carry the convenience url
	assert.Equal(t, out.Data[0].URL, out.URL)
}

func TestPost_MultipleFiles(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := multipartBody(t, [][3]string{
		{MultiField, "a.png", "a-bytes"},
		{MultiField, "b.png", "b-bytes"},
	})

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out response
	require.NoError(t, json.Unmarshal(raw, &out))
	require.True(t, out.Success)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "a.png", out.Data[0].Filename)
	assert.Equal(t, "b.png", out.Data[1].Filename)

	// no convenience url for batches
	assert.Empty(t, out.URL)
}

func TestPost_BothFields(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := multipartBody(t, [][3]string{
		{SingleField, "single.png", "s-bytes"},
		{MultiField, "multi.png", "m-bytes"},
	})

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out response
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Data, 2)
	assert.Equal(t, "single.png", out.Data[0].Filename, "the single field comes first")
	assert.Equal(t, "multi.png", out.Data[1].Filename)
}

func TestPost_NoFiles(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := multipartBody(t, nil)

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"No files uploaded"}`, string(raw))
}

// failingUploader always reports a backend failure.
type failingUploader struct{}

func (failingUploader) Upload(_ context.Context, _ []upload.File) ([]upload.UploadedFile, error) {
	return nil, errs.Storage("Failed to upload files", errors.New("backend down"))
}

func TestPost_BackendFailure(t *testing.T) {
	app := fiber.New()

	svc := Service{}
	svc.Init(app, &config.Config{}, failingUploader{})

	body, contentType := multipartBody(t, [][3]string{
		{SingleField, "shot.png", "png-bytes"},
	})

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Failed to upload files"}`, string(raw))
}

func TestPost_EmptyFileSkipped(t *testing.T) {
	app := setupTestApp(t)

	body, contentType := multipartBody(t, [][3]string{
		{MultiField, "empty.png", ""},
	})

	resp, raw := postForm(t, app, body, contentType)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"No files uploaded"}`, string(raw))
}
