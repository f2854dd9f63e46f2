package upload

import (
	"context"
	"crypto/sha1" //nolint:gosec // cloudinary mandates SHA-1 request signatures
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

const (
	cloudinaryEndpoint = "https://api.cloudinary.com/v1_1/%s/image/upload"
	defaultFolder      = "portfolio"
	requestTimeout     = 30 * time.Second
)

// Cloudinary submits base64-encoded files to the Cloudinary upload API and
// returns the host's secure URLs.
type Cloudinary struct {
	cfg    config.Cloudinary
	client *http.Client
}

// cloudinaryResponse is the subset of the upload API response we consume.
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewCloudinary creates a Cloudinary backend from the configured credentials.
func NewCloudinary(cfg config.Cloudinary) *Cloudinary {
	if cfg.Folder == "" {
		cfg.Folder = defaultFolder
	}

	return &Cloudinary{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Upload submits each file as a data URI and collects the secure URLs.
func (c *Cloudinary) Upload(ctx context.Context, files []File) ([]UploadedFile, error) {
	if err := validate(files); err != nil {
		return nil, err
	}

	out := make([]UploadedFile, 0, len(files))

	for _, file := range files {
		secureURL, err := c.uploadOne(ctx, file)
		if err != nil {
			log.Error().Err(err).Str("filename", file.Name).Msg("cloudinary upload failed")
			return nil, errs.Storage("Failed to upload files", err)
		}

		out = append(out, UploadedFile{
			URL:      secureURL,
			Filename: file.Name,
		})
	}

	return out, nil
}

func (c *Cloudinary) uploadOne(ctx context.Context, file File) (string, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s",
		contentType,
		base64.StdEncoding.EncodeToString(file.Data),
	)

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	form := url.Values{}
	form.Set("file", dataURI)
	form.Set("api_key", c.cfg.APIKey)
	form.Set("timestamp", timestamp)
	form.Set("folder", c.cfg.Folder)
	form.Set("signature", c.sign(timestamp))

	endpoint := fmt.Sprintf(cloudinaryEndpoint, c.cfg.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build cloudinary request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to reach cloudinary")
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read cloudinary response")
	}

	var decoded cloudinaryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", errors.Wrap(err, "failed to decode cloudinary response")
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error.Message != "" {
			return "", errors.Errorf("cloudinary rejected upload: %s", decoded.Error.Message)
		}
		return "", errors.Errorf("cloudinary returned status %d", resp.StatusCode)
	}

	return decoded.SecureURL, nil
}

// sign computes the request signature over the signed params in alphabetical
// order, as the Cloudinary upload API requires.
func (c *Cloudinary) sign(timestamp string) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%s%s", c.cfg.Folder, timestamp, c.cfg.APISecret)
	sum := sha1.Sum([]byte(payload)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}
