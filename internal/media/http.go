package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
	"github.com/vkotlyar/account-keeper/models"
)

type httpUploader struct {
	client    *resty.Client
	uploadURL string
	apiKey    string

	logger *logger.Logger
}

func newHTTPUploader(cfg config.Media, log *logger.Logger) (*httpUploader, error) {
	if strings.TrimSpace(cfg.UploadURL) == "" {
		return nil, fmt.Errorf("%w: empty upload url", ErrInvalidMediaSetup)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout)

	return &httpUploader{
		client:    cli,
		uploadURL: cfg.UploadURL,
		apiKey:    cfg.APIKey,
		logger:    log,
	}, nil
}

// Upload implements [Uploader]. It POSTs the file as a multipart form to the
// upload API and returns the URL from the API's JSON response.
func (u *httpUploader) Upload(ctx context.Context, file models.FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	req := u.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, file.Reader)
	if u.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+u.apiKey)
	}

	resp, err := req.Post(u.uploadURL)
	if err != nil {
		log.Err(err).Str("func", "*httpUploader.Upload").Msg("error: upload request failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpUploader.Upload").Msg("error: upload rejected by media host")
		return "", err
	}

	var body struct {
		URL string `json:"url"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode upload response: %w", ErrUploadFailed, err)
	}
	if body.URL == "" {
		return "", fmt.Errorf("%w: upload response has no url", ErrUploadFailed)
	}

	return body.URL, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrUploadFailed, resp.StatusCode(), body)
}
