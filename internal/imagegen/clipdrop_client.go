package imagegen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gameasset/relay/internal/domain"
)

const (
	clipdropProviderName = "clipdrop"
	clipdropPath         = "/text-to-image/v1"
	pngContentType       = "image/png"
)

type ClipdropOptions struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// ClipdropClient calls the ClipDrop text-to-image endpoint.
type ClipdropClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClipdropClient builds a client. APIKey is sent exactly as given; whether
// it is usable is decided by the config layer, not here.
func NewClipdropClient(opts ClipdropOptions) *ClipdropClient {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://clipdrop-api.co"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &ClipdropClient{
		httpClient: client,
		baseURL:    base,
		token:      opts.APIKey,
	}
}

func (c *ClipdropClient) Generate(ctx context.Context, prompt string) (*domain.ImageResult, error) {
	if c == nil {
		return nil, fmt.Errorf("clipdrop: %w", domain.ErrNotConfigured)
	}
	if prompt == "" {
		return nil, fmt.Errorf("clipdrop: %w", domain.ErrInvalidPrompt)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("clipdrop: write prompt field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("clipdrop: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+clipdropPath, body)
	if err != nil {
		return nil, fmt.Errorf("clipdrop: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-api-key", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Provider: clipdropProviderName, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Provider: clipdropProviderName, Err: fmt.Errorf("read response: %w", err)}
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK || !isPNG(contentType) {
		return nil, &domain.ProviderError{
			Provider:    clipdropProviderName,
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Body:        string(data),
		}
	}

	return &domain.ImageResult{Data: data, ContentType: pngContentType}, nil
}

func isPNG(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == pngContentType
}

var _ Requester = (*ClipdropClient)(nil)
