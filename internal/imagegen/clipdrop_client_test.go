package imagegen

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameasset/relay/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

var fakePNG = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}

func TestClipdropClientGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/text-to-image/v1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a pixel-art treasure chest", r.FormValue("prompt"))
		assert.Empty(t, r.MultipartForm.File)

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(fakePNG)
	}))
	defer ts.Close()

	client := NewClipdropClient(ClipdropOptions{APIKey: "test-key", BaseURL: ts.URL + "/"})
	got, err := client.Generate(context.Background(), "a pixel-art treasure chest")
	require.NoError(t, err)
	assert.Equal(t, fakePNG, got.Data)
	assert.Equal(t, "image/png", got.ContentType)
}

func TestClipdropClientAcceptsContentTypeParameters(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png; charset=binary")
		_, _ = w.Write(fakePNG)
	}))
	defer ts.Close()

	got, err := NewClipdropClient(ClipdropOptions{APIKey: "k", BaseURL: ts.URL}).Generate(context.Background(), "slime")
	require.NoError(t, err)
	assert.Equal(t, fakePNG, got.Data)
}

func TestClipdropClientProviderErrors(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
	}{
		{name: "bad request", status: http.StatusBadRequest, contentType: "application/json", body: `{"error":"prompt is too long"}`},
		{name: "payment required", status: http.StatusPaymentRequired, contentType: "application/json", body: `{"error":"not enough credits"}`},
		{name: "ok but jpeg", status: http.StatusOK, contentType: "image/jpeg", body: "jpeg-bytes"},
		{name: "ok without content type", status: http.StatusOK, contentType: "", body: "mystery"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.contentType != "" {
					w.Header().Set("Content-Type", tc.contentType)
				} else {
					w.Header()["Content-Type"] = nil
				}
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer ts.Close()

			_, err := NewClipdropClient(ClipdropOptions{APIKey: "k", BaseURL: ts.URL}).Generate(context.Background(), "slime")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrProviderFailure)

			var perr *domain.ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.status, perr.StatusCode)
			assert.Equal(t, tc.body, perr.Body)
		})
	}
}

func TestClipdropClientTransportError(t *testing.T) {
	client := NewClipdropClient(ClipdropOptions{
		APIKey:  "k",
		BaseURL: "http://clipdrop.invalid",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset by peer")
		})},
	})
	_, err := client.Generate(context.Background(), "slime")
	require.Error(t, err)

	var terr *domain.TransportError
	require.True(t, errors.As(err, &terr))
	assert.Contains(t, terr.Err.Error(), "connection reset by peer")
	assert.False(t, errors.Is(err, domain.ErrProviderFailure))
}

func TestClipdropClientNilIsNotConfigured(t *testing.T) {
	var client *ClipdropClient
	_, err := client.Generate(context.Background(), "slime")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestClipdropClientSendsKeyVerbatim(t *testing.T) {
	for _, key := range []string{"  ", " k ", ""} {
		var sent []string
		client := NewClipdropClient(ClipdropOptions{
			APIKey:  key,
			BaseURL: "http://clipdrop.invalid",
			HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				sent = r.Header.Values("x-api-key")
				return &http.Response{
					StatusCode: http.StatusForbidden,
					Header:     http.Header{"Content-Type": []string{"application/json"}},
					Body:       io.NopCloser(strings.NewReader(`{"error":"invalid api key"}`)),
				}, nil
			})},
		})
		_, err := client.Generate(context.Background(), "slime")

		var perr *domain.ProviderError
		require.True(t, errors.As(err, &perr), "key %q", key)
		assert.Equal(t, http.StatusForbidden, perr.StatusCode)
		assert.Equal(t, []string{key}, sent)
	}
}

func TestClipdropClientRejectsEmptyPrompt(t *testing.T) {
	client := NewClipdropClient(ClipdropOptions{APIKey: "k"})
	_, err := client.Generate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidPrompt)
}

func TestNewClipdropClientDefaults(t *testing.T) {
	client := NewClipdropClient(ClipdropOptions{APIKey: " k "})
	assert.Equal(t, "https://clipdrop-api.co", client.baseURL)
	assert.Equal(t, " k ", client.token)
	assert.NotZero(t, client.httpClient.Timeout)
}
