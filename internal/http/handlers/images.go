package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gameasset/relay/internal/domain"
	"github.com/gameasset/relay/internal/middleware"
)

type imageGenerateResponse struct {
	Image string `json:"image"`
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodePrompt(w, r)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, msgNoPrompt)
		return
	}
	if !a.Config.ClipdropConfigured() {
		a.error(w, http.StatusBadRequest, msgClipdropUnset)
		return
	}

	img, err := a.Images.Generate(r.Context(), req.Prompt)
	if err != nil {
		a.imageError(w, r, err)
		return
	}

	a.json(w, http.StatusOK, imageGenerateResponse{Image: base64.StdEncoding.EncodeToString(img.Data)})
}

func (a *App) imageError(w http.ResponseWriter, r *http.Request, err error) {
	logger := a.Logger.With().
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Logger()

	var providerErr *domain.ProviderError
	var transportErr *domain.TransportError
	switch {
	case errors.Is(err, domain.ErrInvalidPrompt):
		a.error(w, http.StatusBadRequest, msgNoPrompt)
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusBadRequest, msgClipdropUnset)
	case errors.As(err, &providerErr):
		logger.Warn().
			Int("status", providerErr.StatusCode).
			Str("content_type", providerErr.ContentType).
			Msg("image provider rejected request")
		a.error(w, http.StatusBadRequest, msgGenerationFailed+providerErr.Body)
	case errors.As(err, &transportErr):
		logger.Error().Err(transportErr.Err).Msg("image provider unreachable")
		a.error(w, http.StatusInternalServerError, msgGenerationError+transportErr.Err.Error())
	default:
		logger.Error().Err(err).Msg("image generation failed")
		a.error(w, http.StatusInternalServerError, msgGenerationError+err.Error())
	}
}
