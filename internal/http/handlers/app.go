package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gameasset/relay/internal/domain"
	"github.com/gameasset/relay/internal/imagegen"
	"github.com/gameasset/relay/internal/infra"
	"github.com/gameasset/relay/internal/providers/prompt"
)

const maxBodyBytes = 1 << 20

const (
	msgNoPrompt         = "No prompt provided"
	msgInvalidPayload   = "Invalid JSON payload"
	msgBodyTooLarge     = "Request body too large"
	msgClipdropUnset    = "ClipDrop API key not configured"
	msgGenerationFailed = "Image generation failed: "
	msgGenerationError  = "Error generating image: "
)

type App struct {
	Config   *infra.Config
	Enhancer prompt.Enhancer
	Images   imagegen.Requester
	Logger   infra.Logger
}

func NewApp(cfg *infra.Config, enhancer prompt.Enhancer, images imagegen.Requester, logger infra.Logger) *App {
	return &App{Config: cfg, Enhancer: enhancer, Images: images, Logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Error: message})
}

// decodePrompt reads the JSON body. An empty body decodes to an empty prompt
// so that it is reported as a missing prompt rather than a malformed payload.
func (a *App) decodePrompt(w http.ResponseWriter, r *http.Request) (domain.PromptRequest, bool) {
	var req domain.PromptRequest
	if r.Body == nil {
		return req, true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.PromptRequest{}, true
		case errors.As(err, &tooLarge):
			a.error(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		default:
			a.error(w, http.StatusBadRequest, msgInvalidPayload)
		}
		return domain.PromptRequest{}, false
	}
	return req, true
}
