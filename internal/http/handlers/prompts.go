package handlers

import (
	"net/http"
	"strings"

	"github.com/gameasset/relay/internal/middleware"
	"github.com/gameasset/relay/internal/providers/prompt"
)

type promptEnhanceResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
}

func (a *App) PromptEnhance(w http.ResponseWriter, r *http.Request) {
	req, ok := a.decodePrompt(w, r)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, msgNoPrompt)
		return
	}

	enhanced := req.Prompt
	res, err := a.Enhancer.Enhance(r.Context(), prompt.EnhanceRequest{Prompt: req.Prompt})
	switch {
	case err != nil:
		a.Logger.Warn().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("prompt enhancement failed; returning original prompt")
	case res != nil && strings.TrimSpace(res.Prompt) != "":
		enhanced = res.Prompt
		a.Logger.Debug().
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("provider", res.Provider).
			Str("fallback_reason", res.Metadata["fallback_reason"]).
			Msg("prompt enhanced")
	}

	a.json(w, http.StatusOK, promptEnhanceResponse{EnhancedPrompt: enhanced})
}
