package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status             string `json:"status"`
	ClipdropConfigured bool   `json:"clipdrop_configured"`
	GeminiConfigured   bool   `json:"gemini_configured"`
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, healthResponse{
		Status:             "healthy",
		ClipdropConfigured: a.Config.ClipdropConfigured(),
		GeminiConfigured:   a.Config.GeminiConfigured(),
	})
}
