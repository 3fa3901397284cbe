package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type SettingsHandler struct {
	s SettingsService
}

func NewSettingsHandler(s SettingsService) *SettingsHandler {
	return &SettingsHandler{s: s}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.GetSettings)
	r.Put("/moderation", h.SetModeration)
}

func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.s.GetSettings(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, settings)
}

func (h *SettingsHandler) SetModeration(w http.ResponseWriter, r *http.Request) {
	var input model.SetModerationInput
	if !decode(w, r, &input) {
		return
	}
	settings, err := h.s.SetModeration(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, settings)
}
