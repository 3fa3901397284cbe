package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	s ProfileService
}

func NewProfileHandler(s ProfileService) *ProfileHandler {
	return &ProfileHandler{s: s}
}

func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListProfiles)
	r.Get("/me", h.GetMe)
	r.Put("/me/enrollment", h.SetEnrollment)
	r.Put("/{id}/ban", h.SetBanned)
}

func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.s.GetMe(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, profile)
}

func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.s.ListProfiles(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, nonNil(profiles))
}

func (h *ProfileHandler) SetEnrollment(w http.ResponseWriter, r *http.Request) {
	var input model.SetEnrollmentInput
	if !decode(w, r, &input) {
		return
	}
	profile, err := h.s.SetEnrollment(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, profile)
}

func (h *ProfileHandler) SetBanned(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	var input model.SetBannedInput
	if !decode(w, r, &input) {
		return
	}
	profile, err := h.s.SetBanned(r.Context(), id, &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, profile)
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
