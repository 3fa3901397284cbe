package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type ClassHandler struct {
	s ClassService
}

func NewClassHandler(s ClassService) *ClassHandler {
	return &ClassHandler{s: s}
}

func (h *ClassHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListClasses)
	r.Post("/", h.CreateClass)
	r.Put("/{id}/status", h.SetClassStatus)
}

func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.s.ListClasses(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, nonNil(classes))
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var input model.CreateClassInput
	if !decode(w, r, &input) {
		return
	}
	class, err := h.s.CreateClass(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, class)
}

func (h *ClassHandler) SetClassStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	var input model.SetStatusInput
	if !decode(w, r, &input) {
		return
	}
	if err := h.s.SetClassStatus(r.Context(), id, &input); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
