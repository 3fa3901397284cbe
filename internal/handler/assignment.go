package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type AssignmentHandler struct {
	s AssignmentService
}

func NewAssignmentHandler(s AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{s: s}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListAssignments)
	r.Post("/", h.CreateAssignment)
	r.Put("/{id}/status", h.SetAssignmentStatus)
	r.Delete("/{id}", h.DeleteAssignment)
}

func (h *AssignmentHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	list, err := h.s.ListAssignments(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, nonNil(list))
}

func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var input model.CreateAssignmentInput
	if !decode(w, r, &input) {
		return
	}
	a, err := h.s.CreateAssignment(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, a)
}

func (h *AssignmentHandler) SetAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	var input model.SetStatusInput
	if !decode(w, r, &input) {
		return
	}
	if err := h.s.SetAssignmentStatus(r.Context(), id, &input); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if err := h.s.DeleteAssignment(r.Context(), id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
