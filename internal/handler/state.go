package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type StateHandler struct {
	s StateService
}

func NewStateHandler(s StateService) *StateHandler {
	return &StateHandler{s: s}
}

func (h *StateHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListStates)
	r.Put("/{assignment_id}", h.UpsertState)
}

func (h *StateHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.s.ListStates(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, nonNil(states))
}

// UpsertState answers 204 whether or not the write won; a stale write is
// not an error for the sender.
func (h *StateHandler) UpsertState(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "assignment_id")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	var input model.UpsertStateInput
	if !decode(w, r, &input) {
		return
	}
	if _, err := h.s.UpsertState(r.Context(), id, &input); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
