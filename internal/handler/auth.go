package handler

import (
	"net/http"

	"classsync/internal/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	s AuthService
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{s: s}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.SignUp)
	r.Post("/signin", h.SignIn)
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input model.SignUpInput
	if !decode(w, r, &input) {
		return
	}
	session, err := h.s.SignUp(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, session)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input model.SignInInput
	if !decode(w, r, &input) {
		return
	}
	session, err := h.s.SignIn(r.Context(), &input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, session)
}
