package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"classsync/internal/errdefs"
	"classsync/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var ErrBadRequest = errors.New("bad request")

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrBanned), errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError reports err to the client. The banned sentinel keeps its own
// message so clients can tell it from a plain 403.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := mapErr(err)
	message := http.StatusText(statusCode)
	if errors.Is(err, errdefs.ErrBanned) {
		message = errdefs.ErrBanned.Error()
	}

	if logger, ok := logging.GetFromContext(ctx); ok {
		if statusCode >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.Error(err))
		} else {
			logger.Debug(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
		}
	}
	writeErrorJSON(w, statusCode, message)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "Failed to serialize response", zap.Error(err))
		}
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// decode reads a JSON body into dst and validates it. Validation failures
// are written to w and reported as false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "Failed to parse request body", zap.Error(err))
		}
		writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if msg, ok := validateBody(dst); !ok {
		writeErrorJSON(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

func parseIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return uuid.Nil, fmt.Errorf("missing path param %s: %w", key, ErrBadRequest)
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path param %s: %w", key, ErrBadRequest)
	}
	return id, nil
}
