package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkurganov/microblog/internal/model"
	"github.com/dkurganov/microblog/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// mapError translates service errors to HTTP responses. Authentication
// failures of every flavor collapse into the same 401; backend faults
// surface as 502 because this service fronts its stores the way a gateway
// fronts an upstream.
func mapError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, model.ErrMissingLoginKey):
		writeError(w, http.StatusBadRequest, "email or username required")
	case errors.Is(err, model.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "user already exists")
	case errors.Is(err, model.ErrInvalidSignature),
		errors.Is(err, model.ErrMalformedToken):
		// A crafted or garbage credential, not a session that lapsed.
		writeError(w, http.StatusBadRequest, "invalid token")
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrUnknownToken),
		errors.Is(err, model.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		writeError(w, http.StatusBadGateway, "service unavailable")
	}
}
