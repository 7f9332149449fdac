package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Fenny-Huy/AWE-Store/internal/cart"
	"github.com/Fenny-Huy/AWE-Store/internal/gateway"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// respondComponentError maps component and gateway failures onto operator
// visible statuses. Failures never silently disappear; the rest of the UI
// stays usable.
func (s *Server) respondComponentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrNoActiveCustomer):
		s.respondError(w, http.StatusConflict, "no_customer", "select a customer first")
	case errors.Is(err, cart.ErrStaleResponse):
		// The newer state is already applied; tell the caller to re-read.
		s.respondError(w, http.StatusConflict, "stale_response", "state changed, refresh the cart")
	default:
		status, code := gatewayStatus(err)
		s.respondError(w, status, code, err.Error())
	}
}

func gatewayStatus(err error) (int, string) {
	var (
		netErr  *gateway.NetworkError
		httpErr *gateway.HTTPError
		malErr  *gateway.MalformedResponseError
		appErr  *gateway.ApplicationError
	)
	switch {
	case errors.As(err, &netErr):
		return http.StatusBadGateway, "backend_unreachable"
	case errors.As(err, &httpErr):
		return http.StatusBadGateway, "backend_error"
	case errors.As(err, &malErr):
		return http.StatusBadGateway, "malformed_backend_response"
	case errors.As(err, &appErr):
		return http.StatusUnprocessableEntity, "rejected"
	}
	return http.StatusInternalServerError, "internal"
}
