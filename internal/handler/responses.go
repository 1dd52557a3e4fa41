package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	// Shortfall is set on insufficient balance
	Shortfall *int `json:"shortfall,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, resp := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Info(LogMsgServiceError, "op", op, "status", status, "error", err)
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage converts service errors to a status code and
// a message safe to show to players
func mapServiceErrorToUserMessage(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgUnknownError}
	}

	var shortfall *domain.ShortfallError
	if errors.As(err, &shortfall) {
		n := shortfall.Shortfall()
		return http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf(ErrMsgInsufficientStarsShort, n), Shortfall: &n}
	}

	switch {
	case errors.Is(err, domain.ErrConstellationNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgConstellationNotFound}
	case errors.Is(err, domain.ErrInsufficientCurrency):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInsufficientStars}
	case errors.Is(err, domain.ErrInvalidPullCount):
		return http.StatusBadRequest, ErrorResponse{Error: pullCountMessage()}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgUserNotFoundError}
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrorResponse{Error: ErrMsgUsernameTakenError}
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidAmountError}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidInputError}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorResponse{Error: ErrMsgUnauthorizedError}
	case errors.Is(err, constellation.ErrInvalidConfig), errors.Is(err, domain.ErrInvalidDropRates):
		return http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgInvalidSeedError}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
