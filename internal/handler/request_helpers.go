package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/auth"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolParam reads an optional boolean query parameter. Absent means false.
func parseBoolParam(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInvalidBonusParam, name)
	}
	return v, nil
}

// parsePlatformBonuses reads nintendo/playstation/pc query flags
func parsePlatformBonuses(r *http.Request) (domain.PlatformBonuses, error) {
	var b domain.PlatformBonuses
	var err error
	if b.Nintendo, err = parseBoolParam(r, domain.PlatformNintendo); err != nil {
		return b, err
	}
	if b.PlayStation, err = parseBoolParam(r, domain.PlatformPlayStation); err != nil {
		return b, err
	}
	if b.PC, err = parseBoolParam(r, domain.PlatformPC); err != nil {
		return b, err
	}
	return b, nil
}

// parseLimit reads an optional non-negative limit. Zero lets the service pick.
func parseLimit(r *http.Request) (int, bool) {
	raw := GetOptionalQueryParam(r, QueryParamLimit, "0")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// requireUserID returns the caller's id set by the bearer middleware
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Error(LogMsgMissingIdentity, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthenticated)
		return uuid.Nil, false
	}
	return id, true
}
