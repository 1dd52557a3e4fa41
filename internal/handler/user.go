package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/user"
)

// TokenIssuer signs bearer tokens for players
type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, time.Time, error)
}

// RegisterUserRequest creates a player account
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,username"`
}

// RegisterUserResponse is the new account and its bearer token
type RegisterUserResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// GrantStarsRequest credits Kizuna Stars to a user
type GrantStarsRequest struct {
	Amount int `json:"amount" validate:"gt=0,max=1000000"`
}

// GrantStarsResponse reports the new balance
type GrantStarsResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	KizunaStars int       `json:"kizuna_stars"`
}

// HandleRegisterUser creates a user with the starting balance and issues a token
func HandleRegisterUser(userService user.Service, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := userService.RegisterUser(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		token, exp, err := issuer.Issue(u.ID, u.Username)
		if err != nil {
			logger.FromContext(r.Context()).Error(ErrMsgIssueTokenFailed, "user_id", u.ID, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgIssueTokenFailed)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)
		respondJSON(w, http.StatusCreated, RegisterUserResponse{User: u, Token: token, ExpiresAt: exp})
	}
}

// HandleGetMe returns the caller's profile and balance
func HandleGetMe(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		u, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGrantStars is the admin top-up of a user's balance
func HandleGrantStars(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, URLParamID))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidUserID)
			return
		}

		var req GrantStarsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant stars"); err != nil {
			return
		}

		balance, err := userService.GrantKizunaStars(r.Context(), userID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Grant stars", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgStarsGranted,
			"user_id", userID,
			"amount", req.Amount,
			"balance", balance)
		respondJSON(w, http.StatusOK, GrantStarsResponse{UserID: userID, KizunaStars: balance})
	}
}
