package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
	"github.com/kizuna-dev/teambuilder/internal/summon"
)

// PullRequest is the body of POST /gacha/pull
type PullRequest struct {
	ConstellationID string                 `json:"constellation_id" validate:"required,max=64"`
	PullCount       int                    `json:"pull_count" validate:"pullcount"`
	PlatformBonuses domain.PlatformBonuses `json:"platform_bonuses"`
}

// PullResponse is a committed pull as shown to the player
type PullResponse struct {
	BatchID              uuid.UUID               `json:"batch_id"`
	Characters           []domain.DrawnCharacter `json:"characters"`
	TotalCost            int                     `json:"total_cost"`
	RemainingKizunaStars int                     `json:"remaining_kizuna_stars"`
	EffectiveRates       domain.DropRates        `json:"effective_rates"`
	PlatformBonuses      domain.PlatformBonuses  `json:"platform_bonuses"`
	Records              []domain.PullOutcome    `json:"records"`
}

// HistoryResponse is a page of the caller's pull history
type HistoryResponse struct {
	Records []domain.PullRecord `json:"records"`
}

// GachaHandler serves pulls and pull history
type GachaHandler struct {
	service summon.Service
}

// NewGachaHandler creates a handler over the summon service
func NewGachaHandler(service summon.Service) *GachaHandler {
	return &GachaHandler{service: service}
}

// HandlePull performs a pull for the authenticated caller
func (h *GachaHandler) HandlePull(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req PullRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Pull"); err != nil {
		return
	}

	result, err := h.service.Pull(r.Context(), userID, summon.Request{
		ConstellationID: req.ConstellationID,
		PullCount:       req.PullCount,
		PlatformBonuses: req.PlatformBonuses,
	})
	if err != nil {
		respondServiceError(w, r, "Pull", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPullServed,
		"user_id", userID,
		"batch_id", result.BatchID,
		"pull_count", len(result.Outcomes))

	respondJSON(w, http.StatusOK, PullResponse{
		BatchID:              result.BatchID,
		Characters:           result.Characters,
		TotalCost:            result.TotalCost,
		RemainingKizunaStars: result.RemainingBalance,
		EffectiveRates:       result.EffectiveRates,
		PlatformBonuses:      result.PlatformBonuses,
		Records:              result.Outcomes,
	})
}

// HandleHistory lists the caller's pulls newest first
func (h *GachaHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	records, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Pull history", err)
		return
	}
	if records == nil {
		records = []domain.PullRecord{}
	}
	respondJSON(w, http.StatusOK, HistoryResponse{Records: records})
}
