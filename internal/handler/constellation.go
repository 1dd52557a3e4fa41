package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kizuna-dev/teambuilder/internal/constellation"
	"github.com/kizuna-dev/teambuilder/internal/domain"
	"github.com/kizuna-dev/teambuilder/internal/logger"
)

// TierView is one rarity tier as rendered to the client
type TierView struct {
	Rarity     domain.Rarity      `json:"rarity"`
	Label      string             `json:"label"`
	Rate       float64            `json:"rate"`
	Characters []domain.Character `json:"characters"`
}

// ConstellationResponse is a constellation with its pool resolved to names
type ConstellationResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Element       string           `json:"element"`
	BaseDropRates domain.DropRates `json:"base_drop_rates"`
	Tiers         []TierView       `json:"tiers"`
}

// RateLine is one tier of a rate preview
type RateLine struct {
	Rarity    domain.Rarity `json:"rarity"`
	Label     string        `json:"label"`
	Base      float64       `json:"base"`
	Effective float64       `json:"effective"`
}

// RatesPreviewResponse is the preview plus per-tier display lines
type RatesPreviewResponse struct {
	*constellation.RatesPreview
	Lines []RateLine `json:"lines"`
}

var rarityCaser = cases.Title(language.English)

// rarityLabel renders a tier for display, e.g. "Legendary"
func rarityLabel(r domain.Rarity) string {
	return rarityCaser.String(string(r))
}

// ConstellationHandler serves constellation reference data
type ConstellationHandler struct {
	service constellation.Service
}

// NewConstellationHandler creates a handler over the constellation service
func NewConstellationHandler(service constellation.Service) *ConstellationHandler {
	return &ConstellationHandler{service: service}
}

// HandleList returns every constellation
func (h *ConstellationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "List constellations", err)
		return
	}
	if list == nil {
		list = []domain.Constellation{}
	}
	respondJSON(w, http.StatusOK, list)
}

// HandleGet returns one constellation with character names per tier
func (h *ConstellationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, URLParamID)
	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get constellation", err)
		return
	}

	var ids []string
	for _, rarity := range domain.Rarities {
		ids = append(ids, c.Pool(rarity)...)
	}
	chars, err := h.service.Characters(r.Context(), ids)
	if err != nil {
		respondServiceError(w, r, "Get constellation", err)
		return
	}

	resp := ConstellationResponse{
		ID:            c.ID,
		Name:          c.Name,
		Element:       c.Element,
		BaseDropRates: c.BaseDropRates,
		Tiers:         make([]TierView, 0, len(domain.Rarities)),
	}
	for _, rarity := range domain.Rarities {
		tier := TierView{
			Rarity:     rarity,
			Label:      rarityLabel(rarity),
			Rate:       c.BaseDropRates.Weight(rarity),
			Characters: []domain.Character{},
		}
		for _, cid := range c.Pool(rarity) {
			ch, ok := chars[cid]
			if !ok {
				logger.FromContext(r.Context()).Warn(LogMsgUnknownPoolMember,
					"constellation", c.ID, "character", cid)
				ch = domain.Character{ID: cid, Rarity: rarity}
			}
			tier.Characters = append(tier.Characters, ch)
		}
		resp.Tiers = append(resp.Tiers, tier)
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandlePreviewRates shows the rates a pull with the given bonuses would use
func (h *ConstellationHandler) HandlePreviewRates(w http.ResponseWriter, r *http.Request) {
	bonuses, err := parsePlatformBonuses(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	preview, err := h.service.PreviewRates(r.Context(), chi.URLParam(r, URLParamID), bonuses)
	if err != nil {
		respondServiceError(w, r, "Preview rates", err)
		return
	}

	resp := RatesPreviewResponse{RatesPreview: preview, Lines: make([]RateLine, 0, len(domain.Rarities))}
	for _, rarity := range domain.Rarities {
		resp.Lines = append(resp.Lines, RateLine{
			Rarity:    rarity,
			Label:     rarityLabel(rarity),
			Base:      preview.BaseRates.Weight(rarity),
			Effective: preview.EffectiveRates.Weight(rarity),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleReload re-reads the seed file and clears the read cache.
// ?force=true syncs even when the file is unchanged.
func (h *ConstellationHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	force, err := parseBoolParam(r, QueryParamForce)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgReloadRequested, "force", force)
	result, err := h.service.Sync(r.Context(), force)
	if err != nil {
		respondServiceError(w, r, ErrMsgReloadFailed, err)
		return
	}

	msg := MsgConstellationsReloaded
	if result.Skipped {
		msg = MsgSeedUnchanged
	}
	respondJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		*constellation.SyncResult
	}{Message: msg, SyncResult: result})
}
