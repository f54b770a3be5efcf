package httpapi

import (
	"net/http"
	"time"

	"github.com/matchdayhq/roster-api/internal/usecase"
)

type suggestionDTO struct {
	PlayerID  string `json:"playerId"`
	Name      string `json:"name,omitempty"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Rule      string `json:"rule"`
}

type suggestionRecordDTO struct {
	ID           string `json:"id"`
	PlayerID     string `json:"playerId"`
	Suggested    string `json:"suggested"`
	Rule         string `json:"rule"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

func (h *Handler) GetPlayerSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSuggestion")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.suggestionService.SuggestPosition(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest position failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, suggestionToDTO(item))
}

func (h *Handler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSuggestions")
	defer span.End()

	suggestions, err := h.suggestionService.SuggestAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "suggest all failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]suggestionDTO, 0, len(suggestions))
	for _, item := range suggestions {
		items = append(items, suggestionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerSuggestionHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSuggestionHistory")
	defer span.End()

	playerID := r.PathValue("playerID")
	records, err := h.suggestionService.History(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "suggestion history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]suggestionRecordDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, suggestionRecordDTO{
			ID:           rec.ID,
			PlayerID:     rec.PlayerID,
			Suggested:    string(rec.Suggested),
			Rule:         rec.Rule,
			CreatedAtUTC: rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func suggestionToDTO(item usecase.PlayerSuggestion) suggestionDTO {
	return suggestionDTO{
		PlayerID:  item.PlayerID,
		Name:      item.Name,
		Current:   string(item.Current),
		Suggested: string(item.Suggested),
		Rule:      item.Rule,
	}
}
