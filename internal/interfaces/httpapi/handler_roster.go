package httpapi

import (
	"context"
	"net/http"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/usecase"
)

type registerPlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Position     string `json:"position" validate:"required"`
	JerseyNumber int    `json:"jerseyNumber" validate:"required,min=1,max=99"`
	Phone        string `json:"phone" validate:"max=32"`
}

type updateContactRequest struct {
	Phone string `json:"phone" validate:"required,max=32"`
}

type playerDTO struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	JerseyNumber    int      `json:"jerseyNumber"`
	Phone           string   `json:"phone,omitempty"`
	IsCheckedIn     bool     `json:"isCheckedIn"`
	Stats           statsDTO `json:"stats"`
	PositionHistory []string `json:"positionHistory,omitempty"`
}

type statsDTO struct {
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	RedCards      int `json:"redCards"`
	YellowCards   int `json:"yellowCards"`
	MatchesPlayed int `json:"matchesPlayed"`
}

func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	var req registerPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.rosterService.Register(ctx, usecase.RegisterPlayerInput{
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Phone:        req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, item))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	var (
		players []player.Player
		err     error
	)
	if r.URL.Query().Get("checkedIn") == "true" {
		players, err = h.rosterService.ListCheckedIn(ctx)
	} else {
		players, err = h.rosterService.List(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.rosterService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) UpdatePlayerContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerContact")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req updateContactRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.rosterService.UpdateContact(ctx, usecase.UpdateContactInput{
		PlayerID: playerID,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update contact failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemovePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.rosterService.Remove(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "remove player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) CheckInPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckInPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.rosterService.CheckIn(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "check-in failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) CheckOutPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckOutPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.rosterService.CheckOut(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "check-out failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	var history []string
	if len(v.PositionHistory) > 0 {
		history = make([]string, 0, len(v.PositionHistory))
		for _, pos := range v.PositionHistory {
			history = append(history, string(pos))
		}
	}

	return playerDTO{
		ID:           v.ID,
		Name:         v.Name,
		Position:     string(v.Position),
		JerseyNumber: v.JerseyNumber,
		Phone:        v.Phone,
		IsCheckedIn:  v.IsCheckedIn,
		Stats: statsDTO{
			Goals:         v.Stats.Goals,
			Assists:       v.Stats.Assists,
			RedCards:      v.Stats.RedCards,
			YellowCards:   v.Stats.YellowCards,
			MatchesPlayed: v.Stats.MatchesPlayed,
		},
		PositionHistory: history,
	}
}
