package httpapi

import (
	"context"
	"net/http"

	"github.com/matchdayhq/roster-api/internal/domain/formation"
	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/usecase"
)

type generateLineupRequest struct {
	Formation string         `json:"formation"`
	Positions map[string]int `json:"positions"`
}

type formationDTO struct {
	Name      string         `json:"name"`
	Positions map[string]int `json:"positions"`
	Total     int            `json:"total"`
}

type lineupDTO struct {
	Formation formationDTO `json:"formation"`
	Slots     []slotDTO    `json:"slots"`
}

type slotDTO struct {
	PlayerID         string `json:"playerId"`
	Name             string `json:"name"`
	JerseyNumber     int    `json:"jerseyNumber"`
	AssignedPosition string `json:"assignedPosition"`
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	catalog := h.formationService.Catalog()
	items := make([]formationDTO, 0, len(catalog))
	for _, f := range catalog {
		items = append(items, formationToDTO(ctx, f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GenerateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateLineup")
	defer span.End()

	var req generateLineupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lineup, err := h.formationService.GenerateLineup(ctx, usecase.GenerateLineupInput{
		FormationName: req.Formation,
		Positions:     req.Positions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate lineup failed", "formation", req.Formation, "error", err)
		writeError(ctx, w, err)
		return
	}

	slots := make([]slotDTO, 0, len(lineup.Slots))
	for _, slot := range lineup.Slots {
		slots = append(slots, slotDTO{
			PlayerID:         slot.PlayerID,
			Name:             slot.Name,
			JerseyNumber:     slot.JerseyNumber,
			AssignedPosition: string(slot.AssignedPosition),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, lineupDTO{
		Formation: formationToDTO(ctx, lineup.Formation),
		Slots:     slots,
	})
}

func formationToDTO(ctx context.Context, f formation.Formation) formationDTO {
	ctx, span := startSpan(ctx, "httpapi.formationToDTO")
	defer span.End()

	positions := make(map[string]int, len(f.Positions))
	for _, kind := range player.PositionOrder {
		if count, ok := f.Positions[kind]; ok {
			positions[string(kind)] = count
		}
	}

	return formationDTO{
		Name:      f.Name,
		Positions: positions,
		Total:     f.Total(),
	}
}
