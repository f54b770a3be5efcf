package httpapi

import (
	"net/http"

	"github.com/matchdayhq/roster-api/internal/usecase"
)

type matchReportRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type importReportsRequest struct {
	Reports []importReportItem `json:"reports" validate:"required,min=1,dive"`
}

type importReportItem struct {
	PlayerID string `json:"playerId" validate:"required"`
	Text     string `json:"text" validate:"required,max=2000"`
}

type importResultDTO struct {
	SuccessCount int               `json:"successCount"`
	FailedCount  int               `json:"failedCount"`
	Reports      []importReportDTO `json:"reports"`
}

type importReportDTO struct {
	PlayerID string `json:"playerId"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

func (h *Handler) RecordMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchReport")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req matchReportRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statsService.RecordMatchReport(ctx, playerID, req.Text)
	if err != nil {
		h.logger.WarnContext(ctx, "record match report failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) ImportMatchReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportMatchReports")
	defer span.End()

	var req importReportsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	reports := make([]usecase.MatchReportInput, 0, len(req.Reports))
	for _, item := range req.Reports {
		reports = append(reports, usecase.MatchReportInput{
			PlayerID: item.PlayerID,
			Text:     item.Text,
		})
	}

	result, err := h.statsService.ImportMatchReports(ctx, reports)
	if err != nil {
		h.logger.ErrorContext(ctx, "import match reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]importReportDTO, 0, len(result.Reports))
	for _, row := range result.Reports {
		rows = append(rows, importReportDTO{
			PlayerID: row.PlayerID,
			Status:   row.Status,
			Message:  row.Message,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Reports:      rows,
	})
}
