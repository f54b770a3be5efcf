package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
	"github.com/matchdayhq/roster-api/internal/usecase"
)

type Handler struct {
	rosterService     *usecase.RosterService
	formationService  *usecase.FormationService
	suggestionService *usecase.SuggestionService
	statsService      *usecase.StatsService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	formationService *usecase.FormationService,
	suggestionService *usecase.SuggestionService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		rosterService:     rosterService,
		formationService:  formationService,
		suggestionService: suggestionService,
		statsService:      statsService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
