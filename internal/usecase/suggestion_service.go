package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/domain/suggestion"
	idgen "github.com/matchdayhq/roster-api/internal/platform/id"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
)

const suggestAllMaxWorkers = 8

// PlayerSuggestion pairs a player with the suggester's output.
type PlayerSuggestion struct {
	PlayerID  string
	Name      string
	Current   player.Position
	Suggested player.Position
	Rule      string
}

// SuggestionService runs the position suggester over persisted players and
// keeps an audit trail of what it proposed.
type SuggestionService struct {
	playerRepo     player.Repository
	suggestionRepo suggestion.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewSuggestionService(
	playerRepo player.Repository,
	suggestionRepo suggestion.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SuggestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SuggestionService{
		playerRepo:     playerRepo,
		suggestionRepo: suggestionRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

// SuggestPosition computes a suggestion for one player against the full
// roster snapshot and records it.
func (s *SuggestionService) SuggestPosition(ctx context.Context, playerID string) (PlayerSuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SuggestionService.SuggestPosition")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerSuggestion{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerSuggestion{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerSuggestion{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return PlayerSuggestion{}, fmt.Errorf("list roster for suggestion: %w", err)
	}

	result := suggestion.Suggest(item, roster)
	out := PlayerSuggestion{
		PlayerID:  item.ID,
		Name:      item.Name,
		Current:   item.Position,
		Suggested: result.Position,
		Rule:      result.Rule,
	}

	if err := s.record(ctx, out); err != nil {
		return PlayerSuggestion{}, err
	}

	return out, nil
}

// SuggestAll computes suggestions for the whole roster with bounded
// concurrency. Suggestions are returned in roster order; records are
// appended best-effort and failures only logged, so one bad row does not
// sink the batch.
func (s *SuggestionService) SuggestAll(ctx context.Context) ([]PlayerSuggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SuggestionService.SuggestAll")
	defer span.End()

	roster, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	if len(roster) == 0 {
		return nil, nil
	}

	out := make([]PlayerSuggestion, len(roster))
	var recordMu sync.Mutex

	workers := pool.New().WithMaxGoroutines(suggestAllMaxWorkers)
	for i, item := range roster {
		i, item := i, item
		workers.Go(func() {
			result := suggestion.Suggest(item, roster)
			out[i] = PlayerSuggestion{
				PlayerID:  item.ID,
				Name:      item.Name,
				Current:   item.Position,
				Suggested: result.Position,
				Rule:      result.Rule,
			}

			recordMu.Lock()
			defer recordMu.Unlock()
			if err := s.record(ctx, out[i]); err != nil {
				s.logger.WarnContext(ctx, "record suggestion failed", "player_id", item.ID, "error", err)
			}
		})
	}
	workers.Wait()

	return out, nil
}

// History lists previously recorded suggestions for one player.
func (s *SuggestionService) History(ctx context.Context, playerID string) ([]suggestion.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SuggestionService.History")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	records, err := s.suggestionRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list suggestion history: %w", err)
	}

	return records, nil
}

func (s *SuggestionService) record(ctx context.Context, item PlayerSuggestion) error {
	recordID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate suggestion id: %w", err)
	}

	rec := suggestion.Record{
		ID:        recordID,
		PlayerID:  item.PlayerID,
		Suggested: item.Suggested,
		Rule:      item.Rule,
		CreatedAt: s.now().UTC(),
	}
	if err := s.suggestionRepo.Append(ctx, rec); err != nil {
		return fmt.Errorf("append suggestion record: %w", err)
	}

	return nil
}
