package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/roster-api/internal/domain/suggestion"
)

type SuggestionRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]suggestion.Record
}

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{byPlayer: make(map[string][]suggestion.Record)}
}

func (r *SuggestionRepository) Append(_ context.Context, rec suggestion.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPlayer[rec.PlayerID] = append(r.byPlayer[rec.PlayerID], rec)
	return nil
}

func (r *SuggestionRepository) ListByPlayer(_ context.Context, playerID string) ([]suggestion.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.byPlayer[playerID]
	out := make([]suggestion.Record, 0, len(records))
	out = append(out, records...)
	return out, nil
}
