package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/roster-api/internal/domain/player"
)

type PlayerRepository struct {
	mu       sync.RWMutex
	byID     map[string]player.Player
	byJersey map[int]string
	order    []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		byID:     make(map[string]player.Player, len(players)),
		byJersey: make(map[int]string, len(players)),
	}
	for _, p := range players {
		repo.byID[p.ID] = p.Clone()
		repo.byJersey[p.JerseyNumber] = p.ID
		repo.order = append(repo.order, p.ID)
	}
	return repo
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *PlayerRepository) ListCheckedIn(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; p.IsCheckedIn {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return p.Clone(), true, nil
}

func (r *PlayerRepository) GetByJerseyNumber(_ context.Context, jerseyNumber int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byJersey[jerseyNumber]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.byID[id].Clone(), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[p.ID] = p.Clone()
	r.byJersey[p.JerseyNumber] = p.ID
	r.order = append(r.order, p.ID)
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[p.ID]
	if !ok {
		return nil
	}
	if existing.JerseyNumber != p.JerseyNumber {
		delete(r.byJersey, existing.JerseyNumber)
		r.byJersey[p.JerseyNumber] = p.ID
	}
	r.byID[p.ID] = p.Clone()
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[playerID]
	if !ok {
		return nil
	}
	delete(r.byID, playerID)
	delete(r.byJersey, existing.JerseyNumber)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
