package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/infrastructure/repository/memory"
	idgen "github.com/matchdayhq/roster-api/internal/platform/id"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
)

func newSuggestionService(seed []player.Player) (*SuggestionService, *memory.SuggestionRepository) {
	suggestionRepo := memory.NewSuggestionRepository()
	service := NewSuggestionService(
		memory.NewPlayerRepository(seed),
		suggestionRepo,
		idgen.NewRandomGenerator(),
		logging.NewNop(),
	)
	return service, suggestionRepo
}

func TestSuggestionServiceSuggestPosition(t *testing.T) {
	service, _ := newSuggestionService([]player.Player{
		{ID: "pl-1", Name: "Andi", Position: player.PositionDefender, JerseyNumber: 4, Stats: player.Stats{Goals: 5}},
	})

	item, err := service.SuggestPosition(context.Background(), "pl-1")
	if err != nil {
		t.Fatalf("suggest position: %v", err)
	}
	if item.Suggested != player.PositionForward {
		t.Fatalf("suggested: got=%s want=FWD", item.Suggested)
	}
	if item.Rule != "performance_goals" {
		t.Fatalf("rule: got=%s want=performance_goals", item.Rule)
	}
	if item.Current != player.PositionDefender {
		t.Fatalf("current: got=%s want=DEF", item.Current)
	}
}

func TestSuggestionServiceRecordsHistory(t *testing.T) {
	service, _ := newSuggestionService([]player.Player{
		{ID: "pl-1", Name: "Andi", Position: player.PositionDefender, JerseyNumber: 4, Stats: player.Stats{Goals: 5}},
	})
	ctx := context.Background()

	if _, err := service.SuggestPosition(ctx, "pl-1"); err != nil {
		t.Fatalf("suggest position: %v", err)
	}
	if _, err := service.SuggestPosition(ctx, "pl-1"); err != nil {
		t.Fatalf("second suggest position: %v", err)
	}

	records, err := service.History(ctx, "pl-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("unexpected record count: got=%d want=2", len(records))
	}
	for _, rec := range records {
		if rec.ID == "" {
			t.Fatal("record missing id")
		}
		if rec.Suggested != player.PositionForward || rec.Rule != "performance_goals" {
			t.Fatalf("unexpected record: %+v", rec)
		}
		if rec.CreatedAt.IsZero() {
			t.Fatal("record missing timestamp")
		}
	}
}

func TestSuggestionServicePlayerNotFound(t *testing.T) {
	service, _ := newSuggestionService(nil)

	_, err := service.SuggestPosition(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSuggestionServiceSuggestAll(t *testing.T) {
	seed := []player.Player{
		{ID: "pl-1", Name: "Andi", Position: player.PositionDefender, JerseyNumber: 4, Stats: player.Stats{Goals: 5}},
		{ID: "pl-2", Name: "Budi", Position: player.PositionMidfielder, JerseyNumber: 8, Stats: player.Stats{Assists: 4}},
		{ID: "pl-3", Name: "Candra", Position: player.PositionGoalkeeper, JerseyNumber: 1},
	}
	service, suggestionRepo := newSuggestionService(seed)

	out, err := service.SuggestAll(context.Background())
	if err != nil {
		t.Fatalf("suggest all: %v", err)
	}
	if len(out) != len(seed) {
		t.Fatalf("unexpected suggestion count: got=%d want=%d", len(out), len(seed))
	}

	// Output follows roster order regardless of worker scheduling.
	for i, p := range seed {
		if out[i].PlayerID != p.ID {
			t.Fatalf("suggestion %d: got=%s want=%s", i, out[i].PlayerID, p.ID)
		}
	}
	if out[0].Suggested != player.PositionForward {
		t.Fatalf("pl-1 suggested: got=%s want=FWD", out[0].Suggested)
	}
	if out[1].Suggested != player.PositionMidfielder {
		t.Fatalf("pl-2 suggested: got=%s want=MID", out[1].Suggested)
	}

	for _, p := range seed {
		records, err := suggestionRepo.ListByPlayer(context.Background(), p.ID)
		if err != nil {
			t.Fatalf("list records for %s: %v", p.ID, err)
		}
		if len(records) != 1 {
			t.Fatalf("records for %s: got=%d want=1", p.ID, len(records))
		}
	}
}

func TestSuggestionServiceSuggestAllEmptyRoster(t *testing.T) {
	service, _ := newSuggestionService(nil)

	out, err := service.SuggestAll(context.Background())
	if err != nil {
		t.Fatalf("suggest all: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no suggestions, got %d", len(out))
	}
}
