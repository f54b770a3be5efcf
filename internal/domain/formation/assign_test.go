package formation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/platform/random"
)

func buildRoster(gk, def, mid, fwd int) []player.Player {
	out := make([]player.Player, 0, gk+def+mid+fwd)
	jersey := 1
	add := func(kind player.Position, count int) {
		for i := 0; i < count; i++ {
			out = append(out, player.Player{
				ID:           fmt.Sprintf("pl-%s-%02d", kind, i+1),
				Name:         fmt.Sprintf("Player %s %d", kind, i+1),
				Position:     kind,
				JerseyNumber: jersey,
				IsCheckedIn:  true,
			})
			jersey++
		}
	}
	add(player.PositionGoalkeeper, gk)
	add(player.PositionDefender, def)
	add(player.PositionMidfielder, mid)
	add(player.PositionForward, fwd)
	return out
}

func countByPosition(slots []Slot) map[player.Position]int {
	counts := make(map[player.Position]int)
	for _, s := range slots {
		counts[s.AssignedPosition]++
	}
	return counts
}

func TestAssignExactMatchKeepsRegisteredPositions(t *testing.T) {
	roster := buildRoster(1, 4, 4, 2)
	f, ok := FromCatalog("4-4-2")
	if !ok {
		t.Fatal("4-4-2 missing from catalog")
	}

	slots, err := Assign(roster, f, random.NewSource())
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(slots) != 11 {
		t.Fatalf("unexpected lineup size: got=%d want=11", len(slots))
	}

	byID := make(map[string]player.Player, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}
	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if _, dup := seen[slot.PlayerID]; dup {
			t.Fatalf("player %s assigned twice", slot.PlayerID)
		}
		seen[slot.PlayerID] = struct{}{}

		registered := byID[slot.PlayerID].Position
		if slot.AssignedPosition != registered {
			t.Fatalf("player %s assigned %s, registered %s", slot.PlayerID, slot.AssignedPosition, registered)
		}
	}
}

func TestAssignGapFillingCompletesLineup(t *testing.T) {
	// 4-3-3 wants three forwards but only two are registered; the leftover
	// midfielder must cover the open forward slot.
	roster := buildRoster(1, 4, 4, 2)
	f, ok := FromCatalog("4-3-3")
	if !ok {
		t.Fatal("4-3-3 missing from catalog")
	}

	slots, err := Assign(roster, f, random.NewSource())
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if len(slots) != 11 {
		t.Fatalf("unexpected lineup size: got=%d want=11", len(slots))
	}

	counts := countByPosition(slots)
	for _, kind := range player.PositionOrder {
		if counts[kind] != f.Positions[kind] {
			t.Fatalf("kind %s: got=%d want=%d", kind, counts[kind], f.Positions[kind])
		}
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if _, dup := seen[slot.PlayerID]; dup {
			t.Fatalf("player %s assigned twice", slot.PlayerID)
		}
		seen[slot.PlayerID] = struct{}{}
	}

	// Both registered forwards keep their position in pass one.
	forwardSlots := make(map[string]struct{})
	for _, slot := range slots {
		if slot.AssignedPosition == player.PositionForward {
			forwardSlots[slot.PlayerID] = struct{}{}
		}
	}
	for _, id := range []string{"pl-FWD-01", "pl-FWD-02"} {
		if _, ok := forwardSlots[id]; !ok {
			t.Fatalf("registered forward %s not assigned to a forward slot", id)
		}
	}
}

func TestAssignEmptyRoster(t *testing.T) {
	f, _ := FromCatalog("4-4-2")
	_, err := Assign(nil, f, random.NewSource())
	if !errors.Is(err, ErrNoPlayersAvailable) {
		t.Fatalf("expected ErrNoPlayersAvailable, got %v", err)
	}
}

func TestAssignInsufficientPlayers(t *testing.T) {
	roster := buildRoster(1, 4, 4, 1)
	f, _ := FromCatalog("4-4-2")

	_, err := Assign(roster, f, random.NewSource())
	if !errors.Is(err, ErrInsufficientPlayers) {
		t.Fatalf("expected ErrInsufficientPlayers, got %v", err)
	}

	var detailed *InsufficientPlayersError
	if !errors.As(err, &detailed) {
		t.Fatalf("expected InsufficientPlayersError, got %T", err)
	}
	if detailed.Required != 11 || detailed.Available != 10 {
		t.Fatalf("unexpected counts: required=%d available=%d", detailed.Required, detailed.Available)
	}
}

func TestAssignDeterministicWithScriptedSource(t *testing.T) {
	roster := buildRoster(1, 4, 4, 2)
	f, _ := FromCatalog("4-4-2")

	// A zero-yielding source always picks the head of each bucket, so the
	// lineup follows registration order kind by kind.
	slots, err := Assign(roster, f, random.NewSequence())
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	want := []string{
		"pl-GK-01",
		"pl-DEF-01", "pl-DEF-02", "pl-DEF-03", "pl-DEF-04",
		"pl-MID-01", "pl-MID-02", "pl-MID-03", "pl-MID-04",
		"pl-FWD-01", "pl-FWD-02",
	}
	if len(slots) != len(want) {
		t.Fatalf("unexpected lineup size: got=%d want=%d", len(slots), len(want))
	}
	for i, id := range want {
		if slots[i].PlayerID != id {
			t.Fatalf("slot %d: got=%s want=%s", i, slots[i].PlayerID, id)
		}
	}
}

func TestAssignDoesNotMutateInput(t *testing.T) {
	roster := buildRoster(1, 4, 4, 2)
	before := make([]string, len(roster))
	for i, p := range roster {
		before[i] = p.ID
	}

	f, _ := FromCatalog("4-4-2")
	if _, err := Assign(roster, f, random.NewSource()); err != nil {
		t.Fatalf("assign: %v", err)
	}

	for i, p := range roster {
		if p.ID != before[i] {
			t.Fatalf("input slice reordered at %d: got=%s want=%s", i, p.ID, before[i])
		}
	}
}
