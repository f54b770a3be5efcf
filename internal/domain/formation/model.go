package formation

import (
	"fmt"

	"github.com/matchdayhq/roster-api/internal/domain/player"
)

// Formation is a named target distribution of player counts across the four
// position kinds.
type Formation struct {
	Name      string
	Positions map[player.Position]int
}

func (f Formation) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("formation name is required")
	}
	if len(f.Positions) == 0 {
		return fmt.Errorf("formation positions are required")
	}
	for kind, count := range f.Positions {
		if _, ok := player.AllPositions[kind]; !ok {
			return fmt.Errorf("invalid position kind in formation: %s", kind)
		}
		if count < 0 {
			return fmt.Errorf("formation count for %s cannot be negative", kind)
		}
	}

	return nil
}

// Total is the number of players the formation requires.
func (f Formation) Total() int {
	total := 0
	for _, count := range f.Positions {
		total += count
	}
	return total
}

// Slot is one filled position in a generated lineup. AssignedPosition may
// differ from the player's registered position when the slot was filled by
// the gap-filling pass.
type Slot struct {
	PlayerID         string
	Name             string
	JerseyNumber     int
	AssignedPosition player.Position
}

// Catalog returns the fixed formations offered by the service.
func Catalog() []Formation {
	return []Formation{
		New("4-4-2", 1, 4, 4, 2),
		New("4-3-3", 1, 4, 3, 3),
		New("3-5-2", 1, 3, 5, 2),
		New("4-2-3-1", 1, 4, 5, 1),
	}
}

// New builds a formation from per-kind counts in the fixed kind order.
func New(name string, gk, def, mid, fwd int) Formation {
	return Formation{
		Name: name,
		Positions: map[player.Position]int{
			player.PositionGoalkeeper: gk,
			player.PositionDefender:   def,
			player.PositionMidfielder: mid,
			player.PositionForward:    fwd,
		},
	}
}

// FromCatalog resolves a formation by name.
func FromCatalog(name string) (Formation, bool) {
	for _, f := range Catalog() {
		if f.Name == name {
			return f, true
		}
	}
	return Formation{}, false
}
