package formation

import (
	"errors"
	"fmt"
)

var (
	ErrNoPlayersAvailable    = errors.New("no checked-in players available")
	ErrInsufficientPlayers   = errors.New("not enough checked-in players for formation")
	ErrFormationNotInCatalog = errors.New("formation not in catalog")
)

// InsufficientPlayersError carries the exact shortfall so callers can render
// a precise message.
type InsufficientPlayersError struct {
	Required  int
	Available int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("not enough checked-in players for formation: required=%d available=%d", e.Required, e.Available)
}

func (e *InsufficientPlayersError) Is(target error) bool {
	return target == ErrInsufficientPlayers
}
