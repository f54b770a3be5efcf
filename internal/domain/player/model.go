package player

import "fmt"

// Position represents the four football position kinds used across the roster.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// PositionOrder is the fixed enumeration order used wherever position kinds
// are iterated (formation slots, team-needs tie breaks).
var PositionOrder = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

const (
	JerseyNumberMin = 1
	JerseyNumberMax = 99
)

// Stats holds a player's career counters. All values are non-negative.
type Stats struct {
	Goals         int
	Assists       int
	RedCards      int
	YellowCards   int
	MatchesPlayed int
}

// Player is a registered roster member.
type Player struct {
	ID              string
	Name            string
	Position        Position
	JerseyNumber    int
	Phone           string
	IsCheckedIn     bool
	Stats           Stats
	PositionHistory []Position
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.JerseyNumber < JerseyNumberMin || p.JerseyNumber > JerseyNumberMax {
		return fmt.Errorf("jersey number must be between %d and %d", JerseyNumberMin, JerseyNumberMax)
	}
	if p.Stats.Goals < 0 || p.Stats.Assists < 0 || p.Stats.RedCards < 0 || p.Stats.YellowCards < 0 || p.Stats.MatchesPlayed < 0 {
		return fmt.Errorf("career counters cannot be negative")
	}
	for _, pos := range p.PositionHistory {
		if _, ok := AllPositions[pos]; !ok {
			return fmt.Errorf("invalid position in history: %s", pos)
		}
	}

	return nil
}

// Clone returns a copy whose history slice does not alias the receiver's.
func (p Player) Clone() Player {
	copied := p
	copied.PositionHistory = append([]Position(nil), p.PositionHistory...)
	return copied
}
