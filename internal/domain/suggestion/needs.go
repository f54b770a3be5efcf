package suggestion

import (
	"math"

	"github.com/matchdayhq/roster-api/internal/domain/player"
)

// idealRatios is the baseline roster composition the needs calculation
// measures against.
var idealRatios = map[player.Position]float64{
	player.PositionGoalkeeper: 0.10,
	player.PositionDefender:   0.40,
	player.PositionMidfielder: 0.40,
	player.PositionForward:    0.20,
}

// TeamNeeds maps each position kind to how many more players of that kind
// the roster would want relative to the ideal ratios. Recomputed on demand,
// never persisted.
type TeamNeeds map[player.Position]int

// ComputeTeamNeeds derives per-kind need counts from the roster snapshot:
// ideal[k] = ceil(len(roster) * ratio[k]), need[k] = max(0, ideal[k]-current[k]).
func ComputeTeamNeeds(roster []player.Player) TeamNeeds {
	current := make(map[player.Position]int, len(player.PositionOrder))
	for _, p := range roster {
		current[p.Position]++
	}

	total := float64(len(roster))
	needs := make(TeamNeeds, len(player.PositionOrder))
	for _, kind := range player.PositionOrder {
		ideal := int(math.Ceil(total * idealRatios[kind]))
		need := ideal - current[kind]
		if need < 0 {
			need = 0
		}
		needs[kind] = need
	}

	return needs
}

// Neediest returns the kind with the highest need and its value. Ties break
// on the fixed kind order.
func (n TeamNeeds) Neediest() (player.Position, int) {
	best := player.PositionGoalkeeper
	bestNeed := -1
	for _, kind := range player.PositionOrder {
		if n[kind] > bestNeed {
			best = kind
			bestNeed = n[kind]
		}
	}
	return best, bestNeed
}
