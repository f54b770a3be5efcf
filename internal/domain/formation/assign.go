package formation

import (
	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/platform/random"
)

// Assign composes a randomized starting lineup from checked-in players.
//
// Two passes, in this order:
//  1. preferred-position: each formation slot is filled by a uniform random
//     pick from the bucket of players registered at that slot's kind;
//  2. gap-filling: slots still open are filled in fixed kind order by uniform
//     random picks from the pooled leftovers, ignoring registered position.
//
// The input slice and its players are never mutated. Each call may produce a
// different lineup for identical inputs.
func Assign(checkedIn []player.Player, f Formation, src random.Source) ([]Slot, error) {
	if len(checkedIn) == 0 {
		return nil, ErrNoPlayersAvailable
	}

	required := f.Total()
	if len(checkedIn) < required {
		return nil, &InsufficientPlayersError{
			Required:  required,
			Available: len(checkedIn),
		}
	}

	buckets := make(map[player.Position][]player.Player, len(player.PositionOrder))
	for _, p := range checkedIn {
		buckets[p.Position] = append(buckets[p.Position], p)
	}

	lineup := make([]Slot, 0, required)
	assigned := make(map[string]struct{}, required)
	unfilled := make([]player.Position, 0, required)

	for _, kind := range player.PositionOrder {
		needed := f.Positions[kind]
		bucket := buckets[kind]
		for i := 0; i < needed; i++ {
			if len(bucket) == 0 {
				unfilled = append(unfilled, kind)
				continue
			}
			pick := src.Intn(len(bucket))
			chosen := bucket[pick]
			bucket = append(bucket[:pick:pick], bucket[pick+1:]...)
			lineup = append(lineup, toSlot(chosen, kind))
			assigned[chosen.ID] = struct{}{}
		}
		buckets[kind] = bucket
	}

	if len(unfilled) == 0 {
		return lineup, nil
	}

	pool := make([]player.Player, 0, len(checkedIn)-len(lineup))
	for _, p := range checkedIn {
		if _, taken := assigned[p.ID]; taken {
			continue
		}
		pool = append(pool, p)
	}

	for _, kind := range unfilled {
		if len(pool) == 0 {
			// Only reachable when the precondition check was bypassed;
			// return the partial assignment instead of failing.
			break
		}
		pick := src.Intn(len(pool))
		chosen := pool[pick]
		pool = append(pool[:pick:pick], pool[pick+1:]...)
		lineup = append(lineup, toSlot(chosen, kind))
	}

	return lineup, nil
}

func toSlot(p player.Player, kind player.Position) Slot {
	return Slot{
		PlayerID:         p.ID,
		Name:             p.Name,
		JerseyNumber:     p.JerseyNumber,
		AssignedPosition: kind,
	}
}
