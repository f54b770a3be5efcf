package suggestion

import "github.com/matchdayhq/roster-api/internal/domain/player"

const (
	perfGoalsThreshold       = 3
	perfAssistsThreshold     = 3
	experienceMinMatches     = 5
	goalsPerMatchThreshold   = 0.5
	assistsPerMatchThreshold = 0.3
	teamNeedsMinimum         = 1
)

// Result is a position suggestion together with the rule that produced it.
type Result struct {
	Position player.Position
	Rule     string
}

// Input is the snapshot a rule evaluates against.
type Input struct {
	Player player.Player
	Roster []player.Player
}

// Rule is one predicate->result entry in the cascade. It reports whether it
// fired and, if so, the suggested position.
type Rule struct {
	Name  string
	Apply func(in Input) (player.Position, bool)
}

// Rules returns the cascade in priority order. The first rule that fires
// wins; there is no score blending. The experience checks intentionally
// appear twice: once before the team-needs/history tiers and once after,
// matching the long-observed behavior of the suggester.
func Rules() []Rule {
	return []Rule{
		{Name: "performance_goals", Apply: performanceGoals},
		{Name: "performance_assists", Apply: performanceAssists},
		{Name: "experience", Apply: experience},
		{Name: "team_needs", Apply: teamNeeds},
		{Name: "history_frequency", Apply: historyFrequency},
		{Name: "experience_recheck", Apply: experience},
	}
}

const RuleRegisteredPosition = "registered_position"

// Suggest runs the cascade over the player and roster snapshot. It is total:
// it always returns one of the four position kinds, defaulting to the
// player's registered position when no rule fires.
func Suggest(p player.Player, roster []player.Player) Result {
	in := Input{Player: p, Roster: roster}
	for _, rule := range Rules() {
		if pos, ok := rule.Apply(in); ok {
			return Result{Position: pos, Rule: rule.Name}
		}
	}

	return Result{Position: p.Position, Rule: RuleRegisteredPosition}
}

func performanceGoals(in Input) (player.Position, bool) {
	if in.Player.Stats.Goals >= perfGoalsThreshold {
		return player.PositionForward, true
	}
	return "", false
}

func performanceAssists(in Input) (player.Position, bool) {
	if in.Player.Stats.Assists >= perfAssistsThreshold {
		return player.PositionMidfielder, true
	}
	return "", false
}

func experience(in Input) (player.Position, bool) {
	stats := in.Player.Stats
	if stats.MatchesPlayed <= experienceMinMatches {
		return "", false
	}

	matches := float64(stats.MatchesPlayed)
	if float64(stats.Goals)/matches > goalsPerMatchThreshold {
		return player.PositionForward, true
	}
	if float64(stats.Assists)/matches > assistsPerMatchThreshold {
		return player.PositionMidfielder, true
	}
	if stats.RedCards+stats.YellowCards == 0 {
		return player.PositionDefender, true
	}

	return "", false
}

func teamNeeds(in Input) (player.Position, bool) {
	kind, need := ComputeTeamNeeds(in.Roster).Neediest()
	if need > teamNeedsMinimum {
		return kind, true
	}
	return "", false
}

func historyFrequency(in Input) (player.Position, bool) {
	history := in.Player.PositionHistory
	if len(history) <= 1 {
		return "", false
	}

	counts := make(map[player.Position]int, len(player.PositionOrder))
	best := history[0]
	bestCount := 0
	// First kind to reach the running maximum wins, which keeps the
	// tie-break stable on order of first occurrence.
	for _, pos := range history {
		counts[pos]++
		if counts[pos] > bestCount {
			best = pos
			bestCount = counts[pos]
		}
	}

	return best, true
}
