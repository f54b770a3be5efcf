package suggestion

import (
	"testing"

	"github.com/matchdayhq/roster-api/internal/domain/player"
)

// balancedRoster keeps every team-needs value at or below one so the
// team_needs tier stays quiet in scenarios that target other tiers.
func balancedRoster() []player.Player {
	out := make([]player.Player, 0, 11)
	add := func(kind player.Position, count int) {
		for i := 0; i < count; i++ {
			out = append(out, player.Player{Position: kind})
		}
	}
	add(player.PositionGoalkeeper, 1)
	add(player.PositionDefender, 4)
	add(player.PositionMidfielder, 4)
	add(player.PositionForward, 2)
	return out
}

func TestSuggestCascade(t *testing.T) {
	tests := []struct {
		name         string
		player       player.Player
		roster       []player.Player
		wantPosition player.Position
		wantRule     string
	}{
		{
			name:         "high goal count beats everything",
			player:       player.Player{Position: player.PositionDefender, Stats: player.Stats{Goals: 5, MatchesPlayed: 1}},
			roster:       balancedRoster(),
			wantPosition: player.PositionForward,
			wantRule:     "performance_goals",
		},
		{
			name:         "high assist count suggests midfield",
			player:       player.Player{Position: player.PositionDefender, Stats: player.Stats{Goals: 2, Assists: 4}},
			roster:       balancedRoster(),
			wantPosition: player.PositionMidfielder,
			wantRule:     "performance_assists",
		},
		{
			name:         "assist rate over enough matches suggests midfield",
			player:       player.Player{Position: player.PositionForward, Stats: player.Stats{Assists: 2, MatchesPlayed: 6}},
			roster:       balancedRoster(),
			wantPosition: player.PositionMidfielder,
			wantRule:     "experience",
		},
		{
			name:         "clean disciplinary record suggests defense",
			player:       player.Player{Position: player.PositionMidfielder, Stats: player.Stats{Goals: 1, Assists: 1, MatchesPlayed: 10}},
			roster:       balancedRoster(),
			wantPosition: player.PositionDefender,
			wantRule:     "experience",
		},
		{
			name:   "carded veteran falls through to team needs",
			player: player.Player{Position: player.PositionMidfielder, Stats: player.Stats{MatchesPlayed: 10, YellowCards: 2}},
			roster: []player.Player{
				{Position: player.PositionGoalkeeper},
				{Position: player.PositionGoalkeeper},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
				{Position: player.PositionForward},
			},
			wantPosition: player.PositionDefender,
			wantRule:     "team_needs",
		},
		{
			name: "history frequency picks the most common entry",
			player: player.Player{
				Position:        player.PositionForward,
				PositionHistory: []player.Position{player.PositionDefender, player.PositionMidfielder, player.PositionDefender},
			},
			roster:       balancedRoster(),
			wantPosition: player.PositionDefender,
			wantRule:     "history_frequency",
		},
		{
			name: "history tie breaks on first occurrence",
			player: player.Player{
				Position:        player.PositionForward,
				PositionHistory: []player.Position{player.PositionMidfielder, player.PositionDefender},
			},
			roster:       balancedRoster(),
			wantPosition: player.PositionMidfielder,
			wantRule:     "history_frequency",
		},
		{
			name:         "single history entry is ignored",
			player:       player.Player{Position: player.PositionGoalkeeper, PositionHistory: []player.Position{player.PositionForward}},
			roster:       balancedRoster(),
			wantPosition: player.PositionGoalkeeper,
			wantRule:     RuleRegisteredPosition,
		},
		{
			name:         "nothing fires keeps registered position",
			player:       player.Player{Position: player.PositionMidfielder},
			roster:       balancedRoster(),
			wantPosition: player.PositionMidfielder,
			wantRule:     RuleRegisteredPosition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Suggest(tc.player, tc.roster)
			if got.Position != tc.wantPosition {
				t.Fatalf("position: got=%s want=%s", got.Position, tc.wantPosition)
			}
			if got.Rule != tc.wantRule {
				t.Fatalf("rule: got=%s want=%s", got.Rule, tc.wantRule)
			}
		})
	}
}

func TestExperienceRequiresMoreThanFiveMatches(t *testing.T) {
	// Clean record but at the match threshold, not past it.
	p := player.Player{Position: player.PositionForward, Stats: player.Stats{MatchesPlayed: 5}}
	got := Suggest(p, balancedRoster())
	if got.Rule != RuleRegisteredPosition {
		t.Fatalf("expected fall through at threshold, got rule %s", got.Rule)
	}
}

func TestRulesOrderIsStable(t *testing.T) {
	want := []string{
		"performance_goals",
		"performance_assists",
		"experience",
		"team_needs",
		"history_frequency",
		"experience_recheck",
	}

	rules := Rules()
	if len(rules) != len(want) {
		t.Fatalf("unexpected rule count: got=%d want=%d", len(rules), len(want))
	}
	for i, name := range want {
		if rules[i].Name != name {
			t.Fatalf("rule %d: got=%s want=%s", i, rules[i].Name, name)
		}
	}
}
