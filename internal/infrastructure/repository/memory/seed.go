package memory

import "github.com/matchdayhq/roster-api/internal/domain/player"

// SeedPlayers returns a development roster: 16 players covering all four
// position kinds, most of them checked in, with enough stat spread to
// exercise every suggester tier.
func SeedPlayers() []player.Player {
	gk := player.PositionGoalkeeper
	def := player.PositionDefender
	mid := player.PositionMidfielder
	fwd := player.PositionForward

	return []player.Player{
		{ID: "pl-gk-01", Name: "Andre Silalahi", Position: gk, JerseyNumber: 1, Phone: "+62-811-555-0101", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 12}},
		{ID: "pl-gk-02", Name: "Teddy Wirawan", Position: gk, JerseyNumber: 13, Phone: "+62-811-555-0113",
			Stats: player.Stats{MatchesPlayed: 3}},
		{ID: "pl-def-01", Name: "Hansel Prakoso", Position: def, JerseyNumber: 2, Phone: "+62-811-555-0102", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 10, YellowCards: 1}},
		{ID: "pl-def-02", Name: "Nick Kusuma", Position: def, JerseyNumber: 3, Phone: "+62-811-555-0103", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 9}},
		{ID: "pl-def-03", Name: "Dusan Santoso", Position: def, JerseyNumber: 4, Phone: "+62-811-555-0104", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 8, YellowCards: 2}},
		{ID: "pl-def-04", Name: "Ricky Fadillah", Position: def, JerseyNumber: 5, Phone: "+62-811-555-0105", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 7},
			PositionHistory: []player.Position{def, def, mid}},
		{ID: "pl-def-05", Name: "Bagas Nugraha", Position: def, JerseyNumber: 15, Phone: "+62-811-555-0115",
			Stats: player.Stats{MatchesPlayed: 2}},
		{ID: "pl-mid-01", Name: "Maciej Halim", Position: mid, JerseyNumber: 6, Phone: "+62-811-555-0106", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 11, Assists: 4, Goals: 1}},
		{ID: "pl-mid-02", Name: "Marc Kurniawan", Position: mid, JerseyNumber: 8, Phone: "+62-811-555-0108", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 10, Assists: 2}},
		{ID: "pl-mid-03", Name: "Bruno Mahendra", Position: mid, JerseyNumber: 10, Phone: "+62-811-555-0110", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 9, Goals: 2, Assists: 1}},
		{ID: "pl-mid-04", Name: "Eber Baskoro", Position: mid, JerseyNumber: 14, Phone: "+62-811-555-0114", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 6, Assists: 1}},
		{ID: "pl-mid-05", Name: "Yanto Pratama", Position: mid, JerseyNumber: 16, Phone: "+62-811-555-0116",
			Stats: player.Stats{MatchesPlayed: 1}},
		{ID: "pl-fwd-01", Name: "Gustavo Adiputra", Position: fwd, JerseyNumber: 9, Phone: "+62-811-555-0109", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 10, Goals: 6, Assists: 1}},
		{ID: "pl-fwd-02", Name: "David Saputra", Position: fwd, JerseyNumber: 11, Phone: "+62-811-555-0111", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 8, Goals: 3}},
		{ID: "pl-fwd-03", Name: "Ezra Wibowo", Position: fwd, JerseyNumber: 7, Phone: "+62-811-555-0107", IsCheckedIn: true,
			Stats: player.Stats{MatchesPlayed: 4, Goals: 1},
			PositionHistory: []player.Position{fwd, mid}},
		{ID: "pl-fwd-04", Name: "Iman Hartono", Position: fwd, JerseyNumber: 19, Phone: "+62-811-555-0119",
			Stats: player.Stats{MatchesPlayed: 0}},
	}
}
