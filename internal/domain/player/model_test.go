package player

import "testing"

func validPlayer() Player {
	return Player{
		ID:           "pl-01",
		Name:         "Bima Sakti",
		Position:     PositionMidfielder,
		JerseyNumber: 8,
	}
}

func TestPlayerValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Player)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Player) {}},
		{name: "missing id", mutate: func(p *Player) { p.ID = "" }, wantErr: true},
		{name: "missing name", mutate: func(p *Player) { p.Name = "" }, wantErr: true},
		{name: "bad position", mutate: func(p *Player) { p.Position = "SWEEPER" }, wantErr: true},
		{name: "jersey too low", mutate: func(p *Player) { p.JerseyNumber = 0 }, wantErr: true},
		{name: "jersey too high", mutate: func(p *Player) { p.JerseyNumber = 100 }, wantErr: true},
		{name: "negative counter", mutate: func(p *Player) { p.Stats.Goals = -1 }, wantErr: true},
		{name: "bad history entry", mutate: func(p *Player) { p.PositionHistory = []Position{"LIBERO"} }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPlayer()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlayerCloneDoesNotAliasHistory(t *testing.T) {
	p := validPlayer()
	p.PositionHistory = []Position{PositionMidfielder, PositionDefender}

	copied := p.Clone()
	copied.PositionHistory[0] = PositionForward

	if p.PositionHistory[0] != PositionMidfielder {
		t.Fatal("clone shares history storage with original")
	}
}
