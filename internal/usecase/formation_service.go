package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/roster-api/internal/domain/formation"
	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/platform/random"
)

// GenerateLineupInput selects a formation either by catalog name or by
// explicit per-kind counts.
type GenerateLineupInput struct {
	FormationName string
	Positions     map[string]int
}

// Lineup is a generated starting lineup.
type Lineup struct {
	Formation formation.Formation
	Slots     []formation.Slot
}

// FormationService composes randomized lineups from checked-in players.
type FormationService struct {
	playerRepo player.Repository
	src        random.Source
}

func NewFormationService(playerRepo player.Repository, src random.Source) *FormationService {
	if src == nil {
		src = random.NewSource()
	}
	return &FormationService{
		playerRepo: playerRepo,
		src:        src,
	}
}

// Catalog exposes the fixed formation catalog.
func (s *FormationService) Catalog() []formation.Formation {
	return formation.Catalog()
}

func (s *FormationService) GenerateLineup(ctx context.Context, input GenerateLineupInput) (Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.GenerateLineup")
	defer span.End()

	target, err := s.resolveFormation(input)
	if err != nil {
		return Lineup{}, err
	}

	checkedIn, err := s.playerRepo.ListCheckedIn(ctx)
	if err != nil {
		return Lineup{}, fmt.Errorf("list checked-in players: %w", err)
	}

	slots, err := formation.Assign(checkedIn, target, s.src)
	if err != nil {
		return Lineup{}, fmt.Errorf("assign lineup for %s: %w", target.Name, err)
	}

	return Lineup{Formation: target, Slots: slots}, nil
}

func (s *FormationService) resolveFormation(input GenerateLineupInput) (formation.Formation, error) {
	name := strings.TrimSpace(input.FormationName)
	if name != "" {
		target, ok := formation.FromCatalog(name)
		if !ok {
			return formation.Formation{}, fmt.Errorf("%w: %s", formation.ErrFormationNotInCatalog, name)
		}
		return target, nil
	}

	if len(input.Positions) == 0 {
		return formation.Formation{}, fmt.Errorf("%w: formation name or position counts are required", ErrInvalidInput)
	}

	target := formation.Formation{
		Name:      "custom",
		Positions: make(map[player.Position]int, len(input.Positions)),
	}
	for kind, count := range input.Positions {
		target.Positions[player.Position(strings.ToUpper(strings.TrimSpace(kind)))] = count
	}
	if err := target.Validate(); err != nil {
		return formation.Formation{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return target, nil
}
