package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/platform/cache"
	idgen "github.com/matchdayhq/roster-api/internal/platform/id"
)

const rosterListCacheKey = "roster:list"

// RegisterPlayerInput carries a new player registration.
type RegisterPlayerInput struct {
	Name         string
	Position     string
	JerseyNumber int
	Phone        string
}

// UpdateContactInput carries a contact-info change.
type UpdateContactInput struct {
	PlayerID string
	Phone    string
}

// RosterService owns player registration, contact updates, and session
// check-in state.
type RosterService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	listCache  *cache.Store
	now        func() time.Time
}

func NewRosterService(playerRepo player.Repository, idGen idgen.Generator, listCache *cache.Store) *RosterService {
	return &RosterService{
		playerRepo: playerRepo,
		idGen:      idGen,
		listCache:  listCache,
		now:        time.Now,
	}
}

func (s *RosterService) Register(ctx context.Context, input RegisterPlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Register")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	position := player.Position(strings.ToUpper(strings.TrimSpace(input.Position)))

	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if _, ok := player.AllPositions[position]; !ok {
		return player.Player{}, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, input.Position)
	}
	if input.JerseyNumber < player.JerseyNumberMin || input.JerseyNumber > player.JerseyNumberMax {
		return player.Player{}, fmt.Errorf("%w: jersey number must be between %d and %d", ErrInvalidInput, player.JerseyNumberMin, player.JerseyNumberMax)
	}

	_, taken, err := s.playerRepo.GetByJerseyNumber(ctx, input.JerseyNumber)
	if err != nil {
		return player.Player{}, fmt.Errorf("check jersey number: %w", err)
	}
	if taken {
		return player.Player{}, fmt.Errorf("%w: jersey number %d is already taken", ErrConflict, input.JerseyNumber)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	item := player.Player{
		ID:           playerID,
		Name:         input.Name,
		Position:     position,
		JerseyNumber: input.JerseyNumber,
		Phone:        input.Phone,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	s.invalidateList(ctx)

	return item, nil
}

func (s *RosterService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.List")
	defer span.End()

	if s.listCache == nil {
		return s.playerRepo.List(ctx)
	}

	value, err := s.listCache.GetOrLoad(ctx, rosterListCacheKey, func(ctx context.Context) (any, error) {
		return s.playerRepo.List(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	players, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cached roster type %T", value)
	}

	return players, nil
}

func (s *RosterService) ListCheckedIn(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListCheckedIn")
	defer span.End()

	players, err := s.playerRepo.ListCheckedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checked-in players: %w", err)
	}

	return players, nil
}

func (s *RosterService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *RosterService) UpdateContact(ctx context.Context, input UpdateContactInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.UpdateContact")
	defer span.End()

	input.Phone = strings.TrimSpace(input.Phone)
	if input.Phone == "" {
		return player.Player{}, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	item, err := s.Get(ctx, input.PlayerID)
	if err != nil {
		return player.Player{}, err
	}

	item.Phone = input.Phone
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player contact: %w", err)
	}
	s.invalidateList(ctx)

	return item, nil
}

func (s *RosterService) Remove(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Remove")
	defer span.End()

	if _, err := s.Get(ctx, playerID); err != nil {
		return err
	}

	if err := s.playerRepo.Delete(ctx, strings.TrimSpace(playerID)); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	s.invalidateList(ctx)

	return nil
}

func (s *RosterService) CheckIn(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CheckIn")
	defer span.End()

	return s.setCheckedIn(ctx, playerID, true)
}

func (s *RosterService) CheckOut(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.CheckOut")
	defer span.End()

	return s.setCheckedIn(ctx, playerID, false)
}

func (s *RosterService) setCheckedIn(ctx context.Context, playerID string, checkedIn bool) (player.Player, error) {
	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if item.IsCheckedIn == checkedIn {
		return item, nil
	}

	item.IsCheckedIn = checkedIn
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update check-in state: %w", err)
	}
	s.invalidateList(ctx)

	return item, nil
}

func (s *RosterService) invalidateList(ctx context.Context) {
	if s.listCache == nil {
		return
	}
	s.listCache.Delete(ctx, rosterListCacheKey)
}
