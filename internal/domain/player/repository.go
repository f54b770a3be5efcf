package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	ListCheckedIn(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	GetByJerseyNumber(ctx context.Context, jerseyNumber int) (Player, bool, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, playerID string) error
}
