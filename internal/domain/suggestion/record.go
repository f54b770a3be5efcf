package suggestion

import (
	"context"
	"time"

	"github.com/matchdayhq/roster-api/internal/domain/player"
)

// Record is one persisted suggestion, kept so coordinators can review what
// the suggester proposed and why.
type Record struct {
	ID        string
	PlayerID  string
	Suggested player.Position
	Rule      string
	CreatedAt time.Time
}

// Repository exposes suggestion audit persistence.
type Repository interface {
	Append(ctx context.Context, rec Record) error
	ListByPlayer(ctx context.Context, playerID string) ([]Record, error)
}
