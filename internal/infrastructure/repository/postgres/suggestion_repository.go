package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/domain/suggestion"
	qb "github.com/matchdayhq/roster-api/internal/platform/querybuilder"
)

type SuggestionRepository struct {
	db *sqlx.DB
}

func NewSuggestionRepository(db *sqlx.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

func (r *SuggestionRepository) Append(ctx context.Context, rec suggestion.Record) error {
	query, args, err := qb.InsertInto("suggestions").
		Columns("id", "player_id", "suggested", "rule", "created_at").
		Values(rec.ID, rec.PlayerID, string(rec.Suggested), rec.Rule, rec.CreatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert suggestion query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}
	return nil
}

func (r *SuggestionRepository) ListByPlayer(ctx context.Context, playerID string) ([]suggestion.Record, error) {
	query, args, err := qb.Select("id", "player_id", "suggested", "rule", "created_at").
		From("suggestions").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select suggestions query: %w", err)
	}

	var rows []suggestionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select suggestions: %w", err)
	}

	out := make([]suggestion.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, suggestion.Record{
			ID:        row.ID,
			PlayerID:  row.PlayerID,
			Suggested: player.Position(row.Suggested),
			Rule:      row.Rule,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
