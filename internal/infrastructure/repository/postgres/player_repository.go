package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
	qb "github.com/matchdayhq/roster-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db     *sqlx.DB
	logger *logging.Logger
}

var playerSelectColumns = []string{
	"id",
	"name",
	"position",
	"jersey_number",
	"phone",
	"is_checked_in",
	"goals",
	"assists",
	"red_cards",
	"yellow_cards",
	"matches_played",
	"position_history",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewPlayerRepository(db *sqlx.DB, logger *logging.Logger) *PlayerRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerRepository{db: db, logger: logger}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, nil)
}

func (r *PlayerRepository) ListCheckedIn(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, []qb.Condition{qb.Eq("is_checked_in", true)})
}

func (r *PlayerRepository) list(ctx context.Context, extra []qb.Condition) ([]player.Player, error) {
	conditions := append([]qb.Condition{qb.IsNull("deleted_at")}, extra...)
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(conditions...).
		OrderBy("jersey_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toDomain(ctx, row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("id", playerID))
}

func (r *PlayerRepository) GetByJerseyNumber(ctx context.Context, jerseyNumber int) (player.Player, bool, error) {
	return r.getOne(ctx, qb.Eq("jersey_number", jerseyNumber))
}

func (r *PlayerRepository) getOne(ctx context.Context, condition qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(condition, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return r.toDomain(ctx, row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	history, err := player.EncodeHistory(p.PositionHistory)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "position", "jersey_number", "phone", "is_checked_in",
			"goals", "assists", "red_cards", "yellow_cards", "matches_played",
			"position_history", "created_at", "updated_at").
		Values(p.ID, p.Name, string(p.Position), p.JerseyNumber, p.Phone, p.IsCheckedIn,
			p.Stats.Goals, p.Stats.Assists, p.Stats.RedCards, p.Stats.YellowCards, p.Stats.MatchesPlayed,
			history, now, now).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	history, err := player.EncodeHistory(p.PositionHistory)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("position", string(p.Position)).
		Set("jersey_number", p.JerseyNumber).
		Set("phone", p.Phone).
		Set("is_checked_in", p.IsCheckedIn).
		Set("goals", p.Stats.Goals).
		Set("assists", p.Stats.Assists).
		Set("red_cards", p.Stats.RedCards).
		Set("yellow_cards", p.Stats.YellowCards).
		Set("matches_played", p.Stats.MatchesPlayed).
		Set("position_history", history).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", p.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	query, args, err := qb.Update("players").
		Set("deleted_at", time.Now().UTC()).
		Where(qb.Eq("id", playerID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("soft-delete player: %w", err)
	}
	return nil
}

// toDomain maps a row to the domain model. A malformed history blob is
// absorbed: the player comes back with no history and a warning is logged,
// so downstream heuristics fall through to their defaults instead of the
// read failing.
func (r *PlayerRepository) toDomain(ctx context.Context, row playerTableModel) player.Player {
	history, err := player.DecodeHistory(row.PositionHistory)
	if err != nil {
		if errors.Is(err, player.ErrMalformedHistory) {
			r.logger.WarnContext(ctx, "position history unreadable, ignoring",
				"player_id", row.ID, "error", err)
			history = nil
		}
	}

	return player.Player{
		ID:           row.ID,
		Name:         row.Name,
		Position:     player.Position(row.Position),
		JerseyNumber: row.JerseyNumber,
		Phone:        row.Phone,
		IsCheckedIn:  row.IsCheckedIn,
		Stats: player.Stats{
			Goals:         row.Goals,
			Assists:       row.Assists,
			RedCards:      row.RedCards,
			YellowCards:   row.YellowCards,
			MatchesPlayed: row.MatchesPlayed,
		},
		PositionHistory: history,
	}
}
