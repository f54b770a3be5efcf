package postgres

import (
	"time"
)

type playerTableModel struct {
	ID              string     `db:"id"`
	Name            string     `db:"name"`
	Position        string     `db:"position"`
	JerseyNumber    int        `db:"jersey_number"`
	Phone           string     `db:"phone"`
	IsCheckedIn     bool       `db:"is_checked_in"`
	Goals           int        `db:"goals"`
	Assists         int        `db:"assists"`
	RedCards        int        `db:"red_cards"`
	YellowCards     int        `db:"yellow_cards"`
	MatchesPlayed   int        `db:"matches_played"`
	PositionHistory []byte     `db:"position_history"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type suggestionTableModel struct {
	ID        string    `db:"id"`
	PlayerID  string    `db:"player_id"`
	Suggested string    `db:"suggested"`
	Rule      string    `db:"rule"`
	CreatedAt time.Time `db:"created_at"`
}
