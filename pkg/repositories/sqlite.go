package repositories

import (
	"context"
	"database/sql"
	"fmt"

	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS games (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_party TEXT NOT NULL,
	second_party TEXT NOT NULL DEFAULT '',
	first_commitment TEXT NOT NULL,
	second_commitment TEXT NOT NULL DEFAULT '',
	first_choice INTEGER NOT NULL DEFAULT 0,
	second_choice INTEGER NOT NULL DEFAULT 0,
	stake INTEGER NOT NULL,
	phase INTEGER NOT NULL DEFAULT 0
);
`

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateGame(ctx context.Context, game *gametypes.Game) (int64, error) {
	q := `
	INSERT INTO games (first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, q,
		game.FirstParty, game.SecondParty, game.FirstCommitment, game.SecondCommitment,
		game.FirstChoice, game.SecondChoice, game.Stake, game.Phase)
	if err != nil {
		return 0, fmt.Errorf("failed to insert game: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted game id: %v", err)
	}

	return id, nil
}

func (r *SQLiteRepository) GetGame(ctx context.Context, id int64) (*gametypes.Game, error) {
	q := `
	SELECT id, first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase
	FROM games WHERE id = ?;
	`
	game := &gametypes.Game{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&game.ID, &game.FirstParty, &game.SecondParty, &game.FirstCommitment, &game.SecondCommitment,
		&game.FirstChoice, &game.SecondChoice, &game.Stake, &game.Phase); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}

	return game, nil
}

func (r *SQLiteRepository) UpdateGame(ctx context.Context, game *gametypes.Game) error {
	q := `
	UPDATE games
	SET second_party = ?, second_commitment = ?, first_choice = ?, second_choice = ?, phase = ?
	WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, q,
		game.SecondParty, game.SecondCommitment, game.FirstChoice, game.SecondChoice, game.Phase, game.ID)
	if err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rows == 0 {
		return &ErrNotFound{}
	}

	return nil
}

func (r *SQLiteRepository) ListGames(ctx context.Context) ([]*gametypes.Game, error) {
	q := `
	SELECT id, first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase
	FROM games ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %v", err)
	}
	defer rows.Close()

	var games []*gametypes.Game
	for rows.Next() {
		game := &gametypes.Game{}
		if err := rows.Scan(
			&game.ID, &game.FirstParty, &game.SecondParty, &game.FirstCommitment, &game.SecondCommitment,
			&game.FirstChoice, &game.SecondChoice, &game.Stake, &game.Phase); err != nil {
			return nil, fmt.Errorf("failed to scan game: %v", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
