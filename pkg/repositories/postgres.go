package repositories

import (
	"context"
	"fmt"

	gametypes "github.com/showdown-games/showdown/pkg/game/types"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS games (
	id BIGSERIAL PRIMARY KEY,
	first_party TEXT NOT NULL,
	second_party TEXT NOT NULL DEFAULT '',
	first_commitment TEXT NOT NULL,
	second_commitment TEXT NOT NULL DEFAULT '',
	first_choice SMALLINT NOT NULL DEFAULT 0,
	second_choice SMALLINT NOT NULL DEFAULT 0,
	stake BIGINT NOT NULL,
	phase SMALLINT NOT NULL DEFAULT 0
);
`

// NewPostgresRepository creates a new PostgresRepository.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %v", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) CreateGame(ctx context.Context, game *gametypes.Game) (int64, error) {
	q := `
	INSERT INTO games (first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id;
	`
	var id int64
	if err := r.conn.QueryRow(ctx, q,
		game.FirstParty, game.SecondParty, game.FirstCommitment, game.SecondCommitment,
		game.FirstChoice, game.SecondChoice, game.Stake, game.Phase).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert game: %v", err)
	}

	return id, nil
}

func (r *PostgresRepository) GetGame(ctx context.Context, id int64) (*gametypes.Game, error) {
	q := `
	SELECT id, first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase
	FROM games WHERE id = $1;
	`
	game := &gametypes.Game{}
	if err := r.conn.QueryRow(ctx, q, id).Scan(
		&game.ID, &game.FirstParty, &game.SecondParty, &game.FirstCommitment, &game.SecondCommitment,
		&game.FirstChoice, &game.SecondChoice, &game.Stake, &game.Phase); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan game: %v", err)
	}

	return game, nil
}

func (r *PostgresRepository) UpdateGame(ctx context.Context, game *gametypes.Game) error {
	q := `
	UPDATE games
	SET second_party = $1, second_commitment = $2, first_choice = $3, second_choice = $4, phase = $5
	WHERE id = $6;
	`
	tag, err := r.conn.Exec(ctx, q,
		game.SecondParty, game.SecondCommitment, game.FirstChoice, game.SecondChoice, game.Phase, game.ID)
	if err != nil {
		return fmt.Errorf("failed to update game: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrNotFound{}
	}

	return nil
}

func (r *PostgresRepository) ListGames(ctx context.Context) ([]*gametypes.Game, error) {
	q := `
	SELECT id, first_party, second_party, first_commitment, second_commitment, first_choice, second_choice, stake, phase
	FROM games ORDER BY id;
	`
	rows, err := r.conn.Query(ctx, q)
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
