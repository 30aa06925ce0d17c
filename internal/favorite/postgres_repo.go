package favorite

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cardapi/internal/card"
)

const uniqueViolation = "23505"

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Add inserts the favorite row. Concurrent adds for the same identifier race
// on the primary key, never on a read-modify-write.
func (r *PostgresRepo) Add(ctx context.Context, cardID string) error {
	const insertSQL = `INSERT INTO favorites (id) VALUES ($1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, insertSQL, cardID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyFavorited
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) Remove(ctx context.Context, cardID string) error {
	const deleteSQL = `DELETE FROM favorites WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	// RowsAffected is deliberately ignored: removal is idempotent.
	_, err := r.db.Exec(timeoutCtx, deleteSQL, cardID)
	return err
}

// ListCards joins favorites against the catalog. Favorites whose card no
// longer exists are excluded by the inner join but never deleted.
func (r *PostgresRepo) ListCards(ctx context.Context) ([]card.Card, error) {
	const dataSQL = `
		SELECT c.id, c.name, c.released_at, c.set_name, c.collector_number,
		       c.rarity, c.type_line, c.usd_price, c.usd_foil_price,
		       c.image_url, c.scryfall_uri
		FROM favorites f
		JOIN cards c ON c.id = f.id
		ORDER BY f.added_at ASC, c.id ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []card.Card
	for rows.Next() {
		var c card.Card
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ReleasedAt, &c.SetName, &c.CollectorNumber,
			&c.Rarity, &c.TypeLine, &c.USDPrice, &c.USDFoilPrice,
			&c.ImageURL, &c.ScryfallURI,
		); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
