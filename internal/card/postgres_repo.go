package card

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Card, error) {
	sql, args, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ReleasedAt, &c.SetName, &c.CollectorNumber,
			&c.Rarity, &c.TypeLine, &c.USDPrice, &c.USDFoilPrice,
			&c.ImageURL, &c.ScryfallURI,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Card, error) {
	const query = `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE id = $1
		LIMIT 1`

	var c Card
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&c.ID, &c.Name, &c.ReleasedAt, &c.SetName, &c.CollectorNumber,
		&c.Rarity, &c.TypeLine, &c.USDPrice, &c.USDFoilPrice,
		&c.ImageURL, &c.ScryfallURI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Card{}, ErrNotFound
		}
		return Card{}, err
	}
	return c, nil
}

// BulkUpsert inserts or fully replaces cards keyed by id. Used only by the
// out-of-band ingestion pipeline.
func (r *PostgresRepo) BulkUpsert(ctx context.Context, cards []Card) (int, error) {
	const upsertSQL = `
		INSERT INTO cards (id, name, released_at, set_name, collector_number,
		                   rarity, type_line, usd_price, usd_foil_price,
		                   image_url, scryfall_uri, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			released_at = EXCLUDED.released_at,
			set_name = EXCLUDED.set_name,
			collector_number = EXCLUDED.collector_number,
			rarity = EXCLUDED.rarity,
			type_line = EXCLUDED.type_line,
			usd_price = EXCLUDED.usd_price,
			usd_foil_price = EXCLUDED.usd_foil_price,
			image_url = EXCLUDED.image_url,
			scryfall_uri = EXCLUDED.scryfall_uri,
			updated_at = NOW()`

	batch := &pgx.Batch{}
	for _, c := range cards {
		batch.Queue(upsertSQL,
			c.ID, c.Name, c.ReleasedAt, c.SetName, c.CollectorNumber,
			c.Rarity, c.TypeLine, c.USDPrice, c.USDFoilPrice,
			c.ImageURL, c.ScryfallURI,
		)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	results := r.db.SendBatch(timeoutCtx, batch)
	defer results.Close()

	upserted := 0
	for range cards {
		if _, err := results.Exec(); err != nil {
			return upserted, err
		}
		upserted++
	}
	return upserted, nil
}
