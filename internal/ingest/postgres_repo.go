package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
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

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const insertSQL = `
		INSERT INTO ingest_runs (id, started_at, status, source, search_query)
		VALUES ($1, $2, $3, $4, $5)`

	id := uuid.New().String()
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, insertSQL,
		id, run.StartedAt, run.Status, run.Source, run.SearchQuery,
	); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const updateSQL = `
		UPDATE ingest_runs
		SET finished_at = $2,
		    status = $3,
		    cards_fetched = $4,
		    cards_upserted = $5,
		    error = $6
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, updateSQL,
		run.ID, run.FinishedAt, run.Status, run.CardsFetched, run.CardsUpserted, run.Error,
	)
	return err
}
