package synclogrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/pg"
)

// Repository manages sync-run rows. The max row id per type is the implicit
// current-version pointer reference queries join against.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, syncType string) (int64, error) {
	query := `
        INSERT INTO iiko_sync_log (type, status)
        VALUES ($1, $2)
        RETURNING id
    `
	var id int64
	if err := r.db.QueryRow(ctx, query, syncType, domain.SyncStatusPending).Scan(&id); err != nil {
		zap.L().Error("can't create sync log row", zap.Error(err))
		return 0, err
	}
	return id, nil
}

func (r *Repository) MarkSuccess(ctx context.Context, id int64) error {
	query := `
        UPDATE iiko_sync_log
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.SyncStatusSuccess, id)
	if err != nil {
		zap.L().Error("can't mark sync log success", zap.Error(err))
		return err
	}
	return nil
}

// LastSuccessID returns the id of the most recent successful run of a type,
// or 0 when the type never completed.
func (r *Repository) LastSuccessID(ctx context.Context, syncType string) (int64, error) {
	query := `
        SELECT id
        FROM iiko_sync_log
        WHERE type = $1 AND status = $2
        ORDER BY id DESC
        LIMIT 1
    `
	var id int64
	err := r.db.QueryRow(ctx, query, syncType, domain.SyncStatusSuccess).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		zap.L().Error("can't get last successful sync version", zap.Error(err))
		return 0, err
	}
	return id, nil
}
