package transferlogrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/pg"
)

// Repository writes the append-only transfer audit log.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, orderID int64, message string, response []byte) error {
	if len(response) == 0 {
		response = []byte("{}")
	}
	query := `
        INSERT INTO iiko_transfer_log (order_id, message, response)
        VALUES ($1, $2, $3)
    `
	_, err := r.db.Exec(ctx, query, orderID, message, response)
	if err != nil {
		zap.L().Error("can't save transfer log row", zap.Error(err))
		return err
	}
	return nil
}
