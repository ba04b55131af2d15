package stoplistrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// ReplaceTerminal swaps the stop list of one terminal group for the latest
// vendor snapshot: rows absent from the snapshot are deleted, present rows
// upserted by composite key.
func (r *Repository) ReplaceTerminal(ctx context.Context, orgID, terminalID string, items []dto.StopListItem) error {
	deleteStale := `
        DELETE FROM stop_lists
        WHERE company_id = $1 AND terminal_group_id = $2 AND product_id <> ALL($3)
    `
	upsert := `
        INSERT INTO stop_lists (company_id, terminal_group_id, product_id, balance)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (company_id, terminal_group_id, product_id)
        DO UPDATE SET balance = EXCLUDED.balance
    `
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deleteStale, orgID, terminalID, productIDs); err != nil {
			zap.L().Error("can't delete stale stop list rows", zap.Error(err))
			return err
		}
		for _, item := range items {
			if _, err := r.db.Exec(ctx, upsert, orgID, terminalID, item.ProductID, item.Balance); err != nil {
				zap.L().Error("can't upsert stop list row", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

// PurgePositive removes every row with a positive balance, leaving only
// zero and negative balances.
func (r *Repository) PurgePositive(ctx context.Context) error {
	query := `
        DELETE FROM stop_lists
        WHERE balance > 0
    `
	_, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't purge stop list rows", zap.Error(err))
		return err
	}
	return nil
}
