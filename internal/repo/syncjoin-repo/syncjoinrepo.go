package syncjoinrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, row *domain.OrdersIikoSync) error {
	query := `
        INSERT INTO orders_iiko_sync (order_id, status, correlation_id, iiko_order_id)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, row.OrderID, row.Status, row.CorrelationID, row.IikoOrderID)
	if err != nil {
		zap.L().Error("can't save sync-join row", zap.Error(err))
		return err
	}
	return nil
}

// FindForReconcile returns join rows created within (from, to) whose order is
// not in a terminal state, with the order fields the status flow needs.
func (r *Repository) FindForReconcile(ctx context.Context, from, to time.Time) ([]domain.ReconcileItem, error) {
	query := `
        SELECT s.order_id, s.iiko_order_id, o.status, o.send_iiko_amount, o.helper_id,
               o.user_id, o.is_mobile, c.source_id
        FROM orders_iiko_sync s
        JOIN orders o ON o.id = s.order_id
        JOIN companies c ON c.id = o.company_id
        WHERE s.created_at > $1 AND s.created_at < $2
          AND o.status NOT IN ($3, $4, $5)
        ORDER BY s.id
    `
	rows, err := r.db.Query(ctx, query, from, to,
		int(domain.StatusCancelled), int(domain.StatusError), int(domain.StatusClosed))
	if err != nil {
		zap.L().Error("can't get sync-join rows for reconcile", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.ReconcileItem
	for rows.Next() {
		var item domain.ReconcileItem
		err := rows.Scan(
			&item.OrderID, &item.IikoOrderID, &item.OrderStatus, &item.SendIikoAmount,
			&item.HelperID, &item.UserID, &item.IsMobile, &item.CompanySourceID,
		)
		if err != nil {
			zap.L().Error("can't scan sync-join row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
