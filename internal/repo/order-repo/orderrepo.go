package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/domain"
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

const dispatchColumns = `
        SELECT o.id, o.user_id, o.company_id, o.address_id, o.status, o.number, o.error_code,
               o.send_iiko_amount, o.delivery_type, o.pay_type, o.payment_status, o.birthday,
               o.is_mobile, o.change, o.final_sum, o.comment, o.delivery_at, o.expected_delivery_at,
               o.helper_id, u.name, u.phone, o.created_at
        FROM orders o
        JOIN users u ON u.id = o.user_id
        WHERE (o.status < 99 OR (o.status = 99 AND o.error_code = $1))
          AND o.send_iiko_amount < $2
          AND o.created_at >= $3
          AND (o.pay_type <> $4 OR o.payment_status = $5)`

func (r *Repository) FindForDispatch(ctx context.Context, orderID *int64, since time.Time, maxAttempts int) ([]domain.Order, error) {
	query := dispatchColumns
	args := []any{
		int(domain.ErrCodeTimeout), maxAttempts, since,
		int(domain.PayTypeInet), domain.PaymentStatusSuccess,
	}

	if orderID != nil {
		query += `
          AND o.id = $6`
		args = append(args, *orderID)
	} else {
		query += `
          AND o.id NOT IN (SELECT order_id FROM orders_iiko_sync WHERE created_at >= $3)`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders for dispatch", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.CompanyID, &order.AddressID, &order.Status,
			&order.Number, &order.ErrorCode, &order.SendIikoAmount, &order.DeliveryType,
			&order.PayType, &order.PaymentStatus, &order.Birthday, &order.IsMobile,
			&order.Change, &order.FinalSum, &order.Comment, &order.DeliveryAt,
			&order.ExpectedDeliveryAt, &order.HelperID, &order.UserName, &order.UserPhone,
			&order.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan order row for dispatch", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
        SELECT id, order_id, product_source_id, quantity
        FROM order_products
        WHERE order_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductSourceID, &item.Quantity); err != nil {
			zap.L().Error("can't scan order item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	for i := range items {
		modifiers, err := r.itemModifiers(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Modifiers = modifiers
	}
	return items, nil
}

func (r *Repository) itemModifiers(ctx context.Context, orderProductID int64) ([]domain.OrderItemModifier, error) {
	query := `
        SELECT id, source_id, group_source_id
        FROM order_product_modifiers
        WHERE order_product_id = $1
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query, orderProductID)
	if err != nil {
		zap.L().Error("can't get item modifiers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var modifiers []domain.OrderItemModifier
	for rows.Next() {
		var mod domain.OrderItemModifier
		if err := rows.Scan(&mod.ID, &mod.SourceID, &mod.GroupSourceID); err != nil {
			zap.L().Error("can't scan item modifier row", zap.Error(err))
			return nil, err
		}
		modifiers = append(modifiers, mod)
	}
	return modifiers, nil
}

func (r *Repository) Address(ctx context.Context, addressID int64) (*domain.UserAddress, error) {
	query := `
        SELECT id, address, home_number, building, entrance, floor, apartment, intercom,
               comment, lat, lng, classifier_id, city_name
        FROM user_addresses
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, addressID)

	var addr domain.UserAddress
	err := row.Scan(
		&addr.ID, &addr.Address, &addr.HomeNumber, &addr.Building, &addr.Entrance,
		&addr.Floor, &addr.Apartment, &addr.Intercom, &addr.Comment, &addr.Lat,
		&addr.Lng, &addr.ClassifierID, &addr.CityName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user address", zap.Error(err))
		return nil, err
	}
	return &addr, nil
}

// MarkError puts the order into the error state, clearing vendor-derived
// fields. bumpAttempt distinguishes submit failures (counted) from the
// empty-cart branch (not counted).
func (r *Repository) MarkError(ctx context.Context, orderID int64, code domain.ErrorCode, bumpAttempt bool) error {
	query := `
        UPDATE orders
        SET status = $1, number = NULL, expected_delivery_at = NULL, error_code = $2
        WHERE id = $3
    `
	if bumpAttempt {
		query = `
        UPDATE orders
        SET status = $1, number = NULL, expected_delivery_at = NULL, error_code = $2,
            send_iiko_amount = send_iiko_amount + 1
        WHERE id = $3
    `
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, int(domain.StatusError), int(code), orderID)
		if err != nil {
			zap.L().Error("can't mark order error", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) MarkSubmitted(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	query := `
        UPDATE orders
        SET status = $1, send_iiko_amount = send_iiko_amount + 1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, int(status), orderID)
		if err != nil {
			zap.L().Error("can't mark order submitted", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) UpdateFromVendor(ctx context.Context, orderID int64, status domain.OrderStatus, number, expectedAt *string, errCode *domain.ErrorCode) error {
	query := `
        UPDATE orders
        SET status = $1, number = $2, expected_delivery_at = $3, error_code = $4
        WHERE id = $5
    `
	var code *int
	if errCode != nil {
		c := int(*errCode)
		code = &c
	}
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, int(status), number, expectedAt, code, orderID)
		if err != nil {
			zap.L().Error("can't update order from vendor state", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) MarkDelivered(ctx context.Context, orderID int64) error {
	query := `
        UPDATE orders
        SET status = $1, error_code = NULL
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, int(domain.StatusDelivered), orderID)
		if err != nil {
			zap.L().Error("can't mark order delivered", zap.Error(err))
			return err
		}
		return nil
	})
}
