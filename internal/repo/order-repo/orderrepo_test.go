package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTxManager := pg.NewMockTXManager(ctrl)
	mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB
}

var dispatchCols = []string{
	"id", "user_id", "company_id", "address_id", "status", "number", "error_code",
	"send_iiko_amount", "delivery_type", "pay_type", "payment_status", "birthday",
	"is_mobile", "change", "final_sum", "comment", "delivery_at", "expected_delivery_at",
	"helper_id", "name", "phone", "created_at",
}

func TestRepository_FindForDispatch(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	since := time.Now().Add(-time.Hour)
	createdAt := time.Now()

	t.Run("window selection excludes already synced orders", func(t *testing.T) {
		rows := pgxmock.NewRows(dispatchCols).AddRow(
			int64(1), int64(10), int64(5), (*int64)(nil), domain.StatusUnconfirmed,
			(*string)(nil), (*domain.ErrorCode)(nil), 0, 1, domain.PayTypeCash,
			(*int)(nil), false, false, (*float64)(nil), 500.0, (*string)(nil),
			(*string)(nil), (*string)(nil), (*string)(nil), "Иван", "79991234567", createdAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta("AND o.id NOT IN (SELECT order_id FROM orders_iiko_sync WHERE created_at >= $3)")).
			WithArgs(int(domain.ErrCodeTimeout), 1, since, int(domain.PayTypeInet), domain.PaymentStatusSuccess).
			WillReturnRows(rows)

		orders, err := repo.FindForDispatch(ctx, nil, since, 1)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, int64(1), orders[0].ID)
		assert.Equal(t, "Иван", orders[0].UserName)
	})

	t.Run("single order filter", func(t *testing.T) {
		orderID := int64(42)
		mock.ExpectQuery(regexp.QuoteMeta("AND o.id = $6")).
			WithArgs(int(domain.ErrCodeTimeout), 1, since, int(domain.PayTypeInet), domain.PaymentStatusSuccess, orderID).
			WillReturnRows(pgxmock.NewRows(dispatchCols))

		orders, err := repo.FindForDispatch(ctx, &orderID, since, 1)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT o.id").
			WithArgs(int(domain.ErrCodeTimeout), 1, since, int(domain.PayTypeInet), domain.PaymentStatusSuccess).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindForDispatch(ctx, nil, since, 1)
		assert.Error(t, err)
	})
}

func TestRepository_Items(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	itemRows := pgxmock.NewRows([]string{"id", "order_id", "product_source_id", "quantity"}).
		AddRow(int64(100), int64(1), "p-1", 2.0)
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_products")).
		WithArgs(int64(1)).
		WillReturnRows(itemRows)

	modifierRows := pgxmock.NewRows([]string{"id", "source_id", "group_source_id"}).
		AddRow(int64(200), "m-1", "g-1")
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_product_modifiers")).
		WithArgs(int64(100)).
		WillReturnRows(modifierRows)

	items, err := repo.Items(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "p-1", items[0].ProductSourceID)
	assert.Len(t, items[0].Modifiers, 1)
	assert.Equal(t, "m-1", items[0].Modifiers[0].SourceID)
}

func TestRepository_Address(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	cols := []string{
		"id", "address", "home_number", "building", "entrance", "floor", "apartment",
		"intercom", "comment", "lat", "lng", "classifier_id", "city_name",
	}

	t.Run("address exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM user_addresses")).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(
				int64(42), "ул. Мира", "5", "", "1", "3", "17", "", "", 55.75, 37.61, "cls-1", "Москва",
			))

		addr, err := repo.Address(ctx, 42)
		assert.NoError(t, err)
		assert.NotNil(t, addr)
		assert.Equal(t, "ул. Мира", addr.Address)
		assert.Equal(t, "Москва", addr.CityName)
	})

	t.Run("address does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM user_addresses")).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		addr, err := repo.Address(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, addr)
	})
}

func TestRepository_MarkError(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("without attempt bump", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("SET status = $1, number = NULL, expected_delivery_at = NULL, error_code = $2")).
			WithArgs(int(domain.StatusError), int(domain.ErrCodeCartIsEmpty), int64(9)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkError(ctx, 9, domain.ErrCodeCartIsEmpty, false))
	})

	t.Run("with attempt bump", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("send_iiko_amount = send_iiko_amount + 1")).
			WithArgs(int(domain.StatusError), int(domain.ErrCodeCritical), int64(5)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.MarkError(ctx, 5, domain.ErrCodeCritical, true))
	})
}

func TestRepository_MarkSubmitted(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, send_iiko_amount = send_iiko_amount + 1")).
		WithArgs(int(domain.StatusUnconfirmed), int64(17)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkSubmitted(context.Background(), 17, domain.StatusUnconfirmed))
}

func TestRepository_UpdateFromVendor(t *testing.T) {
	repo, mock := NewMock(t)
	number := "42-a"
	code := domain.ErrCodeTimeout
	codeInt := int(code)

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, number = $2, expected_delivery_at = $3, error_code = $4")).
		WithArgs(int(domain.StatusError), &number, (*string)(nil), &codeInt, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateFromVendor(context.Background(), 7, domain.StatusError, &number, nil, &code))
}

func TestRepository_MarkDelivered(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, error_code = NULL")).
		WithArgs(int(domain.StatusDelivered), int64(8)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkDelivered(context.Background(), 8))
}
