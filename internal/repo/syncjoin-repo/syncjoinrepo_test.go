package syncjoinrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgzln/iiko-transfer/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	row := &domain.OrdersIikoSync{
		OrderID:       9,
		Status:        "InProgress",
		CorrelationID: "corr-1",
		IikoOrderID:   "iiko-1",
	}

	t.Run("saves row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders_iiko_sync")).
			WithArgs(int64(9), "InProgress", "corr-1", "iiko-1").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, repo.Create(ctx, row))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders_iiko_sync")).
			WithArgs(int64(9), "InProgress", "corr-1", "iiko-1").
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Create(ctx, row))
	})
}

func TestRepository_FindForReconcile(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	from := time.Now().Add(-24 * time.Hour)
	to := time.Now().Add(-90 * time.Second)

	t.Run("returns open orders in the window", func(t *testing.T) {
		helperID := "h-1"
		rows := pgxmock.NewRows([]string{
			"order_id", "iiko_order_id", "status", "send_iiko_amount",
			"helper_id", "user_id", "is_mobile", "source_id",
		}).AddRow(int64(9), "iiko-1", domain.StatusUnconfirmed, 1, &helperID, int64(10), true, "org-1")

		mock.ExpectQuery(regexp.QuoteMeta("AND o.status NOT IN ($3, $4, $5)")).
			WithArgs(from, to, int(domain.StatusCancelled), int(domain.StatusError), int(domain.StatusClosed)).
			WillReturnRows(rows)

		items, err := repo.FindForReconcile(ctx, from, to)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "iiko-1", items[0].IikoOrderID)
		assert.Equal(t, domain.StatusUnconfirmed, items[0].OrderStatus)
		assert.Equal(t, "org-1", items[0].CompanySourceID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM orders_iiko_sync s")).
			WithArgs(from, to, int(domain.StatusCancelled), int(domain.StatusError), int(domain.StatusClosed)).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindForReconcile(ctx, from, to)
		assert.Error(t, err)
	})
}
