package synclogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
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

	t.Run("creates pending row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO iiko_sync_log (type, status)")).
			WithArgs("is_nomenclature", domain.SyncStatusPending).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(33)))

		id, err := repo.Create(ctx, "is_nomenclature")
		assert.NoError(t, err)
		assert.Equal(t, int64(33), id)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO iiko_sync_log (type, status)")).
			WithArgs("is_city", domain.SyncStatusPending).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(ctx, "is_city")
		assert.Error(t, err)
	})
}

func TestRepository_MarkSuccess(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE iiko_sync_log")).
		WithArgs(domain.SyncStatusSuccess, int64(33)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkSuccess(context.Background(), 33))
}

func TestRepository_LastSuccessID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("returns latest id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE type = $1 AND status = $2")).
			WithArgs("is_discount", domain.SyncStatusSuccess).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, err := repo.LastSuccessID(ctx, "is_discount")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("no successful runs", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE type = $1 AND status = $2")).
			WithArgs("is_region", domain.SyncStatusSuccess).
			WillReturnError(pgx.ErrNoRows)

		id, err := repo.LastSuccessID(ctx, "is_region")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})
}
