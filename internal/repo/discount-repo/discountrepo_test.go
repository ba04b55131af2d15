package discountrepo

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

func TestRepository_FindSourceID(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	t.Run("include and exclude patterns", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE version >= $1 AND name LIKE $2 AND name LIKE $3 AND name NOT LIKE $4")).
			WithArgs(int64(12), "%Ёби%", "%доставка%", "%др%").
			WillReturnRows(pgxmock.NewRows([]string{"source_id"}).AddRow("disc-1"))

		sourceID, err := repo.FindSourceID(ctx, domain.DiscountFilter{
			MinVersion: 12,
			Include:    []string{"Ёби", "доставка"},
			Exclude:    []string{"др"},
		})
		assert.NoError(t, err)
		assert.NotNil(t, sourceID)
		assert.Equal(t, "disc-1", *sourceID)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE version >= $1 AND name LIKE $2")).
			WithArgs(int64(12), "%самовывоз%").
			WillReturnError(pgx.ErrNoRows)

		sourceID, err := repo.FindSourceID(ctx, domain.DiscountFilter{
			MinVersion: 12,
			Include:    []string{"самовывоз"},
		})
		assert.NoError(t, err)
		assert.Nil(t, sourceID)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE version >= $1")).
			WithArgs(int64(12)).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindSourceID(ctx, domain.DiscountFilter{MinVersion: 12})
		assert.Error(t, err)
	})
}
