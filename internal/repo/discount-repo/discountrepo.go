package discountrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
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

// FindSourceID returns the vendor id of the first matching discount, or nil
// when nothing matches. Matching is case-sensitive, the source names are
// curated upstream.
func (r *Repository) FindSourceID(ctx context.Context, f domain.DiscountFilter) (*string, error) {
	query := `
        SELECT source_id
        FROM discounts
        WHERE version >= $1`
	args := []any{f.MinVersion}

	for _, s := range f.Include {
		args = append(args, "%"+s+"%")
		query += fmt.Sprintf(" AND name LIKE $%d", len(args))
	}
	for _, s := range f.Exclude {
		args = append(args, "%"+s+"%")
		query += fmt.Sprintf(" AND name NOT LIKE $%d", len(args))
	}
	query += `
        ORDER BY id
        LIMIT 1
    `

	var sourceID string
	err := r.db.QueryRow(ctx, query, args...).Scan(&sourceID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find discount", zap.Error(err))
		return nil, err
	}
	return &sourceID, nil
}
