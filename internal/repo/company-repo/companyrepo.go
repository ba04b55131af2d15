package companyrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `
        SELECT c.id, c.name, c.source_id, COALESCE(t.source_id, ''), COALESCE(c.city_source_id, ''),
               c.utc_offset, c.version
        FROM companies c
        LEFT JOIN iiko_terminals t ON t.company_source_id = c.source_id
        WHERE c.id = $1
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, id)

	var company domain.Company
	err := row.Scan(
		&company.ID, &company.Name, &company.SourceID, &company.TerminalSourceID,
		&company.CitySourceID, &company.UTCOffset, &company.Version,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find company", zap.Error(err))
		return nil, err
	}
	return &company, nil
}

// ListSourceIDs returns the vendor organization ids of all companies.
func (r *Repository) ListSourceIDs(ctx context.Context) ([]string, error) {
	query := `
        SELECT source_id
        FROM companies
        ORDER BY id
    `
	return r.sourceIDs(ctx, query)
}

// ListAtLatestVersion returns companies stamped with the newest organization
// sync run.
func (r *Repository) ListAtLatestVersion(ctx context.Context) ([]domain.Company, error) {
	query := `
        SELECT c.id, c.name, c.source_id, COALESCE(t.source_id, ''), COALESCE(c.city_source_id, ''),
               c.utc_offset, c.version
        FROM companies c
        LEFT JOIN iiko_terminals t ON t.company_source_id = c.source_id
        WHERE c.version = (SELECT COALESCE(MAX(id), 0) FROM iiko_sync_log WHERE type = 'is_organization')
        ORDER BY c.id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get companies at latest version", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		err := rows.Scan(
			&company.ID, &company.Name, &company.SourceID, &company.TerminalSourceID,
			&company.CitySourceID, &company.UTCOffset, &company.Version,
		)
		if err != nil {
			zap.L().Error("can't scan company row", zap.Error(err))
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, nil
}

// CurrentRegion resolves the delivery zone of a company, when one is synced.
func (r *Repository) CurrentRegion(ctx context.Context, companyID int64) (*domain.Region, error) {
	query := `
        SELECT r.id, r.source_id, r.name
        FROM iiko_regions r
        JOIN companies c ON c.source_id = r.company_source_id
        WHERE c.id = $1
        ORDER BY r.id DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, companyID)

	var region domain.Region
	err := row.Scan(&region.ID, &region.SourceID, &region.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find company region", zap.Error(err))
		return nil, err
	}
	return &region, nil
}

func (r *Repository) sourceIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get company source ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan company source id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
