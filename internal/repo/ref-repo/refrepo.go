package refrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/internal/pg"
)

// Repository upserts vendor reference data, stamping every row with the sync
// run id so version-scoped queries can pin the latest snapshot.
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

func (r *Repository) UpsertOrganizations(ctx context.Context, orgs []dto.Organization, version int64) error {
	query := `
        INSERT INTO companies (name, source_id, version)
        VALUES ($1, $2, $3)
        ON CONFLICT (source_id)
        DO UPDATE SET name = EXCLUDED.name, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, org := range orgs {
			if _, err := r.db.Exec(ctx, query, org.Name, org.ID, version); err != nil {
				zap.L().Error("can't upsert organization", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertTerminals(ctx context.Context, orgID string, terminals []dto.TerminalGroup, version int64) error {
	query := `
        INSERT INTO iiko_terminals (source_id, company_source_id, name, version)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (source_id)
        DO UPDATE SET company_source_id = EXCLUDED.company_source_id, name = EXCLUDED.name, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, terminal := range terminals {
			if _, err := r.db.Exec(ctx, query, terminal.ID, orgID, terminal.Name, version); err != nil {
				zap.L().Error("can't upsert terminal group", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertCities(ctx context.Context, cities []dto.City, version int64) error {
	query := `
        INSERT INTO iiko_cities (source_id, name, version)
        VALUES ($1, $2, $3)
        ON CONFLICT (source_id)
        DO UPDATE SET name = EXCLUDED.name, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, city := range cities {
			if city.IsDeleted {
				continue
			}
			if _, err := r.db.Exec(ctx, query, city.ID, city.Name, version); err != nil {
				zap.L().Error("can't upsert city", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertStreets(ctx context.Context, companySourceID, citySourceID string, streets []dto.Street, version int64) error {
	query := `
        INSERT INTO iiko_streets (source_id, name, classifier_id, city_source_id, company_source_id, version)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (source_id, company_source_id)
        DO UPDATE SET name = EXCLUDED.name, classifier_id = EXCLUDED.classifier_id, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, street := range streets {
			if street.IsDeleted {
				continue
			}
			if _, err := r.db.Exec(ctx, query, street.ID, street.Name, street.ClassifierID, citySourceID, companySourceID, version); err != nil {
				zap.L().Error("can't upsert street", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertProducts(ctx context.Context, products []dto.Product, version int64) error {
	query := `
        INSERT INTO products (source_id, name, type, group_source_id, is_deleted, version)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (source_id)
        DO UPDATE SET name = EXCLUDED.name, type = EXCLUDED.type, group_source_id = EXCLUDED.group_source_id,
                      is_deleted = EXCLUDED.is_deleted, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, product := range products {
			if _, err := r.db.Exec(ctx, query, product.ID, product.Name, product.Type, product.GroupID, product.IsDeleted, version); err != nil {
				zap.L().Error("can't upsert product", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertPaymentTypes(ctx context.Context, types []dto.PaymentType, version int64) error {
	query := `
        INSERT INTO payment_types (source_id, code, name, combinable, is_deleted, payment_processing_type, payment_type_kind, version)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (source_id)
        DO UPDATE SET code = EXCLUDED.code, name = EXCLUDED.name, combinable = EXCLUDED.combinable,
                      is_deleted = EXCLUDED.is_deleted, payment_processing_type = EXCLUDED.payment_processing_type,
                      payment_type_kind = EXCLUDED.payment_type_kind, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, pt := range types {
			if _, err := r.db.Exec(ctx, query, pt.ID, pt.Code, pt.Name, pt.Combinable, pt.IsDeleted, pt.PaymentProcessingType, pt.PaymentTypeKind, version); err != nil {
				zap.L().Error("can't upsert payment type", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertRegions(ctx context.Context, orgID string, regions []dto.Region, version int64) error {
	query := `
        INSERT INTO iiko_regions (source_id, name, company_source_id, version)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (source_id)
        DO UPDATE SET name = EXCLUDED.name, company_source_id = EXCLUDED.company_source_id, version = EXCLUDED.version
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, region := range regions {
			if region.IsDeleted {
				continue
			}
			if _, err := r.db.Exec(ctx, query, region.ID, region.Name, orgID, version); err != nil {
				zap.L().Error("can't upsert region", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpsertDiscounts(ctx context.Context, discounts []dto.Discount, version int64) error {
	query := `
        INSERT INTO discounts (source_id, name, version)
        VALUES ($1, $2, $3)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, discount := range discounts {
			if _, err := r.db.Exec(ctx, query, discount.ID, discount.Name, version); err != nil {
				zap.L().Error("can't insert discount", zap.Error(err))
				return err
			}
		}
		return nil
	})
}
