package refsync

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
)

//go:generate mockgen -source=refsync.go -destination=refsync_mock.go -package=refsync

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	Organizations(ctx context.Context, token string) (*dto.OrganizationsResponse, error)
	TerminalGroups(ctx context.Context, token string, orgIDs []string) (*dto.TerminalGroupsResponse, error)
	Cities(ctx context.Context, token string, orgIDs []string) (*dto.CitiesResponse, error)
	Streets(ctx context.Context, token, orgID, cityID string) (*dto.StreetsResponse, error)
	Nomenclature(ctx context.Context, token, orgID string) (*dto.NomenclatureResponse, error)
	StopLists(ctx context.Context, token string, orgIDs []string) (*dto.StopListsResponse, error)
	PaymentTypes(ctx context.Context, token string, orgIDs []string) (*dto.PaymentTypesResponse, error)
	Regions(ctx context.Context, token string, orgIDs []string) (*dto.RegionsResponse, error)
	Discounts(ctx context.Context, token string, orgIDs []string) (*dto.DiscountsResponse, error)
}

type RefRepo interface {
	UpsertOrganizations(ctx context.Context, orgs []dto.Organization, version int64) error
	UpsertTerminals(ctx context.Context, orgID string, terminals []dto.TerminalGroup, version int64) error
	UpsertCities(ctx context.Context, cities []dto.City, version int64) error
	UpsertStreets(ctx context.Context, companySourceID, citySourceID string, streets []dto.Street, version int64) error
	UpsertProducts(ctx context.Context, products []dto.Product, version int64) error
	UpsertPaymentTypes(ctx context.Context, types []dto.PaymentType, version int64) error
	UpsertRegions(ctx context.Context, orgID string, regions []dto.Region, version int64) error
	UpsertDiscounts(ctx context.Context, discounts []dto.Discount, version int64) error
}

type CompanyRepo interface {
	ListSourceIDs(ctx context.Context) ([]string, error)
	ListAtLatestVersion(ctx context.Context) ([]domain.Company, error)
}

type StopListRepo interface {
	ReplaceTerminal(ctx context.Context, orgID, terminalID string, items []dto.StopListItem) error
	PurgePositive(ctx context.Context) error
}

type SyncLogRepo interface {
	Create(ctx context.Context, syncType string) (int64, error)
	MarkSuccess(ctx context.Context, id int64) error
}

var ErrUnknownCategory = errors.New("unknown sync category")

type category struct {
	logType string // empty means the category keeps no version log
	run     func(ctx context.Context, token string, version int64) error
}

// Service pulls reference data from the vendor into local snapshot tables,
// one category per run. Logged categories write an iiko_sync_log row first
// and mark it successful only after the whole category applied, so a failed
// run never advances the version pointer.
type Service struct {
	gw         Gateway
	refs       RefRepo
	companies  CompanyRepo
	stopLists  StopListRepo
	syncLogs   SyncLogRepo
	categories map[string]category
}

func New(gw Gateway, refs RefRepo, companies CompanyRepo, stopLists StopListRepo, syncLogs SyncLogRepo) *Service {
	s := &Service{
		gw:        gw,
		refs:      refs,
		companies: companies,
		stopLists: stopLists,
		syncLogs:  syncLogs,
	}
	s.categories = map[string]category{
		"organization":   {logType: "is_organization", run: s.syncOrganizations},
		"terminal_group": {logType: "is_terminal_group", run: s.syncTerminalGroups},
		"city":           {logType: "is_city", run: s.syncCities},
		"street":         {logType: "is_street", run: s.syncStreets},
		"nomenclature":   {logType: "is_nomenclature", run: s.syncNomenclature},
		"payment_type":   {logType: "is_payment_type", run: s.syncPaymentTypes},
		"region":         {logType: "is_region", run: s.syncRegions},
		"discount":       {logType: "is_discount", run: s.syncDiscounts},
		"stop_list":      {run: s.syncStopLists},
	}
	return s
}

// Categories lists the supported category names, sorted.
func (s *Service) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sync runs one full pull of the named category.
func (s *Service) Sync(ctx context.Context, name string) error {
	cat, ok := s.categories[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}

	token, err := s.gw.Authenticate(ctx)
	if err != nil {
		zap.L().Error("can't authenticate against iiko", zap.Error(err))
		return fmt.Errorf("can't authenticate: %w", err)
	}

	var version int64
	if cat.logType != "" {
		version, err = s.syncLogs.Create(ctx, cat.logType)
		if err != nil {
			return fmt.Errorf("can't open sync log: %w", err)
		}
	}

	if err := cat.run(ctx, token, version); err != nil {
		zap.L().Error("reference sync failed", zap.String("category", name), zap.Error(err))
		return err
	}

	if cat.logType != "" {
		if err := s.syncLogs.MarkSuccess(ctx, version); err != nil {
			return fmt.Errorf("can't close sync log: %w", err)
		}
	}
	zap.L().Info("reference sync done", zap.String("category", name), zap.Int64("version", version))
	return nil
}

func (s *Service) syncOrganizations(ctx context.Context, token string, version int64) error {
	resp, err := s.gw.Organizations(ctx, token)
	if err != nil {
		return fmt.Errorf("can't fetch organizations: %w", err)
	}
	return s.refs.UpsertOrganizations(ctx, resp.Organizations, version)
}

func (s *Service) syncTerminalGroups(ctx context.Context, token string, version int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.TerminalGroups(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch terminal groups: %w", err)
	}
	for _, group := range resp.TerminalGroups {
		if err := s.refs.UpsertTerminals(ctx, group.OrganizationID, group.Items, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) syncCities(ctx context.Context, token string, version int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.Cities(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch cities: %w", err)
	}
	for _, group := range resp.Cities {
		if err := s.refs.UpsertCities(ctx, group.Items, version); err != nil {
			return err
		}
	}
	return nil
}

// syncStreets walks the current company set: streets exist per organization
// and per its city, so each company with a bound city gets its own pull.
func (s *Service) syncStreets(ctx context.Context, token string, version int64) error {
	companies, err := s.companies.ListAtLatestVersion(ctx)
	if err != nil {
		return err
	}
	for _, company := range companies {
		if company.CitySourceID == "" {
			continue
		}
		resp, err := s.gw.Streets(ctx, token, company.SourceID, company.CitySourceID)
		if err != nil {
			return fmt.Errorf("can't fetch streets for %s: %w", company.SourceID, err)
		}
		if err := s.refs.UpsertStreets(ctx, company.SourceID, company.CitySourceID, resp.Streets, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) syncNomenclature(ctx context.Context, token string, version int64) error {
	companies, err := s.companies.ListAtLatestVersion(ctx)
	if err != nil {
		return err
	}
	for _, company := range companies {
		resp, err := s.gw.Nomenclature(ctx, token, company.SourceID)
		if err != nil {
			return fmt.Errorf("can't fetch nomenclature for %s: %w", company.SourceID, err)
		}
		if err := s.refs.UpsertProducts(ctx, resp.Products, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) syncPaymentTypes(ctx context.Context, token string, version int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.PaymentTypes(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch payment types: %w", err)
	}
	return s.refs.UpsertPaymentTypes(ctx, resp.PaymentTypes, version)
}

func (s *Service) syncRegions(ctx context.Context, token string, version int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.Regions(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch regions: %w", err)
	}
	for _, group := range resp.Regions {
		if err := s.refs.UpsertRegions(ctx, group.OrganizationID, group.Items, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) syncDiscounts(ctx context.Context, token string, version int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.Discounts(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch discounts: %w", err)
	}
	for _, group := range resp.Discounts {
		if err := s.refs.UpsertDiscounts(ctx, group.Items, version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) syncStopLists(ctx context.Context, token string, _ int64) error {
	orgIDs, err := s.companies.ListSourceIDs(ctx)
	if err != nil {
		return err
	}
	resp, err := s.gw.StopLists(ctx, token, orgIDs)
	if err != nil {
		return fmt.Errorf("can't fetch stop lists: %w", err)
	}
	for _, org := range resp.TerminalGroupStopLists {
		for _, terminal := range org.Items {
			if err := s.stopLists.ReplaceTerminal(ctx, org.OrganizationID, terminal.TerminalGroupID, terminal.Items); err != nil {
				return err
			}
		}
	}
	return s.stopLists.PurgePositive(ctx)
}
