package refsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
)

type refsyncMocks struct {
	gw        *MockGateway
	refs      *MockRefRepo
	companies *MockCompanyRepo
	stopLists *MockStopListRepo
	syncLogs  *MockSyncLogRepo
}

func newRefsyncService(t *testing.T) (*Service, *refsyncMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &refsyncMocks{
		gw:        NewMockGateway(ctrl),
		refs:      NewMockRefRepo(ctrl),
		companies: NewMockCompanyRepo(ctrl),
		stopLists: NewMockStopListRepo(ctrl),
		syncLogs:  NewMockSyncLogRepo(ctrl),
	}
	svc := New(m.gw, m.refs, m.companies, m.stopLists, m.syncLogs)
	return svc, m
}

func TestService_Categories(t *testing.T) {
	svc, _ := newRefsyncService(t)
	assert.Equal(t, []string{
		"city", "discount", "nomenclature", "organization", "payment_type",
		"region", "stop_list", "street", "terminal_group",
	}, svc.Categories())
}

func TestService_Sync_UnknownCategory(t *testing.T) {
	svc, _ := newRefsyncService(t)
	err := svc.Sync(context.Background(), "menu")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestService_Sync_Organizations(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	orgs := []dto.Organization{{ID: "org-1", Name: "Химки_1"}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_organization").Return(int64(12), nil)
	m.gw.EXPECT().Organizations(ctx, "tok").
		Return(&dto.OrganizationsResponse{Organizations: orgs}, nil)
	m.refs.EXPECT().UpsertOrganizations(ctx, orgs, int64(12)).Return(nil)
	m.syncLogs.EXPECT().MarkSuccess(ctx, int64(12)).Return(nil)

	require.NoError(t, svc.Sync(ctx, "organization"))
}

func TestService_Sync_FailedRunKeepsLogPending(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_organization").Return(int64(13), nil)
	m.gw.EXPECT().Organizations(ctx, "tok").Return(nil, errors.New("503"))
	// no MarkSuccess call

	assert.Error(t, svc.Sync(ctx, "organization"))
}

func TestService_Sync_TerminalGroups(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	terminals := []dto.TerminalGroup{{ID: "term-1", OrganizationID: "org-1"}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_terminal_group").Return(int64(20), nil)
	m.companies.EXPECT().ListSourceIDs(ctx).Return([]string{"org-1"}, nil)
	m.gw.EXPECT().TerminalGroups(ctx, "tok", []string{"org-1"}).
		Return(&dto.TerminalGroupsResponse{TerminalGroups: []struct {
			OrganizationID string              `json:"organizationId"`
			Items          []dto.TerminalGroup `json:"items"`
		}{{OrganizationID: "org-1", Items: terminals}}}, nil)
	m.refs.EXPECT().UpsertTerminals(ctx, "org-1", terminals, int64(20)).Return(nil)
	m.syncLogs.EXPECT().MarkSuccess(ctx, int64(20)).Return(nil)

	require.NoError(t, svc.Sync(ctx, "terminal_group"))
}

func TestService_Sync_Streets(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	companies := []domain.Company{
		{SourceID: "org-1", CitySourceID: "city-1"},
		{SourceID: "org-2"}, // no city bound, skipped
	}
	streets := []dto.Street{{ID: "st-1", Name: "Ленина"}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_street").Return(int64(30), nil)
	m.companies.EXPECT().ListAtLatestVersion(ctx).Return(companies, nil)
	m.gw.EXPECT().Streets(ctx, "tok", "org-1", "city-1").
		Return(&dto.StreetsResponse{Streets: streets}, nil)
	m.refs.EXPECT().UpsertStreets(ctx, "org-1", "city-1", streets, int64(30)).Return(nil)
	m.syncLogs.EXPECT().MarkSuccess(ctx, int64(30)).Return(nil)

	require.NoError(t, svc.Sync(ctx, "street"))
}

func TestService_Sync_Nomenclature(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	products := []dto.Product{{ID: "p-1", Name: "Ролл"}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_nomenclature").Return(int64(40), nil)
	m.companies.EXPECT().ListAtLatestVersion(ctx).
		Return([]domain.Company{{SourceID: "org-1"}}, nil)
	m.gw.EXPECT().Nomenclature(ctx, "tok", "org-1").
		Return(&dto.NomenclatureResponse{Products: products}, nil)
	m.refs.EXPECT().UpsertProducts(ctx, products, int64(40)).Return(nil)
	m.syncLogs.EXPECT().MarkSuccess(ctx, int64(40)).Return(nil)

	require.NoError(t, svc.Sync(ctx, "nomenclature"))
}

func TestService_Sync_Discounts(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	discounts := []dto.Discount{{ID: "d-1", Name: "Ёби доставка"}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.syncLogs.EXPECT().Create(ctx, "is_discount").Return(int64(50), nil)
	m.companies.EXPECT().ListSourceIDs(ctx).Return([]string{"org-1"}, nil)
	m.gw.EXPECT().Discounts(ctx, "tok", []string{"org-1"}).
		Return(&dto.DiscountsResponse{Discounts: []struct {
			OrganizationID string         `json:"organizationId"`
			Items          []dto.Discount `json:"items"`
		}{{OrganizationID: "org-1", Items: discounts}}}, nil)
	m.refs.EXPECT().UpsertDiscounts(ctx, discounts, int64(50)).Return(nil)
	m.syncLogs.EXPECT().MarkSuccess(ctx, int64(50)).Return(nil)

	require.NoError(t, svc.Sync(ctx, "discount"))
}

func TestService_Sync_StopLists(t *testing.T) {
	svc, m := newRefsyncService(t)
	ctx := context.Background()

	items := []dto.StopListItem{{ProductID: "p-1", Balance: 0}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.companies.EXPECT().ListSourceIDs(ctx).Return([]string{"org-1"}, nil)
	m.gw.EXPECT().StopLists(ctx, "tok", []string{"org-1"}).
		Return(&dto.StopListsResponse{TerminalGroupStopLists: []struct {
			OrganizationID string                      `json:"organizationId"`
			Items          []dto.TerminalGroupStopList `json:"items"`
		}{{
			OrganizationID: "org-1",
			Items:          []dto.TerminalGroupStopList{{TerminalGroupID: "term-1", Items: items}},
		}}}, nil)
	m.stopLists.EXPECT().ReplaceTerminal(ctx, "org-1", "term-1", items).Return(nil)
	m.stopLists.EXPECT().PurgePositive(ctx).Return(nil)

	// stop lists keep no sync log: no Create, no MarkSuccess
	require.NoError(t, svc.Sync(ctx, "stop_list"))
}
