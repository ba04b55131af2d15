package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
)

type dispatchMocks struct {
	gw           *MockGateway
	orders       *MockOrderRepo
	companies    *MockCompanyRepo
	discounts    *MockDiscountRepo
	syncJoins    *MockSyncJoinRepo
	transferLogs *MockTransferLogRepo
	syncLogs     *MockSyncLogRepo
	notifier     *MockNotifier
}

func newDispatchService(t *testing.T) (*Service, *dispatchMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{AppTarget: config.TargetProd, SendAmountMax: 1}
	ids, err := cfg.IDs()
	require.NoError(t, err)

	m := &dispatchMocks{
		gw:           NewMockGateway(ctrl),
		orders:       NewMockOrderRepo(ctrl),
		companies:    NewMockCompanyRepo(ctrl),
		discounts:    NewMockDiscountRepo(ctrl),
		syncJoins:    NewMockSyncJoinRepo(ctrl),
		transferLogs: NewMockTransferLogRepo(ctrl),
		syncLogs:     NewMockSyncLogRepo(ctrl),
		notifier:     NewMockNotifier(ctrl),
	}
	svc := New(cfg, ids, m.gw, m.orders, m.companies, m.discounts,
		m.syncJoins, m.transferLogs, m.syncLogs, m.notifier)
	return svc, m
}

func TestService_Dispatch_AuthFailure(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	m.gw.EXPECT().Authenticate(ctx).Return("", errors.New("401"))

	n, err := svc.Dispatch(ctx, nil)
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestService_Dispatch_EmptyBatch(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, nil, gomock.Any(), 1).Return(nil, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(0), nil)

	n, err := svc.Dispatch(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_Dispatch_Success(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	helperID := "h-17"
	order := domain.Order{
		ID:           17,
		CompanyID:    10,
		DeliveryType: domain.DeliveryTypePickup,
		PayType:      domain.PayTypeVisa,
		FinalSum:     500,
		UserPhone:    "79990000000",
		HelperID:     &helperID,
	}
	items := []domain.OrderItem{{ProductSourceID: "p-1", Quantity: 1}}
	company := &domain.Company{ID: 10, SourceID: "org-1", TerminalSourceID: "term-1"}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, nil, gomock.Any(), 1).Return([]domain.Order{order}, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(5), nil)

	m.orders.EXPECT().Items(ctx, int64(17)).Return(items, nil)
	m.companies.EXPECT().GetByID(ctx, int64(10)).Return(company, nil)
	m.discounts.EXPECT().FindSourceID(ctx, gomock.Any()).Return(nil, nil)
	m.gw.EXPECT().CreateDelivery(ctx, "tok", gomock.Any()).Return(&dto.CreateDeliveryResponse{
		CorrelationID: "corr-1",
		OrderInfo:     dto.OrderInfo{ID: "iiko-1", CreationStatus: "InProgress"},
	}, nil)
	m.orders.EXPECT().MarkSubmitted(ctx, int64(17), domain.StatusUnconfirmed).Return(nil)
	m.syncJoins.EXPECT().Create(ctx, &domain.OrdersIikoSync{
		OrderID:       17,
		Status:        "InProgress",
		CorrelationID: "corr-1",
		IikoOrderID:   "iiko-1",
	}).Return(nil)
	m.notifier.EXPECT().OrderUpdate(ctx, dto.HelperOrderUpdate{
		ID:                 "h-17",
		IikoStatus:         "InProgress",
		DeliveryOrderID:    "iiko-1",
		OrganizationIikoID: "org-1",
	})

	n, err := svc.Dispatch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_Dispatch_SingleOrder(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()
	orderID := int64(23)

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, &orderID, gomock.Any(), 1).Return(nil, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(0), nil)

	_, err := svc.Dispatch(ctx, &orderID)
	require.NoError(t, err)
}

func TestService_Dispatch_EmptyCart(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	helperID := "h-9"
	order := domain.Order{ID: 9, CompanyID: 10, HelperID: &helperID}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, nil, gomock.Any(), 1).Return([]domain.Order{order}, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(0), nil)

	m.orders.EXPECT().Items(ctx, int64(9)).Return(nil, nil)
	m.orders.EXPECT().MarkError(ctx, int64(9), domain.ErrCodeCartIsEmpty, false).Return(nil)
	m.syncJoins.EXPECT().Create(ctx, &domain.OrdersIikoSync{
		OrderID:       9,
		Status:        "Error",
		CorrelationID: uuid.Nil.String(),
		IikoOrderID:   uuid.Nil.String(),
	}).Return(nil)
	m.notifier.EXPECT().OrderUpdate(ctx, dto.HelperOrderUpdate{
		ID:         "h-9",
		IsError:    true,
		IikoStatus: "CRITICAL_CART_IS_EMPTY",
		InvoiceID:  "YB00000009",
	})

	n, err := svc.Dispatch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_Dispatch_VendorError(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	helperID := "h-5"
	order := domain.Order{
		ID:           5,
		CompanyID:    10,
		DeliveryType: domain.DeliveryTypePickup,
		PayType:      domain.PayTypeCash,
		FinalSum:     300,
		HelperID:     &helperID,
	}
	items := []domain.OrderItem{{ProductSourceID: "p-1", Quantity: 1}}
	company := &domain.Company{ID: 10, SourceID: "org-1", TerminalSourceID: "term-1"}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, nil, gomock.Any(), 1).Return([]domain.Order{order}, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(0), nil)

	m.orders.EXPECT().Items(ctx, int64(5)).Return(items, nil)
	m.companies.EXPECT().GetByID(ctx, int64(10)).Return(company, nil)
	m.discounts.EXPECT().FindSourceID(ctx, gomock.Any()).Return(nil, nil)
	m.gw.EXPECT().CreateDelivery(ctx, "tok", gomock.Any()).
		Return(nil, errors.New("product not found in menu"))

	m.transferLogs.EXPECT().Create(ctx, int64(5), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, message string, _ []byte) error {
			assert.Equal(t, "CRITICAL! product not found in menu", message)
			return nil
		})
	m.orders.EXPECT().MarkError(ctx, int64(5), domain.ErrCodeNotFound, true).Return(nil)
	m.notifier.EXPECT().OrderUpdate(ctx, dto.HelperOrderUpdate{
		ID:         "h-5",
		IsError:    true,
		IikoStatus: "product not found in menu",
		InvoiceID:  "YB00000005",
	})

	n, err := svc.Dispatch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_Dispatch_FailurePathIsBestEffort(t *testing.T) {
	svc, m := newDispatchService(t)
	ctx := context.Background()

	order := domain.Order{ID: 3, CompanyID: 99, DeliveryType: domain.DeliveryTypePickup}
	items := []domain.OrderItem{{ProductSourceID: "p-1", Quantity: 1}}

	m.gw.EXPECT().Authenticate(ctx).Return("tok", nil)
	m.orders.EXPECT().FindForDispatch(ctx, nil, gomock.Any(), 1).Return([]domain.Order{order}, nil)
	m.syncLogs.EXPECT().LastSuccessID(ctx, "is_discount").Return(int64(0), nil)

	m.orders.EXPECT().Items(ctx, int64(3)).Return(items, nil)
	m.companies.EXPECT().GetByID(ctx, int64(99)).Return(nil, nil)

	// writes on the failure path fail too, the batch still completes
	m.transferLogs.EXPECT().Create(ctx, int64(3), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	m.orders.EXPECT().MarkError(ctx, int64(3), domain.ErrCodeNotFound, true).Return(errors.New("db down"))

	n, err := svc.Dispatch(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
