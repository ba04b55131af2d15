package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/internal/helper"
)

//go:generate mockgen -source=dispatch.go -destination=dispatch_mock.go -package=dispatch

const discountSyncType = "is_discount"

type OrderRepo interface {
	FindForDispatch(ctx context.Context, orderID *int64, since time.Time, maxAttempts int) ([]domain.Order, error)
	Items(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	Address(ctx context.Context, addressID int64) (*domain.UserAddress, error)
	MarkError(ctx context.Context, orderID int64, code domain.ErrorCode, bumpAttempt bool) error
	MarkSubmitted(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

type CompanyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	CurrentRegion(ctx context.Context, companyID int64) (*domain.Region, error)
}

type DiscountRepo interface {
	FindSourceID(ctx context.Context, f domain.DiscountFilter) (*string, error)
}

type SyncJoinRepo interface {
	Create(ctx context.Context, row *domain.OrdersIikoSync) error
}

type TransferLogRepo interface {
	Create(ctx context.Context, orderID int64, message string, response []byte) error
}

type SyncLogRepo interface {
	LastSuccessID(ctx context.Context, syncType string) (int64, error)
}

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	CreateDelivery(ctx context.Context, token string, req dto.CreateDeliveryRequest) (*dto.CreateDeliveryResponse, error)
}

type Notifier interface {
	OrderUpdate(ctx context.Context, update dto.HelperOrderUpdate)
}

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrAddressNotFound = errors.New("user address not found")
)

// Service pushes eligible local orders to the vendor as deliveries. Orders
// are processed independently: one failed order never aborts the batch.
type Service struct {
	cfg          *config.Config
	ids          config.TargetIDs
	gw           Gateway
	orders       OrderRepo
	companies    CompanyRepo
	discounts    DiscountRepo
	syncJoins    SyncJoinRepo
	transferLogs TransferLogRepo
	syncLogs     SyncLogRepo
	notifier     Notifier
}

func New(
	cfg *config.Config,
	ids config.TargetIDs,
	gw Gateway,
	orders OrderRepo,
	companies CompanyRepo,
	discounts DiscountRepo,
	syncJoins SyncJoinRepo,
	transferLogs TransferLogRepo,
	syncLogs SyncLogRepo,
	notifier Notifier,
) *Service {
	return &Service{
		cfg:          cfg,
		ids:          ids,
		gw:           gw,
		orders:       orders,
		companies:    companies,
		discounts:    discounts,
		syncJoins:    syncJoins,
		transferLogs: transferLogs,
		syncLogs:     syncLogs,
		notifier:     notifier,
	}
}

// Dispatch runs one submission batch. With orderID set only that order is
// considered; otherwise every eligible order in the trailing window that has
// no sync-join row yet. Returns the number of orders processed.
func (s *Service) Dispatch(ctx context.Context, orderID *int64) (int, error) {
	token, err := s.gw.Authenticate(ctx)
	if err != nil {
		zap.L().Error("can't authenticate against iiko", zap.Error(err))
		return 0, fmt.Errorf("can't authenticate: %w", err)
	}

	since := time.Now().Add(-s.cfg.DispatchWindow)
	orders, err := s.orders.FindForDispatch(ctx, orderID, since, s.cfg.SendAmountMax)
	if err != nil {
		return 0, fmt.Errorf("can't select orders for dispatch: %w", err)
	}

	discountVersion, err := s.syncLogs.LastSuccessID(ctx, discountSyncType)
	if err != nil {
		return 0, fmt.Errorf("can't resolve discount sync version: %w", err)
	}

	for _, order := range orders {
		zap.L().Info("creating delivery", zap.Int64("order_id", order.ID))
		if err := s.processOrder(ctx, token, order, discountVersion); err != nil {
			s.failOrder(ctx, order, err)
		}
	}
	return len(orders), nil
}

func (s *Service) processOrder(ctx context.Context, token string, order domain.Order, discountVersion int64) error {
	items, err := s.orders.Items(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("can't load order items: %w", err)
	}

	if len(items) == 0 {
		return s.rejectEmptyCart(ctx, order)
	}

	req, err := s.buildDelivery(ctx, order, items, discountVersion)
	if err != nil {
		return err
	}

	resp, err := s.gw.CreateDelivery(ctx, token, req)
	if err != nil {
		return err
	}

	if err := s.orders.MarkSubmitted(ctx, order.ID, domain.StatusFromCreation(resp.OrderInfo.CreationStatus)); err != nil {
		return fmt.Errorf("can't record submission: %w", err)
	}
	if err := s.syncJoins.Create(ctx, &domain.OrdersIikoSync{
		OrderID:       order.ID,
		Status:        resp.OrderInfo.CreationStatus,
		CorrelationID: resp.CorrelationID,
		IikoOrderID:   resp.OrderInfo.ID,
	}); err != nil {
		return fmt.Errorf("can't record sync join: %w", err)
	}

	zap.L().Info("delivery created",
		zap.Int64("order_id", order.ID),
		zap.String("correlation_id", resp.CorrelationID),
		zap.String("delivery_id", resp.OrderInfo.ID),
		zap.String("creation_status", resp.OrderInfo.CreationStatus),
	)

	if order.HelperID != nil {
		s.notifier.OrderUpdate(ctx, dto.HelperOrderUpdate{
			ID:                 *order.HelperID,
			IsError:            false,
			IikoStatus:         resp.OrderInfo.CreationStatus,
			DeliveryOrderID:    resp.OrderInfo.ID,
			OrganizationIikoID: req.OrganizationID,
		})
	}
	return nil
}

func (s *Service) rejectEmptyCart(ctx context.Context, order domain.Order) error {
	if err := s.orders.MarkError(ctx, order.ID, domain.ErrCodeCartIsEmpty, false); err != nil {
		return fmt.Errorf("can't mark empty cart order: %w", err)
	}
	if err := s.syncJoins.Create(ctx, &domain.OrdersIikoSync{
		OrderID:       order.ID,
		Status:        "Error",
		CorrelationID: uuid.Nil.String(),
		IikoOrderID:   uuid.Nil.String(),
	}); err != nil {
		return fmt.Errorf("can't record sync join: %w", err)
	}

	if order.HelperID != nil {
		s.notifier.OrderUpdate(ctx, dto.HelperOrderUpdate{
			ID:         *order.HelperID,
			IsError:    true,
			IikoStatus: domain.ErrCodeCartIsEmpty.String(),
			InvoiceID:  helper.InvoiceID(order.ID),
		})
	}
	return nil
}

// failOrder is the per-order error path: the order lands in the error state
// with a classified code, the audit log gets a row, the helper is pinged.
// Failures inside the path itself are logged and dropped so the batch moves on.
func (s *Service) failOrder(ctx context.Context, order domain.Order, cause error) {
	message := fmt.Sprintf("CRITICAL! %s", cause.Error())
	zap.L().Error("delivery creation failed", zap.Int64("order_id", order.ID), zap.Error(cause))

	if err := s.transferLogs.Create(ctx, order.ID, message, nil); err != nil {
		zap.L().Error("can't write transfer log", zap.Error(err))
	}

	code := domain.ClassifyError(cause.Error(), domain.ErrCodeCritical)
	if err := s.orders.MarkError(ctx, order.ID, code, true); err != nil {
		zap.L().Error("can't mark order error", zap.Error(err))
	}

	if order.HelperID != nil {
		s.notifier.OrderUpdate(ctx, dto.HelperOrderUpdate{
			ID:         *order.HelperID,
			IsError:    true,
			IikoStatus: cause.Error(),
			InvoiceID:  helper.InvoiceID(order.ID),
		})
	}
}
