package reconcile

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/internal/events"
)

//go:generate mockgen -source=reconcile.go -destination=reconcile_mock.go -package=reconcile

// Submissions younger than the min age are still settling on the vendor side,
// ones older than the max age are given up on.
const (
	reconcileMinAge = 90 * time.Second
	reconcileMaxAge = 24 * time.Hour
)

type SyncJoinRepo interface {
	FindForReconcile(ctx context.Context, from, to time.Time) ([]domain.ReconcileItem, error)
}

type OrderRepo interface {
	UpdateFromVendor(ctx context.Context, orderID int64, status domain.OrderStatus, number, expectedAt *string, errCode *domain.ErrorCode) error
	MarkDelivered(ctx context.Context, orderID int64) error
}

type TransferLogRepo interface {
	Create(ctx context.Context, orderID int64, message string, response []byte) error
}

type Gateway interface {
	Authenticate(ctx context.Context) (string, error)
	OrdersByIDs(ctx context.Context, token, orgID string, orderIDs []string) (*dto.OrdersByIDsResponse, error)
}

type Notifier interface {
	WaitOrder(ctx context.Context, helperID string)
}

type Publisher interface {
	Publish(ctx context.Context, event events.DeliveryStatusChanged) error
}

// Service pulls current vendor delivery statuses for recent submissions and
// folds them back into local order state. Unlike dispatch, a failure here
// aborts the whole run: the same rows are retried on the next tick.
type Service struct {
	cfg          *config.Config
	gw           Gateway
	syncJoins    SyncJoinRepo
	orders       OrderRepo
	transferLogs TransferLogRepo
	notifier     Notifier
	publisher    Publisher
}

func New(
	cfg *config.Config,
	gw Gateway,
	syncJoins SyncJoinRepo,
	orders OrderRepo,
	transferLogs TransferLogRepo,
	notifier Notifier,
	publisher Publisher,
) *Service {
	return &Service{
		cfg:          cfg,
		gw:           gw,
		syncJoins:    syncJoins,
		orders:       orders,
		transferLogs: transferLogs,
		notifier:     notifier,
		publisher:    publisher,
	}
}

// Reconcile runs one status pass over the reconciliation window. Returns the
// number of sync-join rows processed.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	token, err := s.gw.Authenticate(ctx)
	if err != nil {
		zap.L().Error("can't authenticate against iiko", zap.Error(err))
		return 0, fmt.Errorf("can't authenticate: %w", err)
	}

	now := time.Now()
	items, err := s.syncJoins.FindForReconcile(ctx, now.Add(-reconcileMaxAge), now.Add(-reconcileMinAge))
	if err != nil {
		return 0, fmt.Errorf("can't select orders for reconciliation: %w", err)
	}

	for i, item := range items {
		if err := s.processItem(ctx, token, item); err != nil {
			zap.L().Error("reconciliation aborted",
				zap.Int64("order_id", item.OrderID), zap.Error(err))
			return i, err
		}
	}
	return len(items), nil
}

func (s *Service) processItem(ctx context.Context, token string, item domain.ReconcileItem) error {
	resp, err := s.gw.OrdersByIDs(ctx, token, item.CompanySourceID, []string{item.IikoOrderID})
	if err != nil {
		return fmt.Errorf("can't fetch vendor order %s: %w", item.IikoOrderID, err)
	}
	if len(resp.Orders) == 0 {
		zap.L().Warn("vendor returned no order", zap.Int64("order_id", item.OrderID),
			zap.String("iiko_order_id", item.IikoOrderID))
		return nil
	}

	info := resp.Orders[0]
	if info.Order != nil && info.Order.Status != "" {
		return s.applyStatus(ctx, item, info)
	}
	return s.applyError(ctx, item, info)
}

func (s *Service) applyStatus(ctx context.Context, item domain.ReconcileItem, info dto.VendorOrderInfo) error {
	status, ok := domain.StatusFromIiko(info.Order.Status)
	if !ok {
		return fmt.Errorf("unknown vendor status %q for order %d", info.Order.Status, item.OrderID)
	}

	if status.IsDeliveredRange() {
		if err := s.orders.MarkDelivered(ctx, item.OrderID); err != nil {
			return fmt.Errorf("can't mark order delivered: %w", err)
		}
	}

	if err := s.orders.UpdateFromVendor(ctx, item.OrderID, status, info.Order.Number, info.Order.CompleteBefore, nil); err != nil {
		return fmt.Errorf("can't update order from vendor: %w", err)
	}

	if status != domain.StatusClosed && item.OrderStatus < status {
		event := events.DeliveryStatusChanged{
			OrderID:  item.OrderID,
			Number:   info.Order.Number,
			Status:   status,
			UserID:   item.UserID,
			IsMobile: item.IsMobile,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("can't publish status event",
				zap.Int64("order_id", item.OrderID), zap.Error(err))
		}
	}
	return nil
}

// applyError handles a vendor response that carries no delivery status: the
// submission died on the vendor side and the order moves to the error state.
func (s *Service) applyError(ctx context.Context, item domain.ReconcileItem, info dto.VendorOrderInfo) error {
	message := info.ErrorDescription
	if info.ErrorInfo != nil && info.ErrorInfo.Message != "" {
		message = info.ErrorInfo.Message
	}

	if err := s.transferLogs.Create(ctx, item.OrderID, message, nil); err != nil {
		return fmt.Errorf("can't write transfer log: %w", err)
	}

	code := domain.ClassifyError(message, domain.ErrCodeUnknown)
	if err := s.orders.UpdateFromVendor(ctx, item.OrderID, domain.StatusError, nil, nil, &code); err != nil {
		return fmt.Errorf("can't update order from vendor: %w", err)
	}

	// a timed out submission with attempts left goes back through the helper
	if code == domain.ErrCodeTimeout && item.SendIikoAmount < s.cfg.SendAmountMax && item.HelperID != nil {
		s.notifier.WaitOrder(ctx, *item.HelperID)
	}
	return nil
}
