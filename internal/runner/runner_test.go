package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/evgzln/iiko-transfer/internal/config"
)

func TestService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: a zero interval must never touch the services
	svc := New(&config.Config{}, NewMockDispatcher(ctrl), NewMockReconciler(ctrl))
	svc.Start(context.Background())
}

func TestService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dispatcher := NewMockDispatcher(ctrl)
	reconciler := NewMockReconciler(ctrl)

	dispatcher.EXPECT().Dispatch(ctx, nil).Return(2, nil)
	reconciler.EXPECT().Reconcile(ctx).Return(0, nil)

	svc := New(&config.Config{RunnerInterval: time.Minute}, dispatcher, reconciler)
	svc.runOnce(ctx)
}

func TestService_RunOnce_DispatchFailureStillReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dispatcher := NewMockDispatcher(ctrl)
	reconciler := NewMockReconciler(ctrl)

	dispatcher.EXPECT().Dispatch(ctx, nil).Return(0, errors.New("auth failed"))
	reconciler.EXPECT().Reconcile(ctx).Return(1, nil)

	svc := New(&config.Config{RunnerInterval: time.Minute}, dispatcher, reconciler)
	svc.runOnce(ctx)
}

func TestService_Run_Ticks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	dispatcher := NewMockDispatcher(ctrl)
	reconciler := NewMockReconciler(ctrl)

	done := make(chan struct{})
	var once sync.Once
	dispatcher.EXPECT().Dispatch(gomock.Any(), nil).DoAndReturn(
		func(context.Context, *int64) (int, error) {
			once.Do(func() { close(done) })
			return 0, nil
		}).AnyTimes()
	reconciler.EXPECT().Reconcile(gomock.Any()).Return(0, nil).AnyTimes()

	svc := New(&config.Config{RunnerInterval: 10 * time.Millisecond}, dispatcher, reconciler)
	svc.Start(ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner never ticked")
	}
	cancel()
}
