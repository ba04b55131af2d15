package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/evgzln/iiko-transfer/docs"
	ordershandlers "github.com/evgzln/iiko-transfer/internal/handlers/orders"
	synchandlers "github.com/evgzln/iiko-transfer/internal/handlers/sync"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := New(
		synchandlers.NewMockService(ctrl),
		ordershandlers.NewMockDispatchService(ctrl),
		ordershandlers.NewMockReconcileService(ctrl),
	)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncHandler := NewMockSyncHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)

	mockSyncHandler.EXPECT().Run(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Dispatch(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().Reconcile(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		SyncHandler:  mockSyncHandler,
		OrderHandler: mockOrderHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{http.MethodPost, "/api/iiko/sync/organization", http.StatusOK},
		{http.MethodPost, "/api/iiko/orders/dispatch", http.StatusOK},
		{http.MethodPost, "/api/iiko/orders/reconcile", http.StatusOK},
		{http.MethodGet, "/api/iiko/orders/dispatch", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/iiko/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
