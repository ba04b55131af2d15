package orders

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Dispatch(t *testing.T) {
	orderID := int64(42)

	tests := []struct {
		name        string
		body        string
		wantOrderID *int64
		processed   int
		serviceErr  error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "empty body runs the whole window",
			body:       "",
			processed:  3,
			wantStatus: http.StatusOK,
			wantBody:   `{"processed":3}`,
		},
		{
			name:        "single order",
			body:        `{"order_id":42}`,
			wantOrderID: &orderID,
			processed:   1,
			wantStatus:  http.StatusOK,
			wantBody:    `{"processed":1}`,
		},
		{
			name:       "malformed body",
			body:       `{"order_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "dispatch failure",
			body:       "",
			serviceErr: errors.New("auth failed"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dispatchService := NewMockDispatchService(ctrl)
			if tt.wantStatus != http.StatusBadRequest {
				dispatchService.EXPECT().Dispatch(gomock.Any(), tt.wantOrderID).
					Return(tt.processed, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/iiko/orders/dispatch", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			New(dispatchService, NewMockReconcileService(ctrl)).Dispatch(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestOrderHandler_Reconcile(t *testing.T) {
	tests := []struct {
		name       string
		processed  int
		serviceErr error
		wantStatus int
	}{
		{
			name:       "successful run",
			processed:  5,
			wantStatus: http.StatusOK,
		},
		{
			name:       "reconcile failure",
			serviceErr: errors.New("auth failed"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reconcileService := NewMockReconcileService(ctrl)
			reconcileService.EXPECT().Reconcile(gomock.Any()).Return(tt.processed, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/iiko/orders/reconcile", nil)
			rr := httptest.NewRecorder()
			New(NewMockDispatchService(ctrl), reconcileService).Reconcile(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
