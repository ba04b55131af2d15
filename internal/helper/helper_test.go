package helper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/pkg/clients"
)

func NewMock(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{HelperSubdomain: "spb"}
	return New(cfg, httpClient), httpClient
}

func TestOrderUpdate(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPatch, req.Method)
			assert.Equal(t, "https://spb.ybdyb.ru/Api/Orders/Update", req.URL.String())
			body, _ := io.ReadAll(req.Body)
			assert.JSONEq(t, `{"Id":"h-1","IsError":false,"IikoStatus":"InProgress","DeliveryOrderId":"d-1","OrganizationIikoId":"org-1"}`, string(body))
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}, nil
		})

	client.OrderUpdate(context.Background(), dto.HelperOrderUpdate{
		ID:                 "h-1",
		IikoStatus:         "InProgress",
		DeliveryOrderID:    "d-1",
		OrganizationIikoID: "org-1",
	})
}

func TestOrderUpdateSwallowsTransportError(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection reset"))

	// must not panic and must not surface the error
	client.OrderUpdate(context.Background(), dto.HelperOrderUpdate{ID: "h-1", IsError: true, IikoStatus: "boom"})
}

func TestWaitOrder(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().
		Get("https://spb.ybdyb.ru/Api/Orders/WaitOrder/h-42", nil).
		Return(http.StatusOK, nil, nil, nil)

	client.WaitOrder(context.Background(), "h-42")
}

func TestWaitOrderSwallowsTransportError(t *testing.T) {
	client, httpClient := NewMock(t)

	httpClient.EXPECT().
		Get(gomock.Any(), nil).
		Return(0, nil, nil, errors.New("dial timeout"))

	client.WaitOrder(context.Background(), "h-42")
}

func TestInvoiceID(t *testing.T) {
	assert.Equal(t, "YB00000017", InvoiceID(17))
	assert.Equal(t, "YB12345678", InvoiceID(12345678))
}
