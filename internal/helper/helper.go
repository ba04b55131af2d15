package helper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/pkg/clients"
)

// Client pushes order outcomes to the helper backend. Both calls are
// fire-and-forget: transport failures and non-2xx responses are dropped, the
// flows never fail because of the helper.
type Client struct {
	baseURL string
	http    clients.HTTPClientI
}

func New(cfg *config.Config, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.HelperURL(),
		http:    httpClient,
	}
}

// OrderUpdate PATCHes the submission outcome for an order.
func (c *Client) OrderUpdate(_ context.Context, update dto.HelperOrderUpdate) {
	payload, err := json.Marshal(update)
	if err != nil {
		zap.L().Warn("can't marshal helper update", zap.Error(err))
		return
	}

	req, err := http.NewRequest(http.MethodPatch, c.baseURL+"/Api/Orders/Update", bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Debug("helper update skipped", zap.String("id", update.ID), zap.Error(err))
		return
	}
	resp.Body.Close()
}

// WaitOrder pings the helper to keep a timed-out order waiting.
func (c *Client) WaitOrder(_ context.Context, helperID string) {
	_, _, _, err := c.http.Get(c.baseURL+"/Api/Orders/WaitOrder/"+helperID, nil)
	if err != nil {
		zap.L().Debug("wait-order ping skipped", zap.String("helper_id", helperID), zap.Error(err))
	}
}

// InvoiceID builds the helper-side invoice identifier for a local order.
func InvoiceID(orderID int64) string {
	return fmt.Sprintf("YB%08d", orderID)
}
