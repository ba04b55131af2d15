package iiko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/dto"
	"github.com/evgzln/iiko-transfer/pkg/clients"
)

// Client talks to the iiko cloud transport API. It is a plain request/response
// gateway: no retries, no session caching, every run authenticates fresh.
type Client struct {
	baseURL  string
	apiLogin string
	http     clients.HTTPClientI
}

func New(cfg *config.Config, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL:  cfg.IikoAddress,
		apiLogin: cfg.IikoAPILogin,
		http:     httpClient,
	}
}

func (c *Client) post(token, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("can't marshal %s request: %w", path, err)
	}

	headers := http.Header{}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}

	status, respBody, err := c.http.Post(c.baseURL+path, headers, payload)
	if err != nil {
		return fmt.Errorf("iiko request %s failed: %w", path, err)
	}
	if status != http.StatusOK {
		var fault struct {
			ErrorDescription string `json:"errorDescription"`
			Error            string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &fault)
		msg := fault.ErrorDescription
		if msg == "" {
			msg = fault.Error
		}
		return fmt.Errorf("iiko request %s: status %d: %s", path, status, msg)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("can't parse %s response: %w", path, err)
	}
	return nil
}

// Authenticate exchanges the api login for a short-lived session token.
func (c *Client) Authenticate(_ context.Context) (string, error) {
	var resp dto.AccessTokenResponse
	if err := c.post("", "/api/1/access_token", dto.AccessTokenRequest{APILogin: c.apiLogin}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Organizations(_ context.Context, token string) (*dto.OrganizationsResponse, error) {
	var resp dto.OrganizationsResponse
	if err := c.post(token, "/api/1/organizations", dto.OrganizationsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) TerminalGroups(_ context.Context, token string, orgIDs []string) (*dto.TerminalGroupsResponse, error) {
	var resp dto.TerminalGroupsResponse
	if err := c.post(token, "/api/1/terminal_groups", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Cities(_ context.Context, token string, orgIDs []string) (*dto.CitiesResponse, error) {
	var resp dto.CitiesResponse
	if err := c.post(token, "/api/1/cities", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Streets(_ context.Context, token, orgID, cityID string) (*dto.StreetsResponse, error) {
	var resp dto.StreetsResponse
	if err := c.post(token, "/api/1/streets/by_city", dto.StreetsRequest{OrganizationID: orgID, CityID: cityID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Nomenclature(_ context.Context, token, orgID string) (*dto.NomenclatureResponse, error) {
	var resp dto.NomenclatureResponse
	if err := c.post(token, "/api/1/nomenclature", dto.NomenclatureRequest{OrganizationID: orgID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) StopLists(_ context.Context, token string, orgIDs []string) (*dto.StopListsResponse, error) {
	var resp dto.StopListsResponse
	if err := c.post(token, "/api/1/stop_lists", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PaymentTypes(_ context.Context, token string, orgIDs []string) (*dto.PaymentTypesResponse, error) {
	var resp dto.PaymentTypesResponse
	if err := c.post(token, "/api/1/payment_types", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Regions(_ context.Context, token string, orgIDs []string) (*dto.RegionsResponse, error) {
	var resp dto.RegionsResponse
	if err := c.post(token, "/api/1/regions", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Discounts(_ context.Context, token string, orgIDs []string) (*dto.DiscountsResponse, error) {
	var resp dto.DiscountsResponse
	if err := c.post(token, "/api/1/discounts", dto.OrganizationIDsRequest{OrganizationIDs: orgIDs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateDelivery(_ context.Context, token string, req dto.CreateDeliveryRequest) (*dto.CreateDeliveryResponse, error) {
	var resp dto.CreateDeliveryResponse
	if err := c.post(token, "/api/1/deliveries/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) OrdersByIDs(_ context.Context, token, orgID string, orderIDs []string) (*dto.OrdersByIDsResponse, error) {
	var resp dto.OrdersByIDsResponse
	req := dto.OrdersByIDsRequest{OrganizationIDs: []string{orgID}, OrderIDs: orderIDs}
	if err := c.post(token, "/api/1/deliveries/by_id", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
