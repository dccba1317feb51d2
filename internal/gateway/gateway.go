package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/logger"
)

// Order is the opaque handle returned by the payment gateway when an order is
// opened against a reservation.
type Order struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	Status      string `json:"status"`
}

// Client opens payment orders with the external gateway.
type Client interface {
	CreateOrder(ctx context.Context, amountCents int64, currency, receipt string) (*Order, error)
}

type httpClient struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

// NewHTTPClient builds a gateway client with a bounded timeout. Gateway calls
// never block the booking flow longer than the configured timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, timeout time.Duration) Client {
	return &httpClient{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: timeout},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (c *httpClient) CreateOrder(ctx context.Context, amountCents int64, currency, receipt string) (*Order, error) {
	logger.ExternalServiceCall("payment-gateway", "CreateOrder", "receipt", receipt, "amount_cents", amountCents)

	body, err := json.Marshal(createOrderRequest{Amount: amountCents, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("payment-gateway", "CreateOrder", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		err := fmt.Errorf("%w: gateway returned status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
		logger.ExternalServiceResult("payment-gateway", "CreateOrder", err)
		return nil, err
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("gateway rejected order: status %d", resp.StatusCode)
		logger.ExternalServiceResult("payment-gateway", "CreateOrder", err)
		return nil, err
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	logger.ExternalServiceResult("payment-gateway", "CreateOrder", nil, "order_id", order.ID)
	return &order, nil
}
