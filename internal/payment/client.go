// Package payment предоставляет клиент платёжного сервиса Stripe:
// создание сессий hosted checkout и проверку подписи вебхуков.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const defaultBaseURL = "https://api.stripe.com"

// Client инкапсулирует HTTP-взаимодействие со Stripe.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *retryablehttp.Client
}

// CheckoutSession описывает созданную платёжную сессию.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutParams содержит параметры создания платёжной сессии.
// Сумма указывается в минимальных единицах валюты.
type CheckoutParams struct {
	OrderID       int64
	Amount        int64
	Currency      string
	ProductName   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// NewClient создаёт клиент Stripe с указанным секретным ключом.
// Повторы на уровне транспорта безопасны: каждый запрос несёт ключ идемпотентности.
func NewClient(secretKey string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = 10 * time.Second
	rc.Logger = nil

	return &Client{
		baseURL:    defaultBaseURL,
		secretKey:  secretKey,
		httpClient: rc,
	}
}

// CreateCheckoutSession создаёт сессию hosted checkout на точную сумму заказа.
// Идентификатор заказа передаётся в метаданных и возвращается вебхуком.
func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	if c == nil || c.secretKey == "" {
		return nil, fmt.Errorf("payment client not configured")
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.Amount, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	form.Set("metadata[order_id]", strconv.FormatInt(p.OrderID, 10))
	if p.CustomerEmail != "" {
		form.Set("customer_email", p.CustomerEmail)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Idempotency-Key", fmt.Sprintf("order-%d-%d", p.OrderID, time.Now().UnixNano()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("stripe status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if session.ID == "" || session.URL == "" {
		return nil, fmt.Errorf("incomplete checkout session in response")
	}

	return &session, nil
}
