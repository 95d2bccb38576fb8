package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gpsolutions/internal/domain/errors"
	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// ErrSessionNotFound indicates the provider does not know the checkout session.
var ErrSessionNotFound = errors.New("payment session not found")

// TooManyRequestsError represents rate limiting signal from the payment provider.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// SessionRequest describes a hosted checkout session to create.
type SessionRequest struct {
	Items      []model.LineItem
	SuccessURL string
	CancelURL  string
	// Reference is echoed back by the provider as client_reference_id.
	Reference string
}

// Client exposes the payment provider operations.
type Client interface {
	CreateSession(ctx context.Context, req SessionRequest) (*model.PaymentSession, error)
	FetchSession(ctx context.Context, id string) (*model.PaymentSession, error)
}

// HTTPClient implements Client against a Stripe-compatible REST API.
type HTTPClient struct {
	baseURL    *url.URL
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// sessionResponse mirrors the checkout session JSON payload.
type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   *int64 `json:"amount_total"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewHTTPClient creates a payment client with default timeout.
func NewHTTPClient(baseURL, secretKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment url must be absolute")
	}
	if secretKey == "" {
		return nil, fmt.Errorf("payment secret key must be set")
	}
	return &HTTPClient{
		baseURL:   parsed,
		secretKey: secretKey,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateSession opens a hosted checkout session for the line items.
func (c *HTTPClient) CreateSession(ctx context.Context, req SessionRequest) (*model.PaymentSession, error) {
	form := encodeSessionForm(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/checkout/sessions"), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	return c.do(httpReq)
}

// FetchSession returns the current provider state of a checkout session.
func (c *HTTPClient) FetchSession(ctx context.Context, id string) (*model.PaymentSession, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/v1/checkout/sessions", url.PathEscape(id)), nil)
	if err != nil {
		return nil, err
	}
	return c.do(httpReq)
}

func (c *HTTPClient) endpoint(parts ...string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(append([]string{endpoint.Path}, parts...)...)
	return endpoint.String()
}

func (c *HTTPClient) do(req *http.Request) (*model.PaymentSession, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data sessionResponse
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("%w: decode session: %v", domainErrors.ErrPaymentFailed, err)
		}
		return &model.PaymentSession{
			ID:            data.ID,
			URL:           data.URL,
			Status:        data.Status,
			PaymentStatus: data.PaymentStatus,
			AmountTotal:   data.AmountTotal,
		}, nil
	case http.StatusNotFound:
		return nil, ErrSessionNotFound
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		message := resp.Status
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		c.logger.Error("payment request failed", slog.Int("status", resp.StatusCode), slog.String("message", message))
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrPaymentFailed, message)
	}
}

// encodeSessionForm renders the request in the provider's bracketed form notation.
func encodeSessionForm(req SessionRequest) url.Values {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Add("payment_method_types[]", "card")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	if req.Reference != "" {
		form.Set("client_reference_id", req.Reference)
	}

	for i, item := range req.Items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmountCents, 10))
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
	}
	return form
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
