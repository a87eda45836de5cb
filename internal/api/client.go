// Package api is the typed HTTP client for the remote Bluestrek
// inventory/order API. Every call takes a context so a screen being torn
// down can cancel its in-flight requests deterministically. There is no
// retry, batching, or caching: each call is fire-and-wait, and the only
// ordering guarantee is the one the caller creates by sequencing calls.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bluestrek/internal/apierror"
	"bluestrek/internal/config"
	"bluestrek/internal/dto"
	"bluestrek/internal/model"
)

// ErrUnavailable is the generic failure surfaced for any transport-level
// problem. Screens show it as "server unreachable" and keep the form
// populated for resubmission.
var ErrUnavailable = errors.New("the server is unreachable")

// StatusError is a non-2xx response from the API. Detail is the decoded
// server envelope, kept for logs — screens report a generic failure.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Client talks to the remote API. Safe for concurrent use; the session
// token is attached to every request once set.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *Breaker
	log        zerolog.Logger

	mu    sync.RWMutex
	token string
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.APIBaseURL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout()},
		breaker: NewBreaker(BreakerConfig{
			FailureThreshold: cfg.BreakerFailureThreshold,
			SuccessThreshold: cfg.BreakerSuccessThreshold,
			OpenTimeout:      cfg.BreakerOpenTimeout(),
		}),
		log: log,
	}
}

// SetToken installs the opaque session token attached as a Bearer header to
// subsequent calls. The token is never inspected here; persisting it across
// launches is the embedding app's concern.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current session token ("" when logged out).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BreakerState exposes the circuit position for diagnostics.
func (c *Client) BreakerState() string { return c.breaker.State() }

// ── Endpoints ────────────────────────────────────────────────────────────────

// Login authenticates and, on success, installs the returned session token.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Authenticated() {
		c.SetToken(resp.Token)
	}
	return &resp, nil
}

func (c *Client) ListClients(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	err := c.do(ctx, http.MethodGet, "/api/clients", nil, nil, &out)
	return out, err
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, nil, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &out)
	return out, err
}

func (c *Client) ListPurchases(ctx context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	err := c.do(ctx, http.MethodGet, "/api/purchases", nil, nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) error {
	return c.do(ctx, http.MethodPost, "/api/orders", nil, req, nil)
}

func (c *Client) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) error {
	return c.do(ctx, http.MethodPost, "/api/purchases", nil, req, nil)
}

func (c *Client) UpdatePurchase(ctx context.Context, id int64, req dto.UpdatePurchaseRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/purchases/%d", id), nil, req, nil)
}

// DailyOrderStats returns the per-day order totals for one month.
func (c *Client) DailyOrderStats(ctx context.Context, month, year int) ([]dto.DailyTotal, error) {
	q := url.Values{}
	q.Set("month", fmt.Sprintf("%d", month))
	q.Set("year", fmt.Sprintf("%d", year))
	var out []dto.DailyTotal
	err := c.do(ctx, http.MethodGet, "/api/orders/stats/daily", q, nil, &out)
	return out, err
}

// ── Transport ────────────────────────────────────────────────────────────────

// do executes one JSON round-trip through the circuit breaker. A 4xx
// response counts as breaker success (the server is alive and answered);
// transport errors and 5xx count as failures.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	var status int
	var respBody []byte

	err = c.breaker.Do(func() error {
		resp, rerr := c.httpClient.Do(req)
		if rerr != nil {
			// Double-wrap so callers can test both the generic failure and
			// the cause (the breaker checks for context.Canceled).
			return fmt.Errorf("%w: %w", ErrUnavailable, rerr)
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		respBody, rerr = io.ReadAll(resp.Body)
		if rerr != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, rerr)
		}
		if status >= 500 {
			return &StatusError{Status: status, Detail: apierror.Decode(respBody).Detail}
		}
		return nil
	})

	evt := c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Dur("latency", time.Since(start))
	if err != nil {
		if errors.Is(err, ErrServerDown) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		evt.Err(err).Msg("api call failed")
		return err
	}
	evt.Int("status", status).Msg("api call")

	if status >= 400 {
		return &StatusError{Status: status, Detail: apierror.Decode(respBody).Detail}
	}
	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}
