// Package payment talks to the payment functions that front the card
// processor. Authorizations are created with manual capture so funds are only
// taken once the chef accepts the order.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/config"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrDeclined    = errors.New("payment request declined")
	ErrNotFound    = errors.New("payment resource not found")
	ErrUnavailable = errors.New("payment gateway unavailable")
)

type AuthorizeRequest struct {
	Amount             int64
	Currency           string
	Reference          string
	DestinationAccount string
}

type Authorization struct {
	ID          string
	RedirectURL string
}

type CaptureRequest struct {
	ApplicationFee     int64
	DestinationAccount string
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(logger *slog.Logger, cfg config.Payment) *Client {
	logger = logger.With(slog.String("client", "payment"))

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// declines are answers, not outages
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrDeclined) || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		logger:  logger,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		http:    &http.Client{},
		cb:      cb,
	}
}

type authorizeBody struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Reference     string `json:"reference"`
	Destination   string `json:"destination,omitempty"`
	CaptureMethod string `json:"capture_method"`
}

type authorizeResponse struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirect_url"`
}

func (c *Client) Authorize(ctx context.Context, req AuthorizeRequest) (Authorization, error) {
	body := authorizeBody{
		Amount:        req.Amount,
		Currency:      req.Currency,
		Reference:     req.Reference,
		Destination:   req.DestinationAccount,
		CaptureMethod: "manual",
	}

	var res authorizeResponse
	if err := c.do(ctx, http.MethodPost, "/payment-intents", "authorize-"+req.Reference, body, &res); err != nil {
		return Authorization{}, fmt.Errorf("failed to authorize payment: %w", err)
	}
	if res.ID == "" {
		return Authorization{}, fmt.Errorf("failed to authorize payment: %w", ErrDeclined)
	}
	return Authorization{ID: res.ID, RedirectURL: res.RedirectURL}, nil
}

type captureBody struct {
	ApplicationFeeAmount int64  `json:"application_fee_amount"`
	Destination          string `json:"destination"`
}

type captureResponse struct {
	CaptureID string `json:"capture_id"`
}

func (c *Client) Capture(ctx context.Context, authorizationID string, req CaptureRequest) (string, error) {
	body := captureBody{
		ApplicationFeeAmount: req.ApplicationFee,
		Destination:          req.DestinationAccount,
	}

	var res captureResponse
	path := "/payment-intents/" + url.PathEscape(authorizationID) + "/capture"
	if err := c.do(ctx, http.MethodPost, path, "capture-"+authorizationID, body, &res); err != nil {
		return "", fmt.Errorf("failed to capture payment: %w", err)
	}
	if res.CaptureID == "" {
		return "", fmt.Errorf("failed to capture payment: %w", ErrDeclined)
	}
	return res.CaptureID, nil
}

func (c *Client) Cancel(ctx context.Context, authorizationID string) error {
	path := "/payment-intents/" + url.PathEscape(authorizationID) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, "cancel-"+authorizationID, struct{}{}, nil); err != nil {
		return fmt.Errorf("failed to cancel payment: %w", err)
	}
	return nil
}

type accountResponse struct {
	ID             string `json:"id"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// DestinationEnabled reports whether the connected account can receive funds.
func (c *Client) DestinationEnabled(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, nil
	}

	var res accountResponse
	err := c.do(ctx, http.MethodGet, "/accounts/"+url.PathEscape(accountID), "", nil, &res)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get account: %w", err)
	}
	return res.PayoutsEnabled, nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, idempotencyKey string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := c.cb.Execute(func() ([]byte, error) {
		var body io.Reader
		if in != nil {
			payload, err := json.Marshal(in)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request: %w", err)
			}
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-Request-Id", uuid.NewString())
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if idempotencyKey != "" {
			req.Header.Set("Idempotency-Key", idempotencyKey)
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		defer res.Body.Close()

		raw, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		switch {
		case res.StatusCode == http.StatusNotFound:
			return nil, ErrNotFound
		case res.StatusCode >= 500:
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
		case res.StatusCode >= 400:
			var e errorResponse
			_ = json.Unmarshal(raw, &e)
			return nil, fmt.Errorf("%w: %s", ErrDeclined, e.Message)
		}
		return raw, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
