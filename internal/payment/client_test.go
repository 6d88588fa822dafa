package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(logger, config.Payment{
		BaseURL: srv.URL,
		APIKey:  "sk_test",
		Timeout: time.Second,
	})
}

func TestClient_Authorize(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment-intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "authorize-order-1", r.Header.Get("Idempotency-Key"))

		var body authorizeBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(2500), body.Amount)
		assert.Equal(t, "manual", body.CaptureMethod)
		assert.Equal(t, "acct_5", body.Destination)

		w.Write([]byte(`{"id":"pi_1","redirect_url":"https://pay.example.com/pi_1"}`))
	})

	auth, err := c.Authorize(context.Background(), AuthorizeRequest{
		Amount:             2500,
		Currency:           "usd",
		Reference:          "order-1",
		DestinationAccount: "acct_5",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", auth.ID)
	assert.Equal(t, "https://pay.example.com/pi_1", auth.RedirectURL)
}

func TestClient_Capture(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-intents/pi_1/capture", r.URL.Path)
		assert.Equal(t, "capture-pi_1", r.Header.Get("Idempotency-Key"))

		var body captureBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(250), body.ApplicationFeeAmount)
		assert.Equal(t, "acct_5", body.Destination)

		w.Write([]byte(`{"capture_id":"cap_1"}`))
	})

	id, err := c.Capture(context.Background(), "pi_1", CaptureRequest{ApplicationFee: 250, DestinationAccount: "acct_5"})
	require.NoError(t, err)
	assert.Equal(t, "cap_1", id)
}

func TestClient_CaptureWithoutID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	id, err := c.Capture(context.Background(), "pi_1", CaptureRequest{ApplicationFee: 250, DestinationAccount: "acct_5"})
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Empty(t, id)
}

func TestClient_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "declined", status: http.StatusPaymentRequired, wantErr: ErrDeclined},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(`{"message":"nope"}`))
			})

			err := c.Cancel(context.Background(), "pi_1")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_DestinationEnabled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/accounts/acct_ok":
			w.Write([]byte(`{"id":"acct_ok","payouts_enabled":true}`))
		case "/accounts/acct_pending":
			w.Write([]byte(`{"id":"acct_pending","payouts_enabled":false}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	ok, err := c.DestinationEnabled(ctx, "acct_ok")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DestinationEnabled(ctx, "acct_pending")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.DestinationEnabled(ctx, "acct_missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.DestinationEnabled(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 8; i++ {
		err := c.Cancel(context.Background(), "pi_1")
		assert.ErrorIs(t, err, ErrUnavailable)
	}
	assert.Equal(t, int32(5), calls.Load())
}

func TestClient_DeclinesDoNotTrip(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	for i := 0; i < 8; i++ {
		err := c.Cancel(context.Background(), "pi_1")
		assert.ErrorIs(t, err, ErrDeclined)
	}
	assert.Equal(t, int32(8), calls.Load())
}
