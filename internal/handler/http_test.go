package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/handler"
	mocks "github.com/SergeyBogomolovv/chef-market/internal/handler/mocks"
	"github.com/SergeyBogomolovv/chef-market/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

var (
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

	buyer  = entities.Principal{ID: "buyer-1", Roles: []entities.Role{entities.RoleBuyer}}
	seller = entities.Principal{ID: "5", Roles: []entities.Role{entities.RoleBuyer, entities.RoleSeller}}
)

type initer interface {
	Init(r chi.Router)
}

func newRouter(h initer) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Auth(discardLogger, auth.HeaderVerifier{}))
	h.Init(r)
	return r
}

// do sends a request as the given principal; an empty ID sends no identity.
func do(t *testing.T, r http.Handler, method, target, body string, p entities.Principal) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if p.ID != "" {
		req.Header.Set("X-User-Id", p.ID)
		var roles []string
		for _, role := range p.Roles {
			if role != entities.RoleBuyer {
				roles = append(roles, string(role))
			}
		}
		req.Header.Set("X-User-Roles", strings.Join(roles, ","))
		req.Header.Set("X-User-Email", p.Email)
	}
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func testOrder(status entities.Status) entities.Order {
	return entities.Order{
		ID:           orderID,
		BuyerID:      buyer.ID,
		SellerID:     seller.ID,
		Status:       status,
		Currency:     "usd",
		TotalAmount:  2500,
		PickupAt:     time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		PaymentState: entities.PaymentAuthorized,
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	details := entities.OrderDetails{
		Order:   testOrder(entities.StatusRequested),
		Seller:  entities.SellerContact{ID: "5", DisplayName: "Chef Five", Phone: "+15550005"},
		History: []entities.StatusEvent{{ToStatus: entities.StatusRequested, ActorRole: entities.RoleBuyer}},
	}

	testCases := []struct {
		name         string
		orderID      string
		principal    entities.Principal
		mockBehavior func(tracker *mocks.MockOrderTracker)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			orderID:   orderID,
			principal: buyer,
			mockBehavior: func(tracker *mocks.MockOrderTracker) {
				tracker.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(details, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"display_name":"Chef Five"`,
		},
		{
			name:         "unauthenticated",
			orderID:      orderID,
			mockBehavior: func(*mocks.MockOrderTracker) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthenticated"`,
		},
		{
			name:         "invalid id",
			orderID:      "not-a-uuid",
			principal:    buyer,
			mockBehavior: func(*mocks.MockOrderTracker) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:      "not found",
			orderID:   orderID,
			principal: buyer,
			mockBehavior: func(tracker *mocks.MockOrderTracker) {
				tracker.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(entities.OrderDetails{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:      "forbidden",
			orderID:   orderID,
			principal: buyer,
			mockBehavior: func(tracker *mocks.MockOrderTracker) {
				tracker.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(entities.OrderDetails{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "internal error",
			orderID:   orderID,
			principal: buyer,
			mockBehavior: func(tracker *mocks.MockOrderTracker) {
				tracker.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(entities.OrderDetails{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := mocks.NewMockOrderTracker(t)
			tc.mockBehavior(tracker)

			h := handler.NewOrderHandler(discardLogger, mocks.NewMockOrderService(t), tracker)
			status, body := do(t, newRouter(h), http.MethodGet, "/orders/"+tc.orderID, "", tc.principal)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.OrderDetails
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, orderID, resp.Order.ID)
				assert.Equal(t, int64(2500), resp.Order.SellerNetAmount)
				assert.Len(t, resp.History, 1)
			}
		})
	}
}

func TestOrderHandler_Transitions(t *testing.T) {
	testCases := []struct {
		name       string
		action     string
		to         entities.Status
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "accept", action: "accept", to: entities.StatusPending, wantStatus: http.StatusOK, wantBody: `"status":"pending"`},
		{name: "reject", action: "reject", to: entities.StatusRejected, wantStatus: http.StatusOK, wantBody: `"status":"rejected"`},
		{name: "ready", action: "ready", to: entities.StatusReady, wantStatus: http.StatusOK, wantBody: `"status":"ready"`},
		{name: "cancel", action: "cancel", to: entities.StatusCancelled, wantStatus: http.StatusOK, wantBody: `"status":"cancelled"`},
		{name: "complete", action: "complete", to: entities.StatusCompleted, wantStatus: http.StatusOK, wantBody: `"status":"completed"`},
		{
			name: "invalid transition", action: "complete", to: entities.StatusCompleted,
			err:        &entities.InvalidTransitionError{From: entities.StatusRequested, To: entities.StatusCompleted},
			wantStatus: http.StatusConflict, wantBody: "cannot move order from requested to completed",
		},
		{
			name: "conflict", action: "accept", to: entities.StatusPending,
			err: entities.ErrConflict, wantStatus: http.StatusConflict,
		},
		{
			name: "already captured", action: "accept", to: entities.StatusPending,
			err: entities.ErrAlreadyCaptured, wantStatus: http.StatusConflict,
		},
		{
			name: "payouts disabled", action: "accept", to: entities.StatusPending,
			err: entities.ErrPayoutsNotEnabled, wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "capture failed", action: "accept", to: entities.StatusPending,
			err:        fmt.Errorf("%w: gateway unavailable", entities.ErrPaymentCapture),
			wantStatus: http.StatusBadGateway, wantBody: `"payment capture failed"`,
		},
		{
			name: "void failed", action: "reject", to: entities.StatusRejected,
			err: fmt.Errorf("%w: declined", entities.ErrPaymentCancel), wantStatus: http.StatusBadGateway,
		},
		{
			name: "forbidden", action: "ready", to: entities.StatusReady,
			err: entities.ErrForbidden, wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderService(t)
			if tc.err != nil {
				orders.EXPECT().Transition(mock.Anything, seller, orderID, tc.to).Return(entities.Order{}, tc.err).Once()
			} else {
				orders.EXPECT().Transition(mock.Anything, seller, orderID, tc.to).Return(testOrder(tc.to), nil).Once()
			}

			h := handler.NewOrderHandler(discardLogger, orders, mocks.NewMockOrderTracker(t))
			status, body := do(t, newRouter(h), http.MethodPost, "/orders/"+orderID+"/"+tc.action, "", seller)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_GetActiveOrder(t *testing.T) {
	tracker := mocks.NewMockOrderTracker(t)
	tracker.EXPECT().GetActiveOrder(mock.Anything, "buyer-1").Return(testOrder(entities.StatusPending), nil).Once()
	tracker.EXPECT().GetActiveOrder(mock.Anything, "buyer-2").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	r := newRouter(handler.NewOrderHandler(discardLogger, mocks.NewMockOrderService(t), tracker))

	status, body := do(t, r, http.MethodGet, "/orders/active", "", buyer)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"pending"`)

	status, _ = do(t, r, http.MethodGet, "/orders/active", "", entities.Principal{ID: "buyer-2"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOrderHandler_ListSellerOrders(t *testing.T) {
	tracker := mocks.NewMockOrderTracker(t)
	tracker.EXPECT().
		ListSellerOrders(mock.Anything, seller, []entities.Status{entities.StatusRequested, entities.StatusPending, entities.StatusReady}).
		Return([]entities.Order{testOrder(entities.StatusRequested)}, nil).Once()
	tracker.EXPECT().
		ListSellerOrders(mock.Anything, seller, []entities.Status{"bogus"}).
		Return(nil, entities.ErrInvalidStatus).Once()

	r := newRouter(handler.NewOrderHandler(discardLogger, mocks.NewMockOrderService(t), tracker))

	status, body := do(t, r, http.MethodGet, "/seller/orders?status=requested,pending&status=ready", "", seller)
	assert.Equal(t, http.StatusOK, status)

	var orders []handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &orders))
	assert.Len(t, orders, 1)

	status, _ = do(t, r, http.MethodGet, "/seller/orders?status=bogus", "", seller)
	assert.Equal(t, http.StatusBadRequest, status)
}
