package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/payment"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	mocks "github.com/SergeyBogomolovv/chef-market/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/chef-market/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testSeller = entities.Seller{ID: "5", DisplayName: "Chef Five", PayoutAccountID: "acct_5"}

	sellerPrincipal   = entities.Principal{ID: "5", Roles: []entities.Role{entities.RoleBuyer, entities.RoleSeller}}
	buyerPrincipal    = entities.Principal{ID: "buyer-1", Roles: []entities.Role{entities.RoleBuyer}}
	strangerPrincipal = entities.Principal{ID: "someone", Roles: []entities.Role{entities.RoleBuyer}}
	adminPrincipal    = entities.Principal{ID: "admin-1", Email: "ops@example.com"}
)

func newTestOrder(id string, status entities.Status, ps entities.PaymentState) entities.Order {
	o := entities.Order{
		ID:                     id,
		BuyerID:                "buyer-1",
		SellerID:               "5",
		Status:                 status,
		Currency:               "usd",
		TotalAmount:            2500,
		PickupAt:               time.Now().Add(24 * time.Hour),
		CreatedAt:              time.Now(),
		PaymentAuthorizationID: "pi_" + id,
		PaymentState:           ps,
	}
	if ps == entities.PaymentCaptured {
		capture := "cap_" + id
		o.PaymentCaptureID = &capture
		o.PlatformFeeAmount = 250
	}
	return o
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return tx
}

func newOrderService(t *testing.T, repo service.OrderRepo, gateway *mocks.MockPaymentGateway) (service.Transitioner, *mocks.MockEventPublisher) {
	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	roles := auth.NewRoleChecker([]string{"ops@example.com"})
	svc := service.NewOrderService(discardLogger, passthroughTx(t), repo, gateway, publisher, roles, 1000)
	return svc, publisher
}

func TestOrderService_Transition(t *testing.T) {
	gatewayErr := errors.New("gateway down")

	testCases := []struct {
		name         string
		status       entities.Status
		payment      entities.PaymentState
		principal    entities.Principal
		to           entities.Status
		mockBehavior func(g *mocks.MockPaymentGateway)
		wantErr      error
		wantStatus   entities.Status
		wantPayment  entities.PaymentState
	}{
		{
			name:      "seller accepts",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusPending,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
				g.EXPECT().
					Capture(mock.Anything, "pi_o1", payment.CaptureRequest{ApplicationFee: 250, DestinationAccount: "acct_5"}).
					Return("cap_1", nil).Once()
			},
			wantStatus:  entities.StatusPending,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:      "admin accepts",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: adminPrincipal,
			to:        entities.StatusPending,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
				g.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("cap_1", nil).Once()
			},
			wantStatus:  entities.StatusPending,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:        "buyer cannot accept",
			status:      entities.StatusRequested,
			payment:     entities.PaymentAuthorized,
			principal:   buyerPrincipal,
			to:          entities.StatusPending,
			wantErr:     entities.ErrForbidden,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:        "stranger cannot reject",
			status:      entities.StatusRequested,
			payment:     entities.PaymentAuthorized,
			principal:   strangerPrincipal,
			to:          entities.StatusRejected,
			wantErr:     entities.ErrForbidden,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:      "seller rejects",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusRejected,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().Cancel(mock.Anything, "pi_o1").Return(nil).Once()
			},
			wantStatus:  entities.StatusRejected,
			wantPayment: entities.PaymentCancelled,
		},
		{
			name:      "system rejects",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: entities.SystemPrincipal,
			to:        entities.StatusRejected,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().Cancel(mock.Anything, "pi_o1").Return(nil).Once()
			},
			wantStatus:  entities.StatusRejected,
			wantPayment: entities.PaymentCancelled,
		},
		{
			name:      "buyer cancels requested order",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: buyerPrincipal,
			to:        entities.StatusCancelled,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().Cancel(mock.Anything, "pi_o1").Return(nil).Once()
			},
			wantStatus:  entities.StatusCancelled,
			wantPayment: entities.PaymentCancelled,
		},
		{
			name:        "seller cannot cancel requested order",
			status:      entities.StatusRequested,
			payment:     entities.PaymentAuthorized,
			principal:   sellerPrincipal,
			to:          entities.StatusCancelled,
			wantErr:     entities.ErrForbidden,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:        "complete while requested",
			status:      entities.StatusRequested,
			payment:     entities.PaymentAuthorized,
			principal:   buyerPrincipal,
			to:          entities.StatusCompleted,
			wantErr:     entities.ErrInvalidTransition,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:        "seller marks ready",
			status:      entities.StatusPending,
			payment:     entities.PaymentCaptured,
			principal:   sellerPrincipal,
			to:          entities.StatusReady,
			wantStatus:  entities.StatusReady,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:        "seller cancels pending order",
			status:      entities.StatusPending,
			payment:     entities.PaymentCaptured,
			principal:   sellerPrincipal,
			to:          entities.StatusCancelled,
			wantStatus:  entities.StatusCancelled,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:        "buyer completes",
			status:      entities.StatusReady,
			payment:     entities.PaymentCaptured,
			principal:   buyerPrincipal,
			to:          entities.StatusCompleted,
			wantStatus:  entities.StatusCompleted,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:        "complete while pending",
			status:      entities.StatusPending,
			payment:     entities.PaymentCaptured,
			principal:   buyerPrincipal,
			to:          entities.StatusCompleted,
			wantErr:     entities.ErrInvalidTransition,
			wantStatus:  entities.StatusPending,
			wantPayment: entities.PaymentCaptured,
		},
		{
			name:      "payouts not enabled",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusPending,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(false, nil).Once()
			},
			wantErr:     entities.ErrPayoutsNotEnabled,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:      "capture fails",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusPending,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
				g.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("", gatewayErr).Once()
			},
			wantErr:     entities.ErrPaymentCapture,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:      "capture returns no id",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusPending,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
				g.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("", nil).Once()
			},
			wantErr:     entities.ErrPaymentCapture,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:      "cancel fails",
			status:    entities.StatusRequested,
			payment:   entities.PaymentAuthorized,
			principal: sellerPrincipal,
			to:        entities.StatusRejected,
			mockBehavior: func(g *mocks.MockPaymentGateway) {
				g.EXPECT().Cancel(mock.Anything, "pi_o1").Return(gatewayErr).Once()
			},
			wantErr:     entities.ErrPaymentCancel,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
		{
			name:        "unknown status",
			status:      entities.StatusRequested,
			payment:     entities.PaymentAuthorized,
			principal:   sellerPrincipal,
			to:          entities.Status("delivered"),
			wantErr:     entities.ErrInvalidStatus,
			wantStatus:  entities.StatusRequested,
			wantPayment: entities.PaymentAuthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo(testSeller)
			repo.put(newTestOrder("o1", tc.status, tc.payment))

			gateway := mocks.NewMockPaymentGateway(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(gateway)
			}
			svc, _ := newOrderService(t, repo, gateway)

			got, err := svc.Transition(context.Background(), tc.principal, "o1", tc.to)

			stored, getErr := repo.GetOrder(context.Background(), "o1")
			require.NoError(t, getErr)
			assert.Equal(t, tc.wantStatus, stored.Status)
			assert.Equal(t, tc.wantPayment, stored.PaymentState)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, repo.eventsTo("o1", tc.to))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, stored.StatusVersion, got.StatusVersion)
			assert.Equal(t, 1, repo.eventsTo("o1", tc.to))
		})
	}
}

func TestOrderService_AcceptRecordsFee(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusRequested, entities.PaymentAuthorized))

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
	gateway.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("cap_1", nil).Once()
	svc, _ := newOrderService(t, repo, gateway)

	got, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	require.NoError(t, err)

	assert.Equal(t, int64(250), got.PlatformFeeAmount)
	assert.Equal(t, int64(2250), got.SellerNetAmount())
	assert.Equal(t, got.TotalAmount-got.PlatformFeeAmount, got.SellerNetAmount())
	require.NotNil(t, got.PaymentCaptureID)
	assert.Equal(t, "cap_1", *got.PaymentCaptureID)
	assert.NotNil(t, got.TransferredAt)
	assert.Equal(t, 1, got.StatusVersion)
}

func TestOrderService_AcceptTwice(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusRequested, entities.PaymentAuthorized))

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Once()
	gateway.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("cap_1", nil).Once()
	svc, _ := newOrderService(t, repo, gateway)

	_, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)
}

func TestOrderService_ConcurrentAcceptCapturesOnce(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusRequested, entities.PaymentAuthorized))

	var captured atomic.Int32
	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Maybe()
	gateway.EXPECT().
		Capture(mock.Anything, "pi_o1", mock.Anything).
		RunAndReturn(func(context.Context, string, payment.CaptureRequest) (string, error) {
			captured.Add(1)
			time.Sleep(10 * time.Millisecond)
			return "cap_1", nil
		}).Maybe()
	svc, _ := newOrderService(t, repo, gateway)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t,
			errors.Is(err, entities.ErrConflict) || errors.Is(err, entities.ErrInvalidTransition),
			"unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int32(1), captured.Load())

	stored, err := repo.GetOrder(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, stored.Status)
	assert.Equal(t, entities.PaymentCaptured, stored.PaymentState)
	assert.Equal(t, 1, repo.eventsTo("o1", entities.StatusPending))
}

func TestOrderService_CaptureRetryAfterFailure(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusRequested, entities.PaymentAuthorized))

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().DestinationEnabled(mock.Anything, "acct_5").Return(true, nil).Twice()
	gateway.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("", payment.ErrUnavailable).Once()
	gateway.EXPECT().Capture(mock.Anything, "pi_o1", mock.Anything).Return("cap_1", nil).Once()
	svc, _ := newOrderService(t, repo, gateway)

	_, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	assert.ErrorIs(t, err, entities.ErrPaymentCapture)
	assert.ErrorIs(t, err, payment.ErrUnavailable)

	got, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPending, got.Status)
}

func TestOrderService_AlreadyCaptured(t *testing.T) {
	repo := newMemRepo(testSeller)
	o := newTestOrder("o1", entities.StatusRequested, entities.PaymentAuthorized)
	capture := "cap_old"
	o.PaymentCaptureID = &capture
	repo.put(o)

	svc, _ := newOrderService(t, repo, mocks.NewMockPaymentGateway(t))

	_, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusPending)
	assert.ErrorIs(t, err, entities.ErrAlreadyCaptured)

	_, err = svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusRejected)
	assert.ErrorIs(t, err, entities.ErrAlreadyCaptured)
}

func TestOrderService_ClaimInFlight(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusRequested, entities.PaymentCapturing))

	svc, _ := newOrderService(t, repo, mocks.NewMockPaymentGateway(t))

	_, err := svc.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusRejected)
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func TestOrderService_NotFound(t *testing.T) {
	svc, _ := newOrderService(t, newMemRepo(testSeller), mocks.NewMockPaymentGateway(t))

	_, err := svc.Transition(context.Background(), sellerPrincipal, "missing", entities.StatusPending)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_PublishesStatusChange(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(newTestOrder("o1", entities.StatusPending, entities.PaymentCaptured))

	publisher := mocks.NewMockEventPublisher(t)
	publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
			return c.OrderID == "o1" &&
				c.From == entities.StatusPending &&
				c.To == entities.StatusReady &&
				c.Actor == entities.RoleSeller &&
				c.BuyerID == "buyer-1"
		})).
		Return(errors.New("broker down")).Once()

	roles := auth.NewRoleChecker(nil)
	svc := service.NewOrderService(discardLogger, passthroughTx(t), repo, mocks.NewMockPaymentGateway(t), publisher, roles, 1000)

	got, err := svc.MarkReady(context.Background(), sellerPrincipal, "o1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusReady, got.Status)
}

func TestOrderService_Override(t *testing.T) {
	testCases := []struct {
		name       string
		status     entities.Status
		payment    entities.PaymentState
		principal  entities.Principal
		to         entities.Status
		wantErr    error
		wantStatus entities.Status
	}{
		{
			name:       "admin moves requested to ready",
			status:     entities.StatusRequested,
			payment:    entities.PaymentAuthorized,
			principal:  adminPrincipal,
			to:         entities.StatusReady,
			wantStatus: entities.StatusReady,
		},
		{
			name:       "seller is not an admin",
			status:     entities.StatusRequested,
			payment:    entities.PaymentAuthorized,
			principal:  sellerPrincipal,
			to:         entities.StatusReady,
			wantErr:    entities.ErrForbidden,
			wantStatus: entities.StatusRequested,
		},
		{
			name:       "terminal order",
			status:     entities.StatusCompleted,
			payment:    entities.PaymentCaptured,
			principal:  adminPrincipal,
			to:         entities.StatusReady,
			wantErr:    entities.ErrInvalidTransition,
			wantStatus: entities.StatusCompleted,
		},
		{
			name:       "unknown status",
			status:     entities.StatusPending,
			payment:    entities.PaymentCaptured,
			principal:  adminPrincipal,
			to:         entities.Status("lost"),
			wantErr:    entities.ErrInvalidStatus,
			wantStatus: entities.StatusPending,
		},
		{
			name:       "payment call in flight",
			status:     entities.StatusRequested,
			payment:    entities.PaymentCancelling,
			principal:  adminPrincipal,
			to:         entities.StatusCancelled,
			wantErr:    entities.ErrConflict,
			wantStatus: entities.StatusRequested,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo(testSeller)
			repo.put(newTestOrder("o1", tc.status, tc.payment))

			// overrides never touch the gateway
			svc := service.NewOrderService(
				discardLogger, passthroughTx(t), repo, mocks.NewMockPaymentGateway(t),
				func() *mocks.MockEventPublisher {
					p := mocks.NewMockEventPublisher(t)
					p.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
					return p
				}(),
				auth.NewRoleChecker([]string{"ops@example.com"}), 1000,
			)

			_, err := svc.Override(context.Background(), tc.principal, "o1", tc.to)

			stored, getErr := repo.GetOrder(context.Background(), "o1")
			require.NoError(t, getErr)
			assert.Equal(t, tc.wantStatus, stored.Status)
			assert.Equal(t, tc.payment, stored.PaymentState)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.eventsTo("o1", tc.to))
		})
	}
}

func TestPlatformFee(t *testing.T) {
	testCases := []struct {
		total int64
		bps   int
		want  int64
	}{
		{total: 2500, bps: 1000, want: 250},
		{total: 999, bps: 1000, want: 100},
		{total: 995, bps: 1000, want: 100},
		{total: 994, bps: 1000, want: 99},
		{total: 15, bps: 333, want: 0},
		{total: 1000, bps: 0, want: 0},
		{total: 1000, bps: 10000, want: 1000},
		{total: 0, bps: 1000, want: 0},
	}

	for _, tc := range testCases {
		fee := service.PlatformFee(tc.total, tc.bps)
		assert.Equal(t, tc.want, fee, "total=%d bps=%d", tc.total, tc.bps)
		assert.GreaterOrEqual(t, tc.total-fee, int64(0))
	}
}
