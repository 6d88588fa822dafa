package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	mocks "github.com/SergeyBogomolovv/chef-market/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func agedOrder(id string, status entities.Status, ps entities.PaymentState, age time.Duration) entities.Order {
	o := newTestOrder(id, status, ps)
	o.CreatedAt = time.Now().Add(-age)
	return o
}

func TestSweepService_RejectsExpired(t *testing.T) {
	repo := newMemRepo(testSeller)
	repo.put(agedOrder("old", entities.StatusRequested, entities.PaymentAuthorized, 48*time.Hour))
	repo.put(agedOrder("fresh", entities.StatusRequested, entities.PaymentAuthorized, time.Hour))
	repo.put(agedOrder("accepted", entities.StatusPending, entities.PaymentCaptured, 48*time.Hour))

	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().Cancel(mock.Anything, "pi_old").Return(nil).Once()
	orders, _ := newOrderService(t, repo, gateway)

	sweeper := service.NewSweepService(discardLogger, repo, orders, 24*time.Hour, 10, 2)

	res, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.SweepResult{Checked: 1, Rejected: 1}, res)

	old, _ := repo.GetOrder(context.Background(), "old")
	assert.Equal(t, entities.StatusRejected, old.Status)
	assert.Equal(t, entities.PaymentCancelled, old.PaymentState)

	fresh, _ := repo.GetOrder(context.Background(), "fresh")
	assert.Equal(t, entities.StatusRequested, fresh.Status)

	// a second run finds nothing left to do
	res, err = sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.SweepResult{}, res)
}

func TestSweepService_RacesManualReject(t *testing.T) {
	for i := 0; i < 20; i++ {
		repo := newMemRepo(testSeller)
		repo.put(agedOrder("o1", entities.StatusRequested, entities.PaymentAuthorized, 48*time.Hour))

		var cancels atomic.Int32
		gateway := mocks.NewMockPaymentGateway(t)
		gateway.EXPECT().
			Cancel(mock.Anything, "pi_o1").
			RunAndReturn(func(context.Context, string) error {
				cancels.Add(1)
				return nil
			}).Maybe()
		orders, _ := newOrderService(t, repo, gateway)
		sweeper := service.NewSweepService(discardLogger, repo, orders, 24*time.Hour, 10, 1)

		var (
			wg        sync.WaitGroup
			res       service.SweepResult
			sweepErr  error
			rejectErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			res, sweepErr = sweeper.Sweep(context.Background())
		}()
		go func() {
			defer wg.Done()
			_, rejectErr = orders.Transition(context.Background(), sellerPrincipal, "o1", entities.StatusRejected)
		}()
		wg.Wait()

		require.NoError(t, sweepErr)
		manual := 0
		if rejectErr == nil {
			manual = 1
		}
		assert.Equal(t, 1, res.Rejected+manual, "exactly one rejection must win")
		assert.Equal(t, int32(1), cancels.Load())
		assert.Equal(t, 1, repo.eventsTo("o1", entities.StatusRejected))

		stored, _ := repo.GetOrder(context.Background(), "o1")
		assert.Equal(t, entities.StatusRejected, stored.Status)
	}
}

func TestSweepService_PartialFailure(t *testing.T) {
	now := time.Now()
	page1 := []entities.Order{
		{ID: "a", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "b", CreatedAt: now.Add(-2 * time.Hour)},
	}
	page2 := []entities.Order{
		{ID: "c", CreatedAt: now.Add(-time.Hour)},
	}

	lister := mocks.NewMockExpiredOrderLister(t)
	lister.EXPECT().ListExpired(mock.Anything, mock.Anything, entities.Cursor{}, 2).Return(page1, nil).Once()
	lister.EXPECT().
		ListExpired(mock.Anything, mock.Anything, entities.Cursor{CreatedAt: page1[1].CreatedAt, ID: "b"}, 2).
		Return(page2, nil).Once()

	orders := mocks.NewMockTransitioner(t)
	orders.EXPECT().Transition(mock.Anything, entities.SystemPrincipal, "a", entities.StatusRejected).
		Return(entities.Order{}, nil).Once()
	orders.EXPECT().Transition(mock.Anything, entities.SystemPrincipal, "b", entities.StatusRejected).
		Return(entities.Order{}, entities.ErrConflict).Once()
	orders.EXPECT().Transition(mock.Anything, entities.SystemPrincipal, "c", entities.StatusRejected).
		Return(entities.Order{}, errors.New("gateway timeout")).Once()

	sweeper := service.NewSweepService(discardLogger, lister, orders, time.Hour, 2, 2)

	res, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.SweepResult{Checked: 3, Rejected: 1, Skipped: 1, Failed: 1}, res)
}

func TestSweepService_ListFails(t *testing.T) {
	lister := mocks.NewMockExpiredOrderLister(t)
	lister.EXPECT().ListExpired(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	sweeper := service.NewSweepService(discardLogger, lister, mocks.NewMockTransitioner(t), time.Hour, 10, 1)

	_, err := sweeper.Sweep(context.Background())
	assert.Error(t, err)
}

func TestSweepService_CutoffUsesExpiry(t *testing.T) {
	lister := mocks.NewMockExpiredOrderLister(t)
	lister.EXPECT().
		ListExpired(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			age := time.Since(cutoff)
			return age >= 6*time.Hour && age < 6*time.Hour+time.Minute
		}), entities.Cursor{}, 10).
		Return(nil, nil).Once()

	sweeper := service.NewSweepService(discardLogger, lister, mocks.NewMockTransitioner(t), 6*time.Hour, 10, 1)

	res, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.SweepResult{}, res)
}
