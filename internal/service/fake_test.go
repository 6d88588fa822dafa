package service_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// memRepo applies status updates with the same compare-and-swap rules as
// the postgres repository.
type memRepo struct {
	mu      sync.Mutex
	orders  map[string]entities.Order
	sellers map[string]entities.Seller
	events  []entities.StatusEvent
}

func newMemRepo(sellers ...entities.Seller) *memRepo {
	r := &memRepo{
		orders:  make(map[string]entities.Order),
		sellers: make(map[string]entities.Seller),
	}
	for _, s := range sellers {
		r.sellers[s.ID] = s
	}
	return r
}

func (r *memRepo) put(o entities.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
}

func (r *memRepo) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (r *memRepo) GetSeller(_ context.Context, sellerID string) (entities.Seller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sellers[sellerID]
	if !ok {
		return entities.Seller{}, entities.ErrSellerNotFound
	}
	return s, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, upd entities.StatusUpdate) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[upd.OrderID]
	if !ok || o.Status != upd.From {
		return false, nil
	}
	if upd.FromPayment != "" && o.PaymentState != upd.FromPayment {
		return false, nil
	}
	if upd.CaptureID != "" && o.PaymentCaptureID != nil {
		return false, nil
	}

	if upd.From != upd.To {
		o.StatusVersion++
	}
	o.Status = upd.To
	o.UpdatedAt = upd.At
	if upd.ToPayment != "" {
		o.PaymentState = upd.ToPayment
	}
	if upd.CaptureID != "" {
		id := upd.CaptureID
		o.PaymentCaptureID = &id
	}
	if upd.PlatformFee != nil {
		o.PlatformFeeAmount = *upd.PlatformFee
	}
	if upd.TransferredAt != nil {
		o.TransferredAt = upd.TransferredAt
	}
	r.orders[o.ID] = o
	return true, nil
}

func (r *memRepo) AppendEvent(_ context.Context, e entities.StatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = int64(len(r.events) + 1)
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) ListExpired(_ context.Context, cutoff time.Time, after entities.Cursor, limit int) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Order
	for _, o := range r.orders {
		if o.Status != entities.StatusRequested || o.PaymentState != entities.PaymentAuthorized {
			continue
		}
		if !o.CreatedAt.Before(cutoff) {
			continue
		}
		if after.ID != "" {
			if o.CreatedAt.Before(after.CreatedAt) || (o.CreatedAt.Equal(after.CreatedAt) && o.ID <= after.ID) {
				continue
			}
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) eventsTo(orderID string, to entities.Status) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.OrderID == orderID && e.ToStatus == to {
			n++
		}
	}
	return n
}
