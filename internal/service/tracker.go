package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/pkg/hub"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
)

type TrackerRepo interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error)
	ListEvents(ctx context.Context, orderID string) ([]entities.StatusEvent, error)
	GetSeller(ctx context.Context, sellerID string) (entities.Seller, error)
	LatestActiveOrder(ctx context.Context, buyerID string) (entities.Order, error)
	ListSellerOrders(ctx context.Context, sellerID string, statuses []entities.Status) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Subscription delivers status changes for one order until Cancel is called
// or the subscribing context ends. Current is the state at subscribe time.
type Subscription struct {
	Current entities.Order
	Updates <-chan entities.StatusChange
	Cancel  func()
}

type trackerService struct {
	logger *slog.Logger
	repo   TrackerRepo
	cache  Cache
	hub    *hub.Hub[entities.StatusChange]
	roles  RoleChecker
	retry  utils.RetryConfig
}

func NewTrackerService(logger *slog.Logger, repo TrackerRepo, cache Cache, h *hub.Hub[entities.StatusChange], roles RoleChecker) *trackerService {
	return &trackerService{
		logger: logger.With(slog.String("service", "tracker")),
		repo:   repo,
		cache:  cache,
		hub:    h,
		roles:  roles,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

// GetActiveOrder returns the buyer's most recent order that is still in progress.
func (s *trackerService) GetActiveOrder(ctx context.Context, buyerID string) (entities.Order, error) {
	order, err := s.repo.LatestActiveOrder(ctx, buyerID)
	if err != nil {
		return entities.Order{}, err
	}
	order.Items, err = s.repo.ListItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *trackerService) GetOrder(ctx context.Context, p entities.Principal, orderID string) (entities.OrderDetails, error) {
	details, err := s.details(ctx, orderID)
	if err != nil {
		return entities.OrderDetails{}, err
	}
	if !s.canView(p, details.Order) {
		return entities.OrderDetails{}, entities.ErrForbidden
	}
	return details, nil
}

func (s *trackerService) Subscribe(ctx context.Context, p entities.Principal, orderID string) (Subscription, error) {
	// subscribe before reading so no change between the read and the
	// subscription is lost
	updates, cancel := s.hub.Subscribe(orderID)

	details, err := s.GetOrder(ctx, p, orderID)
	if err != nil {
		cancel()
		return Subscription{}, err
	}

	done := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cancel()
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	return Subscription{Current: details.Order, Updates: updates, Cancel: stop}, nil
}

// Notify drops the cached view of the order and fans the change out to
// live subscribers.
func (s *trackerService) Notify(ctx context.Context, change entities.StatusChange) {
	s.cache.Delete(change.OrderID)
	n := s.hub.Publish(change.OrderID, change)
	s.logger.DebugContext(ctx, "status change delivered",
		slog.String("order_id", change.OrderID),
		slog.String("status", string(change.To)),
		slog.Int("subscribers", n),
	)
}

func (s *trackerService) ListSellerOrders(ctx context.Context, p entities.Principal, statuses []entities.Status) ([]entities.Order, error) {
	if !s.roles.HasRole(p, entities.RoleSeller) {
		return nil, entities.ErrForbidden
	}
	for _, st := range statuses {
		if !st.Valid() {
			return nil, entities.ErrInvalidStatus
		}
	}
	return s.repo.ListSellerOrders(ctx, p.ID, statuses)
}

func (s *trackerService) canView(p entities.Principal, o entities.Order) bool {
	return p.ID == o.BuyerID || p.ID == o.SellerID || s.roles.HasRole(p, entities.RoleAdmin)
}

func (s *trackerService) details(ctx context.Context, orderID string) (entities.OrderDetails, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var details entities.OrderDetails
		err := details.Unmarshal(data)
		if err == nil {
			return details, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(orderID)
	}

	var details entities.OrderDetails
	fn := func() error {
		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Items, err = s.repo.ListItems(ctx, orderID); err != nil {
			return err
		}
		history, err := s.repo.ListEvents(ctx, orderID)
		if err != nil {
			return err
		}
		seller, err := s.repo.GetSeller(ctx, order.SellerID)
		if err != nil {
			return err
		}
		details = entities.OrderDetails{Order: order, Seller: seller.Contact(), History: history}
		return nil
	}
	if err := utils.Retry(s.retry, fn, entities.ErrOrderNotFound, entities.ErrSellerNotFound, context.Canceled); err != nil {
		return entities.OrderDetails{}, err
	}

	data, err := details.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return details, nil
	}
	s.cache.Set(orderID, data)
	return details, nil
}
