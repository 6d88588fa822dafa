package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/payment"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm"

	"github.com/google/uuid"
)

type CheckoutRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
	SetAuthorization(ctx context.Context, orderID, authorizationID string) error
	AppendEvent(ctx context.Context, e entities.StatusEvent) error
	GetSeller(ctx context.Context, sellerID string) (entities.Seller, error)
}

type PickupValidator interface {
	Validate(t time.Time) bool
}

type CheckoutResult struct {
	Order           entities.Order
	PaymentRedirect string
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CheckoutRepo
	carts     CartStore
	gateway   PaymentGateway
	publisher EventPublisher
	pickup    PickupValidator
	currency  string
	now       func() time.Time
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo CheckoutRepo,
	carts CartStore,
	gateway PaymentGateway,
	publisher EventPublisher,
	pickup PickupValidator,
	currency string,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
		pickup:    pickup,
		currency:  currency,
		now:       time.Now,
	}
}

// CheckoutCart checks out the buyer's stored cart and clears it on success.
func (s *checkoutService) CheckoutCart(ctx context.Context, buyer entities.Principal, pickupAt time.Time) (CheckoutResult, error) {
	c, err := s.carts.Get(ctx, buyer.ID)
	if err != nil {
		return CheckoutResult{}, err
	}

	res, err := s.Checkout(ctx, buyer, c, pickupAt)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := s.carts.Delete(ctx, buyer.ID); err != nil {
		s.logger.WarnContext(ctx, "failed to clear cart after checkout",
			slog.String("buyer_id", buyer.ID),
			slog.Any("error", err),
		)
	}
	return res, nil
}

// Checkout creates a requested order for c and authorizes (without capturing)
// its total. Nothing is persisted when authorization fails.
func (s *checkoutService) Checkout(ctx context.Context, buyer entities.Principal, c *cart.Cart, pickupAt time.Time) (CheckoutResult, error) {
	res, err := s.checkout(ctx, buyer, c, pickupAt)
	if err != nil {
		checkouts.WithLabelValues("failed").Inc()
		return CheckoutResult{}, err
	}
	checkouts.WithLabelValues("ok").Inc()
	return res, nil
}

func (s *checkoutService) checkout(ctx context.Context, buyer entities.Principal, c *cart.Cart, pickupAt time.Time) (CheckoutResult, error) {
	if c == nil || c.IsEmpty() {
		return CheckoutResult{}, entities.ErrEmptyCart
	}
	if !s.pickup.Validate(pickupAt) {
		return CheckoutResult{}, entities.ErrInvalidPickup
	}
	sellers := c.Sellers()
	if len(sellers) != 1 {
		return CheckoutResult{}, entities.ErrMultiSellerCart
	}
	sellerID := sellers[0]
	if sellerID == buyer.ID {
		return CheckoutResult{}, entities.ErrSelfOrder
	}

	seller, err := s.repo.GetSeller(ctx, sellerID)
	if err != nil {
		return CheckoutResult{}, err
	}

	now := s.now()
	order := entities.Order{
		ID:           uuid.NewString(),
		BuyerID:      buyer.ID,
		SellerID:     sellerID,
		Status:       entities.StatusRequested,
		Currency:     s.currency,
		TotalAmount:  c.Total(),
		PickupAt:     pickupAt,
		CreatedAt:    now,
		UpdatedAt:    now,
		PaymentState: entities.PaymentAuthorized,
	}
	for _, it := range c.Items() {
		order.Items = append(order.Items, entities.LineItem{
			OrderID:   order.ID,
			DishID:    it.DishID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	var auth payment.Authorization
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return err
		}
		if err := s.repo.AppendEvent(ctx, entities.StatusEvent{
			OrderID:   order.ID,
			ToStatus:  entities.StatusRequested,
			ActorRole: entities.RoleBuyer,
			ActorID:   buyer.ID,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		var err error
		auth, err = s.gateway.Authorize(ctx, payment.AuthorizeRequest{
			Amount:             order.TotalAmount,
			Currency:           order.Currency,
			Reference:          order.ID,
			DestinationAccount: seller.PayoutAccountID,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", entities.ErrPaymentAuthorization, err)
		}
		return s.repo.SetAuthorization(ctx, order.ID, auth.ID)
	})
	if err != nil {
		if auth.ID != "" {
			s.voidOrphan(ctx, order.ID, auth.ID)
		}
		if errors.Is(err, entities.ErrPaymentAuthorization) {
			return CheckoutResult{}, err
		}
		return CheckoutResult{}, fmt.Errorf("failed to create order: %w", err)
	}
	order.PaymentAuthorizationID = auth.ID

	s.logger.InfoContext(ctx, "order requested",
		slog.String("order_id", order.ID),
		slog.String("seller_id", order.SellerID),
		slog.Int64("total", order.TotalAmount),
	)

	change := entities.StatusChange{
		OrderID:  order.ID,
		BuyerID:  order.BuyerID,
		SellerID: order.SellerID,
		To:       entities.StatusRequested,
		Actor:    entities.RoleBuyer,
		At:       now,
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), change); err != nil {
		publishFailures.Inc()
		s.logger.ErrorContext(ctx, "failed to publish status change", slog.String("order_id", order.ID), slog.Any("error", err))
	}

	return CheckoutResult{Order: order, PaymentRedirect: auth.RedirectURL}, nil
}

// voidOrphan cancels an authorization whose order row was rolled back.
func (s *checkoutService) voidOrphan(ctx context.Context, orderID, authorizationID string) {
	if err := s.gateway.Cancel(context.WithoutCancel(ctx), authorizationID); err != nil {
		s.logger.ErrorContext(ctx, "failed to void authorization of rolled back order",
			slog.String("order_id", orderID),
			slog.String("authorization_id", authorizationID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.WarnContext(ctx, "voided authorization of rolled back order",
		slog.String("order_id", orderID),
		slog.String("authorization_id", authorizationID),
	)
}
