package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
)

type DishRepo interface {
	GetDish(ctx context.Context, dishID string) (entities.Dish, error)
}

type CartStore interface {
	Get(ctx context.Context, buyerID string) (*cart.Cart, error)
	Save(ctx context.Context, buyerID string, c *cart.Cart) error
	Delete(ctx context.Context, buyerID string) error
}

type cartService struct {
	logger *slog.Logger
	dishes DishRepo
	store  CartStore
}

func NewCartService(logger *slog.Logger, dishes DishRepo, store CartStore) *cartService {
	return &cartService{
		logger: logger.With(slog.String("service", "cart")),
		dishes: dishes,
		store:  store,
	}
}

func (s *cartService) Get(ctx context.Context, buyerID string) (*cart.Cart, error) {
	return s.store.Get(ctx, buyerID)
}

// AddItem resolves price and seller from the catalog, never from the caller.
func (s *cartService) AddItem(ctx context.Context, buyerID, dishID string, quantity int) (*cart.Cart, error) {
	dish, err := s.dishes.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if !dish.IsAvailable {
		return nil, entities.ErrDishUnavailable
	}

	c, err := s.store.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	err = c.AddItem(cart.Item{
		DishID:    dish.ID,
		Name:      dish.Name,
		ImageURL:  dish.ImageURL,
		UnitPrice: dish.Price,
		Quantity:  quantity,
		SellerID:  dish.SellerID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, buyerID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cartService) SetQuantity(ctx context.Context, buyerID, dishID string, quantity int) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if err := c.SetQuantity(dishID, quantity); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, buyerID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *cartService) RemoveItem(ctx context.Context, buyerID, dishID string) (*cart.Cart, error) {
	return s.SetQuantity(ctx, buyerID, dishID, 0)
}

func (s *cartService) Clear(ctx context.Context, buyerID string) error {
	return s.store.Delete(ctx, buyerID)
}
