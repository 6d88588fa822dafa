// Package cart holds the buyer's in-progress selection. A cart is bound to at
// most one seller at a time.
package cart

import (
	"errors"
	"fmt"
)

var (
	ErrDifferentSeller = errors.New("item belongs to a different seller")
	ErrInvalidItem     = errors.New("invalid cart item")
	ErrItemNotFound    = errors.New("item not in cart")
)

type Item struct {
	DishID    string
	Name      string
	ImageURL  string
	UnitPrice int64
	Quantity  int
	SellerID  string
}

// DifferentSellerError is returned when an item from another seller is added
// to a non-empty cart. It matches ErrDifferentSeller with errors.Is.
type DifferentSellerError struct {
	CartSeller string
	ItemSeller string
}

func (e *DifferentSellerError) Error() string {
	return fmt.Sprintf("cart holds items from seller %s, got item from seller %s", e.CartSeller, e.ItemSeller)
}

func (e *DifferentSellerError) Is(target error) bool {
	return target == ErrDifferentSeller
}

type Cart struct {
	sellerID string
	items    []Item
}

func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart from persisted items, re-applying the add rules.
func Restore(items []Item) (*Cart, error) {
	c := New()
	for _, it := range items {
		if err := c.AddItem(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Cart) AddItem(item Item) error {
	if item.DishID == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
		return ErrInvalidItem
	}
	if len(c.items) > 0 && c.sellerID != "" && item.SellerID != c.sellerID {
		return &DifferentSellerError{CartSeller: c.sellerID, ItemSeller: item.SellerID}
	}

	if c.sellerID == "" {
		c.sellerID = item.SellerID
	}

	for i := range c.items {
		if c.items[i].DishID == item.DishID {
			c.items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.items = append(c.items, item)
	return nil
}

// SetQuantity updates a line in place; qty <= 0 removes it.
func (c *Cart) SetQuantity(dishID string, qty int) error {
	if qty <= 0 {
		return c.RemoveItem(dishID)
	}
	for i := range c.items {
		if c.items[i].DishID == dishID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) RemoveItem(dishID string) error {
	for i := range c.items {
		if c.items[i].DishID == dishID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if len(c.items) == 0 {
				c.sellerID = ""
			}
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Clear() {
	c.items = nil
	c.sellerID = ""
}

func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

func (c *Cart) SellerID() string {
	return c.sellerID
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Sellers returns the distinct seller ids found on the lines.
func (c *Cart) Sellers() []string {
	seen := make(map[string]struct{}, 1)
	var out []string
	for _, it := range c.items {
		if _, ok := seen[it.SellerID]; ok {
			continue
		}
		seen[it.SellerID] = struct{}{}
		out = append(out, it.SellerID)
	}
	return out
}
