package handler

import (
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/pickup"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
)

// AddItemRequest adds a dish to the buyer's cart
type AddItemRequest struct {
	DishID   string `json:"dish_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0,lte=99"`
}

// SetQuantityRequest changes a cart line, zero removes it
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}

// CheckoutRequest places an order for the current cart
type CheckoutRequest struct {
	PickupAt time.Time `json:"pickup_at" validate:"required"`
}

// OverrideRequest forces an order into a status
type OverrideRequest struct {
	Status string `json:"status" validate:"required,oneof=requested pending ready completed rejected cancelled"`
}

// CartItem is a line in the cart
type CartItem struct {
	DishID    string `json:"dish_id"`
	Name      string `json:"name,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	SellerID  string `json:"seller_id"`
}

// Cart is the buyer's cart
type Cart struct {
	SellerID string     `json:"seller_id,omitempty"`
	Items    []CartItem `json:"items"`
	Total    int64      `json:"total"`
}

// LineItem is an order line with the price at order time
type LineItem struct {
	DishID    string `json:"dish_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Order is an order as seen by its participants
type Order struct {
	ID                string     `json:"id"`
	BuyerID           string     `json:"buyer_id"`
	SellerID          string     `json:"seller_id"`
	Status            string     `json:"status"`
	StatusVersion     int        `json:"status_version"`
	Currency          string     `json:"currency"`
	TotalAmount       int64      `json:"total_amount"`
	PlatformFeeAmount int64      `json:"platform_fee_amount"`
	SellerNetAmount   int64      `json:"seller_net_amount"`
	PickupAt          time.Time  `json:"pickup_at"`
	CreatedAt         time.Time  `json:"created_at"`
	PaymentState      string     `json:"payment_state"`
	Captured          bool       `json:"captured"`
	TransferredAt     *time.Time `json:"transferred_at,omitempty"`
	Items             []LineItem `json:"items,omitempty"`
}

// SellerContact is the chef contact shown to the buyer
type SellerContact struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

// StatusEvent is one entry of the order history
type StatusEvent struct {
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	ActorRole string    `json:"actor_role"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetails is an order with its seller and history
type OrderDetails struct {
	Order   Order         `json:"order"`
	Seller  SellerContact `json:"seller"`
	History []StatusEvent `json:"history"`
}

// CheckoutResponse is returned after a successful checkout
type CheckoutResponse struct {
	OrderID         string `json:"order_id"`
	Status          string `json:"status"`
	TotalAmount     int64  `json:"total_amount"`
	PaymentRedirect string `json:"payment_redirect,omitempty"`
}

// PickupValidation reports whether a pickup time is allowed
type PickupValidation struct {
	Valid    bool      `json:"valid"`
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
	OpensAt  string    `json:"opens_at"`
	ClosesAt string    `json:"closes_at"`
}

// StatusUpdate is pushed over the order stream
type StatusUpdate struct {
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PreviousState string    `json:"previous_status,omitempty"`
	StatusVersion int       `json:"status_version"`
	At            time.Time `json:"at"`
}

// SweepResponse summarizes an expiry sweep
type SweepResponse struct {
	Checked  int `json:"checked"`
	Rejected int `json:"rejected"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func CartToJSON(c *cart.Cart) Cart {
	items := c.Items()
	res := Cart{
		SellerID: c.SellerID(),
		Items:    make([]CartItem, 0, len(items)),
		Total:    c.Total(),
	}
	for _, it := range items {
		res.Items = append(res.Items, CartItem{
			DishID:    it.DishID,
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			SellerID:  it.SellerID,
		})
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	res := Order{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		SellerID:          o.SellerID,
		Status:            string(o.Status),
		StatusVersion:     o.StatusVersion,
		Currency:          o.Currency,
		TotalAmount:       o.TotalAmount,
		PlatformFeeAmount: o.PlatformFeeAmount,
		SellerNetAmount:   o.SellerNetAmount(),
		PickupAt:          o.PickupAt,
		CreatedAt:         o.CreatedAt,
		PaymentState:      string(o.PaymentState),
		Captured:          o.Captured(),
		TransferredAt:     o.TransferredAt,
	}
	if len(o.Items) > 0 {
		res.Items = make([]LineItem, 0, len(o.Items))
		for _, it := range o.Items {
			res.Items = append(res.Items, LineItem{
				DishID:    it.DishID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
	}
	return res
}

func OrdersToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func OrderDetailsToJSON(d entities.OrderDetails) OrderDetails {
	res := OrderDetails{
		Order: OrderEntityToJSON(d.Order),
		Seller: SellerContact{
			ID:          d.Seller.ID,
			DisplayName: d.Seller.DisplayName,
			Phone:       d.Seller.Phone,
			Email:       d.Seller.Email,
		},
		History: make([]StatusEvent, 0, len(d.History)),
	}
	for _, e := range d.History {
		res.History = append(res.History, StatusEvent{
			From:      string(e.FromStatus),
			To:        string(e.ToStatus),
			ActorRole: string(e.ActorRole),
			CreatedAt: e.CreatedAt,
		})
	}
	return res
}

func CheckoutResultToJSON(r service.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:         r.Order.ID,
		Status:          string(r.Order.Status),
		TotalAmount:     r.Order.TotalAmount,
		PaymentRedirect: r.PaymentRedirect,
	}
}

func PickupValidationToJSON(valid bool, w pickup.Window) PickupValidation {
	return PickupValidation{
		Valid:    valid,
		Earliest: w.Earliest,
		Latest:   w.Latest,
		OpensAt:  clock(w.DailyStart),
		ClosesAt: clock(w.DailyEnd),
	}
}

func StatusUpdateFromOrder(o entities.Order) StatusUpdate {
	return StatusUpdate{
		OrderID:       o.ID,
		Status:        string(o.Status),
		StatusVersion: o.StatusVersion,
		At:            o.UpdatedAt,
	}
}

func StatusUpdateFromChange(c entities.StatusChange) StatusUpdate {
	return StatusUpdate{
		OrderID:       c.OrderID,
		Status:        string(c.To),
		PreviousState: string(c.From),
		StatusVersion: c.StatusVersion,
		At:            c.At,
	}
}

func SweepResultToJSON(r service.SweepResult) SweepResponse {
	return SweepResponse(r)
}

func clock(d time.Duration) string {
	return time.Time{}.Add(d).Format("15:04")
}
