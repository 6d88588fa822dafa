package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
)

var orderColumns = []string{
	"id", "buyer_id", "seller_id", "status", "status_version", "currency",
	"total_amount", "platform_fee_amount", "pickup_at", "payment_authorization_id",
	"payment_capture_id", "payment_state", "transferred_at", "created_at", "updated_at",
}

type Order struct {
	ID                     string         `db:"id"`
	BuyerID                string         `db:"buyer_id"`
	SellerID               string         `db:"seller_id"`
	Status                 string         `db:"status"`
	StatusVersion          int            `db:"status_version"`
	Currency               string         `db:"currency"`
	TotalAmount            int64          `db:"total_amount"`
	PlatformFeeAmount      int64          `db:"platform_fee_amount"`
	PickupAt               time.Time      `db:"pickup_at"`
	PaymentAuthorizationID sql.NullString `db:"payment_authorization_id"`
	PaymentCaptureID       sql.NullString `db:"payment_capture_id"`
	PaymentState           string         `db:"payment_state"`
	TransferredAt          sql.NullTime   `db:"transferred_at"`
	CreatedAt              time.Time      `db:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at"`
}

type Item struct {
	OrderID   string `db:"order_id"`
	DishID    string `db:"dish_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
}

type Event struct {
	ID         int64          `db:"id"`
	OrderID    string         `db:"order_id"`
	FromStatus string         `db:"from_status"`
	ToStatus   string         `db:"to_status"`
	ActorRole  string         `db:"actor_role"`
	ActorID    sql.NullString `db:"actor_id"`
	CreatedAt  time.Time      `db:"created_at"`
}

type Seller struct {
	ID              string         `db:"id"`
	DisplayName     string         `db:"display_name"`
	Phone           sql.NullString `db:"phone"`
	Email           sql.NullString `db:"email"`
	PayoutAccountID sql.NullString `db:"payout_account_id"`
}

type Dish struct {
	ID          string         `db:"id"`
	SellerID    string         `db:"seller_id"`
	Name        string         `db:"name"`
	Price       int64          `db:"price"`
	ImageURL    sql.NullString `db:"image_url"`
	IsAvailable bool           `db:"is_available"`
}

func OrderToEntity(o Order) entities.Order {
	order := entities.Order{
		ID:                     o.ID,
		BuyerID:                o.BuyerID,
		SellerID:               o.SellerID,
		Status:                 entities.Status(o.Status),
		StatusVersion:          o.StatusVersion,
		Currency:               o.Currency,
		TotalAmount:            o.TotalAmount,
		PlatformFeeAmount:      o.PlatformFeeAmount,
		PickupAt:               o.PickupAt,
		CreatedAt:              o.CreatedAt,
		UpdatedAt:              o.UpdatedAt,
		PaymentAuthorizationID: nullStringToString(o.PaymentAuthorizationID),
		PaymentState:           entities.PaymentState(o.PaymentState),
	}
	if o.PaymentCaptureID.Valid {
		id := o.PaymentCaptureID.String
		order.PaymentCaptureID = &id
	}
	if o.TransferredAt.Valid {
		t := o.TransferredAt.Time
		order.TransferredAt = &t
	}
	return order
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		OrderID:   i.OrderID,
		DishID:    i.DishID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
	}
}

func EventToEntity(e Event) entities.StatusEvent {
	return entities.StatusEvent{
		ID:         e.ID,
		OrderID:    e.OrderID,
		FromStatus: entities.Status(e.FromStatus),
		ToStatus:   entities.Status(e.ToStatus),
		ActorRole:  entities.Role(e.ActorRole),
		ActorID:    nullStringToString(e.ActorID),
		CreatedAt:  e.CreatedAt,
	}
}

func SellerToEntity(s Seller) entities.Seller {
	return entities.Seller{
		ID:              s.ID,
		DisplayName:     s.DisplayName,
		Phone:           nullStringToString(s.Phone),
		Email:           nullStringToString(s.Email),
		PayoutAccountID: nullStringToString(s.PayoutAccountID),
	}
}

func DishToEntity(d Dish) entities.Dish {
	return entities.Dish{
		ID:          d.ID,
		SellerID:    d.SellerID,
		Name:        d.Name,
		Price:       d.Price,
		ImageURL:    nullStringToString(d.ImageURL),
		IsAvailable: d.IsAvailable,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
