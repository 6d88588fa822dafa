package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type PaymentState string

const (
	PaymentAuthorized PaymentState = "authorized"
	PaymentCapturing  PaymentState = "capturing"
	PaymentCaptured   PaymentState = "captured"
	PaymentCancelling PaymentState = "cancelling"
	PaymentCancelled  PaymentState = "cancelled"
)

// Amounts are in minor currency units.
type Order struct {
	ID                     string
	BuyerID                string
	SellerID               string
	Status                 Status
	StatusVersion          int
	Currency               string
	TotalAmount            int64
	PlatformFeeAmount      int64
	PickupAt               time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
	PaymentAuthorizationID string
	PaymentCaptureID       *string
	PaymentState           PaymentState
	TransferredAt          *time.Time

	Items []LineItem
}

func (o Order) SellerNetAmount() int64 {
	return o.TotalAmount - o.PlatformFeeAmount
}

func (o Order) Captured() bool {
	return o.PaymentCaptureID != nil && *o.PaymentCaptureID != ""
}

// LineItem snapshots the dish price at order time.
type LineItem struct {
	OrderID   string
	DishID    string
	Name      string
	Quantity  int
	UnitPrice int64
}

// StatusUpdate is a conditional write: it applies only while the row still
// has From status (and FromPayment, when set).
type StatusUpdate struct {
	OrderID string
	From    Status
	To      Status

	FromPayment PaymentState
	ToPayment   PaymentState

	CaptureID     string
	PlatformFee   *int64
	TransferredAt *time.Time
	At            time.Time
}

type StatusEvent struct {
	ID         int64
	OrderID    string
	FromStatus Status
	ToStatus   Status
	ActorRole  Role
	ActorID    string
	CreatedAt  time.Time
}

// StatusChange is broadcast after a transition commits.
type StatusChange struct {
	OrderID       string
	BuyerID       string
	SellerID      string
	From          Status
	To            Status
	StatusVersion int
	Actor         Role
	At            time.Time
}

// Cursor is a keyset position over (created_at, id).
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// OrderDetails is the tracker view of a single order.
type OrderDetails struct {
	Order   Order
	Seller  SellerContact
	History []StatusEvent
}

func (d *OrderDetails) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *OrderDetails) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(d)
}

func init() {
	gob.Register(OrderDetails{})
	gob.Register(Order{})
	gob.Register(LineItem{})
	gob.Register(StatusEvent{})
	gob.Register(SellerContact{})
}
