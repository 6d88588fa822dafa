package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "buyer_id", "seller_id", "status", "status_version", "currency",
			"total_amount", "platform_fee_amount", "pickup_at", "payment_authorization_id",
			"payment_state", "created_at", "updated_at",
		).
		Values(
			o.ID, o.BuyerID, o.SellerID, o.Status, o.StatusVersion, o.Currency,
			o.TotalAmount, o.PlatformFeeAmount, o.PickupAt, nullString(o.PaymentAuthorizationID),
			o.PaymentState, o.CreatedAt, o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "dish_id", "name", "quantity", "unit_price")

	for _, it := range items {
		q = q.Values(orderID, it.DishID, it.Name, it.Quantity, it.UnitPrice)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) SetAuthorization(ctx context.Context, orderID, authorizationID string) error {
	query, args := r.qb.Update("orders").
		Set("payment_authorization_id", authorizationID).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set authorization: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListItems(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	query, args := r.qb.Select("order_id", "dish_id", "name", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("dish_id").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	result := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

// UpdateStatus applies the update only if the row still matches the expected
// status (and payment state). It reports whether a row was changed.
func (r *postgresRepo) UpdateStatus(ctx context.Context, upd entities.StatusUpdate) (bool, error) {
	at := upd.At
	if at.IsZero() {
		at = time.Now()
	}

	q := r.qb.Update("orders").
		Set("status", upd.To).
		Set("updated_at", at).
		Where(sq.Eq{"id": upd.OrderID, "status": upd.From})

	if upd.From != upd.To {
		q = q.Set("status_version", sq.Expr("status_version + 1"))
	}
	if upd.FromPayment != "" {
		q = q.Where(sq.Eq{"payment_state": upd.FromPayment})
	}
	if upd.ToPayment != "" {
		q = q.Set("payment_state", upd.ToPayment)
	}
	if upd.CaptureID != "" {
		q = q.Set("payment_capture_id", upd.CaptureID).
			Where(sq.Eq{"payment_capture_id": nil})
	}
	if upd.PlatformFee != nil {
		q = q.Set("platform_fee_amount", *upd.PlatformFee)
	}
	if upd.TransferredAt != nil {
		q = q.Set("transferred_at", *upd.TransferredAt)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

func (r *postgresRepo) AppendEvent(ctx context.Context, e entities.StatusEvent) error {
	query, args := r.qb.Insert("order_status_events").
		Columns("order_id", "from_status", "to_status", "actor_role", "actor_id", "created_at").
		Values(e.OrderID, e.FromStatus, e.ToStatus, e.ActorRole, nullString(e.ActorID), e.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append status event: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListEvents(ctx context.Context, orderID string) ([]entities.StatusEvent, error) {
	query, args := r.qb.Select("id", "order_id", "from_status", "to_status", "actor_role", "actor_id", "created_at").
		From("order_status_events").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id").
		MustSql()

	var events []Event
	if err := r.selectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status events: %w", err)
	}

	result := make([]entities.StatusEvent, 0, len(events))
	for _, e := range events {
		result = append(result, EventToEntity(e))
	}
	return result, nil
}

// ListExpired pages through requested orders created before cutoff whose
// authorization is still untouched, ordered by (created_at, id).
func (r *postgresRepo) ListExpired(ctx context.Context, cutoff time.Time, after entities.Cursor, limit int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": entities.StatusRequested, "payment_state": entities.PaymentAuthorized}).
		Where(sq.Lt{"created_at": cutoff}).
		OrderBy("created_at", "id").
		Limit(uint64(limit))

	if after.ID != "" {
		q = q.Where(sq.Or{
			sq.Gt{"created_at": after.CreatedAt},
			sq.And{sq.Eq{"created_at": after.CreatedAt}, sq.Gt{"id": after.ID}},
		})
	}

	query, args := q.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select expired orders: %w", err)
	}
	return ordersToEntities(orders), nil
}

func (r *postgresRepo) LatestActiveOrder(ctx context.Context, buyerID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID, "status": entities.ActiveStatuses}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get active order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListSellerOrders(ctx context.Context, sellerID string, statuses []entities.Status) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("pickup_at", "created_at")

	if len(statuses) > 0 {
		q = q.Where(sq.Eq{"status": statuses})
	}

	query, args := q.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select seller orders: %w", err)
	}
	return ordersToEntities(orders), nil
}

func (r *postgresRepo) GetSeller(ctx context.Context, sellerID string) (entities.Seller, error) {
	query, args := r.qb.Select("id", "display_name", "phone", "email", "payout_account_id").
		From("sellers").
		Where(sq.Eq{"id": sellerID}).
		MustSql()

	var seller Seller
	err := r.getContext(ctx, &seller, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Seller{}, entities.ErrSellerNotFound
	}
	if err != nil {
		return entities.Seller{}, fmt.Errorf("failed to get seller: %w", err)
	}
	return SellerToEntity(seller), nil
}

func (r *postgresRepo) GetDish(ctx context.Context, dishID string) (entities.Dish, error) {
	query, args := r.qb.Select("id", "seller_id", "name", "price", "image_url", "is_available").
		From("dishes").
		Where(sq.Eq{"id": dishID}).
		MustSql()

	var dish Dish
	err := r.getContext(ctx, &dish, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Dish{}, entities.ErrDishNotFound
	}
	if err != nil {
		return entities.Dish{}, fmt.Errorf("failed to get dish: %w", err)
	}
	return DishToEntity(dish), nil
}

func ordersToEntities(orders []Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Executor(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Executor(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
