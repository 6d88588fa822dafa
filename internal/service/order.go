package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/payment"
	"github.com/SergeyBogomolovv/chef-market/pkg/trm"

	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetSeller(ctx context.Context, sellerID string) (entities.Seller, error)

	// UpdateStatus is a compare-and-swap; false means the row no longer
	// matched the expected state.
	UpdateStatus(ctx context.Context, upd entities.StatusUpdate) (bool, error)
	AppendEvent(ctx context.Context, e entities.StatusEvent) error
}

type PaymentGateway interface {
	Authorize(ctx context.Context, req payment.AuthorizeRequest) (payment.Authorization, error)
	Capture(ctx context.Context, authorizationID string, req payment.CaptureRequest) (string, error)
	Cancel(ctx context.Context, authorizationID string) error
	DestinationEnabled(ctx context.Context, accountID string) (bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, change entities.StatusChange) error
}

type RoleChecker interface {
	HasRole(p entities.Principal, role entities.Role) bool
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	gateway   PaymentGateway
	publisher EventPublisher
	roles     RoleChecker
	feeBps    int
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	gateway PaymentGateway,
	publisher EventPublisher,
	roles RoleChecker,
	feeBps int,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		roles:     roles,
		feeBps:    feeBps,
		now:       time.Now,
	}
}

// PlatformFee is the marketplace share of total in basis points, rounded half up.
func PlatformFee(total int64, bps int) int64 {
	return decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(int64(bps))).
		Div(decimal.NewFromInt(10000)).
		Round(0).
		IntPart()
}

func (s *orderService) Accept(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	return s.Transition(ctx, p, orderID, entities.StatusPending)
}

func (s *orderService) Reject(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	return s.Transition(ctx, p, orderID, entities.StatusRejected)
}

func (s *orderService) MarkReady(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	return s.Transition(ctx, p, orderID, entities.StatusReady)
}

func (s *orderService) Cancel(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	return s.Transition(ctx, p, orderID, entities.StatusCancelled)
}

func (s *orderService) Complete(ctx context.Context, p entities.Principal, orderID string) (entities.Order, error) {
	return s.Transition(ctx, p, orderID, entities.StatusCompleted)
}

// Transition moves the order along one edge of the status table on behalf of p.
func (s *orderService) Transition(ctx context.Context, p entities.Principal, orderID string, to entities.Status) (entities.Order, error) {
	if !to.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	from := order.Status
	if !entities.CanTransition(from, to) {
		return entities.Order{}, &entities.InvalidTransitionError{From: from, To: to}
	}

	actor, ok := s.actorFor(p, order, to)
	if !ok {
		return entities.Order{}, entities.ErrForbidden
	}

	switch {
	case from == entities.StatusRequested && to == entities.StatusPending:
		order, err = s.capture(ctx, order, p, actor)
	case from == entities.StatusRequested:
		order, err = s.void(ctx, order, to, p, actor)
	default:
		order, err = s.commit(ctx, order, entities.StatusUpdate{OrderID: order.ID, From: from, To: to}, p, actor)
	}
	if err != nil {
		transitionsFailed.WithLabelValues(string(from), string(to)).Inc()
		return entities.Order{}, err
	}

	s.announce(ctx, order, from, actor)
	return order, nil
}

// Override sets any status without running payment side effects.
func (s *orderService) Override(ctx context.Context, p entities.Principal, orderID string, to entities.Status) (entities.Order, error) {
	if !s.roles.HasRole(p, entities.RoleAdmin) {
		return entities.Order{}, entities.ErrForbidden
	}
	if !to.Valid() {
		return entities.Order{}, entities.ErrInvalidStatus
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	from := order.Status
	if from.IsTerminal() || from == to {
		return entities.Order{}, &entities.InvalidTransitionError{From: from, To: to}
	}
	// a gateway call is in flight for this order
	if order.PaymentState == entities.PaymentCapturing || order.PaymentState == entities.PaymentCancelling {
		return entities.Order{}, entities.ErrConflict
	}

	upd := entities.StatusUpdate{
		OrderID:     order.ID,
		From:        from,
		To:          to,
		FromPayment: order.PaymentState,
	}
	order, err = s.commit(ctx, order, upd, p, entities.RoleAdmin)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.WarnContext(ctx, "order status overridden",
		slog.String("order_id", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("admin_id", p.ID),
		slog.String("payment_state", string(order.PaymentState)),
	)
	s.announce(ctx, order, from, entities.RoleAdmin)
	return order, nil
}

func (s *orderService) actorFor(p entities.Principal, order entities.Order, to entities.Status) (entities.Role, bool) {
	for _, t := range entities.Transitions {
		if t.From != order.Status || t.To != to {
			continue
		}
		switch t.Actor {
		case entities.RoleSeller:
			if p.ID == order.SellerID {
				return entities.RoleSeller, true
			}
		case entities.RoleBuyer:
			if p.ID == order.BuyerID {
				return entities.RoleBuyer, true
			}
		case entities.RoleSystem:
			if p.Is(entities.RoleSystem) {
				return entities.RoleSystem, true
			}
		}
	}
	if s.roles.HasRole(p, entities.RoleAdmin) {
		return entities.RoleAdmin, true
	}
	return "", false
}

func (s *orderService) capture(ctx context.Context, order entities.Order, p entities.Principal, actor entities.Role) (entities.Order, error) {
	if order.Captured() || order.PaymentState == entities.PaymentCaptured {
		return entities.Order{}, entities.ErrAlreadyCaptured
	}
	if order.PaymentState != entities.PaymentAuthorized {
		return entities.Order{}, entities.ErrConflict
	}

	seller, err := s.repo.GetSeller(ctx, order.SellerID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get seller: %w", err)
	}
	enabled, err := s.gateway.DestinationEnabled(ctx, seller.PayoutAccountID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPaymentCapture, err)
	}
	if !enabled {
		return entities.Order{}, entities.ErrPayoutsNotEnabled
	}

	if err := s.claim(ctx, order, entities.PaymentCapturing); err != nil {
		return entities.Order{}, err
	}

	fee := PlatformFee(order.TotalAmount, s.feeBps)
	captureID, err := s.gateway.Capture(ctx, order.PaymentAuthorizationID, payment.CaptureRequest{
		ApplicationFee:     fee,
		DestinationAccount: seller.PayoutAccountID,
	})
	if err == nil && captureID == "" {
		err = payment.ErrDeclined
	}
	if err != nil {
		s.release(ctx, order, entities.PaymentCapturing)
		captures.WithLabelValues("failed").Inc()
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPaymentCapture, err)
	}
	captures.WithLabelValues("ok").Inc()

	transferredAt := s.now()
	upd := entities.StatusUpdate{
		OrderID:       order.ID,
		From:          entities.StatusRequested,
		To:            entities.StatusPending,
		FromPayment:   entities.PaymentCapturing,
		ToPayment:     entities.PaymentCaptured,
		CaptureID:     captureID,
		PlatformFee:   &fee,
		TransferredAt: &transferredAt,
	}
	updated, err := s.commit(context.WithoutCancel(ctx), order, upd, p, actor)
	if err != nil {
		s.logger.ErrorContext(ctx, "payment captured but order not advanced",
			slog.String("order_id", order.ID),
			slog.String("capture_id", captureID),
			slog.Any("error", err),
		)
		return entities.Order{}, err
	}
	return updated, nil
}

func (s *orderService) void(ctx context.Context, order entities.Order, to entities.Status, p entities.Principal, actor entities.Role) (entities.Order, error) {
	if order.Captured() || order.PaymentState == entities.PaymentCaptured {
		return entities.Order{}, entities.ErrAlreadyCaptured
	}
	if order.PaymentState != entities.PaymentAuthorized {
		return entities.Order{}, entities.ErrConflict
	}

	if err := s.claim(ctx, order, entities.PaymentCancelling); err != nil {
		return entities.Order{}, err
	}

	if order.PaymentAuthorizationID != "" {
		if err := s.gateway.Cancel(ctx, order.PaymentAuthorizationID); err != nil {
			s.release(ctx, order, entities.PaymentCancelling)
			return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPaymentCancel, err)
		}
	}

	upd := entities.StatusUpdate{
		OrderID:     order.ID,
		From:        entities.StatusRequested,
		To:          to,
		FromPayment: entities.PaymentCancelling,
		ToPayment:   entities.PaymentCancelled,
	}
	return s.commit(context.WithoutCancel(ctx), order, upd, p, actor)
}

// claim reserves the authorization for a single gateway call. Only one
// concurrent transition can win it.
func (s *orderService) claim(ctx context.Context, order entities.Order, state entities.PaymentState) error {
	ok, err := s.repo.UpdateStatus(ctx, entities.StatusUpdate{
		OrderID:     order.ID,
		From:        entities.StatusRequested,
		To:          entities.StatusRequested,
		FromPayment: entities.PaymentAuthorized,
		ToPayment:   state,
		At:          s.now(),
	})
	if err != nil {
		return fmt.Errorf("failed to claim payment: %w", err)
	}
	if !ok {
		return entities.ErrConflict
	}
	return nil
}

func (s *orderService) release(ctx context.Context, order entities.Order, state entities.PaymentState) {
	ok, err := s.repo.UpdateStatus(context.WithoutCancel(ctx), entities.StatusUpdate{
		OrderID:     order.ID,
		From:        entities.StatusRequested,
		To:          entities.StatusRequested,
		FromPayment: state,
		ToPayment:   entities.PaymentAuthorized,
		At:          s.now(),
	})
	if err != nil || !ok {
		s.logger.ErrorContext(ctx, "failed to release payment claim",
			slog.String("order_id", order.ID),
			slog.String("state", string(state)),
			slog.Bool("updated", ok),
			slog.Any("error", err),
		)
	}
}

// commit applies upd and records the history event in one transaction.
func (s *orderService) commit(ctx context.Context, order entities.Order, upd entities.StatusUpdate, p entities.Principal, actor entities.Role) (entities.Order, error) {
	if upd.At.IsZero() {
		upd.At = s.now()
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.repo.UpdateStatus(ctx, upd)
		if err != nil {
			return err
		}
		if !ok {
			return entities.ErrConflict
		}
		return s.repo.AppendEvent(ctx, entities.StatusEvent{
			OrderID:    order.ID,
			FromStatus: upd.From,
			ToStatus:   upd.To,
			ActorRole:  actor,
			ActorID:    p.ID,
			CreatedAt:  upd.At,
		})
	})
	if err != nil {
		if errors.Is(err, entities.ErrConflict) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = upd.To
	order.StatusVersion++
	order.UpdatedAt = upd.At
	if upd.ToPayment != "" {
		order.PaymentState = upd.ToPayment
	}
	if upd.CaptureID != "" {
		id := upd.CaptureID
		order.PaymentCaptureID = &id
	}
	if upd.PlatformFee != nil {
		order.PlatformFeeAmount = *upd.PlatformFee
	}
	if upd.TransferredAt != nil {
		order.TransferredAt = upd.TransferredAt
	}
	return order, nil
}

func (s *orderService) announce(ctx context.Context, order entities.Order, from entities.Status, actor entities.Role) {
	transitions.WithLabelValues(string(from), string(order.Status), string(actor)).Inc()

	change := entities.StatusChange{
		OrderID:       order.ID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		From:          from,
		To:            order.Status,
		StatusVersion: order.StatusVersion,
		Actor:         actor,
		At:            order.UpdatedAt,
	}
	if err := s.publisher.Publish(context.WithoutCancel(ctx), change); err != nil {
		publishFailures.Inc()
		s.logger.ErrorContext(ctx, "failed to publish status change",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.DebugContext(ctx, "order status changed",
		slog.String("order_id", order.ID),
		slog.String("from", string(from)),
		slog.String("to", string(order.Status)),
		slog.String("actor", string(actor)),
	)
}
