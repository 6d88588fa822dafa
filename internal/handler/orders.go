package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	Transition(ctx context.Context, p entities.Principal, orderID string, to entities.Status) (entities.Order, error)
}

type OrderTracker interface {
	GetActiveOrder(ctx context.Context, buyerID string) (entities.Order, error)
	GetOrder(ctx context.Context, p entities.Principal, orderID string) (entities.OrderDetails, error)
	Subscribe(ctx context.Context, p entities.Principal, orderID string) (service.Subscription, error)
	ListSellerOrders(ctx context.Context, p entities.Principal, statuses []entities.Status) ([]entities.Order, error)
}

type OrderHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderService
	tracker   OrderTracker
	heartbeat time.Duration
}

func NewOrderHandler(logger *slog.Logger, orders OrderService, tracker OrderTracker) *OrderHandler {
	return &OrderHandler{
		logger:    logger.With(slog.String("handler", "orders")),
		validate:  validator.New(),
		orders:    orders,
		tracker:   tracker,
		heartbeat: 15 * time.Second,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/active", h.GetActiveOrder)
		r.Get("/{order_id}", h.GetOrder)
		r.Get("/{order_id}/stream", h.StreamOrder)
		r.Post("/{order_id}/accept", h.Accept)
		r.Post("/{order_id}/reject", h.Reject)
		r.Post("/{order_id}/ready", h.MarkReady)
		r.Post("/{order_id}/cancel", h.Cancel)
		r.Post("/{order_id}/complete", h.Complete)
	})
	r.Get("/seller/orders", h.ListSellerOrders)
}

// GetActiveOrder returns the caller's latest order that is still in progress.
// @Summary      Active order
// @Tags         orders
// @Produce      json
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "No active order"
// @Router       /orders/active [get]
func (h *OrderHandler) GetActiveOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	order, err := h.tracker.GetActiveOrder(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get active order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrder returns an order with its items, chef contact and status history.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  OrderDetails
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse "Order not found"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	orderRequestsInProgress.Inc()
	defer func() {
		orderRequestsInProgress.Dec()
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	p, ok := principalFrom(w, r)
	if !ok {
		return
	}
	orderID, ok := h.orderID(w, r)
	if !ok {
		orderRequestTotal.WithLabelValues("invalid").Inc()
		return
	}

	details, err := h.tracker.GetOrder(r.Context(), p, orderID)
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		writeServiceError(w, r, h.logger, err, "failed to get order")
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderDetailsToJSON(details), http.StatusOK)
}

// Accept moves a requested order to pending and captures the payment.
// @Summary      Accept order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse "Invalid transition or concurrent update"
// @Failure      422       {object}  utils.ErrorResponse "Chef payouts are not enabled"
// @Failure      502       {object}  utils.ErrorResponse "Payment capture failed"
// @Router       /orders/{order_id}/accept [post]
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entities.StatusPending)
}

// Reject declines a requested order and releases the payment hold.
// @Summary      Reject order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Failure      502       {object}  utils.ErrorResponse "Payment cancellation failed"
// @Router       /orders/{order_id}/reject [post]
func (h *OrderHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entities.StatusRejected)
}

// MarkReady tells the buyer the order can be picked up.
// @Summary      Mark order ready
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/ready [post]
func (h *OrderHandler) MarkReady(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entities.StatusReady)
}

// Cancel cancels an order. Buyers may cancel while the order is requested,
// chefs while it is pending.
// @Summary      Cancel order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Failure      502       {object}  utils.ErrorResponse "Payment cancellation failed"
// @Router       /orders/{order_id}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entities.StatusCancelled)
}

// Complete confirms the buyer picked the order up.
// @Summary      Complete order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  Order
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/complete [post]
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entities.StatusCompleted)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, to entities.Status) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Transition(r.Context(), p, orderID, to)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to change order status")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListSellerOrders lists the calling chef's orders, optionally filtered by status.
// @Summary      Chef orders
// @Tags         seller
// @Produce      json
// @Param        status  query     []string  false  "Statuses to include"  collectionFormat(multi)
// @Success      200     {array}   Order
// @Failure      400     {object}  utils.ErrorResponse "Unknown status"
// @Failure      403     {object}  utils.ErrorResponse
// @Router       /seller/orders [get]
func (h *OrderHandler) ListSellerOrders(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	orders, err := h.tracker.ListSellerOrders(r.Context(), p, parseStatuses(r.URL.Query()["status"]))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to list seller orders")
		return
	}
	utils.WriteJSON(w, OrdersToJSON(orders), http.StatusOK)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (string, bool) {
	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return "", false
	}
	return orderID, true
}

// parseStatuses accepts both ?status=a&status=b and ?status=a,b.
func parseStatuses(values []string) []entities.Status {
	var statuses []entities.Status
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, entities.Status(s))
			}
		}
	}
	return statuses
}
