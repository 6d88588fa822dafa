package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderOverrider interface {
	Override(ctx context.Context, p entities.Principal, orderID string, to entities.Status) (entities.Order, error)
}

type Sweeper interface {
	Sweep(ctx context.Context) (service.SweepResult, error)
}

type RoleChecker interface {
	HasRole(p entities.Principal, role entities.Role) bool
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderOverrider
	sweeper  Sweeper
	roles    RoleChecker
}

func NewAdminHandler(logger *slog.Logger, orders OrderOverrider, sweeper Sweeper, roles RoleChecker) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		orders:   orders,
		sweeper:  sweeper,
		roles:    roles,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Put("/orders/{order_id}/status", h.OverrideStatus)
		r.Post("/sweep", h.Sweep)
	})
}

// OverrideStatus forces a non-terminal order into any status. No payment
// action is taken.
// @Summary      Override order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        order_id  path      string           true  "Order ID"
// @Param        status    body      OverrideRequest  true  "Target status"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse
// @Failure      403       {object}  utils.ErrorResponse
// @Failure      404       {object}  utils.ErrorResponse
// @Failure      409       {object}  utils.ErrorResponse "Order is terminal or a payment call is in flight"
// @Router       /admin/orders/{order_id}/status [put]
func (h *AdminHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req OverrideRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Override(r.Context(), p, orderID, entities.Status(req.Status))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to override order status")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// Sweep rejects requested orders the chef never answered.
// @Summary      Run expiry sweep
// @Tags         admin
// @Produce      json
// @Success      200  {object}  SweepResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /admin/sweep [post]
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}
	if !h.roles.HasRole(p, entities.RoleAdmin) {
		utils.WriteError(w, entities.ErrForbidden.Error(), http.StatusForbidden)
		return
	}

	res, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to sweep expired orders")
		return
	}
	h.logger.InfoContext(r.Context(), "sweep triggered", slog.String("admin", p.ID), slog.Int("rejected", res.Rejected))
	utils.WriteJSON(w, SweepResultToJSON(res), http.StatusOK)
}
