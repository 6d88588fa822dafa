package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/internal/pickup"
	"github.com/SergeyBogomolovv/chef-market/internal/service"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	Get(ctx context.Context, buyerID string) (*cart.Cart, error)
	AddItem(ctx context.Context, buyerID, dishID string, quantity int) (*cart.Cart, error)
	SetQuantity(ctx context.Context, buyerID, dishID string, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, buyerID, dishID string) (*cart.Cart, error)
	Clear(ctx context.Context, buyerID string) error
}

type CheckoutService interface {
	CheckoutCart(ctx context.Context, buyer entities.Principal, pickupAt time.Time) (service.CheckoutResult, error)
}

type PickupScheduler interface {
	Window() pickup.Window
	ValidateString(candidate string) bool
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	carts    CartService
	checkout CheckoutService
	pickup   PickupScheduler
}

func NewCartHandler(logger *slog.Logger, carts CartService, checkout CheckoutService, pickup PickupScheduler) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		carts:    carts,
		checkout: checkout,
		pickup:   pickup,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{dish_id}", h.SetQuantity)
		r.Delete("/items/{dish_id}", h.RemoveItem)
	})
	r.Post("/checkout", h.Checkout)
	r.Get("/pickup/validate", h.ValidatePickup)
}

// GetCart returns the caller's cart.
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	c, err := h.carts.Get(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to get cart")
		return
	}
	utils.WriteJSON(w, CartToJSON(c), http.StatusOK)
}

// AddItem adds a dish to the cart. A cart holds dishes of a single chef.
// @Summary      Add dish to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        item  body      AddItemRequest  true  "Dish and quantity"
// @Success      200   {object}  Cart
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      404   {object}  utils.ErrorResponse "Dish not found"
// @Failure      409   {object}  utils.ErrorResponse "Dish belongs to another chef"
// @Failure      422   {object}  utils.ErrorResponse "Dish is not available"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	c, err := h.carts.AddItem(r.Context(), p.ID, req.DishID, req.Quantity)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to add item to cart")
		return
	}
	utils.WriteJSON(w, CartToJSON(c), http.StatusOK)
}

// SetQuantity changes the quantity of a cart line.
// @Summary      Set cart line quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        dish_id  path      string              true  "Dish ID"
// @Param        item     body      SetQuantityRequest  true  "New quantity, 0 removes the line"
// @Success      200      {object}  Cart
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      404      {object}  utils.ErrorResponse "Dish is not in the cart"
// @Router       /cart/items/{dish_id} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req SetQuantityRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	c, err := h.carts.SetQuantity(r.Context(), p.ID, chi.URLParam(r, "dish_id"), req.Quantity)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to update cart")
		return
	}
	utils.WriteJSON(w, CartToJSON(c), http.StatusOK)
}

// RemoveItem removes a dish from the cart.
// @Summary      Remove dish from cart
// @Tags         cart
// @Produce      json
// @Param        dish_id  path      string  true  "Dish ID"
// @Success      200      {object}  Cart
// @Failure      404      {object}  utils.ErrorResponse "Dish is not in the cart"
// @Router       /cart/items/{dish_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	c, err := h.carts.RemoveItem(r.Context(), p.ID, chi.URLParam(r, "dish_id"))
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to remove item from cart")
		return
	}
	utils.WriteJSON(w, CartToJSON(c), http.StatusOK)
}

// ClearCart empties the cart.
// @Summary      Clear cart
// @Tags         cart
// @Success      204
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	if err := h.carts.Clear(r.Context(), p.ID); err != nil {
		writeServiceError(w, r, h.logger, err, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Checkout places an order for the cart and authorizes the payment.
// @Summary      Checkout
// @Description  Creates a requested order for the cart's chef. The card is authorized, not charged, until the chef accepts.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      CheckoutRequest  true  "Pickup time, RFC 3339"
// @Success      201       {object}  CheckoutResponse
// @Failure      400       {object}  utils.ErrorResponse "Empty cart, invalid pickup time or mixed chefs"
// @Failure      404       {object}  utils.ErrorResponse "Chef not found"
// @Failure      502       {object}  utils.ErrorResponse "Payment authorization failed"
// @Router       /checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.checkout.CheckoutCart(r.Context(), p, req.PickupAt)
	if err != nil {
		writeServiceError(w, r, h.logger, err, "failed to checkout")
		return
	}
	utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusCreated)
}

// ValidatePickup checks a pickup time against the booking window.
// @Summary      Validate pickup time
// @Tags         checkout
// @Produce      json
// @Param        at   query     string  true  "Pickup time, RFC 3339"
// @Success      200  {object}  PickupValidation
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /pickup/validate [get]
func (h *CartHandler) ValidatePickup(w http.ResponseWriter, r *http.Request) {
	at := r.URL.Query().Get("at")
	if err := h.validate.Var(at, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	valid := h.pickup.ValidateString(at)
	utils.WriteJSON(w, PickupValidationToJSON(valid, h.pickup.Window()), http.StatusOK)
}
