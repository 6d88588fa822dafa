package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/entities"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
)

var errorStatuses = []struct {
	err  error
	code int
}{
	{entities.ErrForbidden, http.StatusForbidden},

	{entities.ErrOrderNotFound, http.StatusNotFound},
	{entities.ErrDishNotFound, http.StatusNotFound},
	{entities.ErrSellerNotFound, http.StatusNotFound},
	{cart.ErrItemNotFound, http.StatusNotFound},

	{entities.ErrEmptyCart, http.StatusBadRequest},
	{entities.ErrInvalidPickup, http.StatusBadRequest},
	{entities.ErrMultiSellerCart, http.StatusBadRequest},
	{entities.ErrSelfOrder, http.StatusBadRequest},
	{entities.ErrInvalidStatus, http.StatusBadRequest},
	{cart.ErrInvalidItem, http.StatusBadRequest},

	{entities.ErrInvalidTransition, http.StatusConflict},
	{entities.ErrConflict, http.StatusConflict},
	{entities.ErrAlreadyCaptured, http.StatusConflict},
	{cart.ErrDifferentSeller, http.StatusConflict},

	{entities.ErrPayoutsNotEnabled, http.StatusUnprocessableEntity},
	{entities.ErrDishUnavailable, http.StatusUnprocessableEntity},

	{entities.ErrPaymentAuthorization, http.StatusBadGateway},
	{entities.ErrPaymentCapture, http.StatusBadGateway},
	{entities.ErrPaymentCancel, http.StatusBadGateway},
}

// writeServiceError maps domain errors to responses. Unknown errors are
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msg string) {
	var transitionErr *entities.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		utils.WriteError(w, transitionErr.Error(), http.StatusConflict)
		return
	}

	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			if s.code >= http.StatusInternalServerError {
				logger.WarnContext(r.Context(), msg, slog.Any("error", err))
			}
			utils.WriteError(w, s.err.Error(), s.code)
			return
		}
	}

	logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

func principalFrom(w http.ResponseWriter, r *http.Request) (entities.Principal, bool) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
	}
	return p, ok
}
