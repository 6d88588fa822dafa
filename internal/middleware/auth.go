package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/chef-market/internal/auth"
	"github.com/SergeyBogomolovv/chef-market/pkg/utils"
)

// Auth resolves the caller with verifier and stores the principal in the
// request context. Requests that cannot be verified get 401.
func Auth(logger *slog.Logger, verifier auth.Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := verifier.Verify(r)
			if err != nil {
				if !errors.Is(err, auth.ErrUnauthenticated) {
					logger.WarnContext(r.Context(), "failed to verify caller", slog.Any("error", err))
				}
				utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}
