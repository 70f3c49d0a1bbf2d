package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
)

// CartID resolves the cart identifier from the session cookie, minting a
// fresh one when the visitor arrives without it. The cookie is host-only
// so carts stay scoped to the storefront that created them.
func CartID(cfg config.CartConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cartID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					cartID = cookie.Value
				}
			}

			if cartID == "" {
				cartID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    cartID,
					Path:     "/",
					MaxAge:   60 * 60 * 24 * 30,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithCartID(r.Context(), cartID)))
		})
	}
}
