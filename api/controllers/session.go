package controllers

import (
	"net/http"

	"github.com/zeevo-shop/zeevo-edge/api/middleware"
	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/internal/session"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

// GetProfile returns the cached user profile seeded during verification.
func GetProfile(profiles session.ProfileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		profile, err := profiles.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if profile == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session profile not found"))
			return
		}

		responses.WriteSuccess(w, profile)
	}
}

// Logout drops the cached profile. The token itself stays valid until it
// expires; the edge only forgets what it cached.
func Logout(profiles session.ProfileStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		if err := profiles.Delete(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"loggedOut": true})
	}
}
