package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zeevo-shop/zeevo-edge/api/middleware"
	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/internal/notifications"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

func ListNotifications(svc *notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearer, err := requireBearer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), bearer)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func MarkNotificationRead(svc *notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearer, err := requireBearer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "notification id is required"))
			return
		}

		if err := svc.MarkRead(r.Context(), bearer, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"read": true})
	}
}

func MarkAllNotificationsRead(svc *notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearer, err := requireBearer(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.MarkAllRead(r.Context(), bearer); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"read": true})
	}
}

func requireBearer(r *http.Request) (string, error) {
	bearer := middleware.BearerFromContext(r.Context())
	if bearer == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	return bearer, nil
}
