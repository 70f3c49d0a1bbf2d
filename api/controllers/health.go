package controllers

import (
	"context"
	"net/http"

	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Zeevo-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the upstream API and the cart backend. Either failing
// marks the edge not ready so the balancer stops routing to it.
func HealthReady(cfg *config.Config, upstream, carts pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Zeevo-Env", cfg.App.Env)

		if upstream != nil {
			if err := upstream.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "upstream unreachable"))
				return
			}
		}
		if carts != nil {
			if err := carts.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cart backend unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
