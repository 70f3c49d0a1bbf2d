package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/internal/resolver"
	"github.com/zeevo-shop/zeevo-edge/internal/storefront"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

// GetStore resolves a tenant storefront by slug or custom domain. Resolution
// failures still return 200 with the fallback shell so the client can render
// a generic page instead of an error screen.
func GetStore(svc *resolver.Service, cfg config.StorefrontConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "resolver unavailable"))
			return
		}

		identifier := chi.URLParam(r, "identifier")
		if identifier == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "store identifier is required"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithStoreSlug(ctx, identifier)
		}

		store := svc.ResolveStore(ctx, identifier)
		page := storefront.StorePage{
			Store:    store,
			Metadata: storefront.MetadataForStore(store, cfg),
		}

		responses.WriteSuccess(w, page)
	}
}
