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

// GetProduct resolves a product detail page. Unlike store resolution there
// is no fallback shell: a product that cannot be resolved is a 404.
func GetProduct(svc *resolver.Service, cfg config.StorefrontConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "resolver unavailable"))
			return
		}

		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		product := svc.ResolveProduct(r.Context(), id)
		if product == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		page := storefront.ProductPage{
			Product:  product,
			Metadata: storefront.MetadataForProduct(product, cfg),
		}

		responses.WriteSuccess(w, page)
	}
}
