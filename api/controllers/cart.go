package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/zeevo-shop/zeevo-edge/api/middleware"
	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/api/validators"
	"github.com/zeevo-shop/zeevo-edge/internal/cart"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type cartView struct {
	ID         string          `json:"id"`
	Items      []cart.Item     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func newCartView(cartID string, items []cart.Item) cartView {
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{
		ID:         cartID,
		Items:      items,
		TotalItems: cart.TotalItems(items),
		TotalPrice: cart.TotalPrice(items),
	}
}

type addCartItemRequest struct {
	ID       string          `json:"id" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	StoreID  string          `json:"storeId" validate:"required"`
}

func GetCart(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := requireCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.Items(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(cartID, items))
	}
}

// AddCartItem merges the posted line into the cart. Posting an item that
// already exists for the same store bumps its quantity instead of adding a
// duplicate row.
func AddCartItem(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := requireCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req addCartItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if req.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative"))
			return
		}

		items, err := svc.AddItem(r.Context(), cartID, cart.Item{
			ID:       req.ID,
			Title:    req.Title,
			Price:    req.Price,
			Quantity: req.Quantity,
			StoreID:  req.StoreID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(cartID, items))
	}
}

func RemoveCartItem(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := requireCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		itemID := chi.URLParam(r, "id")
		if itemID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id is required"))
			return
		}

		items, err := svc.RemoveItem(r.Context(), cartID, itemID, r.URL.Query().Get("storeId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(cartID, items))
	}
}

func ClearCart(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := requireCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(cartID, nil))
	}
}

func requireCartID(r *http.Request) (string, error) {
	cartID := middleware.CartIDFromContext(r.Context())
	if cartID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart id missing from request context")
	}
	return cartID, nil
}
