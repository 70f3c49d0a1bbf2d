package controllers

import (
	"net/http"

	"github.com/zeevo-shop/zeevo-edge/api/responses"
	"github.com/zeevo-shop/zeevo-edge/api/validators"
	"github.com/zeevo-shop/zeevo-edge/internal/verify"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type magicTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type payoutAccountRequest struct {
	PayoutAccountID string `json:"payoutAccountId" validate:"required"`
	UserID          string `json:"userId" validate:"required"`
}

// VerifyMagicToken exchanges an emailed login token for a session. Upstream
// rejection messages pass through verbatim so the client can show them.
func VerifyMagicToken(svc *verify.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req magicTokenRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.MagicToken(r.Context(), req.Token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func VerifyPayoutAccount(svc *verify.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payoutAccountRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.PayoutAccount(r.Context(), req.PayoutAccountID, req.UserID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"verified": true})
	}
}
