package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/zeevo-shop/zeevo-edge/internal/session"
	pkgauth "github.com/zeevo-shop/zeevo-edge/pkg/auth"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type upstreamVerifier interface {
	VerifyMagicToken(ctx context.Context, token string) (string, error)
	VerifyPayoutAccount(ctx context.Context, payoutAccountID, userID string) error
}

// Service handles the verification flows: exchanging a magic-link token for
// a session, and confirming payout accounts. Upstream failure messages are
// passed through verbatim so the UI can show exactly what the backend said.
type Service struct {
	client   upstreamVerifier
	profiles session.ProfileStore
	jwtCfg   config.JWTConfig
	logg     *logger.Logger
}

// MagicTokenResult carries the session token plus the seeded profile.
type MagicTokenResult struct {
	Token     string              `json:"token"`
	SessionID string              `json:"sessionId"`
	Profile   session.UserProfile `json:"profile"`
}

func NewService(client upstreamVerifier, profiles session.ProfileStore, jwtCfg config.JWTConfig, logg *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("upstream client required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("profile store required")
	}
	return &Service{
		client:   client,
		profiles: profiles,
		jwtCfg:   jwtCfg,
		logg:     logg,
	}, nil
}

// MagicToken exchanges the magic-link token upstream, parses the returned
// session JWT and seeds the session profile container from its claims.
func (s *Service) MagicToken(ctx context.Context, token string) (*MagicTokenResult, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "token required")
	}

	sessionToken, err := s.client.VerifyMagicToken(ctx, token)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "verify.magic_token_failed", err)
		}
		return nil, err
	}

	claims, err := pkgauth.ParseSessionToken(s.jwtCfg, sessionToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "session token unverifiable")
	}

	sessionID := claims.ID
	if sessionID == "" {
		sessionID = claims.UserID
	}

	profile := session.UserProfile{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     claims.Role,
		Verified: claims.Verified,
		IssuedAt: time.Now().UTC(),
	}
	if err := s.profiles.Set(ctx, sessionID, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store session profile")
	}

	return &MagicTokenResult{
		Token:     sessionToken,
		SessionID: sessionID,
		Profile:   profile,
	}, nil
}

// PayoutAccount confirms a payout account upstream. Errors carry the
// backend's literal message.
func (s *Service) PayoutAccount(ctx context.Context, payoutAccountID, userID string) error {
	if payoutAccountID == "" || userID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payoutAccountId and userId required")
	}

	if err := s.client.VerifyPayoutAccount(ctx, payoutAccountID, userID); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "verify.payout_account_failed", err)
		}
		return err
	}
	return nil
}
