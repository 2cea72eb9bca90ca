// Package authgateway adapts the in-process auth service to the web layer's
// credentials and session contracts.
package authgateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/atrium/internal/services/auth/app"
	"github.com/louisbranch/atrium/internal/services/auth/user"
	"github.com/louisbranch/atrium/internal/services/web/credentials"
	apperrors "github.com/louisbranch/atrium/internal/services/web/platform/errors"
	"github.com/louisbranch/atrium/internal/services/web/session"
)

// AuthService is the subset of the auth service the web layer uses.
type AuthService interface {
	SignUpEmail(ctx context.Context, req app.SignUpRequest) (user.User, error)
	SignInEmail(ctx context.Context, req app.SignInRequest) (app.SessionResult, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (app.SessionResult, error)
}

// TokenParser validates session tokens locally.
type TokenParser interface {
	Verify(token string) error
}

// Gateway implements credentials.Backend, session.Backend and
// session.Verifier.
type Gateway struct {
	service AuthService
	tokens  TokenParser
}

var (
	_ credentials.Backend = (*Gateway)(nil)
	_ session.Backend     = (*Gateway)(nil)
	_ session.Verifier    = (*Gateway)(nil)
)

// New builds a Gateway. tokens may be nil, in which case Verify accepts
// every token and validation happens in the service.
func New(service AuthService, tokens TokenParser) *Gateway {
	return &Gateway{service: service, tokens: tokens}
}

// SignUpEmail creates an account.
func (g *Gateway) SignUpEmail(ctx context.Context, req credentials.SignUpRequest) (credentials.SignUpResult, error) {
	created, err := g.service.SignUpEmail(ctx, app.SignUpRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return credentials.SignUpResult{}, translate("sign up", err)
	}
	return credentials.SignUpResult{UserID: created.ID}, nil
}

// SignInEmail opens a session.
func (g *Gateway) SignInEmail(ctx context.Context, req credentials.SignInRequest) (credentials.SessionResult, error) {
	opened, err := g.service.SignInEmail(ctx, app.SignInRequest{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		return credentials.SessionResult{}, translate("sign in", err)
	}
	return credentials.SessionResult{
		Token:     opened.Token,
		ExpiresAt: opened.Session.ExpiresAt,
		UserID:    opened.User.ID,
	}, nil
}

// SignOut revokes the session behind token.
func (g *Gateway) SignOut(ctx context.Context, token string) error {
	if err := g.service.SignOut(ctx, token); err != nil {
		return translate("sign out", err)
	}
	return nil
}

// GetSession resolves token into a web session.
func (g *Gateway) GetSession(ctx context.Context, token string) (session.Session, error) {
	current, err := g.service.GetSession(ctx, token)
	if errors.Is(err, app.ErrSessionNotFound) {
		return session.Session{}, session.ErrSessionNotFound
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session.Session{
		UserID:    current.User.ID,
		Name:      current.User.Name,
		Email:     current.User.Email,
		Image:     current.User.Image,
		Token:     current.Token,
		ExpiresAt: current.Session.ExpiresAt,
	}, nil
}

// Verify checks the token signature and expiry.
func (g *Gateway) Verify(token string) error {
	if g.tokens == nil {
		return nil
	}
	return g.tokens.Verify(token)
}

// translate turns backend domain errors into typed web errors that carry
// the backend message; other errors are wrapped and stay unexpected.
func translate(action string, err error) error {
	translated := apperrors.FromDomain(err)
	if _, ok := apperrors.As(translated); ok {
		return translated
	}
	return fmt.Errorf("%s: %w", action, err)
}
