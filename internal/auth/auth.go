// Package auth holds the session check and the contracts the login and
// register flows depend on.
package auth

import (
	"context"

	"payctl/internal/models"
)

// Screen paths navigated to by the auth flows
const (
	LoginPath     = "/auth/login"
	RegisterPath  = "/auth/register"
	DashboardPath = "/dashboard"
	CheckoutPath  = "/checkout"
)

// TokenSource provides the stored access token, if any
type TokenSource interface {
	GetAccessToken() (string, bool)
}

// IsAuthenticated is a presence test; the token is not decoded and its
// expiry is not checked.
func IsAuthenticated(tokens TokenSource) bool {
	if tokens == nil {
		return false
	}
	token, ok := tokens.GetAccessToken()
	return ok && token != ""
}

// Service is the backend half of the auth forms
type Service interface {
	Login(ctx context.Context, data models.Credentials) (*models.Auth, error)
	Register(ctx context.Context, data models.Registration) (*models.Auth, error)
}
