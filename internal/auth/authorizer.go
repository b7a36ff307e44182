package auth

import (
	"context"
	"errors"
)

// UserInfo identifies the authenticated user behind a bearer token.
type UserInfo struct {
	UserID string `json:"user_id"`
}

// Authorizer resolves a bearer token to a user.
type Authorizer interface {
	// Authorize validates the token and returns the user it belongs to.
	// Returns ErrInvalidToken when the token is not recognized.
	Authorize(ctx context.Context, token string) (*UserInfo, error)
}

// ErrInvalidToken is returned for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")
