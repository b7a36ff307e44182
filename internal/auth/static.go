package auth

import (
	"context"

	"github.com/lucianoaf8/InnSight/devmode"
)

// StaticAuthorizer resolves tokens against a fixed token -> userId map,
// typically loaded from configuration. With devMode set it also accepts
// the shared local development key.
type StaticAuthorizer struct {
	keys    map[string]string
	devMode bool
}

// NewStaticAuthorizer creates an authorizer over the given token map.
func NewStaticAuthorizer(keys map[string]string, devMode bool) *StaticAuthorizer {
	if keys == nil {
		keys = map[string]string{}
	}
	return &StaticAuthorizer{keys: keys, devMode: devMode}
}

func (a *StaticAuthorizer) Authorize(ctx context.Context, token string) (*UserInfo, error) {
	if a.devMode && token == devmode.APIKey {
		return &UserInfo{UserID: devmode.UserID}, nil
	}
	if userID, ok := a.keys[token]; ok {
		return &UserInfo{UserID: userID}, nil
	}
	return nil, ErrInvalidToken
}
