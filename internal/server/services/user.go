// Package services contains server-side business logic. This file implements
// UserService, which turns a signed login proof into an access token.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/address"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
)

// Token is an issued access token and the moment it stops being accepted.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// UserService authenticates depositors. There is no registration: an
// identity is an ed25519 public key, and knowing the private key is enough.
type UserService struct {
	jwtKey                      []byte
	accessTokenValidityDuration time.Duration
	loginMaxSkew                time.Duration
	now                         func() time.Time
	log                         logging.Logger
}

// NewUserService derives the signing key from cfg.SecretKey.
func NewUserService(cfg *config.Config, l logging.Logger) (*UserService, error) {
	key, err := auth.DeriveKey(cfg.SecretKey)
	if err != nil {
		return nil, err
	}
	return &UserService{
		jwtKey:                      key,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		loginMaxSkew:                cfg.LoginMaxSkew,
		now:                         time.Now,
		log:                         l.With("module", "user_service"),
	}, nil
}

// Login verifies a login proof and mints an access token for identity.
func (s *UserService) Login(ctx context.Context, identity address.Address, unixSeconds int64, sig []byte) (*Token, error) {
	if err := auth.VerifyLogin(identity, unixSeconds, sig, s.now(), s.loginMaxSkew); err != nil {
		s.log.Warn(ctx, "login rejected", "identity", identity.String(), "error", err)
		return nil, err
	}

	token, expires, err := auth.GenerateToken(identity.String(), s.jwtKey, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	s.log.Debug(ctx, "login", "identity", identity.String())
	return &Token{AccessToken: token, ExpiresAt: expires}, nil
}

// Authenticate resolves an access token to the identity it was issued for.
func (s *UserService) Authenticate(token string) (address.Address, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtKey)
	if err != nil {
		return address.Address{}, err
	}
	identity, err := address.Parse(userID)
	if err != nil {
		return address.Address{}, common.ErrInvalidToken
	}
	return identity, nil
}
