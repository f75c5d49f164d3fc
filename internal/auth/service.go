// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth is the session manager for the agentceo CLI.
// A session is a single bearer token held in a Store. Signing in exchanges an
// email and password for a token; signing out forgets it locally. Whether the
// token is still valid is the server's business: a stale token simply makes
// the next call fail.
package auth

import (
	"context"
	"fmt"

	apperrors "agentceo/cli/internal/errors"
	"agentceo/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Store persists the session credential. keychain.Manager implements it.
type Store interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveAccount(account string) error
	LoadAccount() (string, error)
	ClearAuth() error
}

// Issuer exchanges credentials for a bearer token. backend.HTTP implements it.
type Issuer interface {
	IssueToken(ctx context.Context, username, password string) (string, error)
}

// Service centralizes session operations against the backend and the
// credential store.
type Service struct {
	store  Store
	issuer Issuer
	log    *pterm.Logger
}

// NewService constructs a session Service.
func NewService(store Store, issuer Issuer, log *pterm.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{store: store, issuer: issuer, log: log}
}

// SignIn exchanges email and password for a token and persists it. Any
// failure from the token endpoint is reported as AuthFailed carrying the
// server's response text, and the previous session is left as it was.
func (s *Service) SignIn(ctx context.Context, email, password string) error {
	token, err := s.issuer.IssueToken(ctx, email, password)
	if err != nil {
		s.log.Debug("sign-in rejected", s.log.Args("account", email, "error", logging.Mask(err.Error())))
		return apperrors.Wrap(apperrors.AuthFailed, "", err)
	}
	if err := s.store.SaveToken(token); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := s.store.SaveAccount(email); err != nil {
		s.log.Warn("could not remember account", s.log.Args("error", err.Error()))
	}
	s.log.Debug("signed in", s.log.Args("account", email))
	return nil
}

// SignOut forgets the stored token. No server-side revocation is attempted.
func (s *Service) SignOut() error {
	if err := s.store.ClearAuth(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	s.log.Debug("signed out")
	return nil
}

// IsAuthenticated reports whether a token is currently stored, regardless of
// whether the server would still accept it.
func (s *Service) IsAuthenticated() bool {
	token, err := s.store.LoadToken()
	if err != nil {
		s.log.Debug("credential store unavailable", s.log.Args("error", err.Error()))
		return false
	}
	return token != ""
}

// Token returns the stored token at call time ("" when signed out).
func (s *Service) Token() (string, error) {
	return s.store.LoadToken()
}

// Account returns the email the current token was issued for, if known.
func (s *Service) Account() string {
	account, err := s.store.LoadAccount()
	if err != nil {
		return ""
	}
	return account
}

// RequireToken returns the stored token or a NotAuthenticated error.
func (s *Service) RequireToken() (string, error) {
	token, err := s.store.LoadToken()
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	if token == "" {
		return "", apperrors.New(apperrors.NotAuthenticated, "Please sign in to continue.")
	}
	return token, nil
}
