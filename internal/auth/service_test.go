// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agentceo/cli/internal/backend"
	apperrors "agentceo/cli/internal/errors"
	"agentceo/cli/internal/keychain"
	"agentceo/cli/internal/manifest"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	token string
	err   error
	calls int
}

func (f *fakeIssuer) IssueToken(ctx context.Context, username, password string) (string, error) {
	f.calls++
	return f.token, f.err
}

type brokenStore struct{ *keychain.Manager }

func (brokenStore) LoadToken() (string, error) { return "", errors.New("keyring locked") }

func newStore() *keychain.Manager {
	return keychain.NewManagerWithRing(keyring.NewArrayKeyring(nil))
}

func TestSignInPersistsToken(t *testing.T) {
	store := newStore()
	svc := NewService(store, &fakeIssuer{token: "tok"}, nil)

	assert.False(t, svc.IsAuthenticated())
	require.NoError(t, svc.SignIn(context.Background(), "admin@hiresynapse.ai", "admin123"))

	assert.True(t, svc.IsAuthenticated())
	tok, err := svc.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Equal(t, "admin@hiresynapse.ai", svc.Account())
}

func TestSignOutClearsToken(t *testing.T) {
	store := newStore()
	svc := NewService(store, &fakeIssuer{token: "tok"}, nil)
	require.NoError(t, svc.SignIn(context.Background(), "a@b.c", "pw"))

	require.NoError(t, svc.SignOut())

	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, svc.Account())
	_, err := svc.RequireToken()
	assert.True(t, apperrors.Is(err, apperrors.NotAuthenticated))
	assert.Equal(t, "Please sign in to continue.", err.Error())
}

func TestSignInFailureKeepsPriorSession(t *testing.T) {
	store := newStore()
	require.NoError(t, store.SaveToken("previous"))
	svc := NewService(store, &fakeIssuer{err: errors.New("invalid credentials")}, nil)

	err := svc.SignIn(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.Equal(t, apperrors.AuthFailed, apperrors.KindOf(err))

	tok, err := svc.Token()
	require.NoError(t, err)
	assert.Equal(t, "previous", tok)
}

func TestSignInAgainst401DoesNotPersistToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid credentials"))
	}))
	defer server.Close()

	store := newStore()
	api := backend.New(server.URL, manifest.DefaultEndpoints(), store)
	svc := NewService(store, api, nil)

	err := svc.SignIn(context.Background(), "admin@hiresynapse.ai", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, svc.IsAuthenticated())
}

func TestSignOutIsSeenByNextRequest(t *testing.T) {
	var auths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			w.Write([]byte(`{"access_token":"fresh"}`))
			return
		}
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	store := newStore()
	api := backend.New(server.URL, manifest.DefaultEndpoints(), store)
	svc := NewService(store, api, nil)
	ctx := context.Background()

	require.NoError(t, svc.SignIn(ctx, "ceo@hiresynapse.ai", "ceo123"))
	_, err := api.ListIdeas(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.SignOut())
	_, err = api.ListIdeas(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer fresh", ""}, auths)
}

func TestIsAuthenticatedWhenStoreFails(t *testing.T) {
	svc := NewService(brokenStore{newStore()}, &fakeIssuer{}, nil)
	assert.False(t, svc.IsAuthenticated())
}
