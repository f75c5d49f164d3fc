// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"agentceo/cli/internal/auth"
	"agentceo/cli/internal/keychain"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSession(t *testing.T) {
	km := keychain.NewManagerWithRing(keyring.NewArrayKeyring(nil))
	a := &app{session: auth.NewService(km, nil, nil)}

	assert.ErrorIs(t, a.requireSession(), errReported)

	require.NoError(t, km.SaveToken("tok"))
	assert.NoError(t, a.requireSession())

	require.NoError(t, a.session.SignOut())
	assert.ErrorIs(t, a.requireSession(), errReported)
}
