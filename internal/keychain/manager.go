// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides thread-safe credential storage for agentceo.
// It manages all interactions with the OS keychain/credential store: the
// bearer token issued at sign-in and the account it was issued for.
//
// macOS Keychain, Windows Credential Manager, Secret Service, KWallet and pass
// are tried first. An encrypted file keyring in the XDG config directory is
// the last resort for headless machines.
package keychain

import (
	"errors"
	"os"
	"runtime"
	"strings"
	"sync"

	"agentceo/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "agentceo"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAccessToken = "access_token"
	KeyAccount     = "account"
)

// Environment variables controlling the keyring backend.
const (
	EnvBackend      = "AGENTCEO_KEYRING_BACKEND"
	EnvFilePassword = "AGENTCEO_KEYRING_PASSWORD"
)

// Manager provides thread-safe operations on the credential store.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring for agentceo.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewManagerWithRing wraps an already opened keyring (tests use keyring.NewArrayKeyring).
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// allowedBackends returns the keyring backends to try on this OS, in order.
func allowedBackends() []keyring.BackendType {
	if forced := strings.TrimSpace(os.Getenv(EnvBackend)); forced != "" {
		return []keyring.BackendType{keyring.BackendType(forced)}
	}
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

// openRing opens the OS keyring with the file backend as last resort.
func openRing() (keyring.Keyring, error) {
	dir, err := xdg.KeyringDir()
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          allowedBackends(),
		KeychainTrustApplication: true,
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
		LibSecretCollectionName:  ServiceName,
		FileDir:                  dir,
		FilePasswordFunc:         filePassword,
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if errors.Is(err, keyring.ErrNoAvailImpl) {
			return nil, errors.New("no secure storage backend available; set " + EnvBackend + "=file to use an encrypted file")
		}
		return nil, err
	}
	return ring, nil
}

// filePassword unlocks the file keyring from the environment, or asks on the terminal.
func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(EnvFilePassword); pw != "" {
		return pw, nil
	}
	return keyring.TerminalPrompt(prompt)
}

// SaveToken stores the access token. This method is thread-safe.
func (m *Manager) SaveToken(token string) error {
	if token == "" {
		return errors.New("empty access token")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{
		Key:   KeyAccessToken,
		Data:  []byte(token),
		Label: "agentceo access token",
	})
}

// LoadToken retrieves the access token. A missing token is ("", nil).
// This method is thread-safe.
func (m *Manager) LoadToken() (string, error) {
	return m.load(KeyAccessToken)
}

// SaveAccount stores the account the current token belongs to.
func (m *Manager) SaveAccount(account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if account == "" {
		return ignoreMissing(m.ring.Remove(KeyAccount))
	}
	return m.ring.Set(keyring.Item{
		Key:   KeyAccount,
		Data:  []byte(account),
		Label: "agentceo account",
	})
}

// LoadAccount retrieves the stored account. A missing value is ("", nil).
func (m *Manager) LoadAccount() (string, error) {
	return m.load(KeyAccount)
}

// ClearAuth removes the token and account. This method is thread-safe.
func (m *Manager) ClearAuth() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ignoreMissing(m.ring.Remove(KeyAccessToken)); err != nil {
		return err
	}
	return ignoreMissing(m.ring.Remove(KeyAccount))
}

func (m *Manager) load(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(it.Data), nil
}

// ignoreMissing treats removing an absent item as success.
func ignoreMissing(err error) error {
	if err == nil || errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Token implements backend.TokenSource: the stored token is read on every call.
func (m *Manager) Token() (string, error) {
	return m.LoadToken()
}
