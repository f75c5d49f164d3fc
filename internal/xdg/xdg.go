// Package xdg resolves XDG Base Directory paths for agentceo.
//
// Configuration lives under $XDG_CONFIG_HOME/agentceo (falling back to
// ~/.config/agentceo). Directories are created with private permissions since
// they may hold the encrypted file keyring.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "agentceo"

// ConfigDir returns the XDG config directory for agentceo.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/agentceo when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// KeyringDir returns the directory used by the encrypted file keyring backend.
func KeyringDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "keyring")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
