// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest holds the agent service endpoint configuration.
package manifest

import (
	"fmt"
	"net/url"
	"strings"
)

// Manifest describes where the agent service lives and which paths it serves.
type Manifest struct {
	APIURL string        `json:"api_url"` // e.g. "https://api.hiresynapse.ai"
	HTTP   HTTPEndpoints `json:"http"`
}

// HTTPEndpoints contains REST API endpoint paths.
type HTTPEndpoints struct {
	Token   string `json:"token,omitempty"`   // e.g., "/auth/token"
	List    string `json:"list,omitempty"`    // e.g., "/agent/list"
	Propose string `json:"propose,omitempty"` // e.g., "/agent/propose"
	Approve string `json:"approve,omitempty"` // e.g., "/agent/approve/" (idea id appended)
	Execute string `json:"execute,omitempty"` // e.g., "/agent/execute"
}

// DefaultEndpoints returns the paths served by the agent service.
func DefaultEndpoints() HTTPEndpoints {
	return HTTPEndpoints{
		Token:   "/auth/token",
		List:    "/agent/list",
		Propose: "/agent/propose",
		Approve: "/agent/approve/",
		Execute: "/agent/execute",
	}
}

// WithDefaults fills empty paths from DefaultEndpoints.
func (e HTTPEndpoints) WithDefaults() HTTPEndpoints {
	d := DefaultEndpoints()
	if e.Token == "" {
		e.Token = d.Token
	}
	if e.List == "" {
		e.List = d.List
	}
	if e.Propose == "" {
		e.Propose = d.Propose
	}
	if e.Approve == "" {
		e.Approve = d.Approve
	}
	if e.Execute == "" {
		e.Execute = d.Execute
	}
	return e
}

// ApprovePath returns the approve path for an idea. The id travels in the path,
// unlike execute which carries it in the body.
func (e HTTPEndpoints) ApprovePath(id int64) string {
	return strings.TrimRight(e.Approve, "/") + "/" + fmt.Sprint(id)
}

// BaseURL validates and normalizes the API URL (scheme + host + optional path
// prefix, no trailing slash).
func (m *Manifest) BaseURL() (string, error) {
	raw := strings.TrimSpace(m.APIURL)
	if raw == "" {
		return "", fmt.Errorf("agent API URL is not configured")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid agent API URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid agent API URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid agent API URL %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
