// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	apperrors "agentceo/cli/internal/errors"
)

// IssueToken calls POST /auth/token with form-encoded username and password.
// No Authorization header is sent, whatever the token source holds.
func (h *HTTP) IssueToken(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.Token, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result map[string]any
	if err := h.send(req, &result); err != nil {
		return "", err
	}

	token := extractAccessToken(result)
	if token == "" {
		return "", apperrors.Wrap(apperrors.RequestFailed, "", errors.New("no access_token in response"))
	}
	return token, nil
}

// extractAccessToken extracts the access token from the response payload.
// It tries multiple common field names to be resilient to different response formats.
func extractAccessToken(result map[string]any) string {
	for _, key := range []string{"access_token", "accessToken", "token"} {
		if v, ok := result[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
