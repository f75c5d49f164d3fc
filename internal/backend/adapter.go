// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the Agentic AI CEO service.
// It defines the API contract for sign-in and the idea lifecycle calls
// (list, propose, approve, execute) and an HTTP implementation of it.
package backend

import (
	"context"

	"agentceo/cli/internal/model"
)

// API defines backend operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide fakes for tests.
type API interface {
	// IssueToken exchanges form-encoded credentials for a bearer token.
	IssueToken(ctx context.Context, username, password string) (string, error)
	// ListIdeas returns the full current idea list.
	ListIdeas(ctx context.Context) ([]model.Idea, error)
	// ProposeIdea creates a new idea.
	ProposeIdea(ctx context.Context, req model.ProposeRequest) (model.MutationResult, error)
	// ApproveIdea requests the approved transition for an idea.
	ApproveIdea(ctx context.Context, id int64) (model.MutationResult, error)
	// ExecuteIdea asks the agent to act on an idea and may return a PR URL.
	ExecuteIdea(ctx context.Context, req model.ExecuteRequest) (model.ExecuteResult, error)
}

// TokenSource yields the bearer token to attach to a request. It is consulted
// on every call, so a sign-out is visible to the very next request. An empty
// token means the request goes out without an Authorization header.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, error) { return string(s), nil }
