// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"agentceo/cli/internal/model"
)

// ListIdeas calls GET /agent/list.
func (h *HTTP) ListIdeas(ctx context.Context) ([]model.Idea, error) {
	var ideas []model.Idea
	if err := h.doJSON(ctx, http.MethodGet, h.endpoints.List, nil, &ideas); err != nil {
		return nil, err
	}
	if ideas == nil {
		ideas = []model.Idea{}
	}
	return ideas, nil
}

// ProposeIdea calls POST /agent/propose with { title, description }.
func (h *HTTP) ProposeIdea(ctx context.Context, req model.ProposeRequest) (model.MutationResult, error) {
	var out model.MutationResult
	err := h.doJSON(ctx, http.MethodPost, h.endpoints.Propose, req, &out)
	return out, err
}

// ApproveIdea calls POST /agent/approve/{id} without a body.
func (h *HTTP) ApproveIdea(ctx context.Context, id int64) (model.MutationResult, error) {
	var out model.MutationResult
	err := h.doJSON(ctx, http.MethodPost, h.endpoints.ApprovePath(id), nil, &out)
	return out, err
}

// ExecuteIdea calls POST /agent/execute with { idea_id, files, message }.
func (h *HTTP) ExecuteIdea(ctx context.Context, req model.ExecuteRequest) (model.ExecuteResult, error) {
	if len(req.Files) == 0 {
		req.Files = json.RawMessage("[]")
	}
	var out model.ExecuteResult
	err := h.doJSON(ctx, http.MethodPost, h.endpoints.Execute, req, &out)
	return out, err
}
