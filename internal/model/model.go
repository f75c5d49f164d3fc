// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the data exchanged with the agent service.
// Ideas are owned by the server: the client never edits one, it only requests
// transitions and re-reads the list. Status values are whatever the server
// sends and are rendered verbatim.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Idea is a server-tracked proposal record.
type Idea struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`

	CreatedBy  string `json:"created_by,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
	PRNumber   *int   `json:"pr_number,omitempty"`
	// CreatedAt is kept as sent; the server does not guarantee a timezone.
	CreatedAt string `json:"created_at,omitempty"`
}

// ProposeRequest is the body of a propose call.
type ProposeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ExecuteRequest is the body of an execute call. The idea id travels in the
// body here, while approve carries it in the path.
type ExecuteRequest struct {
	IdeaID int64 `json:"idea_id"`
	// Files is the user's file list, forwarded as typed. Its shape is the
	// agent's business, usually [{"path": ..., "content": ...}].
	Files   json.RawMessage `json:"files"`
	Message string          `json:"message"`
}

// MutationResult is what propose and approve answer with.
type MutationResult struct {
	OK   bool  `json:"ok"`
	Idea *Idea `json:"idea,omitempty"`
}

// ExecuteResult is what execute answers with. PRURL may be empty.
type ExecuteResult struct {
	OK    bool   `json:"ok"`
	Idea  *Idea  `json:"idea,omitempty"`
	PRURL string `json:"pr_url,omitempty"`
}

// Reference returns the change-request URL, or "OK" when the server sent none.
func (r ExecuteResult) Reference() string {
	if r.PRURL != "" {
		return r.PRURL
	}
	return "OK"
}

// ExecuteMessage is the commit/PR message sent with an execute request.
func ExecuteMessage(id int64) string {
	return fmt.Sprintf("Implement idea %d", id)
}

// ParseFiles checks that user-supplied files text is well-formed JSON and
// returns it unchanged. Empty or blank text means no files.
func ParseFiles(raw string) (json.RawMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return json.RawMessage("[]"), nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
