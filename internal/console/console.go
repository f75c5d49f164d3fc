// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package console implements the Idea Console: it lists ideas and drives their
// lifecycle (propose, approve, execute) purely through round trips to the
// agent service. It holds no authoritative state. The displayed list is
// always a fresh read of the server, replaced wholesale after every mutation.
//
// There is no client-side state machine: any action may be issued for any
// idea, and whether a transition is legal is for the server to decide.
package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"agentceo/cli/internal/backend"
	apperrors "agentceo/cli/internal/errors"
	"agentceo/cli/internal/model"
)

// Action names a user-initiated console action.
type Action string

const (
	ActionLoad    Action = "Load"
	ActionPropose Action = "Propose"
	ActionApprove Action = "Approve"
	ActionExecute Action = "Execute"
)

// ActionError is a failure scoped to a single action.
type ActionError struct {
	Action Action
	Err    error
}

// Label is the short context shown in front of the message, e.g. "Approve failed".
func (e *ActionError) Label() string { return string(e.Action) + " failed" }

func (e *ActionError) Error() string { return e.Label() + ": " + e.Err.Error() }

func (e *ActionError) Unwrap() error { return e.Err }

// Form is the proposal input form plus the optional files text used by execute.
type Form struct {
	Title       string
	Description string
	Files       string
}

// Console is the Idea Console controller. It is safe for concurrent use; when
// loads overlap, the last response to arrive wins.
type Console struct {
	api backend.API

	mu     sync.Mutex
	ideas  []model.Idea
	loaded bool
	form   Form
}

// New creates a console over api.
func New(api backend.API) *Console {
	return &Console{api: api, ideas: []model.Idea{}}
}

// Ideas returns a copy of the list from the last successful load.
func (c *Console) Ideas() []model.Idea {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Idea, len(c.ideas))
	copy(out, c.ideas)
	return out
}

// Loaded reports whether at least one load has succeeded.
func (c *Console) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Form returns the current form contents.
func (c *Console) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm replaces the form contents.
func (c *Console) SetForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

// LoadIdeas fetches the full list and replaces the displayed one. On failure
// the previous list is kept.
func (c *Console) LoadIdeas(ctx context.Context) ([]model.Idea, error) {
	ideas, err := c.api.ListIdeas(ctx)
	if err != nil {
		return nil, &ActionError{Action: ActionLoad, Err: err}
	}
	if ideas == nil {
		ideas = []model.Idea{}
	}

	c.mu.Lock()
	c.ideas = ideas
	c.loaded = true
	c.mu.Unlock()

	return c.Ideas(), nil
}

// mutate runs one mutating call and then reloads the list. A failed mutation
// is reported under its own action and skips the reload. A failed reload after
// a successful mutation is reported as a Load failure.
func (c *Console) mutate(ctx context.Context, action Action, call func(context.Context) error, onSuccess func()) error {
	if err := call(ctx); err != nil {
		return &ActionError{Action: action, Err: err}
	}
	if onSuccess != nil {
		onSuccess()
	}
	_, err := c.LoadIdeas(ctx)
	return err
}

// ProposeIdea submits a new idea, clears the title and description fields of
// the form once the server accepts it, then reloads.
func (c *Console) ProposeIdea(ctx context.Context, title, description string) error {
	return c.mutate(ctx, ActionPropose, func(ctx context.Context) error {
		_, err := c.api.ProposeIdea(ctx, model.ProposeRequest{Title: title, Description: description})
		return err
	}, func() {
		c.mu.Lock()
		c.form.Title = ""
		c.form.Description = ""
		c.mu.Unlock()
	})
}

// ApproveIdea requests the approved transition for id, then reloads.
func (c *Console) ApproveIdea(ctx context.Context, id int64) error {
	return c.mutate(ctx, ActionApprove, func(ctx context.Context) error {
		_, err := c.api.ApproveIdea(ctx, id)
		return err
	}, nil)
}

// ExecuteIdea parses rawFiles as a JSON list of file changes (blank means
// none) and asks the agent to implement idea id, then reloads. A parse error
// fails the action before anything is sent. When the execute call succeeds
// but the reload fails, the result is returned together with the Load error.
func (c *Console) ExecuteIdea(ctx context.Context, id int64, rawFiles string) (model.ExecuteResult, error) {
	files, err := model.ParseFiles(rawFiles)
	if err != nil {
		return model.ExecuteResult{}, &ActionError{
			Action: ActionExecute,
			Err:    apperrors.Wrap(apperrors.InvalidFiles, "invalid files JSON", err),
		}
	}

	var result model.ExecuteResult
	err = c.mutate(ctx, ActionExecute, func(ctx context.Context) error {
		r, err := c.api.ExecuteIdea(ctx, model.ExecuteRequest{
			IdeaID:  id,
			Files:   files,
			Message: model.ExecuteMessage(id),
		})
		result = r
		return err
	}, nil)
	var ae *ActionError
	if errors.As(err, &ae) && ae.Action == ActionExecute {
		return model.ExecuteResult{}, err
	}
	return result, err
}

// Confirmation is the message shown after a successful execute.
func Confirmation(r model.ExecuteResult) string {
	return "PR opened: " + r.Reference()
}

// ParseID parses an idea id as typed by a user ("7" or "#7").
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid idea id %q", s)
	}
	return id, nil
}
