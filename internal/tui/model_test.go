// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"agentceo/cli/internal/console"
	"agentceo/cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type session bool

func (s session) IsAuthenticated() bool { return bool(s) }

type fakeAPI struct {
	mu      sync.Mutex
	calls   []string
	ideas   []model.Idea
	listErr error
	prURL   string
	files   []byte
}

func (f *fakeAPI) record(c string) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeAPI) IssueToken(ctx context.Context, u, p string) (string, error) { return "tok", nil }

func (f *fakeAPI) ListIdeas(ctx context.Context) ([]model.Idea, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Idea(nil), f.ideas...), nil
}

func (f *fakeAPI) ProposeIdea(ctx context.Context, req model.ProposeRequest) (model.MutationResult, error) {
	f.record("propose")
	idea := model.Idea{ID: int64(len(f.ideas) + 1), Title: req.Title, Description: req.Description, Status: "proposed"}
	f.ideas = append(f.ideas, idea)
	return model.MutationResult{OK: true, Idea: &idea}, nil
}

func (f *fakeAPI) ApproveIdea(ctx context.Context, id int64) (model.MutationResult, error) {
	f.record("approve")
	for i := range f.ideas {
		if f.ideas[i].ID == id {
			f.ideas[i].Status = "approved"
		}
	}
	return model.MutationResult{OK: true}, nil
}

func (f *fakeAPI) ExecuteIdea(ctx context.Context, req model.ExecuteRequest) (model.ExecuteResult, error) {
	f.record("execute")
	f.files = req.Files
	return model.ExecuteResult{OK: true, PRURL: f.prURL}, nil
}

func keys(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// press feeds msg to m and drops any returned command.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// run feeds msg to m, runs the returned command and feeds its result back.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	next, _ = next.(Model).Update(cmd())
	return next.(Model)
}

func loaded(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := New(context.Background(), console.New(api), session(true))
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestInitLoadsIdeas(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 1, Title: "A", Description: "first", Status: "proposed"}}}
	m := loaded(t, api)

	view := m.View()
	assert.Contains(t, view, "#1 A — ")
	assert.Contains(t, view, "proposed")
	assert.Contains(t, view, "first")
	assert.Equal(t, 0, m.busy)
}

func TestSignedOutShowsPrompt(t *testing.T) {
	m := New(context.Background(), console.New(&fakeAPI{}), session(false))
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Please sign in to continue.")

	next, cmd := m.Update(keys("a"))
	assert.Nil(t, cmd)
	assert.Equal(t, m.mode, next.(Model).mode)
}

func TestProposeFlowClearsForm(t *testing.T) {
	api := &fakeAPI{}
	m := loaded(t, api)

	m = press(t, m, keys("p"))
	require.Equal(t, modePropose, m.mode)
	m = press(t, m, keys("Ship it"))
	m = press(t, m, tab)
	m = press(t, m, keys("Build the thing"))
	m = run(t, m, enter)

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"list", "propose", "list"}, api.calls)
	require.Len(t, m.ideas, 1)
	assert.Equal(t, "Ship it", m.ideas[0].Title)
	assert.Equal(t, "Build the thing", m.ideas[0].Description)
	assert.Empty(t, m.fields[fieldTitle].Value())
	assert.Empty(t, m.fields[fieldDescription].Value())
	assert.Empty(t, m.alert)
}

func TestEscCancelsForm(t *testing.T) {
	m := loaded(t, &fakeAPI{})
	m = press(t, m, keys("p"))
	m = press(t, m, keys("draft"))
	m = press(t, m, esc)

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "draft", m.fields[fieldTitle].Value())
}

func TestApproveSelected(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 1, Status: "proposed"}, {ID: 2, Status: "proposed"}}}
	m := loaded(t, api)

	m = press(t, m, keys("j"))
	m = run(t, m, keys("a"))

	assert.Equal(t, []string{"list", "approve", "list"}, api.calls)
	assert.Equal(t, "approved", m.ideas[1].Status)
	assert.Equal(t, "proposed", m.ideas[0].Status)
}

func TestExecuteShowsPullRequest(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 4, Status: "approved"}}, prURL: "https://github.com/o/r/pull/9"}
	m := loaded(t, api)

	m = press(t, m, keys("x"))
	require.Equal(t, modeExecute, m.mode)
	m = run(t, m, enter)

	assert.Equal(t, []string{"list", "execute", "list"}, api.calls)
	assert.Equal(t, "[]", string(api.files))
	assert.Equal(t, "PR opened: https://github.com/o/r/pull/9", m.notice)
	assert.Contains(t, m.View(), "PR opened: https://github.com/o/r/pull/9")
}

func TestExecuteWithBadFilesAlerts(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 4, Status: "approved"}}}
	m := loaded(t, api)

	m = press(t, m, keys("x"))
	m = press(t, m, keys("not json"))
	m = run(t, m, enter)

	assert.Equal(t, []string{"list"}, api.calls)
	assert.Contains(t, m.alert, "Execute failed: invalid files JSON")
	assert.Empty(t, m.notice)
	assert.Len(t, m.ideas, 1)
}

func TestLoadFailureKeepsList(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 1, Title: "A"}}}
	m := loaded(t, api)

	api.listErr = errors.New("Internal Server Error")
	m = run(t, m, keys("r"))

	assert.Equal(t, "Load failed: Internal Server Error", m.alert)
	assert.Len(t, m.ideas, 1)
}

func TestCursorClampsAfterReload(t *testing.T) {
	api := &fakeAPI{ideas: []model.Idea{{ID: 1}, {ID: 2}, {ID: 3}}}
	m := loaded(t, api)
	m = press(t, m, keys("j"))
	m = press(t, m, keys("j"))
	require.Equal(t, 2, m.cursor)

	api.ideas = api.ideas[:1]
	m = run(t, m, keys("r"))
	assert.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	m := loaded(t, &fakeAPI{})
	_, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
