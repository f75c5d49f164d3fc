// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tui is the full-screen Idea Console. Every action runs as a Bubble Tea
// command against a console.Console, so the list on screen is always the one
// from the last successful load.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agentceo/cli/internal/console"
	"agentceo/cli/internal/logging"
	"agentceo/cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Session reports whether a credential is stored.
type Session interface {
	IsAuthenticated() bool
}

type mode int

const (
	modeBrowse mode = iota
	modePropose
	modeExecute
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCount
)

type ideasLoadedMsg struct {
	ideas []model.Idea
	err   error
}

type actionDoneMsg struct {
	action console.Action
	ideas  []model.Idea
	result *model.ExecuteResult
	err    error
}

// Model is the Bubble Tea model of the console.
type Model struct {
	ctx     context.Context
	console *console.Console
	authed  bool
	keys    keyMap

	ideas  []model.Idea
	cursor int
	mode   mode

	fields [fieldCount]textinput.Model
	focus  int
	files  textinput.Model
	target int64

	busy   int
	notice string
	alert  string
	width  int
}

// New builds the console model. The session is checked once: without a stored
// token the console only asks the user to sign in.
func New(ctx context.Context, c *console.Console, session Session) Model {
	m := Model{
		ctx:     ctx,
		console: c,
		authed:  session.IsAuthenticated(),
		keys:    defaultKeys(),
		ideas:   c.Ideas(),
	}

	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "Short name for the idea"
	title.CharLimit = 200
	desc := textinput.New()
	desc.Prompt = "Description: "
	desc.Placeholder = "What should the agent build?"
	m.fields = [fieldCount]textinput.Model{title, desc}

	m.files = textinput.New()
	m.files.Prompt = "Files: "
	m.files.Placeholder = `[{"path":"README.md","content":"..."}] (blank for none)`

	if m.authed {
		m.busy = 1
	}
	return m
}

// Run starts the console program and blocks until the user quits.
func Run(ctx context.Context, c *console.Console, session Session) error {
	p := tea.NewProgram(New(ctx, c, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if !m.authed {
		return nil
	}
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		ideas, err := c.LoadIdeas(ctx)
		return ideasLoadedMsg{ideas: ideas, err: err}
	}
}

func (m Model) proposeCmd(title, description string) tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		err := c.ProposeIdea(ctx, title, description)
		return actionDoneMsg{action: console.ActionPropose, ideas: c.Ideas(), err: err}
	}
}

func (m Model) approveCmd(id int64) tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		err := c.ApproveIdea(ctx, id)
		return actionDoneMsg{action: console.ActionApprove, ideas: c.Ideas(), err: err}
	}
}

func (m Model) executeCmd(id int64, rawFiles string) tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		res, err := c.ExecuteIdea(ctx, id, rawFiles)
		msg := actionDoneMsg{action: console.ActionExecute, ideas: c.Ideas(), err: err}
		var ae *console.ActionError
		if err == nil || (errors.As(err, &ae) && ae.Action == console.ActionLoad) {
			msg.result = &res
		}
		return msg
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ideasLoadedMsg:
		m.busy--
		if msg.err != nil {
			m.alert = alertFor(msg.err)
			return m, nil
		}
		m.alert = ""
		m.setIdeas(msg.ideas)
		return m, nil

	case actionDoneMsg:
		m.busy--
		m.setIdeas(msg.ideas)
		m.alert = ""
		m.notice = ""
		if msg.err != nil {
			m.alert = alertFor(msg.err)
		}
		if msg.action == console.ActionPropose {
			form := m.console.Form()
			m.fields[fieldTitle].SetValue(form.Title)
			m.fields[fieldDescription].SetValue(form.Description)
		}
		if msg.result != nil {
			m.notice = console.Confirmation(*msg.result)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modePropose:
			return m.updatePropose(msg)
		case modeExecute:
			return m.updateExecute(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if !m.authed {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ideas)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Reload):
		m.busy++
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Propose):
		m.mode = modePropose
		m.focus = fieldTitle
		return m, m.focusField()
	case key.Matches(msg, m.keys.Approve):
		idea, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.busy++
		return m, m.approveCmd(idea.ID)
	case key.Matches(msg, m.keys.Execute):
		idea, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeExecute
		m.target = idea.ID
		return m, m.files.Focus()
	}
	return m, nil
}

func (m Model) updatePropose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % fieldCount
		return m, m.focusField()
	case key.Matches(msg, m.keys.Submit):
		if m.focus < fieldCount-1 {
			m.focus++
			return m, m.focusField()
		}
		title := m.fields[fieldTitle].Value()
		description := m.fields[fieldDescription].Value()
		m.console.SetForm(console.Form{Title: title, Description: description, Files: m.files.Value()})
		m.blurAll()
		m.mode = modeBrowse
		m.busy++
		return m, m.proposeCmd(title, description)
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateExecute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.files.Blur()
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.files.Blur()
		m.mode = modeBrowse
		m.busy++
		return m, m.executeCmd(m.target, m.files.Value())
	}

	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)
	return m, cmd
}

func (m *Model) focusField() tea.Cmd {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	return m.fields[m.focus].Focus()
}

func (m *Model) blurAll() {
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.files.Blur()
}

func (m *Model) setIdeas(ideas []model.Idea) {
	m.ideas = ideas
	if m.cursor >= len(ideas) {
		m.cursor = len(ideas) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (model.Idea, bool) {
	if m.cursor < 0 || m.cursor >= len(m.ideas) {
		return model.Idea{}, false
	}
	return m.ideas[m.cursor], true
}

func alertFor(err error) string {
	var ae *console.ActionError
	if errors.As(err, &ae) {
		return logging.PresentError(ae.Label(), ae.Err)
	}
	return logging.PresentError("", err)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Agentic AI CEO"))
	if m.authed {
		b.WriteString("   " + mutedStyle.Render(fmt.Sprintf("%d ideas", len(m.ideas))))
		if m.busy > 0 {
			b.WriteString("  " + accentStyle.Render("working…"))
		}
	}
	b.WriteString("\n\n")

	if !m.authed {
		b.WriteString("Please sign in to continue.\n")
		b.WriteString(mutedStyle.Render("Run 'agentceo login' and reopen the console."))
		b.WriteString("\n\n" + renderHelp([]key.Binding{m.keys.Quit}))
		return panelStyle.Render(b.String())
	}

	b.WriteString(m.renderIdeas())

	switch m.mode {
	case modePropose:
		form := titleStyle.Render("Propose an idea") + "\n" +
			m.fields[fieldTitle].View() + "\n" +
			m.fields[fieldDescription].View()
		b.WriteString("\n" + panelStyle.Render(form))
	case modeExecute:
		form := titleStyle.Render(fmt.Sprintf("Execute idea #%d", m.target)) + "\n" + m.files.View()
		b.WriteString("\n" + panelStyle.Render(form))
	}

	if m.notice != "" {
		b.WriteString("\n" + successStyle.Render("✔ "+m.notice))
	}
	if m.alert != "" {
		b.WriteString("\n" + errorStyle.Render("✖ "+m.alert))
	}

	help := m.keys.browseHelp()
	if m.mode != modeBrowse {
		help = m.keys.formHelp()
	}
	b.WriteString("\n\n" + renderHelp(help))

	out := b.String()
	if m.width > 0 {
		return panelStyle.Width(m.width - 2).Render(out)
	}
	return panelStyle.Render(out)
}

func (m Model) renderIdeas() string {
	if len(m.ideas) == 0 {
		if m.busy > 0 {
			return mutedStyle.Render("Loading ideas…") + "\n"
		}
		return mutedStyle.Render("No ideas yet. Press p to propose one.") + "\n"
	}

	var b strings.Builder
	for i, idea := range m.ideas {
		heading := console.Heading(idea, statusStyle(idea.Status).Render)
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render(">") + " "
		}
		b.WriteString(prefix + heading + "\n")
		if idea.Description != "" {
			b.WriteString("    " + mutedStyle.Render(idea.Description) + "\n")
		}
	}
	return b.String()
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
