// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Propose key.Binding
	Approve key.Binding
	Execute key.Binding
	Reload  key.Binding
	Quit    key.Binding

	Next   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Propose: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "propose")),
		Approve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Execute: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "execute")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Next:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Propose, k.Approve, k.Execute, k.Reload, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Cancel}
}
