// Copyright (c) 2025 HireSynapse
// Licensed under the MIT License. See LICENSE file in the project root for details.

package console

import (
	"fmt"
	"io"
	"strconv"

	"agentceo/cli/internal/model"

	"github.com/pterm/pterm"
)

// TableHeader is the header row of the idea table.
var TableHeader = []string{"ID", "Title", "Status", "Description"}

// Rows converts ideas into table rows (header first). Values are shown verbatim.
func Rows(ideas []model.Idea) [][]string {
	rows := make([][]string, 0, len(ideas)+1)
	rows = append(rows, TableHeader)
	for _, i := range ideas {
		rows = append(rows, []string{strconv.FormatInt(i.ID, 10), i.Title, i.Status, i.Description})
	}
	return rows
}

// Heading is the one-line summary shown on an idea card. When decorate is
// non-nil it is applied to the status text.
func Heading(i model.Idea, decorate func(...string) string) string {
	status := i.Status
	if decorate != nil {
		status = decorate(status)
	}
	return fmt.Sprintf("#%d %s — %s", i.ID, i.Title, status)
}

// RenderTable writes the idea list as a table.
func RenderTable(w io.Writer, ideas []model.Idea) error {
	if len(ideas) == 0 {
		pterm.Fprintln(w, pterm.Gray("No ideas yet. Propose one with 'agentceo ideas propose'."))
		return nil
	}
	return pterm.DefaultTable.
		WithWriter(w).
		WithHasHeader().
		WithBoxed().
		WithData(Rows(ideas)).
		Render()
}
