package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type rowAction int

const (
	rowActionNone rowAction = iota
	rowActionEdit
	rowActionDelete
)

// rowTable renders the full record list with a cursor and an inline
// confirm step before a delete intent is emitted.
type rowTable struct {
	headers    []string
	rows       [][]string
	cursor     int
	confirming bool
	empty      string
}

func newRowTable(headers []string, empty string) rowTable {
	return rowTable{headers: headers, empty: empty}
}

// withRows replaces the rendered list, clamps the cursor and cancels any
// pending confirmation (the row it referred to may be gone).
func (t rowTable) withRows(rows [][]string) rowTable {
	t.rows = rows
	t.confirming = false
	if t.cursor >= len(rows) {
		t.cursor = len(rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	return t
}

// update interprets one key press. A delete intent is only emitted after
// the confirm step; cancelling performs no action.
func (t rowTable) update(msg tea.KeyMsg) (rowTable, rowAction) {
	if t.confirming {
		switch msg.String() {
		case "y", "Y":
			t.confirming = false
			return t, rowActionDelete
		case "n", "N", "esc":
			t.confirming = false
		}
		return t, rowActionNone
	}

	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(t.rows)-1 {
			t.cursor++
		}
	case "enter", "e":
		if len(t.rows) > 0 {
			return t, rowActionEdit
		}
	case "d":
		if len(t.rows) > 0 {
			t.confirming = true
		}
	}
	return t, rowActionNone
}

func (t rowTable) view(styles Styles) string {
	if len(t.rows) == 0 {
		return styles.Muted.Render(t.empty) + "\n"
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	for i, h := range t.headers {
		sb.WriteString(styles.Header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)) + "\n")

	for r, row := range t.rows {
		style := styles.Row
		if r == t.cursor {
			style = styles.RowActive
		}
		for i, cell := range row {
			if i < len(widths) {
				sb.WriteString(style.Width(widths[i]).Render(cell))
			}
		}
		sb.WriteString("\n")
	}

	if t.confirming {
		sb.WriteString(styles.Error.Render("delete the selected record? (y/n)") + "\n")
	}
	return sb.String()
}
