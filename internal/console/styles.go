// Package console is the terminal admin UI for the catalog: a table per
// entity with a modal form for create/edit and a confirm step for delete.
package console

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by the console components.
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Header    lipgloss.Style
	Row       lipgloss.Style
	RowActive lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Help      lipgloss.Style
	Modal     lipgloss.Style
}

func DefaultStyles() Styles {
	teal := lipgloss.Color("#4ECDC4")
	red := lipgloss.Color("#e53935")
	green := lipgloss.Color("#8BC34A")
	gray := lipgloss.Color("240")

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(teal),
		TabActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(teal).Padding(0, 1),
		TabIdle:   lipgloss.NewStyle().Foreground(gray).Padding(0, 1),
		Header:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Row:       lipgloss.NewStyle().Padding(0, 1),
		RowActive: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Muted:     lipgloss.NewStyle().Foreground(gray),
		Label:     lipgloss.NewStyle().Bold(true),
		Error:     lipgloss.NewStyle().Foreground(red),
		Success:   lipgloss.NewStyle().Foreground(green),
		Help:      lipgloss.NewStyle().Foreground(gray),
		Modal:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}
