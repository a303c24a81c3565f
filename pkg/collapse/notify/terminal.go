// Package notify shows collapse results to the user.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal renders notifications as a bordered box.
type Terminal struct {
	w     io.Writer
	box   lipgloss.Style
	title lipgloss.Style
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w: w,
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		title: lipgloss.NewStyle().Bold(true),
	}
}

// Show writes the notification. Write errors are ignored.
func (t *Terminal) Show(title, body string) {
	t.render(t.box, title, body)
}

// Failure writes an error notification with a red border.
func (t *Terminal) Failure(title, body string) {
	t.render(t.box.Copy().BorderForeground(lipgloss.Color("160")), title, body)
}

func (t *Terminal) render(box lipgloss.Style, title, body string) {
	content := lipgloss.JoinVertical(lipgloss.Left, t.title.Render(title), "", body)
	fmt.Fprintln(t.w, box.Render(content))
}
