package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogConfig describes the question shown by a ConfirmDialog
type DialogConfig struct {
	Title   string
	Message string
	Warning string
	// Destructive colors the yes answer red
	Destructive bool
	Width       int
	Height      int
}

// ConfirmDialog asks a yes/no question on top of the settings form
type ConfirmDialog struct {
	open   bool
	config DialogConfig
	onYes  func() tea.Cmd
}

func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Open shows the dialog. onYes runs when the user answers yes; any other
// answer closes the dialog.
func (d *ConfirmDialog) Open(config DialogConfig, onYes func() tea.Cmd) {
	d.open = true
	d.config = config
	d.onYes = onYes
}

func (d *ConfirmDialog) IsOpen() bool {
	return d.open
}

// HandleKey answers the dialog; keys other than y, n and esc are ignored
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if !d.open {
		return nil
	}

	switch strings.ToLower(msg.String()) {
	case "y":
		d.open = false
		if d.onYes != nil {
			return d.onYes()
		}
	case "n", "esc":
		d.open = false
	}
	return nil
}

func (d *ConfirmDialog) View() string {
	if !d.open {
		return ""
	}

	width, height := d.config.Width, d.config.Height
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 10
	}

	accent := lipgloss.Color("214")
	center := lipgloss.NewStyle().Width(width - 8).Align(lipgloss.Center)

	var lines []string
	if d.config.Title != "" {
		lines = append(lines, center.Render(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(d.config.Title)), "")
	}
	if d.config.Message != "" {
		lines = append(lines, center.Render(d.config.Message))
	}
	if d.config.Warning != "" {
		lines = append(lines, "", center.Render(lipgloss.NewStyle().Foreground(accent).Render(d.config.Warning)))
	}
	lines = append(lines, "", center.Render(answerKeys(d.config.Destructive)+"  (yes / no)"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func answerKeys(destructive bool) string {
	yes, no := lipgloss.Color("82"), lipgloss.Color("196")
	if destructive {
		yes, no = no, yes
	}
	return fmt.Sprintf("[%s] / [%s]",
		lipgloss.NewStyle().Foreground(yes).Render("y"),
		lipgloss.NewStyle().Foreground(no).Render("n"))
}
