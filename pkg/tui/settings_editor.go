package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/numheadings/pkg/models"
	"github.com/pluqqy/numheadings/pkg/settings"
)

const (
	fieldAuto = iota
	fieldFirstLevel
	fieldMaxLevel
	fieldContents
	fieldSkipTopLevel
	fieldStyleLevel1
	fieldStyleLevelOther
	fieldSeparator
	fieldCount
)

// SaveFunc persists edited settings
type SaveFunc func(models.NumberingSettings) error

// StatusMsg is shown below the form until the next key press
type StatusMsg string

type settingsSavedMsg struct {
	err error
}

// SettingsEditorModel edits the numbering settings of one document
type SettingsEditorModel struct {
	path        string
	source      string
	settings    models.NumberingSettings
	original    models.NumberingSettings
	save        SaveFunc
	showPreview bool

	contentsInput textinput.Model
	viewport      viewport.Model
	exitConfirm   *ConfirmDialog

	focusIndex int
	hasChanges bool
	status     string
	quitting   bool
	width      int
	height     int
}

// NewSettingsEditorModel creates an editor for path starting from current
func NewSettingsEditorModel(path, source string, current models.NumberingSettings, save SaveFunc, showPreview bool) *SettingsEditorModel {
	m := &SettingsEditorModel{
		path:          path,
		source:        source,
		settings:      current,
		original:      current,
		save:          save,
		showPreview:   showPreview,
		contentsInput: textinput.New(),
		viewport:      viewport.New(80, 20), // Default size
		exitConfirm:   NewConfirmDialog(),
		width:         80,
		height:        24,
	}

	m.contentsInput.Placeholder = "Table of Contents"
	m.contentsInput.CharLimit = 100
	m.contentsInput.Width = 40
	m.contentsInput.SetValue(current.Contents)

	m.updateFocus()
	return m
}

// Settings returns the settings as currently edited
func (m *SettingsEditorModel) Settings() models.NumberingSettings {
	return m.settings
}

// HasChanges reports whether there are unsaved edits
func (m *SettingsEditorModel) HasChanges() bool {
	return m.hasChanges
}

func (m *SettingsEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SettingsEditorModel) updateFocus() {
	if m.focusIndex == fieldContents {
		m.contentsInput.Focus()
	} else {
		m.contentsInput.Blur()
	}
}

func (m *SettingsEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("✗ Failed to save settings: %v", msg.err)
			return m, nil
		}
		m.original = m.settings
		m.hasChanges = false
		m.status = "✓ Settings saved"
		return m, nil

	case StatusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.exitConfirm.IsOpen() {
			return m, m.exitConfirm.HandleKey(msg)
		}
		m.status = ""

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.hasChanges {
				m.exitConfirm.Open(
					DialogConfig{
						Title:       "DISCARD CHANGES",
						Message:     fmt.Sprintf("The numbering settings of %s were changed but not saved.", m.path),
						Warning:     "Quit without writing them?",
						Destructive: true,
						Width:       m.width - 4,
						Height:      10,
					},
					func() tea.Cmd {
						m.quitting = true
						return tea.Quit
					},
				)
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case "ctrl+s":
			return m, m.saveSettings()

		case "ctrl+y":
			return m, copyLine(m.settings)

		case "up", "shift+tab":
			m.focusIndex = (m.focusIndex + fieldCount - 1) % fieldCount
			m.updateFocus()
			return m, nil

		case "down", "tab":
			m.focusIndex = (m.focusIndex + 1) % fieldCount
			m.updateFocus()
			return m, nil

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if m.focusIndex == fieldContents {
			prev := m.contentsInput.Value()
			m.contentsInput, cmd = m.contentsInput.Update(msg)
			cmds = append(cmds, cmd)
			if value := m.contentsInput.Value(); value != prev {
				m.setContents(value)
			}
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case " ", "space", "enter":
			m.toggle()
		case "left", "h":
			m.cycle(-1)
		case "right", "l":
			m.cycle(1)
		}
	}

	return m, tea.Batch(cmds...)
}

// setContents accepts only values the settings line can store
func (m *SettingsEditorModel) setContents(value string) {
	if value != "" && !models.IsValidContents(value) {
		m.status = "⚠ " + models.ErrInvalidContents.Error()
		return
	}
	m.settings.Contents = value
	m.markChanged()
}

func (m *SettingsEditorModel) toggle() {
	switch m.focusIndex {
	case fieldAuto:
		m.settings.Auto = !m.settings.Auto
	case fieldSkipTopLevel:
		m.settings.SkipTopLevel = !m.settings.SkipTopLevel
	default:
		m.cycle(1)
		return
	}
	m.markChanged()
}

func (m *SettingsEditorModel) cycle(step int) {
	switch m.focusIndex {
	case fieldFirstLevel:
		m.settings.FirstLevel = cycleLevel(m.settings.FirstLevel, step)
	case fieldMaxLevel:
		m.settings.MaxLevel = cycleLevel(m.settings.MaxLevel, step)
	case fieldStyleLevel1:
		m.settings.StyleLevel1 = cycleString(models.LevelStyles, m.settings.StyleLevel1, step)
	case fieldStyleLevelOther:
		m.settings.StyleLevelOther = cycleString(models.LevelStyles, m.settings.StyleLevelOther, step)
	case fieldSeparator:
		m.settings.Separator = cycleString(models.Separators, m.settings.Separator, step)
	case fieldAuto, fieldSkipTopLevel:
		m.toggle()
		return
	default:
		return
	}
	m.markChanged()
}

func (m *SettingsEditorModel) markChanged() {
	m.hasChanges = m.settings != m.original
}

func cycleLevel(level, step int) int {
	span := models.MaxHeadingLevel - models.MinHeadingLevel + 1
	next := (level - models.MinHeadingLevel + step) % span
	if next < 0 {
		next += span
	}
	return next + models.MinHeadingLevel
}

func cycleString(values []string, current string, step int) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(values)
	if idx < 0 {
		idx += len(values)
	}
	return values[idx]
}

func (m *SettingsEditorModel) saveSettings() tea.Cmd {
	s := m.settings
	save := m.save
	return func() tea.Msg {
		if err := models.ValidateNumberingSettings(s); err != nil {
			return settingsSavedMsg{err: err}
		}
		if save == nil {
			return settingsSavedMsg{}
		}
		return settingsSavedMsg{err: save(s)}
	}
}

func copyLine(s models.NumberingSettings) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(settings.Line(s)); err != nil {
			return StatusMsg(fmt.Sprintf("✗ Failed to copy: %v", err))
		}
		return StatusMsg("✓ Copied frontmatter line to clipboard")
	}
}

func (m *SettingsEditorModel) View() string {
	if m.quitting {
		return ""
	}

	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	if m.exitConfirm.IsOpen() {
		return contentStyle.Render(m.exitConfirm.View())
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")). // Active pane color
		Width(m.width - 4)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("170"))

	var content strings.Builder

	heading := "NUMBER HEADINGS"
	remainingWidth := m.width - 4 - len(heading) - 5
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	content.WriteString(contentStyle.Render(headerStyle.Render(heading) + " " + headerStyle.Render(strings.Repeat(":", remainingWidth))))
	content.WriteString("\n\n")

	m.updateViewportContent()
	content.WriteString(contentStyle.Render(m.viewport.View()))

	var s strings.Builder
	s.WriteString(contentStyle.Render(borderStyle.Render(content.String())))

	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(contentStyle.Render(m.status))
	}

	helpBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width-4).
		Padding(0, 1)

	help := []string{
		"↑↓ navigate",
		"←→ change",
		"space toggle",
		"^y copy",
		"^s save",
		"esc quit",
	}
	alignedHelp := lipgloss.NewStyle().
		Width(m.width - 8).
		Align(lipgloss.Right).
		Render(formatHelpText(help))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(helpBorderStyle.Render(alignedHelp)))

	return s.String()
}

func (m *SettingsEditorModel) updateViewportContent() {
	labelStyle := lipgloss.NewStyle().
		Width(20).
		Foreground(lipgloss.Color("245"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205"))

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	var content strings.Builder
	content.WriteString(commentStyle.Render(fmt.Sprintf("%s (%s)", m.path, m.source)))
	content.WriteString("\n\n")

	rows := []struct {
		field int
		label string
		value string
		hint  string
	}{
		{fieldAuto, "Auto:", checkbox(m.settings.Auto), "# Renumber headings whenever the document changes"},
		{fieldFirstLevel, "First Level:", cycler(strconv.Itoa(m.settings.FirstLevel)), "# Topmost heading level that gets a number"},
		{fieldMaxLevel, "Max Level:", cycler(strconv.Itoa(m.settings.MaxLevel)), "# Deepest heading level that gets a number"},
		{fieldContents, "Contents:", m.contentsInput.View(), "# Heading that holds the table of contents, empty to disable"},
		{fieldSkipTopLevel, "Skip Top Level:", checkbox(m.settings.SkipTopLevel), "# Leave the first numbered level without a number"},
		{fieldStyleLevel1, "Style Level 1:", cycler(m.settings.StyleLevel1), "# 1 = arabic, A = letters, I = roman"},
		{fieldStyleLevelOther, "Style Other:", cycler(m.settings.StyleLevelOther), "# Style for every deeper level"},
		{fieldSeparator, "Separator:", cycler(displaySeparator(m.settings.Separator)), "# Character written after the number"},
	}

	for _, row := range rows {
		fieldLine := labelStyle.Render(row.label) + " " + row.value
		if m.focusIndex == row.field {
			content.WriteString(focusedStyle.Render("▸ " + fieldLine))
			content.WriteString("\n")
			content.WriteString(commentStyle.Render("  " + row.hint))
		} else {
			content.WriteString(normalStyle.Render("  " + fieldLine))
		}
		content.WriteString("\n")
	}

	if m.showPreview {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("FRONTMATTER"))
		content.WriteString("\n\n")
		wrapWidth := m.viewport.Width - 2
		if wrapWidth < 20 {
			wrapWidth = 20
		}
		content.WriteString(wordwrap.String(strings.TrimSuffix(settings.Line(m.settings), "\n"), wrapWidth))
		content.WriteString("\n")
	}

	if m.hasChanges {
		content.WriteString("\n")
		content.WriteString(commentStyle.Render("  (unsaved changes)"))
	}

	m.viewport.SetContent(content.String())
}

// SetSize updates the terminal dimensions
func (m *SettingsEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.width == 0 || m.height == 0 {
		return
	}
	m.viewport.Width = m.width - 10
	m.viewport.Height = m.height - 10
}

func checkbox(on bool) string {
	if on {
		return "[✓]"
	}
	return "[ ]"
}

func cycler(value string) string {
	return "‹ " + value + " ›"
}

func displaySeparator(sep string) string {
	if sep == "" {
		return "none"
	}
	return sep
}

func formatHelpText(items []string) string {
	return strings.Join(items, " • ")
}
