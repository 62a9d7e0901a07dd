package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/numheadings/pkg/models"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestEditor(save SaveFunc) *SettingsEditorModel {
	return NewSettingsEditorModel("notes.md", "compact", models.DefaultNumberingSettings(), save, true)
}

func focus(m *SettingsEditorModel, field int) {
	for m.focusIndex != field {
		m.Update(key(tea.KeyDown))
	}
}

func TestNewSettingsEditorModel(t *testing.T) {
	m := newTestEditor(nil)

	assert.Equal(t, models.DefaultNumberingSettings(), m.Settings())
	assert.False(t, m.HasChanges())
	assert.Equal(t, fieldAuto, m.focusIndex)
	assert.NotNil(t, m.exitConfirm)
	assert.False(t, m.contentsInput.Focused())
}

func TestSettingsEditor_Navigation(t *testing.T) {
	m := newTestEditor(nil)

	m.Update(key(tea.KeyUp))
	assert.Equal(t, fieldSeparator, m.focusIndex, "up from the first field wraps")

	m.Update(key(tea.KeyTab))
	assert.Equal(t, fieldAuto, m.focusIndex)

	focus(m, fieldContents)
	assert.True(t, m.contentsInput.Focused())

	m.Update(key(tea.KeyDown))
	assert.False(t, m.contentsInput.Focused())
}

func TestSettingsEditor_Toggle(t *testing.T) {
	m := newTestEditor(nil)

	m.Update(key(tea.KeySpace))
	assert.True(t, m.Settings().Auto)
	assert.True(t, m.HasChanges())

	m.Update(key(tea.KeySpace))
	assert.False(t, m.Settings().Auto)
	assert.False(t, m.HasChanges(), "toggling back restores the original")

	focus(m, fieldSkipTopLevel)
	m.Update(key(tea.KeyRight))
	assert.True(t, m.Settings().SkipTopLevel)
}

func TestSettingsEditor_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		field int
		keys  []tea.KeyMsg
		check func(t *testing.T, s models.NumberingSettings)
	}{
		{
			name:  "first level forward",
			field: fieldFirstLevel,
			keys:  []tea.KeyMsg{key(tea.KeyRight)},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, 2, s.FirstLevel) },
		},
		{
			name:  "first level wraps backward",
			field: fieldFirstLevel,
			keys:  []tea.KeyMsg{key(tea.KeyLeft)},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, 6, s.FirstLevel) },
		},
		{
			name:  "max level wraps forward",
			field: fieldMaxLevel,
			keys:  []tea.KeyMsg{key(tea.KeyRight)},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, 1, s.MaxLevel) },
		},
		{
			name:  "style level 1 with vim keys",
			field: fieldStyleLevel1,
			keys:  []tea.KeyMsg{runes("l"), runes("l")},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, "I", s.StyleLevel1) },
		},
		{
			name:  "style other backward",
			field: fieldStyleLevelOther,
			keys:  []tea.KeyMsg{runes("h")},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, "I", s.StyleLevelOther) },
		},
		{
			name:  "separator",
			field: fieldSeparator,
			keys:  []tea.KeyMsg{key(tea.KeyRight), key(tea.KeyRight)},
			check: func(t *testing.T, s models.NumberingSettings) { assert.Equal(t, ".", s.Separator) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestEditor(nil)
			focus(m, tt.field)
			for _, k := range tt.keys {
				m.Update(k)
			}
			tt.check(t, m.Settings())
			assert.True(t, m.HasChanges())
		})
	}
}

func TestSettingsEditor_Contents(t *testing.T) {
	m := newTestEditor(nil)
	focus(m, fieldContents)

	for _, r := range "ToC" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "ToC", m.Settings().Contents)

	m.Update(runes(","))
	assert.Equal(t, "ToC", m.Settings().Contents, "a comma cannot be stored")
	assert.Contains(t, m.status, models.ErrInvalidContents.Error())

	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	assert.Empty(t, m.Settings().Contents)
	assert.False(t, m.HasChanges())
}

func TestSettingsEditor_Save(t *testing.T) {
	var saved []models.NumberingSettings
	m := newTestEditor(func(s models.NumberingSettings) error {
		saved = append(saved, s)
		return nil
	})

	m.Update(key(tea.KeySpace))
	_, cmd := m.Update(key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m.Update(cmd())

	require.Len(t, saved, 1)
	assert.True(t, saved[0].Auto)
	assert.False(t, m.HasChanges())
	assert.Equal(t, "✓ Settings saved", m.status)
}

func TestSettingsEditor_SaveError(t *testing.T) {
	m := newTestEditor(func(models.NumberingSettings) error {
		return errors.New("disk full")
	})

	m.Update(key(tea.KeySpace))
	_, cmd := m.Update(key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.True(t, m.HasChanges())
	assert.Contains(t, m.status, "disk full")
}

func TestSettingsEditor_ExitConfirm(t *testing.T) {
	t.Run("no changes quits immediately", func(t *testing.T) {
		m := newTestEditor(nil)
		_, cmd := m.Update(key(tea.KeyEsc))
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})

	t.Run("changes ask first", func(t *testing.T) {
		m := newTestEditor(nil)
		m.Update(key(tea.KeySpace))

		m.Update(key(tea.KeyEsc))
		assert.True(t, m.exitConfirm.IsOpen())
		assert.False(t, m.quitting)
		assert.Contains(t, m.View(), "DISCARD CHANGES")

		m.Update(runes("n"))
		assert.False(t, m.exitConfirm.IsOpen())
		assert.False(t, m.quitting)

		m.Update(key(tea.KeyEsc))
		_, cmd := m.Update(runes("y"))
		assert.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestSettingsEditor_View(t *testing.T) {
	m := newTestEditor(nil)
	m.SetSize(100, 40)

	m.Update(key(tea.KeySpace))
	view := m.View()

	assert.Contains(t, view, "NUMBER HEADINGS")
	assert.Contains(t, view, "notes.md (compact)")
	assert.Contains(t, view, "number headings: auto, first-level 1, max 6, 1.1")
	assert.Contains(t, view, "(unsaved changes)")
}

func TestCycleString(t *testing.T) {
	assert.Equal(t, "A", cycleString(models.LevelStyles, "1", 1))
	assert.Equal(t, "I", cycleString(models.LevelStyles, "1", -1))
	assert.Equal(t, "A", cycleString(models.LevelStyles, "unknown", 1), "unknown values start from the first entry")
}
