package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/suderio/ojcalc/internal/render"
	"github.com/suderio/ojcalc/internal/session"
)

func enter(t *testing.T, m *replModel, val string) tea.Cmd {
	t.Helper()
	m.textInput.SetValue(val)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestREPL_SetupThenQuick(t *testing.T) {
	m := newREPLModel(session.DefaultConfig(), render.FormatText, zap.NewNop(), true)
	assert.Equal(t, stageMode, m.stage)

	enter(t, m, "2")
	assert.Equal(t, stageDetail, m.stage)
	assert.Equal(t, session.ModeQuick, m.cfg.Mode)

	enter(t, m, "y")
	assert.Equal(t, stageCalc, m.stage)
	assert.True(t, m.cfg.ShowDetail)

	enter(t, m, "3,5,2,1")
	assert.Contains(t, m.logContent, "100.0% (6/6)")
	assert.Contains(t, m.logContent, "dice 5 (EVD+dice=6): evaded")

	assert.True(t, isQuit(enter(t, m, "exit")))
}

func TestREPL_SetupRejectsBadAnswers(t *testing.T) {
	m := newREPLModel(session.DefaultConfig(), render.FormatText, zap.NewNop(), true)

	enter(t, m, "7")
	assert.Equal(t, stageMode, m.stage)
	assert.Contains(t, m.logContent, "unknown input mode")

	enter(t, m, "")
	assert.Equal(t, stageDetail, m.stage)
	assert.Equal(t, session.ModeDetailed, m.cfg.Mode)

	enter(t, m, "maybe")
	assert.Equal(t, stageDetail, m.stage)

	enter(t, m, "n")
	assert.Equal(t, stageCalc, m.stage)
	assert.False(t, m.cfg.ShowDetail)
}

func TestREPL_Detailed(t *testing.T) {
	m := newREPLModel(session.DefaultConfig(), render.FormatText, zap.NewNop(), false)
	assert.Equal(t, stageCalc, m.stage)
	assert.Contains(t, m.textInput.Prompt, "HP")

	enter(t, m, "0")
	assert.Contains(t, m.logContent, "HP must be greater than 0")
	assert.Contains(t, m.textInput.Prompt, "HP")

	for _, v := range []string{"3", "5", "2", "1"} {
		assert.False(t, isQuit(enter(t, m, v)))
	}
	assert.Contains(t, m.textInput.Prompt, "Dice")

	enter(t, m, "")
	assert.Contains(t, m.logContent, "33.3% (2/6)")
	assert.Contains(t, m.textInput.Prompt, "HP")
	assert.Equal(t, []string{"0", "3", "5", "2", "1"}, m.history)
}

func TestREPL_QuickIgnoresBlankLines(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Mode = session.ModeQuick
	m := newREPLModel(cfg, render.FormatText, zap.NewNop(), false)

	before := m.logContent
	enter(t, m, "")
	assert.NotContains(t, m.logContent[len(before):], "Error")

	enter(t, m, "3,5")
	assert.Contains(t, m.logContent, "Error:")
}

func TestREPL_HonoursFormat(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Mode = session.ModeQuick
	m := newREPLModel(cfg, render.FormatJSON, zap.NewNop(), false)

	enter(t, m, "3,5,2,1")
	assert.Contains(t, m.logContent, `"recommendation": "DEF"`)
	assert.NotContains(t, m.logContent, "=== Result ===")

	m = newREPLModel(cfg, render.FormatYAML, zap.NewNop(), false)
	enter(t, m, "3,5,2,1")
	assert.Contains(t, m.logContent, "recommendation: DEF")
}

func TestREPL_EscQuits(t *testing.T) {
	m := newREPLModel(session.DefaultConfig(), render.FormatText, zap.NewNop(), true)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, isQuit(cmd))
}

func TestREPL_View(t *testing.T) {
	m := newREPLModel(session.DefaultConfig(), render.FormatText, zap.NewNop(), false)
	assert.Equal(t, "Initializing...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.View(), "Mode: detailed")
}
