package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/internal/update"
)

func TestNewSessionFollowsConfig(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	cfg.AngleMode = "rad"
	cfg.Mode = "matrix"

	s, err := NewSession(cfg, nil)
	require.NoError(t, err)
	st := s.DisplayState()
	assert.Equal(t, core.Radians, st.AngleMode)
	assert.Equal(t, keymap.Matrix, st.Mode)

	cfg.AngleMode = "turns"
	_, err = NewSession(cfg, nil)
	assert.Error(t, err)

	cfg.AngleMode = "deg"
	cfg.Mode = "base-n"
	_, err = NewSession(cfg, nil)
	assert.Error(t, err)
}

func TestModelRendersCoreUpdates(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	cfg.Display.ShowKeypad = false
	app, err := NewApplication(cfg, nil)
	require.NoError(t, err)
	defer func() {
		app.dispatcher.Stop()
		app.eventBus.Close()
	}()

	m := app.model
	assert.True(t, m.appModel.ServiceReady)
	assert.False(t, m.appModel.ShowKeypad)

	ev := eventbus.DisplayUpdateEvent{Display: models.Display{
		Expression: "5P2", Result: "20", AngleMode: "DEG", Mode: "COMP",
	}}
	_, cmd := m.Update(update.CoreEventMsg{Event: ev})
	assert.NotNil(t, cmd)
	assert.Equal(t, "20", m.appModel.Display.Result)

	view := m.View()
	assert.Contains(t, view, "5P2")
	assert.Contains(t, view, "20")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("7")})
	assert.Equal(t, eventbus.KeyPressEvent{Token: keymap.Key7}, <-app.eventBus.UIToCore())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)
}
