package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/update"
	"github.com/Rorical/RoriCalc/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus, m.keys)
	m.help.ShowAll = m.appModel.ShowHelp
	m.help.Width = m.appModel.Width

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderDisplay(m.appModel.Display, m.appModel.Width))
	b.WriteString("\n")
	if m.appModel.ShowKeypad {
		b.WriteString(components.RenderKeypad(m.appModel.Display, m.appModel.Pressed))
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Width))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
