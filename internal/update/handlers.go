package update

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.Help):
		appModel.ShowHelp = !appModel.ShowHelp
		return nil
	case key.Matches(keyMsg, keys.Keypad):
		appModel.ShowKeypad = !appModel.ShowKeypad
		return nil
	}
	for _, m := range keys.Modes {
		if key.Matches(keyMsg, m.Binding) {
			send(appModel, eb, eventbus.SetModeEvent{Mode: m.Mode})
			return nil
		}
	}
	for _, a := range keys.Angles {
		if key.Matches(keyMsg, a.Binding) {
			send(appModel, eb, eventbus.SetAngleModeEvent{Mode: a.Angle})
			return nil
		}
	}

	tok, ok := TokenFor(keyMsg.String())
	if !ok || !appModel.ServiceReady {
		return nil
	}
	if !send(appModel, eb, eventbus.KeyPressEvent{Token: tok}) {
		return nil
	}
	appModel.Pressed = string(tok)
	return TickCmd()
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) bool {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending key: " + err.Error()
		return false
	}
	return true
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.DisplayUpdateEvent:
		appModel.Display = event.Display
		if event.Error != nil {
			appModel.Status = "Error: " + event.Error.Error()
		} else {
			appModel.Status = "Ready"
		}
	}

	return nil
}

// TickMsg releases the highlighted key.
type TickMsg time.Time

const pressDuration = 150 * time.Millisecond

func TickCmd() tea.Cmd {
	return tea.Tick(pressDuration, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	appModel.Pressed = ""
	return nil
}
