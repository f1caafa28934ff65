package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/internal/update"
)

const eventBufferSize = 100

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.CalculatorService
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	keys       update.KeyMap
	help       help.Model
}

func NewApplication(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	session, err := NewSession(cfg, logger)
	if err != nil {
		return nil, err
	}

	// Create event bus
	eb := eventbus.NewEventBus(eventBufferSize)
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		logger.Warn("event bus error", zap.String("operation", e.Operation), zap.Error(e.Err))
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewCalculatorService(session, eb, logger)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg),
		dispatcher: disp,
		keys:       update.DefaultKeyMap(),
		help:       help.New(),
	}

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

// NewSession builds a calculator session in the configured angle mode and
// calculation mode.
func NewSession(cfg *config.Config, logger *zap.Logger) (*core.Session, error) {
	session := core.NewSession(nil, logger)
	if cfg == nil {
		return session, nil
	}

	angle, err := core.ParseAngleMode(cfg.AngleMode)
	if err != nil {
		return nil, err
	}
	session.SetAngleMode(angle)

	mode, ok := keymap.ParseMode(cfg.Mode)
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	session.SetMode(mode)
	return session, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(cfg *config.Config) models.AppModel {
	// The display stays empty until the core pushes its first state.
	m := models.AppModel{
		Status:       "Ready",
		ServiceReady: true,
		ShowKeypad:   true,
	}
	if cfg != nil {
		m.ShowKeypad = cfg.Display.ShowKeypad
	}
	return m
}
