package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

// CalculatorService owns a Session and serves it over the event bus. Every
// UI event is handled on one goroutine, in order.
type CalculatorService struct {
	session  *Session
	eventBus *eventbus.EventBus
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewCalculatorService(session *Session, eb *eventbus.EventBus, logger *zap.Logger) *CalculatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &CalculatorService{
		session:  session,
		eventBus: eb,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the core logic in a goroutine
func (cs *CalculatorService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI(cs.session.DisplayState(), nil)
	cs.wg.Add(1)
	go cs.eventLoop()
	cs.logger.Info("calculator service started")
}

// Stop ends the event loop and waits for it to return.
func (cs *CalculatorService) Stop() {
	cs.cancel()
	cs.wg.Wait()
	cs.logger.Info("calculator service stopped")
}

func (cs *CalculatorService) Session() *Session {
	return cs.session
}

func (cs *CalculatorService) eventLoop() {
	defer cs.wg.Done()
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			cs.handleUIEvent(event)
		}
	}
}

func (cs *CalculatorService) handleUIEvent(event eventbus.UIEvent) {
	var (
		st  DisplayState
		err error
	)
	switch e := event.(type) {
	case eventbus.KeyPressEvent:
		st = cs.session.HandleKey(e.Token)
	case eventbus.SetAngleModeEvent:
		var a AngleMode
		a, err = ParseAngleMode(e.Mode)
		if err != nil {
			st = cs.session.DisplayState()
		} else {
			st = cs.session.SetAngleMode(a)
		}
	case eventbus.SetModeEvent:
		st = cs.session.SetMode(e.Mode)
	case eventbus.ResetEvent:
		st = cs.session.Reset()
	case eventbus.SaveMatrixEvent:
		st, err = cs.session.SaveMatrix(e.Slot, e.Rows)
	case eventbus.SaveVectorEvent:
		st, err = cs.session.SaveVector(e.Slot, e.Values)
	default:
		cs.logger.Warn("unknown UI event", zap.Any("event", event))
		return
	}
	cs.pushStateToUI(st, err)
}

func (cs *CalculatorService) pushStateToUI(st DisplayState, err error) {
	if sendErr := cs.eventBus.SendToUI(eventbus.DisplayUpdateEvent{
		Display: ToModel(st),
		Error:   err,
	}); sendErr != nil {
		cs.logger.Warn("error sending state to UI", zap.Error(sendErr))
	}
}

// ToModel converts a display state into the form the UI renders.
func ToModel(st DisplayState) models.Display {
	return models.Display{
		Expression:   st.Expression,
		Result:       st.Result,
		AngleMode:    st.AngleMode.String(),
		Modifier:     st.Modifier.String(),
		Mode:         st.Mode.String(),
		Hyperbolic:   st.Hyperbolic,
		StorePending: st.StorePending,
	}
}
