package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/models"
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// KeyPressEvent - UI forwards one keypad token
type KeyPressEvent struct {
	Token keymap.Token
}

func (e KeyPressEvent) UIEvent() {}

// SetAngleModeEvent - UI selects DEG, RAD or GRA
type SetAngleModeEvent struct {
	Mode string
}

func (e SetAngleModeEvent) UIEvent() {}

// SetModeEvent - UI switches calculator mode
type SetModeEvent struct {
	Mode keymap.Mode
}

func (e SetModeEvent) UIEvent() {}

// ResetEvent - UI requests a full clear
type ResetEvent struct{}

func (e ResetEvent) UIEvent() {}

// SaveMatrixEvent - UI stores a matrix under MatA..MatD
type SaveMatrixEvent struct {
	Slot string
	Rows [][]float64
}

func (e SaveMatrixEvent) UIEvent() {}

// SaveVectorEvent - UI stores a vector under VctA..VctD
type SaveVectorEvent struct {
	Slot   string
	Values []float64
}

func (e SaveVectorEvent) UIEvent() {}

// DisplayUpdateEvent - Core pushes the display after every change
type DisplayUpdateEvent struct {
	Display models.Display
	Error   error
}

func (e DisplayUpdateEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrCoreFull    = errors.New("UI to Core channel is full")
	ErrUIFull      = errors.New("Core to UI channel is full")
	ErrClosed      = errors.New("event bus is closed")
)

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker implements circuit breaker pattern
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen {
		// Check if we should transition to half-open
		if cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
		}
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker

	mu     sync.RWMutex
	closed bool
}

// NewEventBus creates a bus whose channels each buffer size events.
func NewEventBus(size int) *EventBus {
	if size <= 0 {
		size = 100
	}
	return &EventBus{
		uiToCore:       make(chan UIEvent, size),
		coreToUI:       make(chan CoreEvent, size),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	return send(eb, "SendToCore", eb.uiToCore, event, ErrCoreFull)
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	return send(eb, "SendToUI", eb.coreToUI, event, ErrUIFull)
}

func send[T any](eb *EventBus, operation string, ch chan T, event T, full error) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return ErrClosed
	}
	if eb.circuitBreaker.IsOpen() {
		eb.reportError(operation, ErrCircuitOpen)
		return ErrCircuitOpen
	}

	select {
	case ch <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		eb.reportError(operation, full)
		return full
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

// Close closes both channels. Later sends return ErrClosed.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	close(eb.uiToCore)
	close(eb.coreToUI)
}
