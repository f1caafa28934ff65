package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/RoriCalc/internal/calculus"
	"github.com/Rorical/RoriCalc/internal/expression"
	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/memory"
	"github.com/Rorical/RoriCalc/internal/numfmt"
)

// DisplayState is everything the display shows.
type DisplayState struct {
	Expression   string
	Result       string
	AngleMode    AngleMode
	Modifier     keymap.Modifier
	Mode         keymap.Mode
	Hyperbolic   bool
	StorePending bool
}

// Session is one independent calculator: buffers, modifiers, memory and
// settings. All methods are safe to call from several goroutines; each key
// is handled to completion before the next.
type Session struct {
	mu sync.Mutex

	builder  *expression.Builder
	bank     *memory.Bank
	pipeline *Pipeline
	history  *History
	logger   *zap.Logger

	result       string
	modifier     keymap.Modifier
	mode         keymap.Mode
	angle        AngleMode
	hyperbolic   bool
	storePending bool
}

// NewSession creates a calculator in COMP mode with degrees selected.
// A nil pipeline gets the default backend; a nil logger logs nothing.
func NewSession(p *Pipeline, logger *zap.Logger) *Session {
	if p == nil {
		p = NewPipeline(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		builder:  expression.NewBuilder(),
		bank:     memory.NewBank(),
		pipeline: p,
		history:  NewHistory(),
		logger:   logger,
		result:   "0",
		mode:     keymap.Comp,
		angle:    Degrees,
	}
}

// HandleKey processes one keypad token and returns the new display state.
func (s *Session) HandleKey(tok keymap.Token) DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("key", zap.String("token", string(tok)), zap.Stringer("modifier", s.modifier))

	if s.storePending {
		s.store(tok)
		return s.display()
	}

	switch tok {
	case keymap.ShiftKey:
		s.modifier = s.modifier.Toggle(keymap.Shift)
	case keymap.AlphaKey:
		s.modifier = s.modifier.Toggle(keymap.Alpha)
	case keymap.HypKey:
		s.hyperbolic = !s.hyperbolic
	case keymap.AllClear:
		s.builder.Clear()
		s.result = "0"
	case keymap.Delete:
		s.builder.DeleteLast()
	case keymap.Equals:
		s.evaluate()
	case keymap.On:
		s.reset()
	case keymap.Up:
		if e, ok := s.history.Previous(); ok {
			s.recall(e)
		}
	case keymap.Down:
		if e, ok := s.history.Next(); ok {
			s.recall(e)
		} else {
			s.builder.Clear()
		}
	default:
		s.translate(tok)
	}
	return s.display()
}

func (s *Session) translate(tok keymap.Token) {
	m, consumed := keymap.Translate(tok, s.modifier, s.mode)
	if consumed {
		s.modifier = keymap.None
	}

	switch m.Action {
	case keymap.ToggleFraction:
		if err := s.toggleFraction(); err != nil {
			s.logger.Debug("fraction toggle ignored", zap.Error(err))
		}
	case keymap.Store:
		s.storePending = true
	case keymap.MemoryAdd, keymap.MemorySubtract:
		s.accumulate(m.Action == keymap.MemorySubtract)
	default:
		s.builder.Prepare(m.Continues, s.bank.LastAnswer())
		s.builder.Append(m.Visual, m.Internal)
	}
}

// evaluate runs "=" and reports whether it succeeded. On failure only the
// displayed result changes.
func (s *Session) evaluate() bool {
	internal := s.builder.Internal()
	out, err := s.pipeline.Evaluate(internal, s.bank, s.angle)
	if err != nil {
		s.logger.Debug("evaluation failed", zap.String("expr", internal), zap.Error(err))
		s.result = ErrorMarker
		return false
	}
	s.result = out
	s.bank.SetLastAnswer(out)
	s.history.Record(Entry{Visual: s.builder.Visual(), Internal: internal, Result: out})
	s.builder.MarkEvaluated()
	return true
}

// currentValue is the number STO and M+ act on: the pending expression if
// one is being typed, otherwise the last answer.
func (s *Session) currentValue() (float64, bool) {
	if !s.builder.Empty() && !s.builder.Awaiting() {
		if !s.evaluate() {
			return 0, false
		}
	}
	return s.bank.AnswerValue(), true
}

func (s *Session) store(tok keymap.Token) {
	s.storePending = false
	s.modifier = keymap.None

	m, _ := keymap.Translate(tok, keymap.Alpha, s.mode)
	if m.Action != keymap.Append || !memory.IsScalarRegister(m.Internal) {
		s.logger.Debug("store cancelled", zap.String("token", string(tok)))
		return
	}
	v, ok := s.currentValue()
	if !ok {
		return
	}
	_ = s.bank.SetScalar(m.Internal, v)
	s.logger.Info("stored", zap.String("register", m.Internal), zap.Float64("value", v))
}

func (s *Session) accumulate(subtract bool) {
	v, ok := s.currentValue()
	if !ok {
		return
	}
	if subtract {
		v = -v
	}
	m, _ := s.bank.Scalar("M")
	_ = s.bank.SetScalar("M", m+v)
	s.builder.MarkEvaluated()
	s.logger.Info("memory updated", zap.Float64("M", m+v))
}

func (s *Session) toggleFraction() error {
	out, err := numfmt.Toggle(s.result)
	if err != nil {
		return &ConversionError{Value: s.result, Err: err}
	}
	s.result = out
	return nil
}

func (s *Session) recall(e Entry) {
	s.builder.Replace(e.Visual, e.Internal)
	s.result = e.Result
}

func (s *Session) reset() {
	s.builder.Clear()
	s.result = "0"
	s.modifier = keymap.None
	s.hyperbolic = false
	s.storePending = false
}

func (s *Session) display() DisplayState {
	return DisplayState{
		Expression:   s.builder.Visual(),
		Result:       s.result,
		AngleMode:    s.angle,
		Modifier:     s.modifier,
		Mode:         s.mode,
		Hyperbolic:   s.hyperbolic,
		StorePending: s.storePending,
	}
}

// DisplayState returns the current display without changing anything.
func (s *Session) DisplayState() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display()
}

func (s *Session) SetAngleMode(a AngleMode) DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.angle = a
	return s.display()
}

// SetMode switches calculator mode. Like the MODE menu it also resets the
// buffers and modifiers.
func (s *Session) SetMode(m keymap.Mode) DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.reset()
	return s.display()
}

// Reset clears buffers, result and modifiers. Memory, the last answer,
// mode and angle mode survive.
func (s *Session) Reset() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return s.display()
}

// SaveMatrix stores rows as MatA..MatD and shows "MatA Saved".
func (s *Session) SaveMatrix(slot string, rows [][]float64) (DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, err := s.bank.SaveMatrix(slot, rows)
	if err != nil {
		return s.display(), err
	}
	s.result = name + " Saved"
	s.logger.Info("matrix saved", zap.String("register", name))
	return s.display(), nil
}

// SaveVector stores xs as VctA..VctD and shows "VctA Saved".
func (s *Session) SaveVector(slot string, xs []float64) (DisplayState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, err := s.bank.SaveVector(slot, xs)
	if err != nil {
		return s.display(), err
	}
	s.result = name + " Saved"
	s.logger.Info("vector saved", zap.String("register", name))
	return s.display(), nil
}

// Evaluate bypasses the keypad: internal is evaluated as typed and a
// successful result becomes the last answer.
func (s *Session) Evaluate(internal string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.pipeline.Evaluate(internal, s.bank, s.angle)
	if err != nil {
		return "", err
	}
	s.result = out
	s.bank.SetLastAnswer(out)
	return out, nil
}

// Function compiles internal over X with the session's registers and
// angle mode, for TABLE mode.
func (s *Session) Function(internal string) (calculus.Func, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pipeline.Function(internal, s.bank, s.angle)
}

// Register returns a scalar register's value.
func (s *Session) Register(name string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.bank.Scalar(name)
	if !ok {
		return 0, errors.New("unknown register " + name)
	}
	return v, nil
}

func (s *Session) LastAnswer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.LastAnswer()
}

func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

func (s *Session) Pipeline() *Pipeline {
	return s.pipeline
}
