// Package keymap translates raw keypad tokens into the pair of strings the
// calculator builds an expression from: the glyphs shown on the display and
// the ASCII text handed to the evaluator.
//
// Every key is looked up in one of three layers (base, shift, alpha). A key
// with no entry in the active layer falls back to its base entry, and a key
// with no base entry is passed through verbatim.
package keymap

import "strings"

// Token identifies a physical key on the keypad.
type Token string

// Character-producing keys.
const (
	Key0     Token = "0"
	Key1     Token = "1"
	Key2     Token = "2"
	Key3     Token = "3"
	Key4     Token = "4"
	Key5     Token = "5"
	Key6     Token = "6"
	Key7     Token = "7"
	Key8     Token = "8"
	Key9     Token = "9"
	Dot      Token = "."
	Comma    Token = ","
	Plus     Token = "+"
	Minus    Token = "-"
	Multiply Token = "*"
	Divide   Token = "/"
	Caret    Token = "^"
	LParen   Token = "("
	RParen   Token = ")"
	Sin      Token = "sin"
	Cos      Token = "cos"
	Tan      Token = "tan"
	Log      Token = "log"
	Ln       Token = "ln"
	Sqrt     Token = "sqrt"
	Square   Token = "square"
	Cube     Token = "cube"
	Recip    Token = "recip"
	Abs      Token = "abs"
	Exp      Token = "exp"
	Answer   Token = "ans"
	SD       Token = "sd"
	Power    Token = "pwr"
	Integral Token = "integral"
	Sto      Token = "sto"
	MPlus    Token = "m+"
)

// Control keys. They never reach Translate.
const (
	ShiftKey Token = "SHIFT"
	AlphaKey Token = "ALPHA"
	HypKey   Token = "HYP"
	AllClear Token = "AC"
	Delete   Token = "DEL"
	Equals   Token = "="
	On       Token = "ON"
	Up       Token = "up"
	Down     Token = "down"
)

// IsControl reports whether tok is handled by the session itself rather
// than translated into expression text.
func IsControl(tok Token) bool {
	switch tok {
	case ShiftKey, AlphaKey, HypKey, AllClear, Delete, Equals, On, Up, Down:
		return true
	}
	return false
}

// Modifier is the one-shot layer selector. At most one is active.
type Modifier int

const (
	None Modifier = iota
	Shift
	Alpha
)

func (m Modifier) String() string {
	switch m {
	case Shift:
		return "S"
	case Alpha:
		return "A"
	}
	return ""
}

// Toggle returns the modifier state after pressing the key for want.
// Pressing the active modifier again switches it off; pressing the other
// one replaces it.
func (m Modifier) Toggle(want Modifier) Modifier {
	if m == want {
		return None
	}
	return want
}

// Mode is the calculator mode selected from the MODE menu.
type Mode int

const (
	Comp Mode = iota
	Matrix
	Vector
	Equation
	Table
)

var modeNames = map[Mode]string{
	Comp:     "COMP",
	Matrix:   "MATRIX",
	Vector:   "VECTOR",
	Equation: "EQN",
	Table:    "TABLE",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "COMP"
}

// ParseMode accepts the display names case-insensitively ("comp", "EQN").
func ParseMode(s string) (Mode, bool) {
	for m, name := range modeNames {
		if strings.EqualFold(name, s) {
			return m, true
		}
	}
	return Comp, false
}

// Action tells the session what a translated key does besides, or instead
// of, appending text.
type Action int

const (
	Append Action = iota
	ToggleFraction
	Store
	MemoryAdd
	MemorySubtract
)

// Mapping is the result of translating one key.
type Mapping struct {
	Visual   string
	Internal string
	Action   Action
	// Continues marks keys that extend a previous result (operators,
	// postfix powers, parentheses) when typed right after "=".
	Continues bool
}

// Translate maps tok under the given modifier and mode. consumed is true
// whenever a modifier was active: every activation is good for one key.
func Translate(tok Token, mod Modifier, mode Mode) (m Mapping, consumed bool) {
	return lookup(tok, mod, mode), mod != None
}

func lookup(tok Token, mod Modifier, mode Mode) Mapping {
	switch mod {
	case Shift:
		if m, ok := shiftLayer[tok]; ok {
			return m
		}
	case Alpha:
		if m, ok := modeAlphaLayer[mode][tok]; ok {
			return m
		}
		if m, ok := alphaLayer[tok]; ok {
			return m
		}
	}
	if m, ok := baseLayer[tok]; ok {
		return m
	}
	return Mapping{Visual: string(tok), Internal: string(tok)}
}
