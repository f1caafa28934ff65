package keymap

import "strings"

// Keypad is the physical arrangement of the keys, top row first.
var Keypad = [][]Token{
	{ShiftKey, AlphaKey, HypKey, Up, Down, On},
	{Sqrt, Square, Power, Log, Ln, Recip},
	{Answer, Sin, Cos, Tan, Integral, Abs},
	{Sto, SD, LParen, RParen, Comma, MPlus},
	{Key7, Key8, Key9, Delete, AllClear, Cube},
	{Key4, Key5, Key6, Multiply, Divide, Caret},
	{Key1, Key2, Key3, Plus, Minus, Exp},
	{Key0, Dot, Equals},
}

var controlLabels = map[Token]string{
	ShiftKey: "SHIFT",
	AlphaKey: "ALPHA",
	HypKey:   "hyp",
	AllClear: "AC",
	Delete:   "DEL",
	Equals:   "=",
	On:       "ON",
	Up:       "▲",
	Down:     "▼",
}

var actionLabels = map[Action]string{
	ToggleFraction: "S⇔D",
	Store:          "STO",
	MemoryAdd:      "M+",
	MemorySubtract: "M-",
}

// Label is the text printed on a key when mod is active.
func Label(tok Token, mod Modifier, mode Mode) string {
	if s, ok := controlLabels[tok]; ok {
		return s
	}
	m := lookup(tok, mod, mode)
	if m.Action != Append {
		return actionLabels[m.Action]
	}
	if s := strings.TrimSuffix(m.Visual, "("); s != "" {
		return s
	}
	return m.Visual
}
