package update

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Rorical/RoriCalc/internal/keymap"
)

// KeyMap holds the bindings that are not keypad keys.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Keypad key.Binding
	Modes  []ModeBinding
	Angles []AngleBinding
}

type ModeBinding struct {
	key.Binding
	Mode keymap.Mode
}

type AngleBinding struct {
	key.Binding
	Angle string
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Keypad: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "keypad")),
		Modes: []ModeBinding{
			{key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "COMP")), keymap.Comp},
			{key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "MATRIX")), keymap.Matrix},
			{key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "VECTOR")), keymap.Vector},
			{key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "EQN")), keymap.Equation},
			{key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5", "TABLE")), keymap.Table},
		},
		Angles: []AngleBinding{
			{key.NewBinding(key.WithKeys("f6"), key.WithHelp("f6", "DEG")), "deg"},
			{key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7", "RAD")), "rad"},
			{key.NewBinding(key.WithKeys("f8"), key.WithHelp("f8", "GRA")), "gra"},
		},
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Keypad, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	modes := make([]key.Binding, len(k.Modes))
	for i, m := range k.Modes {
		modes[i] = m.Binding
	}
	angles := make([]key.Binding, len(k.Angles))
	for i, a := range k.Angles {
		angles[i] = a.Binding
	}
	return [][]key.Binding{
		{k.Help, k.Keypad, k.Quit},
		modes,
		angles,
		{keyHelp("S", "SHIFT"), keyHelp("A", "ALPHA"), keyHelp("enter", "="), keyHelp("esc", "AC")},
	}
}

func keyHelp(k, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
}

// keyboardTokens maps terminal keys to keypad tokens. Digits and
// operators map to themselves.
var keyboardTokens = map[string]keymap.Token{
	"S":         keymap.ShiftKey,
	"A":         keymap.AlphaKey,
	"H":         keymap.HypKey,
	"O":         keymap.On,
	"esc":       keymap.AllClear,
	"backspace": keymap.Delete,
	"enter":     keymap.Equals,
	"=":         keymap.Equals,
	"up":        keymap.Up,
	"down":      keymap.Down,
	"s":         keymap.Sin,
	"c":         keymap.Cos,
	"t":         keymap.Tan,
	"g":         keymap.Log,
	"l":         keymap.Ln,
	"r":         keymap.Sqrt,
	"w":         keymap.Square,
	"u":         keymap.Cube,
	"v":         keymap.Recip,
	"b":         keymap.Abs,
	"e":         keymap.Exp,
	"a":         keymap.Answer,
	"f":         keymap.SD,
	"p":         keymap.Power,
	"i":         keymap.Integral,
	"o":         keymap.Sto,
	"m":         keymap.MPlus,
}

// Shortcut is a terminal key bound to a keypad token.
type Shortcut struct {
	Key   string
	Token keymap.Token
}

// Shortcuts lists the named keyboard bindings sorted by key.
func Shortcuts() []Shortcut {
	out := make([]Shortcut, 0, len(keyboardTokens))
	for k, tok := range keyboardTokens {
		out = append(out, Shortcut{Key: k, Token: tok})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// TokenFor returns the keypad token for a terminal key.
func TokenFor(k string) (keymap.Token, bool) {
	if tok, ok := keyboardTokens[k]; ok {
		return tok, true
	}
	if len(k) == 1 && isKeypadChar(k[0]) {
		return keymap.Token(k), true
	}
	return "", false
}

func isKeypadChar(c byte) bool {
	return ('0' <= c && c <= '9') || c == '.' || c == ',' ||
		c == '+' || c == '-' || c == '*' || c == '/' || c == '^' || c == '(' || c == ')'
}
