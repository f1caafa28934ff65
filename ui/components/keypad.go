package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/ui/styles"
)

// RenderKeypad draws the keypad with the labels of the active layer, so
// pressing SHIFT relabels sin as sin⁻¹. The key in pressed is highlighted.
func RenderKeypad(d models.Display, pressed string) string {
	mod := modifierOf(d.Modifier)
	mode, _ := keymap.ParseMode(d.Mode)

	rows := make([]string, 0, len(keymap.Keypad))
	for _, row := range keymap.Keypad {
		keys := make([]string, 0, len(row))
		for _, tok := range row {
			style := styles.KeyStyle()
			switch {
			case string(tok) == pressed:
				style = styles.PressedKeyStyle()
			case keymap.IsControl(tok):
				style = styles.ControlKeyStyle()
			}
			keys = append(keys, style.Render(keymap.Label(tok, mod, mode)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return strings.Join(rows, "\n")
}

func modifierOf(s string) keymap.Modifier {
	switch s {
	case keymap.Shift.String():
		return keymap.Shift
	case keymap.Alpha.String():
		return keymap.Alpha
	}
	return keymap.None
}
