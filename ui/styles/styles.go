package styles

import "github.com/charmbracelet/lipgloss"

func DisplayStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(width - 4)
}

func IndicatorStyle(active bool) lipgloss.Style {
	if !active {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)
}

func ExpressionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
}

func ResultStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		Align(lipgloss.Right).
		Width(width)
}

func ErrorStyle(width int) lipgloss.Style {
	return ResultStyle(width).
		Foreground(lipgloss.Color("196"))
}

func KeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("237")).
		Align(lipgloss.Center).
		Width(7).
		MarginRight(1)
}

func ControlKeyStyle() lipgloss.Style {
	return KeyStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true)
}

func PressedKeyStyle() lipgloss.Style {
	return KeyStyle().
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color("214"))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
