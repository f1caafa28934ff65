package components

import (
	"strings"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/ui/styles"
)

// MinWidth is the narrowest display that still fits the indicator line.
const MinWidth = 40

// RenderDisplay draws the calculator screen: indicators, the expression
// being typed and the right-aligned result.
func RenderDisplay(d models.Display, width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	inner := width - 8

	indicators := []string{
		styles.IndicatorStyle(d.Modifier == "S").Render("S"),
		styles.IndicatorStyle(d.Modifier == "A").Render("A"),
		styles.IndicatorStyle(d.Hyperbolic).Render("hyp"),
		styles.IndicatorStyle(d.StorePending).Render("STO"),
		styles.IndicatorStyle(true).Render(d.AngleMode),
		styles.IndicatorStyle(true).Render(d.Mode),
	}

	result := styles.ResultStyle(inner)
	if d.Result == core.ErrorMarker {
		result = styles.ErrorStyle(inner)
	}

	var b strings.Builder
	b.WriteString(strings.Join(indicators, " "))
	b.WriteString("\n")
	b.WriteString(styles.ExpressionStyle().Render(d.Expression))
	b.WriteString("\n")
	b.WriteString(result.Render(d.Result))

	return styles.DisplayStyle(width).Render(b.String())
}
