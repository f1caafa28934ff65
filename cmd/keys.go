package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/backend"
	"github.com/Rorical/RoriCalc/internal/keymap"
	"github.com/Rorical/RoriCalc/internal/update"
)

var keysStyle string

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the keypad layers, keyboard shortcuts and functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md := keyReference()
		if keysStyle == "raw" {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		out, err := renderMarkdown(md, keysStyle)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func renderMarkdown(md, style string) (string, error) {
	opt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		opt = glamour.WithStylePath(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render(md)
}

var layers = []struct {
	title string
	mod   keymap.Modifier
}{
	{"Base", keymap.None},
	{"SHIFT", keymap.Shift},
	{"ALPHA", keymap.Alpha},
}

// keyReference documents the keypad as markdown.
func keyReference() string {
	var b strings.Builder
	b.WriteString("# RoriCalc keys\n\n")

	for _, l := range layers {
		fmt.Fprintf(&b, "## %s layer\n\n", l.title)
		for i, row := range keymap.Keypad {
			cells := make([]string, len(row))
			for j, tok := range row {
				cells[j] = cell(keymap.Label(tok, l.mod, keymap.Comp))
			}
			writeRow(&b, cells)
			if i == 0 {
				writeRow(&b, repeat("---", len(row)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Keyboard\n\n")
	writeRow(&b, []string{"key", "keypad"})
	writeRow(&b, repeat("---", 2))
	for _, s := range update.Shortcuts() {
		writeRow(&b, []string{cell(s.Key), cell(string(s.Token))})
	}
	b.WriteString("\nDigits, `.`, `,`, `+ - * / ^` and parentheses type themselves.\n\n")

	b.WriteString("## Functions\n\n")
	for _, fn := range backend.New(nil).Registry().List() {
		fmt.Fprintf(&b, "- `%s`: %s\n", fn.Name(), fn.Description())
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func cell(s string) string {
	if s == "" {
		return " "
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	keysCmd.Flags().StringVar(&keysStyle, "style", "auto", "glamour style (auto, dark, light, notty) or raw for markdown")
}
