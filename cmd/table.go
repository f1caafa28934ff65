package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/solver"
)

var (
	tableStart float64
	tableEnd   float64
	tableStep  float64
)

var tableCmd = &cobra.Command{
	Use:     "table f(X)",
	Short:   "Tabulate a function of X",
	Example: `  roricalc table "X^2+1" --start 0 --end 5 --step 0.5`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		f, err := session.Function(args[0])
		if err != nil {
			return err
		}
		rows, err := solver.Table(f, tableStart, tableEnd, tableStep)
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("X", "F(X)")
		for _, r := range rows {
			x, y := r.Cells()
			t.Row(x, y)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	tableCmd.Flags().Float64Var(&tableStart, "start", 1, "first X value")
	tableCmd.Flags().Float64Var(&tableEnd, "end", 5, "last X value")
	tableCmd.Flags().Float64Var(&tableStep, "step", 1, "X increment")
}
