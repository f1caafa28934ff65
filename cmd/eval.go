package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/RoriCalc/internal/core"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]...",
	Short: "Evaluate expressions and print the results",
	Long: `Evaluate each expression in turn, as if typed on the keypad and
followed by "=". Ans carries over from one expression to the next.`,
	Example: `  roricalc eval "5P2" "Ans/4"
  roricalc eval --angle rad "sin(pi/2)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range args {
			result, err := session.Evaluate(e)
			if err != nil {
				logger.Debug("evaluation failed", zap.String("expression", e), zap.Error(err))
				fmt.Fprintln(out, core.ErrorMarker)
				return err
			}
			fmt.Fprintln(out, result)
		}
		return nil
	},
}
