package cmd

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [type] [coefficients]...",
	Short: "Solve a quadratic or a system of linear equations",
	Long: `Solve an equation of the given type: quadratic, cubic, 2var or 3var.
Missing arguments are prompted for. Coefficients may be expressions.`,
	Example: `  roricalc solve quadratic -- 1 -3 2
  roricalc solve 2var -- 1 1 3 1 -1 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			kind solver.Kind
			err  error
		)
		if len(args) > 0 {
			kind, err = solver.ParseKind(args[0])
			if err != nil {
				return err
			}
			args = args[1:]
		} else {
			kind, err = selectKind()
			if err != nil {
				return err
			}
		}

		session, err := newSession()
		if err != nil {
			return err
		}

		names := kind.Coefficients()
		if len(args) != 0 && len(args) != len(names) {
			return fmt.Errorf("%v: want %d coefficients, got %d", kind, len(names), len(args))
		}
		coeffs := make([]float64, len(names))
		for i, name := range names {
			text := ""
			if len(args) > 0 {
				text = args[i]
			} else if text, err = promptCoefficient(session, name); err != nil {
				return err
			}
			if coeffs[i], err = coefficient(session, text); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}

		sol, err := solver.Solve(kind, coeffs)
		if err != nil {
			return err
		}
		for _, line := range sol.Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func selectKind() (solver.Kind, error) {
	kinds := solver.Kinds()
	items := make([]string, len(kinds))
	for i, k := range kinds {
		items[i] = k.String()
	}
	prompt := promptui.Select{
		Label: "Equation type",
		Items: items,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selection failed: %w", err)
	}
	return kinds[i], nil
}

func promptCoefficient(session *core.Session, name string) (string, error) {
	prompt := promptui.Prompt{
		Label:   name,
		Default: "0",
		Validate: func(s string) error {
			_, err := coefficient(session, s)
			return err
		},
	}
	text, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return text, nil
}

// coefficient reads a plain number directly and evaluates anything else.
func coefficient(session *core.Session, text string) (float64, error) {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, nil
	}
	out, err := session.Evaluate(text)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(out, 64)
}
