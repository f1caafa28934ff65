package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose the default angle mode, mode and keypad display",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		angle, err := selectOption("Default angle mode", []string{"deg", "rad", "gra"}, cfg.AngleMode)
		if err != nil {
			return err
		}
		mode, err := selectOption("Default mode", []string{"comp", "matrix", "vector", "eqn", "table"}, cfg.Mode)
		if err != nil {
			return err
		}
		keypad, err := selectOption("Show keypad", []string{"yes", "no"}, yesNo(cfg.Display.ShowKeypad))
		if err != nil {
			return err
		}

		cfg.AngleMode = angle
		cfg.Mode = mode
		cfg.Display.ShowKeypad = keypad == "yes"
		if err := cfg.Validate(); err != nil {
			return err
		}

		// Save config
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Settings saved to %s\n", cfg.Path())
		return nil
	},
}

func selectOption(label string, items []string, current string) (string, error) {
	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: indexOf(items, current),
	}
	_, choice, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return choice, nil
}

func indexOf(items []string, s string) int {
	for i, item := range items {
		if strings.EqualFold(item, s) {
			return i
		}
	}
	return 0
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
