package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rorical/RoriCalc/internal/app"
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	angleFlag string
)

var rootCmd = &cobra.Command{
	Use:   "roricalc",
	Short: "A scientific calculator for the terminal",
	Long: `RoriCalc is a keypad scientific calculator for the terminal.
Run it without arguments for the interactive keypad, or use a subcommand
for one-shot evaluation, tables and equation solving.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if angleFlag != "" {
			cfg.AngleMode = angleFlag
		}

		// The keypad owns the terminal, so it logs to a file.
		target := logging.Stderr
		if cmd == cmd.Root() {
			target = logging.File
		}
		logger, err = logging.New(cfg.Logging, target)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the keypad application
		application, err := app.NewApplication(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSession builds a session for the one-shot commands.
func newSession() (*core.Session, error) {
	return app.NewSession(cfg, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&angleFlag, "angle", "a", "", "angle mode for this run: deg, rad or gra")

	// Add subcommands
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(setupCmd)
}
