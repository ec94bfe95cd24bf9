package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"surveydash/cmd/surveydash/ui"
	"surveydash/internal/config"
	"surveydash/internal/dataset"
	"surveydash/internal/logging"
	"surveydash/internal/survey"
)

var (
	// Global flags
	verbose    bool
	dataPath   string
	configPath string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd launches the interactive dashboard.
var rootCmd = &cobra.Command{
	Use:   "surveydash",
	Short: "surveydash - developer survey explorer",
	Long: `surveydash is an interactive terminal dashboard over a developer
survey export (CSV).

It loads the dataset once, lets you filter responses by country, and
renders ranked frequency breakdowns of the multi-choice survey fields
(languages, databases, platforms) as bar charts and tables.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip zap for the interactive root; the TUI owns the terminal.
		if cmd.Use == "surveydash" && cmd.CalledAs() == "surveydash" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// setup loads config, wires the category logger, and loads the table.
// Shared by the root command and the non-interactive subcommands.
func setup() (*config.Config, *dataset.Table, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if err := logging.Initialize(".", logging.Options{
		DebugMode: cfg.Logging.DebugMode || verbose,
		Level:     level,
		SessionID: uuid.NewString()[:8],
	}); err != nil {
		return nil, nil, err
	}
	logging.Boot("surveydash starting, data=%s", cfg.Data.Path)

	table, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		logging.BootError("load failed: %v", err)
		return nil, nil, loadFailure(cfg.Data.Path, err)
	}
	return cfg, table, nil
}

// loadFailure translates loader errors into the user-facing messages the
// dashboard shows in place of analysis views.
func loadFailure(path string, err error) error {
	if errors.Is(err, dataset.ErrNotFound) {
		return fmt.Errorf("survey data file does not exist: %s", path)
	}
	var pe *dataset.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("could not load survey data: %v", pe)
	}
	return fmt.Errorf("could not load survey data: %w", err)
}

func runDashboard() error {
	cfg, table, err := setup()
	if err != nil {
		// Error state instead of analysis views; no TUI is entered.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer logging.CloseAll()

	analyzer := survey.NewAnalyzer()
	return ui.Run(table, analyzer, cfg.UI.TopN, cfg.UI.DarkMode)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the survey CSV (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath("."), "path to the config file")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(analyzeCmd)

	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
