package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vitaldeck/cmd/vitaldeck/dash"
	"vitaldeck/internal/config"
	"vitaldeck/internal/ledger"
	"vitaldeck/internal/logging"
	"vitaldeck/internal/predictor"
)

var (
	// Global flags
	verbose   bool
	workspace string
	serverURL string
	timeout   time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vitaldeck",
	Short: "VitalDeck - terminal health risk dashboard",
	Long: `VitalDeck is a terminal dashboard client for an AI health prediction
service. It collects patient vitals, submits them for risk assessment, and
renders the verdict as a per-condition summary, animated meters, a confidence
chart and a persisted history list. Reports export as PDF.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(workspace); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
		}

		// Skip the zap logger for the interactive dashboard (it has its own UI)
		if cmd.Use == "vitaldeck" && cmd.CalledAs() == "vitaldeck" {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive dashboard
		return runDashboard()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".", "workspace directory holding .vitaldeck state")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "prediction service base URL (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "prediction request timeout (overrides config)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig loads the workspace config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.DefaultPath(workspace))
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.Predictor.BaseURL = serverURL
	}
	if timeout > 0 {
		cfg.Predictor.Timeout = timeout.String()
	}
	return cfg, nil
}

// newCollaborators wires the predictor client and the ledger from config.
func newCollaborators(cfg *config.Config) (*predictor.Client, *ledger.Manager) {
	client := predictor.New(cfg.Predictor.BaseURL, cfg.Predictor.RequestTimeout())
	lg := ledger.NewManagerWithCapacity(config.Dir(workspace), cfg.History.Capacity)
	return client, lg
}

func runDashboard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logging.Boot("dashboard starting, server=%s", cfg.Predictor.BaseURL)

	client, lg := newCollaborators(cfg)
	m := dash.New(cfg, client, lg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
