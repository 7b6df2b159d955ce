package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hellscube/cubegen/internal/config"
	"github.com/hellscube/cubegen/internal/database"
)

var (
	configPath string
	verbose    bool

	logger = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cubegen [output]",
	Short: "Generate the Lua card database script for the Hellscube mod",
	Long: `cubegen downloads the Hellscube card database, adds the basic lands, applies
known data corrections and writes a single Lua script that embeds the cards,
the layout overrides and the hand-written Lua sources.

Running cubegen with an output path is the same as 'cubegen generate [output]'.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runGenerate(cmd, args[0])
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "path to the generator config file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// loadConfig reads the --config file, falling back to defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config", zap.String("path", configPath), zap.String("database_url", cfg.DatabaseURL))
	return cfg, nil
}

// loadDatabase fetches, corrects and augments the card database
func loadDatabase(cmd *cobra.Command, cfg *config.Config) (*database.Database, error) {
	logger.Info("Fetching card database", zap.String("url", cfg.DatabaseURL))
	db, err := database.Load(cmd.Context(), database.NewHTTPFetcher(cfg.DatabaseURL, cfg.UserAgent))
	if err != nil {
		return nil, fmt.Errorf("error loading database: %w", err)
	}
	return db, nil
}
