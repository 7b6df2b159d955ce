package cmd

import (
	"bytes"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hellscube/cubegen/internal/build"
	"github.com/hellscube/cubegen/internal/database"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [output]",
	Short: "Generate the Lua script",
	Long: `Generate fetches the card database, loads the layout overrides and the Lua
sources and writes the combined script to the output path, replacing it.

Nothing is written when any input fails to load.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args[0])
	},
}

func runGenerate(cmd *cobra.Command, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := &build.Pipeline{
		Fetcher: database.NewHTTPFetcher(cfg.DatabaseURL, cfg.UserAgent),
		FS:      os.DirFS("."),
		Config:  cfg,
		Logger:  logger,
	}

	var summary build.Summary
	err = build.WriteFile(output, func(w *bytes.Buffer) error {
		var runErr error
		summary, runErr = p.Run(cmd.Context(), w)
		return runErr
	})
	if err != nil {
		return err
	}

	logger.Info("Wrote script",
		zap.String("path", output),
		zap.Int("cards", summary.Cards),
		zap.Int("faces", summary.Faces),
		zap.Int("layouts", summary.Layouts),
		zap.Int("fragments", summary.Fragments),
		zap.Int("warnings", len(summary.Warnings)),
	)

	out := cmd.OutOrStdout()
	color.New(color.FgGreen).Fprintf(out, "✅ Wrote %s\n", output)
	color.New(color.FgCyan).Fprintf(out, "   %d cards, %d faces, %d layouts, %d fragments\n",
		summary.Cards, summary.Faces, summary.Layouts, summary.Fragments)
	if n := len(summary.Warnings); n > 0 {
		color.New(color.FgYellow).Fprintf(out, "   %d warnings, run 'cubegen validate' for details\n", n)
	}

	return nil
}
