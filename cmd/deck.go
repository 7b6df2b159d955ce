package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellscube/cubegen/internal/config"
)

// deckCmd prints a deck import list for one set
var deckCmd = &cobra.Command{
	Use:   "deck [set]",
	Short: "Print every card of a set as a deck list",
	Long: `Deck prints one line per card of the given set in the form "1 <name>",
ready to paste into a deck importer.

Examples:
  cubegen deck HC4
  cubegen deck hc2 > hc2.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := loadDatabase(cmd, cfg)
		if err != nil {
			return err
		}

		cards := db.BySet(set)
		if len(cards) == 0 {
			return fmt.Errorf("no cards found in set: %s", set)
		}

		out := cmd.OutOrStdout()
		for _, c := range cards {
			fmt.Fprintf(out, "1 %s\n", c.Name.Text)
		}

		return nil
	},
}

// initCmd writes a default config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(configPath); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	RootCmd.AddCommand(initCmd)
}
